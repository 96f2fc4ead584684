package material

import (
	"sync"

	"github.com/rtrace/go-ray-forest/pkg/math"
)

// Phong is a solid-color Phong material. All parameters can be edited in
// place while renders are running: the mutex makes an edit from a UI thread
// safe against a concurrent forest reduction, which only ever reads.
type Phong struct {
	mu              sync.RWMutex
	ambient         math.Color
	diffuse         math.Color
	specular        math.Color
	power           float64
	reflectivity    float64
	refractionIndex float64
}

// NewPhong creates a solid-color Phong material.
func NewPhong(ambient, diffuse, specular math.Color, power, reflectivity, refractionIndex float64) *Phong {
	return &Phong{
		ambient:         ambient,
		diffuse:         diffuse,
		specular:        specular,
		power:           power,
		reflectivity:    reflectivity,
		refractionIndex: refractionIndex,
	}
}

// Ambient returns the ambient color. Texture coordinates are ignored for
// solid materials.
func (p *Phong) Ambient(u, v float64) math.Color {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ambient
}

// Diffuse returns the diffuse color.
func (p *Phong) Diffuse(u, v float64) math.Color {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.diffuse
}

// Specular returns the specular color.
func (p *Phong) Specular(u, v float64) math.Color {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.specular
}

// Reflectivity returns the mirror-reflection weight.
func (p *Phong) Reflectivity() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.reflectivity
}

// RefractionIndex returns the index of refraction.
func (p *Phong) RefractionIndex() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.refractionIndex
}

// ReflectedEnergy computes Lambert diffuse plus Blinn-Phong specular for one
// light sample.
func (p *Phong) ReflectedEnergy(incoming math.Color, lightDir, normal, eyeDir math.Vec3, u, v float64) math.Color {
	p.mu.RLock()
	diffuse, specular, power := p.diffuse, p.specular, p.power
	p.mu.RUnlock()

	d := lambert(lightDir, normal, incoming, diffuse)
	s := blinnPhong(power, eyeDir, lightDir, normal, incoming, specular)
	return d.Add(s)
}

// SetAmbient replaces the ambient color.
func (p *Phong) SetAmbient(c math.Color) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ambient = c
}

// SetDiffuse replaces the diffuse color.
func (p *Phong) SetDiffuse(c math.Color) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.diffuse = c
}

// SetSpecular replaces the specular color.
func (p *Phong) SetSpecular(c math.Color) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.specular = c
}

// SetPower replaces the specular exponent.
func (p *Phong) SetPower(power float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.power = power
}

// SetReflectivity replaces the mirror-reflection weight.
func (p *Phong) SetReflectivity(r float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reflectivity = r
}

// SetRefractionIndex replaces the index of refraction.
func (p *Phong) SetRefractionIndex(n float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refractionIndex = n
}
