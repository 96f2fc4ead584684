package material

import (
	"sync"

	"github.com/rtrace/go-ray-forest/pkg/math"
)

// TexturePhong is a Phong material whose color channels vary with texture
// coordinates. The scalar parameters remain editable in place; the color
// functions are fixed at construction.
type TexturePhong struct {
	mu              sync.RWMutex
	ambient         ColorFunc
	diffuse         ColorFunc
	specular        ColorFunc
	power           float64
	reflectivity    float64
	refractionIndex float64
}

// NewTexturePhong creates a texture-driven Phong material.
func NewTexturePhong(ambient, diffuse, specular ColorFunc, power, reflectivity, refractionIndex float64) *TexturePhong {
	return &TexturePhong{
		ambient:         ambient,
		diffuse:         diffuse,
		specular:        specular,
		power:           power,
		reflectivity:    reflectivity,
		refractionIndex: refractionIndex,
	}
}

// Ambient samples the ambient texture.
func (p *TexturePhong) Ambient(u, v float64) math.Color {
	return p.ambient(u, v)
}

// Diffuse samples the diffuse texture.
func (p *TexturePhong) Diffuse(u, v float64) math.Color {
	return p.diffuse(u, v)
}

// Specular samples the specular texture.
func (p *TexturePhong) Specular(u, v float64) math.Color {
	return p.specular(u, v)
}

// Reflectivity returns the mirror-reflection weight.
func (p *TexturePhong) Reflectivity() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.reflectivity
}

// RefractionIndex returns the index of refraction.
func (p *TexturePhong) RefractionIndex() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.refractionIndex
}

// ReflectedEnergy computes Lambert diffuse plus Blinn-Phong specular for one
// light sample, sampling the textures at (u,v).
func (p *TexturePhong) ReflectedEnergy(incoming math.Color, lightDir, normal, eyeDir math.Vec3, u, v float64) math.Color {
	p.mu.RLock()
	power := p.power
	p.mu.RUnlock()

	d := lambert(lightDir, normal, incoming, p.diffuse(u, v))
	s := blinnPhong(power, eyeDir, lightDir, normal, incoming, p.specular(u, v))
	return d.Add(s)
}

// SetPower replaces the specular exponent.
func (p *TexturePhong) SetPower(power float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.power = power
}

// SetReflectivity replaces the mirror-reflection weight.
func (p *TexturePhong) SetReflectivity(r float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reflectivity = r
}

// SetRefractionIndex replaces the index of refraction.
func (p *TexturePhong) SetRefractionIndex(n float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refractionIndex = n
}
