package server

import (
	"encoding/json"
	"net/http"

	"github.com/rtrace/go-ray-forest/pkg/material"
	"github.com/rtrace/go-ray-forest/pkg/math"
)

// ColorParam is an RGB triple in a request body.
type ColorParam struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

func (c ColorParam) color() math.Color {
	return math.Color{R: c.R, G: c.G, B: c.B}
}

// MaterialEdit describes a partial material update for one shape.
// Only the fields present in the body are applied.
type MaterialEdit struct {
	Shape           string      `json:"shape"`
	Ambient         *ColorParam `json:"ambient,omitempty"`
	Diffuse         *ColorParam `json:"diffuse,omitempty"`
	Specular        *ColorParam `json:"specular,omitempty"`
	Power           *float64    `json:"power,omitempty"`
	Reflectivity    *float64    `json:"reflectivity,omitempty"`
	RefractionIndex *float64    `json:"refractionIndex,omitempty"`
}

// ShapeInfo describes one shape for the scene listing.
type ShapeInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// handleScene lists the shapes and lights so a client can build its
// editor controls.
func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shapes := make([]ShapeInfo, 0, len(s.scene.Shapes()))
	for _, sh := range s.scene.Shapes() {
		shapes = append(shapes, ShapeInfo{ID: sh.ID(), Name: sh.Name()})
	}

	lightDescs := make([]string, 0, len(s.scene.Lights()))
	for _, l := range s.scene.Lights() {
		lightDescs = append(lightDescs, l.String())
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"shapes":  shapes,
		"lights":  lightDescs,
		"ambient": s.scene.Ambient(),
	})
}

// handleMaterial applies a material edit and records the shape as
// mutated so the next /api/rerender re-shades only its pixels.
func (s *Server) handleMaterial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	var edit MaterialEdit
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shape, ok := s.scene.FindShape(edit.Shape)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown shape: %s", edit.Shape)
		return
	}

	if err := applyEdit(shape.Material(), edit); err != nil {
		writeError(w, http.StatusBadRequest, "%v", err)
		return
	}
	s.mutated[shape.ID()] = struct{}{}

	writeJSON(w, http.StatusOK, map[string]any{
		"shape":   ShapeInfo{ID: shape.ID(), Name: shape.Name()},
		"pending": len(s.mutated),
	})
}

// editError reports a field that the shape's material cannot change.
type editError struct {
	field string
}

func (e editError) Error() string {
	return "material does not support editing " + e.field
}

func applyEdit(mat material.Material, edit MaterialEdit) error {
	phong, isPhong := mat.(*material.Phong)
	textured, isTextured := mat.(*material.TexturePhong)

	switch {
	case isPhong:
		if edit.Ambient != nil {
			phong.SetAmbient(edit.Ambient.color())
		}
		if edit.Diffuse != nil {
			phong.SetDiffuse(edit.Diffuse.color())
		}
		if edit.Specular != nil {
			phong.SetSpecular(edit.Specular.color())
		}
		if edit.Power != nil {
			phong.SetPower(*edit.Power)
		}
		if edit.Reflectivity != nil {
			phong.SetReflectivity(*edit.Reflectivity)
		}
		if edit.RefractionIndex != nil {
			phong.SetRefractionIndex(*edit.RefractionIndex)
		}
	case isTextured:
		// Texture channels are fixed; only scalars are editable.
		if edit.Ambient != nil || edit.Diffuse != nil || edit.Specular != nil {
			return editError{field: "texture color channels"}
		}
		if edit.Power != nil {
			textured.SetPower(*edit.Power)
		}
		if edit.Reflectivity != nil {
			textured.SetReflectivity(*edit.Reflectivity)
		}
		if edit.RefractionIndex != nil {
			textured.SetRefractionIndex(*edit.RefractionIndex)
		}
	default:
		return editError{field: "anything"}
	}
	return nil
}
