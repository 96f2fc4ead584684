package server

import (
	"log"
	"net/http"
	"time"
)

// RenderResponse carries one rendered frame back to the client.
type RenderResponse struct {
	ImageData     string `json:"imageData"` // Base64 encoded PNG
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	BuildMs       int64  `json:"buildMs"`
	ShadeMs       int64  `json:"shadeMs"`
	Intersections int    `json:"intersections"`
	ShadedPixels  int    `json:"shadedPixels"`
}

// handleRender builds the ray forest from scratch and shades every
// pixel. This is the expensive path; edits should use /api/rerender.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	s.forest = s.raytracer.BuildForest()
	buildTime := time.Since(start)

	start = time.Now()
	s.raytracer.RenderForest(s.forest, s.buffer)
	shadeTime := time.Since(start)

	// Pending edits are already reflected in the fresh forest.
	clear(s.mutated)

	log.Printf("BuildForest: %dms, RenderForest: %dms", buildTime.Milliseconds(), shadeTime.Milliseconds())

	imageData, err := bufferToBase64PNG(s.buffer)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode image: %v", err)
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		ImageData:     imageData,
		Width:         s.buffer.W,
		Height:        s.buffer.H,
		BuildMs:       buildTime.Milliseconds(),
		ShadeMs:       shadeTime.Milliseconds(),
		Intersections: s.forest.Size(),
		ShadedPixels:  s.buffer.W * s.buffer.H,
	})
}

// handleRerender re-shades only the pixels whose cached trees touch a
// shape edited since the last render, then clears the edit set.
func (s *Server) handleRerender(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.forest == nil {
		writeError(w, http.StatusBadRequest, "no forest yet, call /api/render first")
		return
	}

	shaded := 0
	for v := 0; v < s.forest.H; v++ {
		for u := 0; u < s.forest.W; u++ {
			for id := range s.mutated {
				if s.forest.Tree(u, v).Touches(id) {
					shaded++
					break
				}
			}
		}
	}

	start := time.Now()
	s.raytracer.RenderForestFilter(s.forest, s.buffer, s.mutated)
	shadeTime := time.Since(start)

	log.Printf("RenderForestFilter: %dms, %d pixels", shadeTime.Milliseconds(), shaded)
	clear(s.mutated)

	imageData, err := bufferToBase64PNG(s.buffer)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode image: %v", err)
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		ImageData:    imageData,
		Width:        s.buffer.W,
		Height:       s.buffer.H,
		ShadeMs:      shadeTime.Milliseconds(),
		ShadedPixels: shaded,
	})
}
