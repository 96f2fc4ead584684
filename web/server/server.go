// Package server exposes the interactive renderer over HTTP. A client
// renders once, edits materials, and re-renders; the server keeps the
// ray forest between requests so edits only re-shade affected pixels.
package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"sync"

	"github.com/rtrace/go-ray-forest/pkg/renderer"
	"github.com/rtrace/go-ray-forest/pkg/scene"
)

// Server handles web requests for the interactive raytracer.
type Server struct {
	port int

	mu        sync.Mutex
	scene     *scene.Scene
	raytracer *renderer.Raytracer
	forest    *renderer.RayForest
	buffer    *renderer.RenderBuffer
	mutated   map[int]struct{}
}

// NewServer creates a server around one scene. Width and height fix
// the forest resolution for the server's lifetime.
func NewServer(port int, sc *scene.Scene, width, height, depth int) *Server {
	return &Server{
		port:      port,
		scene:     sc,
		raytracer: renderer.NewRaytracer(sc, renderer.NewCamera(width, height), depth),
		buffer:    renderer.NewRenderBuffer(width, height),
		mutated:   make(map[int]struct{}),
	}
}

// Handler returns the route table. Split out from Start so tests can
// drive the server through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir("static/")))
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/rerender", s.handleRerender)
	mux.HandleFunc("/api/material", s.handleMaterial)
	mux.HandleFunc("/api/scene", s.handleScene)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf(format, args...)})
}

// bufferToBase64PNG encodes the current buffer as a base64 PNG.
func bufferToBase64PNG(buffer *renderer.RenderBuffer) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, buffer.ToImage()); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
