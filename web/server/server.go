// Package server serves a live preview of a progressive render over HTTP
package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Source provides the latest completed iteration. *renderer.Renderer
// satisfies it.
type Source interface {
	Snapshot() (*image.RGBA, []renderer.IterationStats)
}

// Server handles preview requests for a running render
type Server struct {
	addr   string
	source Source
	logger *zap.Logger
	events *broadcaster
}

// NewServer creates a preview server for source. A nil logger disables
// logging.
func NewServer(addr string, source Source, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		addr:   addr,
		source: source,
		logger: logger,
		events: newBroadcaster(),
	}
}

// StatsResponse is the body of /api/stats
type StatsResponse struct {
	Iterations []renderer.IterationStats `json:"iterations"`
	Latest     *renderer.IterationStats  `json:"latest,omitempty"`
}

// ProgressUpdate is sent on /api/events after every iteration
type ProgressUpdate struct {
	Stats     renderer.IterationStats `json:"stats"`
	ImageData string                  `json:"imageData"` // Base64 encoded PNG
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/image", s.handleImage)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/events", s.handleEvents)
	return mux
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting preview server", zap.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "preview server")
	case <-ctx.Done():
		s.Finish()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		s.logger.Info("stopping preview server")
		return srv.Shutdown(shutdownCtx)
	}
}

// Publish forwards a completed iteration to event stream subscribers. It
// never blocks the renderer and matches renderer.Renderer.OnIteration.
func (s *Server) Publish(stats renderer.IterationStats, img *image.RGBA) {
	if s.events.count() == 0 {
		return
	}
	data, err := encodePNG(img)
	if err != nil {
		s.logger.Warn("failed to encode preview", zap.Error(err))
		return
	}
	update := ProgressUpdate{Stats: stats, ImageData: base64.StdEncoding.EncodeToString(data)}
	if dropped := s.events.send(update); dropped > 0 {
		s.logger.Debug("preview subscribers lagging", zap.Int("dropped", dropped))
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleImage returns the latest iteration as PNG
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	img, _ := s.source.Snapshot()
	if img == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no iteration has completed yet"})
		return
	}

	data, err := encodePNG(img)
	if err != nil {
		s.logger.Error("failed to encode image", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to encode image"})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleStats returns the per-iteration statistics recorded so far
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	_, history := s.source.Snapshot()
	resp := StatsResponse{Iterations: history}
	if len(history) > 0 {
		resp.Latest = &history[len(history)-1]
	}
	writeJSON(w, http.StatusOK, resp)
}

// PresetInfo describes a built-in scene in /api/scenes
type PresetInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ScenesResponse is the body of /api/scenes
type ScenesResponse struct {
	Presets []PresetInfo     `json:"presets"`
	Meshes  []scene.MeshFile `json:"meshes"`
}

// handleScenes lists the built-in scene presets and the STL files in the
// directory named by the "dir" query parameter
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	var resp ScenesResponse
	for _, p := range scene.Presets() {
		resp.Presets = append(resp.Presets, PresetInfo{Name: p.Name, Description: p.Description})
	}

	meshes, err := scene.ListMeshes(r.URL.Query().Get("dir"))
	if err != nil {
		s.logger.Warn("failed to list meshes", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	resp.Meshes = meshes
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
