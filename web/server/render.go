package server

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// TileUpdate represents a single tile update sent via SSE
type TileUpdate struct {
	TileX      int    `json:"tileX"`
	TileY      int    `json:"tileY"`
	ImageData  string `json:"imageData"`  // Base64 encoded PNG of just this tile
	TileNumber int    `json:"tileNumber"` // Tiles finished so far (1-based)
	TotalTiles int    `json:"totalTiles"` // Total number of tiles in the image
}

// CompleteUpdate is the final event of a successful render
type CompleteUpdate struct {
	ImageData        string `json:"imageData"` // Base64 encoded PNG of the full frame
	ElapsedMs        int64  `json:"elapsedMs"`
	TotalPixels      int    `json:"totalPixels"`
	SpherePixels     int    `json:"spherePixels"`
	FacetPixels      int    `json:"facetPixels"`
	BackgroundPixels int    `json:"backgroundPixels"`
	PrimitiveCount   int    `json:"primitiveCount"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "tile", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRender renders a scene and streams finished tiles via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Single writer goroutine owns the response
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(ctx, w, sseEventChan)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req.SceneRequest)
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	consoleChan := make(chan ConsoleMessage, 50)
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
	}()
	logger := NewWebLogger(fmt.Sprintf("render-%d", time.Now().UnixNano()), consoleChan)

	config := renderer.Config{TileSize: req.TileSize, NumWorkers: req.NumWorkers}
	raytracer := renderer.NewRaytracer(sceneObj, config, logger)

	startTime := time.Now()
	stats, err := raytracer.Render(ctx, func(tile renderer.TileCompletionResult) {
		s.handleTileUpdate(ctx, sseEventChan, raytracer.Canvas(), tile)
	})

	// Drain console output before the final event
	close(consoleChan)
	<-consoleDone

	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		return
	}

	imageData, err := s.imageToBase64PNG(raytracer.Canvas())
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	data, err := json.Marshal(CompleteUpdate{
		ImageData:        imageData,
		ElapsedMs:        time.Since(startTime).Milliseconds(),
		TotalPixels:      stats.TotalPixels,
		SpherePixels:     stats.SpherePixels,
		FacetPixels:      stats.FacetPixels,
		BackgroundPixels: stats.BackgroundPixels,
		PrimitiveCount:   sceneObj.GetPrimitiveCount(),
	})
	if err != nil {
		log.Printf("Error marshaling completion: %v", err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: string(data)}:
	case <-ctx.Done():
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents handles writing all SSE events in a single goroutine
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan <-chan SSEEvent) {
	flusher, _ := w.(http.Flusher)
	for event := range sseEventChan {
		// Keep draining after a disconnect so senders never block
		if ctx.Err() != nil {
			continue
		}

		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			continue
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

// streamConsoleMessages forwards renderer log lines as console events
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			log.Printf("Error marshaling console message: %v", err)
			continue
		}

		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		}
	}
}

// handleTileUpdate encodes a finished tile and sends it
func (s *Server) handleTileUpdate(ctx context.Context, sseEventChan chan<- SSEEvent, canvas *renderer.Canvas, tile renderer.TileCompletionResult) {
	if ctx.Err() != nil {
		return
	}

	tileImage := image.NewRGBA(tile.Bounds)
	draw.Draw(tileImage, tile.Bounds, canvas, tile.Bounds.Min, draw.Src)

	tileData, err := s.imageToBase64PNG(tileImage)
	if err != nil {
		log.Printf("Error encoding tile image (%d, %d): %v", tile.TileX, tile.TileY, err)
		return
	}

	data, err := json.Marshal(TileUpdate{
		TileX:      tile.TileX,
		TileY:      tile.TileY,
		ImageData:  tileData,
		TileNumber: tile.TileNumber,
		TotalTiles: tile.TotalTiles,
	})
	if err != nil {
		log.Printf("Error marshaling tile update: %v", err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "tile", Data: string(data)}:
	case <-ctx.Done():
	}
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan<- SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}
