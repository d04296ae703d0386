package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// subscriberBuffer is how many updates a slow client may fall behind by
// before updates are dropped for it
const subscriberBuffer = 4

// broadcaster fans progress updates out to event stream clients without
// blocking the sender
type broadcaster struct {
	mu     sync.Mutex
	subs   map[chan ProgressUpdate]struct{}
	closed bool
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[chan ProgressUpdate]struct{})}
}

// subscribe registers a client. The channel is closed on unsubscribe or
// when the broadcaster shuts down.
func (b *broadcaster) subscribe() chan ProgressUpdate {
	ch := make(chan ProgressUpdate, subscriberBuffer)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subs[ch] = struct{}{}
	return ch
}

func (b *broadcaster) unsubscribe(ch chan ProgressUpdate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
}

// send delivers the update to every subscriber with room and returns the
// number that were skipped
func (b *broadcaster) send(update ProgressUpdate) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	dropped := 0
	for ch := range b.subs {
		select {
		case ch <- update:
		default:
			dropped++
		}
	}
	return dropped
}

func (b *broadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *broadcaster) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}

// handleEvents streams a "progress" event per completed iteration until the
// client disconnects
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "streaming not supported"})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	updates := s.events.subscribe()
	defer s.events.unsubscribe(updates)

	for {
		select {
		case <-r.Context().Done():
			return
		case update, ok := <-updates:
			if !ok {
				sendSSEEvent(w, flusher, "complete", `"render finished"`)
				return
			}
			data, err := json.Marshal(update)
			if err != nil {
				sendSSEEvent(w, flusher, "error", fmt.Sprintf("%q", err.Error()))
				continue
			}
			sendSSEEvent(w, flusher, "progress", string(data))
		}
	}
}

func sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event, data string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	flusher.Flush()
}

// Finish ends every event stream with a "complete" event. Later
// subscribers receive it immediately.
func (s *Server) Finish() {
	s.events.close()
}
