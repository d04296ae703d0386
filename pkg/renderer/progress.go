package renderer

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// progressWidth is the number of characters in the bar
const progressWidth = 34

// ProgressBar draws a single-line textual progress bar. Workers call Update
// concurrently, so every redraw happens under a mutex.
type ProgressBar struct {
	mu      sync.Mutex
	out     io.Writer
	current int
	total   int
	start   time.Time
}

// NewProgressBar creates a bar counting up to total. A nil writer discards output.
func NewProgressBar(out io.Writer, total int) *ProgressBar {
	if out == nil {
		out = io.Discard
	}
	return &ProgressBar{out: out, total: max(1, total), start: time.Now()}
}

// Update advances the bar by one step and redraws it
func (pb *ProgressBar) Update() {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.current = min(pb.total, pb.current+1)
	pb.display("")
}

// Current returns the number of completed steps
func (pb *ProgressBar) Current() int {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	return pb.current
}

// Done redraws the bar with a trailing message and ends the line
func (pb *ProgressBar) Done(msg string) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.display(msg)
	fmt.Fprintln(pb.out)
}

// display must be called with the mutex held
func (pb *ProgressBar) display(msg string) {
	pct := pb.current * 100 / pb.total
	filled := pct * progressWidth / 100
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", progressWidth-filled)
	elapsed := time.Since(pb.start).Seconds()
	fmt.Fprintf(pb.out, "%4d / %d (%3d%%) [%s] %.3fs %s    \r", pb.current, pb.total, pct, bar, elapsed, msg)
}
