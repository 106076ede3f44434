package output

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a message while a task of unknown length runs.
type Spinner struct {
	w        io.Writer
	message  string
	interval time.Duration
	done     chan struct{}
	exited   chan struct{}
	start    sync.Once
	stop     sync.Once
}

// NewSpinner creates a stopped spinner.
func NewSpinner(w io.Writer, message string) *Spinner {
	return &Spinner{
		w:        w,
		message:  message,
		interval: 100 * time.Millisecond,
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
}

// Start begins the animation in a goroutine.
func (s *Spinner) Start() {
	s.start.Do(func() {
		go s.run()
	})
}

func (s *Spinner) run() {
	defer close(s.exited)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		fmt.Fprintf(s.w, "\r%s %s", spinnerFrames[i%len(spinnerFrames)], s.message)
		select {
		case <-s.done:
			return
		case <-ticker.C:
		}
	}
}

// Stop ends the animation and clears the line.
func (s *Spinner) Stop() {
	s.finish("\r\033[K")
}

// Success ends the animation with a check mark and message.
func (s *Spinner) Success(message string) {
	s.finish(fmt.Sprintf("\r✓ %s\n", message))
}

// Fail ends the animation with a cross and message.
func (s *Spinner) Fail(message string) {
	s.finish(fmt.Sprintf("\r✗ %s\n", message))
}

// finish stops the goroutine, if any, before writing the final text so the
// two never interleave.
func (s *Spinner) finish(text string) {
	s.stop.Do(func() {
		close(s.done)
		started := true
		s.start.Do(func() { started = false })
		if started {
			<-s.exited
		}
		fmt.Fprint(s.w, text)
	})
}
