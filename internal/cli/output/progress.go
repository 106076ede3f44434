package output

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// ProgressBar draws a single-line progress bar for a counted task.
// It redraws only when the whole-percent value changes.
type ProgressBar struct {
	mu       sync.Mutex
	w        io.Writer
	title    string
	width    int
	current  int
	total    int
	lastDraw int
}

// NewProgressBar creates a bar labelled with title.
func NewProgressBar(w io.Writer, title string) *ProgressBar {
	return &ProgressBar{
		w:        w,
		title:    title,
		width:    40,
		lastDraw: -1,
	}
}

// Update sets progress to done of total.
func (p *ProgressBar) Update(done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = done
	p.total = total
	p.render(false)
}

// Increment advances progress by n.
func (p *ProgressBar) Increment(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current += n
	p.render(false)
}

// Finish draws the bar at 100% and ends the line.
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = p.total
	p.render(true)
	fmt.Fprintln(p.w)
}

func (p *ProgressBar) percent() int {
	if p.total <= 0 {
		return 0
	}
	pct := p.current * 100 / p.total
	return min(max(pct, 0), 100)
}

func (p *ProgressBar) render(force bool) {
	pct := p.percent()
	if !force && pct == p.lastDraw {
		return
	}
	p.lastDraw = pct

	if p.total <= 0 {
		fmt.Fprintf(p.w, "\r%s %d", p.title, p.current)
		return
	}

	filled := p.width * pct / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", p.width-filled)
	fmt.Fprintf(p.w, "\r%s [%s] %3d%% (%d/%d)", p.title, bar, pct, p.current, p.total)
}
