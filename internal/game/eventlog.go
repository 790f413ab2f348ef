package game

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logMaxEntries = 40
	logLineHeight = 14
)

// EventLog is a ring buffer of log lines rendered on-screen. It implements
// io.Writer so a log.Logger can write into it.
type EventLog struct {
	entries []string
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{
		entries: make([]string, logMaxEntries),
	}
}

// Add appends an entry to the log.
func (el *EventLog) Add(msg string) {
	el.entries[el.head] = msg
	el.head = (el.head + 1) % logMaxEntries
	if el.count < logMaxEntries {
		el.count++
	}
}

// Write adds one entry per non-empty line of p.
func (el *EventLog) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			el.Add(line)
		}
	}
	return len(p), nil
}

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []string {
	result := make([]string, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + logMaxEntries) % logMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

// Draw renders the newest entries that fit into a box, newest at the bottom.
func (el *EventLog) Draw(screen *ebiten.Image, x, y, w, h int) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 10, G: 12, B: 10, A: 248}, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w), 16, color.RGBA{R: 20, G: 30, B: 20, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENT LOG", x+8, y+2)
	vector.StrokeLine(screen, float32(x), float32(y+16), float32(x+w), float32(y+16), 1.0, color.RGBA{R: 50, G: 80, B: 50, A: 200}, false)

	entries := el.Recent()
	maxVisible := (h - 24) / logLineHeight
	if maxVisible < 1 {
		return
	}
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	ly := y + 20
	for _, e := range entries {
		ebitenutil.DebugPrintAt(screen, e, x+8, ly)
		ly += logLineHeight
	}
}
