// Package clipboard provides the sinks that receive the final color list.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when no clipboard utility can be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Sink replaces the whole clipboard content with text.
type Sink interface {
	Name() string
	Write(text string) error
}

// Backend names accepted by New.
const (
	BackendSystem = "system"
	BackendOSC52  = "osc52"
	BackendNone   = "none"
)

// New returns the sink registered under name.
// The OSC52 sink writes its escape sequence to w (stdout when nil).
func New(name string, w io.Writer) (Sink, error) {
	switch strings.ToLower(name) {
	case "", BackendSystem:
		return NewSystem(), nil
	case BackendOSC52:
		return NewOSC52(w), nil
	case BackendNone:
		return &Memory{}, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q (must be system, osc52 or none)", name)
	}
}

// System writes to the native clipboard (pbcopy, xclip/xsel/wl-copy, Win32).
type System struct{}

var _ Sink = (*System)(nil)

// NewSystem returns the native clipboard sink.
func NewSystem() *System {
	return &System{}
}

func (*System) Name() string { return BackendSystem }

// Write copies text to the system clipboard.
func (*System) Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility found: %w", ErrUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard copy failed: %w", err)
	}
	return nil
}

// OSC52 asks the terminal emulator to set the clipboard. It works over SSH
// and inside containers where no clipboard utility exists.
type OSC52 struct {
	w io.Writer
}

var _ Sink = (*OSC52)(nil)

// NewOSC52 returns a sink that writes OSC 52 sequences to w.
func NewOSC52(w io.Writer) *OSC52 {
	if w == nil {
		w = os.Stdout
	}
	return &OSC52{w: w}
}

func (*OSC52) Name() string { return BackendOSC52 }

// Write emits the OSC 52 sequence for text, wrapped for tmux or screen when
// running inside them.
func (o *OSC52) Write(text string) error {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(os.Getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.w); err != nil {
		return fmt.Errorf("osc52 write failed: %w", err)
	}
	return nil
}

// Memory keeps the clipboard content in process. It backs dry runs and tests.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
}

var _ Sink = (*Memory)(nil)

func (*Memory) Name() string { return BackendNone }

func (m *Memory) Write(text string) error {
	m.mu.Lock()
	m.text = text
	m.writes++
	m.mu.Unlock()
	return nil
}

// Text returns the last written content.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes reports how many times the content was replaced.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
