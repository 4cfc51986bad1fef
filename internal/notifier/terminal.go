package notifier

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// TerminalNotifier writes Markdown replies to a terminal or pipe.
type TerminalNotifier struct {
	out      io.Writer
	renderer *glamour.TermRenderer
}

// NewTerminalNotifier styles output with glamour when styled is true and
// writes raw Markdown otherwise.
func NewTerminalNotifier(out io.Writer, styled bool, width int) (*TerminalNotifier, error) {
	n := &TerminalNotifier{out: out}
	if !styled {
		return n, nil
	}
	if width <= 0 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	n.renderer = r
	return n, nil
}

// Send writes text, rendered if styling is enabled.
func (n *TerminalNotifier) Send(text string) error {
	if n.renderer != nil {
		rendered, err := n.renderer.Render(text)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		text = rendered
	}
	_, err := io.WriteString(n.out, text)
	return err
}
