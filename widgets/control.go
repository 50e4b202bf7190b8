package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	jumpKeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	buttonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Background(lipgloss.Color("#313244")).Padding(0, 1)
	buttonOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70")).Background(lipgloss.Color("#1e1e2e")).Padding(0, 1)
	noteStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Italic(true)
)

// control holds the state shared by every enforceable widget.
type control struct {
	sensitive bool
	visible   bool
}

func newControl() control {
	return control{sensitive: true, visible: true}
}

func (c *control) SetSensitive(v bool) { c.sensitive = v }
func (c *control) SetVisible(v bool)   { c.visible = v }
func (c *control) Sensitive() bool     { return c.sensitive }
func (c *control) Visible() bool       { return c.visible }

// Button is a one-line action control. Insensitive buttons render dimmed
// and callers should not dispatch their action; invisible buttons render as
// nothing.
type Button struct {
	control
	Label   string
	JumpKey string
}

// NewButton returns a sensitive, visible button.
func NewButton(label, jumpKey string) *Button {
	return &Button{control: newControl(), Label: label, JumpKey: jumpKey}
}

func (b *Button) Render(width, height int) string {
	if !b.visible || width <= 0 || height <= 0 {
		return ""
	}
	text := b.Label
	if b.JumpKey != "" {
		text = "(" + b.JumpKey + ") " + text
	}
	style := buttonStyle
	if !b.sensitive {
		style = buttonOffStyle
	}
	return clipLine(style.Render(text), width)
}

// Toggle is an on/off control. Flipping an insensitive toggle is the
// caller's mistake; Flip reports whether it took effect.
type Toggle struct {
	control
	Label   string
	JumpKey string
	On      bool
}

// NewToggle returns a sensitive, visible toggle in the off position.
func NewToggle(label, jumpKey string) *Toggle {
	return &Toggle{control: newControl(), Label: label, JumpKey: jumpKey}
}

// Flip inverts the toggle if it is sensitive, reporting whether it moved.
func (tg *Toggle) Flip() bool {
	if !tg.sensitive {
		return false
	}
	tg.On = !tg.On
	return true
}

func (tg *Toggle) Render(width, height int) string {
	if !tg.visible || width <= 0 || height <= 0 {
		return ""
	}
	box := "[ ]"
	if tg.On {
		box = "[x]"
	}
	style := labelStyle
	if !tg.sensitive {
		style = dimStyle
	}
	line := style.Render(box+" ") + renderJumpLabel(tg.Label, tg.JumpKey, tg.sensitive)
	return clipLine(line, width)
}

// Note is a one-line hint, typically paired with a visibility policy.
type Note struct {
	control
	Text string
}

// NewNote returns a visible note.
func NewNote(text string) *Note {
	return &Note{control: newControl(), Text: text}
}

func (n *Note) Render(width, height int) string {
	if !n.visible || width <= 0 || height <= 0 {
		return ""
	}
	return clipLine(noteStyle.Render(n.Text), width)
}

func renderJumpLabel(label, jumpKey string, sensitive bool) string {
	if !sensitive {
		return dimStyle.Render(label)
	}
	if jumpKey == "" {
		return labelStyle.Render(label)
	}
	idx := strings.Index(strings.ToLower(label), strings.ToLower(jumpKey))
	if idx < 0 || len(jumpKey) != 1 {
		return labelStyle.Render(label) + dimStyle.Render(" ("+jumpKey+")")
	}
	return labelStyle.Render(label[:idx]) +
		jumpKeyStyle.Render(label[idx:idx+1]) +
		labelStyle.Render(label[idx+1:])
}

func clipLine(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}
