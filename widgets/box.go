package widgets

import "github.com/charmbracelet/lipgloss"

// Box frames another widget with a rounded border and a title.
type Box struct {
	Title string
	Child Widget
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	inner := ""
	if b.Child != nil {
		inner = b.Child.Render(maxInt(1, width-4), maxInt(1, height-2))
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 2).
		Height(maxInt(1, height-2))
	return style.Render("[" + b.Title + "]\n" + inner)
}
