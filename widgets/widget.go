package widgets

// Widget is anything that can draw itself into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}

// Stateful is implemented by controls whose sensitivity and visibility are
// driven externally, typically by a condition enforcer. Hidden controls
// render as nothing and stacks skip them entirely.
type Stateful interface {
	Widget
	SetSensitive(bool)
	SetVisible(bool)
	Sensitive() bool
	Visible() bool
}
