// Package condns keeps terminal controls in sync with application state.
//
// Allowed here:
// - the condition bitmask, masked updates, and policy evaluation
// - the widget registry (slot arena, generation-checked handles)
// - flag naming helpers layered on top of the mask arithmetic
//
// Not allowed here:
// - rendering, key handling, or any knowledge of what a bit means
package condns
