package condns

// Condns is a bitmask of boolean facts about application state. Bit
// positions are assigned by the application (usually via a FlagSet); the
// engine only does mask arithmetic. Combining two condition sets is
// bitwise OR.
type Condns uint64

// Includes reports whether every bit of required is set in c.
func (c Condns) Includes(required Condns) bool {
	return c&required == required
}

// Intersects reports whether c and other share any set bit.
func (c Condns) Intersects(other Condns) bool {
	return c&other != 0
}

// Change is an atomic partial update to a condition set: the bits named in
// Mask take their value from Values, all other bits are left untouched.
// Bits of Values outside Mask are ignored.
type Change struct {
	Mask   Condns
	Values Condns
}

// ApplyTo returns current with the change applied.
func (ch Change) ApplyTo(current Condns) Condns {
	return current&^ch.Mask | ch.Values&ch.Mask
}
