// Package widgets contains terminal controls and composition helpers.
//
// Allowed here:
// - controls carrying their own sensitivity/visibility state
// - stateless composition helpers (stacks, padding)
//
// Not allowed here:
// - key handling, condition bookkeeping, or persistence
package widgets
