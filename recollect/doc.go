// Package recollect remembers widget state across sessions: window sizes,
// pane splits, toggle positions. It is a string key-value store with a
// save history, backed by sqlite.
package recollect
