package recollect

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is a widget extent in terminal cells.
type Size struct {
	Width  int
	Height int
}

// FormatSize renders a size as "WxH".
func FormatSize(sz Size) string {
	return fmt.Sprintf("%dx%d", sz.Width, sz.Height)
}

// ParseSize parses "WxH" geometry strings, e.g. "80x24".
func ParseSize(s string) (Size, error) {
	w, h, found := strings.Cut(strings.TrimSpace(s), "x")
	if !found {
		return Size{}, fmt.Errorf("bad geometry %q: want WxH", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Size{}, fmt.Errorf("bad geometry %q: width: %w", s, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Size{}, fmt.Errorf("bad geometry %q: height: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return Size{}, fmt.Errorf("bad geometry %q: extents must be positive", s)
	}
	return Size{Width: width, Height: height}, nil
}

// SaveSize remembers a widget size under key.
func (s *Store) SaveSize(key string, sz Size) error {
	return s.Save(key, FormatSize(sz))
}

// LoadSize recalls a widget size saved under key.
func (s *Store) LoadSize(key string) (Size, bool, error) {
	raw, ok, err := s.Load(key)
	if err != nil || !ok {
		return Size{}, false, err
	}
	sz, err := ParseSize(raw)
	if err != nil {
		return Size{}, false, err
	}
	return sz, true, nil
}

// SaveRatio remembers a pane split position (0..1) under key.
func (s *Store) SaveRatio(key string, ratio float64) error {
	if ratio < 0 || ratio > 1 {
		return fmt.Errorf("ratio %v out of range [0, 1]", ratio)
	}
	return s.Save(key, strconv.FormatFloat(ratio, 'f', -1, 64))
}

// LoadRatio recalls a pane split position saved under key.
func (s *Store) LoadRatio(key string) (float64, bool, error) {
	raw, ok, err := s.Load(key)
	if err != nil || !ok {
		return 0, false, err
	}
	ratio, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("bad ratio %q: %w", raw, err)
	}
	return ratio, true, nil
}
