package condns

import (
	"strings"
	"testing"
)

func TestFlagSetRegisterAssignsSequentialBits(t *testing.T) {
	fs := NewFlagSet()
	first, err := fs.Register("selection empty")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	second, err := fs.Register("read only")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if first != 1 || second != 2 {
		t.Errorf("masks = %b, %b, want 1, 10", first, second)
	}
	if fs.Count() != 2 {
		t.Errorf("count = %d, want 2", fs.Count())
	}
}

func TestFlagSetRejectsEmptyAndDuplicate(t *testing.T) {
	fs := NewFlagSet()
	if _, err := fs.Register(""); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := fs.Register("dirty"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := fs.Register("dirty"); err == nil {
		t.Error("expected error for duplicate name")
	}
}

func TestFlagSetExhaustsAt64(t *testing.T) {
	fs := NewFlagSet()
	for i := 0; i < 64; i++ {
		if _, err := fs.Register(strings.Repeat("x", i+1)); err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
	}
	if _, err := fs.Register("one too many"); err == nil {
		t.Error("expected error past 64 flags")
	}
}

func TestFlagSetMask(t *testing.T) {
	fs := NewFlagSet()
	a, _ := fs.Register("selection empty")
	b, _ := fs.Register("read only")
	got, err := fs.Mask("selection empty", "read only")
	if err != nil {
		t.Fatalf("mask: %v", err)
	}
	if got != a|b {
		t.Errorf("mask = %b, want %b", got, a|b)
	}
}

func TestFlagSetMaskSuggestsNearName(t *testing.T) {
	fs := NewFlagSet()
	if _, err := fs.Register("read only"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := fs.Mask("read onl")
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(err.Error(), `did you mean "read only"`) {
		t.Errorf("error = %q, want a suggestion", err)
	}

	_, err = fs.Mask("completely different")
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error = %q, should not suggest a distant name", err)
	}
}

func TestFlagSetName(t *testing.T) {
	fs := NewFlagSet()
	mask, _ := fs.Register("dirty")
	name, ok := fs.Name(mask)
	if !ok || name != "dirty" {
		t.Errorf("name = %q, %v, want %q, true", name, ok, "dirty")
	}
	if _, ok := fs.Name(mask << 1); ok {
		t.Error("unassigned bit should not resolve")
	}
	if _, ok := fs.Name(0b11); ok {
		t.Error("multi-bit mask should not resolve")
	}
}

func TestRegisterPairAndChangeTo(t *testing.T) {
	fs := NewFlagSet()
	p, err := fs.RegisterPair("alpha")
	if err != nil {
		t.Fatalf("register pair: %v", err)
	}
	if p.Active == 0 || p.Inactive == 0 || p.Active == p.Inactive {
		t.Fatalf("pair bits = %b, %b, want two distinct bits", p.Active, p.Inactive)
	}
	if p.Group() != p.Active|p.Inactive {
		t.Errorf("group = %b, want %b", p.Group(), p.Active|p.Inactive)
	}

	on := p.ChangeTo(true)
	if on.Mask != p.Group() || on.Values != p.Active {
		t.Errorf("ChangeTo(true) = %+v, want mask %b values %b", on, p.Group(), p.Active)
	}
	off := p.ChangeTo(false)
	if off.Mask != p.Group() || off.Values != p.Inactive {
		t.Errorf("ChangeTo(false) = %+v, want mask %b values %b", off, p.Group(), p.Inactive)
	}

	// Round-tripping through the changes keeps the pair mutually exclusive.
	state := on.ApplyTo(p.Inactive)
	if state != p.Active {
		t.Errorf("state after activate = %b, want %b", state, p.Active)
	}
	state = off.ApplyTo(state)
	if state != p.Inactive {
		t.Errorf("state after deactivate = %b, want %b", state, p.Inactive)
	}
}
