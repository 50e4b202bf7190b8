package condns

import "testing"

func TestChangeApplyToPartialMask(t *testing.T) {
	cases := []struct {
		name    string
		current Condns
		change  Change
		want    Condns
	}{
		{"set one bit", 0b0000, Change{Mask: 0b0001, Values: 0b0001}, 0b0001},
		{"clear one bit", 0b0011, Change{Mask: 0b0001, Values: 0}, 0b0010},
		{"untouched outside mask", 0b1100, Change{Mask: 0b0011, Values: 0b0001}, 0b1101},
		{"values outside mask ignored", 0b0000, Change{Mask: 0b0001, Values: 0b1111}, 0b0001},
		{"empty mask is a no-op", 0b1010, Change{Mask: 0, Values: 0b1111}, 0b1010},
		{"flip a pair", 0b0001, Change{Mask: 0b0011, Values: 0b0010}, 0b0010},
	}
	for _, tc := range cases {
		if got := tc.change.ApplyTo(tc.current); got != tc.want {
			t.Errorf("%s: got %04b, want %04b", tc.name, got, tc.want)
		}
	}
}

func TestCondnsIncludes(t *testing.T) {
	c := Condns(0b0110)
	if !c.Includes(0b0010) {
		t.Error("subset should be included")
	}
	if !c.Includes(0b0110) {
		t.Error("exact mask should be included")
	}
	if c.Includes(0b0111) {
		t.Error("superset should not be included")
	}
	if !c.Includes(0) {
		t.Error("empty mask is always included")
	}
}

func TestCondnsIntersects(t *testing.T) {
	if !Condns(0b0110).Intersects(0b0010) {
		t.Error("expected shared bit")
	}
	if Condns(0b0110).Intersects(0b1001) {
		t.Error("expected no shared bit")
	}
}
