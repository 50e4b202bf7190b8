package recollect

import "testing"

func TestParseSizeValid(t *testing.T) {
	cases := []struct {
		in   string
		want Size
	}{
		{"80x24", Size{80, 24}},
		{"120x40", Size{120, 40}},
		{" 80x24 ", Size{80, 24}},
	}
	for _, tc := range cases {
		got, err := ParseSize(tc.in)
		if err != nil {
			t.Errorf("ParseSize(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSize(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, in := range []string{"", "80", "80x", "x24", "80x-1", "0x24", "axb", "80x24x3"} {
		if _, err := ParseSize(in); err == nil {
			t.Errorf("ParseSize(%q): expected error", in)
		}
	}
}

func TestFormatSizeRoundTrip(t *testing.T) {
	sz := Size{Width: 132, Height: 43}
	got, err := ParseSize(FormatSize(sz))
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if got != sz {
		t.Errorf("round trip = %+v, want %+v", got, sz)
	}
}

func TestSizeRecollection(t *testing.T) {
	s := openTestStore(t)
	if _, ok, err := s.LoadSize("win"); ok || err != nil {
		t.Fatalf("LoadSize before save = ok %v, err %v", ok, err)
	}
	if err := s.SaveSize("win", Size{Width: 100, Height: 30}); err != nil {
		t.Fatalf("SaveSize: %v", err)
	}
	got, ok, err := s.LoadSize("win")
	if err != nil {
		t.Fatalf("LoadSize: %v", err)
	}
	if !ok || got != (Size{Width: 100, Height: 30}) {
		t.Errorf("LoadSize = %+v, %v", got, ok)
	}
}

func TestRatioRecollection(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveRatio("split", 1.5); err == nil {
		t.Error("out-of-range ratio should be rejected")
	}
	if err := s.SaveRatio("split", 0.62); err != nil {
		t.Fatalf("SaveRatio: %v", err)
	}
	got, ok, err := s.LoadRatio("split")
	if err != nil {
		t.Fatalf("LoadRatio: %v", err)
	}
	if !ok || got != 0.62 {
		t.Errorf("LoadRatio = %v, %v, want 0.62, true", got, ok)
	}
}
