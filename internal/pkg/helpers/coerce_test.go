package helpers

import "testing"

func TestIntOrNull(t *testing.T) {
	cases := []struct {
		in   string
		want *int
	}{
		{"10", intPtr(10)},
		{" 25 ", intPtr(25)},
		{"0", intPtr(0)},
		{"-3", intPtr(-3)},
		{"", nil},
		{"   ", nil},
		{"x", nil},
		{"10.5", nil},
	}

	for _, tc := range cases {
		got := IntOrNull(tc.in)
		if (got == nil) != (tc.want == nil) {
			t.Errorf("IntOrNull(%q): got %v, want %v", tc.in, got, tc.want)
			continue
		}
		if got != nil && *got != *tc.want {
			t.Errorf("IntOrNull(%q): got %d, want %d", tc.in, *got, *tc.want)
		}
	}
}

func TestIntValue(t *testing.T) {
	if IntValue(nil) != 0 {
		t.Error("nil must dereference to 0")
	}
	if IntValue(intPtr(7)) != 7 {
		t.Error("pointer must dereference to its value")
	}
}

func TestStringOrNull(t *testing.T) {
	if StringOrNull("  ") != nil {
		t.Error("blank string must yield nil")
	}
	got := StringOrNull(" Oxford ")
	if got == nil || *got != "Oxford" {
		t.Errorf("expected trimmed pointer, got %v", got)
	}
}

func intPtr(v int) *int {
	return &v
}
