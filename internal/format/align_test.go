package format

import "testing"

func TestNameAdvance(t *testing.T) {
	// Node names always consume the terminator slot, so aligned lengths
	// still advance a full extra word.
	cases := map[int]int{
		0: 4,
		1: 4,
		3: 4,
		4: 8,
		5: 8,
		7: 8,
		8: 12,
	}
	for n, want := range cases {
		if got := NameAdvance(n); got != want {
			t.Errorf("NameAdvance(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestValueAdvance(t *testing.T) {
	// Property values pad only when misaligned.
	cases := map[int]int{
		0: 0,
		1: 4,
		3: 4,
		4: 4,
		5: 8,
		8: 8,
	}
	for n, want := range cases {
		if got := ValueAdvance(n); got != want {
			t.Errorf("ValueAdvance(%d) = %d, want %d", n, got, want)
		}
	}
}
