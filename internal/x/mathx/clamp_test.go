// internal/x/mathx/clamp_test.go
package mathx

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want int
	}{
		{50, 0, 100, 50},
		{-1, 0, 100, 0},
		{101, 0, 100, 100},
		{5, 10, 0, 5},  // swapped bounds
		{11, 10, 0, 10}, // swapped bounds
	}

	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%d,%d,%d)=%d want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
}
