package obj

import "testing"

func TestMoveAxis(t *testing.T) {
	cases := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{"none", false, false, 0},
		{"left", true, false, -1},
		{"right", false, true, 1},
		// Both directions held cancel out instead of drifting, regardless
		// of which physical key of a duplicate binding went down first.
		{"both", true, true, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := moveAxis(c.left, c.right); got != c.want {
				t.Fatalf("moveAxis(%v, %v) = %v, want %v", c.left, c.right, got, c.want)
			}
		})
	}
}
