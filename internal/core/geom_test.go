package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(40, 12, 10, 4)
	if r != NewRect(35, 10, 10, 4) {
		t.Errorf("CenteredRect() = %+v, expected {35 10 10 4}", r)
	}
	cx, cy := r.Center()
	if cx != 40 || cy != 12 {
		t.Errorf("Center() = (%d, %d), expected (40, 12)", cx, cy)
	}
}

func TestColorShading(t *testing.T) {
	c := RGB(250, 100, 10)

	if got := c.Lighten(80); got != RGB(255, 180, 90) {
		t.Errorf("Lighten(80) = %+v, expected saturated (255,180,90)", got)
	}
	if got := c.Darken(60); got != RGB(190, 40, 0) {
		t.Errorf("Darken(60) = %+v, expected saturated (190,40,0)", got)
	}
	if c.Hex() != "#fa640a" {
		t.Errorf("Hex() = %q, expected #fa640a", c.Hex())
	}
	if ColorDefault.Hex() != "" || !ColorDefault.IsDefault() {
		t.Error("Zero color should be the terminal default")
	}
}
