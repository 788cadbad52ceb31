package core

import "testing"

func TestPointArithmetic(t *testing.T) {
	a := P(5, 5)
	b := P(1, -2)

	if got := a.Add(b); got != P(6, 3) {
		t.Errorf("Add = %v, expected (6,3)", got)
	}
	if got := a.Sub(b); got != P(4, 7) {
		t.Errorf("Sub = %v, expected (4,7)", got)
	}
	if got := b.Neg(); got != P(-1, 2) {
		t.Errorf("Neg = %v, expected (-1,2)", got)
	}
	if !a.Sub(a).IsZero() {
		t.Error("a - a should be zero")
	}
	if a != P(5, 5) {
		t.Error("points should compare by value")
	}
}

func TestPointIn(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"origin", P(0, 0), true},
		{"far corner", P(9, 9), true},
		{"left of grid", P(-1, 5), false},
		{"right of grid", P(10, 5), false},
		{"above grid", P(5, -1), false},
		{"below grid", P(5, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.In(10, 10); got != tt.expected {
				t.Errorf("%v.In(10, 10) = %v, expected %v", tt.p, got, tt.expected)
			}
		})
	}
}

func TestDirectionVectors(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected Point
	}{
		{DirRight, P(1, 0)},
		{DirLeft, P(-1, 0)},
		{DirDown, P(0, 1)},
		{DirUp, P(0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			if got := tt.dir.Vector(); got != tt.expected {
				t.Errorf("Vector() = %v, expected %v", got, tt.expected)
			}
			back, ok := DirectionOf(tt.expected)
			if !ok || back != tt.dir {
				t.Errorf("DirectionOf(%v) = %v, %v", tt.expected, back, ok)
			}
			if !tt.dir.Opposite().Vector().Add(tt.expected).IsZero() {
				t.Errorf("Opposite of %v does not negate its vector", tt.dir)
			}
		})
	}
}

func TestDirectionOfRejectsNonUnit(t *testing.T) {
	for _, v := range []Point{P(0, 0), P(2, 0), P(1, 1), P(0, -2)} {
		if _, ok := DirectionOf(v); ok {
			t.Errorf("DirectionOf(%v) should fail", v)
		}
	}
}

func TestIsReversal(t *testing.T) {
	for _, cur := range Directions {
		for _, req := range Directions {
			expected := req == cur.Opposite()
			if got := IsReversal(cur, req); got != expected {
				t.Errorf("IsReversal(%v, %v) = %v, expected %v", cur, req, got, expected)
			}
		}
	}
}

func TestIsReversalChecksBothAxes(t *testing.T) {
	// Up and down share x == 0, so a check that only looks at x would call
	// every vertical pair a reversal.
	if IsReversal(DirUp, DirUp) {
		t.Error("continuing up is not a reversal")
	}
	if !IsReversal(DirUp, DirDown) {
		t.Error("up -> down is a reversal")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		result := Clamp(tt.val, tt.min, tt.max)
		if result != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tt.val, tt.min, tt.max, result, tt.expected)
		}
	}
}
