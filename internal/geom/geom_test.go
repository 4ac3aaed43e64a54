package geom

import "testing"

func TestRectFromPointsNormalizes(t *testing.T) {
	want := RectFromMinMax(Pt(100, 100), Pt(300, 200))

	got := RectFromPoints(Pt(300, 200), Pt(100, 100))
	if got != want {
		t.Fatalf("reverse drag: got %+v, want %+v", got, want)
	}
	got = RectFromPoints(Pt(100, 100), Pt(300, 200))
	if got != want {
		t.Fatalf("forward drag: got %+v, want %+v", got, want)
	}
	// Opposite corners may also be top-right / bottom-left.
	got = RectFromPoints(Pt(300, 100), Pt(100, 200))
	if got != want {
		t.Fatalf("mixed corners: got %+v, want %+v", got, want)
	}
}

func TestRectFromMinSize(t *testing.T) {
	r := RectFromMinSize(Pt(10, 20), 100, 50)
	if r.Max != Pt(110, 70) {
		t.Fatalf("max = %+v, want (110, 70)", r.Max)
	}
	if r.Width() != 100 || r.Height() != 50 {
		t.Fatalf("size = %vx%v, want 100x50", r.Width(), r.Height())
	}
	if r.Area() != 5000 {
		t.Fatalf("area = %v, want 5000", r.Area())
	}
}

func TestContainsHalfOpen(t *testing.T) {
	r := RectFromMinSize(Pt(0, 0), 1920, 1080)
	cases := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(960, 540), true},
		{Pt(1919.9, 1079.9), true},
		{Pt(1920, 540), false}, // exactly on max edge
		{Pt(960, 1080), false},
		{Pt(-1, 540), false},
		{Pt(2000, 540), false},
	}
	for _, c := range cases {
		if got := r.Contains(c.p); got != c.want {
			t.Errorf("Contains(%+v) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestCenter(t *testing.T) {
	r := RectFromMinSize(Pt(100, 100), 200, 100)
	if c := r.Center(); c != Pt(200, 150) {
		t.Fatalf("center = %+v, want (200, 150)", c)
	}
}

func TestUnion(t *testing.T) {
	a := RectFromMinSize(Pt(0, 0), 1920, 1080)
	b := RectFromMinSize(Pt(1920, 0), 1920, 1080)
	u := a.Union(b)
	if u.Min != Pt(0, 0) || u.Max != Pt(3840, 1080) {
		t.Fatalf("union = %+v", u)
	}
	// Union with a rectangle above and to the left extends the min corner.
	c := RectFromMinSize(Pt(-1920, -500), 1920, 1080)
	u = u.Union(c)
	if u.Min != Pt(-1920, -500) || u.Max != Pt(3840, 1080) {
		t.Fatalf("union = %+v", u)
	}
}

func TestTranslate(t *testing.T) {
	r := RectFromMinSize(Pt(2000, 300), 100, 100)
	moved := r.Translate(-1920, 0)
	if moved.Min != Pt(80, 300) || moved.Width() != 100 {
		t.Fatalf("translate = %+v", moved)
	}
}

func TestScaleIsComponentWise(t *testing.T) {
	r := RectFromMinSize(Pt(10, 20), 100, 50)
	s := r.Scale(2.0, 1.5)
	if s.Min != Pt(20, 30) {
		t.Fatalf("min = %+v, want (20, 30)", s.Min)
	}
	if s.Width() != 200 || s.Height() != 75 {
		t.Fatalf("size = %vx%v, want 200x75", s.Width(), s.Height())
	}
}
