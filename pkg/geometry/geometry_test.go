package geometry

import "testing"

func TestRect_ContainsPoint_EdgeRules(t *testing.T) {
	r := Rect{Pos: Offset{X: 10, Y: 10}, Size: Size{Width: 20, Height: 20}}

	cases := []struct {
		name string
		p    Offset
		want bool
	}{
		{"interior", Offset{X: 15, Y: 15}, true},
		{"top-left corner", Offset{X: 10, Y: 10}, true},
		{"top edge", Offset{X: 20, Y: 10}, true},
		{"left edge", Offset{X: 10, Y: 20}, true},
		{"right edge", Offset{X: 30, Y: 15}, false},
		{"bottom edge", Offset{X: 15, Y: 30}, false},
		{"outside", Offset{X: 0, Y: 0}, false},
	}
	for _, c := range cases {
		if got := r.ContainsPoint(c.p); got != c.want {
			t.Errorf("%s: ContainsPoint(%v) = %v, want %v", c.name, c.p, got, c.want)
		}
	}
}

func TestRect_Constrain(t *testing.T) {
	a := Rect{Pos: Offset{X: 0, Y: 0}, Size: Size{Width: 100, Height: 100}}
	b := Rect{Pos: Offset{X: 50, Y: 50}, Size: Size{Width: 100, Height: 100}}

	got := a.Constrain(b)
	want := Rect{Pos: Offset{X: 50, Y: 50}, Size: Size{Width: 50, Height: 50}}
	if got != want {
		t.Errorf("Constrain = %+v, want %+v", got, want)
	}
}

func TestRect_Constrain_Disjoint(t *testing.T) {
	a := Rect{Pos: Offset{X: 0, Y: 0}, Size: Size{Width: 10, Height: 10}}
	b := Rect{Pos: Offset{X: 50, Y: 50}, Size: Size{Width: 10, Height: 10}}

	got := a.Constrain(b)
	if !got.Size.IsEmpty() {
		t.Errorf("disjoint rects should constrain to an empty rect, got %+v", got)
	}
	if got.ContainsPoint(got.Pos) {
		t.Error("an empty rect must contain no points")
	}
}

func TestTransform_TranslationThenScaling(t *testing.T) {
	// Viewport at (100, 100), scale factor 2: the surface point (140, 160)
	// should land at local (20, 30).
	tr := Translation(Offset{X: -100, Y: -100}).Then(Scaling(0.5))

	got := tr.Apply(Offset{X: 140, Y: 160})
	want := Offset{X: 20, Y: 30}
	if got != want {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestTransform_ThenOrderMatters(t *testing.T) {
	p := Offset{X: 10, Y: 0}

	translateFirst := Translation(Offset{X: 10, Y: 0}).Then(Scaling(2))
	scaleFirst := Scaling(2).Then(Translation(Offset{X: 10, Y: 0}))

	if got := translateFirst.Apply(p); got != (Offset{X: 40, Y: 0}) {
		t.Errorf("translate-then-scale = %v, want (40, 0)", got)
	}
	if got := scaleFirst.Apply(p); got != (Offset{X: 30, Y: 0}) {
		t.Errorf("scale-then-translate = %v, want (30, 0)", got)
	}
}

func TestTransform_Identity(t *testing.T) {
	p := Offset{X: 3, Y: -7}
	if got := Identity().Apply(p); got != p {
		t.Errorf("Identity().Apply(%v) = %v", p, got)
	}
}

func TestOffset_Arithmetic(t *testing.T) {
	a := Offset{X: 3, Y: 4}
	b := Offset{X: 1, Y: 2}

	if got := a.Add(b); got != (Offset{X: 4, Y: 6}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Offset{X: 2, Y: 2}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Div(2); got != (Offset{X: 1.5, Y: 2}) {
		t.Errorf("Div = %v", got)
	}
}
