package button

import "testing"

func TestResolveSize(t *testing.T) {
	tests := []struct {
		desired  int
		spec     MeasureSpec
		expected int
	}{
		{80, ExactSize(300), 300},
		{80, AtMostSize(300), 80},
		{400, AtMostSize(300), 300},
		{80, AnySize(), 80},
		{80, ExactSize(-5), 0},
		{-3, AnySize(), 0},
	}

	for _, test := range tests {
		result := ResolveSize(test.desired, test.spec)
		if result != test.expected {
			t.Errorf("ResolveSize(%d, %+v) = %d, expected %d", test.desired, test.spec, result, test.expected)
		}
	}
}

func TestMeasure_Stable(t *testing.T) {
	b := New(Options{}, nil, nil, nil)

	w1, h1 := b.Measure(AtMostSize(500), AnySize())
	w2, h2 := b.Measure(AtMostSize(500), AnySize())

	if w1 != w2 || h1 != h2 {
		t.Errorf("Expected identical results, got %dx%d and %dx%d", w1, h1, w2, h2)
	}
}

func TestMeasure_IntrinsicMinimums(t *testing.T) {
	b := New(Options{Padding: 10, MinWidth: 100, MinHeight: 20, TextSize: 30}, nil, nil, nil)

	w, h := b.Measure(AnySize(), AnySize())
	if w != 120 {
		t.Errorf("Expected width 2*padding+minWidth=120, got %d", w)
	}
	// Text line plus padding beats the enforced minimum height
	if h != 50 {
		t.Errorf("Expected height 50, got %d", h)
	}

	b = New(Options{Padding: 4, MinHeight: 64, TextSize: 12}, nil, nil, nil)
	if _, h := b.Measure(AnySize(), AnySize()); h != 64 {
		t.Errorf("Expected enforced min height 64, got %d", h)
	}
}
