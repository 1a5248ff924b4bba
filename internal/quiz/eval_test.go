package quiz

import "testing"

func TestEvalFlatLeftToRight(t *testing.T) {
	// ((5+3)*2)/4 = 4, а не 5+(3*2)/4
	got, err := EvalFlat([]int{5, 3, 2, 4}, []string{"+", "*", "/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
}

func TestEvalFlatIgnoresPrecedence(t *testing.T) {
	got, err := EvalFlat([]int{2, 3, 4}, []string{"+", "*"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 20 {
		t.Errorf("expected (2+3)*4=20, got %d", got)
	}
}

func TestEvalFlatBinary(t *testing.T) {
	cases := []struct {
		a, b int
		op   string
		want int
	}{
		{1234, 5678, "+", 6912},
		{100, 250, "-", -150},
		{12, 13, "*", 156},
		{97, 12, "/", 8},
		{11, 98, "/", 0},
	}

	for _, c := range cases {
		got, err := EvalFlat([]int{c.a, c.b}, []string{c.op})
		if err != nil {
			t.Fatalf("%d %s %d: unexpected error: %v", c.a, c.op, c.b, err)
		}
		if got != c.want {
			t.Errorf("%d %s %d: expected %d, got %d", c.a, c.op, c.b, c.want, got)
		}
	}
}

func TestEvalFlatErrors(t *testing.T) {
	if _, err := EvalFlat([]int{5, 0}, []string{"/"}); err == nil {
		t.Error("expected error on division by zero")
	}
	if _, err := EvalFlat(nil, nil); err == nil {
		t.Error("expected error on empty expression")
	}
	if _, err := EvalFlat([]int{1, 2}, []string{"%"}); err == nil {
		t.Error("expected error on unknown operator")
	}
	if _, err := EvalFlat([]int{1, 2, 3}, []string{"+"}); err == nil {
		t.Error("expected error on operand/operator mismatch")
	}
}
