package timer

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		remaining, total int
		want             Urgency
	}{
		{60, 60, Normal},
		{31, 60, Normal},
		{30, 60, Caution},
		{15, 60, Warning},
		{7, 60, Warning},
		{6, 60, Critical},
		{0, 60, Critical},
		{0, 0, Critical},
	}
	for _, c := range cases {
		if got := Classify(c.remaining, c.total); got != c.want {
			t.Fatalf("Classify(%d, %d) = %s, want %s", c.remaining, c.total, got, c.want)
		}
	}
}

func TestClassifyBasic(t *testing.T) {
	if got := ClassifyBasic(30, 60); got != Normal {
		t.Fatalf("expected caution to fold into normal, got %s", got)
	}
	if got := ClassifyBasic(15, 60); got != Warning {
		t.Fatalf("expected warning, got %s", got)
	}
}
