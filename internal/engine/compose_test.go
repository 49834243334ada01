package engine

import (
	"errors"
	"testing"

	"RegimeCast/internal/domain/models"
)

func TestComposeEmpty(t *testing.T) {
	out, err := Compose(nil, models.CompositionAND)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty series, got %v", out)
	}
}

func TestComposeSingleElementBypassesMode(t *testing.T) {
	in := []float64{1, 0, 1}
	for _, mode := range []models.Composition{
		models.CompositionAND, models.CompositionOR, models.CompositionXOR,
		models.CompositionAVERAGE, models.CompositionSUM, models.Composition("BOGUS"),
	} {
		out, err := Compose([][]float64{in}, mode)
		if err != nil {
			t.Fatalf("mode %s: unexpected error: %v", mode, err)
		}
		for i := range in {
			if out[i] != in[i] {
				t.Fatalf("mode %s: expected element unchanged at %d", mode, i)
			}
		}
	}
}

func TestComposeBooleanModes(t *testing.T) {
	a := []float64{1, 1, 0, 0}
	b := []float64{1, 0, 1, 0}

	cases := []struct {
		mode models.Composition
		want []float64
	}{
		{models.CompositionAND, []float64{1, 0, 0, 0}},
		{models.CompositionOR, []float64{1, 1, 1, 0}},
		{models.CompositionXOR, []float64{0, 1, 1, 0}},
	}
	for _, tc := range cases {
		out, err := Compose([][]float64{a, b}, tc.mode)
		if err != nil {
			t.Fatalf("mode %s: unexpected error: %v", tc.mode, err)
		}
		for i := range tc.want {
			if out[i] != tc.want[i] {
				t.Fatalf("mode %s: index %d: got %v want %v", tc.mode, i, out[i], tc.want[i])
			}
			if out[i] != 0 && out[i] != 1 {
				t.Fatalf("mode %s: output not binary at %d", tc.mode, i)
			}
		}
	}
}

func TestComposeSumRange(t *testing.T) {
	series := [][]float64{
		{1, 0, 1},
		{1, 0, 0},
		{1, 0, 1},
	}
	out, err := Compose(series, models.CompositionSUM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{3, 0, 2}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, out[i], want[i])
		}
		if out[i] < 0 || out[i] > float64(len(series)) {
			t.Fatalf("SUM out of [0,k] at %d: %v", i, out[i])
		}
	}
}

func TestComposeAverageIsRunningPairwiseMean(t *testing.T) {
	series := [][]float64{
		{1, 1, 1},
		{0, 0, 0},
		{1, 1, 1},
	}
	out, err := Compose(series, models.CompositionAVERAGE)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// ((1+0)/2 + 1)/2 = 0.75, not the 2/3 a true mean would give.
	for i, v := range out {
		if v != 0.75 {
			t.Fatalf("index %d: got %v want 0.75", i, v)
		}
		if v < 0 || v > 1 {
			t.Fatalf("AVERAGE left [0,1] at %d: %v", i, v)
		}
	}
}

func TestComposeUnknownMode(t *testing.T) {
	_, err := Compose([][]float64{{1}, {0}}, models.Composition("NAND"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestComposeDoesNotMutateInputs(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{1, 1}
	if _, err := Compose([][]float64{a, b}, models.CompositionSUM); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a[0] != 1 || a[1] != 0 {
		t.Fatalf("first input mutated: %v", a)
	}
}
