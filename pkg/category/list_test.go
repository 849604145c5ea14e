package category

import (
	"math"
	"testing"

	"github.com/matzehuels/chartaxis/pkg/errors"
)

func TestListMismatch(t *testing.T) {
	tests := []struct {
		name string
		a, b List
		want int
	}{
		{"equal", Texts("A", "B", "C"), Texts("A", "B", "C"), -1},
		{"empty", List{}, nil, -1},
		{"last differs", Texts("A", "B", "C"), Texts("A", "B", "D"), 2},
		{"first differs", Texts("X", "B"), Texts("A", "B"), 0},
		{"shorter", Texts("A", "B"), Texts("A", "B", "C"), 2},
		{"longer", Texts("A", "B", "C"), Texts("A"), 1},
		{"order", Texts("A", "B"), Texts("B", "A"), 0},
		{"kind", Numbers(1, 2), Texts("1", "2"), 0},
		{"nan", Numbers(1, math.NaN(), 3), Numbers(1, math.NaN(), 3), -1},
		{"nan against number", Numbers(1, math.NaN()), Numbers(1, 2), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Mismatch(tt.b); got != tt.want {
				t.Errorf("Mismatch() = %d, want %d", got, tt.want)
			}
			if got := tt.a.Equal(tt.b); got != (tt.want < 0) {
				t.Errorf("Equal() = %v, want %v", got, tt.want < 0)
			}
		})
	}
}

func TestListCheckKind(t *testing.T) {
	mixed := List{Number(1), Text("two")}
	err := mixed.CheckKind(Numeric)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("CheckKind() error = %v, want INVALID_INPUT", err)
	}
	if err := Numbers(1, 2).CheckKind(Numeric); err != nil {
		t.Errorf("CheckKind() error = %v", err)
	}
}

func TestListExtent(t *testing.T) {
	lo, hi, ok := Numbers(5, -2, 9, 3).Extent()
	if !ok || lo != -2 || hi != 9 {
		t.Errorf("Extent() = (%v, %v, %v), want (-2, 9, true)", lo, hi, ok)
	}

	lo, hi, ok = List{EpochMillis(2000), EpochMillis(1000)}.Extent()
	if !ok || lo != 1000 || hi != 2000 {
		t.Errorf("Extent() = (%v, %v, %v), want (1000, 2000, true)", lo, hi, ok)
	}

	if _, _, ok := Texts("A").Extent(); ok {
		t.Error("Extent() of a textual list should not be ok")
	}
}

func TestListStrings(t *testing.T) {
	got := Numbers(1, 2.5).Strings()
	if len(got) != 2 || got[0] != "1" || got[1] != "2.5" {
		t.Errorf("Strings() = %v", got)
	}
}
