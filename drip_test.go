package divcast

import (
	"math"
	"testing"
)

func TestSimulateDRIP(t *testing.T) {
	path := SimulateDRIP(100, 5, 100, 1)
	if len(path.Shares) != 2 || len(path.Income) != 1 {
		t.Fatalf("path lengths = %d shares, %d income, want 2 and 1", len(path.Shares), len(path.Income))
	}
	if path.Income[0] != 500 {
		t.Errorf("Income[0] = %v, want 500", path.Income[0])
	}
	if path.Shares[0] != 100 || path.Shares[1] != 105 {
		t.Errorf("Shares = %v, want [100 105]", path.Shares)
	}
}

func TestSimulateDRIPCompounds(t *testing.T) {
	path := SimulateDRIP(100, 5, 100, 3)
	// each year the share count grows by rate/price = 5%
	for i, want := range []float64{100, 105, 110.25, 115.7625} {
		if math.Abs(path.Shares[i]-want) > 1e-9 {
			t.Errorf("Shares[%d] = %v, want %v", i, path.Shares[i], want)
		}
	}
	// income of a later period exceeds the earlier one
	if path.Income[2] <= path.Income[0] {
		t.Errorf("Income = %v, want strictly growing", path.Income)
	}
}

func TestSimulateDRIPZeroPeriods(t *testing.T) {
	path := SimulateDRIP(100, 5, 100, 0)
	if len(path.Shares) != 1 || path.Shares[0] != 100 {
		t.Errorf("Shares = %v, want [100]", path.Shares)
	}
	if len(path.Income) != 0 {
		t.Errorf("Income = %v, want empty", path.Income)
	}
	shares, income := path.End()
	if shares != 100 || income != 0 {
		t.Errorf("End() = %v, %v, want 100, 0", shares, income)
	}
}

func TestSimulateDRIPZeroRate(t *testing.T) {
	path := SimulateDRIP(50, 0, 100, 5)
	shares, income := path.End()
	if shares != 50 || income != 0 {
		t.Errorf("End() = %v, %v, want 50, 0: no dividend means no growth", shares, income)
	}
}

func TestDripPathEnd(t *testing.T) {
	path := SimulateDRIP(100, 5, 100, 2)
	shares, income := path.End()
	if math.Abs(shares-110.25) > 1e-9 {
		t.Errorf("end shares = %v, want 110.25", shares)
	}
	if math.Abs(income-525) > 1e-9 {
		t.Errorf("end income = %v, want 525", income)
	}
}
