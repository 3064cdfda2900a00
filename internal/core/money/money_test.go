package money

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRound_HalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2.675", "2.68"},
		{"2.674", "2.67"},
		{"-2.675", "-2.68"},
		{"0.005", "0.01"},
		{"-0.005", "-0.01"},
		{"10", "10"},
		{"35.404", "35.4"},
	}

	for _, tc := range cases {
		got := Round(decimal.RequireFromString(tc.in), 2)
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Errorf("Round(%s, 2) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestRound_Idempotent(t *testing.T) {
	values := []string{"1.005", "2.675", "-3.14159", "0", "99999.999", "0.004999"}

	for _, v := range values {
		once := Round(decimal.RequireFromString(v), 2)
		twice := Round(once, 2)
		if !once.Equal(twice) {
			t.Errorf("Round(Round(%s)) = %s, want %s", v, twice, once)
		}
	}
}

func TestFromFloat_Finite(t *testing.T) {
	d, err := FromFloat(10.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(decimal.RequireFromString("10.5")) {
		t.Errorf("expected 10.5, got %s", d)
	}
}

func TestFromFloat_NonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := FromFloat(f); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("FromFloat(%v): expected ErrInvalidNumber, got %v", f, err)
		}
	}
}
