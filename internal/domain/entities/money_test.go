package entities

import "testing"

func TestCents_Sub(t *testing.T) {
	cases := []struct {
		name string
		a, b Cents
		want Cents
	}{
		{"normal subtraction", 1500, 500, 1000},
		{"floors at zero", 500, 1500, 0},
		{"equal amounts", 500, 500, 0},
		{"zero discount", 1500, 0, 1500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Sub(tc.b); got != tc.want {
				t.Fatalf("%d.Sub(%d) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestCents_Min(t *testing.T) {
	if got := Cents(500).Min(1500); got != 500 {
		t.Fatalf("Min = %d, want 500", got)
	}
	if got := Cents(1500).Min(500); got != 500 {
		t.Fatalf("Min = %d, want 500", got)
	}
}

func TestCents_Dollars(t *testing.T) {
	cases := []struct {
		amount Cents
		want   string
	}{
		{1250, "$12.50"},
		{0, "$0.00"},
		{5, "$0.05"},
		{11500, "$115.00"},
	}
	for _, tc := range cases {
		if got := tc.amount.Dollars(); got != tc.want {
			t.Fatalf("%d.Dollars() = %s, want %s", tc.amount, got, tc.want)
		}
	}
}
