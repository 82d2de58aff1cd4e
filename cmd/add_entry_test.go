package cmd

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProductsFlagSet(t *testing.T) {
	var p productsFlag

	if err := p.Set("Bulb:2:25"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := p.Set("Wire:1:50.5:true"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if len(p) != 2 {
		t.Fatalf("got %d products, want 2", len(p))
	}
	if p[0].Name != "Bulb" || p[0].Quantity != 2 || !p[0].Price.Equal(decimal.NewFromInt(25)) || p[0].Paid {
		t.Errorf("first product = %+v", p[0])
	}
	if p[1].Name != "Wire" || p[1].Quantity != 1 || !p[1].Price.Equal(decimal.RequireFromString("50.5")) || !p[1].Paid {
		t.Errorf("second product = %+v", p[1])
	}
}

func TestProductsFlagSetRejects(t *testing.T) {
	cases := []struct {
		name  string
		value string
	}{
		{"too few fields", "Bulb:2"},
		{"too many fields", "Bulb:2:25:true:extra"},
		{"empty name", " :2:25"},
		{"bad quantity", "Bulb:two:25"},
		{"zero quantity", "Bulb:0:25"},
		{"negative quantity", "Bulb:-1:25"},
		{"bad price", "Bulb:2:cheap"},
		{"bad paid flag", "Bulb:2:25:maybe"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p productsFlag
			if err := p.Set(tc.value); err == nil {
				t.Errorf("Set(%q) should fail", tc.value)
			}
		})
	}
}
