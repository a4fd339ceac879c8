package domain

import "testing"

func TestIsLowStock(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		minStock int
		want     bool
	}{
		{"well above threshold", 50, 10, false},
		{"one above threshold", 11, 10, false},
		{"exactly at threshold", 10, 10, true},
		{"below threshold", 3, 10, true},
		{"zero quantity", 0, 10, true},
		{"negative quantity", -5, 0, true},
		{"zero threshold zero quantity", 0, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := Item{Quantity: tc.quantity, MinStock: tc.minStock}
			if got := item.IsLowStock(); got != tc.want {
				t.Errorf("IsLowStock() with quantity=%d minStock=%d = %v, want %v",
					tc.quantity, tc.minStock, got, tc.want)
			}
		})
	}
}

func TestNewAdjustment(t *testing.T) {
	cases := []struct {
		name      string
		oldQty    int
		newQty    int
		direction string
		quantity  int
	}{
		{"increase", 5, 12, "in", 7},
		{"decrease", 12, 5, "out", 7},
		{"from zero", 0, 3, "in", 3},
		{"to zero", 3, 0, "out", 3},
		{"into negative", 2, -4, "out", 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			adj := NewAdjustment(tc.oldQty, tc.newQty)
			if adj == nil {
				t.Fatal("expected an adjustment")
			}
			if adj.Direction != tc.direction {
				t.Errorf("direction = %s, want %s", adj.Direction, tc.direction)
			}
			if adj.Quantity != tc.quantity {
				t.Errorf("quantity = %d, want %d", adj.Quantity, tc.quantity)
			}
		})
	}
}

func TestNewAdjustment_NoChange(t *testing.T) {
	if adj := NewAdjustment(7, 7); adj != nil {
		t.Errorf("expected nil adjustment for unchanged quantity, got %+v", adj)
	}
}
