package models

import "testing"

func TestNewCartDataIsDenseAndZeroed(t *testing.T) {
	cart := NewCartData()
	if len(cart) != CartSlots {
		t.Fatalf("len = %d, want %d", len(cart), CartSlots)
	}
	for i := 0; i < CartSlots; i++ {
		qty, ok := cart[i]
		if !ok {
			t.Fatalf("slot %d missing", i)
		}
		if qty != 0 {
			t.Fatalf("slot %d = %d, want 0", i, qty)
		}
	}
}

func TestCartDataScanRoundTrip(t *testing.T) {
	cart := NewCartData()
	cart[5] = 3

	raw, err := cart.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var decoded CartData
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(decoded) != CartSlots || decoded[5] != 3 {
		t.Fatalf("round trip lost data: len=%d slot5=%d", len(decoded), decoded[5])
	}
}
