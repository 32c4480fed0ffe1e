package validation

import (
	"testing"
	"time"

	"github.com/vyapaar-tech/orderbot-backend/internal/models"
)

func TestOrder_Valid(t *testing.T) {
	v := New()

	order := models.Order{
		OrderID:      "ord-1",
		Sender:       "+919876543210",
		Language:     "hindi",
		DeliveryDays: "3",
		Total:        250,
		PlacedAt:     time.Now(),
	}

	if err := v.Struct(order); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestOrder_MissingFields(t *testing.T) {
	v := New()

	order := models.Order{
		// OrderID, Sender, Language missing
		Total: 100,
	}

	if err := v.Struct(order); err == nil {
		t.Fatal("expected validation errors for missing required fields, got nil")
	}
}

func TestOrder_NegativeTotal(t *testing.T) {
	v := New()

	order := models.Order{
		OrderID:  "ord-2",
		Sender:   "+919876543210",
		Language: "hindi",
		Total:    -1,
	}

	if err := v.Struct(order); err == nil {
		t.Fatal("expected validation error for negative total, got nil")
	}
}

func TestDeliveryDaysGate(t *testing.T) {
	v := New()

	if err := v.Var("3", "required,numeric"); err != nil {
		t.Fatalf("expected numeric input to pass, got %v", err)
	}
	if err := v.Var("next week", "required,numeric"); err == nil {
		t.Fatal("expected non-numeric input to fail")
	}
}
