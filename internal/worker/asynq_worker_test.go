package worker

import (
	"testing"

	"github.com/pizzafy/pizzafy/internal/models"
)

func TestBuildOrderNotifySummaryNilOrder(t *testing.T) {
	if got := buildOrderNotifySummary(nil); got != "" {
		t.Fatalf("expected empty summary for nil order, got %q", got)
	}
}

func TestBuildOrderNotifySummarySkipsUnnamedLines(t *testing.T) {
	order := &models.Order{
		Lines: []models.OrderLine{
			{Pizza: &models.Pizza{Name: "  Margherita  "}},
			{Pizza: nil},
			{Pizza: &models.Pizza{Name: "    "}},
			{Pizza: &models.Pizza{Name: "Pepperoni"}},
		},
	}

	got := buildOrderNotifySummary(order)
	want := "Margherita, Pepperoni"
	if got != want {
		t.Fatalf("unexpected summary, want %q, got %q", want, got)
	}
}
