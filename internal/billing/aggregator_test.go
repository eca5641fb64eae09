package billing

import (
	"strings"
	"testing"

	"github.com/adriagold/billnotice/internal/model"
)

func testCatalog() Catalog {
	return NewCatalog([]model.Product{
		{ID: "P1", Name: "Vanilla ice cream 1l", UnitPrice: 100},
		{ID: "P2", Name: "Pistachio ice cream 1l", UnitPrice: 250},
	})
}

func TestBuildSummary_ActiveOrder(t *testing.T) {
	order := &model.Order{
		ID:     "o1",
		UserID: "u1",
		Status: model.OrderStatusActive,
		Items:  map[string]int64{"P1": 2, "P2": 1},
	}

	summary := BuildSummary(order, testCatalog())

	if len(summary.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(summary.Lines))
	}

	if summary.Lines[0].ProductID != "P1" || summary.Lines[1].ProductID != "P2" {
		t.Errorf("expected lines sorted by product ID, got %s, %s",
			summary.Lines[0].ProductID, summary.Lines[1].ProductID)
	}

	if summary.Lines[0].Total != 200 {
		t.Errorf("expected P1 line total 200, got %d", summary.Lines[0].Total)
	}
	if summary.Lines[1].Total != 250 {
		t.Errorf("expected P2 line total 250, got %d", summary.Lines[1].Total)
	}

	if summary.GrandTotal != 450 {
		t.Errorf("expected grand total 450, got %d", summary.GrandTotal)
	}

	if summary.UnresolvedCount() != 0 {
		t.Errorf("expected no unresolved lines, got %d", summary.UnresolvedCount())
	}
}

func TestBuildSummary_UnknownProduct(t *testing.T) {
	order := &model.Order{
		ID:     "o1",
		UserID: "u1",
		Status: model.OrderStatusActive,
		Items:  map[string]int64{"PX": 3},
	}

	summary := BuildSummary(order, testCatalog())

	if len(summary.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(summary.Lines))
	}

	line := summary.Lines[0]
	if line.Resolved {
		t.Error("expected line to be unresolved")
	}
	if line.UnitPrice != 0 || line.Total != 0 {
		t.Errorf("expected zero price and total, got %d / %d", line.UnitPrice, line.Total)
	}
	if !strings.Contains(line.Name, "PX") {
		t.Errorf("expected placeholder name to reference PX, got %q", line.Name)
	}
	if line.Name == "PX" {
		t.Error("placeholder name must be distinguishable from a catalog name")
	}

	if summary.GrandTotal != 0 {
		t.Errorf("expected grand total 0, got %d", summary.GrandTotal)
	}
	if summary.UnresolvedCount() != 1 {
		t.Errorf("expected 1 unresolved line, got %d", summary.UnresolvedCount())
	}
}

func TestBuildSummary_EveryItemYieldsOneLine(t *testing.T) {
	order := &model.Order{
		Items: map[string]int64{"P1": 1, "P2": 4, "PX": 2, "PY": 7},
	}

	summary := BuildSummary(order, testCatalog())

	if len(summary.Lines) != len(order.Items) {
		t.Fatalf("expected %d lines, got %d", len(order.Items), len(summary.Lines))
	}

	// 100 + 1000 + 0 + 0
	if summary.GrandTotal != 1100 {
		t.Errorf("expected grand total 1100, got %d", summary.GrandTotal)
	}
	if summary.UnresolvedCount() != 2 {
		t.Errorf("expected 2 unresolved lines, got %d", summary.UnresolvedCount())
	}
}

func TestBuildSummary_EmptyItems(t *testing.T) {
	order := &model.Order{Items: map[string]int64{}}

	summary := BuildSummary(order, testCatalog())

	if len(summary.Lines) != 0 {
		t.Errorf("expected no lines, got %d", len(summary.Lines))
	}
	if summary.GrandTotal != 0 {
		t.Errorf("expected grand total 0, got %d", summary.GrandTotal)
	}
}

func TestBuildSummary_QuantityPassThrough(t *testing.T) {
	// Quantities are trusted as given: zero and negative values flow through
	// the arithmetic without validation.
	tests := []struct {
		name      string
		quantity  int64
		wantTotal int64
	}{
		{"zero", 0, 0},
		{"negative", -2, -200},
		{"positive", 5, 500},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order := &model.Order{Items: map[string]int64{"P1": test.quantity}}

			summary := BuildSummary(order, testCatalog())

			if summary.GrandTotal != test.wantTotal {
				t.Errorf("expected grand total %d, got %d", test.wantTotal, summary.GrandTotal)
			}
		})
	}
}
