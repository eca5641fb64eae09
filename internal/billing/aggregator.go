// Package billing builds billing summaries from orders and renders them into
// email notices. Both stages are pure: they perform no I/O and have no failure
// modes beyond template execution.
package billing

import (
	"fmt"
	"sort"

	"github.com/adriagold/billnotice/internal/model"
)

// Catalog indexes products by ID for line-item resolution.
type Catalog map[string]model.Product

// NewCatalog builds a Catalog from a product list.
func NewCatalog(products []model.Product) Catalog {
	catalog := make(Catalog, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}
	return catalog
}

// LineItem is one product-quantity pair from an order, enriched with resolved
// catalog pricing. Unresolved products keep a zero price and a synthetic name
// so the failure stays visible to the recipient instead of being dropped.
type LineItem struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice int64
	Total     int64
	Resolved  bool
}

// Summary is the full derived aggregation for one active order.
type Summary struct {
	Lines      []LineItem
	GrandTotal int64
}

// UnresolvedCount returns the number of lines whose product reference could
// not be resolved against the catalog.
func (s Summary) UnresolvedCount() int {
	n := 0
	for _, line := range s.Lines {
		if !line.Resolved {
			n++
		}
	}
	return n
}

// BuildSummary joins the order's item mapping against the catalog and computes
// per-line and grand totals. Every item yields exactly one line. Lines are
// sorted by product ID so the output is stable regardless of map iteration
// order. Quantities are trusted as given; zero or negative values pass through
// the arithmetic unchanged.
func BuildSummary(order *model.Order, catalog Catalog) Summary {
	ids := make([]string, 0, len(order.Items))
	for id := range order.Items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := make([]LineItem, 0, len(ids))
	var grandTotal int64

	for _, id := range ids {
		line := LineItem{
			ProductID: id,
			Quantity:  order.Items[id],
		}

		if product, ok := catalog[id]; ok {
			line.Name = product.Name
			line.UnitPrice = product.UnitPrice
			line.Resolved = true
		} else {
			line.Name = fmt.Sprintf("Unknown product (ID: %s)", id)
		}

		line.Total = line.UnitPrice * line.Quantity
		grandTotal += line.Total
		lines = append(lines, line)
	}

	return Summary{Lines: lines, GrandTotal: grandTotal}
}
