package domain

import (
	"testing"

	"github.com/mlaskowski7/AllegroLikeByt/internal/platform/logger"
	"github.com/mlaskowski7/AllegroLikeByt/internal/store/filestore"
)

func testModel(tb testing.TB) *Model {
	tb.Helper()
	st, err := filestore.New(tb.TempDir(), logger.Nop())
	if err != nil {
		tb.Fatalf("init filestore: %v", err)
	}
	return NewModel(Deps{Store: st, Log: logger.Nop()})
}

func seedCustomer(tb testing.TB, m *Model, name string) *Customer {
	tb.Helper()
	c, err := m.NewCustomer(name, name+"@example.com")
	if err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func seedProduct(tb testing.TB, m *Model, name string, price float64) *Product {
	tb.Helper()
	p, err := m.NewProduct(name, "description of "+name, price, 10, []string{name + ".jpg"})
	if err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func seedCategory(tb testing.TB, m *Model, name string, parent *Category) *Category {
	tb.Helper()
	c, err := m.NewCategory(name, "description of "+name, parent)
	if err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func seedOrder(tb testing.TB, m *Model, c *Customer, p *Product, qty int) *Order {
	tb.Helper()
	o, err := m.NewOrder(c, p, qty)
	if err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	return o
}
