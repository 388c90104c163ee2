package domain

import (
	"context"
	"testing"
)

// Full persist → reset → restore cycle across all entity types, checking that
// cross-type links are rebuilt from identifiers.
func TestPersistRestoreAllRelinks(t *testing.T) {
	m := testModel(t)
	ctx := context.Background()

	electronics := seedCategory(t, m, "Electronics", nil)
	phones := seedCategory(t, m, "Phones", electronics)
	laptop := seedProduct(t, m, "Laptop", 1000)
	mouse := seedProduct(t, m, "Mouse", 25)
	if err := phones.AddProduct(laptop); err != nil {
		t.Fatalf("attach: %v", err)
	}

	alice := seedCustomer(t, m, "alice")
	order := seedOrder(t, m, alice, laptop, 1)
	if _, err := order.AddItem(mouse, 2); err != nil {
		t.Fatalf("add item: %v", err)
	}

	cart := m.NewShoppingCart()
	if ok, err := cart.Put(mouse, 3); err != nil || !ok {
		t.Fatalf("put: ok=%v err=%v", ok, err)
	}

	if err := m.PersistAll(ctx); err != nil {
		t.Fatalf("persist all: %v", err)
	}
	m.Reset()
	if err := m.RestoreAll(ctx); err != nil {
		t.Fatalf("restore all: %v", err)
	}

	// category tree
	cats := m.Categories.Snapshot()
	if len(cats) != 2 {
		t.Fatalf("restored %d categories", len(cats))
	}
	top, child := cats[0], cats[1]
	if top.Name() != "Electronics" || child.Name() != "Phones" {
		t.Fatalf("category order lost: %q, %q", top.Name(), child.Name())
	}
	if child.Parent() != top {
		t.Fatalf("parent link not restored")
	}
	subs := top.Subcategories()
	if len(subs) != 1 || subs[0] != child {
		t.Fatalf("child list not restored")
	}

	// aggregation membership
	prods := m.Products.Snapshot()
	if len(prods) != 2 {
		t.Fatalf("restored %d products", len(prods))
	}
	restoredLaptop := prods[0]
	if restoredLaptop.Category() != child {
		t.Fatalf("product category link not restored")
	}
	members := child.Products()
	if len(members) != 1 || members[0] != restoredLaptop {
		t.Fatalf("category member set not restored")
	}

	// required association + composition
	orders := m.Orders.Snapshot()
	if len(orders) != 1 {
		t.Fatalf("restored %d orders", len(orders))
	}
	ro := orders[0]
	custs := m.Customers.Snapshot()
	if len(custs) != 1 || ro.Customer() != custs[0] {
		t.Fatalf("order-customer link not restored")
	}
	if len(custs[0].Orders()) != 1 || custs[0].Orders()[0] != ro {
		t.Fatalf("reverse collection not restored")
	}
	items := ro.Items()
	if len(items) != 2 {
		t.Fatalf("restored order has %d items", len(items))
	}
	if items[0].Order() != ro || items[1].Order() != ro {
		t.Fatalf("item back-references not restored")
	}
	if ro.Total() != 1050 {
		t.Fatalf("restored total = %v, want 1050", ro.Total())
	}

	// qualified association
	carts := m.Carts.Snapshot()
	if len(carts) != 1 {
		t.Fatalf("restored %d carts", len(carts))
	}
	rc := carts[0]
	if rc.TotalQuantity() != 3 {
		t.Fatalf("restored cart quantity = %d", rc.TotalQuantity())
	}
	restoredMouse := prods[1]
	item, ok := rc.Items()[restoredMouse.ID()]
	if !ok {
		t.Fatalf("cart entry not restored under product key")
	}
	if item.Cart() != rc || item.Product() != restoredMouse {
		t.Fatalf("cart item links not restored")
	}
}

func TestRestoreAllWithoutPersistCollectsErrors(t *testing.T) {
	m := testModel(t)
	err := m.RestoreAll(context.Background())
	if err == nil {
		t.Fatalf("expected error for unpersisted extents")
	}
	if !IsCode(err, CodeNotFound) {
		t.Fatalf("got %v, want not_found in chain", err)
	}
	// nothing to restore: registries stay empty, no partial state
	if m.Products.Len() != 0 || m.Orders.Len() != 0 {
		t.Fatalf("failed restore left members")
	}
}

func TestRestartSimulationKeepsWorking(t *testing.T) {
	m := testModel(t)
	ctx := context.Background()

	alice := seedCustomer(t, m, "alice")
	p := seedProduct(t, m, "P", 10)
	seedOrder(t, m, alice, p, 1)

	if err := m.PersistAll(ctx); err != nil {
		t.Fatalf("persist: %v", err)
	}
	m.Reset()
	if err := m.RestoreAll(ctx); err != nil {
		t.Fatalf("restore: %v", err)
	}

	// restored entities accept further mutation through the same invariants
	ro := m.Orders.Snapshot()[0]
	if _, err := ro.AddItem(m.Products.Snapshot()[0], 2); err != nil {
		t.Fatalf("add item after restore: %v", err)
	}
	if ro.Total() != 30 {
		t.Fatalf("total after restore mutation = %v", ro.Total())
	}
	if err := ro.Delete(); err != nil {
		t.Fatalf("delete after restore: %v", err)
	}
	if m.Orders.Len() != 0 || m.OrderItems.Len() != 0 {
		t.Fatalf("cascade after restore incomplete")
	}
}
