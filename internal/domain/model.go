// Package domain models the shop's entities and the relationships between
// them: the required Customer-Order association, the Order-OrderItem
// composition, the exclusive Category-Product aggregation, the capacity
// bounded ShoppingCart map keyed by product identity, and the Category tree.
//
// Bidirectional links are maintained through one public entry point per side
// plus one internal no-reverse-trigger entry point used only by the opposite
// side. Adding a new association must keep this split, otherwise the two
// setters recurse into each other.
package domain

import (
	"context"

	"go.uber.org/multierr"

	"github.com/mlaskowski7/AllegroLikeByt/internal/platform/logger"
	"github.com/mlaskowski7/AllegroLikeByt/internal/store"
)

// DefaultCartCapacity is the ceiling on the summed quantity of one cart.
const DefaultCartCapacity = 50

// Deps carries the collaborators a Model needs.
type Deps struct {
	Store store.Store
	Log   *logger.Logger
	// CartCapacity overrides DefaultCartCapacity when positive.
	CartCapacity int
}

func (d Deps) withDefaults() Deps {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.CartCapacity <= 0 {
		d.CartCapacity = DefaultCartCapacity
	}
	return d
}

// Model owns the per-type registries and is the single mutating actor over
// them. It replaces the original design's process-wide extents so test
// isolation is a constructor call away.
type Model struct {
	log          *logger.Logger
	cartCapacity int

	Customers  *Registry[*Customer]
	Products   *Registry[*Product]
	Categories *Registry[*Category]
	Carts      *Registry[*ShoppingCart]
	Orders     *Registry[*Order]
	OrderItems *Registry[*OrderItem]
	CartItems  *Registry[*CartItem]
}

func NewModel(deps Deps) *Model {
	deps = deps.withDefaults()
	m := &Model{
		log:          deps.Log.With("component", "model"),
		cartCapacity: deps.CartCapacity,
	}
	m.Customers = newRegistry("customers", deps.Store, deps.Log, encodeCustomer, m.decodeCustomer)
	m.Products = newRegistry("products", deps.Store, deps.Log, encodeProduct, m.decodeProduct)
	m.Categories = newRegistry("categories", deps.Store, deps.Log, encodeCategory, m.decodeCategory)
	m.Carts = newRegistry("shopping_carts", deps.Store, deps.Log, encodeCart, m.decodeCart)
	m.Orders = newRegistry("orders", deps.Store, deps.Log, encodeOrder, m.decodeOrder)
	m.OrderItems = newRegistry("order_items", deps.Store, deps.Log, encodeOrderItem, m.decodeOrderItem)
	m.CartItems = newRegistry("cart_items", deps.Store, deps.Log, encodeCartItem, m.decodeCartItem)
	return m
}

// Reset clears every registry.
func (m *Model) Reset() {
	m.Customers.Reset()
	m.Products.Reset()
	m.Categories.Reset()
	m.Carts.Reset()
	m.Orders.Reset()
	m.OrderItems.Reset()
	m.CartItems.Reset()
	m.log.Debug("all registries reset")
}

// PersistAll writes every extent. Each extent touches only its own storage
// location, so failures are collected rather than short-circuited.
func (m *Model) PersistAll(ctx context.Context) error {
	var err error
	err = multierr.Append(err, m.Customers.Persist(ctx))
	err = multierr.Append(err, m.Products.Persist(ctx))
	err = multierr.Append(err, m.Categories.Persist(ctx))
	err = multierr.Append(err, m.Carts.Persist(ctx))
	err = multierr.Append(err, m.Orders.Persist(ctx))
	err = multierr.Append(err, m.OrderItems.Persist(ctx))
	err = multierr.Append(err, m.CartItems.Persist(ctx))
	return err
}

// RestoreAll restores every extent in dependency order: types referenced by
// identifier must already be in memory when the referencing type is decoded.
func (m *Model) RestoreAll(ctx context.Context) error {
	var err error
	err = multierr.Append(err, m.Categories.Restore(ctx))
	err = multierr.Append(err, m.Products.Restore(ctx))
	err = multierr.Append(err, m.Customers.Restore(ctx))
	err = multierr.Append(err, m.Carts.Restore(ctx))
	err = multierr.Append(err, m.Orders.Restore(ctx))
	err = multierr.Append(err, m.OrderItems.Restore(ctx))
	err = multierr.Append(err, m.CartItems.Restore(ctx))
	return err
}
