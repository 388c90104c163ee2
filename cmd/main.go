package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mlaskowski7/AllegroLikeByt/internal/app"
	"github.com/mlaskowski7/AllegroLikeByt/internal/domain"
	"github.com/mlaskowski7/AllegroLikeByt/internal/platform/logger"
)

func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	a, err := app.New(log)
	if err != nil {
		log.Fatal("App wiring failed", "error", err)
	}

	if err := run(context.Background(), a); err != nil {
		log.Fatal("Demo failed", "error", err)
	}
}

// run walks through extents and persistence: seed a small shop, persist every
// extent, simulate a restart with Reset, restore, and compare.
func run(ctx context.Context, a *app.App) error {
	log := a.Log
	m := a.Model

	laptop, err := m.NewProduct("Laptop", "High-performance laptop", 2999.99, 10, []string{"laptop1.jpg", "laptop2.jpg"})
	if err != nil {
		return err
	}
	mouse, err := m.NewProduct("Mouse", "Wireless mouse", 49.99, 50, []string{"mouse.jpg"})
	if err != nil {
		return err
	}
	_ = laptop.AddReview(5)
	_ = laptop.AddReview(4)
	_ = mouse.AddReview(5)

	electronics, err := m.NewCategory("Electronics", "Electronic devices and accessories", nil)
	if err != nil {
		return err
	}
	computers, err := m.NewCategory("Computers", "Computer hardware and software", electronics)
	if err != nil {
		return err
	}
	if err := computers.AddProduct(laptop); err != nil {
		return err
	}

	customer, err := m.NewCustomer("Demo User", "demo@example.com")
	if err != nil {
		return err
	}
	order, err := m.NewOrder(customer, laptop, 1)
	if err != nil {
		return err
	}
	if _, err := order.AddItem(mouse, 2); err != nil {
		return err
	}

	cart := m.NewShoppingCart()
	if ok, err := cart.Put(mouse, 3); err != nil {
		return err
	} else if !ok {
		log.Warn("Cart rejected put", "product", mouse.Name())
	}

	log.Info("Extents populated",
		"products", m.Products.Len(),
		"categories", m.Categories.Len(),
		"customers", m.Customers.Len(),
		"orders", m.Orders.Len(),
		"order_items", m.OrderItems.Len(),
		"carts", m.Carts.Len(),
		"cart_items", m.CartItems.Len(),
		"order_total", order.Total(),
		"laptop_rating", laptop.AvgRating(),
	)

	log.Info("Persisting all extents...")
	if err := m.PersistAll(ctx); err != nil {
		return err
	}

	log.Info("Simulating restart: clearing registries...")
	m.Reset()
	log.Info("After reset", "products", m.Products.Len(), "orders", m.Orders.Len())

	log.Info("Restoring all extents...")
	if err := m.RestoreAll(ctx); err != nil {
		return err
	}

	for _, o := range m.Orders.Snapshot() {
		owner := "<none>"
		if o.Customer() != nil {
			owner = o.Customer().Name()
		}
		log.Info("Restored order",
			"status", string(o.Status()),
			"total", o.Total(),
			"items", len(o.Items()),
			"customer", owner,
		)
	}
	for _, c := range m.Categories.Snapshot() {
		parent := "<top-level>"
		if c.Parent() != nil {
			parent = c.Parent().Name()
		}
		log.Info("Restored category", "name", c.Name(), "parent", parent, "products", len(c.Products()))
	}
	log.Info("Demo completed",
		"products", m.Products.Len(),
		"customers", m.Customers.Len(),
		"orders", m.Orders.Len(),
		"order_items", m.OrderItems.Len(),
	)

	// Exercise the lifecycle on the restored data: ship one order, then
	// delete it and watch the composition cascade.
	for _, o := range m.Orders.Snapshot() {
		if err := o.ChangeStatus(domain.StatusShipped); err != nil {
			return err
		}
		if err := o.Delete(); err != nil {
			return err
		}
	}
	log.Info("Orders deleted",
		"orders", m.Orders.Len(),
		"order_items", m.OrderItems.Len(),
	)
	return nil
}
