package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	StatusPaymentPending OrderStatus = "PAYMENT_PENDING"
	StatusComplete       OrderStatus = "COMPLETE"
	StatusShipped        OrderStatus = "SHIPPED"
	StatusCancelled      OrderStatus = "CANCELLED"
)

func (s OrderStatus) known() bool {
	switch s {
	case StatusPaymentPending, StatusComplete, StatusShipped, StatusCancelled:
		return true
	}
	return false
}

// Order is the whole of the Order-OrderItem composition and the dependent
// side of the required Customer association. While registered it always has
// exactly one customer and at least one item; the only path to zero items is
// Delete, which takes the whole order with it.
type Order struct {
	model     *Model
	id        uuid.UUID
	createdAt time.Time
	status    OrderStatus
	total     float64
	customer  *Customer
	items     []*OrderItem
}

// NewOrder creates an order atomically with its required customer and its
// first item. All arguments are validated before any mutation.
func (m *Model) NewOrder(customer *Customer, product *Product, quantity int) (*Order, error) {
	if customer == nil {
		return nil, NewError(CodeValidation, "order.new", "customer cannot be nil", nil)
	}
	if product == nil {
		return nil, NewError(CodeValidation, "order.new", "product cannot be nil", nil)
	}
	if quantity <= 0 {
		return nil, NewError(CodeValidation, "order.new", "quantity must be positive", nil)
	}
	o := &Order{
		model:     m,
		id:        uuid.New(),
		createdAt: time.Now(),
		status:    StatusPaymentPending,
	}
	o.customer = customer
	customer.addOrderInternal(o)
	m.Orders.register(o)

	item := &OrderItem{
		model:    m,
		id:       uuid.New(),
		order:    o,
		product:  product,
		quantity: quantity,
	}
	o.items = append(o.items, item)
	m.OrderItems.register(item)
	o.recalcTotal()

	m.log.Debug("order created", "order_id", o.id, "customer_id", customer.id, "total", o.total)
	return o, nil
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) Status() OrderStatus  { return o.status }
func (o *Order) Total() float64       { return o.total }

// Customer returns the owning customer. Nil only after Delete.
func (o *Order) Customer() *Customer { return o.customer }

func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) ChangeStatus(status OrderStatus) error {
	if !status.known() {
		return NewError(CodeValidation, "order.changeStatus", "unknown order status", nil)
	}
	o.status = status
	return nil
}

// SetCustomer rebinds the order to a new customer. Binding to the current
// customer is a no-op; unsetting is illegal because the owner multiplicity
// lower bound is 1. Decouple the old side first, then relink, so neither
// side's public entry point re-triggers the other.
func (o *Order) SetCustomer(c *Customer) error {
	if c == nil {
		return NewError(CodeValidation, "order.setCustomer", "order requires a customer", nil)
	}
	if o.customer == c {
		return nil
	}
	if o.customer != nil {
		o.customer.removeOrderInternal(o)
	}
	o.customer = c
	c.addOrderInternal(o)
	return nil
}

// AddItem creates a new part for this order and refreshes the derived total.
func (o *Order) AddItem(product *Product, quantity int) (*OrderItem, error) {
	if product == nil {
		return nil, NewError(CodeValidation, "order.addItem", "product cannot be nil", nil)
	}
	if quantity <= 0 {
		return nil, NewError(CodeValidation, "order.addItem", "quantity must be positive", nil)
	}
	item := &OrderItem{
		model:    o.model,
		id:       uuid.New(),
		order:    o,
		product:  product,
		quantity: quantity,
	}
	o.items = append(o.items, item)
	o.model.OrderItems.register(item)
	o.recalcTotal()
	return item, nil
}

// addItemInternal relinks a restored item without creating or registering it.
func (o *Order) addItemInternal(item *OrderItem) {
	for _, existing := range o.items {
		if existing == item {
			return
		}
	}
	o.items = append(o.items, item)
}

// RemoveItem detaches and destroys one part. Rejected when it would leave the
// order below its one-part lower bound; deleting the whole order is the only
// legitimate path to zero parts.
func (o *Order) RemoveItem(item *OrderItem) error {
	if item == nil {
		return NewError(CodeValidation, "order.removeItem", "item cannot be nil", nil)
	}
	idx := -1
	for i, existing := range o.items {
		if existing == item {
			idx = i
			break
		}
	}
	if idx < 0 {
		return NewError(CodeValidation, "order.removeItem", "item does not belong to this order", nil)
	}
	if len(o.items) <= 1 {
		return NewError(CodeInvariant, "order.removeItem", "order must keep at least one item", nil)
	}
	o.items = append(o.items[:idx], o.items[idx+1:]...)
	item.order = nil
	o.model.OrderItems.unregister(item)
	o.recalcTotal()
	return nil
}

// Delete removes the order and cascades through the composition: unregister
// the order, clear the live part list, dispose a copy of the parts, then
// drop the customer's bookkeeping reference. Clearing before disposing avoids
// mutating the part list while iterating it.
func (o *Order) Delete() error {
	o.model.Orders.unregister(o)

	parts := o.items
	o.items = nil
	for _, item := range parts {
		item.order = nil
		o.model.OrderItems.unregister(item)
	}

	c := o.customer
	o.customer = nil
	if c != nil {
		c.removeOrderInternal(o)
	}
	o.model.log.Debug("order deleted", "order_id", o.id, "disposed_items", len(parts))
	return nil
}

func (o *Order) recalcTotal() {
	sum := 0.0
	for _, item := range o.items {
		if item.product == nil {
			continue
		}
		sum += item.product.price * float64(item.quantity)
	}
	o.total = sum
}
