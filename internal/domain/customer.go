package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Customer owns the reverse side of the required Customer-Order association.
// An Order cannot exist without exactly one Customer, so removing a still
// bound order from its customer deletes the order.
type Customer struct {
	model     *Model
	id        uuid.UUID
	name      string
	email     string
	orders    []*Order
	addresses []*Address
}

func (m *Model) NewCustomer(name, email string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewError(CodeValidation, "customer.new", "name cannot be empty", nil)
	}
	if strings.TrimSpace(email) == "" {
		return nil, NewError(CodeValidation, "customer.new", "email cannot be empty", nil)
	}
	c := &Customer{
		model: m,
		id:    uuid.New(),
		name:  name,
		email: email,
	}
	m.Customers.register(c)
	m.log.Debug("customer created", "customer_id", c.id, "name", name)
	return c, nil
}

func (c *Customer) ID() uuid.UUID { return c.id }
func (c *Customer) Name() string  { return c.name }
func (c *Customer) Email() string { return c.email }

// Orders returns a copy of the customer's order list, insertion order.
func (c *Customer) Orders() []*Order {
	out := make([]*Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// AddOrder links the order to this customer, rebinding it away from any
// previous customer.
func (c *Customer) AddOrder(o *Order) error {
	if o == nil {
		return NewError(CodeValidation, "customer.addOrder", "order cannot be nil", nil)
	}
	c.addOrderInternal(o)
	if o.customer != c {
		return o.SetCustomer(c)
	}
	return nil
}

// addOrderInternal updates only this side of the link. Called by
// Order.SetCustomer so the two public entry points never recurse.
func (c *Customer) addOrderInternal(o *Order) {
	for _, existing := range c.orders {
		if existing == o {
			return
		}
	}
	c.orders = append(c.orders, o)
}

func (c *Customer) removeOrderInternal(o *Order) {
	for i, existing := range c.orders {
		if existing == o {
			c.orders = append(c.orders[:i], c.orders[i+1:]...)
			return
		}
	}
}

// RemoveOrder removes the order from this customer. An order still bound to
// this customer cannot exist unowned, so it is deleted outright; an already
// unbound order is just dropped from the list.
func (c *Customer) RemoveOrder(o *Order) error {
	if o == nil {
		return NewError(CodeValidation, "customer.removeOrder", "order cannot be nil", nil)
	}
	if o.customer == c {
		return o.Delete()
	}
	c.removeOrderInternal(o)
	return nil
}

// AddShippingAddress appends a shipping address.
func (c *Customer) AddShippingAddress(a *Address) error {
	if a == nil {
		return NewError(CodeValidation, "customer.addShippingAddress", "address cannot be nil", nil)
	}
	c.addresses = append(c.addresses, a)
	return nil
}

func (c *Customer) RemoveShippingAddress(a *Address) {
	for i, existing := range c.addresses {
		if existing == a {
			c.addresses = append(c.addresses[:i], c.addresses[i+1:]...)
			return
		}
	}
}

func (c *Customer) Addresses() []*Address {
	out := make([]*Address, len(c.addresses))
	copy(out, c.addresses)
	return out
}

// ShippingLabels returns every address formatted for a shipping label.
func (c *Customer) ShippingLabels() []string {
	labels := make([]string, 0, len(c.addresses))
	for _, a := range c.addresses {
		labels = append(labels, a.FormatForShipping())
	}
	return labels
}
