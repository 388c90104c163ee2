package domain

import "github.com/google/uuid"

// OrderItem is a part of exactly one Order. Its owning-order back-reference
// is non-nil for as long as the item is registered; it is cleared only when
// the item is disposed through RemoveItem or the order's Delete cascade.
type OrderItem struct {
	model    *Model
	id       uuid.UUID
	order    *Order
	product  *Product
	quantity int
}

func (i *OrderItem) ID() uuid.UUID     { return i.id }
func (i *OrderItem) Order() *Order     { return i.order }
func (i *OrderItem) Product() *Product { return i.product }
func (i *OrderItem) Quantity() int     { return i.quantity }

// SetQuantity updates the quantity and recomputes the whole's derived total.
func (i *OrderItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return NewError(CodeValidation, "orderItem.setQuantity", "quantity must be positive", nil)
	}
	i.quantity = quantity
	if i.order != nil {
		i.order.recalcTotal()
	}
	return nil
}
