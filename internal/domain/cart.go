package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShoppingCart holds a qualified association: product identity maps to a
// CartItem carrying the quantity. The summed quantity across all entries
// never exceeds the cart's capacity ceiling.
type ShoppingCart struct {
	model       *Model
	id          uuid.UUID
	createdAt   time.Time
	lastUpdated time.Time
	capacity    int
	items       map[uuid.UUID]*CartItem
}

func (m *Model) NewShoppingCart() *ShoppingCart {
	now := time.Now()
	cart := &ShoppingCart{
		model:       m,
		id:          uuid.New(),
		createdAt:   now,
		lastUpdated: now,
		capacity:    m.cartCapacity,
		items:       make(map[uuid.UUID]*CartItem),
	}
	m.Carts.register(cart)
	m.log.Debug("shopping cart created", "cart_id", cart.id, "capacity", cart.capacity)
	return cart
}

func (s *ShoppingCart) ID() uuid.UUID          { return s.id }
func (s *ShoppingCart) CreatedAt() time.Time   { return s.createdAt }
func (s *ShoppingCart) LastUpdated() time.Time { return s.lastUpdated }
func (s *ShoppingCart) Capacity() int          { return s.capacity }

// Items returns a copy of the qualifier map.
func (s *ShoppingCart) Items() map[uuid.UUID]*CartItem {
	out := make(map[uuid.UUID]*CartItem, len(s.items))
	for k, v := range s.items {
		out[k] = v
	}
	return out
}

// TotalQuantity sums the quantities across all entries.
func (s *ShoppingCart) TotalQuantity() int {
	sum := 0
	for _, item := range s.items {
		sum += item.quantity
	}
	return sum
}

// Put adds or replaces the entry for the product's identity. A put that would
// push the summed quantity past the capacity ceiling returns false and leaves
// the cart untouched, including its last-modified timestamp. The sum counts
// every current entry, the one being replaced included.
func (s *ShoppingCart) Put(product *Product, quantity int) (bool, error) {
	if product == nil {
		return false, NewError(CodeValidation, "cart.put", "product cannot be nil", nil)
	}
	if quantity <= 0 {
		return false, NewError(CodeValidation, "cart.put", "quantity must be positive", nil)
	}
	if quantity+s.TotalQuantity() > s.capacity {
		return false, nil
	}

	if prev, ok := s.items[product.id]; ok {
		prev.cart = nil
	}
	item := &CartItem{
		model:    s.model,
		id:       uuid.New(),
		cart:     s,
		product:  product,
		quantity: quantity,
	}
	s.model.CartItems.register(item)
	s.items[product.id] = item
	s.lastUpdated = time.Now()
	return true, nil
}

// Remove drops the entry under the given product identity. The item is
// detached, not destroyed.
func (s *ShoppingCart) Remove(productID uuid.UUID) error {
	item, ok := s.items[productID]
	if !ok {
		return NewError(CodeNotFound, "cart.remove", "product is not in the cart", nil)
	}
	item.cart = nil
	delete(s.items, productID)
	s.lastUpdated = time.Now()
	return nil
}

// Clear drops all entries and refreshes the timestamp.
func (s *ShoppingCart) Clear() {
	for _, item := range s.items {
		item.cart = nil
	}
	s.items = make(map[uuid.UUID]*CartItem)
	s.lastUpdated = time.Now()
}

// putInternal relinks a restored cart item without capacity or timestamp
// side effects.
func (s *ShoppingCart) putInternal(item *CartItem) {
	if item.product == nil {
		return
	}
	s.items[item.product.id] = item
}

// CartItem is the link object of the qualified association. Its cart
// back-reference is nil once the item has been detached from its cart.
type CartItem struct {
	model    *Model
	id       uuid.UUID
	cart     *ShoppingCart
	product  *Product
	quantity int
}

func (i *CartItem) ID() uuid.UUID       { return i.id }
func (i *CartItem) Cart() *ShoppingCart { return i.cart }
func (i *CartItem) Product() *Product   { return i.product }
func (i *CartItem) Quantity() int       { return i.quantity }

// SetQuantity updates the quantity in place. While the item is linked to a
// cart the capacity ceiling still applies.
func (i *CartItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return NewError(CodeValidation, "cartItem.setQuantity", "quantity must be positive", nil)
	}
	if i.cart != nil {
		if i.cart.TotalQuantity()-i.quantity+quantity > i.cart.capacity {
			return NewError(CodeInvariant, "cartItem.setQuantity", "cart capacity exceeded", nil)
		}
		i.cart.lastUpdated = time.Now()
	}
	i.quantity = quantity
	return nil
}
