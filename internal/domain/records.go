package domain

// Extent records are the wire form of each entity type. Cross-entity links
// are persisted as identifiers and resolved against the live registries when
// the referencing type is restored; the caller restores dependency types
// first (Model.RestoreAll does). References that cannot be resolved are left
// unset rather than failing the restore.

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type addressRecord struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
	ZipCode string `json:"zip_code"`
}

type customerRecord struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Addresses []addressRecord `json:"addresses,omitempty"`
}

func encodeCustomer(c *Customer) ([]byte, error) {
	rec := customerRecord{ID: c.id, Name: c.name, Email: c.email}
	for _, a := range c.addresses {
		rec.Addresses = append(rec.Addresses, addressRecord{
			Street: a.street, City: a.city, Country: a.country, ZipCode: a.zipCode,
		})
	}
	return json.Marshal(rec)
}

func (m *Model) decodeCustomer(data []byte) (*Customer, error) {
	var rec customerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	c := &Customer{model: m, id: rec.ID, name: rec.Name, email: rec.Email}
	for _, a := range rec.Addresses {
		c.addresses = append(c.addresses, &Address{
			street: a.Street, city: a.City, country: a.Country, zipCode: a.ZipCode,
		})
	}
	return c, nil
}

type productRecord struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	Images      []string   `json:"images"`
	Ratings     []int      `json:"ratings,omitempty"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
}

func encodeProduct(p *Product) ([]byte, error) {
	rec := productRecord{
		ID: p.id, Name: p.name, Description: p.description,
		Price: p.price, Stock: p.stock, Images: p.images, Ratings: p.ratings,
	}
	if p.category != nil {
		id := p.category.id
		rec.CategoryID = &id
	}
	return json.Marshal(rec)
}

func (m *Model) decodeProduct(data []byte) (*Product, error) {
	var rec productRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	p := &Product{
		model: m, id: rec.ID, name: rec.Name, description: rec.Description,
		price: rec.Price, stock: rec.Stock, images: rec.Images, ratings: rec.Ratings,
	}
	p.recalcAvgRating()
	if rec.CategoryID != nil {
		if cat, ok := m.Categories.byID(*rec.CategoryID); ok {
			p.category = cat
			cat.addProductInternal(p)
		}
	}
	return p, nil
}

type categoryRecord struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
}

func encodeCategory(c *Category) ([]byte, error) {
	rec := categoryRecord{ID: c.id, Name: c.name, Description: c.description}
	if c.parent != nil {
		id := c.parent.id
		rec.ParentID = &id
	}
	return json.Marshal(rec)
}

func (m *Model) decodeCategory(data []byte) (*Category, error) {
	var rec categoryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	c := &Category{model: m, id: rec.ID, name: rec.Name, description: rec.Description}
	if rec.ParentID != nil {
		// Parents precede children in insertion order, so the lookup also
		// covers categories decoded earlier in this same restore.
		if parent, ok := m.Categories.byID(*rec.ParentID); ok {
			c.parent = parent
			parent.children = append(parent.children, c)
		}
	}
	// Restored products relink their membership when their own extent loads;
	// products already in memory with a back-reference to this id reattach here.
	for _, p := range m.Products.Snapshot() {
		if p.category != nil && p.category.id == c.id {
			p.category = c
			c.addProductInternal(p)
		}
	}
	return c, nil
}

type cartRecord struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
	Capacity    int       `json:"capacity"`
}

func encodeCart(s *ShoppingCart) ([]byte, error) {
	return json.Marshal(cartRecord{
		ID: s.id, CreatedAt: s.createdAt, LastUpdated: s.lastUpdated, Capacity: s.capacity,
	})
}

func (m *Model) decodeCart(data []byte) (*ShoppingCart, error) {
	var rec cartRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &ShoppingCart{
		model: m, id: rec.ID, createdAt: rec.CreatedAt, lastUpdated: rec.LastUpdated,
		capacity: rec.Capacity, items: make(map[uuid.UUID]*CartItem),
	}, nil
}

type orderRecord struct {
	ID         uuid.UUID   `json:"id"`
	CreatedAt  time.Time   `json:"created_at"`
	Status     OrderStatus `json:"status"`
	Total      float64     `json:"total"`
	CustomerID uuid.UUID   `json:"customer_id"`
}

func encodeOrder(o *Order) ([]byte, error) {
	rec := orderRecord{
		ID: o.id, CreatedAt: o.createdAt, Status: o.status, Total: o.total,
	}
	if o.customer != nil {
		rec.CustomerID = o.customer.id
	}
	return json.Marshal(rec)
}

func (m *Model) decodeOrder(data []byte) (*Order, error) {
	var rec orderRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	o := &Order{
		model: m, id: rec.ID, createdAt: rec.CreatedAt, status: rec.Status, total: rec.Total,
	}
	if c, ok := m.Customers.byID(rec.CustomerID); ok {
		o.customer = c
		c.addOrderInternal(o)
	}
	return o, nil
}

type orderItemRecord struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

func encodeOrderItem(i *OrderItem) ([]byte, error) {
	rec := orderItemRecord{ID: i.id, Quantity: i.quantity}
	if i.order != nil {
		rec.OrderID = i.order.id
	}
	if i.product != nil {
		rec.ProductID = i.product.id
	}
	return json.Marshal(rec)
}

func (m *Model) decodeOrderItem(data []byte) (*OrderItem, error) {
	var rec orderItemRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	item := &OrderItem{model: m, id: rec.ID, quantity: rec.Quantity}
	if p, ok := m.Products.byID(rec.ProductID); ok {
		item.product = p
	}
	if o, ok := m.Orders.byID(rec.OrderID); ok {
		item.order = o
		o.addItemInternal(item)
	}
	return item, nil
}

type cartItemRecord struct {
	ID        uuid.UUID `json:"id"`
	CartID    uuid.UUID `json:"cart_id,omitempty"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

func encodeCartItem(i *CartItem) ([]byte, error) {
	rec := cartItemRecord{ID: i.id, Quantity: i.quantity}
	if i.cart != nil {
		rec.CartID = i.cart.id
	}
	if i.product != nil {
		rec.ProductID = i.product.id
	}
	return json.Marshal(rec)
}

func (m *Model) decodeCartItem(data []byte) (*CartItem, error) {
	var rec cartItemRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	item := &CartItem{model: m, id: rec.ID, quantity: rec.Quantity}
	if p, ok := m.Products.byID(rec.ProductID); ok {
		item.product = p
	}
	if rec.CartID != uuid.Nil {
		if cart, ok := m.Carts.byID(rec.CartID); ok {
			item.cart = cart
			cart.putInternal(item)
		}
	}
	return item, nil
}
