package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Product can belong to at most one Category at a time (exclusive
// aggregation); the category back-reference and the category's member list
// are kept mutually consistent by Category.AddProduct/RemoveProduct.
type Product struct {
	model       *Model
	id          uuid.UUID
	name        string
	description string
	price       float64
	stock       int
	images      []string
	ratings     []int
	avgRating   float64
	category    *Category
}

func (m *Model) NewProduct(name, description string, price float64, stock int, images []string) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewError(CodeValidation, "product.new", "name cannot be empty", nil)
	}
	if strings.TrimSpace(description) == "" {
		return nil, NewError(CodeValidation, "product.new", "description cannot be empty", nil)
	}
	if price < 0 {
		return nil, NewError(CodeValidation, "product.new", "price cannot be negative", nil)
	}
	if stock < 0 {
		return nil, NewError(CodeValidation, "product.new", "stock quantity cannot be negative", nil)
	}
	if len(images) == 0 {
		return nil, NewError(CodeValidation, "product.new", "at least one image required", nil)
	}
	p := &Product{
		model:       m,
		id:          uuid.New(),
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		images:      append([]string(nil), images...),
	}
	m.Products.register(p)
	m.log.Debug("product created", "product_id", p.id, "name", name, "price", price)
	return p, nil
}

func (p *Product) ID() uuid.UUID       { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Price() float64      { return p.price }
func (p *Product) Stock() int          { return p.stock }
func (p *Product) AvgRating() float64  { return p.avgRating }

func (p *Product) Images() []string {
	out := make([]string, len(p.images))
	copy(out, p.images)
	return out
}

// Category returns the owning category, or nil when unassigned.
func (p *Product) Category() *Category { return p.category }

// UpdateStock applies a relative stock change.
func (p *Product) UpdateStock(change int) error {
	if p.stock+change < 0 {
		return NewError(CodeValidation, "product.updateStock", "not enough stock", nil)
	}
	p.stock += change
	return nil
}

func (p *Product) InStock() bool { return p.stock > 0 }

// AddReview records a star rating and refreshes the derived average.
func (p *Product) AddReview(stars int) error {
	if stars < 1 || stars > 5 {
		return NewError(CodeValidation, "product.addReview", "rating must be between 1 and 5", nil)
	}
	p.ratings = append(p.ratings, stars)
	p.recalcAvgRating()
	return nil
}

func (p *Product) recalcAvgRating() {
	if len(p.ratings) == 0 {
		p.avgRating = 0
		return
	}
	sum := 0
	for _, r := range p.ratings {
		sum += r
	}
	p.avgRating = float64(sum) / float64(len(p.ratings))
}
