package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Category carries two relationships: the exclusive Product aggregation and
// the reflexive parent/children tree. Children traverse in insertion order.
type Category struct {
	model       *Model
	id          uuid.UUID
	name        string
	description string
	parent      *Category
	children    []*Category
	products    []*Product
}

func (m *Model) NewCategory(name, description string, parent *Category) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewError(CodeValidation, "category.new", "name cannot be empty", nil)
	}
	if strings.TrimSpace(description) == "" {
		return nil, NewError(CodeValidation, "category.new", "description cannot be empty", nil)
	}
	c := &Category{
		model:       m,
		id:          uuid.New(),
		name:        name,
		description: description,
	}
	if parent != nil {
		if err := parent.AddSubcategory(c); err != nil {
			return nil, err
		}
	}
	m.Categories.register(c)
	m.log.Debug("category created", "category_id", c.id, "name", name)
	return c, nil
}

func (c *Category) ID() uuid.UUID       { return c.id }
func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }

// Parent returns the parent category, or nil for a top-level category.
func (c *Category) Parent() *Category { return c.parent }

func (c *Category) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewError(CodeValidation, "category.setName", "name cannot be empty", nil)
	}
	c.name = name
	return nil
}

func (c *Category) SetDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return NewError(CodeValidation, "category.setDescription", "description cannot be empty", nil)
	}
	c.description = description
	return nil
}

func (c *Category) Subcategories() []*Category {
	out := make([]*Category, len(c.children))
	copy(out, c.children)
	return out
}

func (c *Category) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

// AddSubcategory makes c the parent of child. A child with a different
// previous parent is detached from it first; the child's parent reference and
// both child lists stay mutually consistent.
func (c *Category) AddSubcategory(child *Category) error {
	if child == nil {
		return NewError(CodeValidation, "category.addSubcategory", "subcategory cannot be nil", nil)
	}
	if child == c {
		return NewError(CodeInvariant, "category.addSubcategory", "category cannot be a subcategory of itself", nil)
	}
	for _, existing := range c.children {
		if existing == child {
			return NewError(CodeConflict, "category.addSubcategory", "subcategory already registered", nil)
		}
	}
	if child.parent != nil && child.parent != c {
		child.parent.removeChildInternal(child)
	}
	child.parent = c
	c.children = append(c.children, child)
	return nil
}

func (c *Category) removeChildInternal(child *Category) {
	for i, existing := range c.children {
		if existing == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// AddProduct attaches p to this category. A product may belong to at most one
// category; it must be detached from its current one first.
func (c *Category) AddProduct(p *Product) error {
	if p == nil {
		return NewError(CodeValidation, "category.addProduct", "product cannot be nil", nil)
	}
	for _, existing := range c.products {
		if existing == p {
			return NewError(CodeConflict, "category.addProduct", "product already added to this category", nil)
		}
	}
	if p.category != nil {
		return NewError(CodeConflict, "category.addProduct", "product already belongs to another category", nil)
	}
	c.products = append(c.products, p)
	p.category = c
	return nil
}

// addProductInternal relinks a restored product without the exclusivity
// checks; restore replays links that were valid when persisted.
func (c *Category) addProductInternal(p *Product) {
	for _, existing := range c.products {
		if existing == p {
			return
		}
	}
	c.products = append(c.products, p)
}

// RemoveProduct detaches p. Products outlive their category: no cascade.
func (c *Category) RemoveProduct(p *Product) error {
	if p == nil {
		return NewError(CodeValidation, "category.removeProduct", "product cannot be nil", nil)
	}
	found := false
	for i, existing := range c.products {
		if existing == p {
			c.products = append(c.products[:i], c.products[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return NewError(CodeConflict, "category.removeProduct", "product is not in this category", nil)
	}
	p.category = nil
	return nil
}
