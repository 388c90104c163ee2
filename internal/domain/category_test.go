package domain

import "testing"

func TestCategoryValidation(t *testing.T) {
	m := testModel(t)
	if _, err := m.NewCategory("", "desc", nil); !IsCode(err, CodeValidation) {
		t.Fatalf("blank name: got %v", err)
	}
	if _, err := m.NewCategory("Electronics", " ", nil); !IsCode(err, CodeValidation) {
		t.Fatalf("blank description: got %v", err)
	}
}

func TestExclusiveMembership(t *testing.T) {
	m := testModel(t)
	electronics := seedCategory(t, m, "Electronics", nil)
	clothing := seedCategory(t, m, "Clothing", nil)
	p := seedProduct(t, m, "P", 10)

	if err := electronics.AddProduct(p); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if p.Category() != electronics {
		t.Fatalf("back-reference not set")
	}

	// exclusive: second category must refuse
	if err := clothing.AddProduct(p); !IsCode(err, CodeConflict) {
		t.Fatalf("double membership: got %v", err)
	}
	if len(clothing.Products()) != 0 {
		t.Fatalf("rejected attach mutated the category")
	}

	// detach then reattach elsewhere succeeds
	if err := electronics.RemoveProduct(p); err != nil {
		t.Fatalf("detach: %v", err)
	}
	if p.Category() != nil {
		t.Fatalf("detach left back-reference")
	}
	if err := clothing.AddProduct(p); err != nil {
		t.Fatalf("reattach: %v", err)
	}
	if p.Category() != clothing || len(clothing.Products()) != 1 {
		t.Fatalf("reattach links inconsistent")
	}
}

func TestDuplicateMembershipRejected(t *testing.T) {
	m := testModel(t)
	c := seedCategory(t, m, "Electronics", nil)
	p := seedProduct(t, m, "P", 10)
	if err := c.AddProduct(p); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := c.AddProduct(p); !IsCode(err, CodeConflict) {
		t.Fatalf("duplicate attach: got %v", err)
	}
	if len(c.Products()) != 1 {
		t.Fatalf("duplicate attach mutated member set")
	}
}

func TestRemoveNonMemberRejected(t *testing.T) {
	m := testModel(t)
	c := seedCategory(t, m, "Electronics", nil)
	p := seedProduct(t, m, "P", 10)
	if err := c.RemoveProduct(p); !IsCode(err, CodeConflict) {
		t.Fatalf("detach non-member: got %v", err)
	}
}

func TestNoCascadeFromCategoryToProducts(t *testing.T) {
	m := testModel(t)
	c := seedCategory(t, m, "Electronics", nil)
	p := seedProduct(t, m, "P", 10)
	if err := c.AddProduct(p); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := c.RemoveProduct(p); err != nil {
		t.Fatalf("detach: %v", err)
	}
	if !m.Products.Contains(p) {
		t.Fatalf("aggregation detach destroyed the product")
	}
}

func TestMembershipSymmetry(t *testing.T) {
	m := testModel(t)
	electronics := seedCategory(t, m, "Electronics", nil)
	clothing := seedCategory(t, m, "Clothing", nil)
	a := seedProduct(t, m, "A", 1)
	b := seedProduct(t, m, "B", 2)
	if err := electronics.AddProduct(a); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := clothing.AddProduct(b); err != nil {
		t.Fatalf("attach: %v", err)
	}

	for _, p := range m.Products.Snapshot() {
		if p.Category() == nil {
			continue
		}
		owners := 0
		for _, c := range m.Categories.Snapshot() {
			for _, member := range c.Products() {
				if member == p {
					owners++
					if c != p.Category() {
						t.Fatalf("member set and back-reference disagree")
					}
				}
			}
		}
		if owners != 1 {
			t.Fatalf("product in %d member sets, want 1", owners)
		}
	}
}

func TestHierarchySelfParentRejected(t *testing.T) {
	m := testModel(t)
	c := seedCategory(t, m, "Electronics", nil)
	if err := c.AddSubcategory(c); !IsCode(err, CodeInvariant) {
		t.Fatalf("self-parenting: got %v", err)
	}
	if len(c.Subcategories()) != 0 || c.Parent() != nil {
		t.Fatalf("rejected self-parent mutated the tree")
	}
}

func TestHierarchyDuplicateChildRejected(t *testing.T) {
	m := testModel(t)
	parent := seedCategory(t, m, "Electronics", nil)
	child := seedCategory(t, m, "Phones", parent)
	if err := parent.AddSubcategory(child); !IsCode(err, CodeConflict) {
		t.Fatalf("duplicate child: got %v", err)
	}
	if len(parent.Subcategories()) != 1 {
		t.Fatalf("duplicate edge added")
	}
}

func TestHierarchyReparenting(t *testing.T) {
	m := testModel(t)
	oldParent := seedCategory(t, m, "Electronics", nil)
	newParent := seedCategory(t, m, "Outlet", nil)
	child := seedCategory(t, m, "Phones", oldParent)

	if err := newParent.AddSubcategory(child); err != nil {
		t.Fatalf("reparent: %v", err)
	}
	if child.Parent() != newParent {
		t.Fatalf("parent reference not updated")
	}
	if len(oldParent.Subcategories()) != 0 {
		t.Fatalf("old parent still lists the child")
	}
	subs := newParent.Subcategories()
	if len(subs) != 1 || subs[0] != child {
		t.Fatalf("new parent child list = %v", subs)
	}
}

func TestChildrenKeepInsertionOrder(t *testing.T) {
	m := testModel(t)
	parent := seedCategory(t, m, "Electronics", nil)
	names := []string{"Phones", "Computers", "Audio"}
	for _, n := range names {
		seedCategory(t, m, n, parent)
	}
	for i, c := range parent.Subcategories() {
		if c.Name() != names[i] {
			t.Fatalf("position %d: got %q, want %q", i, c.Name(), names[i])
		}
	}
}

func TestCategorySetters(t *testing.T) {
	m := testModel(t)
	c := seedCategory(t, m, "Electronics", nil)
	if err := c.SetName(""); !IsCode(err, CodeValidation) {
		t.Fatalf("blank name: got %v", err)
	}
	if err := c.SetName("Gadgets"); err != nil || c.Name() != "Gadgets" {
		t.Fatalf("set name: %v, name=%q", err, c.Name())
	}
	if err := c.SetDescription(" "); !IsCode(err, CodeValidation) {
		t.Fatalf("blank description: got %v", err)
	}
}
