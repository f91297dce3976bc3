// Package cart implements the session shopping cart as a plain in-memory
// aggregate. Persistence is layered on top by Store; the aggregate itself
// never fails.
package cart

// Line is one product's presence in the cart. Name and unit price are
// snapshots taken when the product was first added.
type Line struct {
	ProductID uint
	Name      string
	UnitPrice float64
	Quantity  int
}

type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddItem merges into an existing line for the product (quantities sum) or
// appends a new one. At most one line per product id ever exists. A
// non-positive quantity is treated as 1.
func (c *Cart) AddItem(productID uint, name string, unitPrice float64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity += quantity
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	})
}

// UpdateQuantity sets the line's quantity. A non-positive quantity removes
// the line; an unknown product id is a no-op.
func (c *Cart) UpdateQuantity(productID uint, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the product's line if present, preserving the order of
// the remaining lines.
func (c *Cart) RemoveItem(productID uint) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Idempotent.
func (c *Cart) Clear() {
	c.lines = nil
}

// Subtotal is recomputed from current lines on every call, never cached.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// Len returns the number of lines (not units); the storefront badge shows
// line count.
func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line returns the line for the product id, if present.
func (c *Cart) Line(productID uint) (Line, bool) {
	for _, l := range c.lines {
		if l.ProductID == productID {
			return l, true
		}
	}
	return Line{}, false
}
