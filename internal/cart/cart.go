package cart

import "github.com/fjod/go_techstore/internal/catalog"

// Line is one product entry in the cart with an associated quantity.
// The product fields are flattened into the stored JSON.
type Line struct {
	catalog.Product
	Qty int `json:"qty"`
}

// Cart holds the selected lines. At most one line exists per product id;
// adding a product that is already present merges into the existing line.
// The cart itself is not safe for concurrent use, callers serialize access.
type Cart struct {
	lines []Line
}

func New(lines []Line) *Cart {
	c := &Cart{lines: make([]Line, len(lines))}
	copy(c.lines, lines)
	return c
}

// Add merges the product into the cart: an existing line gets its quantity
// incremented by one, otherwise a new line with quantity one is appended.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.lines {
		if c.lines[i].ID == p.ID {
			c.lines[i].Qty++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Qty: 1})
}

// SetQty applies a quantity delta to the line with the given product id.
// The resulting quantity never drops below one; use Remove to delete a line.
// No-op if the line is absent.
func (c *Cart) SetQty(id string, delta int) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Qty = max(1, c.lines[i].Qty+delta)
			return
		}
	}
}

// Remove deletes the line with the given product id, no-op if absent.
func (c *Cart) Remove(id string) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total is the sum of price times quantity over all lines, 0 for an empty cart.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Qty)
	}
	return total
}

// Count is the sum of quantities over all lines, used for the badge display.
func (c *Cart) Count() int {
	var count int
	for _, l := range c.lines {
		count += l.Qty
	}
	return count
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Clear removes all lines.
func (c *Cart) Clear() {
	c.lines = nil
}
