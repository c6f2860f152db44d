// Package cart holds the in-memory order state for one browsing session.
// Nothing here touches the network or the database; the cart lives and dies
// with the session that owns it.
package cart

import "dinein/models"

// Line is one dish in the cart together with its quantity. The dish is a
// snapshot taken at add time, so a later menu price change does not move the
// total for items already in the cart.
type Line struct {
	Dish models.Dish
	Qty  int
}

// Cart is an ordered collection of lines, at most one per dish id. Lines keep
// their first-add position; quantity changes never reorder them, and a line
// whose quantity reaches zero is deleted rather than kept around.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts one more of the dish in the cart, appending a new line on first
// add.
func (c *Cart) Add(d models.Dish) {
	c.ApplyDelta(d, 1)
}

// Remove takes one of the dish out. The line is deleted exactly when its
// quantity would drop to zero; removing a dish with no line is a no-op.
func (c *Cart) Remove(d models.Dish) {
	c.ApplyDelta(d, -1)
}

// ApplyDelta adjusts the dish's quantity by an arbitrary signed amount in one
// step. A resulting quantity <= 0 deletes the line; a positive delta for an
// absent dish creates one.
func (c *Cart) ApplyDelta(d models.Dish, delta int) {
	for i := range c.lines {
		if c.lines[i].Dish.ID != d.ID {
			continue
		}
		q := c.lines[i].Qty + delta
		if q <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Qty = q
		}
		return
	}
	if delta > 0 {
		c.lines = append(c.lines, Line{Dish: d, Qty: delta})
	}
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	n := 0
	for _, l := range c.lines {
		n += l.Qty
	}
	return n
}

// TotalAmount sums price times quantity using each line's captured price.
func (c *Cart) TotalAmount() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Dish.Price * int64(l.Qty)
	}
	return total
}

// Line returns the line for the dish id, if present.
func (c *Cart) Line(dishID int64) (Line, bool) {
	for _, l := range c.lines {
		if l.Dish.ID == dishID {
			return l, true
		}
	}
	return Line{}, false
}

// Lines returns the lines in first-add order. The slice is a copy; mutating
// it does not touch the cart.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) Empty() bool { return len(c.lines) == 0 }
