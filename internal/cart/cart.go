// Package cart implements the restaurant order aggregator and the static
// menu catalog it draws items from.
package cart

import "github.com/lushstays/staygo/internal/domain"

// Cart accumulates named, priced, quantified lines. Line names are unique;
// adding an existing name increments its quantity. Lines keep the insertion
// order of their first add.
type Cart struct {
	lines []domain.CartLine
}

func New() *Cart { return &Cart{} }

// Add merges item into the cart: an existing line with the same name gets
// quantity+1 (price preserved), otherwise a new line with quantity 1 is
// appended.
func (c *Cart) Add(item domain.MenuItem) {
	for i := range c.lines {
		if c.lines[i].Name == item.Name {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	})
}

// Remove deletes the whole line. There is no partial decrement; a name not
// in the cart is a no-op.
func (c *Cart) Remove(name string) {
	for i := range c.lines {
		if c.lines[i].Name == name {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Total returns the sum of price*quantity over all lines, 0 when empty.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.LineTotal()
	}
	return total
}

// Lines returns a snapshot of the cart in display order.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) Clear() { c.lines = nil }
