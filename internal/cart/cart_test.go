package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lushstays/staygo/internal/domain"
)

func TestAddMergesByName(t *testing.T) {
	c := New()
	c.Add(domain.MenuItem{Name: "A", Price: 100})
	c.Add(domain.MenuItem{Name: "B", Price: 50})
	c.Add(domain.MenuItem{Name: "A", Price: 100})

	lines := c.Lines()
	require.Len(t, lines, 2, "same name must merge, not duplicate")
	assert.Equal(t, domain.CartLine{Name: "A", Price: 100, Quantity: 2}, lines[0])
	assert.Equal(t, domain.CartLine{Name: "B", Price: 50, Quantity: 1}, lines[1])
	assert.Equal(t, int64(250), c.Total())
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	c := New()
	c.Add(domain.MenuItem{Name: "C", Price: 10})
	c.Add(domain.MenuItem{Name: "A", Price: 20})
	c.Add(domain.MenuItem{Name: "B", Price: 30})
	c.Add(domain.MenuItem{Name: "A", Price: 20})

	var names []string
	for _, l := range c.Lines() {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestRemoveDeletesWholeLine(t *testing.T) {
	c := New()
	c.Add(domain.MenuItem{Name: "A", Price: 100})
	c.Add(domain.MenuItem{Name: "A", Price: 100})
	c.Add(domain.MenuItem{Name: "B", Price: 50})

	c.Remove("A")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "B", lines[0].Name)
	assert.Equal(t, int64(50), c.Total())
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	c := New()
	c.Add(domain.MenuItem{Name: "A", Price: 100})

	c.Remove("missing")

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, int64(100), c.Total())
}

func TestEmptyCartTotalIsZero(t *testing.T) {
	assert.Equal(t, int64(0), New().Total())
}

func TestQuantitiesNeverBelowOne(t *testing.T) {
	c := New()
	c.Add(domain.MenuItem{Name: "A", Price: 100})
	for _, l := range c.Lines() {
		assert.GreaterOrEqual(t, l.Quantity, 1)
	}
	c.Remove("A")
	assert.Zero(t, c.Len(), "removal is wholesale, no zero-quantity lines remain")
}

func TestMenuFilterByCategory(t *testing.T) {
	m := DefaultMenu()

	all := m.FilterByCategory(CategoryAll)
	assert.Len(t, all, len(m.Items()))

	starters := m.FilterByCategory("Starters")
	require.Len(t, starters, 1)
	assert.Equal(t, "Tomato Basil Bruschetta", starters[0].Name)

	assert.Empty(t, m.FilterByCategory("Sushi"))
}

func TestMenuFilterDoesNotTouchCart(t *testing.T) {
	m := DefaultMenu()
	c := New()
	item, ok := m.Find("Smoked Paneer Tikka")
	require.True(t, ok)
	c.Add(item)

	_ = m.FilterByCategory("Desserts")

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, int64(320), c.Total())
}

func TestMenuCategories(t *testing.T) {
	m := DefaultMenu()
	assert.Equal(t,
		[]string{"All", "Starters", "BBQ", "Main Course", "Juices", "Desserts"},
		m.Categories(),
	)
}
