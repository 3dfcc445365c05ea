package cart

import "github.com/lushstays/staygo/internal/domain"

// CategoryAll is the pseudo-category matching every menu item.
const CategoryAll = "All"

// Menu is the static restaurant catalog. It never changes during a session;
// filtering is a pure read projection and independent of cart state.
type Menu struct {
	items      []domain.MenuItem
	categories []string
}

func NewMenu(items []domain.MenuItem) *Menu {
	m := &Menu{items: items, categories: []string{CategoryAll}}
	seen := map[string]bool{}
	for _, it := range items {
		if !seen[it.Category] {
			seen[it.Category] = true
			m.categories = append(m.categories, it.Category)
		}
	}
	return m
}

// DefaultMenu returns the built-in restaurant card.
func DefaultMenu() *Menu {
	return NewMenu([]domain.MenuItem{
		{Name: "Tomato Basil Bruschetta", Category: "Starters", Price: 180},
		{Name: "Smoked Paneer Tikka", Category: "BBQ", Price: 320},
		{Name: "Herb Grilled Chicken", Category: "Main Course", Price: 420},
		{Name: "Cold Pressed Watermelon", Category: "Juices", Price: 150},
		{Name: "Belgian Chocolate Mousse", Category: "Desserts", Price: 260},
	})
}

// Items returns the full menu.
func (m *Menu) Items() []domain.MenuItem {
	out := make([]domain.MenuItem, len(m.items))
	copy(out, m.items)
	return out
}

// Categories returns the category filters in menu order, CategoryAll first.
func (m *Menu) Categories() []string {
	out := make([]string, len(m.categories))
	copy(out, m.categories)
	return out
}

// FilterByCategory narrows the menu to one category. CategoryAll and the
// empty string return everything.
func (m *Menu) FilterByCategory(category string) []domain.MenuItem {
	if category == "" || category == CategoryAll {
		return m.Items()
	}
	var out []domain.MenuItem
	for _, it := range m.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Find looks up a menu item by name.
func (m *Menu) Find(name string) (domain.MenuItem, bool) {
	for _, it := range m.items {
		if it.Name == name {
			return it, true
		}
	}
	return domain.MenuItem{}, false
}
