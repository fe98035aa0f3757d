package menu

import (
	"github.com/atomicstack/gradebook/internal/ui/command"
)

// Node represents a main menu entry definition within the registry.
type Node struct {
	ID     string
	Label  string
	Action Action
}

// Registry exposes lookup utilities for the main menu.
type Registry struct {
	items []Item
	nodes map[string]*Node
}

// BuildRegistry joins RootItems with ActionHandlers.
func BuildRegistry() *Registry {
	handlers := ActionHandlers()
	r := &Registry{nodes: make(map[string]*Node)}
	for _, item := range RootItems() {
		r.items = append(r.items, item)
		r.nodes[item.ID] = &Node{ID: item.ID, Label: item.Label, Action: handlers[item.ID]}
	}
	return r
}

// RootItems returns the main menu entries in display order.
func RootItems() []Item {
	return []Item{
		{ID: "tables", Label: "Tables"},
		{ID: "report", Label: "Report"},
		{ID: "export", Label: "Export to clipboard"},
		{ID: "language", Label: "Language"},
		{ID: "quit", Label: "Quit"},
	}
}

// ActionHandlers maps main menu entries to their execution logic.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		"tables":   TablesAction,
		"report":   ReportAction,
		"export":   ExportAction,
		"language": LanguageAction,
		"quit":     QuitAction,
	}
}

// Items returns the root entries.
func (r *Registry) Items() []Item {
	return append([]Item(nil), r.items...)
}

// Find locates a node by ID.
func (r *Registry) Find(id string) (*Node, bool) {
	node, ok := r.nodes[id]
	return node, ok
}

// QuitAction closes the main menu.
func QuitAction(*Context) (bool, error) { return true, nil }

// RunMain shows the main menu until Quit is chosen or input ends. The exit
// key is disabled here: leaving the program is an explicit entry.
func RunMain(c *Context, r *Registry) error {
	if c.Bus == nil {
		c.Bus = command.New()
	}
	var nested error
	m := newMenu(c, "main", r.Items(), func(entries []Item, index int) bool {
		item := entries[index]
		node, ok := r.Find(item.ID)
		if !ok {
			return false
		}
		done, err := c.Bus.Execute(command.Request{
			ID:    node.ID,
			Label: node.Label,
			Run: func() (bool, error) {
				if node.Action == nil {
					return false, nil
				}
				return node.Action(c)
			},
		})
		if err != nil {
			nested = err
			return true
		}
		return done
	})
	m.UserCanExit = false
	m.UpdateEntries = func(entries []Item) []Item {
		c.sync()
		return entries
	}
	m.DisplayTitle = func([]Item) {
		localize(c, m)
		writeTitle(c, c.t("Gradebook"))
	}
	m.Label = func(item Item) string { return c.t(item.Label) }
	return finish(m.Show(), nested)
}
