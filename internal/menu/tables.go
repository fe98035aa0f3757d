package menu

import (
	"strings"

	"github.com/atomicstack/gradebook/internal/format/table"
	"github.com/atomicstack/gradebook/internal/gradebook"
	"github.com/atomicstack/gradebook/internal/logging"
	"github.com/atomicstack/gradebook/internal/ui/form"
)

// TablesAction opens the table picker from the main menu.
func TablesAction(c *Context) (bool, error) {
	return false, RunTables(c)
}

// RunTables lists the tables. Committing a table opens its actions, 0
// creates a new one.
func RunTables(c *Context) error {
	var nested error
	var rows []string
	m := newMenu(c, "tables", c.Tables.Tables(), func(entries []gradebook.Table, index int) bool {
		if err := runTableActions(c, entries[index].ID); err != nil {
			nested = err
			return true
		}
		return false
	})
	m.ZeroLabel = c.t("New table")
	m.UpdateEntries = func([]gradebook.Table) []gradebook.Table {
		c.sync()
		return c.Tables.Tables()
	}
	m.DisplayTitle = func(entries []gradebook.Table) {
		localize(c, m)
		m.ZeroLabel = c.t("New table")
		writeTitle(c, c.t("Tables"))
		if len(entries) == 0 {
			writeSubtitle(c, c.t("No tables yet"))
		}
		rows = tableRows(c, entries)
	}
	m.DisplayEntry = func(entries []gradebook.Table, _ gradebook.Table, index, number int) {
		writeEntry(c, len(entries), number, rows[index])
	}
	m.ZeroAction = func(entries []gradebook.Table) bool {
		if err := createTable(c, entries); err != nil {
			nested = err
			return true
		}
		return false
	}
	return finish(m.Show(), nested)
}

func tableRows(c *Context, tables []gradebook.Table) []string {
	now := c.now()
	cells := make([][]string, len(tables))
	for i, t := range tables {
		avg := "–"
		if v, ok := t.Average(); ok {
			avg = c.Catalog.Decimal(v, 2)
		}
		cells[i] = []string{
			t.Name,
			c.t("%d subjects", len(t.Subjects)),
			avg,
			c.t("modified %s", c.Catalog.RelTime(t.Modified, now)),
		}
	}
	return table.Format(cells, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignRight, table.AlignLeft})
}

func tableNames(tables []gradebook.Table) []string {
	names := make([]string, len(tables))
	for i, t := range tables {
		names[i] = t.Name
	}
	return names
}

func containsFold(names []string, name string) bool {
	name = strings.TrimSpace(name)
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

func createTable(c *Context, existing []gradebook.Table) error {
	names := tableNames(existing)
	name, ok, err := c.prompt(form.Options{
		Title:       c.t("New table"),
		Placeholder: c.t("e.g. Spring term"),
		Validate: func(value string) string {
			if containsFold(names, value) {
				return c.t("A table named %q already exists", strings.TrimSpace(value))
			}
			return ""
		},
	})
	if !ok || err != nil {
		return err
	}
	t := gradebook.NewTable(name)
	t.Created = c.now()
	c.save(t)
	return nil
}

type tableAction struct {
	id    string
	label string
}

// runTableActions offers opening, renaming and deleting a table.
func runTableActions(c *Context, id string) error {
	actions := []tableAction{
		{id: "subjects", label: "Subjects"},
		{id: "rename", label: "Rename"},
		{id: "delete", label: "Delete"},
	}
	var nested error
	m := newMenu(c, "table-actions", actions, func(entries []tableAction, index int) bool {
		t, ok := c.Tables.Table(id)
		if !ok {
			return true
		}
		switch entries[index].id {
		case "subjects":
			nested = RunSubjects(c, id)
			return nested != nil
		case "rename":
			nested = renameTable(c, t)
			return nested != nil
		case "delete":
			deleted, err := confirm(c, c.t("Delete table %q?", t.Name))
			if err != nil {
				nested = err
				return true
			}
			if deleted {
				deleteTable(c, t)
			}
			return deleted
		}
		return false
	})
	m.UpdateEntries = func(entries []tableAction) []tableAction {
		c.sync()
		return entries
	}
	m.DisplayTitle = func([]tableAction) {
		localize(c, m)
		t, ok := c.Tables.Table(id)
		if !ok {
			writeTitle(c, c.t("Table was removed"))
			return
		}
		writeTitle(c, t.Name)
	}
	m.Label = func(a tableAction) string { return c.t(a.label) }
	return finish(m.Show(), nested)
}

func renameTable(c *Context, t gradebook.Table) error {
	var others []string
	for _, other := range c.Tables.Tables() {
		if other.ID != t.ID {
			others = append(others, other.Name)
		}
	}
	name, ok, err := c.prompt(form.Options{
		Title:   c.t("Rename table"),
		Initial: t.Name,
		Validate: func(value string) string {
			if containsFold(others, value) {
				return c.t("A table named %q already exists", strings.TrimSpace(value))
			}
			return ""
		},
	})
	if !ok || err != nil || name == t.Name {
		return err
	}
	t.Name = name
	c.save(t)
	return nil
}

func deleteTable(c *Context, t gradebook.Table) {
	c.Tables.Remove(t.ID)
	if c.Store == nil {
		return
	}
	if err := c.Store.Delete(t.CollectionName()); err != nil {
		logging.Errorf("delete table %q: %w", t.Name, err)
		return
	}
	c.Tables.MarkClean(t.ID)
}

// confirm shows a two-entry menu. The exit key answers no.
func confirm(c *Context, question string) (bool, error) {
	answers := []string{"Yes", "No"}
	yes := false
	m := newMenu(c, "confirm", answers, func(_ []string, index int) bool {
		yes = index == 0
		return true
	})
	m.DisplayTitle = func([]string) {
		localize(c, m)
		writeTitle(c, question)
	}
	m.Label = func(answer string) string { return c.t(answer) }
	if err := finish(m.Show(), nil); err != nil {
		return false, err
	}
	return yes, nil
}
