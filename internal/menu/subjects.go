package menu

import (
	"strings"

	"github.com/atomicstack/gradebook/internal/format/table"
	"github.com/atomicstack/gradebook/internal/gradebook"
	"github.com/atomicstack/gradebook/internal/ui/form"
)

// RunSubjects lists the subjects of one table. Committing a subject opens
// its grades, 0 adds a subject.
func RunSubjects(c *Context, tableID string) error {
	var nested error
	var rows []string
	current, _ := c.Tables.Table(tableID)
	m := newMenu(c, "subjects", current.Subjects, func(entries []gradebook.Subject, index int) bool {
		ref := gradebook.SubjectRef{Table: tableID, Subject: entries[index].ID}
		if err := RunGrades(c, ref); err != nil {
			nested = err
			return true
		}
		return false
	})
	m.UpdateEntries = func([]gradebook.Subject) []gradebook.Subject {
		c.sync()
		current, _ = c.Tables.Table(tableID)
		return current.Subjects
	}
	m.DisplayTitle = func(entries []gradebook.Subject) {
		localize(c, m)
		m.ZeroLabel = c.t("New subject")
		writeTitle(c, current.Name)
		writeSubtitle(c, tableSummary(c, current))
		rows = subjectRows(c, entries)
	}
	m.DisplayEntry = func(entries []gradebook.Subject, _ gradebook.Subject, index, number int) {
		writeEntry(c, len(entries), number, rows[index])
	}
	m.ZeroAction = func([]gradebook.Subject) bool {
		if err := createSubject(c, tableID); err != nil {
			nested = err
			return true
		}
		return false
	}
	return finish(m.Show(), nested)
}

// tableSummary is the "average  points  passed" line under a table title.
func tableSummary(c *Context, t gradebook.Table) string {
	avg, ok := t.Average()
	if !ok {
		return c.t("No grades yet")
	}
	points := gradebook.CompensationPoints(t.Subjects)
	verdict := c.Styles.Pass.Render(c.t("passed"))
	if !t.Passed() {
		verdict = c.Styles.Fail.Render(c.t("failed"))
	}
	return c.t("Average %s, points %s, %s", c.Catalog.Decimal(avg, 2), gradebook.FormatPoints(points), verdict)
}

func subjectRows(c *Context, subjects []gradebook.Subject) []string {
	cells := make([][]string, len(subjects))
	for i, s := range subjects {
		avg, rounded, points := "–", "–", "–"
		if v, ok := s.Average(); ok {
			avg = c.Catalog.Decimal(v, 2)
			rounded = c.Catalog.Decimal(gradebook.RoundHalf(v), 1)
		}
		if p, ok := s.Points(); ok {
			points = gradebook.FormatPoints(p)
		}
		cells[i] = []string{s.Name, avg, rounded, points}
	}
	return table.Format(cells, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignRight, table.AlignRight})
}

func createSubject(c *Context, tableID string) error {
	t, ok := c.Tables.Table(tableID)
	if !ok {
		return nil
	}
	names := t.SubjectNames()
	name, ok, err := c.prompt(form.Options{
		Title:       c.t("New subject in %s", t.Name),
		Placeholder: c.t("e.g. Mathematics"),
		Validate: func(value string) string {
			if t.HasSubject(value) {
				return c.t("A subject named %q already exists", strings.TrimSpace(value))
			}
			return ""
		},
		Warn: func(value string) string {
			similar := gradebook.SimilarSubjects(names, value)
			if len(similar) == 0 {
				return ""
			}
			return c.t("Similar to %s", strings.Join(similar, ", "))
		},
	})
	if !ok || err != nil {
		return err
	}
	// Reread: the table may have been reloaded while the form was open.
	if t, ok = c.Tables.Table(tableID); !ok {
		return nil
	}
	t.Subjects = append(t.Subjects, gradebook.NewSubject(name))
	c.save(t)
	return nil
}
