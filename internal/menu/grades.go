package menu

import (
	"errors"

	"github.com/atomicstack/gradebook/internal/format/table"
	"github.com/atomicstack/gradebook/internal/gradebook"
	"github.com/atomicstack/gradebook/internal/ui/form"
)

// RunGrades lists the grades of one subject. Committing a grade asks
// whether to delete it, 0 adds a grade.
func RunGrades(c *Context, ref gradebook.SubjectRef) error {
	var nested error
	var rows []string
	subject, _ := lookupSubject(c, ref)
	m := newMenu(c, "grades", subject.Grades, func(entries []gradebook.Grade, index int) bool {
		g := entries[index]
		remove, err := confirm(c, c.t("Delete grade %s?", c.Catalog.Decimal(g.Value, 2)))
		if err != nil {
			nested = err
			return true
		}
		if remove {
			removeGrade(c, ref, g.ID)
		}
		return false
	})
	m.UpdateEntries = func([]gradebook.Grade) []gradebook.Grade {
		c.sync()
		subject, _ = lookupSubject(c, ref)
		return subject.Grades
	}
	m.DisplayTitle = func(entries []gradebook.Grade) {
		localize(c, m)
		m.ZeroLabel = c.t("Add grade")
		writeTitle(c, subject.Name)
		if avg, ok := subject.Average(); ok {
			writeSubtitle(c, c.Styles.Grade(avg, gradebook.PassMark).Render(c.t("Average %s", c.Catalog.Decimal(avg, 2))))
		} else {
			writeSubtitle(c, c.t("No grades yet"))
		}
		rows = gradeRows(c, entries)
	}
	m.DisplayEntry = func(entries []gradebook.Grade, _ gradebook.Grade, index, number int) {
		writeEntry(c, len(entries), number, rows[index])
	}
	m.ZeroAction = func([]gradebook.Grade) bool {
		if err := addGrade(c, ref); err != nil {
			nested = err
			return true
		}
		return false
	}
	return finish(m.Show(), nested)
}

func lookupSubject(c *Context, ref gradebook.SubjectRef) (gradebook.Subject, bool) {
	t, ok := c.Tables.Table(ref.Table)
	if !ok {
		return gradebook.Subject{}, false
	}
	i := t.SubjectIndex(ref.Subject)
	if i < 0 {
		return gradebook.Subject{}, false
	}
	return t.Subjects[i], true
}

func gradeRows(c *Context, grades []gradebook.Grade) []string {
	cells := make([][]string, len(grades))
	for i, g := range grades {
		cells[i] = []string{
			c.Catalog.Decimal(g.Value, 2),
			"×" + c.Catalog.Decimal(g.Weight, 2),
			g.Date.Format("2006-01-02"),
			g.Note,
		}
	}
	return table.Format(cells, []table.Alignment{table.AlignRight, table.AlignRight, table.AlignLeft, table.AlignLeft})
}

// gradeProblem turns a parse error into a localized message.
func gradeProblem(c *Context, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gradebook.ErrGradeRange):
		return c.t("Grades go from %v to %v", gradebook.MinGrade, gradebook.MaxGrade)
	case errors.Is(err, gradebook.ErrWeight):
		return c.t("Weight must be positive")
	default:
		return c.t("Enter a number such as 5.5 or 5.5*2")
	}
}

func addGrade(c *Context, ref gradebook.SubjectRef) error {
	subject, ok := lookupSubject(c, ref)
	if !ok {
		return nil
	}
	text, ok, err := c.prompt(form.Options{
		Title:       c.t("New grade in %s", subject.Name),
		Placeholder: "5.5*2",
		CharLimit:   16,
		Validate: func(value string) string {
			_, _, err := gradebook.ParseGradeEntry(value)
			return gradeProblem(c, err)
		},
	})
	if !ok || err != nil {
		return err
	}
	value, weight, perr := gradebook.ParseGradeEntry(text)
	if perr != nil {
		return nil
	}
	note, ok, err := c.prompt(form.Options{
		Title:      c.t("Note (optional)"),
		AllowEmpty: true,
	})
	if !ok || err != nil {
		return err
	}
	t, ok := c.Tables.Table(ref.Table)
	if !ok {
		return nil
	}
	i := t.SubjectIndex(ref.Subject)
	if i < 0 {
		return nil
	}
	g := gradebook.NewGrade(value, weight, note)
	g.Date = c.now()
	t.Subjects[i].Grades = append(t.Subjects[i].Grades, g)
	c.save(t)
	return nil
}

func removeGrade(c *Context, ref gradebook.SubjectRef, gradeID string) {
	t, ok := c.Tables.Table(ref.Table)
	if !ok {
		return
	}
	i := t.SubjectIndex(ref.Subject)
	if i < 0 {
		return
	}
	s := &t.Subjects[i]
	for j, g := range s.Grades {
		if g.ID == gradeID {
			s.RemoveGrade(j)
			c.save(t)
			return
		}
	}
}
