package menu

import (
	"bytes"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/atomicstack/gradebook/internal/gradebook"
)

// ReportAction shows the report of a chosen table.
func ReportAction(c *Context) (bool, error) {
	t, ok, err := pickTable(c, c.t("Report"))
	if err != nil || !ok {
		return false, err
	}
	if c.Options.ClearOnSwitch {
		c.Screen.Clear()
	}
	for _, line := range strings.Split(strings.TrimRight(ReportText(c, t), "\n"), "\n") {
		c.Screen.WriteLine(line)
	}
	return false, waitKey(c)
}

// ExportAction copies the report of a chosen table to the clipboard.
func ExportAction(c *Context) (bool, error) {
	t, ok, err := pickTable(c, c.t("Export to clipboard"))
	if err != nil || !ok {
		return false, err
	}
	if c.Options.ClearOnSwitch {
		c.Screen.Clear()
	}
	switch {
	case c.Clipboard == nil:
		c.Screen.WriteLine(c.Styles.Error.Render(c.t("Clipboard is not available")))
	default:
		if err := c.Clipboard(ReportText(c, t)); err != nil {
			c.Screen.WriteLine(c.Styles.Error.Render(c.t("Copy failed: %v", err)))
		} else {
			c.Screen.WriteLine(c.Styles.Info.Render(c.t("Copied %q to the clipboard", t.Name)))
		}
	}
	return false, waitKey(c)
}

// ReportText renders a table as plain text: one row per subject followed by
// the overall result.
func ReportText(c *Context, t gradebook.Table) string {
	var buf bytes.Buffer
	buf.WriteString(t.Name + "\n\n")

	w := tablewriter.NewWriter(&buf)
	w.SetHeader([]string{c.t("Subject"), c.t("Grades"), c.t("Average"), c.t("Rounded"), c.t("Points")})
	w.SetAutoFormatHeaders(false)
	w.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	w.SetAlignment(tablewriter.ALIGN_LEFT)
	w.SetHeaderLine(false)
	w.SetBorder(false)
	w.SetNoWhiteSpace(true)
	w.SetTablePadding("    ")
	for _, s := range t.Subjects {
		grades := make([]string, len(s.Grades))
		for i, g := range s.Grades {
			grades[i] = c.Catalog.Decimal(g.Value, 2)
			if g.Weight != 1 {
				grades[i] += "×" + c.Catalog.Decimal(g.Weight, 2)
			}
		}
		avg, rounded, points := "-", "-", "-"
		if v, ok := s.Average(); ok {
			avg = c.Catalog.Decimal(v, 2)
			rounded = c.Catalog.Decimal(gradebook.RoundHalf(v), 1)
		}
		if p, ok := s.Points(); ok {
			points = gradebook.FormatPoints(p)
		}
		w.Append([]string{s.Name, strings.Join(grades, " "), avg, rounded, points})
	}
	w.Render()

	buf.WriteString("\n")
	if avg, ok := t.Average(); ok {
		verdict := c.t("passed")
		if !t.Passed() {
			verdict = c.t("failed")
		}
		buf.WriteString(c.t("Average %s, points %s, %s", c.Catalog.Decimal(avg, 2),
			gradebook.FormatPoints(gradebook.CompensationPoints(t.Subjects)), verdict))
	} else {
		buf.WriteString(c.t("No grades yet"))
	}
	buf.WriteString("\n")
	return buf.String()
}

// pickTable lets the user choose a table. ok is false when the user backed
// out or there is nothing to choose.
func pickTable(c *Context, title string) (gradebook.Table, bool, error) {
	var chosen gradebook.Table
	picked := false
	m := newMenu(c, "pick-table", c.Tables.Tables(), func(entries []gradebook.Table, index int) bool {
		chosen, picked = entries[index], true
		return true
	})
	m.UpdateEntries = func([]gradebook.Table) []gradebook.Table {
		c.sync()
		return c.Tables.Tables()
	}
	m.DisplayTitle = func(entries []gradebook.Table) {
		localize(c, m)
		writeTitle(c, title)
		if len(entries) == 0 {
			writeSubtitle(c, c.t("No tables yet"))
		}
	}
	m.Label = func(t gradebook.Table) string { return t.Name }
	if err := finish(m.Show(), nil); err != nil {
		return gradebook.Table{}, false, err
	}
	return chosen, picked, nil
}
