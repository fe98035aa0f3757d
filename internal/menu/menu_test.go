package menu

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/gradebook/internal/gradebook"
	"github.com/atomicstack/gradebook/internal/i18n"
	"github.com/atomicstack/gradebook/internal/logging"
	"github.com/atomicstack/gradebook/internal/selector"
	"github.com/atomicstack/gradebook/internal/state"
	"github.com/atomicstack/gradebook/internal/storage"
	"github.com/atomicstack/gradebook/internal/testutil"
	"github.com/atomicstack/gradebook/internal/theme"
	"github.com/atomicstack/gradebook/internal/ui/form"
)

var testNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type answer struct {
	value string
	ok    bool
	err   error
}

// fakePrompter replays answers and records what each form showed.
type fakePrompter struct {
	answers  []answer
	titles   []string
	problems []string
	warnings []string
}

func (p *fakePrompter) Prompt(opts form.Options) (string, bool, error) {
	p.titles = append(p.titles, opts.Title)
	if len(p.answers) == 0 {
		return "", false, nil
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	if a.err != nil {
		return "", false, a.err
	}
	if opts.Warn != nil {
		if w := opts.Warn(a.value); w != "" {
			p.warnings = append(p.warnings, w)
		}
	}
	if opts.Validate != nil {
		if problem := opts.Validate(a.value); problem != "" {
			p.problems = append(p.problems, problem)
			return "", false, nil
		}
	}
	return strings.TrimSpace(a.value), a.ok, nil
}

func submit(values ...string) []answer {
	out := make([]answer, len(values))
	for i, v := range values {
		out[i] = answer{value: v, ok: true}
	}
	return out
}

type fixture struct {
	ctx      *Context
	screen   *testutil.Screen
	keys     *testutil.Keys
	prompter *fakePrompter
	store    storage.Store
}

func newFixture(t *testing.T, script string, tables ...gradebook.Table) *fixture {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "menu.log"))
	t.Cleanup(func() { logging.Configure("") })

	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	catalog, err := i18n.New("en")
	if err != nil {
		t.Fatalf("i18n.New: %v", err)
	}
	tableStore := state.NewTableStore()
	tableStore.SetTables(tables)

	opts := selector.DefaultOptions()
	opts.NoticeDelay = 0
	f := &fixture{
		screen:   testutil.NewScreen(60, 30),
		keys:     testutil.TypeKeys(script),
		prompter: &fakePrompter{},
		store:    store,
	}
	f.ctx = &Context{
		Screen:   f.screen,
		Keys:     f.keys,
		Options:  opts,
		Styles:   theme.Default(),
		Catalog:  catalog,
		Tables:   tableStore,
		Store:    store,
		Prompter: f.prompter,
		Now:      func() time.Time { return testNow },
	}
	return f
}

func (f *fixture) run(t *testing.T) {
	t.Helper()
	if err := RunMain(f.ctx, BuildRegistry()); err != nil {
		t.Fatalf("RunMain: %v", err)
	}
	if n := f.keys.Remaining(); n != 0 {
		t.Fatalf("%d keys left unread", n)
	}
}

// lastFrame returns the most recent frame whose first line is title.
func (f *fixture) lastFrame(t *testing.T, title string) []string {
	t.Helper()
	frames := f.screen.Frames()
	for i := len(frames) - 1; i >= 0; i-- {
		lines := make([]string, len(frames[i]))
		for j, line := range frames[i] {
			lines[j] = ansi.Strip(line)
		}
		if len(lines) > 0 && lines[0] == title {
			return lines
		}
	}
	t.Fatalf("no frame titled %q", title)
	return nil
}

func sampleTable(name string, subjects ...gradebook.Subject) gradebook.Table {
	t := gradebook.NewTable(name)
	t.Created, t.Modified = testNow.Add(-time.Hour), testNow.Add(-time.Hour)
	t.Subjects = subjects
	return t
}

func sampleSubject(name string, values ...float64) gradebook.Subject {
	s := gradebook.NewSubject(name)
	for _, v := range values {
		g := gradebook.NewGrade(v, 1, "")
		g.Date = testNow
		s.Grades = append(s.Grades, g)
	}
	return s
}

func stored(t *testing.T, store storage.Store, id string) gradebook.Table {
	t.Helper()
	var got gradebook.Table
	if err := store.Load("table-"+id, &got); err != nil {
		t.Fatalf("load table %s: %v", id, err)
	}
	return got
}

func TestRegistryOrder(t *testing.T) {
	reg := BuildRegistry()
	var ids []string
	for _, item := range reg.Items() {
		ids = append(ids, item.ID)
		node, ok := reg.Find(item.ID)
		if !ok || node.Action == nil {
			t.Fatalf("entry %q has no action", item.ID)
		}
	}
	want := []string{"tables", "report", "export", "language", "quit"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("registry mismatch (-want +got):\n%s", diff)
	}
	if _, ok := reg.Find("missing"); ok {
		t.Fatalf("unexpected node for missing id")
	}
}

func TestMainMenuHasNoExitRow(t *testing.T) {
	f := newFixture(t, "q5")
	f.run(t)
	want := []string{
		"Gradebook",
		"[1] Tables",
		"[2] Report",
		"[3] Export to clipboard",
		"[4] Language",
		"[5] Quit",
		"",
	}
	if diff := cmp.Diff(want, f.lastFrame(t, "Gradebook")); diff != "" {
		t.Fatalf("main menu mismatch (-want +got):\n%s", diff)
	}
}

func TestMainMenuEndsOnInput(t *testing.T) {
	f := newFixture(t, "")
	if err := RunMain(f.ctx, BuildRegistry()); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}

	f = newFixture(t, "1<ctrl+c>")
	if err := RunMain(f.ctx, BuildRegistry()); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted from nested menu, got %v", err)
	}
}

func TestSyncRunsBeforeEveryFrame(t *testing.T) {
	f := newFixture(t, "1q5")
	syncs := 0
	f.ctx.Sync = func() { syncs++ }
	f.run(t)
	// main, tables, main again
	if syncs != 3 {
		t.Fatalf("Sync ran %d times, want 3", syncs)
	}
}

func TestCreateTable(t *testing.T) {
	f := newFixture(t, "10q5")
	f.prompter.answers = submit("Spring")
	f.run(t)

	tables := f.ctx.Tables.Tables()
	if len(tables) != 1 || tables[0].Name != "Spring" {
		t.Fatalf("unexpected tables %+v", tables)
	}
	if dirty := f.ctx.Tables.Dirty(); len(dirty) != 0 {
		t.Fatalf("saved table still dirty: %+v", dirty)
	}
	if got := stored(t, f.store, tables[0].ID); got.Name != "Spring" {
		t.Fatalf("stored name = %q", got.Name)
	}
	want := []string{
		"Tables",
		"[1] Spring  0 subjects  –  modified now",
		"[0] New table",
		"[q] Back",
		"",
	}
	if diff := cmp.Diff(want, f.lastFrame(t, "Tables")); diff != "" {
		t.Fatalf("table picker mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"New table"}, f.prompter.titles); diff != "" {
		t.Fatalf("form titles mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateTableRejectsDuplicate(t *testing.T) {
	f := newFixture(t, "10q5", sampleTable("Spring"))
	f.prompter.answers = submit(" spring ")
	f.run(t)

	if n := len(f.ctx.Tables.Tables()); n != 1 {
		t.Fatalf("expected 1 table, got %d", n)
	}
	want := []string{`A table named "spring" already exists`}
	if diff := cmp.Diff(want, f.prompter.problems); diff != "" {
		t.Fatalf("problems mismatch (-want +got):\n%s", diff)
	}
}

func TestTableRowsShowAverageAndAge(t *testing.T) {
	term := sampleTable("Term", sampleSubject("Math", 5, 6), sampleSubject("French", 4))
	f := newFixture(t, "1q5", term)
	f.run(t)
	want := []string{
		"Tables",
		"[1] Term  2 subjects  4.75  modified 1 hour ago",
		"[0] New table",
		"[q] Back",
		"",
	}
	if diff := cmp.Diff(want, f.lastFrame(t, "Tables")); diff != "" {
		t.Fatalf("table picker mismatch (-want +got):\n%s", diff)
	}
}

func TestAddSubjectAndGrade(t *testing.T) {
	term := sampleTable("Term", sampleSubject("Math", 5))
	// main > tables > table actions > subjects, add "Maths", open it, add a
	// grade, then back out to the main menu and quit.
	f := newFixture(t, "1110"+"20"+"qqqq5", term)
	f.prompter.answers = submit("Maths", "5,5*2", "oral")
	f.run(t)

	got := stored(t, f.store, term.ID)
	if diff := cmp.Diff([]string{"Math", "Maths"}, got.SubjectNames()); diff != "" {
		t.Fatalf("subjects mismatch (-want +got):\n%s", diff)
	}
	grades := got.Subjects[1].Grades
	if len(grades) != 1 {
		t.Fatalf("expected one grade, got %+v", grades)
	}
	if g := grades[0]; g.Value != 5.5 || g.Weight != 2 || g.Note != "oral" || !g.Date.Equal(testNow) {
		t.Fatalf("unexpected grade %+v", g)
	}
	if diff := cmp.Diff([]string{"Similar to Math"}, f.prompter.warnings); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}
	wantTitles := []string{"New subject in Term", "New grade in Maths", "Note (optional)"}
	if diff := cmp.Diff(wantTitles, f.prompter.titles); diff != "" {
		t.Fatalf("form titles mismatch (-want +got):\n%s", diff)
	}

	want := []string{
		"Maths",
		"Average 5.5",
		"[1] 5.5  ×2  2024-03-01  oral",
		"[0] Add grade",
		"[q] Back",
		"",
	}
	if diff := cmp.Diff(want, f.lastFrame(t, "Maths")); diff != "" {
		t.Fatalf("grade picker mismatch (-want +got):\n%s", diff)
	}
}

func TestSubjectRows(t *testing.T) {
	term := sampleTable("Term", sampleSubject("Math", 5, 6), sampleSubject("French", 3.5), sampleSubject("Art"))
	f := newFixture(t, "111qqq5", term)
	f.run(t)
	want := []string{
		"Term",
		"Average 4.5, points +0.5, passed",
		"[1] Math    5.5  5.5  +1.5",
		"[2] French  3.5  3.5    -1",
		"[3] Art       –    –     –",
		"[0] New subject",
		"[q] Back",
		"",
	}
	frames := f.screen.Frames()
	var got []string
	for _, frame := range frames {
		if len(frame) > 1 && ansi.Strip(frame[1]) == want[1] {
			got = nil
			for _, line := range frame {
				got = append(got, ansi.Strip(line))
			}
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("subject picker mismatch (-want +got):\n%s", diff)
	}
}

func TestAddGradeRejectsOutOfRange(t *testing.T) {
	term := sampleTable("Term", sampleSubject("Math"))
	f := newFixture(t, "11110qqqq5", term)
	f.prompter.answers = submit("7")
	f.run(t)

	if got, _ := f.ctx.Tables.Table(term.ID); len(got.Subjects[0].Grades) != 0 {
		t.Fatalf("out of range grade was added: %+v", got.Subjects[0].Grades)
	}
	if diff := cmp.Diff([]string{"Grades go from 1 to 6"}, f.prompter.problems); diff != "" {
		t.Fatalf("problems mismatch (-want +got):\n%s", diff)
	}
}

func TestCancelledNoteDropsGrade(t *testing.T) {
	term := sampleTable("Term", sampleSubject("Math"))
	f := newFixture(t, "11110qqqq5", term)
	f.prompter.answers = []answer{{value: "5", ok: true}, {ok: false}}
	f.run(t)
	var got gradebook.Table
	if err := f.store.Load("table-"+term.ID, &got); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected nothing stored, got %v", err)
	}
}

func TestInterruptInFormEndsSession(t *testing.T) {
	f := newFixture(t, "10")
	f.prompter.answers = []answer{{err: ErrInterrupted}}
	if err := RunMain(f.ctx, BuildRegistry()); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
	if n := len(f.ctx.Tables.Tables()); n != 0 {
		t.Fatalf("expected no tables, got %d", n)
	}

	term := sampleTable("Term", sampleSubject("Math"))
	f = newFixture(t, "11110", term)
	f.prompter.answers = []answer{{value: "5", ok: true}, {err: ErrInterrupted}}
	if err := RunMain(f.ctx, BuildRegistry()); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted from the note form, got %v", err)
	}
	if got, _ := f.ctx.Tables.Table(term.ID); len(got.Subjects[0].Grades) != 0 {
		t.Fatalf("interrupted grade was added: %+v", got.Subjects[0].Grades)
	}
	if n := f.keys.Remaining(); n != 0 {
		t.Fatalf("%d keys left unread", n)
	}
}

func TestFormErrorCountsAsCancel(t *testing.T) {
	f := newFixture(t, "10q5")
	f.prompter.answers = []answer{{err: errors.New("tty gone")}}
	f.run(t)
	if n := len(f.ctx.Tables.Tables()); n != 0 {
		t.Fatalf("expected no tables, got %d", n)
	}
}

func TestEntryRowsAreStyled(t *testing.T) {
	f := newFixture(t, "1q5", sampleTable("Term"))
	styles := *theme.Default()
	number := lipgloss.NewStyle().SetString("#")
	styles.Number = &number
	f.ctx.Styles = &styles
	f.run(t)
	frame := f.lastFrame(t, "Tables")
	if !strings.HasPrefix(frame[1], "# [1]") {
		t.Fatalf("number prefix not styled: %q", frame[1])
	}
}

func TestDeleteGrade(t *testing.T) {
	term := sampleTable("Term", sampleSubject("Math", 5, 3))
	// open grade 1, confirm with "1" (Yes)
	f := newFixture(t, "1111"+"11"+"qqqq5", term)
	f.run(t)

	got := stored(t, f.store, term.ID)
	grades := got.Subjects[0].Grades
	if len(grades) != 1 || grades[0].Value != 3 {
		t.Fatalf("unexpected grades after delete: %+v", grades)
	}
	if frame := f.lastFrame(t, "Delete grade 5?"); frame[1] != "[1] Yes" || frame[2] != "[2] No" {
		t.Fatalf("unexpected confirm frame %q", frame)
	}
}

func TestKeepGrade(t *testing.T) {
	term := sampleTable("Term", sampleSubject("Math", 5, 3))
	f := newFixture(t, "1111"+"1q"+"qqqq5", term)
	f.run(t)
	table, _ := f.ctx.Tables.Table(term.ID)
	if n := len(table.Subjects[0].Grades); n != 2 {
		t.Fatalf("expected both grades kept, got %d", n)
	}
}

func TestRenameTable(t *testing.T) {
	term := sampleTable("Term")
	other := sampleTable("Other")
	other.Created = term.Created.Add(time.Minute)
	f := newFixture(t, "112"+"2"+"qq5", term, other)
	f.prompter.answers = submit("other", "Autumn")
	f.run(t)

	table, _ := f.ctx.Tables.Table(term.ID)
	if table.Name != "Autumn" {
		t.Fatalf("name = %q, want Autumn", table.Name)
	}
	if diff := cmp.Diff([]string{`A table named "other" already exists`}, f.prompter.problems); diff != "" {
		t.Fatalf("problems mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteTable(t *testing.T) {
	term := sampleTable("Term")
	f := newFixture(t, "1131q5", term)
	if err := f.store.Save(term.CollectionName(), term); err != nil {
		t.Fatalf("Save: %v", err)
	}
	f.run(t)

	if n := len(f.ctx.Tables.Tables()); n != 0 {
		t.Fatalf("expected no tables, got %d", n)
	}
	if removed := f.ctx.Tables.Removed(); len(removed) != 0 {
		t.Fatalf("removal not marked clean: %v", removed)
	}
	var got gradebook.Table
	if err := f.store.Load(term.CollectionName(), &got); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLanguageSwitchPersists(t *testing.T) {
	f := newFixture(t, "425", sampleTable("Term"))
	f.run(t)

	if f.ctx.Catalog.Language() != "de" {
		t.Fatalf("language = %q", f.ctx.Catalog.Language())
	}
	settings, err := LoadSettings(f.store)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.Language != "de" {
		t.Fatalf("stored language = %q", settings.Language)
	}
	want := []string{
		"Notenbuch",
		"[1] Tabellen",
		"[2] Bericht",
		"[3] In die Zwischenablage kopieren",
		"[4] Sprache",
		"[5] Beenden",
		"",
	}
	if diff := cmp.Diff(want, f.lastFrame(t, "Notenbuch")); diff != "" {
		t.Fatalf("german main menu mismatch (-want +got):\n%s", diff)
	}
	if frame := f.lastFrame(t, "Language"); frame[1] != "[1] English *" {
		t.Fatalf("active language not marked: %q", frame)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	f := newFixture(t, "")
	settings, err := LoadSettings(f.store)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings != (Settings{}) {
		t.Fatalf("expected zero settings, got %+v", settings)
	}
}

func TestReportText(t *testing.T) {
	f := newFixture(t, "")
	term := sampleTable("Term", sampleSubject("Math", 5, 6), sampleSubject("French", 3.5))
	text := ReportText(f.ctx, term)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if lines[0] != "Term" {
		t.Fatalf("first line = %q", lines[0])
	}
	if last := lines[len(lines)-1]; last != "Average 4.5, points +0.5, passed" {
		t.Fatalf("summary = %q", last)
	}
	for _, want := range []string{"Subject", "Math", "5 6", "+1.5", "French", "-1"} {
		if !strings.Contains(text, want) {
			t.Fatalf("report missing %q:\n%s", want, text)
		}
	}
}

func TestReportWaitsForKey(t *testing.T) {
	f := newFixture(t, "21x5", sampleTable("Term", sampleSubject("Math", 5)))
	f.run(t)
	if !strings.Contains(ansi.Strip(f.screen.Transcript()), "Press any key to continue") {
		t.Fatalf("missing continue hint")
	}
}

func TestReportBackOut(t *testing.T) {
	f := newFixture(t, "2q5", sampleTable("Term"))
	f.run(t)
	frame := f.lastFrame(t, "Report")
	if diff := cmp.Diff([]string{"Report", "[1] Term", "[q] Back", ""}, frame); diff != "" {
		t.Fatalf("picker mismatch (-want +got):\n%s", diff)
	}
}

func TestExportCopiesReport(t *testing.T) {
	term := sampleTable("Term", sampleSubject("Math", 5))
	f := newFixture(t, "31x5", term)
	var copied string
	f.ctx.Clipboard = func(text string) error {
		copied = text
		return nil
	}
	f.run(t)

	if want := ReportText(f.ctx, term); copied != want {
		t.Fatalf("clipboard mismatch:\nwant %q\ngot  %q", want, copied)
	}
	if !strings.Contains(ansi.Strip(f.screen.Transcript()), `Copied "Term" to the clipboard`) {
		t.Fatalf("missing confirmation")
	}
}

func TestExportReportsClipboardFailure(t *testing.T) {
	f := newFixture(t, "31x5", sampleTable("Term"))
	f.ctx.Clipboard = func(string) error { return errors.New("no display") }
	f.run(t)
	if !strings.Contains(ansi.Strip(f.screen.Transcript()), "Copy failed: no display") {
		t.Fatalf("missing failure notice")
	}
}
