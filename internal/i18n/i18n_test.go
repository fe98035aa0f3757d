package i18n

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLanguagesUseSelfNames(t *testing.T) {
	var got []string
	for _, l := range Languages() {
		got = append(got, l.Code+"="+l.Name)
	}
	want := []string{"en=English", "de=Deutsch", "fr=français"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("languages mismatch (-want +got):\n%s", diff)
	}
}

func TestTranslate(t *testing.T) {
	c, err := New("de")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.T("Back"); got != "Zurück" {
		t.Fatalf("T(Back) = %q", got)
	}
	if got := c.T("New subject in %s", "Q1"); got != "Neues Fach in Q1" {
		t.Fatalf("T with args = %q", got)
	}
	if err := c.SetLanguage("fr"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if got := c.T("Back"); got != "Retour" {
		t.Fatalf("T(Back) in French = %q", got)
	}
	if c.Language() != "fr" {
		t.Fatalf("Language() = %q", c.Language())
	}
}

func TestUntranslatedKeyFallsBack(t *testing.T) {
	c, err := New("de")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.T("no such key %d", 3); got != "no such key 3" {
		t.Fatalf("fallback = %q", got)
	}
}

func TestPlural(t *testing.T) {
	c, err := New("en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.T("%d subjects", 1); got != "1 subject" {
		t.Fatalf("singular = %q", got)
	}
	if got := c.T("%d subjects", 3); got != "3 subjects" {
		t.Fatalf("plural = %q", got)
	}
	if err := c.SetLanguage("de"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if got := c.T("%d subjects", 2); got != "2 Fächer" {
		t.Fatalf("German plural = %q", got)
	}
}

func TestDecimalUsesLocalSeparator(t *testing.T) {
	c, err := New("en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Decimal(4.75, 2); got != "4.75" {
		t.Fatalf("en decimal = %q", got)
	}
	if got := c.Decimal(4.756, 2); got != "4.76" {
		t.Fatalf("en rounding = %q", got)
	}
	if err := c.SetLanguage("de"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if got := c.Decimal(4.75, 2); got != "4,75" {
		t.Fatalf("de decimal = %q", got)
	}
}

func TestRegionalTagsMatch(t *testing.T) {
	c, err := New("de-CH")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Language() != "de" {
		t.Fatalf("Language() = %q, want de", c.Language())
	}
}

func TestUnsupportedLanguage(t *testing.T) {
	if Supported("ja") {
		t.Fatalf("ja reported as supported")
	}
	if Supported("not a tag!") {
		t.Fatalf("garbage reported as supported")
	}
	if _, err := New("ja"); err == nil {
		t.Fatalf("expected error for ja")
	}
	c, err := New("en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.SetLanguage("ja"); err == nil {
		t.Fatalf("expected SetLanguage error")
	}
	if c.Language() != "en" {
		t.Fatalf("failed switch changed language to %q", c.Language())
	}
}

func TestRelTime(t *testing.T) {
	c, err := New("en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		lang string
		then time.Time
		want string
	}{
		{"en", now, "now"},
		{"en", now.Add(-3 * time.Minute), "3 minutes ago"},
		{"en", now.Add(90 * time.Minute), "1 hour from now"},
		{"de", now.Add(-3 * time.Minute), "vor 3 Minuten"},
		{"de", now.Add(-50 * time.Hour), "vor 2 Tagen"},
		{"fr", now.Add(-3 * time.Minute), "il y a 3 minutes"},
		{"fr", now.Add(2 * time.Hour), "dans 2 heures"},
	}
	for _, tc := range cases {
		if err := c.SetLanguage(tc.lang); err != nil {
			t.Fatalf("SetLanguage(%s): %v", tc.lang, err)
		}
		if got := c.RelTime(tc.then, now); got != tc.want {
			t.Fatalf("%s RelTime(%v) = %q, want %q", tc.lang, now.Sub(tc.then), got, tc.want)
		}
	}
}
