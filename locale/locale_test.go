package locale

import (
	"testing"

	"github.com/hollis-git/lineagebackend/models"
)

func TestForLanguageFallback(t *testing.T) {
	if loc := ForLanguage("xx-unknown"); loc.Tag != English().Tag {
		t.Errorf("unknown language should fall back to English, got %v", loc.Tag)
	}
	if loc := ForLanguage("de-AT"); loc.Tag == English().Tag {
		t.Error("de-AT should resolve to the German locale")
	}
}

func TestTranslateTypePassThrough(t *testing.T) {
	loc := English()
	if got := loc.TranslateType("EventType", "My Custom Event"); got != "My Custom Event" {
		t.Errorf("custom type changed: %q", got)
	}
	de := German()
	if got := de.TranslateType("EventType", "Birth"); got != "Geburt" {
		t.Errorf("German Birth = %q, want Geburt", got)
	}
	if got := de.TranslateType("EventType", "My Custom Event"); got != "My Custom Event" {
		t.Errorf("custom type should pass through untranslated, got %q", got)
	}
}

func TestDisplayDate(t *testing.T) {
	loc := English()
	cases := []struct {
		date models.Date
		want string
	}{
		{models.Date{Year: 1900, Month: 5, Day: 17}, "17 May 1900"},
		{models.Date{Year: 1900, Month: 5}, "May 1900"},
		{models.Date{Year: 1900}, "1900"},
		{models.Date{Year: 1900, Modifier: DateModifierBefore}, "before 1900"},
		{models.Date{Year: 1900, Modifier: DateModifierAbout}, "about 1900"},
		{models.Date{Text: "sometime in spring"}, "sometime in spring"},
		{models.Date{}, ""},
	}
	for _, tc := range cases {
		if got := loc.DisplayDate(tc.date); got != tc.want {
			t.Errorf("DisplayDate(%+v) = %q, want %q", tc.date, got, tc.want)
		}
	}
}

func TestFormatSpan(t *testing.T) {
	loc := English()
	from := models.Date{Year: 1900, Month: 1, Day: 1}
	to := models.Date{Year: 1970, Month: 3, Day: 2}
	if got := loc.FormatSpan(from, to, 3); got != "(70 years, 2 months, 1 day)" {
		t.Errorf("FormatSpan = %q", got)
	}
	if got := loc.FormatSpan(from, from, 3); got != "(0 days)" {
		t.Errorf("zero span = %q, want (0 days)", got)
	}
	if got := loc.FormatSpan(models.Date{}, to, 3); got != "" {
		t.Errorf("span with unset date = %q, want empty", got)
	}
}

func TestPlural(t *testing.T) {
	loc := English()
	if got := loc.Plural("year", 1); got != "year" {
		t.Errorf("Plural(year, 1) = %q", got)
	}
	if got := loc.Plural("year", 2); got != "years" {
		t.Errorf("Plural(year, 2) = %q", got)
	}
	de := German()
	if got := de.Plural("day", 2); got != "Tage" {
		t.Errorf("German Plural(day, 2) = %q, want Tage", got)
	}
}
