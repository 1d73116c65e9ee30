// Package locale renders enumerated genealogical type codes, dates and
// elapsed spans as localized display strings. A Locale is immutable and is
// passed explicitly through every call that needs one; the default is only
// applied at the outermost boundary.
package locale

import (
	"golang.org/x/text/language"
)

// Locale holds the string tables for one language. Type tokens missing from
// the tables (custom types) pass through untranslated.
type Locale struct {
	Tag language.Tag

	// types maps an enum class name ("EventType", "EventRoleType", ...) to
	// a canonical XML token -> display string table.
	types map[string]map[string]string

	// units maps a span unit to its [singular, plural] display forms.
	units map[string][2]string

	// months holds display month names at index 1..12.
	months [13]string

	datePrefixes map[int]string
}

// English is the built-in default locale. Its type tables are the identity:
// canonical XML tokens are already English display strings.
func English() *Locale {
	return &Locale{
		Tag:   language.English,
		types: map[string]map[string]string{},
		units: map[string][2]string{
			"year":  {"year", "years"},
			"month": {"month", "months"},
			"day":   {"day", "days"},
		},
		months: [13]string{"", "January", "February", "March", "April", "May",
			"June", "July", "August", "September", "October", "November",
			"December"},
		datePrefixes: map[int]string{
			DateModifierBefore: "before",
			DateModifierAfter:  "after",
			DateModifierAbout:  "about",
		},
	}
}

// ForLanguage returns the locale for a BCP 47 language code, falling back
// to English for unknown languages.
func ForLanguage(lang string) *Locale {
	tag := language.Make(lang)
	base, _ := tag.Base()
	if loc, ok := registry[base.String()]; ok {
		return loc()
	}
	return English()
}

var registry = map[string]func() *Locale{
	"en": English,
	"de": German,
}

// TranslateType renders a canonical XML type token for display. Unknown
// tokens (custom types) are returned unchanged.
func (l *Locale) TranslateType(class, xml string) string {
	if table, ok := l.types[class]; ok {
		if s, ok := table[xml]; ok {
			return s
		}
	}
	return xml
}

// Plural renders a counted span unit ("day", "month", "year").
func (l *Locale) Plural(unit string, n int) string {
	forms, ok := l.units[unit]
	if !ok {
		return unit
	}
	if n == 1 {
		return forms[0]
	}
	return forms[1]
}
