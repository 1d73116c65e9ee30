package locale

import (
	"fmt"
	"strings"

	"github.com/hollis-git/lineagebackend/models"
)

// Date modifier codes, matching the store convention.
const (
	DateModifierNone   = 0
	DateModifierBefore = 1
	DateModifierAfter  = 2
	DateModifierAbout  = 3
)

// DisplayDate renders a date for display. Partial dates drop the missing
// components; an unset date with free text renders the text; a fully unset
// date renders as the empty string.
func (l *Locale) DisplayDate(d models.Date) string {
	if d.IsEmpty() {
		return d.Text
	}
	var parts []string
	if d.Day > 0 && d.Month > 0 {
		parts = append(parts, fmt.Sprintf("%d", d.Day))
	}
	if d.Month >= 1 && d.Month <= 12 {
		parts = append(parts, l.months[d.Month])
	}
	if d.Year != 0 {
		parts = append(parts, fmt.Sprintf("%d", d.Year))
	}
	out := strings.Join(parts, " ")
	if prefix, ok := l.datePrefixes[d.Modifier]; ok {
		out = prefix + " " + out
	}
	return out
}

// FormatSpan renders the elapsed interval between two dates, parenthesized
// the way profile consumers expect; callers strip the parentheses. The
// precision limits how many units (years, months, days) are emitted.
// Returns "" when either date is unset.
func (l *Locale) FormatSpan(from, to models.Date, precision int) string {
	years, months, days, ok := models.SpanYMD(from, to)
	if !ok {
		return ""
	}
	if precision <= 0 {
		precision = 3
	}
	type unit struct {
		n    int
		name string
	}
	var parts []string
	for _, u := range []unit{{years, "year"}, {months, "month"}, {days, "day"}} {
		if u.n != 0 {
			parts = append(parts, l.numberOf(u.n, u.name))
		}
		if len(parts) == precision {
			break
		}
	}
	if len(parts) == 0 {
		return "(" + l.ZeroDays() + ")"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ZeroDays is the zero-length span placeholder.
func (l *Locale) ZeroDays() string {
	return l.numberOf(0, "day")
}

func (l *Locale) numberOf(n int, unit string) string {
	return fmt.Sprintf("%d %s", n, l.Plural(unit, n))
}
