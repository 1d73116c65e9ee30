package models

// Date is a simplified genealogical date: a (possibly partial) calendar day
// plus modifier/quality flags and an optional free-text form. A zero
// year/month/day means the date is unset.
type Date struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Day      int    `json:"day"`
	Modifier int    `json:"modifier"`
	Quality  int    `json:"quality"`
	Text     string `json:"text"`
}

// IsEmpty reports whether no calendar value has been set.
func (d Date) IsEmpty() bool { return d.Year == 0 && d.Month == 0 && d.Day == 0 }

// SortValue is a comparable encoding of the calendar value.
func (d Date) SortValue() int { return d.Year*10000 + d.Month*100 + d.Day }

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	}
	return 30
}

// SpanYMD computes the elapsed interval between two dates in years, months
// and days. Missing month/day components are treated as the start of the
// period. The order of the arguments does not matter; ok is false when
// either date is unset.
func SpanYMD(from, to Date) (years, months, days int, ok bool) {
	if from.IsEmpty() || to.IsEmpty() {
		return 0, 0, 0, false
	}
	if from.SortValue() > to.SortValue() {
		from, to = to, from
	}
	y1, m1, d1 := from.Year, from.Month, from.Day
	y2, m2, d2 := to.Year, to.Month, to.Day
	if m1 == 0 {
		m1 = 1
	}
	if d1 == 0 {
		d1 = 1
	}
	if m2 == 0 {
		m2 = 1
	}
	if d2 == 0 {
		d2 = 1
	}
	years = y2 - y1
	months = m2 - m1
	days = d2 - d1
	if days < 0 {
		months--
		days += daysInMonth(y1, m1)
	}
	if months < 0 {
		years--
		months += 12
	}
	return years, months, days, true
}
