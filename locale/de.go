package locale

import "golang.org/x/text/language"

// German returns the German locale. The tables cover the built-in type
// tokens the profile engine renders; custom tokens pass through.
func German() *Locale {
	return &Locale{
		Tag: language.German,
		types: map[string]map[string]string{
			"EventType": {
				"Birth":             "Geburt",
				"Baptism":           "Taufe",
				"Christening":       "Kleinkindtaufe",
				"Death":             "Tod",
				"Burial":            "Beerdigung",
				"Cremation":         "Einäscherung",
				"Marriage":          "Hochzeit",
				"Marriage License":  "Eheerlaubnis",
				"Marriage Contract": "Ehevertrag",
				"Marriage Banns":    "Aufgebot",
				"Engagement":        "Verlobung",
				"Divorce":           "Scheidung",
				"Divorce Filing":    "Scheidungseinreichung",
				"Annulment":         "Annullierung",
				"Residence":         "Wohnort",
				"Occupation":        "Beruf",
				"Census":            "Volkszählung",
			},
			"EventRoleType": {
				"Primary":   "Primär",
				"Family":    "Familie",
				"Unknown":   "Unbekannt",
				"Witness":   "Zeuge",
				"Clergy":    "Geistlicher",
				"Celebrant": "Zelebrant",
			},
			"FamilyRelType": {
				"Married":   "Verheiratet",
				"Unmarried": "Unverheiratet",
				"Civil Union": "Eingetragene Partnerschaft",
				"Unknown":   "Unbekannt",
			},
			"PlaceType": {
				"Country":      "Land",
				"State":        "Bundesland",
				"County":       "Kreis",
				"City":         "Stadt",
				"Town":         "Ort",
				"Village":      "Dorf",
				"Parish":       "Gemeinde",
				"Neighborhood": "Nachbarschaft",
			},
			"ChildRefType": {
				"Birth":     "Geburt",
				"Adopted":   "Adoptiert",
				"Stepchild": "Stiefkind",
				"Foster":    "Pflegekind",
				"Unknown":   "Unbekannt",
			},
			"NameOriginType": {
				"Inherited":  "Ererbt",
				"Patrilineal": "Patrilinear",
				"Matrilineal": "Matrilinear",
				"Taken":      "Angenommen",
			},
		},
		units: map[string][2]string{
			"year":  {"Jahr", "Jahre"},
			"month": {"Monat", "Monate"},
			"day":   {"Tag", "Tage"},
		},
		months: [13]string{"", "Januar", "Februar", "März", "April", "Mai",
			"Juni", "Juli", "August", "September", "Oktober", "November",
			"Dezember"},
		datePrefixes: map[int]string{
			DateModifierBefore: "vor",
			DateModifierAfter:  "nach",
			DateModifierAbout:  "etwa",
		},
	}
}
