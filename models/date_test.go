package models

import "testing"

func TestSpanYMD(t *testing.T) {
	cases := []struct {
		name   string
		from   Date
		to     Date
		years  int
		months int
		days   int
		ok     bool
	}{
		{
			name:  "full years",
			from:  Date{Year: 1900, Month: 1, Day: 1},
			to:    Date{Year: 1970, Month: 1, Day: 1},
			years: 70, ok: true,
		},
		{
			name:  "day underflow borrows a month",
			from:  Date{Year: 1900, Month: 1, Day: 20},
			to:    Date{Year: 1900, Month: 3, Day: 10},
			years: 0, months: 1, days: 21, ok: true,
		},
		{
			name:  "month underflow borrows a year",
			from:  Date{Year: 1900, Month: 10, Day: 1},
			to:    Date{Year: 1901, Month: 2, Day: 1},
			years: 0, months: 4, days: 0, ok: true,
		},
		{
			name:  "reversed arguments swap",
			from:  Date{Year: 1970, Month: 6, Day: 15},
			to:    Date{Year: 1950, Month: 6, Day: 15},
			years: 20, ok: true,
		},
		{
			name:  "partial dates default to period start",
			from:  Date{Year: 1900},
			to:    Date{Year: 1905, Month: 3},
			years: 5, months: 2, ok: true,
		},
		{
			name: "unset date yields no span",
			from: Date{},
			to:   Date{Year: 1900, Month: 1, Day: 1},
			ok:   false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			years, months, days, ok := SpanYMD(tc.from, tc.to)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if years != tc.years || months != tc.months || days != tc.days {
				t.Errorf("span = %d years %d months %d days, want %d/%d/%d",
					years, months, days, tc.years, tc.months, tc.days)
			}
		})
	}
}

func TestPersonFamilyHandleLists(t *testing.T) {
	p := &Person{}
	p.AddFamilyHandle("f1")
	p.AddFamilyHandle("f1")
	p.AddFamilyHandle("f2")
	if len(p.FamilyList) != 2 {
		t.Fatalf("FamilyList = %v, want two distinct handles", p.FamilyList)
	}
	p.RemoveFamilyHandle("f1")
	if len(p.FamilyList) != 1 || p.FamilyList[0] != "f2" {
		t.Errorf("FamilyList after removal = %v, want [f2]", p.FamilyList)
	}

	p.AddParentFamilyHandle("pf1")
	p.AddParentFamilyHandle("pf2")
	if p.MainParentFamilyHandle() != "pf1" {
		t.Errorf("MainParentFamilyHandle = %q, want pf1", p.MainParentFamilyHandle())
	}
	p.RemoveParentFamilyHandle("pf1")
	if p.MainParentFamilyHandle() != "pf2" {
		t.Errorf("MainParentFamilyHandle after removal = %q, want pf2", p.MainParentFamilyHandle())
	}
}

func TestPrimarySurname(t *testing.T) {
	n := Name{SurnameList: []Surname{
		{Surname: "von Neumann"},
		{Surname: "Smith", Primary: true},
	}}
	if got := n.PrimarySurname(); got != "Smith" {
		t.Errorf("PrimarySurname = %q, want Smith", got)
	}
	n = Name{SurnameList: []Surname{{Surname: "Jones"}}}
	if got := n.PrimarySurname(); got != "Jones" {
		t.Errorf("PrimarySurname fallback = %q, want Jones", got)
	}
	if got := (Name{}).PrimarySurname(); got != "" {
		t.Errorf("PrimarySurname empty = %q, want empty", got)
	}
}

func TestExtractReferencesFamily(t *testing.T) {
	f := &Family{
		FatherHandle: "father",
		MotherHandle: "mother",
		ChildRefList: []ChildRef{{Ref: "child"}},
		EventRefList: []EventRef{{Ref: "wedding"}},
		NoteList:     []string{"note1"},
	}
	refs := ExtractReferences(f)
	want := map[Reference]bool{
		{Class: "Person", Handle: "father"}:  true,
		{Class: "Person", Handle: "mother"}:  true,
		{Class: "Person", Handle: "child"}:   true,
		{Class: "Event", Handle: "wedding"}:  true,
		{Class: "Note", Handle: "note1"}:     true,
	}
	if len(refs) != len(want) {
		t.Fatalf("got %d references %v, want %d", len(refs), refs, len(want))
	}
	for _, ref := range refs {
		if !want[ref] {
			t.Errorf("unexpected reference %v", ref)
		}
	}
}
