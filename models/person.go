package models

// Person is a primary record describing an individual. FamilyList holds the
// handles of families where this person is a spouse, ParentFamilyList the
// handles of families where this person is a child. Both lists are kept in
// sync with the families' own references by the write path.
type Person struct {
	PrimaryObject
	Gender           int         `json:"gender"`
	PrimaryName      Name        `json:"primary_name"`
	AlternateNames   []Name      `json:"alternate_names"`
	EventRefList     []EventRef  `json:"event_ref_list"`
	FamilyList       []string    `json:"family_list"`
	ParentFamilyList []string    `json:"parent_family_list"`
	MediaList        []MediaRef  `json:"media_list"`
	AddressList      []Address   `json:"address_list"`
	AttributeList    []Attribute `json:"attribute_list"`
	URLs             []URL       `json:"urls"`
	PersonRefList    []PersonRef `json:"person_ref_list"`
	CitationList     []string    `json:"citation_list"`
	NoteList         []string    `json:"note_list"`
	TagList          []string    `json:"tag_list"`
	BirthRefIndex    int         `json:"birth_ref_index"`
	DeathRefIndex    int         `json:"death_ref_index"`
}

func (p *Person) GetClass() string { return "Person" }

// MainParentFamilyHandle returns the handle of the primary parent family,
// or "" if the person has none.
func (p *Person) MainParentFamilyHandle() string {
	if len(p.ParentFamilyList) == 0 {
		return ""
	}
	return p.ParentFamilyList[0]
}

// AddFamilyHandle records membership as a spouse in the given family.
func (p *Person) AddFamilyHandle(handle string) {
	for _, h := range p.FamilyList {
		if h == handle {
			return
		}
	}
	p.FamilyList = append(p.FamilyList, handle)
}

// RemoveFamilyHandle drops membership as a spouse in the given family.
func (p *Person) RemoveFamilyHandle(handle string) {
	out := p.FamilyList[:0]
	for _, h := range p.FamilyList {
		if h != handle {
			out = append(out, h)
		}
	}
	p.FamilyList = out
}

// AddParentFamilyHandle records membership as a child of the given family.
func (p *Person) AddParentFamilyHandle(handle string) {
	for _, h := range p.ParentFamilyList {
		if h == handle {
			return
		}
	}
	p.ParentFamilyList = append(p.ParentFamilyList, handle)
}

// RemoveParentFamilyHandle drops membership as a child of the given family.
func (p *Person) RemoveParentFamilyHandle(handle string) {
	out := p.ParentFamilyList[:0]
	for _, h := range p.ParentFamilyList {
		if h != handle {
			out = append(out, h)
		}
	}
	p.ParentFamilyList = out
}
