package models

// Family is a primary record linking two parents and an ordered list of
// children. Empty parent handles mean the parent is unknown. After any
// successful write, every referenced person carries a matching
// back-reference to this family.
type Family struct {
	PrimaryObject
	FatherHandle  string      `json:"father_handle"`
	MotherHandle  string      `json:"mother_handle"`
	ChildRefList  []ChildRef  `json:"child_ref_list"`
	Type          EnumType    `json:"type"`
	EventRefList  []EventRef  `json:"event_ref_list"`
	MediaList     []MediaRef  `json:"media_list"`
	AttributeList []Attribute `json:"attribute_list"`
	CitationList  []string    `json:"citation_list"`
	NoteList      []string    `json:"note_list"`
	TagList       []string    `json:"tag_list"`
}

func (f *Family) GetClass() string { return "Family" }

// ChildHandles returns the referenced child handles in order.
func (f *Family) ChildHandles() []string {
	handles := make([]string, 0, len(f.ChildRefList))
	for _, ref := range f.ChildRefList {
		handles = append(handles, ref.Ref)
	}
	return handles
}
