package models

// Event is a primary record for something that happened at a time and
// place. Participants are not stored on the event; they are discovered
// through the back-references of people and families whose event_ref_list
// points here.
type Event struct {
	PrimaryObject
	Type          EnumType    `json:"type"`
	Date          Date        `json:"date"`
	Description   string      `json:"description"`
	Place         string      `json:"place"`
	CitationList  []string    `json:"citation_list"`
	NoteList      []string    `json:"note_list"`
	MediaList     []MediaRef  `json:"media_list"`
	AttributeList []Attribute `json:"attribute_list"`
	TagList       []string    `json:"tag_list"`
}

func (e *Event) GetClass() string { return "Event" }
