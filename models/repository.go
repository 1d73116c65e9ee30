package models

// Repository is a primary record for an archive, library or other holder of
// sources.
type Repository struct {
	PrimaryObject
	Name        string    `json:"name"`
	Type        EnumType  `json:"type"`
	URLs        []URL     `json:"urls"`
	AddressList []Address `json:"address_list"`
	NoteList    []string  `json:"note_list"`
	TagList     []string  `json:"tag_list"`
}

func (r *Repository) GetClass() string { return "Repository" }
