package models

// Note is a primary record holding free-form styled text.
type Note struct {
	PrimaryObject
	Text    StyledText `json:"text"`
	Format  int        `json:"format"`
	Type    EnumType   `json:"type"`
	TagList []string   `json:"tag_list"`
}

func (n *Note) GetClass() string { return "Note" }
