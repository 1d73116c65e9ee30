package models

// Media is a primary record for a media file. Path is relative to the media
// base directory; Checksum (md5 of the file content) doubles as the object
// key when files live on object storage.
type Media struct {
	PrimaryObject
	Path          string      `json:"path"`
	Mime          string      `json:"mime"`
	Desc          string      `json:"desc"`
	Checksum      string      `json:"checksum"`
	Date          Date        `json:"date"`
	CitationList  []string    `json:"citation_list"`
	NoteList      []string    `json:"note_list"`
	AttributeList []Attribute `json:"attribute_list"`
	TagList       []string    `json:"tag_list"`
}

func (m *Media) GetClass() string { return "Media" }
