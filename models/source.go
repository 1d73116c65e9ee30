package models

// Source is a primary record describing where evidence comes from.
type Source struct {
	PrimaryObject
	Title         string         `json:"title"`
	Author        string         `json:"author"`
	PubInfo       string         `json:"pubinfo"`
	Abbrev        string         `json:"abbrev"`
	RepoRefList   []RepoRef      `json:"reporef_list"`
	NoteList      []string       `json:"note_list"`
	MediaList     []MediaRef     `json:"media_list"`
	AttributeList []SrcAttribute `json:"attribute_list"`
	TagList       []string       `json:"tag_list"`
}

func (s *Source) GetClass() string { return "Source" }
