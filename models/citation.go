package models

// Citation confidence levels, matching the Gramps integer convention.
const (
	ConfidenceVeryLow  = 0
	ConfidenceLow      = 1
	ConfidenceNormal   = 2
	ConfidenceHigh     = 3
	ConfidenceVeryHigh = 4
)

// Citation is a primary record pointing at a source, with a page reference
// and a confidence rating.
type Citation struct {
	PrimaryObject
	Date          Date           `json:"date"`
	Page          string         `json:"page"`
	Confidence    int            `json:"confidence"`
	SourceHandle  string         `json:"source_handle"`
	NoteList      []string       `json:"note_list"`
	MediaList     []MediaRef     `json:"media_list"`
	AttributeList []SrcAttribute `json:"attribute_list"`
	TagList       []string       `json:"tag_list"`
}

func (c *Citation) GetClass() string { return "Citation" }
