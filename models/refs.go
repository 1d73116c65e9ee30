package models

// EventRef points a person or family at an event, tagged with the role the
// referrer played in it.
type EventRef struct {
	Ref           string      `json:"ref"`
	Role          EnumType    `json:"role"`
	AttributeList []Attribute `json:"attribute_list"`
	NoteList      []string    `json:"note_list"`
	Private       bool        `json:"private"`
}

// ChildRef points a family at a child, with the relationship of the child
// to each parent (frel = father, mrel = mother).
type ChildRef struct {
	Ref          string   `json:"ref"`
	Frel         EnumType `json:"frel"`
	Mrel         EnumType `json:"mrel"`
	CitationList []string `json:"citation_list"`
	NoteList     []string `json:"note_list"`
	Private      bool     `json:"private"`
}

// MediaRef points an object at a media item, optionally restricted to a
// rectangular region given as percentages (x1, y1, x2, y2 in 0..100).
type MediaRef struct {
	Ref          string   `json:"ref"`
	Rect         []int    `json:"rect"`
	CitationList []string `json:"citation_list"`
	NoteList     []string `json:"note_list"`
	Private      bool     `json:"private"`
}

// PersonRef is an association between two people (godparent, witness, ...).
type PersonRef struct {
	Ref          string   `json:"ref"`
	Rel          string   `json:"rel"`
	CitationList []string `json:"citation_list"`
	NoteList     []string `json:"note_list"`
	Private      bool     `json:"private"`
}

// RepoRef points a source at the repository holding it.
type RepoRef struct {
	Ref        string   `json:"ref"`
	CallNumber string   `json:"call_number"`
	MediaType  EnumType `json:"media_type"`
	NoteList   []string `json:"note_list"`
	Private    bool     `json:"private"`
}

// PlaceRef points a place at an enclosing place. The first entry of a
// place's placeref_list is its parent in the hierarchy.
type PlaceRef struct {
	Ref  string `json:"ref"`
	Date Date   `json:"date"`
}

// Surname is one element of a compound name.
type Surname struct {
	Surname    string   `json:"surname"`
	Prefix     string   `json:"prefix"`
	Primary    bool     `json:"primary"`
	OriginType EnumType `json:"origintype"`
	Connector  string   `json:"connector"`
}

// Name is a personal name with its surname components.
type Name struct {
	FirstName      string    `json:"first_name"`
	SurnameList    []Surname `json:"surname_list"`
	Suffix         string    `json:"suffix"`
	Title          string    `json:"title"`
	Call           string    `json:"call"`
	Nick           string    `json:"nick"`
	FamilyNick     string    `json:"famnick"`
	Type           EnumType  `json:"type"`
	Date           Date      `json:"date"`
	Private        bool      `json:"private"`
	CitationList   []string  `json:"citation_list"`
	NoteList       []string  `json:"note_list"`
}

// PrimarySurname returns the surname marked primary, falling back to the
// first listed surname.
func (n Name) PrimarySurname() string {
	for _, s := range n.SurnameList {
		if s.Primary {
			return s.Surname
		}
	}
	if len(n.SurnameList) > 0 {
		return n.SurnameList[0].Surname
	}
	return ""
}

// PlaceName is a place name with optional validity period and language.
type PlaceName struct {
	Value string `json:"value"`
	Date  Date   `json:"date"`
	Lang  string `json:"lang"`
}

// Attribute is a typed key/value annotation.
type Attribute struct {
	Type         EnumType `json:"type"`
	Value        string   `json:"value"`
	CitationList []string `json:"citation_list"`
	NoteList     []string `json:"note_list"`
	Private      bool     `json:"private"`
}

// SrcAttribute is the citation/source flavor of Attribute (no citations of
// its own).
type SrcAttribute struct {
	Type    EnumType `json:"type"`
	Value   string   `json:"value"`
	Private bool     `json:"private"`
}

// URL is a link attached to a person, place or repository.
type URL struct {
	Path    string   `json:"path"`
	Desc    string   `json:"desc"`
	Type    EnumType `json:"type"`
	Private bool     `json:"private"`
}

// Address is a postal address with a validity date.
type Address struct {
	Date         Date     `json:"date"`
	Street       string   `json:"street"`
	Locality     string   `json:"locality"`
	City         string   `json:"city"`
	County       string   `json:"county"`
	State        string   `json:"state"`
	Country      string   `json:"country"`
	Postal       string   `json:"postal"`
	Phone        string   `json:"phone"`
	CitationList []string `json:"citation_list"`
	NoteList     []string `json:"note_list"`
	Private      bool     `json:"private"`
}

// Location is a structured alternate place location.
type Location struct {
	Street   string `json:"street"`
	Locality string `json:"locality"`
	City     string `json:"city"`
	County   string `json:"county"`
	State    string `json:"state"`
	Country  string `json:"country"`
	Postal   string `json:"postal"`
	Phone    string `json:"phone"`
}

// StyledTextTag marks up a range of a note's text.
type StyledTextTag struct {
	Name   EnumType `json:"name"`
	Value  string   `json:"value"`
	Ranges [][]int  `json:"ranges"`
}

// StyledText is a note body with markup tags.
type StyledText struct {
	String string          `json:"string"`
	Tags   []StyledTextTag `json:"tags"`
}
