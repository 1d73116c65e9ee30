package models

// Place is a primary record for a location. Lat/Long are stored as strings
// in either decimal or degree-minute-second notation and converted to
// decimal degrees at display time.
type Place struct {
	PrimaryObject
	Title        string      `json:"title"`
	Name         PlaceName   `json:"name"`
	AltNames     []PlaceName `json:"alt_names"`
	PlaceType    EnumType    `json:"place_type"`
	PlaceRefList []PlaceRef  `json:"placeref_list"`
	Lat          string      `json:"lat"`
	Long         string      `json:"long"`
	Code         string      `json:"code"`
	AltLoc       []Location  `json:"alt_loc"`
	URLs         []URL       `json:"urls"`
	MediaList    []MediaRef  `json:"media_list"`
	CitationList []string    `json:"citation_list"`
	NoteList     []string    `json:"note_list"`
	TagList      []string    `json:"tag_list"`
}

func (p *Place) GetClass() string { return "Place" }

// ParentHandle returns the handle of the enclosing place, or "" when the
// place is at the top of its hierarchy.
func (p *Place) ParentHandle() string {
	if len(p.PlaceRefList) == 0 {
		return ""
	}
	return p.PlaceRefList[0].Ref
}
