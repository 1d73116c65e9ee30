package repository

import "github.com/hollis-git/lineagebackend/models"

// Kind names an entity kind in the store. Dispatch on Kind replaces any
// construction of method names from strings.
type Kind string

const (
	KindPerson     Kind = "person"
	KindFamily     Kind = "family"
	KindEvent      Kind = "event"
	KindPlace      Kind = "place"
	KindCitation   Kind = "citation"
	KindSource     Kind = "source"
	KindMedia      Kind = "media"
	KindRepository Kind = "repository"
	KindNote       Kind = "note"
	KindTag        Kind = "tag"
)

// AllKinds lists every entity kind, in the store's canonical order.
var AllKinds = []Kind{
	KindPerson, KindFamily, KindEvent, KindPlace, KindCitation,
	KindSource, KindMedia, KindRepository, KindNote, KindTag,
}

var kindToClass = map[Kind]string{
	KindPerson:     "Person",
	KindFamily:     "Family",
	KindEvent:      "Event",
	KindPlace:      "Place",
	KindCitation:   "Citation",
	KindSource:     "Source",
	KindMedia:      "Media",
	KindRepository: "Repository",
	KindNote:       "Note",
	KindTag:        "Tag",
}

var classToKind = map[string]Kind{}

func init() {
	for k, c := range kindToClass {
		classToKind[c] = k
	}
}

// Class returns the class name for the kind ("person" -> "Person").
func (k Kind) Class() string { return kindToClass[k] }

// KindForClass maps a class name back to its kind.
func KindForClass(class string) (Kind, bool) {
	k, ok := classToKind[class]
	return k, ok
}

// KindForObject returns the kind of a concrete entity.
func KindForObject(obj models.Object) (Kind, bool) {
	return KindForClass(obj.GetClass())
}

// newObjectForKind allocates an empty entity of the given kind.
var newObjectForKind = map[Kind]func() models.Object{
	KindPerson:     func() models.Object { return &models.Person{} },
	KindFamily:     func() models.Object { return &models.Family{} },
	KindEvent:      func() models.Object { return &models.Event{} },
	KindPlace:      func() models.Object { return &models.Place{} },
	KindCitation:   func() models.Object { return &models.Citation{} },
	KindSource:     func() models.Object { return &models.Source{} },
	KindMedia:      func() models.Object { return &models.Media{} },
	KindRepository: func() models.Object { return &models.Repository{} },
	KindNote:       func() models.Object { return &models.Note{} },
	KindTag:        func() models.Object { return &models.Tag{} },
}

// grampsIDPrefix is the conventional prefix used when allocating the next
// free Gramps ID per kind. Tags have no Gramps ID.
var grampsIDPrefix = map[Kind]string{
	KindPerson:     "I",
	KindFamily:     "F",
	KindEvent:      "E",
	KindPlace:      "P",
	KindCitation:   "C",
	KindSource:     "S",
	KindMedia:      "O",
	KindRepository: "R",
	KindNote:       "N",
}
