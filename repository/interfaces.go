package repository

import (
	"errors"

	"github.com/hollis-git/lineagebackend/models"
)

// ErrHandleNotFound is returned whenever a handle lookup finds nothing.
var ErrHandleNotFound = errors.New("handle not found")

// Backlink names one object that references a given handle.
type Backlink struct {
	Class  string
	Handle string
}

// ReadStore is the narrow read contract the profile engine consumes. One
// method per entity kind; the generic ObjectFromHandle dispatches through
// an explicit kind table.
type ReadStore interface {
	PersonFromHandle(handle string) (*models.Person, error)
	FamilyFromHandle(handle string) (*models.Family, error)
	EventFromHandle(handle string) (*models.Event, error)
	PlaceFromHandle(handle string) (*models.Place, error)
	CitationFromHandle(handle string) (*models.Citation, error)
	SourceFromHandle(handle string) (*models.Source, error)
	MediaFromHandle(handle string) (*models.Media, error)
	RepositoryFromHandle(handle string) (*models.Repository, error)
	NoteFromHandle(handle string) (*models.Note, error)
	TagFromHandle(handle string) (*models.Tag, error)

	ObjectFromHandle(kind Kind, handle string) (models.Object, error)
	HasHandle(kind Kind, handle string) (bool, error)
	HasGrampsID(kind Kind, grampsID string) (bool, error)

	// FindBacklinkHandles returns every object referencing the given
	// handle, optionally restricted to the given referrer classes.
	FindBacklinkHandles(handle string, includeClasses []string) ([]Backlink, error)

	// Best-available event pickers. They return (nil, nil) when the person
	// or family has no suitable event.
	BirthOrFallback(person *models.Person) (*models.Event, error)
	DeathOrFallback(person *models.Person) (*models.Event, error)
	MarriageOrFallback(family *models.Family) (*models.Event, error)
	DivorceOrFallback(family *models.Family) (*models.Event, error)

	Readonly() bool
}

// WriteStore extends ReadStore with the write surface. Callers that only
// hold a ReadStore must treat a failed assertion to WriteStore as "store
// does not support writing".
type WriteStore interface {
	ReadStore

	AddObject(kind Kind, obj models.Object, txn *Txn) error
	CommitObject(kind Kind, obj models.Object, txn *Txn) error
	CommitPerson(person *models.Person, txn *Txn) error
	DeleteObject(kind Kind, handle string, txn *Txn) error

	// SetBirthDeathIndex recomputes the person's cached birth/death event
	// reference indexes prior to commit.
	SetBirthDeathIndex(person *models.Person)

	// NewHandle allocates a fresh opaque handle.
	NewHandle() string
}
