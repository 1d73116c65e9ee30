package models

// Object is implemented by every primary record the store can hold.
// Handles are opaque, stable identifiers; Gramps IDs are the user-facing,
// reassignable identifiers. Tags are the only primary object without a
// Gramps ID, which is why GetGrampsID reports presence explicitly.
type Object interface {
	GetHandle() string
	SetHandle(handle string)
	GetGrampsID() (string, bool)
	SetGrampsID(id string)
	GetClass() string
}

// PrimaryObject holds the identity fields shared by every primary record.
// It is embedded by the concrete entity structs (except Tag).
type PrimaryObject struct {
	Handle   string `json:"handle"`
	GrampsID string `json:"gramps_id"`
	Change   int64  `json:"change"`
	Private  bool   `json:"private"`
}

func (o *PrimaryObject) GetHandle() string { return o.Handle }

func (o *PrimaryObject) SetHandle(handle string) { o.Handle = handle }

func (o *PrimaryObject) GetGrampsID() (string, bool) { return o.GrampsID, true }

func (o *PrimaryObject) SetGrampsID(id string) { o.GrampsID = id }
