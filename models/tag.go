package models

// Tag is a primary record used to label other records. Tags have no Gramps
// ID, only a handle and a name.
type Tag struct {
	Handle   string `json:"handle"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Priority int    `json:"priority"`
	Change   int64  `json:"change"`
}

func (t *Tag) GetHandle() string { return t.Handle }

func (t *Tag) SetHandle(handle string) { t.Handle = handle }

func (t *Tag) GetGrampsID() (string, bool) { return "", false }

func (t *Tag) SetGrampsID(string) {}

func (t *Tag) GetClass() string { return "Tag" }
