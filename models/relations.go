package models

// relationNames lists, per entity class, the relation lists that class
// carries. The extended-attribute expander consults this table instead of
// probing concrete types at runtime.
var relationNames = map[string][]string{
	"Person": {"event_ref_list", "citation_list", "media_list", "note_list",
		"person_ref_list", "tag_list"},
	"Family": {"child_ref_list", "event_ref_list", "citation_list",
		"media_list", "note_list", "tag_list"},
	"Event":      {"citation_list", "media_list", "note_list", "tag_list"},
	"Place":      {"citation_list", "media_list", "note_list", "tag_list"},
	"Citation":   {"media_list", "note_list", "tag_list"},
	"Source":     {"reporef_list", "media_list", "note_list", "tag_list"},
	"Media":      {"citation_list", "note_list", "tag_list"},
	"Repository": {"note_list", "tag_list"},
	"Note":       {"tag_list"},
	"Tag":        {},
}

// HasRelation reports whether the given entity class carries the named
// relation list.
func HasRelation(class, relation string) bool {
	for _, name := range relationNames[class] {
		if name == relation {
			return true
		}
	}
	return false
}

// Reference names one handle an object points at, tagged with the class of
// the target. The store maintains a reverse index of these for backlink
// lookups.
type Reference struct {
	Class  string
	Handle string
}

func appendHandles(refs []Reference, class string, handles []string) []Reference {
	for _, h := range handles {
		if h != "" {
			refs = append(refs, Reference{Class: class, Handle: h})
		}
	}
	return refs
}

func appendMediaRefs(refs []Reference, list []MediaRef) []Reference {
	for _, r := range list {
		if r.Ref != "" {
			refs = append(refs, Reference{Class: "Media", Handle: r.Ref})
		}
		refs = appendHandles(refs, "Citation", r.CitationList)
		refs = appendHandles(refs, "Note", r.NoteList)
	}
	return refs
}

func appendEventRefs(refs []Reference, list []EventRef) []Reference {
	for _, r := range list {
		if r.Ref != "" {
			refs = append(refs, Reference{Class: "Event", Handle: r.Ref})
		}
		refs = appendHandles(refs, "Note", r.NoteList)
	}
	return refs
}

// ExtractReferences returns every handle reference the object carries, for
// the store's reverse index. Duplicates are allowed; the index dedupes.
func ExtractReferences(obj Object) []Reference {
	var refs []Reference
	switch o := obj.(type) {
	case *Person:
		refs = appendEventRefs(refs, o.EventRefList)
		refs = appendHandles(refs, "Family", o.FamilyList)
		refs = appendHandles(refs, "Family", o.ParentFamilyList)
		refs = appendMediaRefs(refs, o.MediaList)
		refs = appendHandles(refs, "Citation", o.CitationList)
		refs = appendHandles(refs, "Note", o.NoteList)
		refs = appendHandles(refs, "Tag", o.TagList)
		for _, r := range o.PersonRefList {
			if r.Ref != "" {
				refs = append(refs, Reference{Class: "Person", Handle: r.Ref})
			}
		}
	case *Family:
		if o.FatherHandle != "" {
			refs = append(refs, Reference{Class: "Person", Handle: o.FatherHandle})
		}
		if o.MotherHandle != "" {
			refs = append(refs, Reference{Class: "Person", Handle: o.MotherHandle})
		}
		for _, r := range o.ChildRefList {
			if r.Ref != "" {
				refs = append(refs, Reference{Class: "Person", Handle: r.Ref})
			}
		}
		refs = appendEventRefs(refs, o.EventRefList)
		refs = appendMediaRefs(refs, o.MediaList)
		refs = appendHandles(refs, "Citation", o.CitationList)
		refs = appendHandles(refs, "Note", o.NoteList)
		refs = appendHandles(refs, "Tag", o.TagList)
	case *Event:
		if o.Place != "" {
			refs = append(refs, Reference{Class: "Place", Handle: o.Place})
		}
		refs = appendMediaRefs(refs, o.MediaList)
		refs = appendHandles(refs, "Citation", o.CitationList)
		refs = appendHandles(refs, "Note", o.NoteList)
		refs = appendHandles(refs, "Tag", o.TagList)
	case *Place:
		for _, r := range o.PlaceRefList {
			if r.Ref != "" {
				refs = append(refs, Reference{Class: "Place", Handle: r.Ref})
			}
		}
		refs = appendMediaRefs(refs, o.MediaList)
		refs = appendHandles(refs, "Citation", o.CitationList)
		refs = appendHandles(refs, "Note", o.NoteList)
		refs = appendHandles(refs, "Tag", o.TagList)
	case *Citation:
		if o.SourceHandle != "" {
			refs = append(refs, Reference{Class: "Source", Handle: o.SourceHandle})
		}
		refs = appendMediaRefs(refs, o.MediaList)
		refs = appendHandles(refs, "Note", o.NoteList)
		refs = appendHandles(refs, "Tag", o.TagList)
	case *Source:
		for _, r := range o.RepoRefList {
			if r.Ref != "" {
				refs = append(refs, Reference{Class: "Repository", Handle: r.Ref})
			}
		}
		refs = appendMediaRefs(refs, o.MediaList)
		refs = appendHandles(refs, "Note", o.NoteList)
		refs = appendHandles(refs, "Tag", o.TagList)
	case *Media:
		refs = appendHandles(refs, "Citation", o.CitationList)
		refs = appendHandles(refs, "Note", o.NoteList)
		refs = appendHandles(refs, "Tag", o.TagList)
	case *Repository:
		refs = appendHandles(refs, "Note", o.NoteList)
		refs = appendHandles(refs, "Tag", o.TagList)
	case *Note:
		refs = appendHandles(refs, "Tag", o.TagList)
	}
	return refs
}
