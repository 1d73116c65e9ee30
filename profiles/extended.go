package profiles

import (
	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/repository"
)

func relationHandles(obj models.Object, relation string) []string {
	var handles []string
	add := func(hs ...string) { handles = append(handles, hs...) }
	switch o := obj.(type) {
	case *models.Person:
		switch relation {
		case "event_ref_list":
			for _, r := range o.EventRefList {
				add(r.Ref)
			}
		case "citation_list":
			add(o.CitationList...)
		case "media_list":
			for _, r := range o.MediaList {
				add(r.Ref)
			}
		case "note_list":
			add(o.NoteList...)
		case "person_ref_list":
			for _, r := range o.PersonRefList {
				add(r.Ref)
			}
		case "tag_list":
			add(o.TagList...)
		}
	case *models.Family:
		switch relation {
		case "child_ref_list":
			add(o.ChildHandles()...)
		case "event_ref_list":
			for _, r := range o.EventRefList {
				add(r.Ref)
			}
		case "citation_list":
			add(o.CitationList...)
		case "media_list":
			for _, r := range o.MediaList {
				add(r.Ref)
			}
		case "note_list":
			add(o.NoteList...)
		case "tag_list":
			add(o.TagList...)
		}
	case *models.Event:
		switch relation {
		case "citation_list":
			add(o.CitationList...)
		case "media_list":
			for _, r := range o.MediaList {
				add(r.Ref)
			}
		case "note_list":
			add(o.NoteList...)
		case "tag_list":
			add(o.TagList...)
		}
	case *models.Place:
		switch relation {
		case "citation_list":
			add(o.CitationList...)
		case "media_list":
			for _, r := range o.MediaList {
				add(r.Ref)
			}
		case "note_list":
			add(o.NoteList...)
		case "tag_list":
			add(o.TagList...)
		}
	case *models.Citation:
		switch relation {
		case "media_list":
			for _, r := range o.MediaList {
				add(r.Ref)
			}
		case "note_list":
			add(o.NoteList...)
		case "tag_list":
			add(o.TagList...)
		}
	case *models.Source:
		switch relation {
		case "reporef_list":
			for _, r := range o.RepoRefList {
				add(r.Ref)
			}
		case "media_list":
			for _, r := range o.MediaList {
				add(r.Ref)
			}
		case "note_list":
			add(o.NoteList...)
		case "tag_list":
			add(o.TagList...)
		}
	case *models.Media:
		switch relation {
		case "citation_list":
			add(o.CitationList...)
		case "note_list":
			add(o.NoteList...)
		case "tag_list":
			add(o.TagList...)
		}
	case *models.Repository:
		switch relation {
		case "note_list":
			add(o.NoteList...)
		case "tag_list":
			add(o.TagList...)
		}
	case *models.Note:
		if relation == "tag_list" {
			add(o.TagList...)
		}
	}
	return handles
}

func resolveAll(db repository.ReadStore, kind repository.Kind, handles []string) []any {
	out := make([]any, 0, len(handles))
	for _, h := range handles {
		if obj := ResolveObject(db, kind, h); obj != nil {
			out = append(out, obj)
		}
	}
	return out
}

// extendedRelations maps each relation list to the output key and the kind
// of the entities it references.
var extendedRelations = []struct {
	relation string
	key      string
	kind     repository.Kind
}{
	{"child_ref_list", "children", repository.KindPerson},
	{"citation_list", "citations", repository.KindCitation},
	{"event_ref_list", "events", repository.KindEvent},
	{"media_list", "media", repository.KindMedia},
	{"note_list", "notes", repository.KindNote},
	{"person_ref_list", "people", repository.KindPerson},
	{"reporef_list", "repositories", repository.KindRepository},
	{"tag_list", "tags", repository.KindTag},
}

// ExtendedAttributes resolves the requested relation lists of an entity
// into full nested objects. This is a flat, one-level expansion; the
// discovered objects' own relations stay as handles. Relations the entity
// kind does not carry are skipped silently.
func ExtendedAttributes(db repository.ReadStore, obj models.Object, extend Options) map[string]any {
	result := map[string]any{}
	class := obj.GetClass()
	for _, rel := range extendedRelations {
		if !extend.Has(rel.relation) || !models.HasRelation(class, rel.relation) {
			continue
		}
		result[rel.key] = resolveAll(db, rel.kind, relationHandles(obj, rel.relation))
	}
	if extend.Has("backlinks") {
		backlinks := map[string]any{}
		for class, handles := range GetBacklinks(db, obj.GetHandle()) {
			// backlink keys are lowercased class names, which is exactly
			// the kind spelling
			kind := repository.Kind(class)
			if kind.Class() == "" {
				continue
			}
			backlinks[class] = resolveAll(db, kind, handles)
		}
		result["backlinks"] = backlinks
	}
	return result
}
