package profiles

import (
	"testing"

	"github.com/hollis-git/lineagebackend/models"
)

func TestExtendedAttributes(t *testing.T) {
	store := newFixtureStore(t)
	person, err := store.PersonFromHandle("john")
	if err != nil {
		t.Fatalf("PersonFromHandle failed: %v", err)
	}

	result := ExtendedAttributes(store, person, NewOptions("citation_list", "event_ref_list"))
	citations, ok := result["citations"].([]any)
	if !ok || len(citations) != 1 {
		t.Fatalf("citations = %v, want one resolved object", result["citations"])
	}
	if citation := citations[0].(*models.Citation); citation.GrampsID != "C0001" {
		t.Errorf("resolved citation = %+v", citation)
	}
	events, ok := result["events"].([]any)
	if !ok || len(events) != 2 {
		t.Fatalf("events = %v, want two resolved objects", result["events"])
	}
	if _, ok := result["children"]; ok {
		t.Error("unrequested relation was expanded")
	}
}

func TestExtendedAttributesSkipsUnsupportedRelations(t *testing.T) {
	store := newFixtureStore(t)
	event, err := store.EventFromHandle("e-birth")
	if err != nil {
		t.Fatalf("EventFromHandle failed: %v", err)
	}

	// events carry no child_ref_list; the request is skipped, not an error
	result := ExtendedAttributes(store, event, NewOptions("child_ref_list"))
	if _, ok := result["children"]; ok {
		t.Errorf("unsupported relation expanded: %v", result)
	}
}

func TestExtendedAttributesBacklinks(t *testing.T) {
	store := newFixtureStore(t)
	event, err := store.EventFromHandle("e-marr")
	if err != nil {
		t.Fatalf("EventFromHandle failed: %v", err)
	}

	result := ExtendedAttributes(store, event, NewOptions("backlinks"))
	backlinks, ok := result["backlinks"].(map[string]any)
	if !ok {
		t.Fatalf("backlinks = %v", result["backlinks"])
	}
	families, ok := backlinks["family"].([]any)
	if !ok || len(families) != 1 {
		t.Fatalf("family backlinks = %v, want one", backlinks["family"])
	}
	if family := families[0].(*models.Family); family.Handle != "fam1" {
		t.Errorf("backlinked family = %+v", family)
	}
}

func TestGetBacklinksGrouping(t *testing.T) {
	store := newFixtureStore(t)
	backlinks := GetBacklinks(store, "e-birth")
	if handles := backlinks["person"]; len(handles) != 1 || handles[0] != "john" {
		t.Errorf("person backlinks = %v, want [john]", handles)
	}
	if _, ok := backlinks["family"]; ok {
		t.Errorf("unexpected family backlinks: %v", backlinks)
	}
}
