package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hollis-git/lineagebackend/database"
	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/repository"
)

func newTestStore(t *testing.T, readonly bool) *repository.GormStore {
	t.Helper()
	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	store := repository.NewGormStore(db, readonly)
	if err := store.AutoMigrate(); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}
	return store
}

func addTestPerson(t *testing.T, store *repository.GormStore, handle string) {
	t.Helper()
	person := &models.Person{
		PrimaryObject: models.PrimaryObject{Handle: handle, GrampsID: "I-" + handle},
		BirthRefIndex: -1,
		DeathRefIndex: -1,
	}
	txn := &repository.Txn{}
	if _, err := AddObject(store, person, txn, false); err != nil {
		t.Fatalf("AddObject(person %s) failed: %v", handle, err)
	}
}

func familyHandles(t *testing.T, store *repository.GormStore, handle string) ([]string, []string) {
	t.Helper()
	person, err := store.PersonFromHandle(handle)
	if err != nil {
		t.Fatalf("PersonFromHandle(%s) failed: %v", handle, err)
	}
	return person.FamilyList, person.ParentFamilyList
}

func TestAddFamilyLinksMembers(t *testing.T) {
	store := newTestStore(t, false)
	for _, h := range []string{"father", "mother", "child"} {
		addTestPerson(t, store, h)
	}

	family := &models.Family{
		FatherHandle: "father",
		MotherHandle: "mother",
		ChildRefList: []models.ChildRef{{Ref: "child"}},
	}
	txn := &repository.Txn{}
	handle, err := AddObject(store, family, txn, false)
	if err != nil {
		t.Fatalf("AddObject(family) failed: %v", err)
	}
	if handle == "" {
		t.Fatal("no handle allocated for the family")
	}

	for _, parent := range []string{"father", "mother"} {
		families, _ := familyHandles(t, store, parent)
		if len(families) != 1 || families[0] != handle {
			t.Errorf("%s family list = %v, want [%s]", parent, families, handle)
		}
	}
	_, parentFamilies := familyHandles(t, store, "child")
	if len(parentFamilies) != 1 || parentFamilies[0] != handle {
		t.Errorf("child parent family list = %v, want [%s]", parentFamilies, handle)
	}
}

func TestAddFamilyUnresolvableMemberFailsWrite(t *testing.T) {
	store := newTestStore(t, false)
	addTestPerson(t, store, "father")

	_, err := store.WithTransaction("Add family", func(ws repository.WriteStore, txn *repository.Txn) error {
		family := &models.Family{
			FatherHandle: "father",
			MotherHandle: "ghost",
		}
		_, err := AddObject(ws, family, txn, false)
		return err
	})
	if !errors.Is(err, repository.ErrHandleNotFound) {
		t.Fatalf("error = %v, want ErrHandleNotFound", err)
	}

	// the father's linkage must have been rolled back with the family
	families, _ := familyHandles(t, store, "father")
	if len(families) != 0 {
		t.Errorf("father family list = %v, want empty after rollback", families)
	}
}

func TestUpdateFamilyReconcilesMembers(t *testing.T) {
	store := newTestStore(t, false)
	for _, h := range []string{"father", "mother1", "mother2", "c1", "c2", "c3"} {
		addTestPerson(t, store, h)
	}
	family := &models.Family{
		PrimaryObject: models.PrimaryObject{Handle: "fam1", GrampsID: "F0001"},
		FatherHandle:  "father",
		MotherHandle:  "mother1",
		ChildRefList:  []models.ChildRef{{Ref: "c1"}, {Ref: "c2"}},
	}
	txn := &repository.Txn{}
	if _, err := AddObject(store, family, txn, false); err != nil {
		t.Fatalf("AddObject(family) failed: %v", err)
	}

	updated := &models.Family{
		PrimaryObject: models.PrimaryObject{Handle: "fam1", GrampsID: "F0001"},
		FatherHandle:  "father",
		MotherHandle:  "mother2",
		ChildRefList:  []models.ChildRef{{Ref: "c2"}, {Ref: "c3"}},
	}
	if _, err := UpdateObject(store, updated, txn); err != nil {
		t.Fatalf("UpdateObject(family) failed: %v", err)
	}

	cases := []struct {
		handle   string
		families int
		parents  int
	}{
		{"father", 1, 0},
		{"mother1", 0, 0},
		{"mother2", 1, 0},
		{"c1", 0, 0},
		{"c2", 0, 1},
		{"c3", 0, 1},
	}
	for _, tc := range cases {
		families, parents := familyHandles(t, store, tc.handle)
		if len(families) != tc.families || len(parents) != tc.parents {
			t.Errorf("%s lists = %v / %v, want %d family and %d parent entries",
				tc.handle, families, parents, tc.families, tc.parents)
		}
	}
}

func TestAddFailIfExists(t *testing.T) {
	store := newTestStore(t, false)
	addTestPerson(t, store, "p1")

	txn := &repository.Txn{}
	dup := &models.Person{
		PrimaryObject: models.PrimaryObject{Handle: "p1", GrampsID: "I0099"},
		BirthRefIndex: -1, DeathRefIndex: -1,
	}
	if _, err := AddObject(store, dup, txn, true); !errors.Is(err, ErrHandleExists) {
		t.Errorf("duplicate handle error = %v, want ErrHandleExists", err)
	}

	dup = &models.Person{
		PrimaryObject: models.PrimaryObject{GrampsID: "I-p1"},
		BirthRefIndex: -1, DeathRefIndex: -1,
	}
	if _, err := AddObject(store, dup, txn, true); !errors.Is(err, ErrGrampsIDExists) {
		t.Errorf("duplicate gramps id error = %v, want ErrGrampsIDExists", err)
	}
	if len(txn.Records()) != 0 {
		t.Errorf("failed adds must not log records, got %v", txn.Records())
	}
}

func TestReadonlyStoreRejectsWrites(t *testing.T) {
	store := newTestStore(t, true)
	txn := &repository.Txn{}
	person := &models.Person{BirthRefIndex: -1, DeathRefIndex: -1}

	if _, err := AddObject(store, person, txn, false); !errors.Is(err, ErrReadOnly) {
		t.Errorf("add on readonly store = %v, want ErrReadOnly", err)
	}
	if _, err := UpdateObject(store, person, txn); !errors.Is(err, ErrReadOnly) {
		t.Errorf("update on readonly store = %v, want ErrReadOnly", err)
	}
}

func TestUpdateUnknownHandle(t *testing.T) {
	store := newTestStore(t, false)
	txn := &repository.Txn{}
	person := &models.Person{
		PrimaryObject: models.PrimaryObject{Handle: "nope", GrampsID: "I0001"},
		BirthRefIndex: -1, DeathRefIndex: -1,
	}
	if _, err := UpdateObject(store, person, txn); !errors.Is(err, ErrUpdateNewObject) {
		t.Errorf("update of unknown handle = %v, want ErrUpdateNewObject", err)
	}
}

func TestUpdateKeepsStoredGrampsID(t *testing.T) {
	store := newTestStore(t, false)
	addTestPerson(t, store, "p1")

	txn := &repository.Txn{}
	updated := &models.Person{
		PrimaryObject: models.PrimaryObject{Handle: "p1"},
		PrimaryName:   models.Name{FirstName: "Ada"},
		BirthRefIndex: -1, DeathRefIndex: -1,
	}
	if _, err := UpdateObject(store, updated, txn); err != nil {
		t.Fatalf("UpdateObject failed: %v", err)
	}
	got, err := store.PersonFromHandle("p1")
	if err != nil {
		t.Fatalf("PersonFromHandle failed: %v", err)
	}
	if got.GrampsID != "I-p1" {
		t.Errorf("gramps id = %q, want the stored I-p1", got.GrampsID)
	}
	if got.PrimaryName.FirstName != "Ada" {
		t.Errorf("update not persisted: %+v", got.PrimaryName)
	}
}
