package repository

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hollis-git/lineagebackend/database"
	"github.com/hollis-git/lineagebackend/models"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	store := NewGormStore(db, false)
	if err := store.AutoMigrate(); err != nil {
		t.Fatalf("AutoMigrate failed: %v", err)
	}
	return store
}

func addPerson(t *testing.T, store *GormStore, handle, grampsID, given, surname string) *models.Person {
	t.Helper()
	person := &models.Person{
		PrimaryObject: models.PrimaryObject{Handle: handle, GrampsID: grampsID},
		Gender:        models.GenderMale,
		PrimaryName: models.Name{
			FirstName:   given,
			SurnameList: []models.Surname{{Surname: surname, Primary: true}},
		},
		BirthRefIndex: -1,
		DeathRefIndex: -1,
	}
	txn := &Txn{}
	if err := store.AddObject(KindPerson, person, txn); err != nil {
		t.Fatalf("AddObject(person %s) failed: %v", handle, err)
	}
	return person
}

func TestAddAndGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	addPerson(t, store, "p1", "I0001", "Ada", "Lovelace")

	got, err := store.PersonFromHandle("p1")
	if err != nil {
		t.Fatalf("PersonFromHandle failed: %v", err)
	}
	if got.GrampsID != "I0001" || got.PrimaryName.FirstName != "Ada" {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if _, err := store.PersonFromHandle("nope"); !errors.Is(err, ErrHandleNotFound) {
		t.Errorf("missing handle error = %v, want ErrHandleNotFound", err)
	}
}

func TestHandleAndGrampsIDAllocation(t *testing.T) {
	store := newTestStore(t)
	addPerson(t, store, "p1", "I0007", "Ada", "Lovelace")

	person := &models.Person{BirthRefIndex: -1, DeathRefIndex: -1}
	txn := &Txn{}
	if err := store.AddObject(KindPerson, person, txn); err != nil {
		t.Fatalf("AddObject failed: %v", err)
	}
	if person.Handle == "" {
		t.Error("blank handle was not allocated")
	}
	if person.GrampsID != "I0008" {
		t.Errorf("allocated gramps id = %q, want I0008", person.GrampsID)
	}
}

func TestHasHandleAndGrampsID(t *testing.T) {
	store := newTestStore(t)
	addPerson(t, store, "p1", "I0001", "Ada", "Lovelace")

	ok, err := store.HasHandle(KindPerson, "p1")
	if err != nil || !ok {
		t.Errorf("HasHandle(p1) = %v, %v", ok, err)
	}
	ok, err = store.HasHandle(KindFamily, "p1")
	if err != nil || ok {
		t.Errorf("HasHandle of wrong kind = %v, %v, want false", ok, err)
	}
	ok, err = store.HasGrampsID(KindPerson, "I0001")
	if err != nil || !ok {
		t.Errorf("HasGrampsID(I0001) = %v, %v", ok, err)
	}
	ok, err = store.HasGrampsID(KindPerson, "I9999")
	if err != nil || ok {
		t.Errorf("HasGrampsID(I9999) = %v, %v, want false", ok, err)
	}
}

func TestFindBacklinkHandles(t *testing.T) {
	store := newTestStore(t)
	txn := &Txn{}
	event := &models.Event{
		PrimaryObject: models.PrimaryObject{Handle: "e1", GrampsID: "E0001"},
		Type:          models.NewEventType(models.EventBirth),
	}
	if err := store.AddObject(KindEvent, event, txn); err != nil {
		t.Fatalf("AddObject(event) failed: %v", err)
	}
	for _, handle := range []string{"p10", "p2"} {
		person := &models.Person{
			PrimaryObject: models.PrimaryObject{Handle: handle, GrampsID: "I-" + handle},
			EventRefList: []models.EventRef{
				{Ref: "e1", Role: models.NewEventRoleType(models.RolePrimary)},
			},
			BirthRefIndex: -1, DeathRefIndex: -1,
		}
		if err := store.AddObject(KindPerson, person, txn); err != nil {
			t.Fatalf("AddObject(person %s) failed: %v", handle, err)
		}
	}

	backlinks, err := store.FindBacklinkHandles("e1", []string{"Person"})
	if err != nil {
		t.Fatalf("FindBacklinkHandles failed: %v", err)
	}
	if len(backlinks) != 2 {
		t.Fatalf("got %d backlinks, want 2: %v", len(backlinks), backlinks)
	}
	// natural ordering puts p2 before p10
	if backlinks[0].Handle != "p2" || backlinks[1].Handle != "p10" {
		t.Errorf("backlink order = %v, want [p2 p10]", backlinks)
	}

	backlinks, err = store.FindBacklinkHandles("e1", []string{"Family"})
	if err != nil {
		t.Fatalf("FindBacklinkHandles(Family) failed: %v", err)
	}
	if len(backlinks) != 0 {
		t.Errorf("class filter ignored: %v", backlinks)
	}
}

func TestCommitObjectUpdatesAndLogs(t *testing.T) {
	store := newTestStore(t)
	person := addPerson(t, store, "p1", "I0001", "Ada", "Lovelace")

	txn := &Txn{Description: "Rename person"}
	person.PrimaryName.FirstName = "Augusta Ada"
	if err := store.CommitObject(KindPerson, person, txn); err != nil {
		t.Fatalf("CommitObject failed: %v", err)
	}

	got, err := store.PersonFromHandle("p1")
	if err != nil {
		t.Fatalf("PersonFromHandle failed: %v", err)
	}
	if got.PrimaryName.FirstName != "Augusta Ada" {
		t.Errorf("update not persisted: %+v", got.PrimaryName)
	}

	records := txn.Records()
	if len(records) != 1 {
		t.Fatalf("got %d txn records, want 1", len(records))
	}
	rec := records[0]
	if rec.Action != TxnUpdate || rec.Handle != "p1" || rec.Old == nil || rec.New == nil {
		t.Errorf("unexpected txn record: %+v", rec)
	}
}

func TestDeleteObject(t *testing.T) {
	store := newTestStore(t)
	addPerson(t, store, "p1", "I0001", "Ada", "Lovelace")

	txn := &Txn{}
	if err := store.DeleteObject(KindPerson, "p1", txn); err != nil {
		t.Fatalf("DeleteObject failed: %v", err)
	}
	if _, err := store.PersonFromHandle("p1"); !errors.Is(err, ErrHandleNotFound) {
		t.Errorf("person still present after delete: %v", err)
	}
	records := txn.Records()
	if len(records) != 1 || records[0].Action != TxnDelete || records[0].New != nil {
		t.Errorf("unexpected delete record: %+v", records)
	}
}

func TestWithTransactionRollsBack(t *testing.T) {
	store := newTestStore(t)

	wantErr := errors.New("boom")
	_, err := store.WithTransaction("Failing write", func(ws WriteStore, txn *Txn) error {
		person := &models.Person{
			PrimaryObject: models.PrimaryObject{Handle: "p1", GrampsID: "I0001"},
			BirthRefIndex: -1, DeathRefIndex: -1,
		}
		if err := ws.AddObject(KindPerson, person, txn); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("WithTransaction error = %v, want boom", err)
	}
	ok, err := store.HasHandle(KindPerson, "p1")
	if err != nil {
		t.Fatalf("HasHandle failed: %v", err)
	}
	if ok {
		t.Error("rolled-back write is still visible")
	}
}

func TestBirthAndDeathFallbacks(t *testing.T) {
	store := newTestStore(t)
	txn := &Txn{}
	baptism := &models.Event{
		PrimaryObject: models.PrimaryObject{Handle: "e-bap", GrampsID: "E0001"},
		Type:          models.NewEventType(models.EventBaptism),
		Date:          models.Date{Year: 1815, Month: 12, Day: 10},
	}
	if err := store.AddObject(KindEvent, baptism, txn); err != nil {
		t.Fatalf("AddObject(baptism) failed: %v", err)
	}
	person := &models.Person{
		PrimaryObject: models.PrimaryObject{Handle: "p1", GrampsID: "I0001"},
		EventRefList: []models.EventRef{
			{Ref: "e-bap", Role: models.NewEventRoleType(models.RolePrimary)},
		},
		BirthRefIndex: -1, DeathRefIndex: -1,
	}
	if err := store.AddObject(KindPerson, person, txn); err != nil {
		t.Fatalf("AddObject(person) failed: %v", err)
	}

	event, err := store.BirthOrFallback(person)
	if err != nil {
		t.Fatalf("BirthOrFallback failed: %v", err)
	}
	if event == nil || event.Handle != "e-bap" {
		t.Errorf("BirthOrFallback = %v, want baptism event", event)
	}

	event, err = store.DeathOrFallback(person)
	if err != nil {
		t.Fatalf("DeathOrFallback failed: %v", err)
	}
	if event != nil {
		t.Errorf("DeathOrFallback = %v, want nil", event)
	}
}

func TestMarriageAndDivorceFallbacks(t *testing.T) {
	store := newTestStore(t)
	txn := &Txn{}
	marriage := &models.Event{
		PrimaryObject: models.PrimaryObject{Handle: "e-marr", GrampsID: "E0001"},
		Type:          models.NewEventType(models.EventMarriage),
		Date:          models.Date{Year: 1925, Month: 6, Day: 15},
	}
	license := &models.Event{
		PrimaryObject: models.PrimaryObject{Handle: "e-lic", GrampsID: "E0002"},
		Type:          models.NewEventType(models.EventMarriageLicense),
	}
	for _, e := range []*models.Event{marriage, license} {
		if err := store.AddObject(KindEvent, e, txn); err != nil {
			t.Fatalf("AddObject(event) failed: %v", err)
		}
	}

	// family events are carried at role Family
	family := &models.Family{
		PrimaryObject: models.PrimaryObject{Handle: "f1", GrampsID: "F0001"},
		EventRefList: []models.EventRef{
			{Ref: "e-marr", Role: models.NewEventRoleType(models.RoleFamily)},
		},
	}
	if err := store.AddObject(KindFamily, family, txn); err != nil {
		t.Fatalf("AddObject(family) failed: %v", err)
	}

	event, err := store.MarriageOrFallback(family)
	if err != nil {
		t.Fatalf("MarriageOrFallback failed: %v", err)
	}
	if event == nil || event.Handle != "e-marr" {
		t.Errorf("MarriageOrFallback = %v, want the marriage event", event)
	}

	event, err = store.DivorceOrFallback(family)
	if err != nil {
		t.Fatalf("DivorceOrFallback failed: %v", err)
	}
	if event != nil {
		t.Errorf("DivorceOrFallback = %v, want nil", event)
	}

	// no marriage event: fall back to the license, still at role Family
	licensed := &models.Family{
		PrimaryObject: models.PrimaryObject{Handle: "f2", GrampsID: "F0002"},
		EventRefList: []models.EventRef{
			{Ref: "e-lic", Role: models.NewEventRoleType(models.RoleFamily)},
		},
	}
	event, err = store.MarriageOrFallback(licensed)
	if err != nil {
		t.Fatalf("MarriageOrFallback(fallback) failed: %v", err)
	}
	if event == nil || event.Handle != "e-lic" {
		t.Errorf("MarriageOrFallback fallback = %v, want the license event", event)
	}

	// a witness-role reference is not the family's own event
	witnessed := &models.Family{
		PrimaryObject: models.PrimaryObject{Handle: "f3", GrampsID: "F0003"},
		EventRefList: []models.EventRef{
			{Ref: "e-marr", Role: models.NewEventRoleType(models.RoleWitness)},
		},
	}
	event, err = store.MarriageOrFallback(witnessed)
	if err != nil {
		t.Fatalf("MarriageOrFallback(witness) failed: %v", err)
	}
	if event != nil {
		t.Errorf("MarriageOrFallback at witness role = %v, want nil", event)
	}
}

func TestSetBirthDeathIndex(t *testing.T) {
	store := newTestStore(t)
	txn := &Txn{}
	birth := &models.Event{
		PrimaryObject: models.PrimaryObject{Handle: "e-b", GrampsID: "E0001"},
		Type:          models.NewEventType(models.EventBirth),
	}
	death := &models.Event{
		PrimaryObject: models.PrimaryObject{Handle: "e-d", GrampsID: "E0002"},
		Type:          models.NewEventType(models.EventDeath),
	}
	for _, e := range []*models.Event{birth, death} {
		if err := store.AddObject(KindEvent, e, txn); err != nil {
			t.Fatalf("AddObject(event) failed: %v", err)
		}
	}
	person := &models.Person{
		PrimaryObject: models.PrimaryObject{Handle: "p1", GrampsID: "I0001"},
		EventRefList: []models.EventRef{
			{Ref: "e-d", Role: models.NewEventRoleType(models.RolePrimary)},
			{Ref: "e-b", Role: models.NewEventRoleType(models.RoleWitness)},
			{Ref: "e-b", Role: models.NewEventRoleType(models.RolePrimary)},
		},
	}
	store.SetBirthDeathIndex(person)
	if person.BirthRefIndex != 2 {
		t.Errorf("BirthRefIndex = %d, want 2 (witness role skipped)", person.BirthRefIndex)
	}
	if person.DeathRefIndex != 0 {
		t.Errorf("DeathRefIndex = %d, want 0", person.DeathRefIndex)
	}
}
