package services

import (
	"fmt"

	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/repository"
)

// AddObject commits a new primary record through the store, inside the
// given transaction scope. With failIfExists set, an existing object of
// the same kind with the same handle or Gramps ID aborts before any write.
// Family adds also link the family's handle into the referenced parents
// and children. Returns the (possibly freshly allocated) handle.
func AddObject(db repository.ReadStore, obj models.Object, txn *repository.Txn, failIfExists bool) (string, error) {
	if db.Readonly() {
		return "", ErrReadOnly
	}
	store, ok := db.(repository.WriteStore)
	if !ok {
		return "", ErrNotWritable
	}
	kind, ok := repository.KindForObject(obj)
	if !ok {
		return "", fmt.Errorf("unknown object class %q", obj.GetClass())
	}
	if failIfExists {
		if obj.GetHandle() != "" {
			exists, err := store.HasHandle(kind, obj.GetHandle())
			if err != nil {
				return "", err
			}
			if exists {
				return "", ErrHandleExists
			}
		}
		if grampsID, hasID := obj.GetGrampsID(); hasID && grampsID != "" {
			exists, err := store.HasGrampsID(kind, grampsID)
			if err != nil {
				return "", err
			}
			if exists {
				return "", ErrGrampsIDExists
			}
		}
	}
	if family, isFamily := obj.(*models.Family); isFamily {
		// linking needs the handle, so allocate before touching the members
		if family.Handle == "" {
			family.Handle = store.NewHandle()
		}
		if err := linkNewFamilyRefs(store, family, txn); err != nil {
			return "", err
		}
	}
	if err := store.AddObject(kind, obj, txn); err != nil {
		return "", err
	}
	return obj.GetHandle(), nil
}

// UpdateObject commits a modified primary record. The handle must already
// exist; a blank incoming Gramps ID keeps the stored one. Family updates
// reconcile member back-references against the prior version; person
// updates refresh the cached birth/death event indexes.
func UpdateObject(db repository.ReadStore, obj models.Object, txn *repository.Txn) (string, error) {
	if db.Readonly() {
		return "", ErrReadOnly
	}
	store, ok := db.(repository.WriteStore)
	if !ok {
		return "", ErrNotWritable
	}
	kind, ok := repository.KindForObject(obj)
	if !ok {
		return "", fmt.Errorf("unknown object class %q", obj.GetClass())
	}
	exists, err := store.HasHandle(kind, obj.GetHandle())
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrUpdateNewObject
	}
	if grampsID, hasID := obj.GetGrampsID(); hasID && grampsID == "" {
		old, err := store.ObjectFromHandle(kind, obj.GetHandle())
		if err != nil {
			return "", err
		}
		oldID, _ := old.GetGrampsID()
		obj.SetGrampsID(oldID)
	}
	switch o := obj.(type) {
	case *models.Family:
		old, err := store.FamilyFromHandle(o.Handle)
		if err != nil {
			return "", err
		}
		if err := updateFamilyRefs(store, old, o, txn); err != nil {
			return "", err
		}
	case *models.Person:
		store.SetBirthDeathIndex(o)
	}
	if err := store.CommitObject(kind, obj, txn); err != nil {
		return "", err
	}
	return obj.GetHandle(), nil
}
