package services

import (
	"fmt"

	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/repository"
)

// The family integrity maintainer keeps the bidirectional links between a
// family and its members consistent: every referenced parent carries the
// family's handle in its family list, every referenced child in its
// parent-family list. All member commits happen inside the caller's
// transaction scope; an unresolvable member handle fails the whole write,
// since partial linkage would corrupt the web of references.

// linkNewFamilyRefs adds the back-references for a newly created family.
func linkNewFamilyRefs(db repository.WriteStore, family *models.Family, txn *repository.Txn) error {
	for _, handle := range []string{family.FatherHandle, family.MotherHandle} {
		if handle == "" {
			continue
		}
		parent, err := db.PersonFromHandle(handle)
		if err != nil {
			return fmt.Errorf("family parent: %w", err)
		}
		parent.AddFamilyHandle(family.Handle)
		if err := db.CommitPerson(parent, txn); err != nil {
			return err
		}
	}
	for _, ref := range family.ChildRefList {
		child, err := db.PersonFromHandle(ref.Ref)
		if err != nil {
			return fmt.Errorf("family child: %w", err)
		}
		child.AddParentFamilyHandle(family.Handle)
		if err := db.CommitPerson(child, txn); err != nil {
			return err
		}
	}
	return nil
}

// updateFamilyRefs reconciles member back-references after a family was
// modified: father linkage first, then mother, then removed children, then
// added children.
func updateFamilyRefs(db repository.WriteStore, old, family *models.Family, txn *repository.Txn) error {
	if err := fixParentHandles(db, family, old.FatherHandle, family.FatherHandle, txn); err != nil {
		return err
	}
	if err := fixParentHandles(db, family, old.MotherHandle, family.MotherHandle, txn); err != nil {
		return err
	}

	oldChildren := make(map[string]bool, len(old.ChildRefList))
	for _, ref := range old.ChildRefList {
		oldChildren[ref.Ref] = true
	}
	newChildren := make(map[string]bool, len(family.ChildRefList))
	for _, ref := range family.ChildRefList {
		newChildren[ref.Ref] = true
	}

	for _, ref := range old.ChildRefList {
		if newChildren[ref.Ref] {
			continue
		}
		child, err := db.PersonFromHandle(ref.Ref)
		if err != nil {
			return fmt.Errorf("removed family child: %w", err)
		}
		child.RemoveParentFamilyHandle(family.Handle)
		if err := db.CommitPerson(child, txn); err != nil {
			return err
		}
	}
	for _, ref := range family.ChildRefList {
		if oldChildren[ref.Ref] {
			continue
		}
		child, err := db.PersonFromHandle(ref.Ref)
		if err != nil {
			return fmt.Errorf("added family child: %w", err)
		}
		child.AddParentFamilyHandle(family.Handle)
		if err := db.CommitPerson(child, txn); err != nil {
			return err
		}
	}
	return nil
}

// fixParentHandles moves the family back-reference when a parent handle
// changed: the old parent loses it, the new one gains it.
func fixParentHandles(db repository.WriteStore, family *models.Family, origHandle, newHandle string, txn *repository.Txn) error {
	if origHandle == newHandle {
		return nil
	}
	if origHandle != "" {
		person, err := db.PersonFromHandle(origHandle)
		if err != nil {
			return fmt.Errorf("former family parent: %w", err)
		}
		person.RemoveFamilyHandle(family.Handle)
		if err := db.CommitPerson(person, txn); err != nil {
			return err
		}
	}
	if newHandle != "" {
		person, err := db.PersonFromHandle(newHandle)
		if err != nil {
			return fmt.Errorf("new family parent: %w", err)
		}
		person.AddFamilyHandle(family.Handle)
		if err := db.CommitPerson(person, txn); err != nil {
			return err
		}
	}
	return nil
}
