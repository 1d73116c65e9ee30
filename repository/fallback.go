package repository

import (
	"errors"

	"github.com/hollis-git/lineagebackend/models"
)

// Fallback event types, in preference order, used when a person or family
// has no event of the primary type.
var (
	birthFallbacks    = []string{models.EventBaptism, models.EventChristening}
	deathFallbacks    = []string{models.EventBurial, models.EventCremation}
	marriageFallbacks = []string{
		models.EventMarriageLicense,
		models.EventMarriageContract,
		models.EventMarriageBanns,
		models.EventEngagement,
	}
	divorceFallbacks = []string{models.EventDivorceFiling, models.EventAnnulment}
)

// Roles under which an event counts as the entity's own. Person events are
// carried at role Primary; family events at role Family (Primary accepted
// for legacy data).
var (
	personEventRoles = []string{models.RolePrimary}
	familyEventRoles = []string{models.RoleFamily, models.RolePrimary}
)

func (s *GormStore) eventAtIndex(refs []models.EventRef, index int) (*models.Event, error) {
	if index < 0 || index >= len(refs) {
		return nil, nil
	}
	event, err := s.EventFromHandle(refs[index].Ref)
	if err != nil {
		if errors.Is(err, ErrHandleNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// fallbackEvent scans the event references in order and returns the first
// event carried at one of the given roles whose type is in wanted.
func (s *GormStore) fallbackEvent(refs []models.EventRef, wanted, roles []string) (*models.Event, error) {
	want := make(map[string]bool, len(wanted))
	for _, t := range wanted {
		want[t] = true
	}
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	for _, ref := range refs {
		if !allowed[ref.Role.XMLString()] {
			continue
		}
		event, err := s.EventFromHandle(ref.Ref)
		if err != nil {
			if errors.Is(err, ErrHandleNotFound) {
				continue
			}
			return nil, err
		}
		if want[event.Type.XMLString()] {
			return event, nil
		}
	}
	return nil, nil
}

// BirthOrFallback returns the person's birth event, or the first
// baptism/christening event when no birth is recorded.
func (s *GormStore) BirthOrFallback(person *models.Person) (*models.Event, error) {
	event, err := s.eventAtIndex(person.EventRefList, person.BirthRefIndex)
	if err != nil || event != nil {
		return event, err
	}
	return s.fallbackEvent(person.EventRefList, birthFallbacks, personEventRoles)
}

// DeathOrFallback returns the person's death event, or the first
// burial/cremation event when no death is recorded.
func (s *GormStore) DeathOrFallback(person *models.Person) (*models.Event, error) {
	event, err := s.eventAtIndex(person.EventRefList, person.DeathRefIndex)
	if err != nil || event != nil {
		return event, err
	}
	return s.fallbackEvent(person.EventRefList, deathFallbacks, personEventRoles)
}

func (s *GormStore) familyEventOrFallback(family *models.Family, primary string, fallbacks []string) (*models.Event, error) {
	event, err := s.fallbackEvent(family.EventRefList, []string{primary}, familyEventRoles)
	if err != nil || event != nil {
		return event, err
	}
	return s.fallbackEvent(family.EventRefList, fallbacks, familyEventRoles)
}

// MarriageOrFallback returns the family's marriage event, or the first
// license/contract/banns/engagement event when no marriage is recorded.
func (s *GormStore) MarriageOrFallback(family *models.Family) (*models.Event, error) {
	return s.familyEventOrFallback(family, models.EventMarriage, marriageFallbacks)
}

// DivorceOrFallback returns the family's divorce event, or the first
// divorce-filing/annulment event when no divorce is recorded.
func (s *GormStore) DivorceOrFallback(family *models.Family) (*models.Event, error) {
	return s.familyEventOrFallback(family, models.EventDivorce, divorceFallbacks)
}
