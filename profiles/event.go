package profiles

import (
	"strings"

	"github.com/hollis-git/lineagebackend/locale"
	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/repository"
)

// displayEventPlace renders the place an event happened at, or "" when the
// event has no resolvable place.
func displayEventPlace(db repository.ReadStore, event *models.Event) string {
	place := resolvePlace(db, event.Place)
	if place == nil {
		return ""
	}
	if place.Title != "" {
		return place.Title
	}
	return place.Name.Value
}

// participantFromEvent derives the display name of the event's primary
// participants: primary-role people first, family-role couples after,
// joined with commas.
func participantFromEvent(db repository.ReadStore, handle string, loc *locale.Locale) string {
	backlinks, err := db.FindBacklinkHandles(handle, []string{"Person", "Family"})
	if err != nil {
		return ""
	}
	var people, families []string
	for _, backlink := range backlinks {
		switch backlink.Class {
		case "Person":
			person := resolvePerson(db, backlink.Handle)
			if person == nil {
				continue
			}
			for _, ref := range person.EventRefList {
				if ref.Ref == handle && ref.Role.XMLString() == models.RolePrimary {
					people = append(people, displayName(person))
					break
				}
			}
		case "Family":
			family := resolveFamily(db, backlink.Handle)
			if family == nil {
				continue
			}
			for _, ref := range family.EventRefList {
				if ref.Ref == handle && ref.Role.XMLString() == models.RoleFamily {
					families = append(families, familyName(db, family))
					break
				}
			}
		}
	}
	return strings.Join(append(people, families...), ", ")
}

// familyName renders a family as "father and mother", dropping the missing
// side.
func familyName(db repository.ReadStore, family *models.Family) string {
	var names []string
	if father := resolvePerson(db, family.FatherHandle); father != nil {
		names = append(names, displayName(father))
	}
	if mother := resolvePerson(db, family.MotherHandle); mother != nil {
		names = append(names, displayName(mother))
	}
	return strings.Join(names, " and ")
}

// EventSummary renders "{type} - {participant}", or just the localized
// type when no participant is found.
func EventSummary(db repository.ReadStore, event *models.Event, loc *locale.Locale) string {
	eventType := loc.TranslateType("EventType", event.Type.XMLString())
	participant := participantFromEvent(db, event.Handle, loc)
	if participant == "" {
		return eventType
	}
	return eventType + " - " + participant
}

// EventParticipants resolves every person and family referencing the event
// through its event reference list, tagged with the localized role.
// Referrers are deduplicated by handle; an entity referencing the event
// under several roles contributes once, first role wins.
func EventParticipants(db repository.ReadStore, handle string, loc *locale.Locale) map[string]any {
	result := map[string]any{
		"people":   []any{},
		"families": []any{},
	}
	backlinks, err := db.FindBacklinkHandles(handle, []string{"Person", "Family"})
	if err != nil {
		return result
	}
	people := []any{}
	families := []any{}
	seen := make(map[string]bool)
	for _, backlink := range backlinks {
		if seen[backlink.Handle] {
			continue
		}
		seen[backlink.Handle] = true
		switch backlink.Class {
		case "Person":
			person := resolvePerson(db, backlink.Handle)
			if person == nil {
				continue
			}
			for _, ref := range person.EventRefList {
				if ref.Ref == handle {
					people = append(people, map[string]any{
						"role":   loc.TranslateType("EventRoleType", ref.Role.XMLString()),
						"person": PersonProfileForHandle(db, backlink.Handle, NewOptions(), loc),
					})
					break
				}
			}
		case "Family":
			family := resolveFamily(db, backlink.Handle)
			if family == nil {
				continue
			}
			for _, ref := range family.EventRefList {
				if ref.Ref == handle {
					families = append(families, map[string]any{
						"role":   loc.TranslateType("EventRoleType", ref.Role.XMLString()),
						"family": FamilyProfileForHandle(db, backlink.Handle, NewOptions(), loc),
					})
					break
				}
			}
		}
	}
	result["people"] = people
	result["families"] = families
	return result
}

// spanText formats the elapsed interval between two event dates at
// day/month/year precision, with the surrounding parentheses stripped.
func spanText(from, to models.Date, loc *locale.Locale) string {
	return strings.Trim(loc.FormatSpan(from, to, 3), "()")
}

// EventProfileForObject builds the profile of an event. When baseEvent is
// non-nil the elapsed interval between the base event and this event is
// attached under label ("age" for person event lists, "span" for family
// ones). A non-empty role tags the profile with the referrer's role.
func EventProfileForObject(db repository.ReadStore, event *models.Event, opts Options,
	baseEvent *models.Event, label string, loc *locale.Locale, role string) map[string]any {
	result := map[string]any{
		"type":    loc.TranslateType("EventType", event.Type.XMLString()),
		"date":    loc.DisplayDate(event.Date),
		"place":   displayEventPlace(db, event),
		"summary": EventSummary(db, event, loc),
	}
	if role != "" {
		result["role"] = role
	}
	if opts.Has(OptParticipants) {
		result["participants"] = EventParticipants(db, event.Handle, loc)
	}
	if opts.Has(OptRatings) {
		count, confidence := GetRating(db, event)
		result["citations"] = count
		result["confidence"] = confidence
	}
	if baseEvent != nil {
		result[label] = spanText(baseEvent.Date, event.Date, loc)
	}
	return result
}

// EventProfileForHandle builds the profile of an event by handle,
// returning an empty profile when the handle does not resolve.
func EventProfileForHandle(db repository.ReadStore, handle string, opts Options,
	baseEvent *models.Event, label string, loc *locale.Locale, role string) map[string]any {
	event := resolveEvent(db, handle)
	if event == nil {
		return map[string]any{}
	}
	return EventProfileForObject(db, event, opts, baseEvent, label, loc, role)
}
