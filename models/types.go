package models

// EnumType is an enumerated genealogical type code (event type, place type,
// role, relationship type, ...). String holds the canonical XML token, the
// same form Gramps XML exports use; rendering it for display goes through
// the locale package.
type EnumType struct {
	Class  string `json:"_class"`
	String string `json:"string"`
}

// XMLString returns the canonical token for the type.
func (t EnumType) XMLString() string { return t.String }

// IsEmpty reports whether no code has been set.
func (t EnumType) IsEmpty() bool { return t.String == "" }

func newType(class, xml string) EnumType { return EnumType{Class: class, String: xml} }

func NewEventType(xml string) EnumType         { return newType("EventType", xml) }
func NewEventRoleType(xml string) EnumType     { return newType("EventRoleType", xml) }
func NewPlaceType(xml string) EnumType         { return newType("PlaceType", xml) }
func NewFamilyRelType(xml string) EnumType     { return newType("FamilyRelType", xml) }
func NewChildRefType(xml string) EnumType      { return newType("ChildRefType", xml) }
func NewNameType(xml string) EnumType          { return newType("NameType", xml) }
func NewNameOriginType(xml string) EnumType    { return newType("NameOriginType", xml) }
func NewAttributeType(xml string) EnumType     { return newType("AttributeType", xml) }
func NewSrcAttributeType(xml string) EnumType  { return newType("SrcAttributeType", xml) }
func NewUrlType(xml string) EnumType           { return newType("UrlType", xml) }
func NewRepositoryType(xml string) EnumType    { return newType("RepositoryType", xml) }
func NewNoteType(xml string) EnumType          { return newType("NoteType", xml) }
func NewSourceMediaType(xml string) EnumType   { return newType("SourceMediaType", xml) }
func NewStyledTextTagType(xml string) EnumType { return newType("StyledTextTagType", xml) }

// Canonical XML tokens for the event types the engine needs to recognize.
// Custom types are free-form strings and pass through untranslated.
const (
	EventBirth            = "Birth"
	EventBaptism          = "Baptism"
	EventChristening      = "Christening"
	EventDeath            = "Death"
	EventBurial           = "Burial"
	EventCremation        = "Cremation"
	EventMarriage         = "Marriage"
	EventMarriageLicense  = "Marriage License"
	EventMarriageContract = "Marriage Contract"
	EventMarriageBanns    = "Marriage Banns"
	EventEngagement       = "Engagement"
	EventDivorce          = "Divorce"
	EventDivorceFiling    = "Divorce Filing"
	EventAnnulment        = "Annulment"
)

// Event role tokens.
const (
	RolePrimary = "Primary"
	RoleFamily  = "Family"
	RoleUnknown = "Unknown"
	RoleWitness = "Witness"
)

// Gender codes, matching the Gramps integer convention.
const (
	GenderFemale  = 0
	GenderMale    = 1
	GenderUnknown = 2
)
