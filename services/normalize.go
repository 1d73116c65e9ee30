package services

import (
	"fmt"

	"github.com/hollis-git/lineagebackend/locale"
)

// typeBearingKeys are the keys whose bare string values are restored to
// typed {_class, string} pairs during normalization.
var typeBearingKeys = map[string]bool{
	"type":       true,
	"place_type": true,
	"media_type": true,
	"frel":       true,
	"mrel":       true,
}

// nullableRefKeys are reference keys normalized to an explicit null when
// falsy.
var nullableRefKeys = map[string]bool{
	"rect":          true,
	"mother_handle": true,
	"father_handle": true,
	"famc":          true,
}

// NormalizeObjectDict restores a flattened JSON object to the fully-typed
// nested form the store expects: class tags are injected per nested object
// (inferred from the key the object appears under), bare type-code strings
// become typed pairs rendered through the locale, falsy reference keys
// become explicit nulls, and the transient "complete" marker is dropped.
// An unrecognized nested key is a hard error.
func NormalizeObjectDict(objectDict map[string]any, className string, loc *locale.Locale) (map[string]any, error) {
	if className == "" {
		className, _ = objectDict["_class"].(string)
	}
	if className == "" {
		return nil, fmt.Errorf("no class name specified")
	}
	out := map[string]any{"_class": className}
	for k, v := range objectDict {
		switch {
		case typeBearingKeys[k] || (k == "name" && className == "StyledTextTag"):
			if s, isString := v.(string); isString {
				typeClass := typeClassFor(className)
				out[k] = map[string]any{
					"_class": typeClass,
					"string": loc.TranslateType(typeClass, s),
				}
			} else {
				out[k] = v
			}
		case k == "role":
			if s, isString := v.(string); isString {
				out[k] = map[string]any{
					"_class": "EventRoleType",
					"string": loc.TranslateType("EventRoleType", s),
				}
			} else {
				out[k] = v
			}
		case k == "origintype":
			if s, isString := v.(string); isString {
				out[k] = map[string]any{
					"_class": "NameOriginType",
					"string": loc.TranslateType("NameOriginType", s),
				}
			} else {
				out[k] = v
			}
		case nullableRefKeys[k] && isFalsy(v):
			out[k] = nil
		case k == "complete":
			// transient marker, dropped
		default:
			switch value := v.(type) {
			case map[string]any:
				nestedClass, err := nestedClassName(className, k)
				if err != nil {
					return nil, err
				}
				nested, err := NormalizeObjectDict(value, nestedClass, loc)
				if err != nil {
					return nil, err
				}
				out[k] = nested
			case []any:
				items := make([]any, 0, len(value))
				for _, item := range value {
					nestedMap, isMap := item.(map[string]any)
					if !isMap {
						items = append(items, item)
						continue
					}
					nestedClass, err := nestedClassName(className, k)
					if err != nil {
						return nil, err
					}
					nested, err := NormalizeObjectDict(nestedMap, nestedClass, loc)
					if err != nil {
						return nil, err
					}
					items = append(items, nested)
				}
				out[k] = items
			default:
				out[k] = v
			}
		}
	}
	return out, nil
}

// typeClassFor names the enum class of a bare type string, which depends
// on the class the string appears in.
func typeClassFor(className string) string {
	switch className {
	case "Family":
		return "FamilyRelType"
	case "RepoRef":
		return "SourceMediaType"
	default:
		return className + "Type"
	}
}

// nestedClassName infers the class of a nested object from the key it
// appears under. Unknown keys are a programming or data error, never
// silently passed through.
func nestedClassName(superName, keyName string) (string, error) {
	switch keyName {
	case "date":
		return "Date", nil
	case "media_list":
		return "MediaRef", nil
	case "child_ref_list":
		return "ChildRef", nil
	case "event_ref_list":
		return "EventRef", nil
	case "address_list":
		return "Address", nil
	case "urls":
		return "Url", nil
	case "person_ref_list":
		return "PersonRef", nil
	case "surname_list":
		return "Surname", nil
	case "text":
		return "StyledText", nil
	case "place_type":
		return "PlaceType", nil
	case "alt_loc":
		return "Location", nil
	case "reporef_list":
		return "RepoRef", nil
	case "placeref_list":
		return "PlaceRef", nil
	case "tags":
		return "StyledTextTag", nil
	case "alt_names":
		return "PlaceName", nil
	case "name":
		if superName == "Place" {
			return "PlaceName", nil
		}
	case "primary_name", "alternate_names":
		return "Name", nil
	case "attribute_list":
		if superName == "Citation" {
			return "SrcAttribute", nil
		}
		return "Attribute", nil
	}
	return "", fmt.Errorf("unknown classes: %s, %s", superName, keyName)
}

// isFalsy mirrors JSON truthiness for the nullable reference keys: null,
// empty string, empty list, zero and false all count as unset.
func isFalsy(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case []any:
		return len(value) == 0
	case bool:
		return !value
	case float64:
		return value == 0
	}
	return false
}
