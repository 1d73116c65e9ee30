package profiles

import (
	"strings"

	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/repository"
)

var soundexCodes = map[byte]byte{
	'B': '1', 'F': '1', 'P': '1', 'V': '1',
	'C': '2', 'G': '2', 'J': '2', 'K': '2', 'Q': '2', 'S': '2', 'X': '2', 'Z': '2',
	'D': '3', 'T': '3',
	'L': '4',
	'M': '5', 'N': '5',
	'R': '6',
}

// Soundex encodes a surname with the classic four-character soundex
// algorithm. Empty or fully non-alphabetic input encodes as "Z000".
func Soundex(name string) string {
	var letters []byte
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, byte(r))
		}
	}
	if len(letters) == 0 {
		return "Z000"
	}
	code := []byte{letters[0]}
	prev := soundexCodes[letters[0]]
	for _, c := range letters[1:] {
		digit := soundexCodes[c]
		if digit == 0 {
			// vowels and H/W/Y reset the run but emit nothing
			if c != 'H' && c != 'W' {
				prev = 0
			}
			continue
		}
		if digit != prev {
			code = append(code, digit)
			if len(code) == 4 {
				break
			}
		}
		prev = digit
	}
	for len(code) < 4 {
		code = append(code, '0')
	}
	return string(code)
}

// SoundexForObject encodes the primary surname of a person, or of a
// family's father (falling back to the mother). Returns "" for kinds
// without a surname.
func SoundexForObject(db repository.ReadStore, obj models.Object) string {
	var person *models.Person
	switch o := obj.(type) {
	case *models.Person:
		person = o
	case *models.Family:
		person = resolvePerson(db, o.FatherHandle)
		if person == nil {
			person = resolvePerson(db, o.MotherHandle)
		}
	}
	if person == nil {
		return ""
	}
	return Soundex(person.PrimaryName.PrimarySurname())
}
