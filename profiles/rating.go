package profiles

import (
	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/repository"
)

// GetRating derives a citation-based rating for an object: the number of
// citations it carries and the highest confidence among them. Objects
// without citations rate (0, 0).
func GetRating(db repository.ReadStore, obj models.Object) (count, confidence int) {
	if !models.HasRelation(obj.GetClass(), "citation_list") {
		return 0, 0
	}
	handles := relationHandles(obj, "citation_list")
	count = len(handles)
	for _, h := range handles {
		citation := resolveCitation(db, h)
		if citation != nil && citation.Confidence > confidence {
			confidence = citation.Confidence
		}
	}
	return count, confidence
}
