package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/hollis-git/lineagebackend/models"
)

// HashObject derives a stable content hash for an object from its
// serialized form. Used for change detection by sync clients.
func HashObject(obj models.Object) (string, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s %q: %w", obj.GetClass(), obj.GetHandle(), err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
