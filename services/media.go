package services

import (
	"context"

	"github.com/hollis-git/lineagebackend/media"
	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/repository"
)

// MissingMediaHandles filters media handles down to those whose backing
// file is missing from storage.
func MissingMediaHandles(ctx context.Context, db repository.ReadStore, handler media.Handler, handles []string) ([]string, error) {
	objects := make([]*models.Media, 0, len(handles))
	for _, handle := range handles {
		obj, err := db.MediaFromHandle(handle)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	missing, err := media.FilterMissing(ctx, handler, objects)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(missing))
	for _, obj := range missing {
		out = append(out, obj.Handle)
	}
	return out, nil
}
