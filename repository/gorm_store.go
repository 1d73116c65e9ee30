package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hollis-git/lineagebackend/database"
	"github.com/hollis-git/lineagebackend/models"
)

// ObjectRow is the persisted form of a primary record: the entity is kept
// as a JSON blob keyed by (kind, handle), with the Gramps ID lifted into a
// column for uniqueness checks and search.
type ObjectRow struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Kind       string `gorm:"uniqueIndex:idx_kind_handle;not null"`
	Handle     string `gorm:"uniqueIndex:idx_kind_handle;not null"`
	GrampsID   string `gorm:"index"`
	Data       []byte `gorm:"not null"`
	ChangeTime int64  `gorm:"not null"` // Unix timestamp of the last write
}

// TableName explicitly sets the table name for GORM.
func (ObjectRow) TableName() string {
	return "objects"
}

// ReferenceRow is one entry of the reverse reference index: the object
// (kind, handle) references ref_handle of class ref_class.
type ReferenceRow struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Kind      string `gorm:"index:idx_ref_owner;not null"`
	Handle    string `gorm:"index:idx_ref_owner;not null"`
	Class     string `gorm:"not null"` // class of the referencing object
	RefClass  string `gorm:"not null"`
	RefHandle string `gorm:"index;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReferenceRow) TableName() string {
	return "object_references"
}

// GormStore implements ReadStore and WriteStore on a GORM database.
type GormStore struct {
	db       *gorm.DB
	readonly bool
}

// NewGormStore creates a store over an initialized GORM database.
func NewGormStore(db *gorm.DB, readonly bool) *GormStore {
	return &GormStore{db: db, readonly: readonly}
}

// AutoMigrate creates or migrates the store's tables.
func (s *GormStore) AutoMigrate() error {
	err := s.db.AutoMigrate(&ObjectRow{}, &ReferenceRow{}, &models.User{})
	if err != nil {
		return fmt.Errorf("GORM AutoMigrate failed: %w", err)
	}
	return nil
}

func (s *GormStore) Readonly() bool { return s.readonly }

// WithTransaction runs fn inside a single database transaction, giving it
// a transaction-scoped store and the transaction's record log. Every write
// performed through the scoped store either commits as a whole or rolls
// back as a whole.
func (s *GormStore) WithTransaction(description string, fn func(store WriteStore, txn *Txn) error) (*Txn, error) {
	txn := &Txn{Description: description}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx, readonly: s.readonly}, txn)
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *GormStore) objectRow(kind Kind, handle string) (*ObjectRow, error) {
	var row ObjectRow
	err := s.db.Where("kind = ? AND handle = ?", string(kind), handle).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s %q: %w", kind, handle, ErrHandleNotFound)
		}
		return nil, fmt.Errorf("failed to load %s %q: %w", kind, handle, err)
	}
	return &row, nil
}

// ObjectFromHandle loads and decodes the entity of the given kind.
func (s *GormStore) ObjectFromHandle(kind Kind, handle string) (models.Object, error) {
	newFn, ok := newObjectForKind[kind]
	if !ok {
		return nil, fmt.Errorf("unknown object kind %q", kind)
	}
	row, err := s.objectRow(kind, handle)
	if err != nil {
		return nil, err
	}
	obj := newFn()
	if err := json.Unmarshal(row.Data, obj); err != nil {
		return nil, fmt.Errorf("failed to decode %s %q: %w", kind, handle, err)
	}
	return obj, nil
}

func (s *GormStore) PersonFromHandle(handle string) (*models.Person, error) {
	obj, err := s.ObjectFromHandle(KindPerson, handle)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Person), nil
}

func (s *GormStore) FamilyFromHandle(handle string) (*models.Family, error) {
	obj, err := s.ObjectFromHandle(KindFamily, handle)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Family), nil
}

func (s *GormStore) EventFromHandle(handle string) (*models.Event, error) {
	obj, err := s.ObjectFromHandle(KindEvent, handle)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Event), nil
}

func (s *GormStore) PlaceFromHandle(handle string) (*models.Place, error) {
	obj, err := s.ObjectFromHandle(KindPlace, handle)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Place), nil
}

func (s *GormStore) CitationFromHandle(handle string) (*models.Citation, error) {
	obj, err := s.ObjectFromHandle(KindCitation, handle)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Citation), nil
}

func (s *GormStore) SourceFromHandle(handle string) (*models.Source, error) {
	obj, err := s.ObjectFromHandle(KindSource, handle)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Source), nil
}

func (s *GormStore) MediaFromHandle(handle string) (*models.Media, error) {
	obj, err := s.ObjectFromHandle(KindMedia, handle)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Media), nil
}

func (s *GormStore) RepositoryFromHandle(handle string) (*models.Repository, error) {
	obj, err := s.ObjectFromHandle(KindRepository, handle)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Repository), nil
}

func (s *GormStore) NoteFromHandle(handle string) (*models.Note, error) {
	obj, err := s.ObjectFromHandle(KindNote, handle)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Note), nil
}

func (s *GormStore) TagFromHandle(handle string) (*models.Tag, error) {
	obj, err := s.ObjectFromHandle(KindTag, handle)
	if err != nil {
		return nil, err
	}
	return obj.(*models.Tag), nil
}

func (s *GormStore) HasHandle(kind Kind, handle string) (bool, error) {
	var count int64
	err := s.db.Model(&ObjectRow{}).
		Where("kind = ? AND handle = ?", string(kind), handle).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check %s handle %q: %w", kind, handle, err)
	}
	return count > 0, nil
}

func (s *GormStore) HasGrampsID(kind Kind, grampsID string) (bool, error) {
	sqlStr, args, err := database.BuildGrampsIDQuery(string(kind), grampsID)
	if err != nil {
		return false, err
	}
	var handle string
	result := s.db.Raw(sqlStr, args...).Scan(&handle)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check %s gramps id %q: %w", kind, grampsID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// FindBacklinkHandles returns every object referencing the given handle.
// Results are deduplicated and naturally ordered so iteration is
// deterministic for a given dataset.
func (s *GormStore) FindBacklinkHandles(handle string, includeClasses []string) ([]Backlink, error) {
	sqlStr, args, err := database.BuildBacklinkQuery(handle, includeClasses)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.Raw(sqlStr, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query backlinks of %q: %w", handle, err)
	}
	defer rows.Close()

	seen := make(map[string]bool)
	var keys []string
	for rows.Next() {
		var class, refHandle string
		if err := rows.Scan(&class, &refHandle); err != nil {
			return nil, fmt.Errorf("failed to scan backlink row for %q: %w", handle, err)
		}
		key := class + "\x00" + refHandle
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read backlink rows for %q: %w", handle, err)
	}

	database.NaturalSort(keys)
	backlinks := make([]Backlink, 0, len(keys))
	for _, key := range keys {
		parts := strings.SplitN(key, "\x00", 2)
		backlinks = append(backlinks, Backlink{Class: parts[0], Handle: parts[1]})
	}
	return backlinks, nil
}

// AllMedia returns every media object, ordered by Gramps ID.
func (s *GormStore) AllMedia() ([]*models.Media, error) {
	var rows []ObjectRow
	err := s.db.Where("kind = ?", string(KindMedia)).Order("gramps_id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list media objects: %w", err)
	}
	objects := make([]*models.Media, 0, len(rows))
	for _, row := range rows {
		obj := &models.Media{}
		if err := json.Unmarshal(row.Data, obj); err != nil {
			return nil, fmt.Errorf("failed to decode media %q: %w", row.Handle, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// NewHandle allocates a fresh opaque handle.
func (s *GormStore) NewHandle() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (s *GormStore) nextGrampsID(kind Kind) (string, error) {
	prefix, ok := grampsIDPrefix[kind]
	if !ok {
		return "", nil
	}
	sqlStr, args, err := database.BuildGrampsIDListQuery(string(kind))
	if err != nil {
		return "", err
	}
	var ids []string
	if err := s.db.Raw(sqlStr, args...).Scan(&ids).Error; err != nil {
		return "", fmt.Errorf("failed to list %s gramps ids: %w", kind, err)
	}
	max := 0
	for _, id := range ids {
		var n int
		if _, err := fmt.Sscanf(id, prefix+"%d", &n); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%04d", prefix, max+1), nil
}

func (s *GormStore) writeReferences(kind Kind, obj models.Object) error {
	err := s.db.Where("kind = ? AND handle = ?", string(kind), obj.GetHandle()).
		Delete(&ReferenceRow{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear references of %s %q: %w", kind, obj.GetHandle(), err)
	}
	seen := make(map[string]bool)
	var rows []ReferenceRow
	for _, ref := range models.ExtractReferences(obj) {
		key := ref.Class + "\x00" + ref.Handle
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, ReferenceRow{
			Kind:      string(kind),
			Handle:    obj.GetHandle(),
			Class:     kind.Class(),
			RefClass:  ref.Class,
			RefHandle: ref.Handle,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	if err := s.db.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to index references of %s %q: %w", kind, obj.GetHandle(), err)
	}
	return nil
}

// AddObject writes a new entity, allocating a handle and the next free
// Gramps ID when the caller left them blank, and appends an add record to
// the transaction log.
func (s *GormStore) AddObject(kind Kind, obj models.Object, txn *Txn) error {
	if obj.GetHandle() == "" {
		obj.SetHandle(s.NewHandle())
	}
	if id, ok := obj.GetGrampsID(); ok && id == "" {
		next, err := s.nextGrampsID(kind)
		if err != nil {
			return err
		}
		obj.SetGrampsID(next)
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to encode %s %q: %w", kind, obj.GetHandle(), err)
	}
	grampsID, _ := obj.GetGrampsID()
	row := ObjectRow{
		Kind:       string(kind),
		Handle:     obj.GetHandle(),
		GrampsID:   grampsID,
		Data:       data,
		ChangeTime: time.Now().Unix(),
	}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to add %s %q: %w", kind, obj.GetHandle(), err)
	}
	if err := s.writeReferences(kind, obj); err != nil {
		return err
	}
	if txn != nil {
		txn.append(TxnRecord{Kind: kind, Action: TxnAdd, Handle: obj.GetHandle(), New: data})
	}
	return nil
}

// CommitObject writes a modified entity. Committing a handle the store has
// never seen behaves as an add, matching the underlying store convention.
func (s *GormStore) CommitObject(kind Kind, obj models.Object, txn *Txn) error {
	old, err := s.objectRow(kind, obj.GetHandle())
	if err != nil {
		if errors.Is(err, ErrHandleNotFound) {
			return s.AddObject(kind, obj, txn)
		}
		return err
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to encode %s %q: %w", kind, obj.GetHandle(), err)
	}
	grampsID, _ := obj.GetGrampsID()
	updates := map[string]interface{}{
		"gramps_id":   grampsID,
		"data":        data,
		"change_time": time.Now().Unix(),
	}
	err = s.db.Model(&ObjectRow{}).Where("id = ?", old.ID).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to commit %s %q: %w", kind, obj.GetHandle(), err)
	}
	if err := s.writeReferences(kind, obj); err != nil {
		return err
	}
	if txn != nil {
		txn.append(TxnRecord{Kind: kind, Action: TxnUpdate, Handle: obj.GetHandle(), Old: old.Data, New: data})
	}
	return nil
}

// CommitPerson is the person-typed commit used by the family integrity
// maintenance path.
func (s *GormStore) CommitPerson(person *models.Person, txn *Txn) error {
	return s.CommitObject(KindPerson, person, txn)
}

// DeleteObject removes an entity and its reference index entries.
func (s *GormStore) DeleteObject(kind Kind, handle string, txn *Txn) error {
	old, err := s.objectRow(kind, handle)
	if err != nil {
		return err
	}
	if err := s.db.Delete(&ObjectRow{}, old.ID).Error; err != nil {
		return fmt.Errorf("failed to delete %s %q: %w", kind, handle, err)
	}
	err = s.db.Where("kind = ? AND handle = ?", string(kind), handle).
		Delete(&ReferenceRow{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear references of %s %q: %w", kind, handle, err)
	}
	if txn != nil {
		txn.append(TxnRecord{Kind: kind, Action: TxnDelete, Handle: handle, Old: old.Data})
	}
	return nil
}

// SetBirthDeathIndex recomputes the cached indexes of the primary birth
// and death events in the person's event reference list.
func (s *GormStore) SetBirthDeathIndex(person *models.Person) {
	person.BirthRefIndex = -1
	person.DeathRefIndex = -1
	for i, ref := range person.EventRefList {
		if ref.Role.XMLString() != models.RolePrimary {
			continue
		}
		event, err := s.EventFromHandle(ref.Ref)
		if err != nil {
			continue
		}
		switch event.Type.XMLString() {
		case models.EventBirth:
			if person.BirthRefIndex < 0 {
				person.BirthRefIndex = i
			}
		case models.EventDeath:
			if person.DeathRefIndex < 0 {
				person.DeathRefIndex = i
			}
		}
	}
}
