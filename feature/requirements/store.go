package requirements

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"requirement-monitor/core/reconcile"
	"requirement-monitor/feature/requirements/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requirement file does not exist.
var ErrNotFound = errors.New("requirement file not found")

const (
	defaultLimit = 50
	maxLimit     = 500
)

// Store is the GORM-backed store of requirement file records.
// It implements reconcile.RecordStore.
type Store struct {
	db *gorm.DB
}

var _ reconcile.RecordStore = (*Store)(nil)

// NewStore creates a Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the requirement_files table.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.RequirementFile{})
}

// FindByInode returns the oldest record created for the inode, or nil.
func (s *Store) FindByInode(ctx context.Context, inode uint64) (*reconcile.FileRecord, error) {
	return s.findOne(ctx, "inode = ?", inode)
}

// FindByPath returns the oldest record stored under the root-relative path, or nil.
func (s *Store) FindByPath(ctx context.Context, path string) (*reconcile.FileRecord, error) {
	return s.findOne(ctx, "path = ?", path)
}

func (s *Store) findOne(ctx context.Context, query string, arg any) (*reconcile.FileRecord, error) {
	var row models.RequirementFile
	err := s.db.WithContext(ctx).Where(query, arg).Order("id").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toRecord(row), nil
}

// Relocate rewrites the record's path and filename.
func (s *Store) Relocate(ctx context.Context, record reconcile.FileRecord, path, filename string) error {
	res := s.db.WithContext(ctx).
		Model(&models.RequirementFile{ID: record.ID}).
		Updates(map[string]any{"path": path, "filename": filename})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("relocate record %d: %w", record.ID, ErrNotFound)
	}
	return nil
}

// Delete permanently removes the record. Deleting a record that is already
// gone is not an error.
func (s *Store) Delete(ctx context.Context, record reconcile.FileRecord) error {
	return s.db.WithContext(ctx).Delete(&models.RequirementFile{}, record.ID).Error
}

// Get returns a requirement file by ID.
func (s *Store) Get(ctx context.Context, id uint) (*models.RequirementFile, error) {
	var row models.RequirementFile
	err := s.db.WithContext(ctx).First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns a page of requirement files ordered by ID.
func (s *Store) List(ctx context.Context, q models.ListQuery) (*models.ListResult, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.RequirementFile{})
	if q.PathPrefix != "" {
		tx = tx.Where("path LIKE ? ESCAPE '!'", escapeLike(q.PathPrefix)+"%")
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count requirement files: %w", err)
	}

	items := []models.RequirementFile{}
	if err := tx.Order("id").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list requirement files: %w", err)
	}

	return &models.ListResult{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

func toRecord(row models.RequirementFile) *reconcile.FileRecord {
	return &reconcile.FileRecord{
		ID:       row.ID,
		Inode:    row.Inode,
		Path:     row.Path,
		Filename: row.Filename,
	}
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
