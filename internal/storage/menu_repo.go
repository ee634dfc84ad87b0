package storage

import (
	"context"
	"time"

	"carta-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MenuRepo mirrors the carta to the remote menu_items table. All methods are
// no-ops when the service runs without a database.
type MenuRepo struct {
	db *gorm.DB
}

func NewMenuRepo(db *gorm.DB) *MenuRepo {
	return &MenuRepo{db: db}
}

func (r *MenuRepo) Enabled() bool {
	return r != nil && r.db != nil
}

// SelectAll returns the remote carta ordered by category.
func (r *MenuRepo) SelectAll(ctx context.Context) ([]models.MenuItem, error) {
	if !r.Enabled() {
		return nil, nil
	}
	var items []models.MenuItem
	err := r.db.WithContext(ctx).Order("category asc").Find(&items).Error
	return items, err
}

// UpsertMany replaces/merges the given rows in one batched call.
func (r *MenuRepo) UpsertMany(ctx context.Context, items []models.MenuItem) error {
	if !r.Enabled() || len(items) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]models.MenuItem, len(items))
	copy(rows, items)
	for i := range rows {
		rows[i].UpdatedAt = now
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rows).Error
}

// UpdateByID issues a single-row partial update.
func (r *MenuRepo) UpdateByID(ctx context.Context, id int64, fields map[string]interface{}) error {
	if !r.Enabled() {
		return nil
	}
	patch := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		patch[k] = v
	}
	patch["updated_at"] = time.Now()
	return r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id = ?", id).
		Updates(patch).Error
}

// DeleteAll clears the remote carta (ids are always positive).
func (r *MenuRepo) DeleteAll(ctx context.Context) error {
	if !r.Enabled() {
		return nil
	}
	return r.db.WithContext(ctx).Where("id > ?", 0).Delete(&models.MenuItem{}).Error
}
