package storage

import (
	"context"
	"time"

	"carta-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepo persists customer orders. Like MenuRepo, it degrades to no-ops
// without a database.
type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Enabled() bool {
	return r != nil && r.db != nil
}

// SelectAll returns orders newest first.
func (r *OrderRepo) SelectAll(ctx context.Context) ([]models.Order, error) {
	if !r.Enabled() {
		return nil, nil
	}
	var orders []models.Order
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&orders).Error
	return orders, err
}

// Insert stores a new order, assigning id and creation time when missing.
func (r *OrderRepo) Insert(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	if !r.Enabled() {
		return nil
	}
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if !r.Enabled() {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *OrderRepo) DeleteByID(ctx context.Context, id string) error {
	if !r.Enabled() {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id).Error
}
