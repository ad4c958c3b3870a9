package repo

import (
	"errors"

	"gorm.io/gorm"

	"barakatfresh/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Create(o *domain.Order) error { return r.db.Create(o).Error }

func (r *OrderRepo) FindByID(id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &o, err
}

func (r *OrderRepo) List() ([]domain.Order, error) {
	var os []domain.Order
	err := r.db.Order("created_at DESC").Find(&os).Error
	return os, err
}

func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	var os []domain.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&os).Error
	return os, err
}

func (r *OrderRepo) UpdateStatus(id, status string) (*domain.Order, error) {
	// 先查再改：MySQL 对 same-value UPDATE 报 0 行，不能拿 RowsAffected 判存在性
	o, err := r.FindByID(id)
	if err != nil || o == nil {
		return nil, err
	}
	if err := r.db.Model(&domain.Order{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return nil, err
	}
	o.Status = status
	return o, nil
}

func (r *OrderRepo) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Order{})
	return res.RowsAffected > 0, res.Error
}
