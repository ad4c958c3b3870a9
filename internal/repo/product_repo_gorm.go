package repo

import (
	"errors"

	"gorm.io/gorm"

	"barakatfresh/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(p *domain.Product) error { return r.db.Create(p).Error }

func (r *ProductRepo) FindByID(id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *ProductRepo) List() ([]domain.Product, error) {
	var ps []domain.Product
	err := r.db.Order("created_at DESC").Find(&ps).Error
	return ps, err
}

func (r *ProductRepo) Update(p *domain.Product) error {
	return r.db.Save(p).Error
}

func (r *ProductRepo) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Product{})
	return res.RowsAffected > 0, res.Error
}
