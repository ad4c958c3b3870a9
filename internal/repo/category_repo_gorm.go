package repo

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	"barakatfresh/internal/domain"
)

type CategoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Create(c *domain.Category) error { return r.db.Create(c).Error }

func (r *CategoryRepo) FindByID(id string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CategoryRepo) FindByName(name string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.First(&c, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *CategoryRepo) List(includeInactive bool) ([]domain.Category, error) {
	q := r.db.Order("created_at DESC")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var cats []domain.Category
	err := q.Find(&cats).Error
	return cats, err
}

// ListForNavbar 子分类存成 JSON 列，非空判断在内存里做
func (r *CategoryRepo) ListForNavbar() ([]domain.NavbarCategory, error) {
	var cats []domain.Category
	if err := r.db.Where("is_active = ?", true).Find(&cats).Error; err != nil {
		return nil, err
	}
	out := make([]domain.NavbarCategory, 0, len(cats))
	for _, c := range cats {
		if len(c.Subcategories) == 0 {
			continue
		}
		out = append(out, domain.NavbarCategory{
			ID:            c.ID,
			Name:          c.Name,
			Image:         c.Image,
			Subcategories: c.Subcategories,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepo) Update(c *domain.Category) error {
	// Save 全字段覆盖；IsActive=false 也要写回，不能用 Updates
	return r.db.Save(c).Error
}

func (r *CategoryRepo) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Category{})
	return res.RowsAffected > 0, res.Error
}
