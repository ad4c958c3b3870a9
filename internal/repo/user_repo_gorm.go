package repo

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"barakatfresh/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) List() ([]domain.User, error) {
	var users []domain.User
	err := r.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepo) UpdateRole(id, role string) (*domain.User, error) {
	return r.updateField(id, "role", role)
}

func (r *UserRepo) UpdateStatus(id, status string) (*domain.User, error) {
	return r.updateField(id, "status", status)
}

func (r *UserRepo) updateField(id, col, val string) (*domain.User, error) {
	// 先查再改：same-value UPDATE 在 MySQL 下 RowsAffected 为 0
	u, err := r.FindByID(id)
	if err != nil || u == nil {
		return nil, err
	}
	if err := r.db.Model(&domain.User{}).Where("id = ?", id).Update(col, val).Error; err != nil {
		return nil, err
	}
	switch col {
	case "role":
		u.Role = val
	case "status":
		u.Status = val
	}
	return u, nil
}

func (r *UserRepo) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.User{})
	return res.RowsAffected > 0, res.Error
}

func (r *UserRepo) Stats(recentSince time.Time) (*domain.UserStats, error) {
	s := &domain.UserStats{}
	type count struct {
		dst  *int64
		cond []any
	}
	counts := []count{
		{&s.TotalUsers, nil},
		{&s.AdminUsers, []any{"role = ?", domain.RoleAdmin}},
		{&s.RegularUsers, []any{"role = ?", domain.RoleUser}},
		{&s.ActiveUsers, []any{"status = ?", domain.UserActive}},
		{&s.InactiveUsers, []any{"status = ?", domain.UserInactive}},
		{&s.SuspendedUsers, []any{"status = ?", domain.UserSuspended}},
		{&s.RecentUsers, []any{"created_at >= ?", recentSince}},
	}
	for _, c := range counts {
		q := r.db.Model(&domain.User{})
		if c.cond != nil {
			q = q.Where(c.cond[0], c.cond[1:]...)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (r *UserRepo) Summaries(ids []string) (map[string]domain.UserSummary, error) {
	out := make(map[string]domain.UserSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var users []domain.User
	if err := r.db.Select("id", "name", "email").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = domain.UserSummary{Name: u.Name, Email: u.Email}
	}
	return out, nil
}
