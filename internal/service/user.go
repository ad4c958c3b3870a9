package service

import (
	"time"

	"barakatfresh/internal/apperr"
	"barakatfresh/internal/domain"
)

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List() ([]domain.User, error) {
	us, err := s.users.List()
	if err != nil {
		return nil, apperr.Internal("list users failed", err)
	}
	return us, nil
}

func (s *UserService) Get(id string) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

func (s *UserService) UpdateRole(id, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, apperr.BadRequest("Invalid role")
	}
	u, err := s.users.UpdateRole(id, role)
	if err != nil {
		return nil, apperr.Internal("update user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

func (s *UserService) UpdateStatus(id, status string) (*domain.User, error) {
	if !domain.ValidUserStatus(status) {
		return nil, apperr.BadRequest("Invalid status")
	}
	u, err := s.users.UpdateStatus(id, status)
	if err != nil {
		return nil, apperr.Internal("update user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("User not found")
	}
	return u, nil
}

func (s *UserService) Delete(id string) error {
	ok, err := s.users.Delete(id)
	if err != nil {
		return apperr.Internal("delete user failed", err)
	}
	if !ok {
		return apperr.NotFound("User not found")
	}
	return nil
}

// Stats 最近用户窗口固定 30 天
func (s *UserService) Stats() (*domain.UserStats, error) {
	st, err := s.users.Stats(time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, apperr.Internal("load user stats failed", err)
	}
	return st, nil
}
