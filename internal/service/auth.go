package service

import (
	"regexp"
	"strings"

	"barakatfresh/internal/apperr"
	"barakatfresh/internal/core/auth"
	"barakatfresh/internal/domain"
	"barakatfresh/internal/repo"
	"barakatfresh/pkg/utils"
)

var emailRe = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView 注册/登录返回的公开视图，绝不带密码哈希
type UserView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

func (s *AuthService) Register(in RegisterInput) (string, *UserView, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}

	switch {
	case name == "":
		return "", nil, apperr.BadRequest("Name is required")
	case email == "" || !emailRe.MatchString(email):
		return "", nil, apperr.BadRequest("Enter valid email")
	case len(in.Password) < 6:
		return "", nil, apperr.BadRequest("Password must be at least 6 characters")
	case !domain.ValidRole(role):
		return "", nil, apperr.BadRequest("Invalid role")
	}

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Internal("db error", err)
	}
	if existing != nil {
		return "", nil, apperr.BadRequest("Email already registered")
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
		Role:         role,
		Status:       domain.UserActive,
	}
	if err := s.users.Create(u); err != nil {
		if repo.IsDupKey(err) {
			// 并发兜底：预检查之后撞上唯一索引，同样按重复邮箱报
			return "", nil, apperr.BadRequest("Email already registered")
		}
		return "", nil, apperr.Internal("create user failed", err)
	}

	tok, err := s.jwter.Issue(u.ID, u.Role)
	if err != nil {
		return "", nil, apperr.Internal("issue token failed", err)
	}
	return tok, &UserView{ID: u.ID, Name: u.Name, Role: u.Role}, nil
}

// Login 查不到和密码错返回同一个 401，避免账号枚举
func (s *AuthService) Login(in LoginInput) (string, *UserView, error) {
	u, err := s.users.FindByEmail(in.Email)
	if err != nil {
		return "", nil, apperr.Internal("db error", err)
	}
	if u == nil || !utils.CheckPassword(in.Password, u.PasswordHash) {
		return "", nil, apperr.Unauthorized("Invalid credentials")
	}

	tok, err := s.jwter.Issue(u.ID, u.Role)
	if err != nil {
		return "", nil, apperr.Internal("issue token failed", err)
	}
	return tok, &UserView{ID: u.ID, Name: u.Name, Role: u.Role}, nil
}
