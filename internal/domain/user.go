package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	UserActive    = "active"
	UserInactive  = "inactive"
	UserSuspended = "suspended"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	Role         string    `gorm:"size:16;not null;default:user" json:"role"`
	Status       string    `gorm:"size:16;not null;default:active" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (User) TableName() string { return "users" }

func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

func ValidUserStatus(s string) bool {
	return s == UserActive || s == UserInactive || s == UserSuspended
}

// UserStats 管理端仪表盘统计
type UserStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	AdminUsers     int64 `json:"adminUsers"`
	RegularUsers   int64 `json:"regularUsers"`
	ActiveUsers    int64 `json:"activeUsers"`
	InactiveUsers  int64 `json:"inactiveUsers"`
	SuspendedUsers int64 `json:"suspendedUsers"`
	RecentUsers    int64 `json:"recentUsers"`
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	List() ([]User, error)
	UpdateRole(id, role string) (*User, error)
	UpdateStatus(id, status string) (*User, error)
	Delete(id string) (bool, error)
	Stats(recentSince time.Time) (*UserStats, error)
	// Summaries 订单列表联查用的简表
	Summaries(ids []string) (map[string]UserSummary, error)
}

// UserSummary 订单视图里的用户投影（name + email）
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
