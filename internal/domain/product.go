package domain

import "time"

type Product struct {
	ID          string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Name        string    `gorm:"size:191;not null" json:"name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Price       float64   `gorm:"not null" json:"price"`
	Offer       string    `gorm:"size:191" json:"offer"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CategoryID  string    `gorm:"index;type:varchar(32);not null" json:"mainCategoryId"`
	Subcategory string    `gorm:"size:191;not null" json:"subcategory"` // 冗余存名字，不做外键
	Images      ImageList `gorm:"serializer:json" json:"images"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type ImageList []string

func (Product) TableName() string { return "products" }

type ProductRepository interface {
	Create(p *Product) error
	FindByID(id string) (*Product, error)
	// List 全量，按创建时间倒序，无分页
	List() ([]Product, error)
	Update(p *Product) error
	Delete(id string) (bool, error)
}
