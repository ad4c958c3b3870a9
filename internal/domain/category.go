package domain

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"
)

const MaxSubcategories = 15

// 内联图片：data:image/<fmt>;base64, 前缀，固定格式集
var inlineImageRe = regexp.MustCompile(`^data:image/(jpeg|jpg|png|gif|webp);base64,`)

func ValidInlineImage(s string) bool {
	if s == "" {
		return true
	}
	return inlineImageRe.MatchString(s)
}

// Subcategory 旧数据允许裸字符串，反序列化时统一成 {name, image}
type Subcategory struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

func (s *Subcategory) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		s.Name = name
		s.Image = ""
		return nil
	}
	type alias Subcategory
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*s = Subcategory(a)
	return nil
}

type Subcategories []Subcategory

// Contains 产品写入时的成员校验，大小写敏感精确匹配
func (ss Subcategories) Contains(name string) bool {
	for _, s := range ss {
		if s.Name == name {
			return true
		}
	}
	return false
}

type Category struct {
	ID            string        `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Name          string        `gorm:"uniqueIndex;size:191;not null" json:"name"`
	Image         string        `json:"image,omitempty"`
	Subcategories Subcategories `gorm:"serializer:json" json:"subcategories"`
	IsActive      bool          `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Category) TableName() string { return "categories" }

// NavbarCategory 菜单渲染用的精简投影
type NavbarCategory struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Image         string        `json:"image,omitempty"`
	Subcategories Subcategories `json:"subcategories"`
}

// NormalizeSubcategories 去掉名称空白；返回 false 表示存在空名
func NormalizeSubcategories(in Subcategories) (Subcategories, bool) {
	out := make(Subcategories, 0, len(in))
	for _, s := range in {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, false
		}
		out = append(out, Subcategory{Name: name, Image: s.Image})
	}
	return out, true
}

type CategoryRepository interface {
	Create(c *Category) error
	FindByID(id string) (*Category, error)
	FindByName(name string) (*Category, error)
	List(includeInactive bool) ([]Category, error)
	// ListForNavbar isActive 且 subcategories 非空，按名称排序
	ListForNavbar() ([]NavbarCategory, error)
	Update(c *Category) error
	Delete(id string) (bool, error)
}
