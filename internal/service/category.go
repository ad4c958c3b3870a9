package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"barakatfresh/internal/apperr"
	"barakatfresh/internal/core/cache"
	"barakatfresh/internal/domain"
	"barakatfresh/internal/repo"
	"barakatfresh/pkg/utils"
)

const navbarCacheKey = "categories:navbar"
const navbarCacheTTL = 5 * time.Minute

type CategoryInput struct {
	Name          string               `json:"name"`
	Image         *string              `json:"image"`
	Subcategories domain.Subcategories `json:"subcategories"`
	IsActive      *bool                `json:"isActive"`
}

type CategoryService struct {
	cats  domain.CategoryRepository
	cache *cache.Cache // 可为 nil（redis 未配置）
	log   *zap.Logger
}

func NewCategoryService(cats domain.CategoryRepository, c *cache.Cache, log *zap.Logger) *CategoryService {
	return &CategoryService{cats: cats, cache: c, log: log}
}

// validate 规范化并校验输入；错误文案和线上一致
func (s *CategoryService) validate(in *CategoryInput) (string, domain.Subcategories, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", nil, apperr.BadRequest("Category name is required")
	}
	if in.Subcategories == nil {
		return "", nil, apperr.BadRequest("Subcategories are required")
	}
	if len(in.Subcategories) > domain.MaxSubcategories {
		return "", nil, apperr.BadRequest("Must have 0 to 15 subcategories")
	}
	subs, ok := domain.NormalizeSubcategories(in.Subcategories)
	if !ok {
		return "", nil, apperr.BadRequest("Subcategory name is required")
	}
	for _, sc := range subs {
		if !domain.ValidInlineImage(sc.Image) {
			return "", nil, apperr.BadRequest("Image must be a valid base64 encoded image (jpeg, jpg, png, gif, webp)")
		}
	}
	if in.Image != nil && !domain.ValidInlineImage(*in.Image) {
		return "", nil, apperr.BadRequest("Image must be a valid base64 encoded image (jpeg, jpg, png, gif, webp)")
	}
	return name, subs, nil
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	name, subs, err := s.validate(&in)
	if err != nil {
		return nil, err
	}

	existing, err := s.cats.FindByName(name)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if existing != nil {
		return nil, apperr.BadRequest("Category already exists")
	}

	c := &domain.Category{
		ID:            utils.NewID(),
		Name:          name,
		Subcategories: subs,
		IsActive:      true,
	}
	if in.Image != nil {
		c.Image = *in.Image
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := s.cats.Create(c); err != nil {
		if repo.IsDupKey(err) {
			return nil, apperr.BadRequest("Category already exists")
		}
		return nil, apperr.Internal("create category failed", err)
	}
	s.invalidateNavbar(ctx)
	return c, nil
}

func (s *CategoryService) List(includeInactive bool) ([]domain.Category, error) {
	cats, err := s.cats.List(includeInactive)
	if err != nil {
		return nil, apperr.Internal("list categories failed", err)
	}
	return cats, nil
}

// ListForNavbar 读多写少，走 redis + singleflight 回源
func (s *CategoryService) ListForNavbar(ctx context.Context) ([]domain.NavbarCategory, error) {
	if s.cache == nil {
		return s.loadNavbar()
	}
	out, err := cache.GetOrLoadJSON(s.cache, ctx, navbarCacheKey, navbarCacheTTL,
		func(ctx context.Context) ([]domain.NavbarCategory, error) {
			return s.loadNavbar()
		})
	if err != nil {
		// 缓存故障降级直查
		s.log.Warn("navbar cache failed, falling back to db", zap.Error(err))
		return s.loadNavbar()
	}
	return out, nil
}

func (s *CategoryService) loadNavbar() ([]domain.NavbarCategory, error) {
	out, err := s.cats.ListForNavbar()
	if err != nil {
		return nil, apperr.Internal("list navbar categories failed", err)
	}
	return out, nil
}

func (s *CategoryService) Get(id string) (*domain.Category, error) {
	c, err := s.cats.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if c == nil {
		return nil, apperr.NotFound("Category not found")
	}
	return c, nil
}

// Update name/subcategories 必填，image/isActive 缺省保留原值
func (s *CategoryService) Update(ctx context.Context, id string, in CategoryInput) (*domain.Category, error) {
	name, subs, err := s.validate(&in)
	if err != nil {
		return nil, err
	}

	c, err := s.cats.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if c == nil {
		return nil, apperr.NotFound("Category not found")
	}

	if other, err := s.cats.FindByName(name); err != nil {
		return nil, apperr.Internal("db error", err)
	} else if other != nil && other.ID != id {
		return nil, apperr.BadRequest("Category already exists")
	}

	c.Name = name
	c.Subcategories = subs
	if in.Image != nil {
		c.Image = *in.Image
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := s.cats.Update(c); err != nil {
		if repo.IsDupKey(err) {
			return nil, apperr.BadRequest("Category already exists")
		}
		return nil, apperr.Internal("update category failed", err)
	}
	s.invalidateNavbar(ctx)
	return c, nil
}

func (s *CategoryService) ToggleStatus(ctx context.Context, id string) (*domain.Category, error) {
	c, err := s.cats.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if c == nil {
		return nil, apperr.NotFound("Category not found")
	}
	c.IsActive = !c.IsActive
	if err := s.cats.Update(c); err != nil {
		return nil, apperr.Internal("toggle category failed", err)
	}
	s.invalidateNavbar(ctx)
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	ok, err := s.cats.Delete(id)
	if err != nil {
		return apperr.Internal("delete category failed", err)
	}
	if !ok {
		return apperr.NotFound("Category not found")
	}
	s.invalidateNavbar(ctx)
	return nil
}

func (s *CategoryService) invalidateNavbar(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, navbarCacheKey)
	}
}
