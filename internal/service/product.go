package service

import (
	"strings"

	"barakatfresh/internal/apperr"
	"barakatfresh/internal/domain"
	"barakatfresh/pkg/utils"
)

// ProductInput quantity/price 用指针区分「缺字段」和「填了 0」
type ProductInput struct {
	Name           string   `json:"name"`
	Quantity       *int     `json:"quantity"`
	Price          *float64 `json:"price"`
	Offer          string   `json:"offer"`
	Description    string   `json:"description"`
	MainCategoryID string   `json:"mainCategoryId"`
	SubcategoryID  string   `json:"subcategoryId"`
	Images         []string `json:"images"`
}

type ProductService struct {
	products domain.ProductRepository
	cats     domain.CategoryRepository
}

func NewProductService(products domain.ProductRepository, cats domain.CategoryRepository) *ProductService {
	return &ProductService{products: products, cats: cats}
}

func (s *ProductService) validate(in *ProductInput) error {
	if strings.TrimSpace(in.Name) == "" || in.Quantity == nil || in.Price == nil ||
		strings.TrimSpace(in.Description) == "" || in.MainCategoryID == "" || in.SubcategoryID == "" {
		return apperr.BadRequest("All fields except offer are required")
	}
	if len(in.Images) == 0 {
		return apperr.BadRequest("At least one image is required")
	}
	if *in.Quantity < 0 || *in.Price < 0 {
		return apperr.BadRequest("Quantity and price must not be negative")
	}
	return nil
}

// checkSubcategory 子分类只在写入时校验归属；之后分类再改不回溯（冗余字段，允许悬挂）
func (s *ProductService) checkSubcategory(categoryID, sub string) error {
	cat, err := s.cats.FindByID(categoryID)
	if err != nil {
		return apperr.Internal("db error", err)
	}
	if cat == nil || !cat.Subcategories.Contains(sub) {
		return apperr.BadRequest("Invalid main category or subcategory")
	}
	return nil
}

func (s *ProductService) Create(in ProductInput) (*domain.Product, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}
	if err := s.checkSubcategory(in.MainCategoryID, in.SubcategoryID); err != nil {
		return nil, err
	}

	p := &domain.Product{
		ID:          utils.NewID(),
		Name:        strings.TrimSpace(in.Name),
		Quantity:    *in.Quantity,
		Price:       *in.Price,
		Offer:       strings.TrimSpace(in.Offer),
		Description: strings.TrimSpace(in.Description),
		CategoryID:  in.MainCategoryID,
		Subcategory: in.SubcategoryID,
		Images:      in.Images,
	}
	if err := s.products.Create(p); err != nil {
		return nil, apperr.Internal("create product failed", err)
	}
	return p, nil
}

func (s *ProductService) List() ([]domain.Product, error) {
	ps, err := s.products.List()
	if err != nil {
		return nil, apperr.Internal("list products failed", err)
	}
	return ps, nil
}

func (s *ProductService) Update(id string, in ProductInput) (*domain.Product, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}
	if err := s.checkSubcategory(in.MainCategoryID, in.SubcategoryID); err != nil {
		return nil, err
	}

	p, err := s.products.FindByID(id)
	if err != nil {
		return nil, apperr.Internal("db error", err)
	}
	if p == nil {
		return nil, apperr.NotFound("Product not found")
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Quantity = *in.Quantity
	p.Price = *in.Price
	p.Offer = strings.TrimSpace(in.Offer)
	p.Description = strings.TrimSpace(in.Description)
	p.CategoryID = in.MainCategoryID
	p.Subcategory = in.SubcategoryID
	p.Images = in.Images
	if err := s.products.Update(p); err != nil {
		return nil, apperr.Internal("update product failed", err)
	}
	return p, nil
}

func (s *ProductService) Delete(id string) error {
	ok, err := s.products.Delete(id)
	if err != nil {
		return apperr.Internal("delete product failed", err)
	}
	if !ok {
		return apperr.NotFound("Product not found")
	}
	return nil
}
