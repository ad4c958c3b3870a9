package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barakatfresh/internal/apperr"
	"barakatfresh/internal/service"
	"barakatfresh/internal/transport/http/response"
)

type ProductHandler struct {
	products *service.ProductService
}

func NewProductHandler(products *service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	ps, err := h.products.List()
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var in service.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest(err.Error()))
		return
	}
	p, err := h.products.Create(in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Product created", gin.H{"product": p})
}

// PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var in service.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest(err.Error()))
		return
	}
	p, err := h.products.Update(c.Param("id"), in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Product updated", gin.H{"product": p})
}

// DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Product deleted successfully", nil)
}
