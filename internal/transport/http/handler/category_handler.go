package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barakatfresh/internal/apperr"
	"barakatfresh/internal/service"
	"barakatfresh/internal/transport/http/response"
)

type CategoryHandler struct {
	cats *service.CategoryService
}

func NewCategoryHandler(cats *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{cats: cats}
}

// GET /api/categories?includeInactive=&forNavbar=
func (h *CategoryHandler) List(c *gin.Context) {
	if c.Query("forNavbar") == "true" {
		out, err := h.cats.ListForNavbar(c.Request.Context())
		if err != nil {
			response.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
		return
	}
	// 历史行为：公共列表默认带上停用的分类
	includeInactive := c.DefaultQuery("includeInactive", "true") != "false"
	out, err := h.cats.List(includeInactive)
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	cat, err := h.cats.Get(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var in service.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest(err.Error()))
		return
	}
	cat, err := h.cats.Create(c.Request.Context(), in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Category created successfully", gin.H{"category": cat})
}

// PUT /api/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var in service.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest(err.Error()))
		return
	}
	cat, err := h.cats.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Category updated", gin.H{"category": cat})
}

// PATCH /api/categories/:id/toggle-status
func (h *CategoryHandler) ToggleStatus(c *gin.Context) {
	cat, err := h.cats.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Category status updated", gin.H{"category": cat})
}

// DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.cats.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Category deleted", nil)
}
