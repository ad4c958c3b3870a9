package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barakatfresh/internal/apperr"
	"barakatfresh/internal/service"
	"barakatfresh/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GET /api/users/admin/all
func (h *UserHandler) List(c *gin.Context) {
	us, err := h.users.List()
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, us)
}

// GET /api/users/admin/stats
func (h *UserHandler) Stats(c *gin.Context) {
	st, err := h.users.Stats()
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// GET /api/users/admin/:id
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.users.Get(c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// PUT /api/users/admin/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	var in struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest(err.Error()))
		return
	}
	u, err := h.users.UpdateRole(c.Param("id"), in.Role)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "User role updated", gin.H{"user": u})
}

// PUT /api/users/admin/:id/status
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, apperr.BadRequest(err.Error()))
		return
	}
	u, err := h.users.UpdateStatus(c.Param("id"), in.Status)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "User status updated", gin.H{"user": u})
}

// DELETE /api/users/admin/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "User deleted successfully", nil)
}
