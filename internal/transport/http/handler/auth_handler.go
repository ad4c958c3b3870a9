package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barakatfresh/internal/apperr"
	"barakatfresh/internal/service"
	"barakatfresh/internal/transport/http/response"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in service.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.FailAuth(c, apperr.BadRequest(err.Error()))
		return
	}
	tok, view, err := h.auth.Register(in)
	if err != nil {
		response.FailAuth(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": tok, "user": view})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in service.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.FailAuth(c, apperr.BadRequest(err.Error()))
		return
	}
	tok, view, err := h.auth.Login(in)
	if err != nil {
		response.FailAuth(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tok, "user": view})
}
