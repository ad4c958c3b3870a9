package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"barakatfresh/internal/core/auth"
	"barakatfresh/internal/domain"
)

const (
	KeyUserID = "userId"
	KeyRole   = "role"
)

// AuthJWT 解 Bearer token，把 uid/role 放进 context。
// role 直接信 claim，不回查库（token 有效期内角色变更感知不到）
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token invalid or expired"})
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}

// AdminAuth 管理端闸门：回查用户表拿当前角色，claim 里的 role 不作数。
// 用户被删 401，不是 admin 403
func AdminAuth(j *auth.JWTer, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token."})
			return
		}
		u, err := users.FindByID(claims.UID)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token. User not found."})
			return
		}
		if u.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied. Admin privileges required."})
			return
		}
		c.Set(KeyUserID, u.ID)
		c.Set(KeyRole, u.Role)
		c.Next()
	}
}
