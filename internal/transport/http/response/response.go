package response

import (
	"github.com/gin-gonic/gin"

	"barakatfresh/internal/apperr"
)

// 错误体是扁平 JSON。大部分接口用 message 键，auth 两个接口
// 历史上用 error 键，前端两边都在读，保持原样

func OK(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Fail 写 {"message": ...}，状态码取自 apperr
func Fail(c *gin.Context, err error) {
	c.JSON(apperr.Code(err), gin.H{"message": err.Error()})
}

// FailAuth 写 {"error": ...}，register/login 专用
func FailAuth(c *gin.Context, err error) {
	c.JSON(apperr.Code(err), gin.H{"error": err.Error()})
}

func Message(c *gin.Context, status int, msg string, kv gin.H) {
	body := gin.H{"message": msg}
	for k, v := range kv {
		body[k] = v
	}
	c.JSON(status, body)
}
