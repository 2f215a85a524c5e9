package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 响应体保持与旧版接口逐字段兼容：成功直接返回业务对象，
// 失败统一为 {"error": <本地化消息>}。

// Error 错误响应体
type Error struct {
	Error string `json:"error"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Error{Error: msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, Error{Error: msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Error{Error: msg})
}

func InternalError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, Error{Error: msg})
}
