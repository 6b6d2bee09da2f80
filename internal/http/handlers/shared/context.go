package shared

import (
	"github.com/pizzafy/pizzafy/internal/http/response"
	"github.com/pizzafy/pizzafy/internal/models"

	"github.com/gin-gonic/gin"
)

// GetContextUintWithKeys 从上下文读取 uint 值并统一处理错误响应。
func GetContextUintWithKeys(c *gin.Context, key, invalidKey, typeInvalidKey string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			RespondError(c, response.CodeBadRequest, invalidKey, nil)
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			RespondError(c, response.CodeBadRequest, invalidKey, nil)
			return 0, false
		}
		return uint(v), true
	default:
		RespondError(c, response.CodeInternal, typeInvalidKey, nil)
		return 0, false
	}
}

// GetContextRole 从上下文读取登录用户角色。
func GetContextRole(c *gin.Context) (models.Role, bool) {
	value, exists := c.Get("user_role")
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return "", false
	}
	raw, ok := value.(string)
	if !ok {
		RespondError(c, response.CodeInternal, "error.role_value_invalid", nil)
		return "", false
	}
	role, ok := models.ParseRole(raw)
	if !ok {
		RespondError(c, response.CodeInternal, "error.role_value_invalid", nil)
		return "", false
	}
	return role, true
}
