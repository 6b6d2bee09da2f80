package public

import (
	handlershared "github.com/pizzafy/pizzafy/internal/http/handlers/shared"
	"github.com/pizzafy/pizzafy/internal/service"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}

// getActor 组装当前操作者，凭证由认证中间件写入上下文
func getActor(c *gin.Context) (service.Actor, bool) {
	userID, ok := getUserID(c)
	if !ok {
		return service.Actor{}, false
	}
	role, ok := handlershared.GetContextRole(c)
	if !ok {
		return service.Actor{}, false
	}
	return service.Actor{UserID: userID, Role: role}, true
}
