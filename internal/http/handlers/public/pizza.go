package public

import (
	"strconv"

	handlershared "github.com/pizzafy/pizzafy/internal/http/handlers/shared"
	"github.com/pizzafy/pizzafy/internal/http/response"
	"github.com/pizzafy/pizzafy/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListPizzas 披萨列表（登录可见）
func (h *Handler) ListPizzas(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	pizzas, total, err := h.PizzaService.List(repository.PizzaListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.pizza_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, pizzas, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetPizza 披萨详情
func (h *Handler) GetPizza(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pizza, err := h.PizzaService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, pizzaGetErrorRules, response.CodeInternal, "error.pizza_fetch_failed")
		return
	}

	response.Success(c, pizza)
}
