package admin

import (
	"errors"
	"strconv"

	"github.com/pizzafy/pizzafy/internal/http/response"
	"github.com/pizzafy/pizzafy/internal/models"
	"github.com/pizzafy/pizzafy/internal/service"

	"github.com/gin-gonic/gin"
)

// PizzaRequest 披萨创建/更新请求
type PizzaRequest struct {
	Name           string       `json:"name" binding:"required"`
	Description    string       `json:"description"`
	Price          models.Money `json:"price"`
	Stock          int          `json:"stock"`
	Category       string       `json:"category"`
	AvailableSizes string       `json:"available_sizes"`
	Toppings       string       `json:"toppings"`
	IsActive       *bool        `json:"is_active"`
}

// CreatePizza 创建披萨
func (h *Handler) CreatePizza(c *gin.Context) {
	var req PizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	pizza, err := h.PizzaService.Create(pizzaInputFromRequest(req))
	if err != nil {
		respondPizzaError(c, err, "error.pizza_save_failed")
		return
	}

	response.Success(c, pizza)
}

// UpdatePizza 更新披萨
func (h *Handler) UpdatePizza(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req PizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	pizza, err := h.PizzaService.Update(id, pizzaInputFromRequest(req))
	if err != nil {
		respondPizzaError(c, err, "error.pizza_save_failed")
		return
	}

	response.Success(c, pizza)
}

// DeletePizza 删除披萨
func (h *Handler) DeletePizza(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.PizzaService.Delete(id); err != nil {
		respondPizzaError(c, err, "error.pizza_delete_failed")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// UpdateStockRequest 库存覆盖请求（stock 必填）
type UpdateStockRequest struct {
	Stock *int `json:"stock"`
}

// UpdatePizzaStock 无条件覆盖披萨库存
func (h *Handler) UpdatePizzaStock(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if req.Stock == nil {
		respondError(c, response.CodeBadRequest, "error.stock_required", nil)
		return
	}

	if _, err := h.PizzaService.UpdateStock(id, *req.Stock); err != nil {
		respondPizzaError(c, err, "error.pizza_save_failed")
		return
	}

	response.Success(c, gin.H{"status": "Stock updated successfully"})
}

func pizzaInputFromRequest(req PizzaRequest) service.PizzaInput {
	return service.PizzaInput{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Stock:          req.Stock,
		Category:       req.Category,
		AvailableSizes: req.AvailableSizes,
		Toppings:       req.Toppings,
		IsActive:       req.IsActive,
	}
}

func respondPizzaError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, service.ErrPizzaNotFound):
		respondError(c, response.CodeNotFound, "error.pizza_not_found", nil)
	case errors.Is(err, service.ErrInvalidPizzaName):
		respondError(c, response.CodeBadRequest, "error.pizza_name_required", nil)
	case errors.Is(err, service.ErrInvalidPrice):
		respondError(c, response.CodeBadRequest, "error.pizza_price_invalid", nil)
	case errors.Is(err, service.ErrInvalidStock):
		respondError(c, response.CodeBadRequest, "error.pizza_stock_invalid", nil)
	case errors.Is(err, service.ErrInvalidCategory):
		respondError(c, response.CodeBadRequest, "error.pizza_category_invalid", nil)
	case errors.Is(err, service.ErrInvalidPizzaSize):
		respondError(c, response.CodeBadRequest, "error.pizza_size_invalid", nil)
	default:
		respondError(c, response.CodeInternal, fallbackKey, err)
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.id_invalid", nil)
		return 0, false
	}
	return uint(id), true
}
