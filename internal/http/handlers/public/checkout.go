package public

import (
	"strconv"
	"strings"

	"github.com/pizzafy/pizzafy/internal/http/response"
	"github.com/pizzafy/pizzafy/internal/models"
	"github.com/pizzafy/pizzafy/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateCheckoutRequest 创建购物车请求
type CreateCheckoutRequest struct {
	ShippingAddress string                `json:"shipping_address"`
	BillingAddress  string                `json:"billing_address"`
	CheckoutLines   []CheckoutLineRequest `json:"checkout_lines"`
}

// CheckoutLineRequest 创建购物车时的明细行
type CheckoutLineRequest struct {
	PizzaID        uint         `json:"pizza_id"`
	Quantity       int          `json:"quantity"`
	Price          models.Money `json:"price"`
	Size           string       `json:"size"`
	Customizations string       `json:"customizations"`
}

// CreateCheckout 创建购物车
func (h *Handler) CreateCheckout(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	var req CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	lines := make([]service.NewLineInput, 0, len(req.CheckoutLines))
	for _, line := range req.CheckoutLines {
		lines = append(lines, service.NewLineInput{
			PizzaID:        line.PizzaID,
			Quantity:       line.Quantity,
			Price:          line.Price,
			Size:           line.Size,
			Customizations: line.Customizations,
		})
	}

	checkout, err := h.CheckoutService.CreateCheckout(actor, req.ShippingAddress, req.BillingAddress, lines)
	if err != nil {
		respondWithMappedError(c, err, checkoutMutationErrorRules, response.CodeInternal, "error.checkout_create_failed")
		return
	}

	response.Success(c, gin.H{
		"message":       "Checkout created successfully",
		"checkout_data": checkout,
	})
}

// UpdateCheckoutRequest 更新购物车请求
type UpdateCheckoutRequest struct {
	ShippingAddress *string                 `json:"shipping_address"`
	BillingAddress  *string                 `json:"billing_address"`
	CheckoutLines   []CheckoutLineOpRequest `json:"checkout_lines"`
}

// CheckoutLineOpRequest 明细操作原始载荷，解码为封闭的 LineOp 变体
type CheckoutLineOpRequest struct {
	Action         string        `json:"action"`
	CheckoutLineID uint          `json:"checkout_line_id"`
	PizzaID        *uint         `json:"pizza_id"`
	Quantity       *int          `json:"quantity"`
	Price          *models.Money `json:"price"`
	Size           *string       `json:"size"`
	Customizations *string       `json:"customizations"`
}

// decodeLineOp 在边界处做一次动作解码：
// add 新增；remove 删除；update 且带 checkout_line_id 为部分更新，
// 缺省动作按 update 处理，update 不带行 ID 视作新增（兼容历史客户端）。
func decodeLineOp(raw CheckoutLineOpRequest) (service.LineOp, bool) {
	action := strings.ToLower(strings.TrimSpace(raw.Action))
	if action == "" {
		action = "update"
	}
	switch action {
	case "remove":
		return service.RemoveLineOp{LineID: raw.CheckoutLineID}, true
	case "add":
		return decodeAddOp(raw), true
	case "update":
		if raw.CheckoutLineID == 0 {
			return decodeAddOp(raw), true
		}
		return service.UpdateLineOp{
			LineID:         raw.CheckoutLineID,
			PizzaID:        raw.PizzaID,
			Quantity:       raw.Quantity,
			Price:          raw.Price,
			Size:           raw.Size,
			Customizations: raw.Customizations,
		}, true
	default:
		return nil, false
	}
}

func decodeAddOp(raw CheckoutLineOpRequest) service.AddLineOp {
	op := service.AddLineOp{}
	if raw.PizzaID != nil {
		op.PizzaID = *raw.PizzaID
	}
	if raw.Quantity != nil {
		op.Quantity = *raw.Quantity
	}
	if raw.Price != nil {
		op.Price = *raw.Price
	}
	if raw.Size != nil {
		op.Size = *raw.Size
	}
	if raw.Customizations != nil {
		op.Customizations = *raw.Customizations
	}
	return op
}

// UpdateCheckout 更新购物车（地址 + 明细操作）
func (h *Handler) UpdateCheckout(c *gin.Context) {
	checkoutID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	ops := make([]service.LineOp, 0, len(req.CheckoutLines))
	for _, raw := range req.CheckoutLines {
		op, ok := decodeLineOp(raw)
		if !ok {
			respondError(c, response.CodeBadRequest, "error.line_action_invalid", nil)
			return
		}
		ops = append(ops, op)
	}

	checkout, err := h.CheckoutService.UpdateCheckout(checkoutID, service.AddressPatch{
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
	}, ops)
	if err != nil {
		respondWithMappedError(c, err, checkoutMutationErrorRules, response.CodeInternal, "error.checkout_update_failed")
		return
	}

	response.Success(c, gin.H{
		"message":       "Checkout updated successfully",
		"checkout_data": checkout,
	})
}

// ListCheckouts 当前用户的购物车列表
func (h *Handler) ListCheckouts(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	checkouts, err := h.CheckoutService.ListCheckouts(actor)
	if err != nil {
		respondError(c, response.CodeInternal, "error.checkout_fetch_failed", err)
		return
	}

	response.Success(c, gin.H{"checkouts": checkouts})
}

// GetCheckout 当前用户的购物车详情
func (h *Handler) GetCheckout(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}
	checkoutID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	checkout, err := h.CheckoutService.GetCheckout(actor, checkoutID)
	if err != nil {
		respondWithMappedError(c, err, checkoutMutationErrorRules, response.CodeInternal, "error.checkout_fetch_failed")
		return
	}

	response.Success(c, gin.H{"checkout": checkout})
}

// CompleteCheckoutRequest 结算请求
type CompleteCheckoutRequest struct {
	CheckoutID uint `json:"checkout_id" binding:"required"`
}

// CompleteCheckout 将购物车结算为订单
func (h *Handler) CompleteCheckout(c *gin.Context) {
	var req CompleteCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.CheckoutService.CompleteCheckout(req.CheckoutID)
	if err != nil {
		respondWithMappedError(c, err, checkoutMutationErrorRules, response.CodeInternal, "error.checkout_complete_failed")
		return
	}

	response.Success(c, gin.H{
		"message":    "Checkout completed successfully",
		"order_data": order,
	})
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
