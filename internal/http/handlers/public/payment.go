package public

import (
	"github.com/pizzafy/pizzafy/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CreatePaymentRequest 创建支付请求
type CreatePaymentRequest struct {
	CheckoutID    uint   `json:"checkout_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// CreatePayment 为购物车创建支付记录（本地记账，立即成功）
func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	result, err := h.PaymentService.CreatePayment(req.CheckoutID, req.PaymentMethod)
	if err != nil {
		respondWithMappedError(c, err, paymentCreateErrorRules, response.CodeInternal, "error.payment_create_failed")
		return
	}

	response.Success(c, gin.H{
		"message":            "Payment created successfully",
		"payment_id":         result.Payment.ID,
		"transaction_id":     result.Transaction.TransactionID,
		"amount":             result.Payment.Amount,
		"payment_status":     result.Payment.Status,
		"transaction_status": result.Transaction.Status,
	})
}
