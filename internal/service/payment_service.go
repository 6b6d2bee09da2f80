package service

import (
	"time"

	"github.com/pizzafy/pizzafy/internal/constants"
	"github.com/pizzafy/pizzafy/internal/models"
	"github.com/pizzafy/pizzafy/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService 支付台账服务（无真实网关，记账即成功）
type PaymentService struct {
	paymentRepo  repository.PaymentRepository
	checkoutRepo repository.CheckoutRepository
}

// NewPaymentService 创建支付服务
func NewPaymentService(paymentRepo repository.PaymentRepository, checkoutRepo repository.CheckoutRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, checkoutRepo: checkoutRepo}
}

// PaymentResult 创建支付的返回
type PaymentResult struct {
	Payment     *models.Payment
	Transaction *models.Transaction
}

// CreatePayment 为购物车创建支付记录与一笔成功交易
func (s *PaymentService) CreatePayment(checkoutID uint, method string) (*PaymentResult, error) {
	if checkoutID == 0 {
		return nil, ErrCheckoutNotFound
	}
	if method != constants.PaymentMethodCOD && method != constants.PaymentMethodOnline {
		return nil, ErrInvalidPaymentMethod
	}

	checkout, err := s.checkoutRepo.GetByID(checkoutID)
	if err != nil {
		return nil, err
	}
	if checkout == nil {
		return nil, ErrCheckoutNotFound
	}

	exist, err := s.paymentRepo.GetByCheckoutID(checkoutID)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrPaymentExists
	}

	now := time.Now()
	payment := &models.Payment{
		CheckoutID:    &checkout.ID,
		PaymentMethod: method,
		Amount:        checkout.TotalPrice,
		Status:        constants.PaymentStatusCompleted,
		PaymentDate:   now,
	}
	txn := &models.Transaction{
		TransactionID:   uuid.NewString(),
		Amount:          payment.Amount,
		Status:          constants.TransactionStatusSuccess,
		GatewayResponse: "Payment processed successfully",
		CreatedAt:       now,
	}

	if err := models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.paymentRepo.WithTx(tx)
		if err := repo.Create(payment); err != nil {
			return err
		}
		txn.PaymentID = payment.ID
		return repo.CreateTransaction(txn)
	}); err != nil {
		return nil, err
	}

	return &PaymentResult{Payment: payment, Transaction: txn}, nil
}
