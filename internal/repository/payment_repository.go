package repository

import (
	"errors"

	"github.com/pizzafy/pizzafy/internal/models"

	"gorm.io/gorm"
)

// PaymentRepository 支付数据访问接口
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id uint) (*models.Payment, error)
	GetByCheckoutID(checkoutID uint) (*models.Payment, error)
	GetByOrderID(orderID uint) (*models.Payment, error)
	Update(payment *models.Payment) error
	AttachToOrder(paymentID, orderID uint) error
	CreateTransaction(txn *models.Transaction) error
	WithTx(tx *gorm.DB) *GormPaymentRepository
}

// GormPaymentRepository GORM 实现
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository 创建支付仓库
func NewPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// WithTx 绑定事务
func (r *GormPaymentRepository) WithTx(tx *gorm.DB) *GormPaymentRepository {
	if tx == nil {
		return r
	}
	return &GormPaymentRepository{db: tx}
}

// Create 创建支付记录
func (r *GormPaymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// GetByID 根据 ID 获取支付记录
func (r *GormPaymentRepository) GetByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.Preload("Transactions").First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// GetByCheckoutID 根据购物车获取支付记录
func (r *GormPaymentRepository) GetByCheckoutID(checkoutID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.Preload("Transactions").
		Where("checkout_id = ?", checkoutID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// GetByOrderID 根据订单获取支付记录
func (r *GormPaymentRepository) GetByOrderID(orderID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.Preload("Transactions").
		Where("order_id = ?", orderID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// Update 更新支付记录
func (r *GormPaymentRepository) Update(payment *models.Payment) error {
	return r.db.Save(payment).Error
}

// AttachToOrder 结算时将支付记录从购物车改挂到订单
func (r *GormPaymentRepository) AttachToOrder(paymentID, orderID uint) error {
	return r.db.Model(&models.Payment{}).Where("id = ?", paymentID).Updates(map[string]interface{}{
		"checkout_id": nil,
		"order_id":    orderID,
	}).Error
}

// CreateTransaction 创建交易流水
func (r *GormPaymentRepository) CreateTransaction(txn *models.Transaction) error {
	return r.db.Create(txn).Error
}
