package repository

import (
	"errors"

	"github.com/pizzafy/pizzafy/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckoutRepository 购物车数据访问接口
type CheckoutRepository interface {
	Create(checkout *models.Checkout, lines []models.CheckoutLine) error
	GetByID(id uint) (*models.Checkout, error)
	GetByIDAndUser(id uint, userID uint) (*models.Checkout, error)
	GetByIDForUpdate(id uint) (*models.Checkout, error)
	ListByUser(userID uint) ([]models.Checkout, error)
	UpdateTotal(id uint, total models.Money) error
	GetLine(id uint, checkoutID uint) (*models.CheckoutLine, error)
	CreateLine(line *models.CheckoutLine) error
	UpdateLine(line *models.CheckoutLine) error
	DeleteLine(id uint) error
	DeleteLines(checkoutID uint) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormCheckoutRepository
}

// GormCheckoutRepository GORM 实现
type GormCheckoutRepository struct {
	db *gorm.DB
}

// NewCheckoutRepository 创建购物车仓库
func NewCheckoutRepository(db *gorm.DB) *GormCheckoutRepository {
	return &GormCheckoutRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCheckoutRepository) WithTx(tx *gorm.DB) *GormCheckoutRepository {
	if tx == nil {
		return r
	}
	return &GormCheckoutRepository{db: tx}
}

// Create 创建购物车与明细行
func (r *GormCheckoutRepository) Create(checkout *models.Checkout, lines []models.CheckoutLine) error {
	if err := r.db.Create(checkout).Error; err != nil {
		return err
	}
	for i := range lines {
		lines[i].CheckoutID = checkout.ID
	}
	if len(lines) > 0 {
		if err := r.db.Create(&lines).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID 根据 ID 获取购物车（含明细行）
func (r *GormCheckoutRepository) GetByID(id uint) (*models.Checkout, error) {
	var checkout models.Checkout
	if err := r.db.Preload("Lines").Preload("Lines.Pizza").First(&checkout, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &checkout, nil
}

// GetByIDAndUser 获取用户自己的购物车
func (r *GormCheckoutRepository) GetByIDAndUser(id uint, userID uint) (*models.Checkout, error) {
	var checkout models.Checkout
	if err := r.db.Preload("Lines").Preload("Lines.Pizza").
		Where("id = ? AND user_id = ?", id, userID).
		First(&checkout).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &checkout, nil
}

// GetByIDForUpdate 加行锁获取购物车（需在事务内调用）
func (r *GormCheckoutRepository) GetByIDForUpdate(id uint) (*models.Checkout, error) {
	var checkout models.Checkout
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&checkout, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.db.Preload("Pizza").Where("checkout_id = ?", id).Find(&checkout.Lines).Error; err != nil {
		return nil, err
	}
	return &checkout, nil
}

// ListByUser 获取用户的全部购物车
func (r *GormCheckoutRepository) ListByUser(userID uint) ([]models.Checkout, error) {
	var checkouts []models.Checkout
	if err := r.db.Preload("Lines").Preload("Lines.Pizza").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&checkouts).Error; err != nil {
		return nil, err
	}
	return checkouts, nil
}

// UpdateTotal 更新购物车合计金额
func (r *GormCheckoutRepository) UpdateTotal(id uint, total models.Money) error {
	return r.db.Model(&models.Checkout{}).Where("id = ?", id).Update("total_price", total).Error
}

// GetLine 获取属于指定购物车的明细行
func (r *GormCheckoutRepository) GetLine(id uint, checkoutID uint) (*models.CheckoutLine, error) {
	var line models.CheckoutLine
	if err := r.db.Where("id = ? AND checkout_id = ?", id, checkoutID).First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

// CreateLine 创建购物车明细行
func (r *GormCheckoutRepository) CreateLine(line *models.CheckoutLine) error {
	return r.db.Create(line).Error
}

// UpdateLine 更新购物车明细行
func (r *GormCheckoutRepository) UpdateLine(line *models.CheckoutLine) error {
	return r.db.Save(line).Error
}

// DeleteLine 删除购物车明细行
func (r *GormCheckoutRepository) DeleteLine(id uint) error {
	return r.db.Delete(&models.CheckoutLine{}, id).Error
}

// DeleteLines 删除购物车全部明细行
func (r *GormCheckoutRepository) DeleteLines(checkoutID uint) error {
	return r.db.Where("checkout_id = ?", checkoutID).Delete(&models.CheckoutLine{}).Error
}

// Delete 删除购物车
func (r *GormCheckoutRepository) Delete(id uint) error {
	return r.db.Delete(&models.Checkout{}, id).Error
}
