package repository

import (
	"errors"

	"github.com/pizzafy/pizzafy/internal/models"

	"gorm.io/gorm"
)

// PizzaRepository 披萨数据访问接口
type PizzaRepository interface {
	GetByID(id uint) (*models.Pizza, error)
	ListByIDs(ids []uint) ([]models.Pizza, error)
	Create(pizza *models.Pizza) error
	Update(pizza *models.Pizza) error
	UpdateStock(id uint, stock int) error
	Delete(id uint) error
	List(filter PizzaListFilter) ([]models.Pizza, int64, error)
	WithTx(tx *gorm.DB) *GormPizzaRepository
}

// GormPizzaRepository GORM 实现
type GormPizzaRepository struct {
	db *gorm.DB
}

// NewPizzaRepository 创建披萨仓库
func NewPizzaRepository(db *gorm.DB) *GormPizzaRepository {
	return &GormPizzaRepository{db: db}
}

// WithTx 绑定事务
func (r *GormPizzaRepository) WithTx(tx *gorm.DB) *GormPizzaRepository {
	if tx == nil {
		return r
	}
	return &GormPizzaRepository{db: tx}
}

// GetByID 根据 ID 获取披萨
func (r *GormPizzaRepository) GetByID(id uint) (*models.Pizza, error) {
	var pizza models.Pizza
	if err := r.db.First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pizza, nil
}

// ListByIDs 批量获取披萨
func (r *GormPizzaRepository) ListByIDs(ids []uint) ([]models.Pizza, error) {
	if len(ids) == 0 {
		return []models.Pizza{}, nil
	}
	var pizzas []models.Pizza
	if err := r.db.Where("id IN ?", ids).Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

// Create 创建披萨
func (r *GormPizzaRepository) Create(pizza *models.Pizza) error {
	return r.db.Create(pizza).Error
}

// Update 更新披萨
func (r *GormPizzaRepository) Update(pizza *models.Pizza) error {
	return r.db.Save(pizza).Error
}

// UpdateStock 更新库存
func (r *GormPizzaRepository) UpdateStock(id uint, stock int) error {
	return r.db.Model(&models.Pizza{}).Where("id = ?", id).Update("stock", stock).Error
}

// Delete 删除披萨
func (r *GormPizzaRepository) Delete(id uint) error {
	return r.db.Delete(&models.Pizza{}, id).Error
}

// List 披萨列表
func (r *GormPizzaRepository) List(filter PizzaListFilter) ([]models.Pizza, int64, error) {
	query := r.db.Model(&models.Pizza{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.InStock {
		query = query.Where("stock > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var pizzas []models.Pizza
	if err := query.Order("id ASC").Find(&pizzas).Error; err != nil {
		return nil, 0, err
	}
	return pizzas, total, nil
}
