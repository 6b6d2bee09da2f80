package models

import (
	"time"

	"gorm.io/gorm"
)

// Pizza 披萨商品表
type Pizza struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                        // 主键
	Name           string         `gorm:"not null;index" json:"name"`                                  // 名称
	Description    string         `gorm:"type:text" json:"description"`                                // 描述
	Price          Money          `gorm:"type:decimal(10,2);not null;default:0" json:"price"`         // 单价
	Stock          int            `gorm:"not null;default:0" json:"stock"`                             // 库存数量
	Category       string         `gorm:"type:varchar(50);not null;default:'Veg'" json:"category"`     // 分类（Veg/Non-Veg/Specialty）
	AvailableSizes string         `gorm:"type:varchar(50);default:'Medium'" json:"available_sizes"`    // 可选尺寸
	Toppings       string         `gorm:"type:text" json:"toppings"`                                   // 可选配料说明
	IsActive       bool           `gorm:"default:true;index" json:"is_active"`                         // 是否上架
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt      time.Time      `json:"updated_at"`                                                  // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间
}

// TableName 指定表名
func (Pizza) TableName() string {
	return "pizzas"
}

// IsAvailable 是否可售（有库存且处于上架状态）
func (p Pizza) IsAvailable() bool {
	return p.Stock > 0 && p.IsActive
}
