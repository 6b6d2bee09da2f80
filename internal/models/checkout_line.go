package models

import "time"

// CheckoutLine 购物车明细行
type CheckoutLine struct {
	ID             uint      `gorm:"primarykey" json:"id"`                                // 主键
	CheckoutID     uint      `gorm:"index;not null" json:"checkout_id"`                   // 购物车ID
	PizzaID        uint      `gorm:"index;not null" json:"pizza"`                         // 披萨ID
	Quantity       int       `gorm:"not null;default:1" json:"quantity"`                  // 数量
	Price          Money     `gorm:"type:decimal(6,2);not null" json:"price"`             // 单价快照
	Size           string    `gorm:"type:varchar(20);not null" json:"size"`               // 尺寸
	Customizations string    `gorm:"type:text" json:"customizations"`                     // 自定义说明
	CreatedAt      time.Time `json:"created_at"`                                          // 创建时间
	UpdatedAt      time.Time `json:"updated_at"`                                          // 更新时间

	Pizza *Pizza `gorm:"foreignKey:PizzaID" json:"-"` // 关联披萨
}

// TableName 指定表名
func (CheckoutLine) TableName() string {
	return "checkout_lines"
}

// LineTotal 该行小计（单价 × 数量）
func (l CheckoutLine) LineTotal() Money {
	return NewMoneyFromDecimal(l.Price.Mul(intToDecimal(l.Quantity)))
}
