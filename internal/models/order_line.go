package models

import "time"

// OrderLine 订单明细行（结算时由购物车明细拷贝，创建后不可变）
type OrderLine struct {
	ID             uint      `gorm:"primarykey" json:"id"`                    // 主键
	OrderID        uint      `gorm:"index;not null" json:"order_id"`          // 订单ID
	PizzaID        uint      `gorm:"index;not null" json:"pizza"`             // 披萨ID
	Quantity       int       `gorm:"not null;default:1" json:"quantity"`      // 数量
	Price          Money     `gorm:"type:decimal(6,2);not null" json:"price"` // 下单时单价
	Size           string    `gorm:"type:varchar(20);not null" json:"size"`   // 尺寸
	Customizations string    `gorm:"type:text" json:"customizations"`         // 自定义说明
	CreatedAt      time.Time `json:"created_at"`                              // 创建时间

	Pizza *Pizza `gorm:"foreignKey:PizzaID" json:"-"` // 关联披萨
}

// TableName 指定表名
func (OrderLine) TableName() string {
	return "order_lines"
}
