package models

import "time"

// Order 订单表（购物车完成结算后的不可变快照 + 可变状态）
type Order struct {
	ID                uint       `gorm:"primarykey" json:"id"`                                       // 主键
	UserID            uint       `gorm:"index;not null" json:"user_id"`                              // 下单用户ID
	Status            string     `gorm:"type:varchar(20);index;not null" json:"status"`              // 订单状态（Unfulfilled/Fulfilled/Cancel）
	StatusComment     string     `gorm:"type:text" json:"status_comment"`                            // 状态变更备注
	TotalPrice        Money      `gorm:"type:decimal(10,2);not null" json:"total_price"`             // 合计金额（结算时拷贝，不再重算）
	ShippingAddress   string     `gorm:"type:text;not null" json:"shipping_address"`                 // 下单时收货地址
	BillingAddress    string     `gorm:"type:text;not null" json:"billing_address"`                  // 下单时账单地址
	PaymentStatus     string     `gorm:"type:varchar(20);not null;default:'Pending'" json:"payment_status"` // 支付状态
	DeliveryPartnerID *uint      `gorm:"index" json:"delivery_partner_id,omitempty"`                 // 配送员ID
	DeliveryDate      *time.Time `json:"delivery_date"`                                              // 实际送达时间
	CreatedAt         time.Time  `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt         time.Time  `json:"updated_at"`                                                 // 更新时间

	Lines           []OrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`          // 订单明细
	DeliveryPartner *User       `gorm:"foreignKey:DeliveryPartnerID" json:"-"`              // 关联配送员
	Review          *Review     `gorm:"foreignKey:OrderID" json:"review,omitempty"`         // 订单评价
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
