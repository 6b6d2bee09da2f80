package models

import "time"

// Checkout 购物车（下单前的可变状态）
type Checkout struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                      // 主键
	UserID          uint      `gorm:"index;not null" json:"user_id"`                             // 所属用户ID
	TotalPrice      Money     `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"` // 合计金额（派生值）
	ShippingAddress string    `gorm:"type:text;not null" json:"shipping_address"`                // 收货地址
	BillingAddress  string    `gorm:"type:text;not null" json:"billing_address"`                 // 账单地址
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt       time.Time `json:"updated_at"`                                                // 更新时间

	Lines []CheckoutLine `gorm:"foreignKey:CheckoutID" json:"lines,omitempty"` // 购物车明细
}

// TableName 指定表名
func (Checkout) TableName() string {
	return "checkouts"
}
