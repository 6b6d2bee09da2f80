package models

import "time"

// Payment 支付记录
// 创建时挂在购物车上；购物车结算为订单时改挂到订单，二者同一时刻只有一个非空。
type Payment struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                   // 主键
	CheckoutID    *uint     `gorm:"uniqueIndex" json:"checkout_id,omitempty"`               // 购物车ID（结算后清空）
	OrderID       *uint     `gorm:"uniqueIndex" json:"order_id,omitempty"`                  // 订单ID（结算后写入）
	PaymentMethod string    `gorm:"type:varchar(50);not null" json:"payment_method"`        // 支付方式（COD/Online）
	Amount        Money     `gorm:"type:decimal(10,2);not null" json:"amount"`              // 支付金额
	Status        string    `gorm:"type:varchar(50);not null;default:'Pending'" json:"status"` // 支付状态（Pending/Completed）
	PaymentDate   time.Time `gorm:"index" json:"payment_date"`                              // 支付时间
	UpdatedAt     time.Time `json:"updated_at"`                                             // 更新时间

	Transactions []Transaction `gorm:"foreignKey:PaymentID" json:"transactions,omitempty"` // 交易流水
}

// TableName 指定表名
func (Payment) TableName() string {
	return "payments"
}
