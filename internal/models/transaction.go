package models

import "time"

// Transaction 支付交易流水
type Transaction struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                 // 主键
	PaymentID       uint      `gorm:"index;not null" json:"payment_id"`                     // 支付记录ID
	TransactionID   string    `gorm:"uniqueIndex;not null" json:"transaction_id"`           // 交易流水号
	Amount          Money     `gorm:"type:decimal(10,2);not null" json:"amount"`            // 交易金额
	Status          string    `gorm:"type:varchar(50);not null" json:"transaction_status"`  // 交易状态（Success/Failed/Pending）
	GatewayResponse string    `gorm:"type:text" json:"gateway_response"`                    // 网关原始响应
	CreatedAt       time.Time `gorm:"index" json:"transaction_date"`                        // 交易时间
}

// TableName 指定表名
func (Transaction) TableName() string {
	return "transactions"
}
