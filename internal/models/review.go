package models

import "time"

// Review 订单评价（仅已履约且分配过配送员的订单可评价）
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`           // 主键
	OrderID   uint      `gorm:"index;not null" json:"order_id"` // 订单ID
	UserID    uint      `gorm:"index;not null" json:"user_id"`  // 评价人ID
	Rating    int       `gorm:"not null" json:"rating"`         // 评分（1-5）
	Comment   string    `gorm:"type:text;not null" json:"comment"` // 评价内容
	CreatedAt time.Time `gorm:"index" json:"created_at"`        // 创建时间
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
