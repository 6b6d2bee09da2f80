package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表（顾客、管理员与配送员共用，按 Role 区分）
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                             // 主键
	Username     string         `gorm:"index;not null" json:"username"`                   // 用户名
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`                // 邮箱
	PasswordHash string         `gorm:"not null" json:"-"`                                // 密码哈希（不返回给前端）
	FirstName    string         `gorm:"default:''" json:"first_name"`                     // 名
	LastName     string         `gorm:"default:''" json:"last_name"`                      // 姓
	Role         Role           `gorm:"type:varchar(20);not null;index" json:"role"`      // 角色
	IsActive     bool           `gorm:"default:true" json:"is_active"`                    // 账号是否启用
	IsAvailable  bool           `gorm:"default:true;index" json:"is_available"`          // 配送员是否可接单
	TokenVersion uint64         `gorm:"not null;default:0" json:"-"`                      // Token 版本（用于全量失效）
	LastLoginAt  *time.Time     `json:"last_login_at"`                                    // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                          // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                       // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                   // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
