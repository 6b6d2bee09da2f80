package models

import "strings"

// Role 用户角色（封闭枚举）
type Role string

// 角色常量
const (
	RoleAdmin           Role = "Admin"
	RoleCustomer        Role = "Customer"
	RoleDeliveryPartner Role = "DeliveryPartner"
)

// Roles 合法角色集合
var Roles = []Role{RoleAdmin, RoleCustomer, RoleDeliveryPartner}

// ParseRole 解析角色字符串；未知角色返回 false
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.TrimSpace(raw)) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleCustomer:
		return RoleCustomer, true
	case RoleDeliveryPartner:
		return RoleDeliveryPartner, true
	default:
		return "", false
	}
}

// String 返回角色字符串
func (r Role) String() string {
	return string(r)
}

// IsPrivileged 是否具备订单履约侧权限（Admin / DeliveryPartner）
func (r Role) IsPrivileged() bool {
	switch r {
	case RoleAdmin, RoleDeliveryPartner:
		return true
	case RoleCustomer:
		return false
	default:
		return false
	}
}
