package i18n

import (
	"fmt"
	"strings"

	"github.com/pizzafy/pizzafy/internal/constants"

	"github.com/gin-gonic/gin"
)

// ResolveLocale 解析请求语言：?lang= 优先，其次 Accept-Language，默认英文
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return constants.LocaleEnUS
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		if normalized, ok := normalizeLocale(lang); ok {
			return normalized
		}
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if normalized, ok := normalizeLocale(lang); ok {
			return normalized
		}
	}
	return constants.LocaleEnUS
}

// T 返回指定语言下的消息文案，找不到时回退英文，再回退 key 本身
func T(locale, key string) string {
	if catalog, ok := catalogs[locale]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogs[constants.LocaleEnUS][key]; ok {
		return msg
	}
	return key
}

// Sprintf 返回带参数的消息文案
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func normalizeLocale(lang string) (string, bool) {
	lowered := strings.ToLower(strings.TrimSpace(lang))
	switch {
	case lowered == "":
		return "", false
	case strings.HasPrefix(lowered, "zh"):
		return constants.LocaleZhCN, true
	case strings.HasPrefix(lowered, "en"):
		return constants.LocaleEnUS, true
	default:
		return "", false
	}
}

var catalogs = map[string]map[string]string{
	constants.LocaleEnUS: {
		"error.bad_request":    "Invalid request payload",
		"error.unauthorized":   "Authentication required",
		"error.forbidden":      "You do not have permission to perform this action",
		"error.internal_error": "Internal server error",
		"error.id_invalid":     "Invalid id",

		"error.user_id_invalid":      "Invalid user id",
		"error.user_id_type_invalid": "Invalid user id type",
		"error.role_value_invalid":   "Invalid role value in token",

		"error.jwt_secret_missing":      "JWT secret is not configured",
		"error.auth_header_missing":     "Authorization header is missing",
		"error.auth_header_invalid":     "Authorization header is malformed",
		"error.token_revoked":           "Token has been revoked",
		"error.rate_limit_unavailable":  "Rate limiter is unavailable",
		"error.rate_limited":            "Too many requests, retry after %d seconds",
		"error.login_too_many":          "Too many login attempts, retry after %d seconds",

		"error.email_invalid":         "Invalid email address",
		"error.email_exists":          "Email is already registered",
		"error.username_exists":       "Username is already taken",
		"error.username_required":     "Username is required",
		"error.role_invalid":          "Invalid role",
		"error.password_weak":         "Password does not meet the security policy",
		"error.invalid_credentials":   "Invalid username or password",
		"error.user_disabled":         "Account is disabled",
		"error.token_invalid":         "Invalid or expired token",
		"error.token_type_invalid":    "Wrong token type",
		"error.profile_empty":         "Nothing to update",
		"error.register_failed":       "Registration failed",
		"error.login_failed":          "Login failed",
		"error.login_too_frequent":    "Too many login attempts, try again later",
		"error.refresh_failed":        "Token refresh failed",
		"error.profile_update_failed": "Profile update failed",

		"error.pizza_not_found":        "Pizza not found",
		"error.pizza_name_required":    "Pizza name is required",
		"error.pizza_price_invalid":    "Pizza price is invalid",
		"error.pizza_stock_invalid":    "Stock must be a non-negative integer",
		"error.pizza_category_invalid": "Invalid pizza category",
		"error.pizza_size_invalid":     "Invalid pizza size",
		"error.pizza_save_failed":      "Failed to save pizza",
		"error.pizza_delete_failed":    "Failed to delete pizza",
		"error.pizza_fetch_failed":     "Failed to fetch pizzas",
		"error.stock_required":         "Stock value is required",

		"error.checkout_not_found":       "Checkout not found",
		"error.address_required":         "Shipping and billing addresses are required",
		"error.quantity_invalid":         "Quantity must be at least 1",
		"error.line_not_found":           "Checkout line not found",
		"error.line_action_invalid":      "Unsupported checkout line action",
		"error.checkout_create_failed":   "Failed to create checkout",
		"error.checkout_update_failed":   "Failed to update checkout",
		"error.checkout_fetch_failed":    "Failed to fetch checkouts",
		"error.checkout_complete_failed": "Failed to complete checkout",

		"error.order_not_found":          "Order not found",
		"error.order_status_invalid":     "Invalid order status",
		"error.order_status_terminal":    "Cancelled orders cannot change status",
		"error.status_comment_required":  "A comment is required when changing order status",
		"error.order_update_failed":      "Failed to update order",
		"error.order_fetch_failed":       "Failed to fetch orders",
		"error.review_rating_invalid":    "Rating must be an integer between 1 and 5",
		"error.review_comment_required":  "Review comment is required",
		"error.order_not_fulfilled":      "Only fulfilled orders can be reviewed",
		"error.order_no_delivery":        "Order has no assigned delivery partner",
		"error.review_create_failed":     "Failed to create review",

		"error.payment_method_invalid": "Payment method must be COD or Online",
		"error.payment_exists":         "A payment already exists for this checkout",
		"error.payment_create_failed":  "Failed to create payment",
	},
	constants.LocaleZhCN: {
		"error.bad_request":    "请求参数不合法",
		"error.unauthorized":   "请先登录",
		"error.forbidden":      "没有操作权限",
		"error.internal_error": "服务器内部错误",
		"error.id_invalid":     "ID 不合法",

		"error.user_id_invalid":      "用户 ID 不合法",
		"error.user_id_type_invalid": "用户 ID 类型不合法",
		"error.role_value_invalid":   "token 中的角色不合法",

		"error.jwt_secret_missing":      "JWT 密钥未配置",
		"error.auth_header_missing":     "缺少 Authorization 请求头",
		"error.auth_header_invalid":     "Authorization 请求头格式不正确",
		"error.token_revoked":           "token 已失效",
		"error.rate_limit_unavailable":  "限流服务不可用",
		"error.rate_limited":            "请求过于频繁，请 %d 秒后重试",
		"error.login_too_many":          "登录尝试过于频繁，请 %d 秒后重试",

		"error.email_invalid":         "邮箱格式不正确",
		"error.email_exists":          "邮箱已被注册",
		"error.username_exists":       "用户名已存在",
		"error.username_required":     "用户名不能为空",
		"error.role_invalid":          "角色不合法",
		"error.password_weak":         "密码不满足安全策略",
		"error.invalid_credentials":   "用户名或密码错误",
		"error.user_disabled":         "账号已被禁用",
		"error.token_invalid":         "token 无效或已过期",
		"error.token_type_invalid":    "token 类型不正确",
		"error.profile_empty":         "没有可更新的资料",
		"error.register_failed":       "注册失败",
		"error.login_failed":          "登录失败",
		"error.login_too_frequent":    "登录尝试过于频繁，请稍后再试",
		"error.refresh_failed":        "刷新 token 失败",
		"error.profile_update_failed": "更新资料失败",

		"error.pizza_not_found":        "披萨不存在",
		"error.pizza_name_required":    "披萨名称不能为空",
		"error.pizza_price_invalid":    "披萨价格不合法",
		"error.pizza_stock_invalid":    "库存必须为非负整数",
		"error.pizza_category_invalid": "披萨分类不合法",
		"error.pizza_size_invalid":     "披萨尺寸不合法",
		"error.pizza_save_failed":      "保存披萨失败",
		"error.pizza_delete_failed":    "删除披萨失败",
		"error.pizza_fetch_failed":     "获取披萨失败",
		"error.stock_required":         "缺少库存数量",

		"error.checkout_not_found":       "购物车不存在",
		"error.address_required":         "收货地址与账单地址不能为空",
		"error.quantity_invalid":         "数量必须大于等于 1",
		"error.line_not_found":           "购物车中没有该明细行",
		"error.line_action_invalid":      "不支持的明细操作",
		"error.checkout_create_failed":   "创建购物车失败",
		"error.checkout_update_failed":   "更新购物车失败",
		"error.checkout_fetch_failed":    "获取购物车失败",
		"error.checkout_complete_failed": "结算购物车失败",

		"error.order_not_found":          "订单不存在",
		"error.order_status_invalid":     "订单状态不合法",
		"error.order_status_terminal":    "已取消订单不能再变更状态",
		"error.status_comment_required":  "变更订单状态必须填写备注",
		"error.order_update_failed":      "更新订单失败",
		"error.order_fetch_failed":       "获取订单失败",
		"error.review_rating_invalid":    "评分必须是 1-5 的整数",
		"error.review_comment_required":  "评价内容不能为空",
		"error.order_not_fulfilled":      "只有已完成订单可以评价",
		"error.order_no_delivery":        "订单未分配配送员",
		"error.review_create_failed":     "创建评价失败",

		"error.payment_method_invalid": "支付方式必须为 COD 或 Online",
		"error.payment_exists":         "该购物车已有支付记录",
		"error.payment_create_failed":  "创建支付失败",
	},
}
