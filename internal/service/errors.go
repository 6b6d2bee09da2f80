package service

import "errors"

// 服务层哨兵错误，处理器通过 errors.Is 映射为响应码
var (
	ErrNotFound           = errors.New("记录不存在")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrUserDisabled       = errors.New("用户已被禁用")
	ErrUsernameExists     = errors.New("用户名已存在")
	ErrEmailExists        = errors.New("邮箱已被注册")
	ErrInvalidEmail       = errors.New("邮箱格式不正确")
	ErrInvalidRole        = errors.New("角色不合法")
	ErrInvalidToken       = errors.New("无效的 token")
	ErrTokenTypeMismatch  = errors.New("token 类型不匹配")
	ErrProfileEmpty       = errors.New("没有可更新的资料")
	ErrPermissionDenied   = errors.New("没有操作权限")

	ErrPizzaNotFound      = errors.New("披萨不存在")
	ErrInvalidPizzaName   = errors.New("披萨名称不能为空")
	ErrInvalidPizzaSize   = errors.New("披萨尺寸不合法")
	ErrInvalidCategory    = errors.New("披萨分类不合法")
	ErrInvalidStock       = errors.New("库存数量不合法")
	ErrInvalidPrice       = errors.New("价格不合法")

	ErrCheckoutNotFound  = errors.New("购物车不存在")
	ErrAddressRequired   = errors.New("收货地址与账单地址不能为空")
	ErrInvalidLineAction = errors.New("不支持的明细操作")
	ErrInvalidQuantity   = errors.New("数量必须大于 0")
	ErrLineNotFound      = errors.New("购物车中没有该商品")

	ErrOrderNotFound        = errors.New("订单不存在")
	ErrInvalidOrderStatus   = errors.New("订单状态不合法")
	ErrOrderStatusTerminal  = errors.New("订单已取消，状态不可再变更")
	ErrStatusCommentMissing = errors.New("变更订单状态必须填写备注")
	ErrOrderNotFulfilled    = errors.New("订单尚未完成，不能评价")
	ErrOrderNoDelivery      = errors.New("订单未分配配送员，不能评价")
	ErrInvalidRating        = errors.New("评分必须在 1-5 之间")
	ErrReviewCommentMissing = errors.New("评价内容不能为空")

	ErrPaymentExists        = errors.New("该购物车已有支付记录")
	ErrInvalidPaymentMethod = errors.New("支付方式不合法")
)
