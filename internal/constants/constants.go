package constants

// 订单状态常量
const (
	OrderStatusUnfulfilled = "Unfulfilled"
	OrderStatusFulfilled   = "Fulfilled"
	OrderStatusCancel      = "Cancel"
)

// OrderStatuses 合法订单状态集合
var OrderStatuses = []string{OrderStatusUnfulfilled, OrderStatusFulfilled, OrderStatusCancel}

// 订单支付状态常量
const (
	OrderPaymentStatusPending = "Pending"
	OrderPaymentStatusPaid    = "Paid"
	OrderPaymentStatusFailed  = "Failed"
)

// 支付方式常量
const (
	PaymentMethodCOD    = "COD"
	PaymentMethodOnline = "Online"
)

// 支付状态常量
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
)

// 交易状态常量
const (
	TransactionStatusSuccess = "Success"
	TransactionStatusFailed  = "Failed"
	TransactionStatusPending = "Pending"
)

// 披萨尺寸常量
const (
	PizzaSizeSmall  = "Small"
	PizzaSizeMedium = "Medium"
	PizzaSizeLarge  = "Large"
)

// PizzaSizes 合法尺寸集合
var PizzaSizes = []string{PizzaSizeSmall, PizzaSizeMedium, PizzaSizeLarge}

// 披萨分类常量
const (
	PizzaCategoryVeg       = "Veg"
	PizzaCategoryNonVeg    = "Non-Veg"
	PizzaCategorySpecialty = "Specialty"
)

// PizzaCategories 合法分类集合
var PizzaCategories = []string{PizzaCategoryVeg, PizzaCategoryNonVeg, PizzaCategorySpecialty}

// 异步任务类型常量
const (
	TaskOrderStatusNotify = "order:status_notify"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 支持的站点语言常量
const (
	LocaleEnUS = "en-US"
	LocaleZhCN = "zh-CN"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleEnUS, LocaleZhCN}
