package public

import (
	"errors"

	"github.com/pizzafy/pizzafy/internal/http/response"
	"github.com/pizzafy/pizzafy/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var registerErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrEmailExists, code: response.CodeBadRequest, key: "error.email_exists"},
	{target: service.ErrUsernameExists, code: response.CodeBadRequest, key: "error.username_exists"},
	{target: service.ErrInvalidRole, code: response.CodeBadRequest, key: "error.role_invalid"},
	{target: service.ErrPasswordTooWeak, code: response.CodeBadRequest, key: "error.password_weak"},
	{target: service.ErrInvalidCredentials, code: response.CodeBadRequest, key: "error.username_required"},
}

var loginErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.invalid_credentials"},
	{target: service.ErrUserDisabled, code: response.CodeForbidden, key: "error.user_disabled"},
}

var refreshErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidToken, code: response.CodeUnauthorized, key: "error.token_invalid"},
	{target: service.ErrTokenTypeMismatch, code: response.CodeUnauthorized, key: "error.token_type_invalid"},
	{target: service.ErrUserDisabled, code: response.CodeForbidden, key: "error.user_disabled"},
}

var profileUpdateErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.user_id_invalid"},
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrEmailExists, code: response.CodeBadRequest, key: "error.email_exists"},
	{target: service.ErrUsernameExists, code: response.CodeBadRequest, key: "error.username_exists"},
	{target: service.ErrPasswordTooWeak, code: response.CodeBadRequest, key: "error.password_weak"},
	{target: service.ErrProfileEmpty, code: response.CodeBadRequest, key: "error.profile_empty"},
}

var pizzaGetErrorRules = []mappedHandlerError{
	{target: service.ErrPizzaNotFound, code: response.CodeNotFound, key: "error.pizza_not_found"},
}

var checkoutMutationErrorRules = []mappedHandlerError{
	{target: service.ErrCheckoutNotFound, code: response.CodeNotFound, key: "error.checkout_not_found"},
	{target: service.ErrAddressRequired, code: response.CodeBadRequest, key: "error.address_required"},
	{target: service.ErrPizzaNotFound, code: response.CodeNotFound, key: "error.pizza_not_found"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "error.quantity_invalid"},
	{target: service.ErrLineNotFound, code: response.CodeNotFound, key: "error.line_not_found"},
	{target: service.ErrInvalidLineAction, code: response.CodeBadRequest, key: "error.line_action_invalid"},
}

var orderStatusErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrInvalidOrderStatus, code: response.CodeBadRequest, key: "error.order_status_invalid"},
	{target: service.ErrStatusCommentMissing, code: response.CodeBadRequest, key: "error.status_comment_required"},
	{target: service.ErrOrderStatusTerminal, code: response.CodeConflict, key: "error.order_status_terminal"},
	{target: service.ErrPermissionDenied, code: response.CodeForbidden, key: "error.forbidden"},
}

var reviewCreateErrorRules = []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
	{target: service.ErrInvalidRating, code: response.CodeBadRequest, key: "error.review_rating_invalid"},
	{target: service.ErrReviewCommentMissing, code: response.CodeBadRequest, key: "error.review_comment_required"},
	{target: service.ErrOrderNotFulfilled, code: response.CodeBadRequest, key: "error.order_not_fulfilled"},
	{target: service.ErrOrderNoDelivery, code: response.CodeBadRequest, key: "error.order_no_delivery"},
	{target: service.ErrPermissionDenied, code: response.CodeForbidden, key: "error.forbidden"},
}

var paymentCreateErrorRules = []mappedHandlerError{
	{target: service.ErrCheckoutNotFound, code: response.CodeNotFound, key: "error.checkout_not_found"},
	{target: service.ErrInvalidPaymentMethod, code: response.CodeBadRequest, key: "error.payment_method_invalid"},
	{target: service.ErrPaymentExists, code: response.CodeBadRequest, key: "error.payment_exists"},
}
