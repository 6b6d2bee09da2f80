package service

import (
	"strings"

	"github.com/pizzafy/pizzafy/internal/constants"
	"github.com/pizzafy/pizzafy/internal/logger"
	"github.com/pizzafy/pizzafy/internal/models"
	"github.com/pizzafy/pizzafy/internal/queue"
	"github.com/pizzafy/pizzafy/internal/repository"

	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{orderRepo: orderRepo, queueClient: queueClient}
}

// UpdateStatus 订单状态流转。
// Cancel 为终态；非特权角色只能取消，管理员与配送员可流转到任意合法状态。
func (s *OrderService) UpdateStatus(orderID uint, status, comment string, actor Actor) (*models.Order, error) {
	if !isValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	if strings.TrimSpace(comment) == "" {
		return nil, ErrStatusCommentMissing
	}

	if err := models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.orderRepo.WithTx(tx)
		order, err := repo.GetByIDForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if order.Status == constants.OrderStatusCancel {
			return ErrOrderStatusTerminal
		}

		switch actor.Role {
		case models.RoleAdmin, models.RoleDeliveryPartner:
			// 任意合法目标状态
		case models.RoleCustomer:
			if status != constants.OrderStatusCancel {
				return ErrPermissionDenied
			}
		default:
			if status != constants.OrderStatusCancel {
				return ErrPermissionDenied
			}
		}

		return repo.UpdateStatus(orderID, status, map[string]interface{}{
			"status_comment": comment,
		})
	}); err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueOrderStatusNotify(queue.OrderStatusNotifyPayload{
		OrderID: orderID,
		Status:  status,
	}); err != nil {
		logger.Warnw("order_status_notify_enqueue_failed", "order_id", orderID, "error", err)
	}

	return s.orderRepo.GetByID(orderID)
}

// CreateReview 为已完成订单创建评价
func (s *OrderService) CreateReview(orderID uint, rating int, comment string, actor Actor) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(comment) == "" {
		return nil, ErrReviewCommentMissing
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != constants.OrderStatusFulfilled {
		return nil, ErrOrderNotFulfilled
	}
	if order.UserID != actor.UserID {
		return nil, ErrPermissionDenied
	}
	if order.DeliveryPartnerID == nil {
		return nil, ErrOrderNoDelivery
	}

	review := &models.Review{
		OrderID: orderID,
		UserID:  actor.UserID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.orderRepo.CreateReview(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListByUser 用户订单历史（按时间倒序）
func (s *OrderService) ListByUser(actor Actor, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	filter.UserID = actor.UserID
	return s.orderRepo.ListByUser(filter)
}

// Get 获取用户自己的订单
func (s *OrderService) Get(actor Actor, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(id, actor.UserID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func isValidOrderStatus(status string) bool {
	for _, s := range constants.OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
