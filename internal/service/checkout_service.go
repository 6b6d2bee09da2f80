package service

import (
	"strings"
	"time"

	"github.com/pizzafy/pizzafy/internal/constants"
	"github.com/pizzafy/pizzafy/internal/logger"
	"github.com/pizzafy/pizzafy/internal/models"
	"github.com/pizzafy/pizzafy/internal/queue"
	"github.com/pizzafy/pizzafy/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutService 购物车服务
type CheckoutService struct {
	checkoutRepo repository.CheckoutRepository
	pizzaRepo    repository.PizzaRepository
	orderRepo    repository.OrderRepository
	paymentRepo  repository.PaymentRepository
	userRepo     repository.UserRepository
	queueClient  *queue.Client
}

// NewCheckoutService 创建购物车服务
func NewCheckoutService(
	checkoutRepo repository.CheckoutRepository,
	pizzaRepo repository.PizzaRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	queueClient *queue.Client,
) *CheckoutService {
	return &CheckoutService{
		checkoutRepo: checkoutRepo,
		pizzaRepo:    pizzaRepo,
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		userRepo:     userRepo,
		queueClient:  queueClient,
	}
}

// NewLineInput 创建购物车时的明细行入参
// 单价按调用方给定值入库，不回查目录价格（沿用原有计价行为）
type NewLineInput struct {
	PizzaID        uint
	Quantity       int
	Price          models.Money
	Size           string
	Customizations string
}

// AddressPatch 地址覆盖（nil 表示不修改）
type AddressPatch struct {
	ShippingAddress *string
	BillingAddress  *string
}

// CreateCheckout 创建购物车
func (s *CheckoutService) CreateCheckout(actor Actor, shippingAddress, billingAddress string, lines []NewLineInput) (*models.Checkout, error) {
	if strings.TrimSpace(shippingAddress) == "" || strings.TrimSpace(billingAddress) == "" {
		return nil, ErrAddressRequired
	}

	newLines := make([]models.CheckoutLine, 0, len(lines))
	total := decimal.Zero
	for _, input := range lines {
		if input.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		pizza, err := s.pizzaRepo.GetByID(input.PizzaID)
		if err != nil {
			return nil, err
		}
		if pizza == nil {
			return nil, ErrPizzaNotFound
		}
		line := models.CheckoutLine{
			PizzaID:        input.PizzaID,
			Quantity:       input.Quantity,
			Price:          input.Price,
			Size:           input.Size,
			Customizations: input.Customizations,
		}
		newLines = append(newLines, line)
		total = total.Add(line.LineTotal().Decimal)
	}

	checkout := &models.Checkout{
		UserID:          actor.UserID,
		TotalPrice:      models.NewMoneyFromDecimal(total),
		ShippingAddress: shippingAddress,
		BillingAddress:  billingAddress,
	}

	if err := models.DB.Transaction(func(tx *gorm.DB) error {
		return s.checkoutRepo.WithTx(tx).Create(checkout, newLines)
	}); err != nil {
		return nil, err
	}

	return s.checkoutRepo.GetByID(checkout.ID)
}

// UpdateCheckout 更新购物车：地址覆盖 + 按序应用明细操作。
// 整个更新在一个事务内完成并持有购物车行锁，保证合计不变量。
func (s *CheckoutService) UpdateCheckout(checkoutID uint, patch AddressPatch, ops []LineOp) (*models.Checkout, error) {
	if err := models.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.checkoutRepo.WithTx(tx)
		checkout, err := repo.GetByIDForUpdate(checkoutID)
		if err != nil {
			return err
		}
		if checkout == nil {
			return ErrCheckoutNotFound
		}

		if patch.ShippingAddress != nil && strings.TrimSpace(*patch.ShippingAddress) != "" {
			checkout.ShippingAddress = *patch.ShippingAddress
		}
		if patch.BillingAddress != nil && strings.TrimSpace(*patch.BillingAddress) != "" {
			checkout.BillingAddress = *patch.BillingAddress
		}

		total := checkout.TotalPrice.Decimal
		for _, op := range ops {
			total, err = s.applyLineOp(repo, checkout, total, op)
			if err != nil {
				return err
			}
			// 每步操作后落盘合计，与逐行提交的语义保持一致
			if err := repo.UpdateTotal(checkout.ID, models.NewMoneyFromDecimal(total)); err != nil {
				return err
			}
		}

		checkout.TotalPrice = models.NewMoneyFromDecimal(total)
		return tx.Model(&models.Checkout{}).Where("id = ?", checkout.ID).Updates(map[string]interface{}{
			"shipping_address": checkout.ShippingAddress,
			"billing_address":  checkout.BillingAddress,
			"total_price":      checkout.TotalPrice,
		}).Error
	}); err != nil {
		return nil, err
	}

	return s.checkoutRepo.GetByID(checkoutID)
}

func (s *CheckoutService) applyLineOp(repo *repository.GormCheckoutRepository, checkout *models.Checkout, total decimal.Decimal, op LineOp) (decimal.Decimal, error) {
	switch v := op.(type) {
	case RemoveLineOp:
		line, err := repo.GetLine(v.LineID, checkout.ID)
		if err != nil {
			return total, err
		}
		if line == nil {
			return total, ErrLineNotFound
		}
		total = total.Sub(line.LineTotal().Decimal)
		return total, repo.DeleteLine(line.ID)

	case AddLineOp:
		if v.Quantity < 1 {
			return total, ErrInvalidQuantity
		}
		pizza, err := s.pizzaRepo.GetByID(v.PizzaID)
		if err != nil {
			return total, err
		}
		if pizza == nil {
			return total, ErrPizzaNotFound
		}
		line := &models.CheckoutLine{
			CheckoutID:     checkout.ID,
			PizzaID:        v.PizzaID,
			Quantity:       v.Quantity,
			Price:          v.Price,
			Size:           v.Size,
			Customizations: v.Customizations,
		}
		if err := repo.CreateLine(line); err != nil {
			return total, err
		}
		return total.Add(line.LineTotal().Decimal), nil

	case UpdateLineOp:
		line, err := repo.GetLine(v.LineID, checkout.ID)
		if err != nil {
			return total, err
		}
		if line == nil {
			return total, ErrLineNotFound
		}
		total = total.Sub(line.LineTotal().Decimal)
		if v.PizzaID != nil {
			pizza, err := s.pizzaRepo.GetByID(*v.PizzaID)
			if err != nil {
				return total, err
			}
			if pizza == nil {
				return total, ErrPizzaNotFound
			}
			line.PizzaID = *v.PizzaID
		}
		if v.Quantity != nil {
			if *v.Quantity < 1 {
				return total, ErrInvalidQuantity
			}
			line.Quantity = *v.Quantity
		}
		if v.Price != nil {
			line.Price = *v.Price
		}
		if v.Size != nil {
			line.Size = *v.Size
		}
		if v.Customizations != nil {
			line.Customizations = *v.Customizations
		}
		if err := repo.UpdateLine(line); err != nil {
			return total, err
		}
		return total.Add(line.LineTotal().Decimal), nil

	default:
		return total, ErrInvalidLineAction
	}
}

// GetCheckout 获取用户自己的购物车
func (s *CheckoutService) GetCheckout(actor Actor, id uint) (*models.Checkout, error) {
	checkout, err := s.checkoutRepo.GetByIDAndUser(id, actor.UserID)
	if err != nil {
		return nil, err
	}
	if checkout == nil {
		return nil, ErrCheckoutNotFound
	}
	return checkout, nil
}

// ListCheckouts 获取用户的全部购物车
func (s *CheckoutService) ListCheckouts(actor Actor) ([]models.Checkout, error) {
	return s.checkoutRepo.ListByUser(actor.UserID)
}

// CompleteCheckout 将购物车结算为订单。
// 单事务内：建单、拷贝明细、改挂支付、分配配送员、删除明细与购物车。
func (s *CheckoutService) CompleteCheckout(checkoutID uint) (*models.Order, error) {
	var order *models.Order

	if err := models.DB.Transaction(func(tx *gorm.DB) error {
		checkoutRepo := s.checkoutRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)
		paymentRepo := s.paymentRepo.WithTx(tx)
		userRepo := s.userRepo.WithTx(tx)

		checkout, err := checkoutRepo.GetByIDForUpdate(checkoutID)
		if err != nil {
			return err
		}
		if checkout == nil {
			return ErrCheckoutNotFound
		}

		order = &models.Order{
			UserID:          checkout.UserID,
			Status:          constants.OrderStatusUnfulfilled,
			TotalPrice:      checkout.TotalPrice,
			ShippingAddress: checkout.ShippingAddress,
			BillingAddress:  checkout.BillingAddress,
			PaymentStatus:   constants.OrderPaymentStatusPending,
		}

		lines := make([]models.OrderLine, 0, len(checkout.Lines))
		for _, line := range checkout.Lines {
			lines = append(lines, models.OrderLine{
				PizzaID:        line.PizzaID,
				Quantity:       line.Quantity,
				Price:          line.Price,
				Size:           line.Size,
				Customizations: line.Customizations,
			})
		}
		if err := orderRepo.Create(order, lines); err != nil {
			return err
		}

		payment, err := paymentRepo.GetByCheckoutID(checkout.ID)
		if err != nil {
			return err
		}
		if payment != nil {
			if err := paymentRepo.AttachToOrder(payment.ID, order.ID); err != nil {
				return err
			}
			if payment.Status == constants.PaymentStatusCompleted {
				order.PaymentStatus = constants.OrderPaymentStatusPaid
				if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
					Update("payment_status", order.PaymentStatus).Error; err != nil {
					return err
				}
			}
		}

		// 配送员缺席不是错误，订单保持未分配
		partner, err := userRepo.GetAvailableDeliveryPartner()
		if err != nil {
			return err
		}
		if partner != nil {
			order.DeliveryPartnerID = &partner.ID
			deliveryDate := time.Now().Add(45 * time.Minute)
			order.DeliveryDate = &deliveryDate
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
				"delivery_partner_id": partner.ID,
				"delivery_date":       deliveryDate,
			}).Error; err != nil {
				return err
			}
		}

		if err := checkoutRepo.DeleteLines(checkout.ID); err != nil {
			return err
		}
		return checkoutRepo.Delete(checkout.ID)
	}); err != nil {
		return nil, err
	}

	if err := s.queueClient.EnqueueOrderStatusNotify(queue.OrderStatusNotifyPayload{
		OrderID: order.ID,
		Status:  order.Status,
	}); err != nil {
		logger.Warnw("order_status_notify_enqueue_failed", "order_id", order.ID, "error", err)
	}

	return s.orderRepo.GetByID(order.ID)
}
