package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pizzafy/pizzafy/internal/config"
	"github.com/pizzafy/pizzafy/internal/constants"
	"github.com/pizzafy/pizzafy/internal/models"
	"github.com/pizzafy/pizzafy/internal/queue"
	"github.com/pizzafy/pizzafy/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCheckoutServiceTest(t *testing.T) (*CheckoutService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:checkout_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Pizza{},
		&models.Checkout{},
		&models.CheckoutLine{},
		&models.Order{},
		&models.OrderLine{},
		&models.Review{},
		&models.Payment{},
		&models.Transaction{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("create queue client failed: %v", err)
	}
	svc := NewCheckoutService(
		repository.NewCheckoutRepository(db),
		repository.NewPizzaRepository(db),
		repository.NewOrderRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewUserRepository(db),
		queueClient,
	)
	return svc, db
}

func createCheckoutTestUser(t *testing.T, db *gorm.DB, username string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "hash",
		Role:         role,
		IsActive:     true,
		IsAvailable:  true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func createCheckoutTestPizza(t *testing.T, db *gorm.DB, name string, price float64) *models.Pizza {
	t.Helper()
	pizza := &models.Pizza{
		Name:           name,
		Price:          models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Stock:          20,
		Category:       constants.PizzaCategoryVeg,
		AvailableSizes: "Small,Medium,Large",
		IsActive:       true,
	}
	if err := db.Create(pizza).Error; err != nil {
		t.Fatalf("create pizza failed: %v", err)
	}
	return pizza
}

func money(t *testing.T, raw string) models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(raw)
	if err != nil {
		t.Fatalf("parse money %s failed: %v", raw, err)
	}
	return m
}

func TestCreateCheckoutComputesTotal(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	user := createCheckoutTestUser(t, db, "checkout_total", models.RoleCustomer)
	margherita := createCheckoutTestPizza(t, db, "Margherita", 12.00)
	farmhouse := createCheckoutTestPizza(t, db, "Farmhouse", 8.00)

	checkout, err := svc.CreateCheckout(Actor{UserID: user.ID, Role: user.Role}, "12 Main St", "12 Main St", []NewLineInput{
		{PizzaID: margherita.ID, Quantity: 2, Price: money(t, "12.00"), Size: "Medium"},
		{PizzaID: farmhouse.ID, Quantity: 1, Price: money(t, "8.00"), Size: "Large"},
	})
	if err != nil {
		t.Fatalf("create checkout failed: %v", err)
	}
	if got := checkout.TotalPrice.String(); got != "32.00" {
		t.Fatalf("total want 32.00 got %s", got)
	}
	if len(checkout.Lines) != 2 {
		t.Fatalf("lines want 2 got %d", len(checkout.Lines))
	}
}

func TestCreateCheckoutRequiresAddresses(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	user := createCheckoutTestUser(t, db, "checkout_addr", models.RoleCustomer)

	_, err := svc.CreateCheckout(Actor{UserID: user.ID, Role: user.Role}, "  ", "12 Main St", nil)
	if !errors.Is(err, ErrAddressRequired) {
		t.Fatalf("expected ErrAddressRequired, got %v", err)
	}
}

func TestCreateCheckoutUnknownPizza(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	user := createCheckoutTestUser(t, db, "checkout_pizza", models.RoleCustomer)

	_, err := svc.CreateCheckout(Actor{UserID: user.ID, Role: user.Role}, "a", "b", []NewLineInput{
		{PizzaID: 999, Quantity: 1, Price: money(t, "9.99")},
	})
	if !errors.Is(err, ErrPizzaNotFound) {
		t.Fatalf("expected ErrPizzaNotFound, got %v", err)
	}
}

func TestUpdateCheckoutAppliesLineOpsInOrder(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	user := createCheckoutTestUser(t, db, "checkout_ops", models.RoleCustomer)
	margherita := createCheckoutTestPizza(t, db, "Margherita", 12.00)
	farmhouse := createCheckoutTestPizza(t, db, "Farmhouse", 8.00)

	checkout, err := svc.CreateCheckout(Actor{UserID: user.ID, Role: user.Role}, "a", "b", []NewLineInput{
		{PizzaID: margherita.ID, Quantity: 2, Price: money(t, "12.00"), Size: "Medium"},
		{PizzaID: farmhouse.ID, Quantity: 1, Price: money(t, "8.00"), Size: "Large"},
	})
	if err != nil {
		t.Fatalf("create checkout failed: %v", err)
	}

	// 2x12 → 1x12（-12），删除 8 元行（-8），总计 32 → 12
	qty := 1
	updated, err := svc.UpdateCheckout(checkout.ID, AddressPatch{}, []LineOp{
		UpdateLineOp{LineID: checkout.Lines[0].ID, Quantity: &qty},
		RemoveLineOp{LineID: checkout.Lines[1].ID},
	})
	if err != nil {
		t.Fatalf("update checkout failed: %v", err)
	}
	if got := updated.TotalPrice.String(); got != "12.00" {
		t.Fatalf("total want 12.00 got %s", got)
	}
	if len(updated.Lines) != 1 {
		t.Fatalf("lines want 1 got %d", len(updated.Lines))
	}

	// 再加一行 2x8，总计 12 → 28
	updated, err = svc.UpdateCheckout(checkout.ID, AddressPatch{}, []LineOp{
		AddLineOp{PizzaID: farmhouse.ID, Quantity: 2, Price: money(t, "8.00"), Size: "Small"},
	})
	if err != nil {
		t.Fatalf("add line failed: %v", err)
	}
	if got := updated.TotalPrice.String(); got != "28.00" {
		t.Fatalf("total want 28.00 got %s", got)
	}
}

func TestUpdateCheckoutLineNotFound(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	user := createCheckoutTestUser(t, db, "checkout_missing_line", models.RoleCustomer)
	pizza := createCheckoutTestPizza(t, db, "Pepperoni", 11.00)

	checkout, err := svc.CreateCheckout(Actor{UserID: user.ID, Role: user.Role}, "a", "b", []NewLineInput{
		{PizzaID: pizza.ID, Quantity: 1, Price: money(t, "11.00")},
	})
	if err != nil {
		t.Fatalf("create checkout failed: %v", err)
	}

	_, err = svc.UpdateCheckout(checkout.ID, AddressPatch{}, []LineOp{
		RemoveLineOp{LineID: 9999},
	})
	if !errors.Is(err, ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}

	// 失败的操作不应留下半途状态
	reloaded, err := svc.checkoutRepo.GetByID(checkout.ID)
	if err != nil || reloaded == nil {
		t.Fatalf("reload checkout failed: %v", err)
	}
	if got := reloaded.TotalPrice.String(); got != "11.00" {
		t.Fatalf("total should stay 11.00 after failed update, got %s", got)
	}
}

func TestCompleteCheckoutCreatesOrderSnapshot(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	user := createCheckoutTestUser(t, db, "complete_owner", models.RoleCustomer)
	partner := createCheckoutTestUser(t, db, "complete_partner", models.RoleDeliveryPartner)
	pizza := createCheckoutTestPizza(t, db, "BBQ Chicken", 13.00)

	checkout, err := svc.CreateCheckout(Actor{UserID: user.ID, Role: user.Role}, "12 Main St", "12 Main St", []NewLineInput{
		{PizzaID: pizza.ID, Quantity: 2, Price: money(t, "13.00"), Size: "Large"},
	})
	if err != nil {
		t.Fatalf("create checkout failed: %v", err)
	}

	// 先支付再结算：订单应直接标记已支付
	payment := &models.Payment{
		CheckoutID:    &checkout.ID,
		PaymentMethod: constants.PaymentMethodCOD,
		Amount:        checkout.TotalPrice,
		Status:        constants.PaymentStatusCompleted,
		PaymentDate:   time.Now(),
	}
	if err := db.Create(payment).Error; err != nil {
		t.Fatalf("create payment failed: %v", err)
	}

	order, err := svc.CompleteCheckout(checkout.ID)
	if err != nil {
		t.Fatalf("complete checkout failed: %v", err)
	}
	if order.Status != constants.OrderStatusUnfulfilled {
		t.Fatalf("order status want Unfulfilled got %s", order.Status)
	}
	if got := order.TotalPrice.String(); got != "26.00" {
		t.Fatalf("order total want 26.00 got %s", got)
	}
	if order.PaymentStatus != constants.OrderPaymentStatusPaid {
		t.Fatalf("payment status want Paid got %s", order.PaymentStatus)
	}
	if order.DeliveryPartnerID == nil || *order.DeliveryPartnerID != partner.ID {
		t.Fatalf("expected delivery partner %d, got %+v", partner.ID, order.DeliveryPartnerID)
	}
	if order.DeliveryDate == nil {
		t.Fatalf("expected delivery date to be set")
	}
	if len(order.Lines) != 1 || order.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected order lines: %+v", order.Lines)
	}

	// 支付应改挂到订单
	var reloadedPayment models.Payment
	if err := db.First(&reloadedPayment, payment.ID).Error; err != nil {
		t.Fatalf("reload payment failed: %v", err)
	}
	if reloadedPayment.CheckoutID != nil {
		t.Fatalf("payment should be detached from checkout")
	}
	if reloadedPayment.OrderID == nil || *reloadedPayment.OrderID != order.ID {
		t.Fatalf("payment should be attached to order %d, got %+v", order.ID, reloadedPayment.OrderID)
	}

	// 购物车与明细应被删除
	var checkoutCount, lineCount int64
	db.Model(&models.Checkout{}).Where("id = ?", checkout.ID).Count(&checkoutCount)
	db.Model(&models.CheckoutLine{}).Where("checkout_id = ?", checkout.ID).Count(&lineCount)
	if checkoutCount != 0 || lineCount != 0 {
		t.Fatalf("checkout should be deleted, got checkout=%d lines=%d", checkoutCount, lineCount)
	}
}

func TestCompleteCheckoutWithoutDeliveryPartner(t *testing.T) {
	svc, db := setupCheckoutServiceTest(t)
	user := createCheckoutTestUser(t, db, "complete_no_partner", models.RoleCustomer)
	pizza := createCheckoutTestPizza(t, db, "Margherita", 9.00)

	checkout, err := svc.CreateCheckout(Actor{UserID: user.ID, Role: user.Role}, "a", "b", []NewLineInput{
		{PizzaID: pizza.ID, Quantity: 1, Price: money(t, "9.00")},
	})
	if err != nil {
		t.Fatalf("create checkout failed: %v", err)
	}

	order, err := svc.CompleteCheckout(checkout.ID)
	if err != nil {
		t.Fatalf("complete checkout failed: %v", err)
	}
	if order.DeliveryPartnerID != nil {
		t.Fatalf("expected unassigned delivery partner, got %v", *order.DeliveryPartnerID)
	}
	if order.PaymentStatus != constants.OrderPaymentStatusPending {
		t.Fatalf("payment status want Pending got %s", order.PaymentStatus)
	}
}

func TestCompleteCheckoutMissing(t *testing.T) {
	svc, _ := setupCheckoutServiceTest(t)

	_, err := svc.CompleteCheckout(4242)
	if !errors.Is(err, ErrCheckoutNotFound) {
		t.Fatalf("expected ErrCheckoutNotFound, got %v", err)
	}
}
