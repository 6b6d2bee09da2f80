package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pizzafy/pizzafy/internal/constants"
	"github.com/pizzafy/pizzafy/internal/models"
	"github.com/pizzafy/pizzafy/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupPaymentServiceTest(t *testing.T) (*PaymentService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:payment_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Checkout{},
		&models.CheckoutLine{},
		&models.Payment{},
		&models.Transaction{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	return NewPaymentService(repository.NewPaymentRepository(db), repository.NewCheckoutRepository(db)), db
}

func createPaymentTestCheckout(t *testing.T, db *gorm.DB, total string) *models.Checkout {
	t.Helper()
	amount, err := decimal.NewFromString(total)
	if err != nil {
		t.Fatalf("parse total %s failed: %v", total, err)
	}
	checkout := &models.Checkout{
		UserID:          1,
		TotalPrice:      models.NewMoneyFromDecimal(amount),
		ShippingAddress: "12 Main St",
		BillingAddress:  "12 Main St",
	}
	if err := db.Create(checkout).Error; err != nil {
		t.Fatalf("create checkout failed: %v", err)
	}
	return checkout
}

func TestCreatePaymentCOD(t *testing.T) {
	svc, db := setupPaymentServiceTest(t)
	checkout := createPaymentTestCheckout(t, db, "23.50")

	result, err := svc.CreatePayment(checkout.ID, constants.PaymentMethodCOD)
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	payment, txn := result.Payment, result.Transaction
	if payment.Status != constants.PaymentStatusCompleted {
		t.Fatalf("payment status want Completed got %s", payment.Status)
	}
	if payment.CheckoutID == nil || *payment.CheckoutID != checkout.ID {
		t.Fatalf("payment not attached to checkout: %+v", payment)
	}
	if !payment.Amount.Decimal.Equal(checkout.TotalPrice.Decimal) {
		t.Fatalf("payment amount want %s got %s", checkout.TotalPrice.String(), payment.Amount.String())
	}
	if txn.TransactionID == "" || txn.PaymentID != payment.ID {
		t.Fatalf("unexpected transaction: %+v", txn)
	}
	if txn.Status != constants.TransactionStatusSuccess {
		t.Fatalf("transaction status want Success got %s", txn.Status)
	}
	if !txn.Amount.Decimal.Equal(payment.Amount.Decimal) {
		t.Fatalf("transaction amount want %s got %s", payment.Amount.String(), txn.Amount.String())
	}
}

func TestCreatePaymentDuplicate(t *testing.T) {
	svc, db := setupPaymentServiceTest(t)
	checkout := createPaymentTestCheckout(t, db, "18.00")

	if _, err := svc.CreatePayment(checkout.ID, constants.PaymentMethodOnline); err != nil {
		t.Fatalf("first payment failed: %v", err)
	}
	if _, err := svc.CreatePayment(checkout.ID, constants.PaymentMethodOnline); !errors.Is(err, ErrPaymentExists) {
		t.Fatalf("expected ErrPaymentExists, got: %v", err)
	}
}

func TestCreatePaymentInvalidMethod(t *testing.T) {
	svc, db := setupPaymentServiceTest(t)
	checkout := createPaymentTestCheckout(t, db, "18.00")

	if _, err := svc.CreatePayment(checkout.ID, "Bitcoin"); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got: %v", err)
	}
}

func TestCreatePaymentCheckoutMissing(t *testing.T) {
	svc, _ := setupPaymentServiceTest(t)

	if _, err := svc.CreatePayment(0, constants.PaymentMethodCOD); !errors.Is(err, ErrCheckoutNotFound) {
		t.Fatalf("expected ErrCheckoutNotFound, got: %v", err)
	}
	if _, err := svc.CreatePayment(9999, constants.PaymentMethodCOD); !errors.Is(err, ErrCheckoutNotFound) {
		t.Fatalf("expected ErrCheckoutNotFound, got: %v", err)
	}
}
