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

func setupPizzaServiceTest(t *testing.T) (*PizzaService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:pizza_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Pizza{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	return NewPizzaService(repository.NewPizzaRepository(db)), db
}

func validPizzaInput(name string) PizzaInput {
	return PizzaInput{
		Name:           name,
		Description:    "test pizza",
		Price:          models.NewMoneyFromDecimal(decimal.NewFromFloat(9.99)),
		Stock:          10,
		Category:       constants.PizzaCategoryVeg,
		AvailableSizes: "Small,Medium,Large",
	}
}

func TestCreatePizzaValidation(t *testing.T) {
	svc, _ := setupPizzaServiceTest(t)

	cases := []struct {
		name    string
		mutate  func(*PizzaInput)
		wantErr error
	}{
		{"blank name", func(in *PizzaInput) { in.Name = "   " }, ErrInvalidPizzaName},
		{"negative price", func(in *PizzaInput) { in.Price = models.NewMoneyFromDecimal(decimal.NewFromInt(-1)) }, ErrInvalidPrice},
		{"negative stock", func(in *PizzaInput) { in.Stock = -1 }, ErrInvalidStock},
		{"bad category", func(in *PizzaInput) { in.Category = "Dessert" }, ErrInvalidCategory},
		{"bad size", func(in *PizzaInput) { in.AvailableSizes = "Medium,Gigantic" }, ErrInvalidPizzaSize},
	}
	for _, tc := range cases {
		input := validPizzaInput("validation")
		tc.mutate(&input)
		if _, err := svc.Create(input); !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: expected %v, got: %v", tc.name, tc.wantErr, err)
		}
	}

	pizza, err := svc.Create(validPizzaInput("Margherita"))
	if err != nil {
		t.Fatalf("create pizza failed: %v", err)
	}
	if pizza.ID == 0 || !pizza.IsActive {
		t.Fatalf("unexpected pizza: %+v", pizza)
	}
}

func TestUpdatePizza(t *testing.T) {
	svc, _ := setupPizzaServiceTest(t)
	pizza, err := svc.Create(validPizzaInput("Farmhouse"))
	if err != nil {
		t.Fatalf("create pizza failed: %v", err)
	}

	input := validPizzaInput("Farmhouse Supreme")
	inactive := false
	input.IsActive = &inactive
	updated, err := svc.Update(pizza.ID, input)
	if err != nil {
		t.Fatalf("update pizza failed: %v", err)
	}
	if updated.Name != "Farmhouse Supreme" || updated.IsActive {
		t.Fatalf("unexpected pizza after update: %+v", updated)
	}

	if _, err := svc.Update(9999, validPizzaInput("ghost")); !errors.Is(err, ErrPizzaNotFound) {
		t.Fatalf("expected ErrPizzaNotFound, got: %v", err)
	}
}

func TestUpdateStockOverwrites(t *testing.T) {
	svc, db := setupPizzaServiceTest(t)
	pizza, err := svc.Create(validPizzaInput("Pepperoni"))
	if err != nil {
		t.Fatalf("create pizza failed: %v", err)
	}

	if _, err := svc.UpdateStock(pizza.ID, -5); !errors.Is(err, ErrInvalidStock) {
		t.Fatalf("expected ErrInvalidStock, got: %v", err)
	}
	if _, err := svc.UpdateStock(9999, 3); !errors.Is(err, ErrPizzaNotFound) {
		t.Fatalf("expected ErrPizzaNotFound, got: %v", err)
	}

	updated, err := svc.UpdateStock(pizza.ID, 0)
	if err != nil {
		t.Fatalf("update stock failed: %v", err)
	}
	if updated.Stock != 0 {
		t.Fatalf("stock want 0 got %d", updated.Stock)
	}

	var stored models.Pizza
	if err := db.First(&stored, pizza.ID).Error; err != nil {
		t.Fatalf("reload pizza failed: %v", err)
	}
	if stored.Stock != 0 {
		t.Fatalf("stock not persisted: %d", stored.Stock)
	}
}

func TestDeletePizza(t *testing.T) {
	svc, _ := setupPizzaServiceTest(t)
	pizza, err := svc.Create(validPizzaInput("Quattro Formaggi"))
	if err != nil {
		t.Fatalf("create pizza failed: %v", err)
	}

	if err := svc.Delete(pizza.ID); err != nil {
		t.Fatalf("delete pizza failed: %v", err)
	}
	if _, err := svc.Get(pizza.ID); !errors.Is(err, ErrPizzaNotFound) {
		t.Fatalf("expected ErrPizzaNotFound after delete, got: %v", err)
	}
	if err := svc.Delete(pizza.ID); !errors.Is(err, ErrPizzaNotFound) {
		t.Fatalf("expected ErrPizzaNotFound, got: %v", err)
	}
}

func TestListPizzasFilters(t *testing.T) {
	svc, _ := setupPizzaServiceTest(t)

	veg := validPizzaInput("Margherita")
	if _, err := svc.Create(veg); err != nil {
		t.Fatalf("create pizza failed: %v", err)
	}

	nonVeg := validPizzaInput("BBQ Chicken")
	nonVeg.Category = constants.PizzaCategoryNonVeg
	if _, err := svc.Create(nonVeg); err != nil {
		t.Fatalf("create pizza failed: %v", err)
	}

	hidden := validPizzaInput("Quattro Formaggi")
	hidden.Stock = 0
	inactive := false
	hidden.IsActive = &inactive
	if _, err := svc.Create(hidden); err != nil {
		t.Fatalf("create pizza failed: %v", err)
	}

	_, total, err := svc.List(repository.PizzaListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("total want 3 got %d", total)
	}

	pizzas, total, err := svc.List(repository.PizzaListFilter{OnlyActive: true, InStock: true})
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if total != 2 || len(pizzas) != 2 {
		t.Fatalf("want 2 available pizzas, got total=%d len=%d", total, len(pizzas))
	}

	pizzas, _, err = svc.List(repository.PizzaListFilter{Category: constants.PizzaCategoryNonVeg})
	if err != nil {
		t.Fatalf("category list failed: %v", err)
	}
	if len(pizzas) != 1 || pizzas[0].Name != "BBQ Chicken" {
		t.Fatalf("unexpected category result: %+v", pizzas)
	}

	pizzas, _, err = svc.List(repository.PizzaListFilter{Search: "Margh"})
	if err != nil {
		t.Fatalf("search list failed: %v", err)
	}
	if len(pizzas) != 1 || pizzas[0].Name != "Margherita" {
		t.Fatalf("unexpected search result: %+v", pizzas)
	}
}
