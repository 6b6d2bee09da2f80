package main

import (
	"fmt"

	"github.com/pizzafy/pizzafy/internal/config"
	"github.com/pizzafy/pizzafy/internal/constants"
	"github.com/pizzafy/pizzafy/internal/logger"
	"github.com/pizzafy/pizzafy/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 默认管理员
	if err := models.InitDefaultAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}

	// 演示账号（密码统一 pizzafy123）
	users := []struct {
		Username  string
		Email     string
		FirstName string
		LastName  string
		Role      models.Role
	}{
		{Username: "mario", Email: "mario@pizzafy.local", FirstName: "Mario", LastName: "Rossi", Role: models.RoleDeliveryPartner},
		{Username: "luigi", Email: "luigi@pizzafy.local", FirstName: "Luigi", LastName: "Verdi", Role: models.RoleDeliveryPartner},
		{Username: "alice", Email: "alice@pizzafy.local", FirstName: "Alice", LastName: "Miller", Role: models.RoleCustomer},
		{Username: "bob", Email: "bob@pizzafy.local", FirstName: "Bob", LastName: "Taylor", Role: models.RoleCustomer},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("pizzafy123"), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Fatalf("Failed to hash seed password: %v", err)
	}

	for _, u := range users {
		var existing models.User
		if err := models.DB.Where("email = ?", u.Email).First(&existing).Error; err != nil {
			user := models.User{
				Username:     u.Username,
				Email:        u.Email,
				PasswordHash: string(hash),
				FirstName:    u.FirstName,
				LastName:     u.LastName,
				Role:         u.Role,
				IsActive:     true,
				IsAvailable:  true,
			}
			if err := models.DB.Create(&user).Error; err != nil {
				stdLog.Printf("Failed to create user %s: %v", u.Username, err)
			} else {
				stdLog.Printf("Created user: %s (%s)", u.Username, u.Role)
			}
		} else {
			stdLog.Printf("User already exists: %s", u.Username)
		}
	}

	// 披萨目录
	pizzas := []models.Pizza{
		{
			Name:           "Margherita",
			Description:    "Classic tomato, mozzarella and fresh basil",
			Price:          models.NewMoneyFromDecimal(decimal.NewFromFloat(8.99)),
			Stock:          50,
			Category:       constants.PizzaCategoryVeg,
			AvailableSizes: "Small,Medium,Large",
			Toppings:       "Extra cheese,Olives,Basil",
			IsActive:       true,
		},
		{
			Name:           "Pepperoni",
			Description:    "Loaded with spicy pepperoni and mozzarella",
			Price:          models.NewMoneyFromDecimal(decimal.NewFromFloat(11.49)),
			Stock:          40,
			Category:       constants.PizzaCategoryNonVeg,
			AvailableSizes: "Medium,Large",
			Toppings:       "Extra pepperoni,Jalapenos",
			IsActive:       true,
		},
		{
			Name:           "Farmhouse",
			Description:    "Onion, capsicum, tomato and mushroom",
			Price:          models.NewMoneyFromDecimal(decimal.NewFromFloat(9.99)),
			Stock:          35,
			Category:       constants.PizzaCategoryVeg,
			AvailableSizes: "Small,Medium,Large",
			Toppings:       "Mushroom,Sweet corn,Paneer",
			IsActive:       true,
		},
		{
			Name:           "BBQ Chicken",
			Description:    "Smoky barbecue chicken with red onion",
			Price:          models.NewMoneyFromDecimal(decimal.NewFromFloat(12.99)),
			Stock:          30,
			Category:       constants.PizzaCategoryNonVeg,
			AvailableSizes: "Medium,Large",
			Toppings:       "Extra chicken,BBQ sauce",
			IsActive:       true,
		},
		{
			Name:           "Truffle Deluxe",
			Description:    "House specialty with truffle oil and wild mushrooms",
			Price:          models.NewMoneyFromDecimal(decimal.NewFromFloat(16.49)),
			Stock:          12,
			Category:       constants.PizzaCategorySpecialty,
			AvailableSizes: "Medium,Large",
			Toppings:       "Truffle oil,Parmesan shavings",
			IsActive:       true,
		},
		{
			Name:           "Quattro Formaggi",
			Description:    "Four cheese blend, currently off the menu",
			Price:          models.NewMoneyFromDecimal(decimal.NewFromFloat(13.99)),
			Stock:          0,
			Category:       constants.PizzaCategorySpecialty,
			AvailableSizes: "Medium",
			Toppings:       "Gorgonzola,Brie",
			IsActive:       false,
		},
	}

	for _, pizza := range pizzas {
		var existing models.Pizza
		if err := models.DB.Where("name = ?", pizza.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&pizza).Error; err != nil {
				stdLog.Printf("Failed to create pizza %s: %v", pizza.Name, err)
			} else {
				stdLog.Printf("Created pizza: %s", pizza.Name)
			}
		} else {
			existing.Description = pizza.Description
			existing.Price = pizza.Price
			existing.Stock = pizza.Stock
			existing.Category = pizza.Category
			existing.AvailableSizes = pizza.AvailableSizes
			existing.Toppings = pizza.Toppings
			existing.IsActive = pizza.IsActive
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update pizza %s: %v", pizza.Name, err)
			} else {
				stdLog.Printf("Updated pizza: %s", pizza.Name)
			}
		}
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 1 Admin (config admin.username / admin.password)")
	fmt.Println("- 2 Delivery partners (mario, luigi)")
	fmt.Println("- 2 Customers (alice, bob)")
	fmt.Println("- 6 Pizzas (1 inactive)")
	fmt.Println("- Demo account password: pizzafy123")
}
