package service

import (
	"strings"

	"github.com/pizzafy/pizzafy/internal/constants"
	"github.com/pizzafy/pizzafy/internal/models"
	"github.com/pizzafy/pizzafy/internal/repository"
)

// PizzaService 披萨目录服务
type PizzaService struct {
	pizzaRepo repository.PizzaRepository
}

// NewPizzaService 创建披萨目录服务
func NewPizzaService(pizzaRepo repository.PizzaRepository) *PizzaService {
	return &PizzaService{pizzaRepo: pizzaRepo}
}

// PizzaInput 披萨创建/更新入参
type PizzaInput struct {
	Name           string
	Description    string
	Price          models.Money
	Stock          int
	Category       string
	AvailableSizes string
	Toppings       string
	IsActive       *bool
}

// List 披萨列表
func (s *PizzaService) List(filter repository.PizzaListFilter) ([]models.Pizza, int64, error) {
	return s.pizzaRepo.List(filter)
}

// Get 披萨详情
func (s *PizzaService) Get(id uint) (*models.Pizza, error) {
	pizza, err := s.pizzaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pizza == nil {
		return nil, ErrPizzaNotFound
	}
	return pizza, nil
}

// Create 创建披萨（仅管理员路由可达）
func (s *PizzaService) Create(input PizzaInput) (*models.Pizza, error) {
	if err := validatePizzaInput(&input); err != nil {
		return nil, err
	}

	pizza := &models.Pizza{
		Name:           strings.TrimSpace(input.Name),
		Description:    input.Description,
		Price:          input.Price,
		Stock:          input.Stock,
		Category:       input.Category,
		AvailableSizes: input.AvailableSizes,
		Toppings:       input.Toppings,
		IsActive:       true,
	}
	if input.IsActive != nil {
		pizza.IsActive = *input.IsActive
	}
	if err := s.pizzaRepo.Create(pizza); err != nil {
		return nil, err
	}
	return pizza, nil
}

// Update 更新披萨
func (s *PizzaService) Update(id uint, input PizzaInput) (*models.Pizza, error) {
	pizza, err := s.pizzaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pizza == nil {
		return nil, ErrPizzaNotFound
	}
	if err := validatePizzaInput(&input); err != nil {
		return nil, err
	}

	pizza.Name = strings.TrimSpace(input.Name)
	pizza.Description = input.Description
	pizza.Price = input.Price
	pizza.Stock = input.Stock
	pizza.Category = input.Category
	pizza.AvailableSizes = input.AvailableSizes
	pizza.Toppings = input.Toppings
	if input.IsActive != nil {
		pizza.IsActive = *input.IsActive
	}
	if err := s.pizzaRepo.Update(pizza); err != nil {
		return nil, err
	}
	return pizza, nil
}

// UpdateStock 无条件覆盖库存
func (s *PizzaService) UpdateStock(id uint, stock int) (*models.Pizza, error) {
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	pizza, err := s.pizzaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pizza == nil {
		return nil, ErrPizzaNotFound
	}
	if err := s.pizzaRepo.UpdateStock(id, stock); err != nil {
		return nil, err
	}
	pizza.Stock = stock
	return pizza, nil
}

// Delete 删除披萨
func (s *PizzaService) Delete(id uint) error {
	pizza, err := s.pizzaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if pizza == nil {
		return ErrPizzaNotFound
	}
	return s.pizzaRepo.Delete(id)
}

func validatePizzaInput(input *PizzaInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrInvalidPizzaName
	}
	if input.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if input.Stock < 0 {
		return ErrInvalidStock
	}
	if input.Category != "" && !isValidCategory(input.Category) {
		return ErrInvalidCategory
	}
	if input.AvailableSizes != "" && !isValidSizeList(input.AvailableSizes) {
		return ErrInvalidPizzaSize
	}
	return nil
}

func isValidCategory(category string) bool {
	for _, c := range constants.PizzaCategories {
		if c == category {
			return true
		}
	}
	return false
}

// isValidSizeList 校验逗号分隔的尺寸集合
func isValidSizeList(sizes string) bool {
	for _, raw := range strings.Split(sizes, ",") {
		if !isValidSize(strings.TrimSpace(raw)) {
			return false
		}
	}
	return true
}

func isValidSize(size string) bool {
	for _, s := range constants.PizzaSizes {
		if s == size {
			return true
		}
	}
	return false
}
