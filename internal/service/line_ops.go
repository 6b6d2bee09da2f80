package service

import "github.com/pizzafy/pizzafy/internal/models"

// LineOp 购物车明细操作的封闭变体，在处理器边界解码一次后传入服务层。
type LineOp interface {
	isLineOp()
}

// AddLineOp 新增明细行
type AddLineOp struct {
	PizzaID        uint
	Quantity       int
	Price          models.Money
	Size           string
	Customizations string
}

// UpdateLineOp 部分更新明细行（nil 字段保持原值）
type UpdateLineOp struct {
	LineID         uint
	PizzaID        *uint
	Quantity       *int
	Price          *models.Money
	Size           *string
	Customizations *string
}

// RemoveLineOp 删除明细行
type RemoveLineOp struct {
	LineID uint
}

func (AddLineOp) isLineOp()    {}
func (UpdateLineOp) isLineOp() {}
func (RemoveLineOp) isLineOp() {}
