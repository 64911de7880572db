package application

import (
	"context"

	"github.com/wyfcoding/cornerstore/internal/pos/domain"
)

// CreateCashierCommand 新建收银员命令
type CreateCashierCommand struct {
	FirstName string
	LastName  string
}

// CashierService 收银员应用服务
type CashierService struct {
	cashiers domain.CashierRepository
}

// NewCashierService 创建收银员应用服务
func NewCashierService(cashiers domain.CashierRepository) *CashierService {
	return &CashierService{cashiers: cashiers}
}

// CreateCashier 新建收银员
func (s *CashierService) CreateCashier(ctx context.Context, cmd CreateCashierCommand) (*CashierDTO, error) {
	cashier := &domain.Cashier{
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
	}
	if err := s.cashiers.Create(ctx, cashier); err != nil {
		return nil, err
	}

	dto := NewCashierDTO(cashier)
	return &dto, nil
}

// GetCashier 获取收银员及其订单图，未命中返回 (nil, nil)
func (s *CashierService) GetCashier(ctx context.Context, id uint) (*CashierDTO, error) {
	cashier, err := s.cashiers.GetWithOrders(ctx, id)
	if err != nil {
		return nil, err
	}
	if cashier == nil {
		return nil, nil
	}

	dto := NewCashierDTO(cashier)
	return &dto, nil
}
