package application

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/cornerstore/internal/pos/domain"
	"github.com/wyfcoding/cornerstore/pkg/metrics"
)

// CreateProductCommand 新建/更新商品命令
type CreateProductCommand struct {
	ProductName string
	Price       decimal.Decimal
	Brand       string
	CategoryID  uint
}

// CatalogService 商品目录应用服务
type CatalogService struct {
	products domain.ProductRepository
	metrics  *metrics.Metrics
}

// NewCatalogService 创建商品目录应用服务
func NewCatalogService(products domain.ProductRepository, m *metrics.Metrics) *CatalogService {
	return &CatalogService{products: products, metrics: m}
}

// SearchProducts 按关键字检索商品，关键字为空时返回全部
func (s *CatalogService) SearchProducts(ctx context.Context, search string) ([]ProductDTO, error) {
	products, err := s.products.Search(ctx, search)
	if err != nil {
		return nil, err
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, NewProductDTO(p))
	}
	return dtos, nil
}

// CreateProduct 新建商品
func (s *CatalogService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (*ProductDTO, error) {
	if cmd.Price.IsNegative() {
		return nil, domain.ErrNegativePrice
	}

	product := &domain.Product{
		ProductName: cmd.ProductName,
		Price:       cmd.Price,
		Brand:       cmd.Brand,
		CategoryID:  cmd.CategoryID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ProductsTotal.Inc()
	}

	// 回读一次以带上分类信息
	created, err := s.products.GetByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("product %d vanished after create", product.ID)
	}

	dto := NewProductDTO(created)
	return &dto, nil
}

// UpdateProduct 全字段覆盖更新商品，不存在时返回 NotFoundError
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, cmd CreateProductCommand) error {
	if cmd.Price.IsNegative() {
		return domain.ErrNegativePrice
	}

	existing, err := s.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &domain.NotFoundError{Resource: "product", ID: id}
	}

	existing.ProductName = cmd.ProductName
	existing.Price = cmd.Price
	existing.Brand = cmd.Brand
	existing.CategoryID = cmd.CategoryID

	return s.products.Update(ctx, existing)
}
