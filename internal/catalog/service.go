package catalog

import (
	"context"
	"fmt"
)

// Service provides business logic for product management.
type Service struct {
	repo Repository
}

// NewService constructs a catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateProduct creates a new product after enforcing the configuration
// invariants: at least one bottle per box, no negative prices or stock.
func (s *Service) CreateProduct(ctx context.Context, req CreateProductRequest) (Product, error) {
	if req.UnitsPerBox < 1 {
		return Product{}, fmt.Errorf("%w: units per box must be at least 1", ErrInvalidProduct)
	}
	if req.PurchasePricePerUnit < 0 || req.SellingPricePerUnit < 0 || req.SellingPricePerBox < 0 {
		return Product{}, fmt.Errorf("%w: prices must not be negative", ErrInvalidProduct)
	}
	if req.CurrentStockUnits < 0 || req.MinimumStockUnits < 0 {
		return Product{}, fmt.Errorf("%w: stock counts must not be negative", ErrInvalidProduct)
	}

	product := Product{
		Name:                 req.Name,
		Size:                 req.Size,
		UnitsPerBox:          req.UnitsPerBox,
		PurchasePricePerUnit: req.PurchasePricePerUnit,
		SellingPricePerUnit:  req.SellingPricePerUnit,
		SellingPricePerBox:   req.SellingPricePerBox,
		CurrentStockUnits:    req.CurrentStockUnits,
		MinimumStockUnits:    req.MinimumStockUnits,
		IsActive:             true,
	}
	return s.repo.Create(ctx, product)
}

// UpdateProduct applies the provided fields to an existing product.
func (s *Service) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (Product, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, fmt.Errorf("get product: %w", err)
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Size != nil {
		existing.Size = *req.Size
	}
	if req.UnitsPerBox != nil {
		existing.UnitsPerBox = *req.UnitsPerBox
	}
	if req.PurchasePricePerUnit != nil {
		existing.PurchasePricePerUnit = *req.PurchasePricePerUnit
	}
	if req.SellingPricePerUnit != nil {
		existing.SellingPricePerUnit = *req.SellingPricePerUnit
	}
	if req.SellingPricePerBox != nil {
		existing.SellingPricePerBox = *req.SellingPricePerBox
	}
	if req.MinimumStockUnits != nil {
		existing.MinimumStockUnits = *req.MinimumStockUnits
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if existing.UnitsPerBox < 1 {
		return Product{}, fmt.Errorf("%w: units per box must be at least 1", ErrInvalidProduct)
	}
	if existing.PurchasePricePerUnit < 0 || existing.SellingPricePerUnit < 0 || existing.SellingPricePerBox < 0 {
		return Product{}, fmt.Errorf("%w: prices must not be negative", ErrInvalidProduct)
	}
	if existing.MinimumStockUnits < 0 {
		return Product{}, fmt.Errorf("%w: stock counts must not be negative", ErrInvalidProduct)
	}

	return s.repo.Update(ctx, existing)
}

// GetProduct retrieves a product by id.
func (s *Service) GetProduct(ctx context.Context, id string) (Product, error) {
	return s.repo.Get(ctx, id)
}

// ListProducts returns products decorated with derived box counts and the
// low-stock flag, the way the product listing screen shows them.
func (s *Service) ListProducts(ctx context.Context, req ListProductsRequest) ([]ProductView, int, error) {
	products, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		boxes, err := ToBoxes(p, p.CurrentStockUnits)
		if err != nil {
			return nil, 0, fmt.Errorf("product %s: %w", p.ID, err)
		}
		views = append(views, ProductView{
			Product:    p,
			StockBoxes: boxes,
			LowStock:   IsLowStock(p),
		})
	}
	return views, total, nil
}

// LowStockProducts returns active products needing restock.
func (s *Service) LowStockProducts(ctx context.Context) ([]Product, error) {
	return s.repo.LowStock(ctx)
}
