package ports

import (
	"context"

	"sales-manager-api/internal/domain/sale"
	"sales-manager-api/internal/domain/user"
)

type SaleService interface {
	FindSales(ctx context.Context) (sale.Sales, error)
	FindSaleByID(ctx context.Context, uuid sale.UUID) (*sale.Sale, error)
	CreateSale(ctx context.Context, s sale.Sale, ownerUUID user.UUID) (*sale.Sale, error)
	UpdateSale(ctx context.Context, uuid sale.UUID, patch sale.Patch) (*sale.Sale, error)
	DeleteSale(ctx context.Context, uuid sale.UUID) (bool, error)
}
