package sale

import (
	"context"

	"sales-manager-api/internal/domain/user"
)

type Repository interface {
	FetchSales(ctx context.Context) (Sales, error)
	FetchSaleByUUID(ctx context.Context, uuid UUID) (*Sale, error)
	CreateSale(ctx context.Context, req Sale, ownerID user.ID) error
	UpdateSale(ctx context.Context, req Sale) error
	DeleteSale(ctx context.Context, uuid UUID) (bool, error)
}
