package sale

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"sales-manager-api/internal/domain/sale"
	"sales-manager-api/internal/domain/user"
	"sales-manager-api/internal/infrastructure/db/postgres"
)

// ErrClientIDExists is returned when the unique constraint on client_id fires.
var ErrClientIDExists = errors.New("a sale with this clientId already exists")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) sale.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchSales(ctx context.Context) (sale.Sales, error) {
	rows, err := r.db.Query(ctx, SelectSales)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ss Sales
	for rows.Next() {
		s := new(Sale)

		if err = rows.Scan(
			&s.ID,
			&s.UUID,
			&s.ClientID,
			&s.ClientName,
			&s.ClientExpeditionDate,
			&s.ClientExpeditionPlace,
			&s.Phone,
			&s.Address,
			&s.ProductIMEIOrSerial,
			&s.ProductDescription,
			&s.ProductPrice,
			&s.PaymentPlan,
			&s.OwnerUUID,
			&s.OwnerUsername,
			&s.SaleDate,
		); err != nil {
			return nil, err
		}

		ss = append(ss, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ss), nil
}

func (r *Repository) FetchSaleByUUID(ctx context.Context, uuid sale.UUID) (*sale.Sale, error) {
	s := new(Sale)
	err := r.db.QueryRow(ctx, SelectSaleByUUID, uuid.String()).Scan(
		&s.ID,
		&s.UUID,
		&s.ClientID,
		&s.ClientName,
		&s.ClientExpeditionDate,
		&s.ClientExpeditionPlace,
		&s.Phone,
		&s.Address,
		&s.ProductIMEIOrSerial,
		&s.ProductDescription,
		&s.ProductPrice,
		&s.PaymentPlan,
		&s.OwnerUUID,
		&s.OwnerUsername,
		&s.SaleDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(s), err
}

func (r *Repository) CreateSale(ctx context.Context, req sale.Sale, ownerID user.ID) error {
	var description *string
	if req.Product.Description != "" {
		description = &req.Product.Description
	}

	_, err := r.db.Exec(
		ctx,
		InsertSale,
		req.UUID, req.ClientID, req.ClientName, req.ClientExpeditionDate, req.ClientExpeditionPlace,
		req.Phone, req.Address, req.Product.IMEIOrSerial, description, req.Product.Price,
		req.PaymentPlan, uint64(ownerID), req.SaleDate,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return ErrClientIDExists
		}
		return err
	}

	return nil
}

func (r *Repository) UpdateSale(ctx context.Context, req sale.Sale) error {
	var description *string
	if req.Product.Description != "" {
		description = &req.Product.Description
	}

	_, err := r.db.Exec(
		ctx,
		UpdateSaleByUUID,
		req.ClientName, req.ClientExpeditionDate, req.ClientExpeditionPlace,
		req.Phone, req.Address, req.Product.IMEIOrSerial, description, req.Product.Price,
		req.PaymentPlan, req.UUID,
	)

	return err
}

func (r *Repository) DeleteSale(ctx context.Context, uuid sale.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteSaleByUUID, uuid)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
