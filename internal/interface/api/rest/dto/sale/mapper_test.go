package sale

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "sales-manager-api/internal/domain/sale"
	"sales-manager-api/internal/infrastructure/tz"
)

func TestToResponseSale_DisplayTransforms(t *testing.T) {
	expedition, err := tz.ParseDate("2024-03-15")
	require.NoError(t, err)

	saleDate := time.Date(2024, 3, 16, 20, 0, 0, 0, time.UTC)
	id := uuid.New()

	got := ToResponseSale(domain.Sale{
		UUID:                  id,
		ClientID:              "cc-100200300",
		ClientName:            "Ana Pérez",
		ClientExpeditionDate:  expedition,
		ClientExpeditionPlace: "Bogotá",
		Phone:                 "3001112233",
		Address:               "Calle 1 # 2-3",
		Product: domain.Product{
			IMEIOrSerial: "356938035643809",
			Description:  "smartphone",
			Price:        1500000,
		},
		PaymentPlan:   3,
		OwnerUsername: "vendedor1",
		SaleDate:      saleDate,
	})

	assert.Equal(t, id.String(), got.ID)
	assert.Equal(t, "2024-03-15", got.ClientExpeditionDate, "date rendered in the reference timezone")
	assert.Equal(t, "$ 1.500.000,00", got.Product.Price, "price rendered as Colombian pesos")
	assert.Equal(t, "vendedor1", got.User.Username, "owner exposed by username only")
	assert.Equal(t, "2024-03-16 15:00:00", got.SaleDate)
}

func TestToDomainSale_BadDate(t *testing.T) {
	req := CreateRequest{
		ClientExpeditionDate: "15/03/2024",
		Product:              &ProductRequest{IMEIOrSerial: "x", Price: 1},
	}

	_, err := ToDomainSale(req)
	require.Error(t, err)
}

func TestToDomainPatch(t *testing.T) {
	t.Run("empty patch keeps zero values", func(t *testing.T) {
		p, err := ToDomainPatch(UpdateRequest{})
		require.NoError(t, err)
		assert.True(t, p.ClientExpeditionDate.IsZero())
		assert.Nil(t, p.Product)
		assert.Zero(t, p.PaymentPlan)
	})

	t.Run("date normalized to Bogota midnight", func(t *testing.T) {
		p, err := ToDomainPatch(UpdateRequest{ClientExpeditionDate: "2024-03-15"})
		require.NoError(t, err)
		assert.Equal(t, "2024-03-15", tz.FormatDate(p.ClientExpeditionDate))
	})

	t.Run("bad date rejected", func(t *testing.T) {
		_, err := ToDomainPatch(UpdateRequest{ClientExpeditionDate: "not-a-date"})
		require.Error(t, err)
	})
}
