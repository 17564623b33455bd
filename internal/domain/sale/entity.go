package sale

import (
	"time"

	"github.com/google/uuid"

	"sales-manager-api/internal/domain/user"
)

type (
	ID   uint64
	UUID = uuid.UUID

	Product struct {
		IMEIOrSerial string
		Description  string
		Price        float64
	}

	Sale struct {
		UUID                  UUID
		ClientID              string
		ClientName            string
		ClientExpeditionDate  time.Time
		ClientExpeditionPlace string
		Phone                 string
		Address               string
		Product               Product
		PaymentPlan           int

		// OwnerUUID is set once at creation from the authenticated caller.
		OwnerUUID     user.UUID
		OwnerUsername string

		SaleDate time.Time
	}
	Sales []*Sale
)

// Patch carries a partial update. Zero values mean "not provided" and leave
// the stored field untouched; a nil Product leaves the product untouched,
// a non-nil one replaces it wholesale.
type Patch struct {
	ClientName            string
	ClientExpeditionDate  time.Time
	ClientExpeditionPlace string
	Phone                 string
	Address               string
	Product               *Product
	PaymentPlan           int
}
