package sale

import (
	"time"

	"github.com/google/uuid"
)

type (
	Sale struct {
		ID                    uint64
		UUID                  uuid.UUID
		ClientID              string
		ClientName            string
		ClientExpeditionDate  time.Time
		ClientExpeditionPlace string
		Phone                 string
		Address               string
		ProductIMEIOrSerial   string
		ProductDescription    *string
		ProductPrice          float64
		PaymentPlan           int
		OwnerUUID             uuid.UUID
		OwnerUsername         string
		SaleDate              time.Time
	}
	Sales []*Sale
)
