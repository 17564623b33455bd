package sale

type (
	ProductRequest struct {
		IMEIOrSerial string  `json:"imeiOrSerial"`
		Description  string  `json:"description"`
		Price        float64 `json:"price"`
	}
	CreateRequest struct {
		ClientID              string          `json:"clientId"`
		ClientName            string          `json:"clientName"`
		ClientExpeditionDate  string          `json:"clientExpeditionDate"`
		ClientExpeditionPlace string          `json:"clientExpeditionPlace"`
		Phone                 string          `json:"phone"`
		Address               string          `json:"address"`
		Product               *ProductRequest `json:"product"`
		PaymentPlan           int             `json:"paymentPlan"`
	}
	// UpdateRequest is a partial payload: zero values count as "not provided"
	// and leave the stored field as-is, matching the service merge rules.
	UpdateRequest struct {
		ClientName            string          `json:"clientName"`
		ClientExpeditionDate  string          `json:"clientExpeditionDate"`
		ClientExpeditionPlace string          `json:"clientExpeditionPlace"`
		Phone                 string          `json:"phone"`
		Address               string          `json:"address"`
		Product               *ProductRequest `json:"product"`
		PaymentPlan           int             `json:"paymentPlan"`
	}
)
