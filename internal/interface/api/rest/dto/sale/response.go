package sale

type (
	ProductResponse struct {
		IMEIOrSerial string `json:"imeiOrSerial"`
		Description  string `json:"description,omitempty"`
		Price        string `json:"price"`
	}
	OwnerResponse struct {
		Username string `json:"username"`
	}
	Response struct {
		ID                    string          `json:"id"`
		ClientID              string          `json:"clientId"`
		ClientName            string          `json:"clientName"`
		ClientExpeditionDate  string          `json:"clientExpeditionDate"`
		ClientExpeditionPlace string          `json:"clientExpeditionPlace"`
		Phone                 string          `json:"phone"`
		Address               string          `json:"address"`
		Product               ProductResponse `json:"product"`
		PaymentPlan           int             `json:"paymentPlan"`
		User                  OwnerResponse   `json:"user"`
		SaleDate              string          `json:"saleDate"`
	}
	Responses []Response
)
