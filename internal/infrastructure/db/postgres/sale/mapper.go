package sale

import (
	domain "sales-manager-api/internal/domain/sale"
)

func fromDBModel(model *Sale) *domain.Sale {
	var description string
	if model.ProductDescription != nil {
		description = *model.ProductDescription
	}

	var s = &domain.Sale{
		UUID:                  model.UUID,
		ClientID:              model.ClientID,
		ClientName:            model.ClientName,
		ClientExpeditionDate:  model.ClientExpeditionDate,
		ClientExpeditionPlace: model.ClientExpeditionPlace,
		Phone:                 model.Phone,
		Address:               model.Address,
		Product: domain.Product{
			IMEIOrSerial: model.ProductIMEIOrSerial,
			Description:  description,
			Price:        model.ProductPrice,
		},
		PaymentPlan:   model.PaymentPlan,
		OwnerUUID:     model.OwnerUUID,
		OwnerUsername: model.OwnerUsername,
		SaleDate:      model.SaleDate,
	}

	return s
}

func fromDBModels(models *Sales) domain.Sales {
	ss := make(domain.Sales, len(*models))
	for idx, s := range *models {
		ss[idx] = fromDBModel(s)
	}

	return ss
}
