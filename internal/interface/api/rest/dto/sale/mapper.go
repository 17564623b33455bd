package sale

import (
	"errors"

	"sales-manager-api/internal/domain/sale"
	"sales-manager-api/internal/infrastructure/money"
	"sales-manager-api/internal/infrastructure/tz"
)

// ToResponseSale applies the display transforms: expedition date as a Bogota
// calendar date, price as a Colombian-peso string, owner exposed by username
// only.
func ToResponseSale(sDomain sale.Sale) Response {
	var s = Response{
		ID:                    sDomain.UUID.String(),
		ClientID:              sDomain.ClientID,
		ClientName:            sDomain.ClientName,
		ClientExpeditionDate:  tz.FormatDate(sDomain.ClientExpeditionDate),
		ClientExpeditionPlace: sDomain.ClientExpeditionPlace,
		Phone:                 sDomain.Phone,
		Address:               sDomain.Address,
		Product: ProductResponse{
			IMEIOrSerial: sDomain.Product.IMEIOrSerial,
			Description:  sDomain.Product.Description,
			Price:        money.FormatCOP(sDomain.Product.Price),
		},
		PaymentPlan: sDomain.PaymentPlan,
		User:        OwnerResponse{Username: sDomain.OwnerUsername},
		SaleDate:    tz.FormatDateTime(sDomain.SaleDate),
	}

	return s
}

func ToResponseSales(ssDomain sale.Sales) Responses {
	ss := make(Responses, len(ssDomain))
	for idx, s := range ssDomain {
		ss[idx] = ToResponseSale(*s)
	}

	return ss
}

func ToDomainSale(req CreateRequest) (sale.Sale, error) {
	d, err := tz.ParseDate(req.ClientExpeditionDate)
	if err != nil {
		return sale.Sale{}, errors.New("invalid clientExpeditionDate format, want YYYY-MM-DD")
	}

	var s = sale.Sale{
		ClientID:              req.ClientID,
		ClientName:            req.ClientName,
		ClientExpeditionDate:  d,
		ClientExpeditionPlace: req.ClientExpeditionPlace,
		Phone:                 req.Phone,
		Address:               req.Address,
		Product: sale.Product{
			IMEIOrSerial: req.Product.IMEIOrSerial,
			Description:  req.Product.Description,
			Price:        req.Product.Price,
		},
		PaymentPlan: req.PaymentPlan,
	}

	return s, nil
}

func ToDomainPatch(req UpdateRequest) (sale.Patch, error) {
	var p = sale.Patch{
		ClientName:            req.ClientName,
		ClientExpeditionPlace: req.ClientExpeditionPlace,
		Phone:                 req.Phone,
		Address:               req.Address,
		PaymentPlan:           req.PaymentPlan,
	}

	if req.ClientExpeditionDate != "" {
		d, err := tz.ParseDate(req.ClientExpeditionDate)
		if err != nil {
			return sale.Patch{}, errors.New("invalid clientExpeditionDate format, want YYYY-MM-DD")
		}
		p.ClientExpeditionDate = d
	}

	if req.Product != nil {
		p.Product = &sale.Product{
			IMEIOrSerial: req.Product.IMEIOrSerial,
			Description:  req.Product.Description,
			Price:        req.Product.Price,
		}
	}

	return p, nil
}
