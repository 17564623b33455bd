package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"sales-manager-api/internal/application/ports"
	domain "sales-manager-api/internal/domain/sale"
	userDomain "sales-manager-api/internal/domain/user"
	"sales-manager-api/internal/infrastructure/mq"
	"sales-manager-api/internal/interface/api/rest/dto/sale"
)

type SaleService struct {
	saleRepository domain.Repository
	userRepository userDomain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewSaleService(
	saleRepository domain.Repository,
	userRepository userDomain.Repository,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.SaleService {
	return &SaleService{
		saleRepository: saleRepository,
		userRepository: userRepository,
		mq:             rabbit,
		mCounter:       mCounter,
	}
}

func (ss *SaleService) FindSales(ctx context.Context) (domain.Sales, error) {
	sales, err := ss.saleRepository.FetchSales(ctx)
	if err != nil {
		return nil, err
	}

	return sales, nil
}

func (ss *SaleService) FindSaleByID(ctx context.Context, saleUUID domain.UUID) (*domain.Sale, error) {
	s, err := ss.saleRepository.FetchSaleByUUID(ctx, saleUUID)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// CreateSale persists a new sale owned by the authenticated caller and reads
// it back with the creator's username resolved. The expedition date arrives
// already pinned to Bogota midnight by the DTO layer.
func (ss *SaleService) CreateSale(ctx context.Context, s domain.Sale, ownerUUID userDomain.UUID) (*domain.Sale, error) {
	ownerID, err := ss.userRepository.FetchInternalID(ctx, ownerUUID)
	if err != nil {
		return nil, err
	}

	s.UUID = uuid.New()
	s.OwnerUUID = ownerUUID
	s.SaleDate = time.Now()
	if s.PaymentPlan == 0 {
		s.PaymentPlan = 1
	}

	if err = ss.saleRepository.CreateSale(ctx, s, ownerID); err != nil {
		return nil, err
	}

	created, err := ss.saleRepository.FetchSaleByUUID(ctx, s.UUID)
	if err != nil {
		return nil, err
	}

	if created != nil {
		ss.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPost,
			SaleID:  created.UUID.String(),
			Payload: sale.ToResponseSale(*created),
		}
	}

	ss.mCounter.WithLabelValues("sale_created_total").Inc()

	return created, nil
}

// UpdateSale merges the patch over the stored sale. A zero patch value means
// "not provided" and is skipped, including paymentPlan 0; a present product
// replaces the stored product wholesale. The owner is never altered here.
func (ss *SaleService) UpdateSale(ctx context.Context, saleUUID domain.UUID, patch domain.Patch) (*domain.Sale, error) {
	s, err := ss.saleRepository.FetchSaleByUUID(ctx, saleUUID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}

	if patch.ClientName != "" {
		s.ClientName = patch.ClientName
	}
	if !patch.ClientExpeditionDate.IsZero() {
		s.ClientExpeditionDate = patch.ClientExpeditionDate
	}
	if patch.ClientExpeditionPlace != "" {
		s.ClientExpeditionPlace = patch.ClientExpeditionPlace
	}
	if patch.Phone != "" {
		s.Phone = patch.Phone
	}
	if patch.Address != "" {
		s.Address = patch.Address
	}
	if patch.Product != nil {
		s.Product = *patch.Product
	}
	if patch.PaymentPlan != 0 {
		s.PaymentPlan = patch.PaymentPlan
	}

	if err = ss.saleRepository.UpdateSale(ctx, *s); err != nil {
		return nil, err
	}

	updated, err := ss.saleRepository.FetchSaleByUUID(ctx, saleUUID)
	if err != nil {
		return nil, err
	}

	if updated != nil {
		ss.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPut,
			SaleID:  updated.UUID.String(),
			Payload: sale.ToResponseSale(*updated),
		}
	}

	ss.mCounter.WithLabelValues("sale_updated_total").Inc()

	return updated, nil
}

func (ss *SaleService) DeleteSale(ctx context.Context, saleUUID domain.UUID) (bool, error) {
	s, err := ss.saleRepository.FetchSaleByUUID(ctx, saleUUID)
	if err != nil {
		return false, err
	}
	if s == nil {
		return false, nil
	}

	deleted, err := ss.saleRepository.DeleteSale(ctx, saleUUID)
	if err != nil {
		return false, err
	}

	if deleted {
		ss.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodDelete,
			SaleID:  s.UUID.String(),
			Payload: sale.ToResponseSale(*s),
		}

		ss.mCounter.WithLabelValues("sale_deleted_total").Inc()
	}

	return deleted, nil
}
