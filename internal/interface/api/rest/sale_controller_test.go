package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sales-manager-api/internal/application/ports"
	domain "sales-manager-api/internal/domain/sale"
	userDomain "sales-manager-api/internal/domain/user"
	saleDB "sales-manager-api/internal/infrastructure/db/postgres/sale"
	jwtSvc "sales-manager-api/internal/infrastructure/jwt"
	"sales-manager-api/internal/infrastructure/tz"
	"sales-manager-api/internal/interface/api/rest/dto/sale"
	"sales-manager-api/internal/interface/api/rest/middleware"
)

type FakeSaleService struct {
	FindSalesFunc    func(ctx context.Context) (domain.Sales, error)
	FindSaleByIDFunc func(ctx context.Context, id domain.UUID) (*domain.Sale, error)
	CreateSaleFunc   func(ctx context.Context, s domain.Sale, ownerUUID userDomain.UUID) (*domain.Sale, error)
	UpdateSaleFunc   func(ctx context.Context, id domain.UUID, patch domain.Patch) (*domain.Sale, error)
	DeleteSaleFunc   func(ctx context.Context, id domain.UUID) (bool, error)
}

func (f *FakeSaleService) FindSales(ctx context.Context) (domain.Sales, error) {
	if f.FindSalesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindSalesFunc(ctx)
}
func (f *FakeSaleService) FindSaleByID(ctx context.Context, id domain.UUID) (*domain.Sale, error) {
	if f.FindSaleByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindSaleByIDFunc(ctx, id)
}
func (f *FakeSaleService) CreateSale(ctx context.Context, s domain.Sale, ownerUUID userDomain.UUID) (*domain.Sale, error) {
	if f.CreateSaleFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateSaleFunc(ctx, s, ownerUUID)
}
func (f *FakeSaleService) UpdateSale(ctx context.Context, id domain.UUID, patch domain.Patch) (*domain.Sale, error) {
	if f.UpdateSaleFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateSaleFunc(ctx, id, patch)
}
func (f *FakeSaleService) DeleteSale(ctx context.Context, id domain.UUID) (bool, error) {
	if f.DeleteSaleFunc == nil {
		return false, errors.New("not used")
	}
	return f.DeleteSaleFunc(ctx, id)
}

func setupSaleRouter(t *testing.T, ss ports.SaleService) (*gin.Engine, *jwtSvc.Service, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	secret := "test-secret"
	j := jwtSvc.New(secret)

	sc := &SaleController{
		saleService: ss,
		logger:      zap.NewNop(),
	}

	guard := middleware.AuthMiddleware(j)
	r.GET(RouteSales, guard, sc.GetSalesHandler)
	r.GET(RouteSale, guard, sc.GetSaleHandler)
	r.POST(RouteSales, guard, sc.CreateSaleHandler)
	r.PUT(RouteSale, guard, sc.UpdateSaleHandler)
	r.DELETE(RouteSale, guard, sc.DeleteSaleHandler)

	return r, j, secret
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func bearer(t *testing.T, j *jwtSvc.Service, userID string) map[string]string {
	t.Helper()
	tok, err := j.GenerateJWT(userID, time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

// SignJWT builds tokens outside the service under test, for tamper and
// expiry cases.
func SignJWT(secret, userID string, exp time.Duration) (string, error) {
	type Claims struct {
		UserID string `json:"user_id"`
		jwtv5.RegisteredClaims
	}
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(exp)),
		},
	}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func someDomainSale(t *testing.T) *domain.Sale {
	t.Helper()
	expedition, err := tz.ParseDate("2024-03-15")
	require.NoError(t, err)

	return &domain.Sale{
		UUID:                  uuid.New(),
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
		PaymentPlan:   2,
		OwnerUUID:     uuid.New(),
		OwnerUsername: "vendedor1",
		SaleDate:      time.Now(),
	}
}

func validCreateRequest() sale.CreateRequest {
	return sale.CreateRequest{
		ClientID:              "cc-100200300",
		ClientName:            "Ana Pérez",
		ClientExpeditionDate:  "2024-03-15",
		ClientExpeditionPlace: "Bogotá",
		Phone:                 "3001112233",
		Address:               "Calle 1 # 2-3",
		Product: &sale.ProductRequest{
			IMEIOrSerial: "356938035643809",
			Price:        1500000,
		},
	}
}

func TestTokenGuard(t *testing.T) {
	ss := &FakeSaleService{
		FindSalesFunc: func(ctx context.Context) (domain.Sales, error) { return domain.Sales{}, nil },
	}
	r, j, secret := setupSaleRouter(t, ss)

	t.Run("missing Authorization header -> 403", func(t *testing.T) {
		rr := doReq(t, r, http.MethodGet, RouteSales, nil, nil)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("non-bearer header -> 401", func(t *testing.T) {
		rr := doReq(t, r, http.MethodGet, RouteSales, nil, map[string]string{"Authorization": "Basic abc"})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("tampered signature -> 401", func(t *testing.T) {
		tok, err := SignJWT("other-secret", uuid.NewString(), time.Hour)
		require.NoError(t, err)
		rr := doReq(t, r, http.MethodGet, RouteSales, nil, map[string]string{"Authorization": "Bearer " + tok})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("expired token -> 401", func(t *testing.T) {
		tok, err := SignJWT(secret, uuid.NewString(), -time.Minute)
		require.NoError(t, err)
		rr := doReq(t, r, http.MethodGet, RouteSales, nil, map[string]string{"Authorization": "Bearer " + tok})
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token grants access to every protected route", func(t *testing.T) {
		h := bearer(t, j, uuid.NewString())
		for _, route := range []struct {
			method string
			path   string
		}{
			{http.MethodGet, RouteSales},
			{http.MethodGet, RouteSales + "/not-a-uuid"},
			{http.MethodDelete, RouteSales + "/not-a-uuid"},
		} {
			rr := doReq(t, r, route.method, route.path, nil, h)
			assert.NotEqual(t, http.StatusForbidden, rr.Code, route.path)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code, route.path)
		}
	})
}

func TestSaleController_GetSalesHandler(t *testing.T) {
	t.Run("200 with display transforms applied", func(t *testing.T) {
		s := someDomainSale(t)
		ss := &FakeSaleService{
			FindSalesFunc: func(ctx context.Context) (domain.Sales, error) {
				return domain.Sales{s}, nil
			},
		}
		r, j, _ := setupSaleRouter(t, ss)

		rr := doReq(t, r, http.MethodGet, RouteSales, nil, bearer(t, j, uuid.NewString()))
		require.Equal(t, http.StatusOK, rr.Code)

		var resp []sale.Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "2024-03-15", resp[0].ClientExpeditionDate)
		assert.Equal(t, "$ 1.500.000,00", resp[0].Product.Price)
		assert.Equal(t, "vendedor1", resp[0].User.Username)
	})

	t.Run("500 when service fails", func(t *testing.T) {
		ss := &FakeSaleService{
			FindSalesFunc: func(ctx context.Context) (domain.Sales, error) {
				return nil, errors.New("db error")
			},
		}
		r, j, _ := setupSaleRouter(t, ss)

		rr := doReq(t, r, http.MethodGet, RouteSales, nil, bearer(t, j, uuid.NewString()))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestSaleController_GetSaleHandler(t *testing.T) {
	s := someDomainSale(t)

	tests := []struct {
		name     string
		saleID   string
		find     func(ctx context.Context, id domain.UUID) (*domain.Sale, error)
		wantCode int
	}{
		{
			name:     "bad uuid -> 400",
			saleID:   "not-a-uuid",
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "not found -> 404",
			saleID: uuid.NewString(),
			find: func(ctx context.Context, id domain.UUID) (*domain.Sale, error) {
				return nil, nil
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "store error -> 500",
			saleID: uuid.NewString(),
			find: func(ctx context.Context, id domain.UUID) (*domain.Sale, error) {
				return nil, errors.New("db error")
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:   "200 success",
			saleID: s.UUID.String(),
			find: func(ctx context.Context, id domain.UUID) (*domain.Sale, error) {
				require.Equal(t, s.UUID, id)
				return s, nil
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, j, _ := setupSaleRouter(t, &FakeSaleService{FindSaleByIDFunc: tt.find})

			rr := doReq(t, r, http.MethodGet, fmt.Sprintf("%s/%s", RouteSales, tt.saleID), nil, bearer(t, j, uuid.NewString()))
			require.Equal(t, tt.wantCode, rr.Code)

			if tt.wantCode == http.StatusOK {
				var resp sale.Response
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, s.ClientID, resp.ClientID)
				assert.Equal(t, "$ 1.500.000,00", resp.Product.Price)
			}
		})
	}
}

func TestSaleController_CreateSaleHandler(t *testing.T) {
	callerUUID := uuid.New()

	t.Run("201 with owner taken from the token", func(t *testing.T) {
		created := someDomainSale(t)
		var gotOwner userDomain.UUID
		ss := &FakeSaleService{
			CreateSaleFunc: func(ctx context.Context, s domain.Sale, ownerUUID userDomain.UUID) (*domain.Sale, error) {
				gotOwner = ownerUUID
				return created, nil
			},
		}
		r, j, _ := setupSaleRouter(t, ss)

		rr := doReq(t, r, http.MethodPost, RouteSales, validCreateRequest(), bearer(t, j, callerUUID.String()))
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, callerUUID, gotOwner)

		var resp sale.Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "2024-03-15", resp.ClientExpeditionDate)
	})

	t.Run("missing product price -> 400", func(t *testing.T) {
		req := validCreateRequest()
		req.Product = &sale.ProductRequest{IMEIOrSerial: "356938035643809"}
		r, j, _ := setupSaleRouter(t, &FakeSaleService{})

		rr := doReq(t, r, http.MethodPost, RouteSales, req, bearer(t, j, callerUUID.String()))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("non-numeric price -> 400", func(t *testing.T) {
		r, j, _ := setupSaleRouter(t, &FakeSaleService{})

		body := `{"clientId":"cc-1","product":{"price":"lots"}}`
		rr := doReq(t, r, http.MethodPost, RouteSales, body, bearer(t, j, callerUUID.String()))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate clientId -> 400", func(t *testing.T) {
		ss := &FakeSaleService{
			CreateSaleFunc: func(ctx context.Context, s domain.Sale, ownerUUID userDomain.UUID) (*domain.Sale, error) {
				return nil, saleDB.ErrClientIDExists
			},
		}
		r, j, _ := setupSaleRouter(t, ss)

		rr := doReq(t, r, http.MethodPost, RouteSales, validCreateRequest(), bearer(t, j, callerUUID.String()))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("store error -> 500", func(t *testing.T) {
		ss := &FakeSaleService{
			CreateSaleFunc: func(ctx context.Context, s domain.Sale, ownerUUID userDomain.UUID) (*domain.Sale, error) {
				return nil, errors.New("db error")
			},
		}
		r, j, _ := setupSaleRouter(t, ss)

		rr := doReq(t, r, http.MethodPost, RouteSales, validCreateRequest(), bearer(t, j, callerUUID.String()))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestSaleController_UpdateSaleHandler(t *testing.T) {
	s := someDomainSale(t)

	t.Run("200 with patch passed through", func(t *testing.T) {
		var gotPatch domain.Patch
		ss := &FakeSaleService{
			UpdateSaleFunc: func(ctx context.Context, id domain.UUID, patch domain.Patch) (*domain.Sale, error) {
				gotPatch = patch
				return s, nil
			},
		}
		r, j, _ := setupSaleRouter(t, ss)

		body := sale.UpdateRequest{ClientName: "Nuevo", PaymentPlan: 3}
		rr := doReq(t, r, http.MethodPut, fmt.Sprintf("%s/%s", RouteSales, s.UUID), body, bearer(t, j, uuid.NewString()))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Nuevo", gotPatch.ClientName)
		assert.Equal(t, 3, gotPatch.PaymentPlan)
	})

	t.Run("not found -> 404", func(t *testing.T) {
		ss := &FakeSaleService{
			UpdateSaleFunc: func(ctx context.Context, id domain.UUID, patch domain.Patch) (*domain.Sale, error) {
				return nil, nil
			},
		}
		r, j, _ := setupSaleRouter(t, ss)

		rr := doReq(t, r, http.MethodPut, fmt.Sprintf("%s/%s", RouteSales, uuid.NewString()), sale.UpdateRequest{ClientName: "x"}, bearer(t, j, uuid.NewString()))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("bad expedition date -> 400", func(t *testing.T) {
		r, j, _ := setupSaleRouter(t, &FakeSaleService{})

		body := sale.UpdateRequest{ClientExpeditionDate: "03/15/2024"}
		rr := doReq(t, r, http.MethodPut, fmt.Sprintf("%s/%s", RouteSales, uuid.NewString()), body, bearer(t, j, uuid.NewString()))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSaleController_DeleteSaleHandler(t *testing.T) {
	tests := []struct {
		name     string
		saleID   string
		del      func(ctx context.Context, id domain.UUID) (bool, error)
		wantCode int
	}{
		{
			name:     "bad uuid -> 400",
			saleID:   "nope",
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "not found -> 404",
			saleID: uuid.NewString(),
			del: func(ctx context.Context, id domain.UUID) (bool, error) {
				return false, nil
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "store error -> 500",
			saleID: uuid.NewString(),
			del: func(ctx context.Context, id domain.UUID) (bool, error) {
				return false, errors.New("db error")
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:   "200 confirmation",
			saleID: uuid.NewString(),
			del: func(ctx context.Context, id domain.UUID) (bool, error) {
				return true, nil
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, j, _ := setupSaleRouter(t, &FakeSaleService{DeleteSaleFunc: tt.del})

			rr := doReq(t, r, http.MethodDelete, fmt.Sprintf("%s/%s", RouteSales, tt.saleID), nil, bearer(t, j, uuid.NewString()))
			require.Equal(t, tt.wantCode, rr.Code)

			if tt.wantCode == http.StatusOK {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Contains(t, resp, "message")
			}
		})
	}
}
