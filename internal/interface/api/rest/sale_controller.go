package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sales-manager-api/internal/application/ports"
	saleDB "sales-manager-api/internal/infrastructure/db/postgres/sale"
	"sales-manager-api/internal/infrastructure/jwt"
	"sales-manager-api/internal/interface/api/rest/dto/sale"
	"sales-manager-api/internal/interface/api/rest/middleware"
	"sales-manager-api/internal/interface/api/rest/validator"
)

type SaleController struct {
	saleService ports.SaleService
	logger      *zap.Logger
}

func NewSaleController(
	r *gin.Engine,
	saleService ports.SaleService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *SaleController {
	sc := &SaleController{
		saleService: saleService,
		logger:      logger,
	}

	guard := middleware.AuthMiddleware(jwtService)
	r.GET(RouteSales, guard, sc.GetSalesHandler)
	r.GET(RouteSale, guard, sc.GetSaleHandler)
	r.POST(RouteSales, guard, sc.CreateSaleHandler)
	r.PUT(RouteSale, guard, sc.UpdateSaleHandler)
	r.DELETE(RouteSale, guard, sc.DeleteSaleHandler)

	return sc
}

func (sc *SaleController) GetSalesHandler(c *gin.Context) {
	sales, err := sc.saleService.FindSales(c.Request.Context())
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get sales"},
		)
		sc.logger.Error("FindSales() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, sale.ToResponseSales(sales))
}

func (sc *SaleController) GetSaleHandler(c *gin.Context) {
	ok, saleUUID := validator.IsUUID(c.Param("sale_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "sale_id must be a valid UUID"},
		)
		return
	}

	s, err := sc.saleService.FindSaleByID(c.Request.Context(), saleUUID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a sale"},
		)
		sc.logger.Error("FindSaleByID() error", zap.Error(err))
		return
	}

	if s == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "sale not found"},
		)
		return
	}

	c.JSON(http.StatusOK, sale.ToResponseSale(*s))
}

func (sc *SaleController) CreateSaleHandler(c *gin.Context) {
	var req sale.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateSale(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	sDomain, err := sale.ToDomainSale(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	ok, ownerUUID := validator.IsUUID(c.GetString(middleware.CtxUserID))
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "invalid token subject"},
		)
		return
	}

	s, err := sc.saleService.CreateSale(c.Request.Context(), sDomain, ownerUUID)
	if err != nil {
		if errors.Is(err, saleDB.ErrClientIDExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a sale"},
		)
		sc.logger.Error("CreateSale() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, sale.ToResponseSale(*s))
}

func (sc *SaleController) UpdateSaleHandler(c *gin.Context) {
	ok, saleUUID := validator.IsUUID(c.Param("sale_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "sale_id must be a valid UUID"},
		)
		return
	}

	var req sale.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateSalePatch(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	patch, err := sale.ToDomainPatch(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	s, err := sc.saleService.UpdateSale(c.Request.Context(), saleUUID, patch)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to update a sale"},
		)
		sc.logger.Error("UpdateSale() error", zap.Error(err))
		return
	}

	if s == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "sale not found"},
		)
		return
	}

	c.JSON(http.StatusOK, sale.ToResponseSale(*s))
}

func (sc *SaleController) DeleteSaleHandler(c *gin.Context) {
	ok, saleUUID := validator.IsUUID(c.Param("sale_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "sale_id must be a valid UUID"},
		)
		return
	}

	deleted, err := sc.saleService.DeleteSale(c.Request.Context(), saleUUID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to delete sale"},
		)
		sc.logger.Error("DeleteSale() error", zap.Error(err))
		return
	}

	if !deleted {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "sale not found"},
		)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sale deleted successfully"})
}
