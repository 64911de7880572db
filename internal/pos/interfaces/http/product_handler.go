// Package http 提供门店收银系统的 HTTP 处理器
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/cornerstore/internal/pos/application"
	"github.com/wyfcoding/cornerstore/internal/pos/domain"
	"github.com/wyfcoding/cornerstore/pkg/logger"
)

// ProductHandler 商品 HTTP 处理器
type ProductHandler struct {
	app *application.CatalogService
}

// NewProductHandler 创建商品处理器实例
func NewProductHandler(app *application.CatalogService) *ProductHandler {
	return &ProductHandler{app: app}
}

// RegisterRoutes 注册路由
func (h *ProductHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/products", h.ListProducts)
	router.POST("/products", h.CreateProduct)
	router.PUT("/products/:id", h.UpdateProduct)
}

// ProductRequest 商品请求体
type ProductRequest struct {
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Brand       string          `json:"brand"`
	CategoryID  uint            `json:"categoryId"`
}

// ListProducts 列出商品，支持 search 关键字过滤
func (h *ProductHandler) ListProducts(c *gin.Context) {
	search := c.Query("search")

	products, err := h.app.SearchProducts(c.Request.Context(), search)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list products", "search", search, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// CreateProduct 新建商品
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd := application.CreateProductCommand{
		ProductName: req.ProductName,
		Price:       req.Price,
		Brand:       req.Brand,
		CategoryID:  req.CategoryID,
	}

	dto, err := h.app.CreateProduct(c.Request.Context(), cmd)
	if err != nil {
		if errors.Is(err, domain.ErrNegativePrice) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error(c.Request.Context(), "Failed to create product", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", fmt.Sprintf("/products/%d", dto.ID))
	c.JSON(http.StatusCreated, dto)
}

// UpdateProduct 更新商品的四个业务字段
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd := application.CreateProductCommand{
		ProductName: req.ProductName,
		Price:       req.Price,
		Brand:       req.Brand,
		CategoryID:  req.CategoryID,
	}

	if err := h.app.UpdateProduct(c.Request.Context(), uint(id), cmd); err != nil {
		var notFound *domain.NotFoundError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, domain.ErrNegativePrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error(c.Request.Context(), "Failed to update product", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
