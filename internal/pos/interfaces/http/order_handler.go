package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/cornerstore/internal/pos/application"
	"github.com/wyfcoding/cornerstore/internal/pos/domain"
	"github.com/wyfcoding/cornerstore/pkg/logger"
)

// OrderHandler 订单 HTTP 处理器
type OrderHandler struct {
	app *application.OrderService
}

// NewOrderHandler 创建订单处理器实例
func NewOrderHandler(app *application.OrderService) *OrderHandler {
	return &OrderHandler{app: app}
}

// RegisterRoutes 注册路由
func (h *OrderHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/orders", h.ListOrders)
	router.GET("/orders/:id", h.GetOrder)
	router.POST("/orders", h.CreateOrder)
	router.DELETE("/orders/:id", h.DeleteOrder)
}

// OrderLineRequest 订单行请求体
type OrderLineRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// OrderRequest 订单请求体
type OrderRequest struct {
	CashierID     uint               `json:"cashierId"`
	PaidOnDate    *time.Time         `json:"paidOnDate"`
	OrderProducts []OrderLineRequest `json:"orderProducts"`
}

// GetOrder 获取订单完整图
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	dto, err := h.app.GetOrder(c.Request.Context(), uint(id))
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get order", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if dto == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.JSON(http.StatusOK, dto)
}

// ListOrders 列出订单，orderDate 非空时按日历日过滤；无匹配时返回空数组
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var orderDate *time.Time
	if raw := c.Query("orderDate"); raw != "" {
		parsed, err := parseOrderDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid orderDate, expected YYYY-MM-DD or RFC3339"})
			return
		}
		orderDate = &parsed
	}

	dtos, err := h.app.ListOrders(c.Request.Context(), orderDate)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list orders", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dtos)
}

// CreateOrder 新建订单，至少包含一个订单行且商品必须已存在
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd := application.CreateOrderCommand{
		CashierID:  req.CashierID,
		PaidOnDate: req.PaidOnDate,
		Lines:      make([]application.OrderLineCommand, 0, len(req.OrderProducts)),
	}
	for _, line := range req.OrderProducts {
		cmd.Lines = append(cmd.Lines, application.OrderLineCommand{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	dto, err := h.app.CreateOrder(c.Request.Context(), cmd)
	if err != nil {
		var productNotFound *domain.ProductNotFoundError
		switch {
		case errors.Is(err, domain.ErrEmptyOrder):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order must include at least one product."})
		case errors.As(err, &productNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Product with ID %d not found.", productNotFound.ID)})
		default:
			logger.Error(c.Request.Context(), "Failed to create order", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Header("Location", fmt.Sprintf("/orders/%d", dto.ID))
	c.JSON(http.StatusCreated, dto)
}

// DeleteOrder 删除订单及其订单行
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	if err := h.app.DeleteOrder(c.Request.Context(), uint(id)); err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		logger.Error(c.Request.Context(), "Failed to delete order", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// parseOrderDate 接受 YYYY-MM-DD 或完整 RFC3339 时间戳，只保留日期部分使用
func parseOrderDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
