package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/cornerstore/internal/pos/application"
	"github.com/wyfcoding/cornerstore/pkg/logger"
)

// CashierHandler 收银员 HTTP 处理器
type CashierHandler struct {
	app *application.CashierService
}

// NewCashierHandler 创建收银员处理器实例
func NewCashierHandler(app *application.CashierService) *CashierHandler {
	return &CashierHandler{app: app}
}

// RegisterRoutes 注册路由
func (h *CashierHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/cashiers", h.CreateCashier)
	router.GET("/cashiers/:id", h.GetCashier)
}

// CashierRequest 收银员请求体
type CashierRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CreateCashier 新建收银员
func (h *CashierHandler) CreateCashier(c *gin.Context) {
	var req CashierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd := application.CreateCashierCommand{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	dto, err := h.app.CreateCashier(c.Request.Context(), cmd)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to create cashier", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", fmt.Sprintf("/cashiers/%d", dto.ID))
	c.JSON(http.StatusCreated, dto)
}

// GetCashier 获取收银员及其订单图
func (h *CashierHandler) GetCashier(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cashier id"})
		return
	}

	dto, err := h.app.GetCashier(c.Request.Context(), uint(id))
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to get cashier", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if dto == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cashier not found"})
		return
	}

	c.JSON(http.StatusOK, dto)
}
