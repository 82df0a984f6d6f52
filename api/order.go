package api

import (
	"strconv"
	"strings"
	"time"

	"laundry/database"
	"laundry/middleware"
	"laundry/models"
	"laundry/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderHandler 订单处理器（顾客端）
type OrderHandler struct{}

// NewOrderHandler 创建订单处理器
func NewOrderHandler() *OrderHandler {
	return &OrderHandler{}
}

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	LaundryType     string  `json:"laundry_type" binding:"required" example:"Wash-Dry-Fold"`
	WeightKg        float64 `json:"weight_kg" binding:"required,gt=0" example:"3.5"`
	PickupRequested bool    `json:"pickup_requested" example:"false"`
	FloorNumber     string  `json:"floor_number" example:"12"`
	UnitNumber      string  `json:"unit_number" example:"03"`
}

// OrderListRequest 订单列表请求
type OrderListRequest struct {
	Page      int    `form:"page" example:"1"`
	PageSize  int    `form:"page_size" example:"10"`
	Status    string `form:"status" example:"Pending"`
	StartTime string `form:"start_time" example:"2024-01-01"`
	EndTime   string `form:"end_time" example:"2024-12-31"`
}

// createOrder 校验下单参数、计算价格，并在同一事务内落单和记账。
// 记账失败会连同订单一起回滚，保证台账和订单的增量一致。
// msg 非空表示校验失败，err 非空表示存储失败
func createOrder(userID uint, req *PlaceOrderRequest) (order *models.LaundryOrder, msg string, err error) {
	req.LaundryType = strings.TrimSpace(req.LaundryType)
	if req.LaundryType == "" {
		return nil, "洗衣类型不能为空", nil
	}
	if req.WeightKg <= 0 {
		return nil, "重量必须大于 0", nil
	}
	if req.PickupRequested && (strings.TrimSpace(req.FloorNumber) == "" || strings.TrimSpace(req.UnitNumber) == "") {
		return nil, "上门取送需填写楼层和门牌号", nil
	}

	price, err := service.CalculatePrice(req.LaundryType, req.WeightKg, req.PickupRequested)
	if err != nil {
		return nil, "重量不合法", nil
	}

	newOrder := models.LaundryOrder{
		UserID:          userID,
		LaundryType:     req.LaundryType,
		WeightKg:        req.WeightKg,
		Price:           price,
		Status:          models.StatusPending,
		PaymentStatus:   models.PaymentPending,
		PickupRequested: req.PickupRequested,
	}
	if req.PickupRequested {
		newOrder.FloorNumber = strings.TrimSpace(req.FloorNumber)
		newOrder.UnitNumber = strings.TrimSpace(req.UnitNumber)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newOrder).Error; err != nil {
			return err
		}
		return service.CreditIncome(tx, time.Now(), price)
	})
	if err != nil {
		return nil, "", err
	}
	return &newOrder, "", nil
}

// Create 顾客下单
// @Summary 顾客下单
// @Description 创建一笔洗衣订单。价格按类型单价×重量计算，上门取送加收固定服务费；成功后当日营收台账同步累加。
// @Tags 订单
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlaceOrderRequest true "订单信息"
// @Success 200 {object} Response{data=models.LaundryOrder} "下单成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	order, msg, err := createOrder(userID, &req)
	if msg != "" {
		BadRequest(c, msg)
		return
	}
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "下单失败"))
		return
	}
	SuccessWithMessage(c, "下单成功", order)
}

// List 获取订单列表
// @Summary 获取自己的订单列表
// @Description 获取当前顾客的订单列表，按创建时间倒序，支持分页与状态、时间筛选
// @Tags 订单
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Param status query string false "状态筛选"
// @Param start_time query string false "开始时间 (2024-01-01)"
// @Param end_time query string false "结束时间 (2024-12-31)"
// @Success 200 {object} Response{data=PageResponse{list=[]models.LaundryOrder}} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	var req OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.LaundryOrder{}).Where("user_id = ?", userID)
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.StartTime != "" {
		if t, err := time.ParseInLocation("2006-01-02", req.StartTime, time.Local); err == nil {
			query = query.Where("created_at >= ?", t)
		}
	}
	if req.EndTime != "" {
		if t, err := time.ParseInLocation("2006-01-02", req.EndTime, time.Local); err == nil {
			t = t.Add(24*time.Hour - time.Second)
			query = query.Where("created_at <= ?", t)
		}
	}

	var total int64
	query.Count(&total)
	var list []models.LaundryOrder
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(req.PageSize).Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, PageResponse{Total: total, Page: req.Page, PageSize: req.PageSize, List: list})
}

// Get 获取单笔订单
// @Summary 获取单笔订单
// @Description 根据ID获取自己的订单详情
// @Tags 订单
// @Produce json
// @Security BearerAuth
// @Param id path int true "订单ID"
// @Success 200 {object} Response{data=models.LaundryOrder} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "订单不存在"
// @Router /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var order models.LaundryOrder
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&order).Error; err != nil {
		NotFound(c, "订单不存在")
		return
	}
	Success(c, order)
}
