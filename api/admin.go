package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"laundry/adminauth"
	"laundry/config"
	"laundry/database"
	"laundry/models"
	"laundry/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// getCookieOptions 根据运行模式返回 Cookie 的安全选项
// release 模式下启用 Secure（仅 HTTPS 传输），并设置 SameSite 以防止 CSRF
func getCookieOptions() (secure bool, sameSite http.SameSite) {
	cfg := config.GlobalConfig
	if cfg != nil && cfg.Server.Mode == "release" {
		secure = true
	}
	// SameSite=Lax: 防止跨站 POST 请求携带 Cookie，同时允许同站导航
	sameSite = http.SameSiteLaxMode
	return
}

func setAdminCookie(c *gin.Context, name, value string, maxAge int, httpOnly bool) {
	secure, sameSite := getCookieOptions()
	c.SetCookieData(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: httpOnly,
		SameSite: sameSite,
	})
}

// setSignedAdminCookie 设置签名后的敏感 Cookie，防止客户端篡改
func setSignedAdminCookie(c *gin.Context, name, value string, maxAge int, httpOnly bool) {
	setAdminCookie(c, name, adminauth.SignCookieValue(value), maxAge, httpOnly)
}

// escapeLikeValue 转义 LIKE 查询中的通配符 % 和 _，防止用户注入改变匹配语义
func escapeLikeValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// AdminHandler 后台管理处理器
type AdminHandler struct{}

// NewAdminHandler 创建后台管理处理器
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// getCurrentUser 获取当前登录用户信息（校验 Cookie 签名，防止篡改越权）
func getCurrentUser(c *gin.Context) (*models.User, error) {
	userID, err := adminauth.GetVerifiedAdminUserID(c)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AdminLoginRequest 后台登录请求
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin 后台登录（使用 session/cookie 方式）
// @Summary 后台登录
// @Description 员工/管理员使用用户名和密码登录后台，登录成功后设置签名 Cookie
// @Tags 后台管理
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "登录信息"
// @Success 200 {object} map[string]interface{} "登录成功，返回用户信息"
// @Failure 400 {object} map[string]interface{} "请求参数错误"
// @Failure 401 {object} map[string]interface{} "用户名或密码错误"
// @Router /admin/login [post]
func (h *AdminHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "参数错误"})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "用户名或密码错误"})
		return
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "用户名或密码错误"})
		return
	}

	// 设置 Cookie（admin_user_id、admin_role 使用签名防篡改）
	setSignedAdminCookie(c, "admin_user_id", fmt.Sprintf("%d", user.ID), 86400, true)
	setAdminCookie(c, "admin_username", user.Username, 86400, false)
	setSignedAdminCookie(c, "admin_role", user.Role, 86400, false)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "登录成功",
		"data": gin.H{
			"user_id":  user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// AdminLogout 后台登出
// @Summary 后台登出
// @Description 清除登录 Cookie
// @Tags 后台管理
// @Produce json
// @Success 200 {object} map[string]interface{} "登出成功"
// @Router /admin/logout [post]
func (h *AdminHandler) AdminLogout(c *gin.Context) {
	setAdminCookie(c, "admin_user_id", "", -1, true)
	setAdminCookie(c, "admin_username", "", -1, false)
	setAdminCookie(c, "admin_role", "", -1, false)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "已登出"})
}

// GetCurrentUserInfo 获取当前登录用户信息
// @Summary 获取当前登录用户信息
// @Description 获取当前后台登录用户的详细信息
// @Tags 后台管理
// @Produce json
// @Success 200 {object} map[string]interface{} "获取成功"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Router /admin/current-user [get]
func (h *AdminHandler) GetCurrentUserInfo(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "未登录"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// ===== 订单管理 =====

// AdminCreateOrderRequest 后台代客下单请求
type AdminCreateOrderRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	PlaceOrderRequest
}

// UpdateOrderStatusRequest 更新订单状态请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetAllOrders 获取订单列表（后台管理）
// @Summary 获取订单列表
// @Description 获取订单列表，支持分页、状态、支付状态、时间范围、用户名筛选。管理员可查看所有订单，顾客只能查看自己的。
// @Tags 后台管理-订单管理
// @Produce json
// @Param page query int false "页码，默认1"
// @Param page_size query int false "每页数量，默认20"
// @Param status query string false "状态筛选"
// @Param payment_status query string false "支付状态筛选 (Pending/Paid)"
// @Param start_time query string false "开始时间 (YYYY-MM-DD)"
// @Param end_time query string false "结束时间 (YYYY-MM-DD)"
// @Param username query string false "用户名筛选（模糊匹配，仅管理员）"
// @Param user_id query int false "用户ID筛选（仅管理员可用）"
// @Success 200 {object} map[string]interface{} "获取成功，返回分页数据"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Router /admin/orders [get]
func (h *AdminHandler) GetAllOrders(c *gin.Context) {
	currentUser, err := getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "未登录"})
		return
	}

	page := 1
	pageSize := 20
	if p := c.Query("page"); p != "" {
		fmt.Sscanf(p, "%d", &page)
	}
	if ps := c.Query("page_size"); ps != "" {
		fmt.Sscanf(ps, "%d", &pageSize)
	}

	query := database.DB.Model(&models.LaundryOrder{}).
		Select("laundry_orders.*, users.username").
		Joins("LEFT JOIN users ON laundry_orders.user_id = users.id")

	// 权限过滤：非管理员只能看自己的订单
	if !currentUser.IsAdmin() {
		query = query.Where("laundry_orders.user_id = ?", currentUser.ID)
	} else if uidStr := c.Query("user_id"); uidStr != "" {
		if uid, err := strconv.ParseUint(uidStr, 10, 32); err == nil {
			query = query.Where("laundry_orders.user_id = ?", uint(uid))
		}
	}

	if status := c.Query("status"); status != "" {
		query = query.Where("laundry_orders.status = ?", status)
	}
	if ps := c.Query("payment_status"); ps != "" {
		query = query.Where("laundry_orders.payment_status = ?", ps)
	}
	if startTime := c.Query("start_time"); startTime != "" {
		if t, err := time.ParseInLocation("2006-01-02", startTime, time.Local); err == nil {
			query = query.Where("laundry_orders.created_at >= ?", t)
		}
	}
	if endTime := c.Query("end_time"); endTime != "" {
		if t, err := time.ParseInLocation("2006-01-02", endTime, time.Local); err == nil {
			t = t.Add(24*time.Hour - time.Second)
			query = query.Where("laundry_orders.created_at <= ?", t)
		}
	}
	// 用户名查询只对管理员开放
	if username := c.Query("username"); username != "" && currentUser.IsAdmin() {
		query = query.Where("users.username LIKE ?", "%"+escapeLikeValue(username)+"%")
	}

	var total int64
	query.Count(&total)

	type OrderWithUser struct {
		models.LaundryOrder
		Username string `json:"username"`
	}
	var list []OrderWithUser
	offset := (page - 1) * pageSize
	query.Order("laundry_orders.created_at DESC").Offset(offset).Limit(pageSize).Scan(&list)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total":     total,
			"page":      page,
			"page_size": pageSize,
			"list":      list,
		},
	})
}

// CreateOrder 代客下单（后台管理）
// @Summary 代客下单
// @Description 为指定顾客创建订单。管理员可以为任何用户下单，顾客只能为自己下单。
// @Tags 后台管理-订单管理
// @Accept json
// @Produce json
// @Param request body AdminCreateOrderRequest true "订单信息"
// @Success 200 {object} map[string]interface{} "下单成功"
// @Failure 400 {object} map[string]interface{} "参数错误"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Failure 403 {object} map[string]interface{} "权限不足"
// @Failure 404 {object} map[string]interface{} "用户不存在"
// @Router /admin/orders [post]
func (h *AdminHandler) CreateOrder(c *gin.Context) {
	currentUser, err := getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "未登录"})
		return
	}

	var req AdminCreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "参数错误: " + err.Error()})
		return
	}

	// 权限检查：非管理员只能为自己下单
	if !currentUser.IsAdmin() && req.UserID != currentUser.ID {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "权限不足，只能为自己下单"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, req.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "用户不存在"})
		return
	}

	order, msg, err := createOrder(req.UserID, &req.PlaceOrderRequest)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "下单失败")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "下单成功", "data": order})
}

// UpdateOrderStatus 更新订单状态（后台管理）
// @Summary 更新订单状态
// @Description 更新订单状态（自由文本，推荐 Pending/Accepted/Ready/Completed）。状态改为 Ready 时自动标记待送回，并在配置了邮箱时通知顾客。价格不会因状态变化重算。
// @Tags 后台管理-订单管理
// @Accept json
// @Produce json
// @Param id path int true "订单ID"
// @Param request body UpdateOrderStatusRequest true "新状态"
// @Success 200 {object} map[string]interface{} "更新成功"
// @Failure 400 {object} map[string]interface{} "参数错误"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Failure 404 {object} map[string]interface{} "订单不存在"
// @Router /admin/orders/{id}/status [put]
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	currentUser, err := getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "未登录"})
		return
	}
	if !currentUser.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "权限不足"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "无效的ID"})
		return
	}
	var order models.LaundryOrder
	if err := database.DB.First(&order, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "订单不存在"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "参数错误: " + err.Error()})
		return
	}

	updates := map[string]interface{}{"status": req.Status}
	// 洗好待取时自动标记送回，不额外收费（取送费在下单时已收）
	becameReady := strings.EqualFold(req.Status, models.StatusReady) && !order.DropoffRequested
	if becameReady {
		updates["dropoff_requested"] = true
	}

	if err := database.DB.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "更新失败")})
		return
	}
	database.DB.First(&order, order.ID)

	// 邮件通知尽力而为，失败只记日志，不影响状态更新
	if strings.EqualFold(req.Status, models.StatusReady) {
		h.notifyOrderReady(&order)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "状态已更新", "data": order})
}

// notifyOrderReady 订单洗好后给顾客发邮件通知
func (h *AdminHandler) notifyOrderReady(order *models.LaundryOrder) {
	cfg := config.GlobalConfig
	if cfg == nil || !cfg.Email.Enabled {
		return
	}
	var user models.User
	if err := database.DB.First(&user, order.UserID).Error; err != nil || user.Email == "" {
		return
	}
	go func() {
		if err := service.NewEmailService(&cfg.Email).SendOrderReadyEmail(user.Email, user.Username, order); err != nil {
			log.Printf("订单 #%d 完成通知发送失败: %v", order.ID, err)
		}
	}()
}

// MarkOrderPaid 标记订单已支付（后台管理）
// @Summary 标记订单已支付
// @Description 支付状态单向流转 Pending -> Paid，重复标记直接返回成功，不提供取消支付
// @Tags 后台管理-订单管理
// @Produce json
// @Param id path int true "订单ID"
// @Success 200 {object} map[string]interface{} "标记成功"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Failure 403 {object} map[string]interface{} "权限不足"
// @Failure 404 {object} map[string]interface{} "订单不存在"
// @Router /admin/orders/{id}/pay [put]
func (h *AdminHandler) MarkOrderPaid(c *gin.Context) {
	currentUser, err := getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "未登录"})
		return
	}
	if !currentUser.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "权限不足"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "无效的ID"})
		return
	}
	var order models.LaundryOrder
	if err := database.DB.First(&order, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "订单不存在"})
		return
	}

	if order.Paid {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "订单已是已支付状态", "data": order})
		return
	}

	updates := map[string]interface{}{
		"paid":           true,
		"payment_status": models.PaymentPaid,
	}
	if err := database.DB.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "更新失败")})
		return
	}
	database.DB.First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "已标记为已支付", "data": order})
}

// DeleteOrder 删除订单（后台管理）
// @Summary 删除订单
// @Description 删除订单。营收台账是只增的历史记录，删除订单不会回扣当日营收。
// @Tags 后台管理-订单管理
// @Produce json
// @Param id path int true "订单ID"
// @Success 200 {object} map[string]interface{} "删除成功"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Failure 403 {object} map[string]interface{} "权限不足"
// @Failure 404 {object} map[string]interface{} "订单不存在"
// @Router /admin/orders/{id} [delete]
func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	currentUser, err := getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "未登录"})
		return
	}
	if !currentUser.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "权限不足"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "无效的ID"})
		return
	}
	var order models.LaundryOrder
	if err := database.DB.First(&order, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "订单不存在"})
		return
	}
	if err := database.DB.Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "删除失败")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "订单删除成功"})
}

// ===== 用户管理 =====

// GetAllUsers 获取用户列表（后台管理，仅管理员）
// @Summary 获取用户列表
// @Description 获取全部顾客账号及其订单数
// @Tags 后台管理-用户管理
// @Produce json
// @Success 200 {object} map[string]interface{} "获取成功"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Failure 403 {object} map[string]interface{} "权限不足"
// @Router /admin/users [get]
func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	currentUser, err := getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "未登录"})
		return
	}
	if !currentUser.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "权限不足"})
		return
	}

	type UserWithCount struct {
		models.User
		OrderCount int64 `json:"order_count"`
	}
	var users []UserWithCount
	database.DB.Model(&models.User{}).
		Select("users.*, COUNT(laundry_orders.id) AS order_count").
		Joins("LEFT JOIN laundry_orders ON laundry_orders.user_id = users.id AND laundry_orders.deleted_at IS NULL").
		Where("users.role <> ?", models.RoleAdmin).
		Group("users.id").
		Order("users.created_at DESC").
		Scan(&users)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}

// DeleteUser 删除用户（后台管理，仅管理员）
// @Summary 删除用户
// @Description 删除用户及其全部订单（级联，同一事务）。营收台账不受影响。
// @Tags 后台管理-用户管理
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} map[string]interface{} "删除成功"
// @Failure 400 {object} map[string]interface{} "不能删除自己"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Failure 403 {object} map[string]interface{} "权限不足"
// @Failure 404 {object} map[string]interface{} "用户不存在"
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	currentUser, err := getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "未登录"})
		return
	}
	if !currentUser.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "权限不足"})
		return
	}

	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "无效的用户ID"})
		return
	}

	// 不能删除自己
	if uint(userID) == currentUser.ID {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "不能删除自己的账号"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, uint(userID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "用户不存在"})
		return
	}

	// 级联删除该用户的全部订单；台账保持不变，营收历史不可回改
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.LaundryOrder{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "删除失败")})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "用户及其订单已删除",
	})
}

// ===== 导出 =====

// ExportExcel 导出订单和营收台账为 Excel（后台管理）
// @Summary 导出 Excel
// @Description 按时间范围导出订单明细和每日营收两个工作表
// @Tags 后台管理-导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} map[string]interface{} "参数错误"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Router /admin/export/excel [get]
func (h *AdminHandler) ExportExcel(c *gin.Context) {
	currentUser, err := getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "未登录"})
		return
	}

	startTime := c.Query("start_time")
	endTime := c.Query("end_time")
	if startTime == "" || endTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "请提供开始时间和结束时间"})
		return
	}
	start, err := time.ParseInLocation("2006-01-02", startTime, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "开始时间格式错误"})
		return
	}
	end, err := time.ParseInLocation("2006-01-02", endTime, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "结束时间格式错误"})
		return
	}
	end = end.Add(24*time.Hour - time.Second)

	type OrderWithUser struct {
		models.LaundryOrder
		Username string
	}
	var orders []OrderWithUser
	query := database.DB.Model(&models.LaundryOrder{}).
		Select("laundry_orders.*, users.username").
		Joins("LEFT JOIN users ON laundry_orders.user_id = users.id").
		Where("laundry_orders.created_at >= ? AND laundry_orders.created_at <= ?", start, end)
	// 非管理员只导出自己的订单
	if !currentUser.IsAdmin() {
		query = query.Where("laundry_orders.user_id = ?", currentUser.ID)
	}
	query.Order("laundry_orders.created_at DESC").Scan(&orders)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "订单明细"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 15)
	f.SetColWidth(sheetName, "C", "C", 18)
	f.SetColWidth(sheetName, "D", "E", 12)
	f.SetColWidth(sheetName, "F", "G", 14)
	f.SetColWidth(sheetName, "H", "H", 12)
	f.SetColWidth(sheetName, "I", "I", 20)

	headers := []string{"ID", "用户名", "洗衣类型", "重量(kg)", "金额", "状态", "支付状态", "上门取送", "创建时间"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var totalAmount float64
	for i, order := range orders {
		row := i + 2
		pickup := "否"
		if order.PickupRequested {
			pickup = fmt.Sprintf("%s楼 %s室", order.FloorNumber, order.UnitNumber)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), order.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), order.Username)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), order.LaundryType)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), order.WeightKg)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), order.Price)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), order.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), order.PaymentStatus)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), pickup)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), order.CreatedAt.Format("2006-01-02 15:04:05"))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("I%d", row), dataStyle)
		totalAmount += order.Price
	}

	// 汇总行
	summaryRow := len(orders) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("D%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), totalAmount)
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", summaryRow), fmt.Sprintf("共 %d 笔订单", len(orders)))
	f.MergeCell(sheetName, fmt.Sprintf("F%d", summaryRow), fmt.Sprintf("I%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("I%d", summaryRow), summaryStyle)

	// 第二张表：每日营收台账（仅管理员）
	if currentUser.IsAdmin() {
		incomeSheet := "每日营收"
		f.NewSheet(incomeSheet)
		f.SetColWidth(incomeSheet, "A", "A", 15)
		f.SetColWidth(incomeSheet, "B", "B", 14)
		f.SetCellValue(incomeSheet, "A1", "日期")
		f.SetCellValue(incomeSheet, "B1", "营收")
		f.SetCellStyle(incomeSheet, "A1", "B1", headerStyle)

		var entries []models.Income
		database.DB.Where("date >= ? AND date <= ?", start, end).Order("date DESC").Find(&entries)
		for i, e := range entries {
			row := i + 2
			f.SetCellValue(incomeSheet, fmt.Sprintf("A%d", row), e.Date.Format("2006-01-02"))
			f.SetCellValue(incomeSheet, fmt.Sprintf("B%d", row), e.Total)
			f.SetCellStyle(incomeSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), dataStyle)
		}
	}

	filename := fmt.Sprintf("订单明细_%s_%s.xlsx", startTime, endTime)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "生成 Excel 失败"})
		return
	}
}
