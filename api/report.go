package api

import (
	"net/http"
	"time"

	"laundry/database"
	"laundry/models"
	"laundry/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler 营收报表处理器（后台管理）
type ReportHandler struct{}

// NewReportHandler 创建营收报表处理器
func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

// requireAdmin 校验 Cookie 签名并要求管理员角色。营收台账只对管理员开放
func requireAdmin(c *gin.Context) bool {
	currentUser, err := getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "未登录"})
		return false
	}
	if !currentUser.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "权限不足"})
		return false
	}
	return true
}

// Daily 按日营收报表
// @Summary 按日营收报表
// @Description 返回每个有营收的日期及其总额，新日期在前。空台账返回空列表。仅管理员可查看。
// @Tags 后台管理-营收报表
// @Produce json
// @Success 200 {object} map[string]interface{} "获取成功"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Failure 403 {object} map[string]interface{} "权限不足"
// @Router /admin/reports/daily [get]
func (h *ReportHandler) Daily(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	days, err := service.DailyTotals(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "查询失败")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": days})
}

// Weekly 按周营收报表
// @Summary 按周营收报表
// @Description 按周一至周日的自然周返回营收，每周固定 7 天，无营收日期补零，新的周在前。仅管理员可查看。
// @Tags 后台管理-营收报表
// @Produce json
// @Success 200 {object} map[string]interface{} "获取成功"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Failure 403 {object} map[string]interface{} "权限不足"
// @Router /admin/reports/weekly [get]
func (h *ReportHandler) Weekly(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	weeks, err := service.WeeklyTotals(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "查询失败")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": weeks})
}

// Monthly 按月营收报表
// @Summary 按月营收报表
// @Description 按自然月返回营收汇总，新月份在前。仅管理员可查看。
// @Tags 后台管理-营收报表
// @Produce json
// @Success 200 {object} map[string]interface{} "获取成功"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Failure 403 {object} map[string]interface{} "权限不足"
// @Router /admin/reports/monthly [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	months, err := service.MonthlyTotals(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "查询失败")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": months})
}

// Summary 营收与订单总览
// @Summary 营收与订单总览
// @Description 返回台账总营收、订单总数和用户总数，供后台首页展示。仅管理员可查看。
// @Tags 后台管理-营收报表
// @Produce json
// @Success 200 {object} map[string]interface{} "获取成功"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Failure 403 {object} map[string]interface{} "权限不足"
// @Router /admin/reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	totalIncome, err := service.GrandTotal(database.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "查询失败")})
		return
	}

	var totalOrders int64
	database.DB.Model(&models.LaundryOrder{}).Count(&totalOrders)
	var totalUsers int64
	database.DB.Model(&models.User{}).Where("role <> ?", models.RoleAdmin).Count(&totalUsers)
	var unpaidOrders int64
	database.DB.Model(&models.LaundryOrder{}).Where("payment_status = ?", models.PaymentPending).Count(&unpaidOrders)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_income":  totalIncome,
			"total_orders":  totalOrders,
			"total_users":   totalUsers,
			"unpaid_orders": unpaidOrders,
		},
	})
}

// DeleteMonth 删除指定月份的营收台账
// @Summary 删除指定月份的营收台账
// @Description 删除该自然月内的全部台账记录，返回删除条数和删除后的总营收。仅管理员可操作。
// @Tags 后台管理-营收报表
// @Produce json
// @Param month path string true "月份 (YYYY-MM)"
// @Success 200 {object} map[string]interface{} "删除成功"
// @Failure 400 {object} map[string]interface{} "月份格式错误"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Failure 403 {object} map[string]interface{} "权限不足"
// @Router /admin/reports/months/{month} [delete]
func (h *ReportHandler) DeleteMonth(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	month, err := time.ParseInLocation("2006-01", c.Param("month"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "月份格式错误，应为: 2006-01"})
		return
	}

	deleted, remaining, err := service.DeleteMonth(database.DB, month.Year(), month.Month())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": SafeErrorMessage(err, "删除失败")})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "删除成功",
		"data": gin.H{
			"deleted":      deleted,
			"total_income": remaining,
		},
	})
}
