package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"laundry/database"
	"laundry/middleware"
	"laundry/models"

	"github.com/gin-gonic/gin"
)

// ExportHandler 导出处理器（顾客端）
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// queryOrdersByRange 按时间范围查询当前用户的订单
func queryOrdersByRange(userID uint, startStr, endStr string) ([]models.LaundryOrder, string) {
	if startStr == "" || endStr == "" {
		return nil, "请提供开始时间和结束时间"
	}
	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		return nil, "开始时间格式错误，应为: 2006-01-02"
	}
	end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		return nil, "结束时间格式错误，应为: 2006-01-02"
	}
	end = end.Add(24*time.Hour - time.Second)

	var orders []models.LaundryOrder
	if err := database.DB.Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, start, end).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, "查询数据失败"
	}
	return orders, ""
}

// ExportCSV 导出订单为 CSV
// @Summary 导出订单
// @Description 根据时间范围导出自己的订单为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	startStr := c.Query("start_time")
	endStr := c.Query("end_time")
	orders, msg := queryOrdersByRange(userID, startStr, endStr)
	if msg != "" {
		BadRequest(c, msg)
		return
	}

	// 生成 CSV
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "洗衣类型", "重量(kg)", "金额", "状态", "支付状态", "上门取送", "创建时间"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for _, order := range orders {
		pickup := "否"
		if order.PickupRequested {
			pickup = "是"
		}
		row := []string{
			fmt.Sprintf("%d", order.ID),
			order.LaundryType,
			fmt.Sprintf("%.2f", order.WeightKg),
			fmt.Sprintf("%.2f", order.Price),
			order.Status,
			order.PaymentStatus,
			pickup,
			order.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("orders_%s_%s.csv", startStr, endStr)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出订单为 JSON
// @Summary 导出订单为 JSON
// @Description 根据时间范围导出自己的订单为 JSON 格式
// @Tags 导出
// @Produce json
// @Security BearerAuth
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Success 200 {object} Response{data=[]models.LaundryOrder} "导出成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	orders, msg := queryOrdersByRange(userID, c.Query("start_time"), c.Query("end_time"))
	if msg != "" {
		BadRequest(c, msg)
		return
	}
	Success(c, orders)
}
