package service

import (
	"fmt"

	"laundry/models"
)

// DefaultRatePerKg 未知洗衣类型的兜底单价（与 Wash-Dry-Fold 一致）
const DefaultRatePerKg = 23

// PickupFee 上门取送统一服务费。历史版本出现过 20 和 70 两个值，
// 以线上实际收取的 20 为准
const PickupFee = 20

// ratePerKg 各洗衣类型的每公斤单价
var ratePerKg = map[string]float64{
	models.TypeWashDryFold:  23,
	models.TypeWashDryPress: 60,
	models.TypePressOnly:    40,
	models.TypeSpecialItems: 70,
}

// RatePerKg 返回指定洗衣类型的每公斤单价，未知类型按 Wash-Dry-Fold 计价
func RatePerKg(laundryType string) float64 {
	if rate, ok := ratePerKg[laundryType]; ok {
		return rate
	}
	return DefaultRatePerKg
}

// CalculatePrice 计算订单价格：重量 × 单价，上门取送加收固定服务费。
// 负重量视为非法输入，不产生负价格
func CalculatePrice(laundryType string, weightKg float64, pickup bool) (float64, error) {
	if weightKg < 0 {
		return 0, fmt.Errorf("重量不能为负数: %v", weightKg)
	}
	price := weightKg * RatePerKg(laundryType)
	if pickup {
		price += PickupFee
	}
	return price, nil
}
