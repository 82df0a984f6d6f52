package models

import "time"

// Income 每日营收台账。按日期一行，订单创建时累加。
// 台账只增不减：订单的修改和删除不会回写历史营收，
// 因此没有软删除字段，date 上的唯一索引在按月清理后可以复用。
type Income struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Date      time.Time `json:"date" gorm:"type:date;uniqueIndex;not null"`
	Total     float64   `json:"total" gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Income) TableName() string {
	return "incomes"
}
