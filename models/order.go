package models

import (
	"time"

	"gorm.io/gorm"
)

// 洗衣类型（价目表见 service 包，未知类型按 Wash-Dry-Fold 计价）
const (
	TypeWashDryFold  = "Wash-Dry-Fold"
	TypeWashDryPress = "Wash-Dry-Press"
	TypePressOnly    = "Press Only"
	TypeSpecialItems = "Special Items"
)

// 订单状态。状态字段为自由文本，以下仅为推荐流转顺序，不做强制校验
const (
	StatusPending   = "Pending"
	StatusAccepted  = "Accepted"
	StatusReady     = "Ready"
	StatusCompleted = "Completed"
)

// 支付状态，单向 Pending -> Paid
const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

// LaundryOrder 洗衣订单模型
type LaundryOrder struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	UserID           uint           `json:"user_id" gorm:"index;not null"`
	LaundryType      string         `json:"laundry_type" gorm:"size:100;not null"`
	WeightKg         float64        `json:"weight_kg" gorm:"not null"`
	Price            float64        `json:"price" gorm:"type:decimal(10,2);not null"` // 创建时一次性计算，后续不变
	Status           string         `json:"status" gorm:"size:50;default:Pending;index"`
	PaymentStatus    string         `json:"payment_status" gorm:"size:20;default:Pending;index"`
	Paid             bool           `json:"paid" gorm:"default:false"`
	PickupRequested  bool           `json:"pickup_requested" gorm:"default:false"`
	DropoffRequested bool           `json:"dropoff_requested" gorm:"default:false"`
	FloorNumber      string         `json:"floor_number" gorm:"size:10"`
	UnitNumber       string         `json:"unit_number" gorm:"size:10"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
	User             User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (LaundryOrder) TableName() string {
	return "laundry_orders"
}

// HasPickupLocation 取送地址是否完整。楼层或门牌缺失时按非上门取送展示
func (o *LaundryOrder) HasPickupLocation() bool {
	return o.PickupRequested && o.FloorNumber != "" && o.UnitNumber != ""
}
