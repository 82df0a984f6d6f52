package service

import (
	"testing"

	"laundry/config"
	"laundry/models"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func TestGenerateOrderReadyBody(t *testing.T) {
	s := newTestEmailService()
	order := &models.LaundryOrder{
		ID:          42,
		LaundryType: models.TypeWashDryFold,
		WeightKg:    3.5,
		Price:       80.5,
	}

	body := s.generateOrderReadyBody("张三", order)
	assert.Contains(t, body, "张三")
	assert.Contains(t, body, "#42")
	assert.Contains(t, body, models.TypeWashDryFold)
	assert.Contains(t, body, "80.50")
	assert.Contains(t, body, "到店取衣")
}

func TestGenerateOrderReadyBody_WithPickupLocation(t *testing.T) {
	s := newTestEmailService()
	order := &models.LaundryOrder{
		ID:              7,
		LaundryType:     models.TypeSpecialItems,
		WeightKg:        2,
		Price:           140,
		PickupRequested: true,
		FloorNumber:     "12",
		UnitNumber:      "03",
	}

	body := s.generateOrderReadyBody("李四", order)
	assert.Contains(t, body, "李四")
	assert.Contains(t, body, "12 楼 03 室")
	assert.NotContains(t, body, "到店取衣")
}

func TestSendOrderReadyEmail_Disabled(t *testing.T) {
	s := newTestEmailService()
	err := s.SendOrderReadyEmail("a@b.com", "张三", &models.LaundryOrder{ID: 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "邮件服务未启用")
}

func TestSendTestEmail_Disabled(t *testing.T) {
	s := newTestEmailService()
	err := s.SendTestEmail("a@b.com")
	assert.Error(t, err)
}
