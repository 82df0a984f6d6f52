package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"laundry/config"
	"laundry/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func TestOrderHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// 落单和当日台账累加在同一事务内
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `laundry_orders`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `incomes` .*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/orders", NewOrderHandler().Create)

	body := `{"laundry_type":"Special Items","weight_kg":2}`
	req := httptest.NewRequest("POST", "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "下单成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	// Special Items 2 公斤，不含上门取送：2 × 70 = 140
	assert.Equal(t, float64(140), data["price"])
	assert.Equal(t, models.StatusPending, data["status"])
	assert.Equal(t, models.PaymentPending, data["payment_status"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderHandler_Create_PickupFee(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `laundry_orders`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `incomes` .*ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/orders", NewOrderHandler().Create)

	body := `{"laundry_type":"Wash-Dry-Fold","weight_kg":2,"pickup_requested":true,"floor_number":"12","unit_number":"03"}`
	req := httptest.NewRequest("POST", "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	// 2 × 23 + 20 上门服务费 = 66
	assert.Equal(t, float64(66), data["price"])
	assert.Equal(t, true, data["pickup_requested"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderHandler_Create_CreditFailureRollsBack(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	// 台账累加失败时订单一起回滚，不能出现有订单没营收的状态
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `laundry_orders`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `incomes` .*ON DUPLICATE KEY UPDATE").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/orders", NewOrderHandler().Create)

	body := `{"laundry_type":"Wash-Dry-Fold","weight_kg":2}`
	req := httptest.NewRequest("POST", "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 500, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(500), resp["code"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderHandler_Create_PickupWithoutLocation(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/orders", NewOrderHandler().Create)

	// 要求上门取送但没有填地址
	body := `{"laundry_type":"Wash-Dry-Fold","weight_kg":2,"pickup_requested":true}`
	req := httptest.NewRequest("POST", "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "上门取送需填写楼层和门牌号", resp["message"])
}

func TestOrderHandler_Create_InvalidWeight(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/orders", NewOrderHandler().Create)

	body := `{"laundry_type":"Wash-Dry-Fold","weight_kg":-1}`
	req := httptest.NewRequest("POST", "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestOrderHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `laundry_orders`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT .* FROM `laundry_orders`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "laundry_type", "weight_kg", "price", "status", "payment_status", "created_at", "updated_at", "deleted_at"}).
			AddRow(2, 1, models.TypeWashDryPress, 1.0, 60.0, models.StatusReady, models.PaymentPending, time.Now(), time.Now(), nil).
			AddRow(1, 1, models.TypeWashDryFold, 3.5, 80.5, models.StatusPending, models.PaymentPaid, time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/orders", NewOrderHandler().List)

	req := httptest.NewRequest("GET", "/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	list := data["list"].([]interface{})
	require.Len(t, list, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderHandler_Get_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{Server: config.ServerConfig{Mode: "debug"}}
	config.GlobalConfig = cfg
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `laundry_orders`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/orders/:id", NewOrderHandler().Get)

	req := httptest.NewRequest("GET", "/orders/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
