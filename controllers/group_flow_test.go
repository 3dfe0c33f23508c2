package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Om-Rawte/AIMenuAssistant/configs"
	"github.com/Om-Rawte/AIMenuAssistant/entity"
	"github.com/Om-Rawte/AIMenuAssistant/routes"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect test database: " + err.Error())
	}
	err = testDB.AutoMigrate(
		&entity.Table{}, &entity.Reservation{}, &entity.MenuItem{},
		&entity.OrderConfirmation{}, &entity.Order{}, &entity.OrderItem{},
		&entity.Feedback{},
	)
	if err != nil {
		panic("failed to auto-migrate models: " + err.Error())
	}

	testDB.Create(&entity.Table{Code: "T1", Name: "Window 1", Seats: 2})
	testDB.Create(&[]entity.MenuItem{
		{Name: "Margherita Pizza", Price: 1250, Category: "Mains", Available: true},
		{Name: "Caesar Salad", Price: 900, Category: "Starters", Available: true},
	})

	cfg := &configs.Config{JWTSecret: "test-secret", SessionTTL: time.Hour}

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, testDB, cfg)

	return r, testDB
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf []byte
	if body != nil {
		buf, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(buf))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

type enterResponse struct {
	OK   bool `json:"ok"`
	Data struct {
		Token  string `json:"token"`
		UserID string `json:"userId"`
	} `json:"data"`
}

func enter(t *testing.T, router *gin.Engine) enterResponse {
	t.Helper()
	rec := doJSON(router, http.MethodPost, "/session/enter", "", gin.H{"qr": `{"table_id": 1}`})
	assert.Equal(t, http.StatusOK, rec.Code)

	var out enterResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Data.Token)
	return out
}

func TestEnterRequiresTable(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/session/enter", "", gin.H{"qr": "geo=1,2"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "scan a valid table QR code")
}

func TestGroupEndpointsRequireSession(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(router, http.MethodPost, "/group/items", "", gin.H{"menuItemId": 1})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(router, http.MethodPost, "/group/items", "not-a-token", gin.H{"menuItemId": 1})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTwoDinerFlowEndsInOneOrder(t *testing.T) {
	router, testDB := setupTestRouter(t)

	alice := enter(t, router)
	bob := enter(t, router)

	rec := doJSON(router, http.MethodPost, "/group/items", alice.Data.Token, gin.H{"menuItemId": 1})
	assert.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(router, http.MethodPost, "/group/items", bob.Data.Token, gin.H{"menuItemId": 2})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(router, http.MethodPost, "/group/ready", alice.Data.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1 of 2 people are ready.")

	rec = doJSON(router, http.MethodPost, "/group/ready", bob.Data.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var orderCount int64
	testDB.Model(&entity.Order{}).Count(&orderCount)
	assert.EqualValues(t, 1, orderCount)

	var confirmations int64
	testDB.Model(&entity.OrderConfirmation{}).Count(&confirmations)
	assert.EqualValues(t, 0, confirmations)

	var order entity.Order
	assert.NoError(t, testDB.Preload("Items").First(&order).Error)
	assert.Len(t, order.Items, 2)

	// the tracker shows every item pending
	rec = doJSON(router, http.MethodGet, fmt.Sprintf("/orders/%d/status", order.ID), alice.Data.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}

func TestUnknownMenuItemKeepsCartUnchanged(t *testing.T) {
	router, testDB := setupTestRouter(t)
	alice := enter(t, router)

	rec := doJSON(router, http.MethodPost, "/group/items", alice.Data.Token, gin.H{"menuItemId": 999})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cart":[]`)

	var confirmations int64
	testDB.Model(&entity.OrderConfirmation{}).Count(&confirmations)
	assert.EqualValues(t, 0, confirmations)
}

func TestKitchenStatusUpdateVisibleOnTracker(t *testing.T) {
	router, testDB := setupTestRouter(t)
	alice := enter(t, router)

	doJSON(router, http.MethodPost, "/group/items", alice.Data.Token, gin.H{"menuItemId": 1})
	doJSON(router, http.MethodPost, "/group/ready", alice.Data.Token, nil)

	var item entity.OrderItem
	assert.NoError(t, testDB.First(&item).Error)

	rec := doJSON(router, http.MethodPatch,
		fmt.Sprintf("/orders/%d/items/%d/status", item.OrderID, item.ID),
		"", gin.H{"status": "cooking"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, fmt.Sprintf("/orders/%d/status", item.OrderID), alice.Data.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cooking"`)
}

func TestFeedbackValidation(t *testing.T) {
	router, testDB := setupTestRouter(t)
	alice := enter(t, router)

	rec := doJSON(router, http.MethodPost, "/feedback", alice.Data.Token, gin.H{"rating": 6, "comment": "too good"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(router, http.MethodPost, "/feedback", alice.Data.Token, gin.H{"rating": 5, "comment": "lovely evening"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var count int64
	testDB.Model(&entity.Feedback{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestMenuListsSeededItems(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := doJSON(router, http.MethodGet, "/menu", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Margherita Pizza")
	assert.Contains(t, rec.Body.String(), "Caesar Salad")
}
