package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/NgoVanPhien1997tb/yacchi-mcp/models"
	"github.com/NgoVanPhien1997tb/yacchi-mcp/tools"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.Project{},
		&models.Customer{},
		&models.PaymentPlan{},
		&models.PaymentPlanDetail{},
	))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	registry := tools.NewRegistry()
	NewBillHandler(db).Register(registry)
	NewCustomerHandler(db).Register(registry)
	NewProjectHandler(db).Register(registry)
	registry.Mount(router.Group("/tools"))
	return router
}

func callTool(t *testing.T, router *gin.Engine, name, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tools/"+name, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func seedReferenceData(t *testing.T, db *gorm.DB) {
	t.Helper()
	customers := []models.Customer{
		{ID: "CUS001", Name: "Nguyễn Văn A", Email: "van.a@example.com", PhoneNumber: "0901234567", CreatedAt: datePtr(2025, 1, 10)},
		{ID: "CUS002", Name: "Trần Thị B", Email: "thi.b@example.com", PhoneNumber: "0907654321", CreatedAt: datePtr(2025, 2, 10)},
		{ID: "CUS900", Name: "Công ty thầu phụ C", Email: "sub.c@example.com", IsContractor: true, CreatedAt: datePtr(2025, 3, 10)},
		{ID: "CUS901", Name: "Deleted D", IsDeleted: true, CreatedAt: datePtr(2025, 4, 10)},
	}
	assert.NoError(t, db.Create(&customers).Error)

	projects := []models.Project{
		{ID: "PJ00000001", Name: "Dự án nhà máy X", ProjectNumber: "PRJ-2025-001", CustomerID: "CUS001",
			Amount: decimal.NewFromInt(50_000_000), Tax: 10, EntryCost: decimal.NewFromInt(55_000_000),
			CreatedAt: datePtr(2025, 1, 15), CompletedDate: datePtr(2025, 6, 1), EndDate: datePtr(2025, 6, 30)},
		{ID: "PJ00000002", Name: "Cải tạo văn phòng Y", ProjectNumber: "PRJ-2025-002", CustomerID: "CUS002",
			Amount: decimal.NewFromInt(12_000_000), EntryCost: decimal.NewFromInt(13_000_000),
			CreatedAt: datePtr(2025, 2, 20)},
		{ID: "PJ00000099", Name: "Removed Z", ProjectNumber: "PRJ-2025-099", CustomerID: "CUS001",
			IsDeleted: true, CreatedAt: datePtr(2025, 3, 1)},
	}
	assert.NoError(t, db.Create(&projects).Error)
}

func seedBills(t *testing.T, db *gorm.DB) {
	t.Helper()
	plans := []models.PaymentPlan{
		{ID: "PP00000001", ProjectID: "PJ00000001", CustomerID: "CUS001", PayerCode: "CUS001",
			Amount: decimal.NewFromInt(22_000_000), Tax: decimal.NewFromInt(2_200_000),
			CreatedAt: datePtr(2025, 3, 1), ExecutionDate: datePtr(2025, 4, 1)},
		{ID: "PP00000002", ProjectID: "PJ00000002", CustomerID: "CUS002", PayerCode: "CUS002",
			Amount: decimal.NewFromInt(5_000_000), Tax: decimal.NewFromInt(500_000),
			CreatedAt: datePtr(2025, 3, 15)},
		{ID: "PP00000003", ProjectID: "PJ00000001", CustomerID: "CUS001", PayerCode: "CUS001",
			Amount: decimal.NewFromInt(1_000_000), Tax: decimal.NewFromInt(100_000),
			IsDeleted: true, CreatedAt: datePtr(2025, 3, 20)},
	}
	assert.NoError(t, db.Create(&plans).Error)
}
