package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/roznerx/guater-sub000/services"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

// asUser stands in for the auth middleware.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) { c.Set("userID", id) }
}

func waterRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock := newTestDB(t)
	ctl := NewWaterLogController(services.NewWaterLogService(db, nil), services.NewProfileService(db))

	r := gin.New()
	r.POST("/logs/water", asUser(1), ctl.Create)
	r.GET("/logs/water", asUser(1), ctl.List)
	return r, mock
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateWaterLogEndpoint(t *testing.T) {
	r, mock := waterRouter(t)

	mock.ExpectQuery(`INSERT INTO "water_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	w := postJSON(r, "/logs/water", `{"amount_ml": 330, "source": "quick"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"AmountML":330`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWaterLogEndpointRejectsBadInput(t *testing.T) {
	r, mock := waterRouter(t)

	// binding: amount_ml required
	w := postJSON(r, "/logs/water", `{"source": "manual"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// service validation, no SQL issued
	w = postJSON(r, "/logs/water", `{"amount_ml": -10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/logs/water", `{"amount_ml": 330, "source": "osmosis"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/logs/water", `{"amount_ml": 330, "logged_at": "yesterday-ish"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListWaterLogsEndpointRejectsBadOffset(t *testing.T) {
	r, mock := waterRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/logs/water?offset=soon", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckGoalEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctl := NewProfileController(nil) // CheckGoal never touches the service

	r := gin.New()
	r.GET("/user/goal-check", ctl.CheckGoal)

	cases := []struct {
		query string
		level string
	}{
		{"goal_ml=300", "danger"},
		{"goal_ml=800", "warning"},
		{"goal_ml=2500", "ok"},
		{"goal_ml=6500", "danger"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/goal-check?"+tc.query, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"level":"`+tc.level+`"`, tc.query)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/goal-check?goal_ml=lots", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
