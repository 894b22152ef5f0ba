package payouts

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"kreator-konnect-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

const creatorID = "abc12345-e89b-12d3-a456-426614174000"

func TestRequestPayout_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payouts" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/payouts", func(c *gin.Context) {
		c.Set("user_id", creatorID)
		RequestPayout(c)
	})

	jsonData, _ := json.Marshal(map[string]interface{}{
		"amount":        50.0,
		"paymentMethod": "paypal",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/payouts", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Payout requested", respBody["message"])

	payout := respBody["payout"].(map[string]interface{})
	assert.Equal(t, "pending", payout["status"])
	assert.Equal(t, 50.0, payout["amount"])
}

func TestGetPayoutHistory_ProjectsRows(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	requestDate := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM "payouts" WHERE creator_id = (.+) ORDER BY request_date DESC`).
		WithArgs(creatorID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "creator_id", "amount", "payment_method", "status", "request_date"}).
			AddRow("123e4567-e89b-12d3-a456-426614174000", creatorID, 50.0, "paypal", "completed", requestDate))

	r := testutils.SetupTestRouter()
	r.GET("/api/payouts/history", func(c *gin.Context) {
		c.Set("user_id", creatorID)
		GetPayoutHistory(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/api/payouts/history", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string][]map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)

	payouts := respBody["payouts"]
	assert.Len(t, payouts, 1)
	assert.Equal(t, 50.0, payouts[0]["amount"])
	assert.Equal(t, "paypal", payouts[0]["method"])
	assert.Equal(t, "completed", payouts[0]["status"])
}

func TestGetPayouts_Empty(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "payouts" WHERE creator_id = (.+) ORDER BY request_date DESC`).
		WithArgs(creatorID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := testutils.SetupTestRouter()
	r.GET("/api/payouts", func(c *gin.Context) {
		c.Set("user_id", creatorID)
		GetPayouts(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/api/payouts", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string][]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Empty(t, respBody["payouts"])
}
