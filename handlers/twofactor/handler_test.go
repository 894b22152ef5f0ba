package twofactor

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

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

const userID = "abc12345-e89b-12d3-a456-426614174000"

func verifyRequest(r *gin.Engine, code string) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(map[string]string{"code": code})
	req, _ := http.NewRequest(http.MethodPost, "/api/2fa/verify", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestGenerateCode_SixDigits(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := generateCode()
		assert.Len(t, code, 6)
		assert.GreaterOrEqual(t, code[0], byte('1'))
	}
}

func TestGetStatus(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT "two_factor_enabled" FROM "users" WHERE id = (.+)`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"two_factor_enabled"}).AddRow(true))

	r := testutils.SetupTestRouter()
	r.GET("/api/2fa/status", func(c *gin.Context) {
		c.Set("user_id", userID)
		GetStatus(c)
	})

	req, _ := http.NewRequest(http.MethodGet, "/api/2fa/status", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]bool
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.True(t, respBody["isTwoFactorEnabled"])
}

func TestVerify_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+)`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "two_factor_enabled", "two_factor_secret"}).
			AddRow(userID, false, "123456"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/2fa/verify", func(c *gin.Context) {
		c.Set("user_id", userID)
		Verify(c)
	})

	resp := verifyRequest(r, "123456")

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "2FA enabled successfully", respBody["message"])
}

func TestVerify_WrongCode(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+)`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "two_factor_enabled", "two_factor_secret"}).
			AddRow(userID, false, "123456"))

	r := testutils.SetupTestRouter()
	r.POST("/api/2fa/verify", func(c *gin.Context) {
		c.Set("user_id", userID)
		Verify(c)
	})

	resp := verifyRequest(r, "654321")

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid verification code", respBody["message"])
}

func TestVerify_NoPendingCode(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+)`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "two_factor_enabled", "two_factor_secret"}).
			AddRow(userID, false, ""))

	r := testutils.SetupTestRouter()
	r.POST("/api/2fa/verify", func(c *gin.Context) {
		c.Set("user_id", userID)
		Verify(c)
	})

	resp := verifyRequest(r, "123456")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestVerify_MissingCode(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/api/2fa/verify", func(c *gin.Context) {
		c.Set("user_id", userID)
		Verify(c)
	})

	resp := verifyRequest(r, "")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDisable(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/2fa/disable", func(c *gin.Context) {
		c.Set("user_id", userID)
		Disable(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/api/2fa/disable", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "2FA disabled successfully", respBody["message"])
}
