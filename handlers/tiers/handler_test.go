package tiers

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

const creatorID = "abc12345-e89b-12d3-a456-426614174000"

func createRequest(r *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/tiers", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateTier_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tiers" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/tiers", func(c *gin.Context) {
		c.Set("user_id", creatorID)
		CreateTier(c)
	})

	resp := createRequest(r, map[string]interface{}{
		"name":     "Gold",
		"price":    9.99,
		"benefits": []string{"exclusive posts", "direct messages"},
	})

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Tier created successfully", respBody["message"])

	tier := respBody["tier"].(map[string]interface{})
	assert.Equal(t, "Gold", tier["name"])
	assert.Equal(t, 9.99, tier["price"])
}

func TestCreateTier_FreeTierAllowed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tiers" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("123e4567-e89b-12d3-a456-426614174000"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/tiers", func(c *gin.Context) {
		c.Set("user_id", creatorID)
		CreateTier(c)
	})

	resp := createRequest(r, map[string]interface{}{
		"name":     "Free",
		"price":    0,
		"benefits": []string{},
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestCreateTier_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		body map[string]interface{}
	}{
		{"NoName", map[string]interface{}{"price": 9.99, "benefits": []string{"a"}}},
		{"NoPrice", map[string]interface{}{"name": "Gold", "benefits": []string{"a"}}},
		{"NegativePrice", map[string]interface{}{"name": "Gold", "price": -1, "benefits": []string{"a"}}},
		{"NoBenefits", map[string]interface{}{"name": "Gold", "price": 9.99}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := testutils.SetupTestRouter()
			r.POST("/api/tiers", func(c *gin.Context) {
				c.Set("user_id", creatorID)
				CreateTier(c)
			})

			resp := createRequest(r, tc.body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)

			var respBody map[string]string
			json.Unmarshal(resp.Body.Bytes(), &respBody)
			assert.Equal(t, "Valid name, price (non-negative), and benefits (as an array) are required.", respBody["message"])
		})
	}
}

func TestGetCreatorTiers_InvalidID(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.GET("/api/tiers/:creatorId", GetCreatorTiers)

	req, _ := http.NewRequest(http.MethodGet, "/api/tiers/not-a-uuid", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid creator ID format", respBody["message"])
}
