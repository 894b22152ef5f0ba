package likes

import (
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
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestToggleLike_Add(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"
	userID := "abc12345-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = (.+)`).
		WithArgs(postID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "likes", "liked_by"}).
			AddRow(postID, 0, pq.StringArray{}))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "posts" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", userID)
		ToggleLike(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/api/posts/"+postID+"/like", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(1), respBody["likes"])

	likedBy := respBody["likedBy"].([]interface{})
	assert.Len(t, likedBy, 1)
	assert.Equal(t, userID, likedBy[0])
}

func TestToggleLike_Remove(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"
	userID := "abc12345-e89b-12d3-a456-426614174000"
	otherID := "def12345-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = (.+)`).
		WithArgs(postID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "likes", "liked_by"}).
			AddRow(postID, 2, pq.StringArray{userID, otherID}))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "posts" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", userID)
		ToggleLike(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/api/posts/"+postID+"/like", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(1), respBody["likes"])

	likedBy := respBody["likedBy"].([]interface{})
	assert.Len(t, likedBy, 1)
	assert.Equal(t, otherID, likedBy[0])
}

// The likes counter must always equal the size of likedBy, whatever
// the stored counter said before the toggle.
func TestToggleLike_CounterMirrorsSet(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"
	userID := "abc12345-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = (.+)`).
		WithArgs(postID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "likes", "liked_by"}).
			AddRow(postID, 42, pq.StringArray{"u1", "u2"}))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "posts" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", userID)
		ToggleLike(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/api/posts/"+postID+"/like", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(3), respBody["likes"])
	assert.Len(t, respBody["likedBy"].([]interface{}), 3)
}

func TestToggleLike_InvalidID(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/api/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", "abc12345-e89b-12d3-a456-426614174000")
		ToggleLike(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/api/posts/not-a-uuid/like", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestToggleLike_PostNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = (.+)`).
		WithArgs(postID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/api/posts/:id/like", func(c *gin.Context) {
		c.Set("user_id", "abc12345-e89b-12d3-a456-426614174000")
		ToggleLike(c)
	})

	req, _ := http.NewRequest(http.MethodPost, "/api/posts/"+postID+"/like", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
