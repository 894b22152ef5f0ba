package polls

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

func voteRequest(r *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/polls/vote", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestVote_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"
	userID := "abc12345-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = (.+)`).
		WithArgs(postID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "voted_by"}).
			AddRow(postID, "poll", pq.StringArray{}))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "posts" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/api/polls/vote", func(c *gin.Context) {
		c.Set("user_id", userID)
		Vote(c)
	})

	resp := voteRequest(r, map[string]interface{}{"postId": postID, "optionIndex": 1})

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Vote recorded", respBody["message"])
	assert.Equal(t, float64(1), respBody["optionIndex"])
}

func TestVote_AlreadyVoted(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"
	userID := "abc12345-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = (.+)`).
		WithArgs(postID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "voted_by"}).
			AddRow(postID, "poll", pq.StringArray{userID}))

	r := testutils.SetupTestRouter()
	r.POST("/api/polls/vote", func(c *gin.Context) {
		c.Set("user_id", userID)
		Vote(c)
	})

	resp := voteRequest(r, map[string]interface{}{"postId": postID, "optionIndex": 0})

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "User has already voted", respBody["message"])
}

func TestVote_NotAPoll(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = (.+)`).
		WithArgs(postID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "voted_by"}).
			AddRow(postID, "text", pq.StringArray{}))

	r := testutils.SetupTestRouter()
	r.POST("/api/polls/vote", func(c *gin.Context) {
		c.Set("user_id", "abc12345-e89b-12d3-a456-426614174000")
		Vote(c)
	})

	resp := voteRequest(r, map[string]interface{}{"postId": postID, "optionIndex": 0})

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Not a poll post", respBody["message"])
}

func TestVote_PostNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	postID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "posts" WHERE id = (.+)`).
		WithArgs(postID, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/api/polls/vote", func(c *gin.Context) {
		c.Set("user_id", "abc12345-e89b-12d3-a456-426614174000")
		Vote(c)
	})

	resp := voteRequest(r, map[string]interface{}{"postId": postID, "optionIndex": 0})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestVote_MissingPostID(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/api/polls/vote", func(c *gin.Context) {
		c.Set("user_id", "abc12345-e89b-12d3-a456-426614174000")
		Vote(c)
	})

	resp := voteRequest(r, map[string]interface{}{"optionIndex": 0})

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "postId is required", respBody["message"])
}
