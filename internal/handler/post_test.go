package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasraef/blog-backend/internal/model"
	"github.com/kasraef/blog-backend/internal/repository"
)

func newPostHandler(t *testing.T) (*PostHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostHandler(repository.NewPostRepo(db)), mock
}

func TestGetAllPosts(t *testing.T) {
	h, mock := newPostHandler(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id,title,description,date,image,tags FROM blog_posts")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "date", "image", "tags"}).
			AddRow("p1", "First", "body", "2026-01-01", "https://img/1.png", "go,web"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/getAllPosts", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetAllPosts(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var posts []model.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "First", posts[0].Title)
	assert.Equal(t, "go,web", posts[0].Tags)
}

func TestGetAllPosts_Empty(t *testing.T) {
	h, mock := newPostHandler(t)
	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "date", "image", "tags"}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/getAllPosts", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetAllPosts(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	// An empty table serializes as [], not null.
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestAddBlog(t *testing.T) {
	h, mock := newPostHandler(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO blog_posts (id, title, description, date, image, tags) VALUES (?,?,?,?,?,?)")).
		WithArgs(sqlmock.AnyArg(), "My Post", "body", "2026-01-01", "https://img/1.png", "go").
		WillReturnResult(sqlmock.NewResult(1, 1))

	e := echo.New()
	body := `{"name":"My Post","imgUrl":"https://img/1.png","description":"body","tags":"go","date":"2026-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/addblog", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "id-alice")
	require.NoError(t, h.AddBlog(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddBlog_MissingName(t *testing.T) {
	h, _ := newPostHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/addblog", strings.NewReader(`{"description":"body"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.AddBlog(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddBlog_StorageError(t *testing.T) {
	h, mock := newPostHandler(t)
	mock.ExpectExec("INSERT INTO blog_posts").
		WillReturnError(assert.AnError)

	e := echo.New()
	body := `{"name":"My Post"}`
	req := httptest.NewRequest(http.MethodPost, "/addblog", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.AddBlog(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
