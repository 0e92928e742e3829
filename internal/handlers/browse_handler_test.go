package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deirn/cf-b2cdn/internal/b2"
	"github.com/deirn/cf-b2cdn/internal/listing"
	"github.com/deirn/cf-b2cdn/internal/renderer"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestServer(client BucketClient) *echo.Echo {
	e := echo.New()
	e.Renderer = renderer.New()

	log := logrus.New()
	log.SetOutput(io.Discard)
	e.HTTPErrorHandler = ErrorHandler(log)

	handler := NewBrowseHandler(client, listing.Site{FileHost: "https://files.example.com/file/my-bucket"})
	e.GET("/*", handler.Handle)
	return e
}

func TestBrowse_RendersListing(t *testing.T) {
	uploaded := time.Date(2024, 5, 17, 3, 4, 5, 0, time.UTC).UnixMilli()
	client := new(MockBucketClient)
	client.On("ListFileNames", mock.Anything, "docs/").Return([]b2.RawEntry{
		{Name: "docs/sub/", Kind: b2.KindFolder},
		{Name: "docs/readme.txt", Kind: b2.KindFile, SizeBytes: 5000, UploadedAt: uploaded},
	}, nil)

	e := newTestServer(client)
	req := httptest.NewRequest(http.MethodGet, "/docs/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Index of /docs/</title>")
	assert.Contains(t, body, `<a href="sub/">sub/</a>`)
	assert.Contains(t, body, "readme.txt")
	assert.Contains(t, body, "4.9 KiB")
	assert.Contains(t, body, `<a href="../">..</a>`)
	client.AssertExpectations(t)
}

func TestBrowse_DecodesPrefix(t *testing.T) {
	client := new(MockBucketClient)
	client.On("ListFileNames", mock.Anything, "my docs/").Return([]b2.RawEntry{
		{Name: "my docs/a.txt", Kind: b2.KindFile},
	}, nil)

	e := newTestServer(client)
	req := httptest.NewRequest(http.MethodGet, "/my%20docs/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	client.AssertExpectations(t)
}

func TestBrowse_EscapesEntryNames(t *testing.T) {
	client := new(MockBucketClient)
	client.On("ListFileNames", mock.Anything, "").Return([]b2.RawEntry{
		{Name: `a&b<c>.txt`, Kind: b2.KindFile},
	}, nil)

	e := newTestServer(client)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a&amp;b&lt;c&gt;.txt")
	assert.NotContains(t, rec.Body.String(), "<c>")
}

func TestBrowse_EmptyListingIsNotFound(t *testing.T) {
	client := new(MockBucketClient)
	client.On("ListFileNames", mock.Anything, "ghost/").Return([]b2.RawEntry{}, nil)

	e := newTestServer(client)
	req := httptest.NewRequest(http.MethodGet, "/ghost/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404 Not Found")
}

func TestBrowse_UpstreamFailurePropagatesStatus(t *testing.T) {
	client := new(MockBucketClient)
	client.On("ListFileNames", mock.Anything, "docs/").
		Return(nil, &b2.APIError{Status: http.StatusUnauthorized, Body: "bad token"})

	e := newTestServer(client)
	req := httptest.NewRequest(http.MethodGet, "/docs/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "401 Unauthorized")
	assert.NotContains(t, rec.Body.String(), "Index of")
}

func TestFile_StreamsObject(t *testing.T) {
	client := new(MockBucketClient)
	client.On("DownloadFile", mock.Anything, "docs/readme.txt").Return(&b2.FileReader{
		Body:          io.NopCloser(strings.NewReader("hello")),
		ContentType:   "text/plain",
		ContentLength: 5,
	}, nil)

	e := newTestServer(client)
	req := httptest.NewRequest(http.MethodGet, "/docs/readme.txt", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
	assert.Equal(t, "5", rec.Header().Get(echo.HeaderContentLength))
	client.AssertExpectations(t)
}

func TestFile_MissingObject(t *testing.T) {
	client := new(MockBucketClient)
	client.On("DownloadFile", mock.Anything, "nope.txt").
		Return(nil, &b2.APIError{Status: http.StatusNotFound, Body: "no such file"})

	e := newTestServer(client)
	req := httptest.NewRequest(http.MethodGet, "/nope.txt", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "404 Not Found")
}
