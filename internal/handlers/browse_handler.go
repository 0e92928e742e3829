// Package handlers wires the provider client and the listing core to the
// HTTP surface: directory pages, file downloads, and the error page.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/deirn/cf-b2cdn/internal/b2"
	"github.com/deirn/cf-b2cdn/internal/listing"
	"github.com/labstack/echo/v4"
)

// BucketClient is the slice of the provider client the handlers use.
type BucketClient interface {
	ListFileNames(ctx context.Context, prefix string) ([]b2.RawEntry, error)
	DownloadFile(ctx context.Context, name string) (*b2.FileReader, error)
}

type BrowseHandler struct {
	client BucketClient
	site   listing.Site
}

func NewBrowseHandler(client BucketClient, site listing.Site) *BrowseHandler {
	return &BrowseHandler{client: client, site: site}
}

// Handle dispatches on the request path: a trailing separator means a
// directory page, anything else is a file.
func (h *BrowseHandler) Handle(c echo.Context) error {
	path := c.Request().URL.Path
	if strings.HasSuffix(path, "/") {
		return h.browse(c, path)
	}
	return h.file(c, path)
}

// browse fetches one delimiter-grouped listing for the path and renders
// the directory page.
func (h *BrowseHandler) browse(c echo.Context, path string) error {
	prefix := strings.TrimPrefix(path, "/")

	entries, err := h.client.ListFileNames(c.Request().Context(), prefix)
	if err != nil {
		return upstreamError(err)
	}

	page, err := listing.Render(prefix, entries, h.site)
	if errors.Is(err, listing.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "browse", page)
}

// file streams the object from the content-serving host.
func (h *BrowseHandler) file(c echo.Context, path string) error {
	name := strings.TrimPrefix(path, "/")

	file, err := h.client.DownloadFile(c.Request().Context(), name)
	if err != nil {
		return upstreamError(err)
	}
	defer func() { _ = file.Body.Close() }()

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if file.ContentLength >= 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(file.ContentLength, 10))
	}

	return c.Stream(http.StatusOK, contentType, file.Body)
}

// upstreamError forwards a provider failure's status untouched; anything
// else at the provider boundary is a bad gateway.
func upstreamError(err error) error {
	var apiErr *b2.APIError
	if errors.As(err, &apiErr) {
		return echo.NewHTTPError(apiErr.Status)
	}
	return echo.NewHTTPError(http.StatusBadGateway, err.Error())
}
