// Package listing turns a raw delimiter-grouped listing into the typed
// page value the browse template renders: filtered, folder-first ordered,
// and display-formatted.
package listing

import (
	"errors"
	"strings"

	"github.com/deirn/cf-b2cdn/internal/b2"
	"github.com/deirn/cf-b2cdn/internal/format"
)

// ErrNotFound means the prefix had no renderable entries. An empty
// filtered listing is treated as a missing folder, never as a valid
// zero-row page.
var ErrNotFound = errors.New("listing: no renderable entries")

// RootLabel names the bucket root in page titles and breadcrumbs.
const RootLabel = "root"

// Site holds the request-scoped host configuration the renderer needs:
// files link to the content-serving host, not the listing host.
type Site struct {
	FileHost string
}

// Breadcrumb is one step of the navigation trail. Path is the cumulative
// prefix with a trailing separator; the root crumb's Path is "/".
type Breadcrumb struct {
	Label string
	Path  string
}

// Row is one display row of the listing table. Size, ExactSize, and Date
// are empty for folders and the up-level row.
type Row struct {
	Label     string
	Href      string
	Icon      string
	Size      string
	ExactSize string
	Date      string
}

// Page is the fully assembled listing document handed to the template.
type Page struct {
	Label       string
	Path        string
	Breadcrumbs []Breadcrumb
	Rows        []Row
}

// Render builds the page for fullPath from the provider's raw entries.
// fullPath is the decoded request path without the leading separator,
// ending in the separator ("" for the root).
func Render(fullPath string, entries []b2.RawEntry, site Site) (*Page, error) {
	var folders, files []Row
	seenFolders := make(map[string]bool)

	for _, entry := range entries {
		base := strings.TrimPrefix(entry.Name, fullPath)
		if base == "" {
			// The prefix's own empty-folder marker object
			continue
		}
		if hiddenName(base) {
			continue
		}

		if entry.Kind == b2.KindFolder {
			if seenFolders[base] {
				continue
			}
			seenFolders[base] = true
			folders = append(folders, Row{
				Label: base,
				Href:  b2.EscapePath(base),
				Icon:  format.IconFolder,
			})
			continue
		}

		files = append(files, Row{
			Label:     base,
			Href:      site.FileHost + "/" + b2.EscapePath(entry.Name),
			Icon:      format.IconClass(base),
			Size:      format.Size(entry.SizeBytes),
			ExactSize: format.ExactSize(entry.SizeBytes),
			Date:      format.Timestamp(entry.UploadedAt),
		})
	}

	if len(folders) == 0 && len(files) == 0 {
		return nil, ErrNotFound
	}

	rows := make([]Row, 0, 1+len(folders)+len(files))
	if fullPath != "" {
		rows = append(rows, Row{Label: "..", Href: "../", Icon: format.IconUp})
	}
	rows = append(rows, folders...)
	rows = append(rows, files...)

	return &Page{
		Label:       currentLabel(fullPath),
		Path:        "/" + fullPath,
		Breadcrumbs: breadcrumbs(fullPath),
		Rows:        rows,
	}, nil
}

// hiddenName reports whether any path segment of a basename uses the
// dot-prefixed hidden-file convention.
func hiddenName(base string) bool {
	for _, segment := range strings.Split(base, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

func currentLabel(fullPath string) string {
	if fullPath == "" {
		return RootLabel
	}
	segments := strings.Split(strings.TrimSuffix(fullPath, "/"), "/")
	return segments[len(segments)-1]
}

// breadcrumbs splits the full path into a trail of cumulative links,
// starting from the root.
func breadcrumbs(fullPath string) []Breadcrumb {
	crumbs := []Breadcrumb{{Label: RootLabel, Path: "/"}}

	path := ""
	for _, part := range strings.Split(strings.TrimSuffix(fullPath, "/"), "/") {
		if part == "" {
			continue
		}
		path += part + "/"
		crumbs = append(crumbs, Breadcrumb{Label: part, Path: path})
	}
	return crumbs
}
