package format

import (
	"path/filepath"
	"strings"
)

// Icon classes for rows that are not regular files.
const (
	IconFolder = "fa-folder"
	IconUp     = "fa-level-up-alt"
	IconFile   = "fa-file"
)

var iconByExt = map[string]string{
	// Images
	"jpg": "fa-file-image", "jpeg": "fa-file-image", "png": "fa-file-image",
	"gif": "fa-file-image", "webp": "fa-file-image", "svg": "fa-file-image",
	"bmp": "fa-file-image", "ico": "fa-file-image", "tiff": "fa-file-image",

	// Plain text and config
	"txt": "fa-file-alt", "md": "fa-file-alt", "log": "fa-file-alt",
	"ini": "fa-file-alt", "cfg": "fa-file-alt", "conf": "fa-file-alt",
	"yml": "fa-file-alt", "yaml": "fa-file-alt", "toml": "fa-file-alt",
	"json": "fa-file-alt", "xml": "fa-file-alt",

	// Video
	"mp4": "fa-file-video", "mkv": "fa-file-video", "webm": "fa-file-video",
	"avi": "fa-file-video", "mov": "fa-file-video", "flv": "fa-file-video",
	"wmv": "fa-file-video", "m4v": "fa-file-video",

	// Audio
	"mp3": "fa-file-audio", "wav": "fa-file-audio", "ogg": "fa-file-audio",
	"flac": "fa-file-audio", "aac": "fa-file-audio", "m4a": "fa-file-audio",
	"opus": "fa-file-audio",

	// Archives
	"zip": "fa-file-archive", "tar": "fa-file-archive", "gz": "fa-file-archive",
	"bz2": "fa-file-archive", "xz": "fa-file-archive", "7z": "fa-file-archive",
	"rar": "fa-file-archive", "zst": "fa-file-archive",

	// Documents
	"doc": "fa-file-word", "docx": "fa-file-word", "odt": "fa-file-word",
	"rtf": "fa-file-word",
	"xls": "fa-file-excel", "xlsx": "fa-file-excel", "ods": "fa-file-excel",
	"ppt": "fa-file-powerpoint", "pptx": "fa-file-powerpoint", "odp": "fa-file-powerpoint",
	"pdf": "fa-file-pdf",

	// Source code
	"go": "fa-file-code", "js": "fa-file-code", "ts": "fa-file-code",
	"py": "fa-file-code", "rb": "fa-file-code", "rs": "fa-file-code",
	"java": "fa-file-code", "c": "fa-file-code", "h": "fa-file-code",
	"cpp": "fa-file-code", "hpp": "fa-file-code", "cs": "fa-file-code",
	"sh": "fa-file-code", "css": "fa-file-code", "html": "fa-file-code",
	"php": "fa-file-code", "sql": "fa-file-code",

	// Tabular data
	"csv": "fa-file-csv", "tsv": "fa-file-csv",

	// Signatures
	"sig": "fa-file-signature", "asc": "fa-file-signature", "sign": "fa-file-signature",
}

// IconClass picks an icon for a file by its extension, case-insensitively.
// Unknown or missing extensions fall through to the generic file icon.
func IconClass(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if class, ok := iconByExt[ext]; ok {
		return class
	}
	return IconFile
}
