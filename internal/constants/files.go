package constants

import (
	"path/filepath"
	"strings"
)

// FileGroup names a category of permitted upload types.
type FileGroup string

const (
	FileGroupDocuments    FileGroup = "documents"
	FileGroupImages       FileGroup = "images"
	FileGroupArchives     FileGroup = "archives"
	FileGroupSpreadsheets FileGroup = "spreadsheets"
	FileGroupVideo        FileGroup = "video"
	FileGroupAudio        FileGroup = "audio"
)

// allowedExtensions is the upload allow-list, keyed by lower-case extension
// without the dot.
var allowedExtensions = map[string]FileGroup{
	"pdf":  FileGroupDocuments,
	"doc":  FileGroupDocuments,
	"docx": FileGroupDocuments,
	"txt":  FileGroupDocuments,
	"md":   FileGroupDocuments,
	"jpg":  FileGroupImages,
	"jpeg": FileGroupImages,
	"png":  FileGroupImages,
	"gif":  FileGroupImages,
	"svg":  FileGroupImages,
	"zip":  FileGroupArchives,
	"rar":  FileGroupArchives,
	"7z":   FileGroupArchives,
	"csv":  FileGroupSpreadsheets,
	"xlsx": FileGroupSpreadsheets,
	"xls":  FileGroupSpreadsheets,
	"mp4":  FileGroupVideo,
	"mov":  FileGroupVideo,
	"avi":  FileGroupVideo,
	"mp3":  FileGroupAudio,
	"wav":  FileGroupAudio,
}

var fileIcons = map[string]string{
	"pdf":  "📄",
	"doc":  "📝",
	"docx": "📝",
	"txt":  "📝",
	"md":   "📝",
	"jpg":  "🖼️",
	"jpeg": "🖼️",
	"png":  "🖼️",
	"gif":  "🖼️",
	"svg":  "🖼️",
	"zip":  "📦",
	"rar":  "📦",
	"7z":   "📦",
	"csv":  "📊",
	"xlsx": "📊",
	"xls":  "📊",
	"mp4":  "🎥",
	"mov":  "🎥",
	"avi":  "🎥",
	"mp3":  "🎵",
	"wav":  "🎵",
}

const defaultFileIcon = "📎"

// ExtensionOf extracts the lower-case extension of a file name without the
// dot; "report" and "archive." both yield "".
func ExtensionOf(fileName string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
}

// ExtensionGroup reports the file group for a lower-case extension and
// whether the extension is permitted at all.
func ExtensionGroup(ext string) (FileGroup, bool) {
	g, ok := allowedExtensions[ext]
	return g, ok
}

// AllowedExtensions returns the allow-list in a stable order for error
// messages.
func AllowedExtensions() []string {
	return []string{
		"pdf", "doc", "docx", "txt", "md",
		"jpg", "jpeg", "png", "gif", "svg",
		"zip", "rar", "7z",
		"csv", "xlsx", "xls",
		"mp4", "mov", "avi",
		"mp3", "wav",
	}
}

// FileIcon returns the display icon for a lower-case extension.
func FileIcon(ext string) string {
	if icon, ok := fileIcons[ext]; ok {
		return icon
	}
	return defaultFileIcon
}

const (
	DefaultMaxFileSizeMB        = 10
	DefaultStorageBucket        = "todo-attachments"
	DefaultSignedURLTTLSeconds  = 3600
	DefaultTimeIncrementMinutes = 15
	DefaultCategoryColor        = "#6366F1"
)
