package storage

import (
	"fmt"
	"strings"
	"time"
)

const pathTimestampLayout = "20060102_150405"

var fileNameSanitizer = strings.NewReplacer(" ", "_", "/", "_")

// SanitizeFileName replaces the characters that would break an object key.
func SanitizeFileName(name string) string {
	return fileNameSanitizer.Replace(name)
}

// ObjectPath builds the collision-free key an attachment is stored under:
// {todo-id}/{timestamp}_{sanitized-filename}.
func ObjectPath(todoID, fileName string, now time.Time) string {
	return fmt.Sprintf("%s/%s_%s", todoID, now.Format(pathTimestampLayout), SanitizeFileName(fileName))
}
