package storage

import (
	"todo-hub.com/todo-hub/internal/constants"
	apperrors "todo-hub.com/todo-hub/internal/errors"
)

// ValidateFile runs the pre-upload checks in order: size limit, extension
// presence, extension allow-list. It returns nil when the file may be
// uploaded; otherwise the error message is the user-visible reason and no
// storage call has been made.
func ValidateFile(sizeBytes int64, fileName string, maxMB int) error {
	if sizeBytes > int64(maxMB)*1024*1024 {
		return apperrors.FileTooLarge(sizeBytes, maxMB)
	}

	ext := constants.ExtensionOf(fileName)
	if ext == "" {
		return apperrors.ErrMissingExtension
	}

	if _, ok := constants.ExtensionGroup(ext); !ok {
		return apperrors.FileTypeNotAllowed(ext, constants.AllowedExtensions())
	}

	return nil
}
