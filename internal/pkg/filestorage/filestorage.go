package filestorage

import (
	"mime/multipart"
)

// Storage defines the interface for stored staff document files.
type Storage interface {
	// SaveFile saves an uploaded file and returns its accessible URL path.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath saves an uploaded file under a subdirectory.
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a stored file. Deleting a missing file is not an error.
	DeleteFile(filePath string) error
}
