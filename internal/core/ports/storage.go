package ports

import "context"

// UploadResult is returned after a successful object upload.
type UploadResult struct {
	URL string
	Key string
}

// FileStorage stores binary assets in an external object store. Upload
// derives a collision-free key from folder plus a random name, keeping only
// the extension of fileName. Callers enforce MIME and size limits.
type FileStorage interface {
	Upload(ctx context.Context, file []byte, fileName, mimeType, folder string) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}
