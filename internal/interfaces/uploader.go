package interfaces

import "context"

type Uploader interface {
	// UploadBytes stores an image and returns its public URL.
	UploadBytes(ctx context.Context, folder string, filename string, b []byte) (string, error)
	// UploadRaw stores a non-image artifact (PPT decks, archives).
	UploadRaw(ctx context.Context, folder string, filename string, b []byte) (string, error)
}
