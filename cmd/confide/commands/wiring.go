package commands

import (
	"context"

	"confide/config"
	"confide/internal/message/atrest"
	"confide/internal/message/blob"
)

// newAtRestCipher builds the server-held encryption layer from config. A
// disabled layer yields a nil Cipher, which the repository treats as
// passthrough.
func newAtRestCipher(cfg *config.Config) (*atrest.Cipher, error) {
	if !cfg.AtRest.Enabled {
		return nil, nil
	}
	return atrest.New(cfg.AtRest.Key)
}

// newBlobStore picks the offload backend: S3 when a bucket is configured,
// the local directory otherwise, nil when neither is set (payloads stay
// inline regardless of size).
func newBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	if cfg.Blob.S3Bucket != "" {
		return blob.NewS3Store(ctx, cfg.Blob.S3Bucket)
	}
	if cfg.Blob.Dir != "" {
		return blob.NewLocalStore(cfg.Blob.Dir)
	}
	return nil, nil
}
