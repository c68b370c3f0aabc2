package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mernspace/catalog-service/internal/api/metrics"
	"github.com/mernspace/catalog-service/internal/core/ports"
)

// extractStorageKey recovers the object-storage key from a stored asset URL
// by taking the URL path without its leading slash. Returns "" when the
// value is not an absolute URL.
func extractStorageKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

// removeAsset deletes the object behind imageURL, best effort. Unparseable
// URLs and storage failures are logged and swallowed; an orphaned asset is
// an accepted outcome, a failed entity mutation is not.
func removeAsset(ctx context.Context, storage ports.FileStorage, imageURL string, log zerolog.Logger) {
	if imageURL == "" || storage == nil {
		return
	}
	key := extractStorageKey(imageURL)
	if key == "" {
		log.Warn().Str("url", imageURL).Msg("cannot extract storage key, skipping asset delete")
		return
	}
	if err := storage.Delete(ctx, key); err != nil {
		metrics.AssetCleanupErrorsTotal.Inc()
		log.Warn().Err(err).Str("key", key).Msg("failed to delete asset")
	}
}
