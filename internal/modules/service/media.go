package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/formastudio/forma-api/internal/infra/blob"
)

// uploadMedia sniffs the payload's real content type, rejects kinds outside
// the allowed set, and stores it under prefix/<uuid><ext>. Returns the public
// URL and the detected media kind ("image" or "video").
func uploadMedia(ctx context.Context, store blob.Store, prefix string, data []byte, allowed ...string) (string, string, error) {
	mtype := mimetype.Detect(data)

	var kind string
	switch {
	case strings.HasPrefix(mtype.String(), "image/"):
		kind = "image"
	case strings.HasPrefix(mtype.String(), "video/"):
		kind = "video"
	default:
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedMedia, mtype.String())
	}

	permitted := len(allowed) == 0
	for _, a := range allowed {
		if a == kind {
			permitted = true
		}
	}
	if !permitted {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedMedia, mtype.String())
	}

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), mtype.Extension())
	url, err := store.Upload(ctx, key, mtype.String(), bytes.NewReader(data))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return url, kind, nil
}
