// Package media converts user-selected files into inline data URIs for
// post previews.
package media

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/h2non/filetype"
)

// Limits bounds what Capture accepts. Zero values keep the historical
// behavior: no size cap and any content type.
type Limits struct {
	// MaxBytes rejects files larger than this many bytes when positive.
	MaxBytes int64

	// Types restricts the sniffed MIME family (e.g. "image", "video")
	// when non-empty.
	Types []string
}

// Capture reads the file at path and returns it as a data URI. The
// content type is sniffed from the file's magic bytes, never trusted from
// the extension.
func Capture(path string, limits Limits) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("media: %w", err)
	}
	if limits.MaxBytes > 0 && info.Size() > limits.MaxBytes {
		return "", fmt.Errorf("media: %s is %d bytes, limit is %d", path, info.Size(), limits.MaxBytes)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("media: %w", err)
	}

	mime := "application/octet-stream"
	kind, err := filetype.Match(buf)
	if err == nil && kind != filetype.Unknown {
		mime = kind.MIME.Value
		if len(limits.Types) > 0 && !allowed(kind.MIME.Type, limits.Types) {
			return "", fmt.Errorf("media: type %s is not allowed", kind.MIME.Value)
		}
	} else if len(limits.Types) > 0 {
		return "", fmt.Errorf("media: could not determine type of %s", path)
	}

	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(buf)), nil
}

func allowed(family string, types []string) bool {
	for _, t := range types {
		if t == family {
			return true
		}
	}
	return false
}
