package imagepkg

import (
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

// IsImageContentType reports whether an uploaded part claims an image MIME
// type. Anything else is skipped without comment.
func IsImageContentType(ct string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(ct)), "image/")
}

// DecodeImage decodes an uploaded file into an image handle. A failed decode
// means the entry never appears in the session list; there is no other
// failure surface for it.
func DecodeImage(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}
