package imagepkg

import (
	"fmt"
	"image"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
)

var fetchClient = http.Client{Timeout: 10 * time.Second}

// FetchImage downloads remote card art and decodes it.
func FetchImage(url string) (image.Image, error) {
	resp, err := fetchClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}
	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}
	return img, nil
}
