package qrgen

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// LoadLogo resolves a logo source into an image. The source is either
// a local file path or an http(s) URL.
func LoadLogo(source string) (image.Image, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetchLogo(source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("opening logo %q: %w", source, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding logo %q: %w", source, err)
	}

	return img, nil
}

func fetchLogo(url string) (image.Image, error) {
	client := resty.New()
	client.SetTimeout(15 * time.Second)
	client.SetHeader("Accept", "image/*")

	resp, err := client.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching logo %q: %w", url, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("fetching logo %q: %s", url, resp.Status())
	}

	img, _, err := image.Decode(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("decoding logo %q: %w", url, err)
	}

	return img, nil
}
