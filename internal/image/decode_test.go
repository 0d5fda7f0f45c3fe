package imagepkg

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"
)

func TestIsImageContentType(t *testing.T) {
	cases := []struct {
		ct   string
		want bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"IMAGE/GIF", true},
		{" image/webp ", true},
		{"text/plain", false},
		{"application/octet-stream", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsImageContentType(tc.ct); got != tc.want {
			t.Errorf("IsImageContentType(%q) = %v, want %v", tc.ct, got, tc.want)
		}
	}
}

func TestDecodeImage(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 3, 5))); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	img, err := DecodeImage(&buf)
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 5 {
		t.Fatalf("decoded size = %dx%d, want 3x5", b.Dx(), b.Dy())
	}

	if _, err := DecodeImage(strings.NewReader("not an image")); err == nil {
		t.Fatal("DecodeImage accepted garbage input")
	}
}

func TestGenerateQRPNG(t *testing.T) {
	b, err := GenerateQRPNG("deck:example", 128)
	if err != nil {
		t.Fatalf("GenerateQRPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("qr output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Fatalf("qr size = %dx%d, want 128x128", b.Dx(), b.Dy())
	}
}
