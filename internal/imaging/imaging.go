// Package imaging normalizes uploaded item photos: formats are sniffed
// from bytes, oversized images are downscaled, and everything is stored
// as JPEG.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxEdge caps the longer side of a stored photo.
const MaxEdge = 1024

// MaxUploadBytes is the largest raw upload accepted.
const MaxUploadBytes = 10 << 20

// Quality is the JPEG encoder quality for stored photos.
const Quality = 85

// accepted lists sniffed MIME types we will decode.
var accepted = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Photo is a processed, storage-ready image.
type Photo struct {
	Data []byte
	MIME string
}

// Process validates and normalizes an uploaded image. The content type
// is sniffed from the payload, never trusted from headers, and the
// output is always JPEG.
func Process(r io.Reader) (*Photo, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return nil, fmt.Errorf("image larger than %d bytes", MaxUploadBytes)
	}

	mime := http.DetectContentType(data)
	if !accepted[mime] {
		return nil, fmt.Errorf("unsupported image type %s (JPEG, PNG or WebP expected)", mime)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", mime, err)
	}

	img = fit(img, MaxEdge)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("encoding JPEG: %w", err)
	}
	return &Photo{Data: buf.Bytes(), MIME: "image/jpeg"}, nil
}

// fit scales img down so neither edge exceeds max, preserving the
// aspect ratio. Images already within bounds pass through untouched.
func fit(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}

	scale := float64(max) / float64(w)
	if h > w {
		scale = float64(max) / float64(h)
	}
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
