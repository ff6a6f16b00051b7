// Package labelimage validates uploaded label images and prepares them for
// the vision model.
package labelimage

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"labelchecker/pkg/serrors"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // registers the webp decoder
)

// Supported content types.
const (
	ContentTypePNG  = "image/png"
	ContentTypeJPEG = "image/jpeg"
	ContentTypeGIF  = "image/gif"
	ContentTypeWEBP = "image/webp"
)

var contentTypes = map[string]string{
	"png":  ContentTypePNG,
	"jpeg": ContentTypeJPEG,
	"gif":  ContentTypeGIF,
	"webp": ContentTypeWEBP,
}

// Limits bounds what Inspect accepts.
type Limits struct {
	MaxBytes  int64
	MaxPixels int64
}

// Info describes a decoded image header.
type Info struct {
	Format      string
	ContentType string
	Width       int
	Height      int
}

// Extension returns the file extension used for object keys.
func (i Info) Extension() string {
	if i.Format == "jpeg" {
		return ".jpg"
	}

	return "." + i.Format
}

// Inspect checks size, format and dimensions of data without decoding the
// whole image. Oversized input yields serrors.ErrTooLarge, anything that is
// not a png, jpeg, gif or webp image yields serrors.ErrBadRequest.
func Inspect(data []byte, limits Limits) (Info, error) {
	if len(data) == 0 {
		return Info{}, serrors.With(serrors.ErrBadRequest, "image is empty")
	}
	if limits.MaxBytes > 0 && int64(len(data)) > limits.MaxBytes {
		return Info{}, serrors.With(serrors.ErrTooLarge, "image exceeds %d bytes", limits.MaxBytes)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, serrors.With(serrors.ErrBadRequest, "unsupported image: %v", err)
	}
	ct, ok := contentTypes[format]
	if !ok {
		return Info{}, serrors.With(serrors.ErrBadRequest, "unsupported image format %q", format)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Info{}, serrors.With(serrors.ErrBadRequest, "image has no pixels")
	}
	if limits.MaxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > limits.MaxPixels {
		return Info{}, serrors.With(serrors.ErrTooLarge, "image exceeds %d pixels", limits.MaxPixels)
	}

	return Info{Format: format, ContentType: ct, Width: cfg.Width, Height: cfg.Height}, nil
}

// PrepareForModel downscales data so that its longest side is at most maxDim.
// Images that already fit are returned unchanged. Downscaled images are
// re-encoded as JPEG, except PNG which stays PNG to keep small print sharp.
func PrepareForModel(data []byte, maxDim int) ([]byte, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", serrors.With(serrors.ErrBadRequest, "could not decode image: %v", err)
	}
	ct := contentTypes[format]

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return data, ct, nil
	}

	nw, nh := maxDim, maxDim
	if w >= h {
		nh = max(1, h*maxDim/w)
	} else {
		nw = max(1, w*maxDim/h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, dst)
	case "gif":
		err = gif.Encode(&buf, dst, nil)
	default:
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90})
		ct = ContentTypeJPEG
	}
	if err != nil {
		return nil, "", fmt.Errorf("could not encode resized image: %w", err)
	}

	return buf.Bytes(), ct, nil
}
