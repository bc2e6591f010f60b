package processor

import (
	"bytes"
	"fmt"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	// Register the WebP decoder so previously converted images decode too.
	_ "golang.org/x/image/webp"
)

const (
	// MaxWidth is the ceiling applied to the output image. Wider inputs are
	// scaled down preserving aspect ratio; narrower ones are never scaled up.
	MaxWidth = 1920

	// Quality is the lossy encoding quality for JPEG and WebP output.
	Quality = 80
)

// Format is one of the supported output encodings.
type Format string

const (
	FormatWebP Format = "webp"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// ParseFormat normalizes a client-supplied format string. "jpg" and "jpeg"
// are the same format; anything unrecognized (or empty) falls back to WebP.
func ParseFormat(s string) Format {
	switch s {
	case "png":
		return FormatPNG
	case "jpeg", "jpg":
		return FormatJPEG
	default:
		return FormatWebP
	}
}

// MIME returns the content type of the encoded output.
func (f Format) MIME() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	default:
		return "image/webp"
	}
}

// Ext returns the file extension for the format, without the leading dot.
// JPEG normalizes to "jpg".
func (f Format) Ext() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpg"
	default:
		return "webp"
	}
}

// Result is the output of a single transform pass.
type Result struct {
	Data []byte
	MIME string
	Ext  string
}

// Process decodes the input, scales it down to MaxWidth if it is wider
// (never up), and re-encodes it in the requested format at Quality.
// It is a pure function of its inputs; undecodable input returns ErrDecode.
func Process(data []byte, format Format) (Result, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if img.Bounds().Dx() > MaxWidth {
		img = imaging.Resize(img, MaxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	switch format {
	case FormatPNG:
		err = imaging.Encode(buf, img, imaging.PNG)
	case FormatJPEG:
		err = imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(Quality))
	default:
		err = webp.Encode(buf, img, &webp.Options{Quality: Quality})
	}
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode image as %s: %w", format.Ext(), err)
	}

	return Result{Data: buf.Bytes(), MIME: format.MIME(), Ext: format.Ext()}, nil
}
