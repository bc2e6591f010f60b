package processor

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, width, height int, format imaging.Format) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 200, G: 120, B: 40, A: 255})
	buf := new(bytes.Buffer)
	require.NoError(t, imaging.Encode(buf, img, format))
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (int, int, string) {
	t.Helper()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height, format
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want Format
	}{
		{"webp", FormatWebP},
		{"png", FormatPNG},
		{"jpeg", FormatJPEG},
		{"jpg", FormatJPEG},
		{"", FormatWebP},
		{"gif", FormatWebP},
		{"JPEG", FormatWebP}, // format matching is exact, unknown falls back
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ParseFormat(tc.in), "input %q", tc.in)
	}
}

func TestFormatMapping(t *testing.T) {
	require.Equal(t, "image/webp", FormatWebP.MIME())
	require.Equal(t, "image/png", FormatPNG.MIME())
	require.Equal(t, "image/jpeg", FormatJPEG.MIME())

	require.Equal(t, "webp", FormatWebP.Ext())
	require.Equal(t, "png", FormatPNG.Ext())
	require.Equal(t, "jpg", FormatJPEG.Ext())

	// jpg and jpeg are the same format, so they normalize identically.
	require.Equal(t, ParseFormat("jpg"), ParseFormat("jpeg"))
}

func TestProcessScalesDownWideImages(t *testing.T) {
	input := encodeTestImage(t, 3000, 2000, imaging.JPEG)

	result, err := Process(input, FormatWebP)
	require.NoError(t, err)
	require.Equal(t, "image/webp", result.MIME)
	require.Equal(t, "webp", result.Ext)

	width, height, format := decodeDims(t, result.Data)
	require.Equal(t, "webp", format)
	require.Equal(t, MaxWidth, width)
	require.Equal(t, 1280, height) // 2000 * 1920 / 3000, aspect preserved
}

func TestProcessNeverScalesUp(t *testing.T) {
	input := encodeTestImage(t, 800, 600, imaging.PNG)

	result, err := Process(input, FormatPNG)
	require.NoError(t, err)

	width, height, _ := decodeDims(t, result.Data)
	require.Equal(t, 800, width)
	require.Equal(t, 600, height)
}

func TestProcessOutputFormats(t *testing.T) {
	input := encodeTestImage(t, 100, 50, imaging.PNG)

	cases := []struct {
		format     Format
		wantMIME   string
		wantExt    string
		wantFormat string
	}{
		{FormatWebP, "image/webp", "webp", "webp"},
		{FormatPNG, "image/png", "png", "png"},
		{FormatJPEG, "image/jpeg", "jpg", "jpeg"},
	}
	for _, tc := range cases {
		result, err := Process(input, tc.format)
		require.NoError(t, err, "format %s", tc.format)
		require.Equal(t, tc.wantMIME, result.MIME)
		require.Equal(t, tc.wantExt, result.Ext)

		width, height, format := decodeDims(t, result.Data)
		require.Equal(t, tc.wantFormat, format)
		require.Equal(t, 100, width)
		require.Equal(t, 50, height)
	}
}

func TestProcessDecodesWebPInput(t *testing.T) {
	// A previously converted image must survive a second pass.
	input := encodeTestImage(t, 200, 100, imaging.PNG)
	first, err := Process(input, FormatWebP)
	require.NoError(t, err)

	second, err := Process(first.Data, FormatWebP)
	require.NoError(t, err)

	w1, h1, f1 := decodeDims(t, first.Data)
	w2, h2, f2 := decodeDims(t, second.Data)
	require.Equal(t, w1, w2)
	require.Equal(t, h1, h2)
	require.Equal(t, f1, f2)
}

func TestProcessRejectsGarbage(t *testing.T) {
	_, err := Process([]byte("definitely not an image"), FormatWebP)
	require.ErrorIs(t, err, ErrDecode)

	_, err = Process(nil, FormatPNG)
	require.ErrorIs(t, err, ErrDecode)
}
