package ocr

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func pngFixture(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("prepared image does not decode: %v", err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestPrepareImageDownscalesWideImages(t *testing.T) {
	prepared, err := PrepareImage(pngFixture(t, 2000, 800))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, h := decodeSize(t, prepared)
	if w != 1000 || h != 400 {
		t.Fatalf("expected 1000x400, got %dx%d", w, h)
	}
}

func TestPrepareImageRoundsHeightToNearestPixel(t *testing.T) {
	// 1500 wide, 1001 tall: ratio 2/3 gives 667.33..., rounds to 667.
	prepared, err := PrepareImage(pngFixture(t, 1500, 1001))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, h := decodeSize(t, prepared)
	if w != 1000 || h != 667 {
		t.Fatalf("expected 1000x667, got %dx%d", w, h)
	}
}

func TestPrepareImageKeepsSmallImages(t *testing.T) {
	prepared, err := PrepareImage(pngFixture(t, 640, 480))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, h := decodeSize(t, prepared)
	if w != 640 || h != 480 {
		t.Fatalf("expected 640x480 untouched, got %dx%d", w, h)
	}
}

func TestPrepareImageFailsOnGarbage(t *testing.T) {
	if _, err := PrepareImage([]byte{0x00, 0x01, 0x02}); err == nil {
		t.Fatal("expected decode error")
	}
}
