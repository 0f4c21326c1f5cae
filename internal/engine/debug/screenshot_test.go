package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
}

func TestFileName(t *testing.T) {
	s := NewScreenshots("shots", "affinity")
	s.now = fixedClock
	assert.Equal(t, filepath.Join("shots", "affinity_2024-05-01_12-30-00_000.png"), s.FileName())

	s.Dir = ""
	assert.Equal(t, "affinity_2024-05-01_12-30-00_000.png", s.FileName())
}

func TestFlipRGBA(t *testing.T) {
	// Bottom row red, top row blue, as GL reads them back.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img := FlipRGBA(pixels, 1, 2)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 1))
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := NewScreenshots(dir, "shot")
	s.now = fixedClock

	pixels := make([]byte, 2*2*4)
	pixels[0], pixels[3] = 200, 255

	first, err := s.Save(pixels, 2, 2)
	require.NoError(t, err)
	second, err := s.Save(pixels, 2, 2)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	f, err := os.Open(first)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	// The first pixel read back is the bottom-left one.
	r, _, _, _ := img.At(0, 1).RGBA()
	assert.Equal(t, uint32(200)*0x101, r)
}

func TestSaveSizeMismatch(t *testing.T) {
	_, err := NewScreenshots(t.TempDir(), "shot").Save(make([]byte, 3), 1, 1)
	assert.Error(t, err)
}
