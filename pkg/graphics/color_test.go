package graphics

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorFromInt32(t *testing.T) {
	assert.Equal(t, ColorRed, ColorFromInt32(-65536))
	assert.Equal(t, int32(-65536), ColorRed.Int32())
	assert.Equal(t, Color(0x00000010), ColorFromInt32(16))
}

func TestColorComponents(t *testing.T) {
	c := RGBA8(0x12, 0x34, 0x56, 0x78)
	r, g, b, a := c.RGBA8()
	assert.Equal(t, []uint8{0x12, 0x34, 0x56, 0x78}, []uint8{r, g, b, a})
	assert.Equal(t, uint8(0x78), c.Alpha())
	assert.Equal(t, "#78123456", c.String())
	assert.Equal(t, ColorBlue, RGB(0, 0, 0xFF))
}

func TestFromColor(t *testing.T) {
	assert.Equal(t, ColorGreen, FromColor(color.RGBA{G: 0xFF, A: 0xFF}))
	assert.Equal(t, ColorTransparent, FromColor(color.RGBA{}))
}

func TestSizeIsEmpty(t *testing.T) {
	assert.True(t, Size{}.IsEmpty())
	assert.True(t, Size{Width: 10}.IsEmpty())
	assert.False(t, Size{Width: 10, Height: 1}.IsEmpty())
}
