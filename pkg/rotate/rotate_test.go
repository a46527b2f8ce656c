// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rotate

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeImage builds a w x h image where every pixel has a distinct color
func makeImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: uint8(10 + x + y*w), A: 255})
		}
	}
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		angle int
		want  int
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-360, 0},
		{-450, 270},
		{720, 0},
		{1, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.angle), "normalize(%d)", tt.angle)
	}
}

func TestValidateAngle(t *testing.T) {
	for _, ok := range []int{0, 90, 180, 270, 360, -90, -270, 900} {
		assert.NoError(t, ValidateAngle(ok), "angle %d should be valid", ok)
	}
	for _, bad := range []int{1, 45, -45, 91, 359} {
		err := ValidateAngle(bad)
		require.Error(t, err, "angle %d should be rejected", bad)
		assert.ErrorIs(t, err, ErrInvalidAngle)
	}
}

func TestValidateSuffix(t *testing.T) {
	tests := []struct {
		name    string
		suffix  string
		wantErr bool
	}{
		{name: "empty", suffix: ""},
		{name: "default_like", suffix: "_r90"},
		{name: "placeholder", suffix: "_rot{angle}"},
		{name: "spaces", suffix: " rotated "},
		{name: "slash", suffix: "_a/b", wantErr: true},
		{name: "backslash", suffix: `_a\b`, wantErr: true},
		{name: "colon", suffix: "_a:b", wantErr: true},
		{name: "star", suffix: "*", wantErr: true},
		{name: "question", suffix: "?", wantErr: true},
		{name: "pipe", suffix: "|", wantErr: true},
		{name: "quote", suffix: `"`, wantErr: true},
		{name: "angle_brackets", suffix: "<x>", wantErr: true},
		{name: "control", suffix: "_\x01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSuffix(tt.suffix)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSuffix)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestImageIdentity(t *testing.T) {
	src := makeImage(3, 2)

	for _, angle := range []int{0, 360, -360, 720} {
		out, err := Image(src, angle)
		require.NoError(t, err)
		assert.Same(t, src, out, "angle %d should return the source image", angle)
	}
}

func TestImageQuarterTurns(t *testing.T) {
	const w, h = 3, 2
	src := makeImage(w, h)

	tests := []struct {
		name   string
		angles []int
		dstW   int
		dstH   int
		// dest maps a source pixel to its clockwise rotated position
		dest func(x, y int) (int, int)
	}{
		{
			name:   "clockwise_90",
			angles: []int{90, -270, 450},
			dstW:   h,
			dstH:   w,
			dest:   func(x, y int) (int, int) { return h - 1 - y, x },
		},
		{
			name:   "half_turn",
			angles: []int{180, -180, 540},
			dstW:   w,
			dstH:   h,
			dest:   func(x, y int) (int, int) { return w - 1 - x, h - 1 - y },
		},
		{
			name:   "clockwise_270",
			angles: []int{270, -90, 630},
			dstW:   h,
			dstH:   w,
			dest:   func(x, y int) (int, int) { return y, w - 1 - x },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, angle := range tt.angles {
				out, err := Image(src, angle)
				require.NoError(t, err)

				b := out.Bounds()
				require.Equal(t, tt.dstW, b.Dx(), "width for angle %d", angle)
				require.Equal(t, tt.dstH, b.Dy(), "height for angle %d", angle)

				for y := 0; y < h; y++ {
					for x := 0; x < w; x++ {
						dx, dy := tt.dest(x, y)
						assert.Equal(t, src.NRGBAAt(x, y), nrgbaAt(out, b.Min.X+dx, b.Min.Y+dy),
							"angle %d: pixel (%d,%d) should move to (%d,%d)", angle, x, y, dx, dy)
					}
				}
			}
		})
	}
}

func TestImageRejectsInvalid(t *testing.T) {
	_, err := Image(makeImage(1, 1), 45)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAngle)

	_, err = Image(nil, 90)
	require.Error(t, err)
}
