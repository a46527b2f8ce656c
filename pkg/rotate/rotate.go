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

// Package rotate applies lossless quarter-turn rotations to decoded images.
package rotate

import (
	"image"
	"strings"
	"unicode"

	"github.com/disintegration/imaging"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrInvalidAngle is returned for angles that are not a multiple of 90
	ErrInvalidAngle = errors.Base("angle must be a multiple of 90")
	// ErrInvalidSuffix is returned for suffixes that cannot appear in a file name
	ErrInvalidSuffix = errors.Base("suffix contains characters not allowed in file names")
)

// illegalNameChars are rejected in suffix templates on every platform
const illegalNameChars = `<>:"/\|?*`

// 🔄 Normalize maps any angle into [0, 360)
func Normalize(angle int) int {
	return ((angle % 360) + 360) % 360
}

// 🔍 ValidateAngle checks that angle is a quarter turn
func ValidateAngle(angle int) error {
	if angle%90 != 0 {
		return errors.Errorf("%w: got %d", ErrInvalidAngle, angle)
	}
	return nil
}

// 🔍 ValidateSuffix checks that a suffix template only holds file name safe characters
func ValidateSuffix(suffix string) error {
	for _, r := range suffix {
		if strings.ContainsRune(illegalNameChars, r) || unicode.IsControl(r) {
			return errors.Errorf("%w: %q", ErrInvalidSuffix, string(r))
		}
	}
	return nil
}

// 🔄 Image rotates img clockwise by angle degrees.
//
// The angle is normalized first. A normalized angle of 0 returns img itself so
// the pixels stay bit-identical to the decoded frame. Other quarter turns are
// pure pixel moves with no resampling. Angles that are not a multiple of 90
// return ErrInvalidAngle.
func Image(img image.Image, angle int) (image.Image, error) {
	if img == nil {
		return nil, errors.New("nil image")
	}
	if err := ValidateAngle(angle); err != nil {
		return nil, err
	}

	// imaging rotates counter-clockwise
	switch Normalize(angle) {
	case 0:
		return img, nil
	case 90:
		return imaging.Rotate270(img), nil
	case 180:
		return imaging.Rotate180(img), nil
	default:
		return imaging.Rotate90(img), nil
	}
}
