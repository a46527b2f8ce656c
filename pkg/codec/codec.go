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

// Package codec decodes source images and encodes rotated results.
//
// Decoding reads only the first frame of multi-frame formats (animated GIF,
// multi-page TIFF). Encoding is chosen purely from the destination file
// extension and falls back to PNG for anything unrecognised.
package codec

import (
	"bytes"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"gitlab.com/tozd/go/errors"
)

// JPEGQuality is the fixed quality used for every JPEG destination
const JPEGQuality = 95

// 🎯 FormatFor selects the encoder for a destination path by its extension, case-insensitive
func FormatFor(path string) imaging.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return imaging.JPEG
	case ".png":
		return imaging.PNG
	case ".bmp":
		return imaging.BMP
	case ".gif":
		return imaging.GIF
	case ".tif", ".tiff":
		return imaging.TIFF
	default:
		return imaging.PNG
	}
}

// 📥 DecodeFile opens path read-only and decodes its first frame
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening source: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, errors.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// 📥 Decode decodes the first frame of any registered image format
func Decode(r io.Reader) (image.Image, error) {
	// no auto orientation: pixels must match the stored frame
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, errors.Errorf("decoding image: %w", err)
	}
	return img, nil
}

// 📤 Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format imaging.Format) error {
	if img == nil {
		return errors.New("nil image")
	}
	if err := imaging.Encode(w, img, format, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return errors.Errorf("encoding %s: %w", format, err)
	}
	return nil
}

// 📤 EncodeFor encodes img into memory using the encoder selected for path
func EncodeFor(path string, img image.Image) ([]byte, imaging.Format, error) {
	format := FormatFor(path)
	var buf bytes.Buffer
	if err := Encode(&buf, img, format); err != nil {
		return nil, format, err
	}
	return buf.Bytes(), format, nil
}
