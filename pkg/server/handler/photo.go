/*
Copyright 2026 the QAP-PetFriends Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// maxPhotoSize bounds a single uploaded photo.
const maxPhotoSize = 8 << 20

var (
	// ErrNoPhoto is raised when a request carries no pet_photo part.
	ErrNoPhoto = errors.New("no pet_photo in request")

	// ErrPhotoTooLarge is raised when a photo exceeds maxPhotoSize.
	ErrPhotoTooLarge = errors.New("pet_photo too large")
)

//nolint:gochecknoglobals
var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// readPhoto returns the pet_photo part of a multipart request, or ErrNoPhoto.
func readPhoto(r *http.Request) ([]byte, error) {
	file, _, err := r.FormFile("pet_photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, ErrNoPhoto
		}

		return nil, fmt.Errorf("reading pet_photo: %w", err)
	}

	defer func(f multipart.File) { _ = f.Close() }(file)

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading pet_photo: %w", err)
	}

	if len(data) > maxPhotoSize {
		return nil, ErrPhotoTooLarge
	}

	return data, nil
}

// encodePhoto renders image content as a data URL.  The boolean is false when
// the content is not a supported image, in which case the URL is empty.
// The declared part content type is ignored, only the bytes are trusted.
func encodePhoto(data []byte) (string, bool) {
	contentType := http.DetectContentType(data)

	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}

	if !imageTypes[contentType] {
		return "", false
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), true
}
