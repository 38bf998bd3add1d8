// utils/file_utils.go
package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const profileImageMaxDim = 512

// SaveProfileImage stores an uploaded profile picture under uploads/profiles,
// resized so neither dimension exceeds 512px, and returns the public path.
func SaveProfileImage(file *multipart.FileHeader) (string, error) {
	if err := ValidateImageFile(file.Filename, file.Size); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	// Fit keeps aspect ratio; small images pass through untouched.
	img = imaging.Fit(img, profileImageMaxDim, profileImageMaxDim, imaging.Lanczos)

	uploadDir := filepath.Join("uploads", "profiles")
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", err
	}

	filename := uuid.NewString() + ".jpg"
	fullPath := filepath.Join(uploadDir, filename)
	if err := imaging.Save(img, fullPath, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return "/" + filepath.ToSlash(fullPath), nil
}
