package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeEmail(t *testing.T) {
	email, err := SanitizeEmail("  Priya.Nair@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "priya.nair@example.com", email)

	_, err = SanitizeEmail("not-an-email")
	assert.Error(t, err)

	_, err = SanitizeEmail("")
	assert.Error(t, err)
}

func TestSanitizePhone(t *testing.T) {
	phone, err := SanitizePhone("+91 98765-43210")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", phone)

	phone, err = SanitizePhone("919876543210")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", phone)

	// optional field
	phone, err = SanitizePhone("  ")
	require.NoError(t, err)
	assert.Equal(t, "", phone)

	_, err = SanitizePhone("+123")
	assert.Error(t, err)
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hello", SanitizeInput("  hello "))
	assert.NotContains(t, SanitizeInput(`<script>alert(1)</script>ok`), "<script>")
}

func TestValidateImageFile(t *testing.T) {
	assert.NoError(t, ValidateImageFile("photo.jpg", 1024))
	assert.NoError(t, ValidateImageFile("photo.PNG", 1024))
	assert.Error(t, ValidateImageFile("resume.pdf", 1024))
	assert.Error(t, ValidateImageFile("photo.jpg", 10*1024*1024))
}
