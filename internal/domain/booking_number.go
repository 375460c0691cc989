package domain

import (
	"crypto/rand"
	"encoding/base32"
)

const (
	bookingNumberPrefix = "BK-"
	bookingNumberLength = 16
)

var bookingNumberEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateBookingNumber returns a random 128-bit booking number.
func GenerateBookingNumber() (string, error) {
	randomBytes := make([]byte, bookingNumberLength)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return "", err
	}

	return bookingNumberPrefix + bookingNumberEncoding.EncodeToString(randomBytes), nil
}
