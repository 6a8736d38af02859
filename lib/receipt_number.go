package lib

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateReceiptNumber generates a receipt number in the format POS-XXXXXX
// where XXXXXX is a random 6-character alphanumeric string
func GenerateReceiptNumber() string {
	// Use a local rand.Source + rand.Rand for thread safety
	src := rand.NewSource(time.Now().UnixNano())
	r := rand.New(src)

	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 6

	randomPart := make([]byte, length)
	for i := range randomPart {
		randomPart[i] = chars[r.Intn(len(chars))]
	}

	return fmt.Sprintf("POS-%s", string(randomPart))
}
