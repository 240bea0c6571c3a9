package serverutils

import (
	"crypto/sha256"
	"encoding/hex"
)

// GenerateETag derives a stable entity tag from note content so clients can
// revalidate with If-None-Match.
func GenerateETag(content string) string {
	sum := sha256.Sum256([]byte(content))
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
