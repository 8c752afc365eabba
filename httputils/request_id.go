package httputils

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"time"
)

// client created
// cc-2006-01-02T15:04:05.000-XXX###XXX
func NewRequestID() string {
	return "cc-" + time.Now().Format("2006-01-02T15:04:05.000") + randString(9)
}

func randString(len int) string {
	b := make([]byte, len)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
