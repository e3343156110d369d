package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString returns the hex encoded HMAC-SHA256 of data keyed with hashKey.
//
// The password hasher uses it as a pepper in front of bcrypt. The result is
// always 64 bytes long, whatever the length of data.
func HashString(data string, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}
