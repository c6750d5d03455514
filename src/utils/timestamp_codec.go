package utils

import (
	"encoding/base64"
	"time"
)

// TimestampLayout is the textual instant carried inside a freshness token.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

const (
	defaultCryptoKey = "SSAAM2025CCS"
	futureSkew       = 30 * time.Second
)

// TimestampCodec turns an instant into a short-lived opaque token by XORing
// its text form with a shared key and base64-encoding the result.
//
// This is request-freshness hinting, not authentication: the key ships with
// the frontend and a token can be replayed for as long as it stays inside
// the validity window.
type TimestampCodec struct {
	key []byte
	now func() time.Time
}

func NewTimestampCodec(key string) *TimestampCodec {
	if key == "" {
		key = defaultCryptoKey
	}
	return &TimestampCodec{key: []byte(key), now: time.Now}
}

// Encode returns the token for t.
func (c *TimestampCodec) Encode(t time.Time) string {
	return base64.StdEncoding.EncodeToString(c.xor([]byte(t.UTC().Format(TimestampLayout))))
}

// Decode recovers the textual instant. ok is false for anything that is not
// base64 or decodes to nothing.
func (c *TimestampCodec) Decode(token string) (string, bool) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(token)
		if err != nil {
			return "", false
		}
	}
	if len(raw) == 0 {
		return "", false
	}
	return string(c.xor(raw)), true
}

// IsValid reports whether token encodes an instant no older than maxAge and
// no more than 30 seconds in the future.
func (c *TimestampCodec) IsValid(token string, maxAge time.Duration) bool {
	return c.IsValidAt(token, maxAge, c.now())
}

func (c *TimestampCodec) IsValidAt(token string, maxAge time.Duration, now time.Time) bool {
	text, ok := c.Decode(token)
	if !ok {
		return false
	}
	requestTime, err := time.Parse(time.RFC3339Nano, text)
	if err != nil {
		return false
	}
	diff := now.Sub(requestTime)
	return diff >= -futureSkew && diff <= maxAge
}

func (c *TimestampCodec) xor(in []byte) []byte {
	out := make([]byte, len(in))
	for i := range in {
		out[i] = in[i] ^ c.key[i%len(c.key)]
	}
	return out
}
