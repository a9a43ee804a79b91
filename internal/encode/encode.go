// Package encode turns an opaque document stream into a transportable
// text-encoded payload for the remote decoder.
package encode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// ErrRead reports that the underlying document could not be read fully.
var ErrRead = errors.New("encode: document read failed")

// Payload carries one document's base64-encoded content and its declared
// media type. The pair is storable and transportable as-is.
type Payload struct {
	Data     string `json:"data"`
	MIMEType string `json:"mimeType"`
}

// Empty reports whether the payload holds no content.
func (p Payload) Empty() bool { return p.Data == "" }

// Bytes decodes the payload content back into raw document bytes.
func (p Payload) Bytes() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(p.Data)
	if err != nil {
		return nil, fmt.Errorf("encode: corrupt payload: %w", err)
	}
	return b, nil
}

// Encode reads r fully and produces a payload with the given media type.
// A short or failed read returns ErrRead; content is never truncated.
func Encode(r io.Reader, mimeType string) (Payload, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return Payload{
		Data:     base64.StdEncoding.EncodeToString(raw),
		MIMEType: mimeType,
	}, nil
}

// EncodeBytes is Encode for already-buffered content.
func EncodeBytes(raw []byte, mimeType string) Payload {
	return Payload{
		Data:     base64.StdEncoding.EncodeToString(raw),
		MIMEType: mimeType,
	}
}
