package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestEncodeRoundTrip(t *testing.T) {
	raw := []byte("%PDF-1.4 fake document body")
	p, err := Encode(bytes.NewReader(raw), "application/pdf")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if p.MIMEType != "application/pdf" {
		t.Fatalf("mime type = %q", p.MIMEType)
	}
	back, err := p.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(back, raw) {
		t.Fatalf("round trip mismatch: %q", back)
	}
}

func TestEncodeReadFailure(t *testing.T) {
	_, err := Encode(failingReader{}, "application/pdf")
	if !errors.Is(err, ErrRead) {
		t.Fatalf("expected ErrRead, got %v", err)
	}
}

func TestEncodeEmptyDocument(t *testing.T) {
	p, err := Encode(strings.NewReader(""), "text/plain")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !p.Empty() {
		t.Fatalf("expected empty payload")
	}
}

func TestPayloadCorruptData(t *testing.T) {
	p := Payload{Data: "not base64 at all!!!", MIMEType: "application/pdf"}
	if _, err := p.Bytes(); err == nil {
		t.Fatalf("expected decode error")
	}
}
