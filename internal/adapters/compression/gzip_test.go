package compression

import (
	"bytes"
	"io"
	"testing"

	"github.com/iamNilotpal/fqrewrite/internal/core/domain"
)

func TestGzipRoundTrip(t *testing.T) {
	gz, err := NewGzipCompression(nil)
	if err != nil {
		t.Fatalf("new gzip: %v", err)
	}

	var buf bytes.Buffer
	zw, err := gz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	if _, err := zw.Write([]byte("@SEQ1\nACGT\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	zr, err := gz.NewReader(&buf)
	if err != nil {
		t.Fatalf("new reader: %v", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "@SEQ1\nACGT\n" {
		t.Fatalf("round trip mismatch: %q", data)
	}
}

func TestGzipDefaultLevel(t *testing.T) {
	gz, err := NewGzipCompression(nil)
	if err != nil {
		t.Fatalf("new gzip: %v", err)
	}
	if gz.Level() != DefaultLevel {
		t.Fatalf("expected default level %d, got %d", DefaultLevel, gz.Level())
	}
}

func TestGzipInvalidLevel(t *testing.T) {
	for _, level := range []int{-3, 0, 10} {
		if _, err := NewGzipCompression(&domain.CompressionOptions{Level: level}); err == nil {
			t.Fatalf("expected error for level %d", level)
		}
	}
}

func TestGzipReaderRejectsPlainData(t *testing.T) {
	gz, err := NewGzipCompression(nil)
	if err != nil {
		t.Fatalf("new gzip: %v", err)
	}
	if _, err := gz.NewReader(bytes.NewReader([]byte("not gzip"))); err == nil {
		t.Fatalf("expected error for non-gzip input")
	}
}
