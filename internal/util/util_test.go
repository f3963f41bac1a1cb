package util

import (
	"strings"
	"testing"
	"time"
)

func TestChecksumBytes(t *testing.T) {
	t.Parallel()

	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := ChecksumBytes([]byte("abc")); got != want {
		t.Fatalf("ChecksumBytes(abc) = %s, want %s", got, want)
	}
}

func TestSanitizeFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "plain", in: "photo.png", expected: "photo.png"},
		{name: "directory traversal", in: "../../etc/passwd", expected: "passwd"},
		{name: "windows path", in: `C:\Users\me\cat.jpg`, expected: "cat.jpg"},
		{name: "spaces and unicode", in: "my café.jpg", expected: "my_caf_.jpg"},
		{name: "only dots", in: "..", expected: "image"},
		{name: "empty", in: "", expected: "image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SanitizeFileName(tt.in); got != tt.expected {
				t.Fatalf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}

	long := strings.Repeat("a", 300) + ".png"
	if got := SanitizeFileName(long); len(got) != maxFileNameLength || !strings.HasSuffix(got, ".png") {
		t.Fatalf("SanitizeFileName(long) = %q", got)
	}
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0 B"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512 B"},
		{name: "exact kilobyte", bytes: 1024, expected: "1.0 KB"},
		{name: "fractional kilobyte", bytes: 1536, expected: "1.5 KB"},
		{name: "megabyte", bytes: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", bytes: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
