package storage

import "testing"

func TestGetContentType(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"chart.png", "image/png"},
		{"figure.json", "application/json"},
		{"page.html", "text/html"},
		{"style.css", "text/css"},
		{"app.js", "application/javascript"},
		{"notes.md", "text/markdown"},
		{"photo.jpg", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"anim.gif", "image/gif"},
		{"readme.txt", "text/plain"},
		{"blob.bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := GetContentType(tt.filename); got != tt.expected {
			t.Errorf("GetContentType(%q) = %q, expected %q", tt.filename, got, tt.expected)
		}
	}
}
