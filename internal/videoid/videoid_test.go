package videoid

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "Short link host",
			raw:  "https://youtu.be/abc123",
			want: "abc123",
		},
		{
			name: "Watch URL with v parameter",
			raw:  "https://youtube.com/watch?v=abc123",
			want: "abc123",
		},
		{
			name: "www host with v parameter",
			raw:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "Last path segment fallback",
			raw:  "https://example.com/x/y/abc123",
			want: "abc123",
		},
		{
			name: "Trailing slash",
			raw:  "https://example.com/videos/abc123/",
			want: "abc123",
		},
		{
			name: "Plain id passes through",
			raw:  "abc123",
			want: "abc123",
		},
		{
			name: "Plain id trimmed",
			raw:  "  abc123 ",
			want: "abc123",
		},
		{
			name: "Unparsable URL returned unchanged",
			raw:  "http://[::1]:namedport/x",
			want: "http://[::1]:namedport/x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.raw); got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExtract_IdempotentOnCanonicalIDs(t *testing.T) {
	for _, id := range []string{"abc123", "dQw4w9WgXcQ", "my-video-id"} {
		once := Extract(id)
		twice := Extract(once)
		if once != twice {
			t.Errorf("Extract not idempotent for %q: %q != %q", id, once, twice)
		}
	}
}
