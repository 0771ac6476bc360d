package fetcher

import (
	"errors"
	"net"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		deny    bool
		wantErr error
	}{
		{name: "https allowed", url: "https://example.com/terms", deny: false, wantErr: nil},
		{name: "http allowed", url: "http://example.com/terms", deny: false, wantErr: nil},
		{name: "ftp rejected", url: "ftp://example.com/file", deny: false, wantErr: ErrInvalidURL},
		{name: "file scheme rejected", url: "file:///etc/passwd", deny: false, wantErr: ErrInvalidURL},
		{name: "empty hostname", url: "https://", deny: false, wantErr: ErrInvalidURL},
		{name: "localhost blocked when denying", url: "http://127.0.0.1/terms", deny: true, wantErr: ErrPrivateAddress},
		{name: "localhost allowed when not denying", url: "http://127.0.0.1/terms", deny: false, wantErr: nil},
		{name: "private range blocked", url: "http://192.168.1.10/admin", deny: true, wantErr: ErrPrivateAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateURL(tt.url, tt.deny)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		ip      string
		private bool
	}{
		{"127.0.0.1", true},
		{"10.0.0.1", true},
		{"172.16.0.1", true},
		{"192.168.1.1", true},
		{"169.254.1.1", true},
		{"::1", true},
		{"fe80::1", true},
		{"fc00::1", true},
		{"8.8.8.8", false},
		{"1.1.1.1", false},
		{"2606:4700::1111", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			if got := isPrivateIP(net.ParseIP(tt.ip)); got != tt.private {
				t.Errorf("isPrivateIP(%s) = %v, expected %v", tt.ip, got, tt.private)
			}
		})
	}
}
