package filesystem

import (
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home := filepath.FromSlash("/home/tester")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "tilde alone", path: "~", want: home},
		{name: "tilde slash", path: "~/code/dalia", want: filepath.Join(home, "code", "dalia")},
		{name: "absolute path", path: "/srv/www", want: "/srv/www"},
		{name: "other user", path: "~root/bin", want: "~root/bin"},
		{name: "tilde in the middle", path: "/tmp/~/x", want: "/tmp/~/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandHome(tt.path, home); got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestToUserFriendlyPath(t *testing.T) {
	home := "/home/tester"

	tests := []struct {
		name    string
		path    string
		homeDir string
		want    string
	}{
		{name: "home itself", path: home, homeDir: home, want: "~"},
		{name: "inside home", path: home + "/.dalia/config", homeDir: home, want: filepath.Join("~", ".dalia/config")},
		{name: "sibling with same prefix", path: "/home/tester2/x", homeDir: home, want: "/home/tester2/x"},
		{name: "outside home", path: "/etc/dalia", homeDir: home, want: "/etc/dalia"},
		{name: "unknown home", path: "/etc/dalia", homeDir: "", want: "/etc/dalia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToUserFriendlyPath(tt.path, tt.homeDir); got != tt.want {
				t.Errorf("ToUserFriendlyPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
