package aliasrendering

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/AntonioJCosta/dalia/internal/core/domain/alias"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		format  string
		want    any
		wantErr bool
	}{
		{format: "shell", want: &ShellRenderer{}},
		{format: "", want: &ShellRenderer{}},
		{format: "YAML", want: &YAMLRenderer{}},
		{format: "toml", want: &TOMLRenderer{}},
		{format: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, err := NewRenderer(tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("NewRenderer(%q) error = %v, want ErrUnknownFormat", tt.format, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRenderer(%q) unexpected error = %v", tt.format, err)
			}
			if reflect.TypeOf(got) != reflect.TypeOf(tt.want) {
				t.Errorf("NewRenderer(%q) = %T, want %T", tt.format, got, tt.want)
			}
		})
	}
}

func TestShellRenderer_Render(t *testing.T) {
	tests := []struct {
		name    string
		aliases []alias.Alias
		want    string
	}{
		{
			name:    "no aliases",
			aliases: nil,
			want:    "",
		},
		{
			name: "aliases in given order",
			aliases: []alias.Alias{
				{Name: "MyPath", Path: "/some/path"},
				{Name: "path", Path: "~/absolute/Path"},
			},
			want: "alias MyPath='cd /some/path'\nalias path='cd ~/absolute/Path'\n",
		},
		{
			name:    "single quote in path",
			aliases: []alias.Alias{{Name: "docs", Path: "/Users/o'neil/docs"}},
			want:    `alias docs='cd /Users/o'\''neil/docs'` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := (&ShellRenderer{}).Render(&buf, tt.aliases); err != nil {
				t.Fatalf("Render() unexpected error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestYAMLRenderer_Render(t *testing.T) {
	aliases := []alias.Alias{
		{Name: "one", Path: "/tmp/X/one"},
		{Name: "MyPath", Path: "/home/me/some path"},
	}

	var buf bytes.Buffer
	if err := (&YAMLRenderer{}).Render(&buf, aliases); err != nil {
		t.Fatalf("Render() unexpected error = %v", err)
	}

	want := "- alias: one\n  path: /tmp/X/one\n- alias: MyPath\n  path: /home/me/some path\n"
	if buf.String() != want {
		t.Errorf("Render() = %q, want %q", buf.String(), want)
	}

	var decoded []alias.Alias
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if !reflect.DeepEqual(decoded, aliases) {
		t.Errorf("decoded = %v, want %v", decoded, aliases)
	}
}

func TestYAMLRenderer_RenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (&YAMLRenderer{}).Render(&buf, nil); err != nil {
		t.Fatalf("Render() unexpected error = %v", err)
	}
	if got := buf.String(); got != "[]\n" {
		t.Errorf("Render() = %q, want %q", got, "[]\n")
	}
}

func TestTOMLRenderer_Render(t *testing.T) {
	aliases := []alias.Alias{
		{Name: "MyPath", Path: "/some/path"},
		{Name: "code", Path: `~/Code "main"`},
	}

	var buf bytes.Buffer
	if err := (&TOMLRenderer{}).Render(&buf, aliases); err != nil {
		t.Fatalf("Render() unexpected error = %v", err)
	}

	if !bytes.Contains(buf.Bytes(), []byte("[[alias]]")) {
		t.Errorf("Render() = %q, want [[alias]] tables", buf.String())
	}

	var decoded tomlDocument
	if _, err := toml.Decode(buf.String(), &decoded); err != nil {
		t.Fatalf("output is not valid TOML: %v", err)
	}
	if !reflect.DeepEqual(decoded.Aliases, aliases) {
		t.Errorf("decoded = %v, want %v", decoded.Aliases, aliases)
	}
}

func TestTOMLRenderer_RenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TOMLRenderer{}).Render(&buf, nil); err != nil {
		t.Fatalf("Render() unexpected error = %v", err)
	}
	if got := buf.String(); got != "" {
		t.Errorf("Render() = %q, want empty output", got)
	}
}
