package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/mcpsync/internal/gist"
)

func TestGetWriter(t *testing.T) {
	if _, err := GetWriter("text"); err != nil {
		t.Errorf("GetWriter(text) error: %v", err)
	}
	if _, err := GetWriter("json"); err != nil {
		t.Errorf("GetWriter(json) error: %v", err)
	}
	if _, err := GetWriter("yaml"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestTextWriter_Pull(t *testing.T) {
	var buf bytes.Buffer
	res := &Result{
		Action:      "pull",
		Source:      "https://x/cfg.json",
		Destination: "/home/u/.cursor/mcp.json",
		Merged:      true,
	}
	if err := (&TextWriter{}).Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Merged into /home/u/.cursor/mcp.json") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "https://x/cfg.json") {
		t.Errorf("output should name the source: %q", out)
	}
}

func TestTextWriter_PullDryRun(t *testing.T) {
	var buf bytes.Buffer
	res := &Result{
		Action:      "pull",
		Source:      "abc123",
		Destination: "/tmp/out.json",
		DryRun:      true,
		Content:     `{"mcpServers":{}}`,
	}
	if err := (&TextWriter{}).Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Would write") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, `{"mcpServers":{}}`) {
		t.Errorf("dry-run output should include the content: %q", out)
	}
}

func TestTextWriter_Push(t *testing.T) {
	var buf bytes.Buffer
	res := &Result{
		Action: "push",
		Source: "/home/u/.cursor/mcp.json",
		Gist: &gist.Reference{
			ID:          "abc123",
			URL:         "https://gist.github.com/user/abc123",
			ViewCommand: "gh gist view abc123",
		},
	}
	if err := (&TextWriter{}).Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"abc123", "https://gist.github.com/user/abc123", "gh gist view abc123"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	res := &Result{
		Action: "push",
		Source: "/tmp/mcp.json",
		Gist:   &gist.Reference{ID: "abc123"},
	}
	if err := (&JSONWriter{}).Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var decoded Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Gist == nil || decoded.Gist.ID != "abc123" {
		t.Errorf("decoded = %+v", decoded)
	}
}
