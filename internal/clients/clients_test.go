package clients

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	c, err := Lookup("claude")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if c.DisplayName != "Claude Desktop" {
		t.Errorf("DisplayName = %q", c.DisplayName)
	}

	// Case-insensitive
	if _, err := Lookup("Cursor"); err != nil {
		t.Errorf("Lookup(Cursor) error: %v", err)
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("vim")
	if err == nil {
		t.Fatal("Expected error for unknown client")
	}
	if !strings.Contains(err.Error(), "claude") || !strings.Contains(err.Error(), "cursor") {
		t.Errorf("error should list known clients: %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 {
		t.Fatalf("Names = %v, want 2 entries", names)
	}
	if names[0] != "claude" || names[1] != "cursor" {
		t.Errorf("Names = %v, want sorted [claude cursor]", names)
	}
}

func TestConfigPath(t *testing.T) {
	for _, name := range Names() {
		c, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%s) error: %v", name, err)
		}
		path, err := c.ConfigPath()
		if err != nil {
			t.Fatalf("ConfigPath(%s) error: %v", name, err)
		}
		if !strings.HasSuffix(path, c.FileName) {
			t.Errorf("ConfigPath(%s) = %q, want suffix %q", name, path, c.FileName)
		}
	}
}
