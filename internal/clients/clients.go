// Package clients knows where each supported client application keeps its
// MCP configuration file.
package clients

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Client is one supported application.
type Client struct {
	Name        string
	DisplayName string
	FileName    string
}

var registry = map[string]Client{
	"claude": {Name: "claude", DisplayName: "Claude Desktop", FileName: "claude_desktop_config.json"},
	"cursor": {Name: "cursor", DisplayName: "Cursor", FileName: "mcp.json"},
}

// Names returns the known client names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the client registered under name.
func Lookup(name string) (Client, error) {
	c, ok := registry[strings.ToLower(name)]
	if !ok {
		return Client{}, fmt.Errorf("unknown client %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// ConfigPath returns the absolute path of the client's MCP configuration
// file on this platform.
func (c Client) ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}

	switch c.Name {
	case "claude":
		switch runtime.GOOS {
		case "darwin":
			return filepath.Join(home, "Library", "Application Support", "Claude", c.FileName), nil
		case "windows":
			if appData := os.Getenv("APPDATA"); appData != "" {
				return filepath.Join(appData, "Claude", c.FileName), nil
			}
			return filepath.Join(home, "AppData", "Roaming", "Claude", c.FileName), nil
		default:
			return filepath.Join(home, ".config", "Claude", c.FileName), nil
		}
	case "cursor":
		return filepath.Join(home, ".cursor", c.FileName), nil
	default:
		return "", fmt.Errorf("no config path for client %q", c.Name)
	}
}
