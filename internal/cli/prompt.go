package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/mcpsync/internal/clients"
	"github.com/dshills/mcpsync/internal/config"
	"github.com/dshills/mcpsync/internal/source"
)

// isTerminal reports whether stdin is an interactive terminal.
func isTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// promptPull asks for the missing pull inputs: the client application (when
// none was selected by flag) and the source string.
func promptPull(cfg *config.Config) (source.Source, error) {
	if flagClient == "" && flagDest == "" {
		if err := promptClient(cfg); err != nil {
			return source.Source{}, err
		}
	}

	spec, err := askLine("Source (URL or gist id[/filename]): ")
	if err != nil {
		return source.Source{}, err
	}
	if spec == "" {
		return source.Source{}, source.ErrNoSource
	}
	if strings.Contains(spec, "://") {
		return source.FromURL(spec), nil
	}
	return source.ParseGist(spec)
}

// promptClient asks which client application to target and stores the answer
// in cfg.
func promptClient(cfg *config.Config) error {
	names := clients.Names()
	options := make([]string, len(names))
	for i, name := range names {
		c, _ := clients.Lookup(name)
		options[i] = c.DisplayName
	}
	idx, err := selectFromOptions("Client application", options)
	if err != nil {
		return err
	}
	cfg.Client = names[idx]
	return nil
}

// selectFromOptions presents a numbered list and reads a choice. A single
// option is selected automatically.
func selectFromOptions(title string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("no options to select from")
	}
	if len(options) == 1 {
		fmt.Fprintf(os.Stdout, "%s: %s\n", title, options[0])
		return 0, nil
	}

	fmt.Fprintf(os.Stdout, "%s:\n", title)
	for i, option := range options {
		fmt.Fprintf(os.Stdout, "  %d) %s\n", i+1, option)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprintf(os.Stdout, "Select (1-%d): ", len(options))
		input, err := reader.ReadString('\n')
		if err != nil {
			return -1, fmt.Errorf("reading input: %w", err)
		}
		choice, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil || choice < 1 || choice > len(options) {
			fmt.Fprintf(os.Stdout, "Enter a number between 1 and %d\n", len(options))
			continue
		}
		return choice - 1, nil
	}
}

func askLine(prompt string) (string, error) {
	fmt.Fprint(os.Stdout, prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(input), nil
}
