package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess    = 0
	ExitError      = 1
	ExitUsageError = 2
)

var rootCmd = &cobra.Command{
	Use:   "mcpsync",
	Short: "Sync MCP configuration files between remote sources and local clients",
	Long: "mcpsync copies MCP JSON configuration files for Claude Desktop and Cursor\n" +
		"between a remote source (direct URL or GitHub Gist) and the local filesystem,\n" +
		"optionally deep-merging into the existing file, and can publish a local\n" +
		"config back to a Gist.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// fail prints an operational error and records the exit code. Command
// handlers call it and return nil so cobra does not re-print usage.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exitCode = ExitError
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print mcpsync version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "mcpsync version %s\n", version)
	},
}
