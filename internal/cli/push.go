package cli

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/dshills/mcpsync/internal/clients"
	"github.com/dshills/mcpsync/internal/config"
	"github.com/dshills/mcpsync/internal/gist"
	"github.com/dshills/mcpsync/internal/output"
	"github.com/dshills/mcpsync/internal/source"
)

var (
	flagPushClient   string
	flagPushSrc      string
	flagPushGistID   string
	flagPushPrivate  bool
	flagPushFileName string
	flagPushFormat   string
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Publish a local MCP config to a GitHub Gist",
	Long: "Read a client application's MCP configuration (or an explicit file) and\n" +
		"publish it to a GitHub Gist, creating a new Gist or updating an existing one.\n" +
		"Uses the GITHUB_TOKEN credential when set, falling back to an authenticated\n" +
		"gh CLI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildPushOverrides())
		if err != nil {
			return err
		}

		srcPath := flagPushSrc
		if srcPath == "" {
			if flagPushClient == "" && isTerminal() {
				if err := promptClient(&cfg); err != nil {
					return err
				}
			}
			client, err := clients.Lookup(cfg.Client)
			if err != nil {
				return err
			}
			srcPath, err = client.ConfigPath()
			if err != nil {
				fail(err)
				return nil
			}
		}

		data, err := os.ReadFile(srcPath)
		if err != nil {
			fail(zerr.With(zerr.Wrap(err, "reading source file"), "path", srcPath))
			return nil
		}
		if !json.Valid(data) {
			fail(&source.ParseError{Source: srcPath, Err: errors.New("not valid JSON")})
			return nil
		}

		fileName := flagPushFileName
		if fileName == "" {
			fileName = filepath.Base(srcPath)
		}

		publisher, err := gist.NewPublisher(gist.Config{
			Token:  cfg.Token,
			APIURL: cfg.GistAPIURL,
		})
		if err != nil {
			fail(err)
			return nil
		}

		ref, err := publisher.Publish(context.Background(), data, fileName, gist.Options{
			GistID:  flagPushGistID,
			Private: flagPushPrivate,
		})
		if err != nil {
			fail(err)
			return nil
		}

		res := &output.Result{
			Action: "push",
			Source: srcPath,
			Gist:   &ref,
		}
		if err := output.WriteResult(res, cfg.Format); err != nil {
			fail(err)
		}
		return nil
	},
}

func buildPushOverrides() map[string]string {
	m := make(map[string]string)
	if flagPushClient != "" {
		m["client"] = flagPushClient
	}
	if flagPushFormat != "" {
		m["format"] = flagPushFormat
	}
	return m
}

func init() {
	pushCmd.Flags().StringVar(&flagPushClient, "client", "", "Source client application (claude, cursor)")
	pushCmd.Flags().StringVar(&flagPushSrc, "src", "", "Source file path (default: the client's config file)")
	pushCmd.Flags().StringVar(&flagPushGistID, "gist", "", "Existing Gist id to update (default: create a new Gist)")
	pushCmd.Flags().BoolVar(&flagPushPrivate, "private", false, "Create a secret Gist")
	pushCmd.Flags().StringVar(&flagPushFileName, "filename", "", "File name inside the Gist (default: the source file's name)")
	pushCmd.Flags().StringVar(&flagPushFormat, "format", "", "Output format (text, json)")
}
