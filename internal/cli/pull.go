package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/dshills/mcpsync/internal/cache"
	"github.com/dshills/mcpsync/internal/clients"
	"github.com/dshills/mcpsync/internal/config"
	"github.com/dshills/mcpsync/internal/merge"
	"github.com/dshills/mcpsync/internal/output"
	"github.com/dshills/mcpsync/internal/source"
)

var (
	flagURL    string
	flagGist   string
	flagClient string
	flagDest   string
	flagMerge  bool
	flagDryRun bool
	flagFormat string
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch a remote MCP config and write it to a local client",
	Long: "Fetch an MCP configuration from a direct URL or a GitHub Gist and write it\n" +
		"to the config file of a client application (or an explicit path). With\n" +
		"--merge the remote config is deep-merged into the existing file instead of\n" +
		"replacing it. Run without source flags for an interactive prompt.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		src, err := source.FromFlags(flagURL, flagGist)
		if errors.Is(err, source.ErrNoSource) && isTerminal() {
			src, err = promptPull(&cfg)
		}
		if err != nil {
			return err
		}

		dest := flagDest
		if dest == "" {
			client, err := clients.Lookup(cfg.Client)
			if err != nil {
				return err
			}
			dest, err = client.ConfigPath()
			if err != nil {
				fail(err)
				return nil
			}
		}

		c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, time.Duration(cfg.Cache.MaxAgeSeconds)*time.Second)
		if err != nil {
			fail(zerr.Wrap(err, "opening cache"))
			return nil
		}
		resolver := source.NewResolver(source.ResolverConfig{
			APIURL: cfg.GistAPIURL,
			Token:  cfg.Token,
			Cache:  c,
		})

		doc, err := resolver.Resolve(context.Background(), src)
		if err != nil {
			fail(err)
			return nil
		}

		data, merged, err := renderDocument(doc, dest, flagMerge)
		if err != nil {
			fail(err)
			return nil
		}

		res := &output.Result{
			Action:      "pull",
			Source:      src.String(),
			Destination: dest,
			Merged:      merged,
			DryRun:      flagDryRun,
		}
		if flagDryRun {
			res.Content = string(data)
		} else {
			if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
				fail(zerr.Wrap(err, "creating destination directory"))
				return nil
			}
			if err := os.WriteFile(dest, data, 0o644); err != nil {
				fail(zerr.With(zerr.Wrap(err, "writing destination"), "path", dest))
				return nil
			}
		}

		if err := output.WriteResult(res, cfg.Format); err != nil {
			fail(err)
		}
		return nil
	},
}

// renderDocument produces the bytes to write at dest. When merging and the
// remote document is a JSON object, it is deep-merged into the existing
// destination content; a non-object remote replaces the file wholesale.
func renderDocument(doc source.Document, dest string, mergeInto bool) ([]byte, bool, error) {
	var value any = doc.Value
	merged := false
	if mergeInto {
		if obj := doc.Object(); obj != nil {
			value = merge.IntoFile(dest, obj)
			merged = true
		}
	}
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return nil, false, fmt.Errorf("marshaling config: %w", err)
	}
	return append(data, '\n'), merged, nil
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagClient != "" {
		m["client"] = flagClient
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	return m
}

func init() {
	pullCmd.Flags().StringVar(&flagURL, "url", "", "Direct URL of the remote config")
	pullCmd.Flags().StringVar(&flagGist, "gist", "", "Gist source: id or id/filename")
	pullCmd.Flags().StringVar(&flagClient, "client", "", "Target client application (claude, cursor)")
	pullCmd.Flags().StringVar(&flagDest, "dest", "", "Destination file path (default: the client's config file)")
	pullCmd.Flags().BoolVar(&flagMerge, "merge", false, "Deep-merge into the existing file instead of replacing it")
	pullCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the resulting config without writing")
	pullCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
}
