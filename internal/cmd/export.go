package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/humanid/internal/app"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var errUnknownFormat = errors.New("unknown output format")

// record is the export form of one registration. Values use the same
// notation as the --type flag accepts, with bytes in hex.
type record struct {
	HumanReadable string `json:"human_readable" yaml:"human_readable"`
	Type          string `json:"type" yaml:"type"`
	Value         string `json:"value" yaml:"value"`
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

func newExportCmd(r *runner) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all registrations to stdout",
		Args:  cobra.NoArgs,
		RunE: r.run(func(_ context.Context, cmd *cobra.Command, a *app.App, _ []string) error {
			entries := a.Registry.Entries()
			records := make([]record, len(entries))
			for i, e := range entries {
				records[i] = record{
					HumanReadable: e.HumanReadable,
					Type:          e.Original.Kind().String(),
					Value:         e.Original.String(),
				}
			}
			return encode(cmd.OutOrStdout(), format, records)
		}),
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "Output format: json, yaml")

	return cmd
}

func newStatsCmd(r *runner) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print registry statistics",
		Args:  cobra.NoArgs,
		RunE: r.run(func(_ context.Context, cmd *cobra.Command, a *app.App, _ []string) error {
			stats := a.Registry.Stats()
			if format != formatText {
				return encode(cmd.OutOrStdout(), format, stats)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "count\t%d\n", stats.Count)
			fmt.Fprintf(out, "seed\t%d\n", stats.Seed)
			fmt.Fprintf(out, "dictionary_size\t%d\n", stats.DictionarySize)
			fmt.Fprintf(out, "unsaved\t%t\n", stats.Unsaved)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json, yaml")

	return cmd
}
