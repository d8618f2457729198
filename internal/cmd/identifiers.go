package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/humanid"
	"github.com/dmitrymomot/humanid/internal/app"
)

const typeUsage = "Identifier type: text, int, hex, base64, uuid"

func parseOriginals(kind string, args []string) ([]humanid.OriginalID, error) {
	ids := make([]humanid.OriginalID, len(args))
	for i, arg := range args {
		id, err := humanid.ParseOriginal(kind, arg)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", arg, err)
		}
		ids[i] = id
	}
	return ids, nil
}

func newGenerateCmd(r *runner) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "generate VALUE...",
		Short: "Register identifiers and print their human-readable names",
		Long: `Register each VALUE and print "VALUE<TAB>NAME". Values that are already
registered keep their existing name.`,
		Args: cobra.MinimumNArgs(1),
		RunE: r.run(func(ctx context.Context, cmd *cobra.Command, a *app.App, args []string) error {
			ids, err := parseOriginals(kind, args)
			if err != nil {
				return err
			}
			names, err := a.Registry.GenerateBatch(ctx, ids)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, name := range names {
				fmt.Fprintf(out, "%s\t%s\n", args[i], name)
			}
			return nil
		}),
	}
	cmd.Flags().StringVarP(&kind, "type", "t", "text", typeUsage)

	return cmd
}

func newResolveCmd(r *runner) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "resolve VALUE...",
		Short: "Print the names of registered identifiers",
		Long: `Print "VALUE<TAB>NAME" for each registered VALUE without registering new
ones. Fails when any VALUE is unknown.`,
		Args: cobra.MinimumNArgs(1),
		RunE: r.run(func(_ context.Context, cmd *cobra.Command, a *app.App, args []string) error {
			ids, err := parseOriginals(kind, args)
			if err != nil {
				return err
			}
			var missing []error
			out := cmd.OutOrStdout()
			for i, id := range ids {
				name, ok := a.Registry.HumanReadable(id)
				if !ok {
					missing = append(missing, fmt.Errorf("%w: %s", app.ErrIdentifierNotFound, args[i]))
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", args[i], name)
			}
			return errors.Join(missing...)
		}),
	}
	cmd.Flags().StringVarP(&kind, "type", "t", "text", typeUsage)

	return cmd
}

func newLookupCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup NAME...",
		Short: "Print the original identifiers behind human-readable names",
		Long: `Print "NAME<TAB>TYPE<TAB>VALUE" for each registered NAME. Byte identifiers
are printed as hex. Fails when any NAME is unknown.`,
		Args: cobra.MinimumNArgs(1),
		RunE: r.run(func(_ context.Context, cmd *cobra.Command, a *app.App, args []string) error {
			var missing []error
			out := cmd.OutOrStdout()
			for _, name := range args {
				id, ok := a.Registry.Original(name)
				if !ok {
					missing = append(missing, fmt.Errorf("%w: %s", app.ErrIdentifierNotFound, name))
					continue
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", name, id.Kind(), id)
			}
			return errors.Join(missing...)
		}),
	}
}
