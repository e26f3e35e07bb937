package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/variants/internal/preview"
)

type previewOptions struct {
	assignments []string
	labels      []string
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render buttons for a resolved button variant",
		Example: `  variants preview --set type=secondary --set orientation=vertical
  variants preview --label Save --label Discard`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.assignments, "set", nil, "Request a value as axis=value (repeatable)")
	cmd.Flags().StringArrayVar(&opts.labels, "label", []string{"OK", "Cancel"}, "Button label (repeatable)")

	return cmd
}

func runPreview(cmd *cobra.Command, rootFlags *rootFlags, opts *previewOptions) error {
	request, err := parseAssignments(opts.assignments)
	if err != nil {
		return newCommandError("preview", "parsing --set flags", err, "Use --set axis=value, once per axis.")
	}

	reg, err := rootFlags.registry(cmd)
	if err != nil {
		return err
	}

	cfg, err := reg.Resolve(request)
	if err != nil {
		return newCommandError("preview", "resolving configuration", err, "Run 'variants axes' to list legal values.")
	}

	out, err := preview.NewRenderer(preview.DefaultPalette()).Configuration(cfg, opts.labels...)
	if err != nil {
		return newCommandError("preview", "rendering buttons", err, "Preview needs the type, size and orientation button axes.")
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", cfg, out)
	return err
}
