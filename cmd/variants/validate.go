package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/variants/internal/config"
	"github.com/alexisbeaulieu97/variants/internal/variant"
)

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check an axis definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootFlags, args[0])
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, rootFlags *rootFlags, path string) error {
	sess, err := rootFlags.open(cmd)
	if err != nil {
		return err
	}

	if rootFlags.verbose {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "→ Validating definitions: %s\n", path)
	}

	defs, err := config.LoadDefinitions(path)
	if err != nil {
		sess.log.Error(err, "definition file rejected", "path", path)
		return newCommandError("validate", fmt.Sprintf("reading %q", path), err, "Fix the definition file and try again.")
	}

	reg, err := config.NewRegistry(defs, variant.WithLogger(sess.base), variant.WithObserver(sess.metrics))
	if err != nil {
		sess.log.Error(err, "axis definitions rejected", "path", path)
		return newCommandError("validate", fmt.Sprintf("defining axes from %q", path), err, "Axis names must be unique and defaults must be legal values.")
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d axes, defaults %s\n", path, len(reg.Axes()), reg.Defaults())
	return err
}
