package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/variants/internal/compat"
	"github.com/alexisbeaulieu97/variants/internal/config"
)

var errBreakingChanges = errors.New("breaking changes detected")

type diffOptions struct {
	failOnBreaking bool
}

func newDiffCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <old> <new>",
		Short: "Compare two definition files and report breaking changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, rootFlags, opts, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&opts.failOnBreaking, "fail-on-breaking", false, "Exit with an error when a change can break existing requests")

	return cmd
}

func runDiff(cmd *cobra.Command, rootFlags *rootFlags, opts *diffOptions, oldPath, newPath string) error {
	sess, err := rootFlags.open(cmd)
	if err != nil {
		return err
	}

	before, err := config.LoadDefinitions(oldPath)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("reading %q", oldPath), err, "Run 'variants validate' on the file for details.")
	}
	after, err := config.LoadDefinitions(newPath)
	if err != nil {
		return newCommandError("diff", fmt.Sprintf("reading %q", newPath), err, "Run 'variants validate' on the file for details.")
	}

	sides := []struct {
		path string
		defs *config.Definitions
	}{{oldPath, before}, {newPath, after}}
	for _, side := range sides {
		if err := config.Check(side.defs); err != nil {
			sess.log.Error(err, "axis definitions rejected", "path", side.path)
			return newCommandError("diff", fmt.Sprintf("defining axes from %q", side.path), err, "Axis names must be unique and defaults must be legal values.")
		}
	}

	report := compat.Compare(before, after)
	sess.log.Debug("definitions compared", "changes", len(report.Changes), "breaking", len(report.Breaking()))

	out := cmd.OutOrStdout()
	if report.Empty() {
		_, err := fmt.Fprintln(out, "No changes.")
		return err
	}

	text, err := compat.Diff(before, after, oldPath, newPath)
	if err != nil {
		return newCommandError("diff", "rendering diff", err, "This is a bug; please report it.")
	}
	if text != "" {
		fmt.Fprint(out, text)
	}

	for _, change := range report.Changes {
		marker := " "
		if change.Breaking {
			marker = "!"
		}
		fmt.Fprintf(out, "%s %s\n", marker, change)
	}

	if opts.failOnBreaking && report.HasBreaking() {
		return newCommandError("diff", fmt.Sprintf("%d breaking change(s)", len(report.Breaking())), errBreakingChanges, "Keep removed values and defaults, or release the change as a new major version.")
	}
	return nil
}
