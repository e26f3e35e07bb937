package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/variants/internal/variant"
)

type resolveOptions struct {
	assignments []string
	jsonOutput  bool
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a partial request into a complete configuration",
		Example: `  variants resolve
  variants resolve --set type=secondary --set size=small`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.assignments, "set", nil, "Request a value as axis=value (repeatable)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, opts *resolveOptions) error {
	request, err := parseAssignments(opts.assignments)
	if err != nil {
		return newCommandError("resolve", "parsing --set flags", err, "Use --set axis=value, once per axis.")
	}

	reg, err := rootFlags.registry(cmd)
	if err != nil {
		return err
	}

	cfg, err := reg.Resolve(request)
	if err != nil {
		return newCommandError("resolve", "resolving configuration", err, "Run 'variants axes' to list legal values.")
	}

	return renderConfiguration(cmd, cfg, opts.jsonOutput)
}

// parseAssignments turns axis=value pairs into a request map.
func parseAssignments(assignments []string) (map[string]string, error) {
	request := make(map[string]string, len(assignments))
	for _, raw := range assignments {
		axis, value, ok := strings.Cut(raw, "=")
		axis = strings.TrimSpace(axis)
		if !ok || axis == "" {
			return nil, fmt.Errorf("%q is not of the form axis=value", raw)
		}
		if _, dup := request[axis]; dup {
			return nil, fmt.Errorf("axis %q requested more than once", axis)
		}
		request[axis] = value
	}
	return request, nil
}

func renderConfiguration(cmd *cobra.Command, cfg variant.ResolvedConfiguration, jsonOutput bool) error {
	if jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), cfg.String())
	return err
}
