package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/variants/internal/variant"
)

type axesOptions struct {
	jsonOutput bool
}

func newAxesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &axesOptions{}

	cmd := &cobra.Command{
		Use:   "axes",
		Short: "List the axes, their legal values and defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := rootFlags.registry(cmd)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return renderAxesJSON(cmd, reg.Axes())
			}
			return renderAxesTable(cmd, reg.Axes())
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderAxesTable(cmd *cobra.Command, axes []variant.Axis) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	c := cases.Title(language.English)
	fmt.Fprintf(writer, "%s\t%s\t%s\n", c.String("axis"), c.String("default"), c.String("legal values"))

	for _, axis := range axes {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", axis.Name(), axis.Default(), strings.Join(axis.Values(), ", "))
	}

	return writer.Flush()
}

type axesJSONAxis struct {
	Name    string   `json:"name"`
	Default string   `json:"default"`
	Values  []string `json:"values"`
}

type axesJSONPayload struct {
	Count int            `json:"count"`
	Axes  []axesJSONAxis `json:"axes"`
}

func renderAxesJSON(cmd *cobra.Command, axes []variant.Axis) error {
	payload := axesJSONPayload{
		Count: len(axes),
		Axes:  make([]axesJSONAxis, len(axes)),
	}

	for i, axis := range axes {
		payload.Axes[i] = axesJSONAxis{
			Name:    axis.Name(),
			Default: axis.Default(),
			Values:  axis.Values(),
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
