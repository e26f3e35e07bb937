package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/variants/internal/picker"
)

var errNotTerminal = errors.New("standard input and output must be a terminal")

type pickOptions struct {
	jsonOutput bool
}

func newPickCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a value per axis interactively and print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPick(cmd *cobra.Command, rootFlags *rootFlags, opts *pickOptions) error {
	if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("pick", "starting the picker", errNotTerminal, "Use 'variants resolve --set axis=value' in scripts.")
	}

	reg, err := rootFlags.registry(cmd)
	if err != nil {
		return err
	}

	model, err := picker.NewModel(reg, "Variants")
	if err != nil {
		return newCommandError("pick", "preparing the picker", err, "This is a bug; please report it.")
	}

	program := tea.NewProgram(model, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	final, err := program.Run()
	if err != nil {
		return newCommandError("pick", "running the picker", err, "Try again in a different terminal.")
	}

	result, ok := final.(picker.Model)
	if !ok || result.Cancelled() || !result.Done() {
		_, err := fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
		return err
	}

	cfg, err := reg.Resolve(result.Request())
	if err != nil {
		return newCommandError("pick", "resolving configuration", err, "This is a bug; please report it.")
	}
	return renderConfiguration(cmd, cfg, opts.jsonOutput)
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
