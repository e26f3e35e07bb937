package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set through -ldflags by release builds.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

type buildInfo struct {
	version string
	commit  string
	date    string
	goVer   string
}

// currentBuildInfo prefers ldflags values and falls back to what the Go
// toolchain embedded, so `go install` builds still report a module version
// and VCS revision.
func currentBuildInfo() buildInfo {
	info := buildInfo{version: version, commit: commit, date: date}

	embedded, ok := readBuildInfo()
	if !ok {
		return info
	}
	info.goVer = embedded.GoVersion

	if info.version == "dev" && embedded.Main.Version != "" && embedded.Main.Version != "(devel)" {
		info.version = embedded.Main.Version
	}
	for _, setting := range embedded.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.commit == "none" {
				info.commit = setting.Value
			}
		case "vcs.time":
			if info.date == "unknown" {
				info.date = setting.Value
			}
		}
	}
	return info
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentBuildInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Variants %s\ncommit: %s\nbuilt: %s\n", info.version, info.commit, info.date)
			if info.goVer != "" {
				fmt.Fprintf(out, "go: %s\n", info.goVer)
			}
			return nil
		},
	}

	return cmd
}
