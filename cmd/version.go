/*
Copyright © 2025 GOCLI Project
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	versionVerbose bool
	versionJSON    bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long: `Display detailed version information about GOCLI.

Shows the version number, build information, and platform details.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	// Command flags
	versionCmd.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "show detailed version information")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "output version information as JSON")
}

// VersionInfo contains all version-related information
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := getVersionInfo()

	if versionJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(info)
	}

	if versionVerbose {
		fmt.Fprintf(cmd.OutOrStdout(), "gocli version %s\n", info.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", info.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", info.Date)
		fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", info.GoVersion)
		fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s\n", info.Platform)
		return nil
	}

	// Simple version output
	fmt.Fprintf(cmd.OutOrStdout(), "gocli version %s\n", info.Version)
	return nil
}

func getVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   appVersion,
		Commit:    appCommit,
		Date:      appDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	// Fall back to VCS build info when ldflags were not set
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.Commit == "unknown" {
					info.Commit = setting.Value
				}
			case "vcs.time":
				if info.Date == "unknown" {
					info.Date = setting.Value
				}
			}
		}
	}

	return info
}
