package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/goccy/go-json"
	"github.com/killallgit/podcast-search/pkg/config"
	"github.com/spf13/cobra"
)

// Build variables, set with -ldflags "-X github.com/killallgit/podcast-search/cmd.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// buildInfo is what `version` reports, as text or JSON
type buildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`

	CatalogURL string `json:"catalog_url,omitempty"`
	APIURL     string `json:"api_url,omitempty"`
	Mirror     string `json:"mirror,omitempty"`
	ConfigErr  string `json:"config_error,omitempty"`
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and endpoint information",
	Long: `Display the build of Podcast Search and where it points.

Besides the version, commit and Go runtime, this shows the upstream
catalog the API proxies, the API the browser talks to and the mirror
database, as resolved from settings.yaml, .env and PODCAST_* variables.
A broken configuration is reported instead of failing the command.`,
	Annotations: map[string]string{skipConfig: "true"},
	RunE:        runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print just the version number")
	versionCmd.Flags().Bool("json", false, "print version information as JSON")
}

func collectBuildInfo() buildInfo {
	info := buildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if err := config.Init(); err != nil {
		info.ConfigErr = err.Error()
		return info
	}
	cfg, err := config.GetConfig()
	if err != nil {
		info.ConfigErr = err.Error()
		return info
	}

	info.CatalogURL = cfg.Catalog.BaseURL
	info.APIURL = cfg.Browser.APIURL
	info.Mirror = cfg.Database.Path
	if info.Mirror == "" {
		info.Mirror = "disabled"
	}
	return info
}

func runVersion(cmd *cobra.Command, args []string) error {
	short, _ := cmd.Flags().GetBool("short")
	asJSON, _ := cmd.Flags().GetBool("json")

	out := cmd.OutOrStdout()
	if short {
		fmt.Fprintf(out, "v%s\n", Version)
		return nil
	}

	info := collectBuildInfo()
	if asJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	rule := strings.Repeat("-", 48)
	fmt.Fprintln(out, "Podcast Search")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "%-10s v%s (%s, built %s)\n", "Version:", info.Version, info.GitCommit, info.BuildTime)
	fmt.Fprintf(out, "%-10s %s %s\n", "Runtime:", info.GoVersion, info.Platform)
	fmt.Fprintln(out, rule)
	if info.ConfigErr != "" {
		fmt.Fprintf(out, "%-10s %s\n", "Config:", info.ConfigErr)
		return nil
	}
	fmt.Fprintf(out, "%-10s %s\n", "Catalog:", info.CatalogURL)
	fmt.Fprintf(out, "%-10s %s\n", "API:", info.APIURL)
	fmt.Fprintf(out, "%-10s %s\n", "Mirror:", info.Mirror)
	return nil
}
