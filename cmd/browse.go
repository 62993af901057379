package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/killallgit/podcast-search/internal/browser"
	"github.com/killallgit/podcast-search/internal/ui"
	"github.com/killallgit/podcast-search/pkg/config"
	"github.com/spf13/cobra"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog in the terminal",
	Long: `Browse podcasts from a running Podcast Search API.

Typing searches after a short pause, enter searches immediately,
left/right (or ctrl+p/ctrl+n) change page and esc quits.

With --once the requested page is fetched a single time and printed
as plain text, which is handy in scripts.

Example:
  podcast-search browse
  podcast-search browse --query jazz --page 2
  podcast-search browse --once --query news --width 120`,
	Annotations: map[string]string{ownLogging: "true"},
	RunE:        runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().Bool("once", false, "fetch one page, print it and exit")
	browseCmd.Flags().String("query", "", "initial search text")
	browseCmd.Flags().Int("page", 1, "initial page")
	browseCmd.Flags().String("api-url", "", "API base URL (overrides config)")
	browseCmd.Flags().String("log-file", "", "write logs to this file instead of discarding them")
	browseCmd.Flags().Int("width", 0, "output width for --once (default 100)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	once, _ := cmd.Flags().GetBool("once")
	query, _ := cmd.Flags().GetString("query")
	page, _ := cmd.Flags().GetInt("page")
	apiURL, _ := cmd.Flags().GetString("api-url")
	logFile, _ := cmd.Flags().GetString("log-file")
	width, _ := cmd.Flags().GetInt("width")

	if apiURL == "" {
		apiURL = cfg.Browser.APIURL
	}
	if page < 1 {
		return fmt.Errorf("--page must be at least 1")
	}

	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	initLogging(cmd, logOut)

	client, err := browser.NewClient(apiURL, cfg.Browser.Timeout)
	if err != nil {
		return err
	}
	defer client.CloseIdleConnections()

	opts := browser.Options{
		PageSize: cfg.Browser.PageSize,
		Debounce: cfg.Browser.Debounce,
		Timeout:  cfg.Browser.Timeout,
	}

	if once {
		return browseOnce(cmd.OutOrStdout(), client, opts, query, page, width)
	}

	model := ui.New(client, opts, query)
	defer model.Session().Close()
	if page > 1 {
		model.Session().GoTo(page)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}

// browseOnce fetches a single page and prints it; a fetch error is printed and returned
func browseOnce(out io.Writer, f browser.Fetcher, opts browser.Options, query string, page, width int) error {
	// nothing is debounced; Submit fetches directly
	opts.Debounce = time.Hour
	session := browser.NewSession(f, opts)
	defer session.Close()

	session.SetInput(query)
	session.GoTo(page)
	session.Submit()
	session.Wait()

	snap := session.Snapshot()
	if width <= 0 {
		width = 100
	}
	fmt.Fprint(out, ui.RenderPlain(snap, width))

	if snap.Err != "" {
		return fmt.Errorf("fetching page %d: %s", snap.Page, snap.Err)
	}
	return nil
}
