package cmd

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/killallgit/podcast-search/pkg/config"
)

func TestServeCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		timeout        time.Duration
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "serve command with help",
			args:           []string{"serve", "--help"},
			expectedOutput: "Start the Podcast Search API server",
		},
		{
			name:    "serve command with custom port stops with its context",
			args:    []string{"serve", "--host", "127.0.0.1", "--port", "18089"},
			timeout: 100 * time.Millisecond,
		},
		{
			name:    "serve command with invalid port",
			args:    []string{"serve", "--port", "invalid"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			cmd := NewRootCmd()
			if tt.timeout > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), tt.timeout)
				defer cancel()
				cmd.SetContext(ctx)
			}

			out, err := execute(t, tt.args...)
			cmd.SetContext(context.Background())
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.expectedOutput != "" && !strings.Contains(out, tt.expectedOutput) {
				t.Errorf("Expected output to contain %q, got %q", tt.expectedOutput, out)
			}
		})
	}
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	if err != nil {
		t.Fatalf("Failed to find serve command: %v", err)
	}

	if serveCmd.Flags().Lookup("port") == nil {
		t.Error("Expected port flag to be registered")
	}
	if serveCmd.Flags().Lookup("host") == nil {
		t.Error("Expected host flag to be registered")
	}
}

func TestBuildDependencies(t *testing.T) {
	isolate(t)
	if err := config.Init(); err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	deps, release, err := buildDependencies(cfg)
	if err != nil {
		t.Fatalf("buildDependencies() error = %v", err)
	}
	defer release()

	if deps.DB == nil {
		t.Error("Expected mirror database to be configured")
	}
	if deps.Catalog == nil {
		t.Error("Expected catalog service to be configured")
	}
	if deps.CatalogURL != config.DefaultCatalogURL {
		t.Errorf("Expected catalog url %q, got %q", config.DefaultCatalogURL, deps.CatalogURL)
	}
	if err := deps.DB.HealthCheck(); err != nil {
		t.Errorf("Expected healthy database, got %v", err)
	}
}
