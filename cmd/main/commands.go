package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"papersketch/internal/version"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the PaperSketch server",
		Long:  "Start the MCP tool server and the artifact download endpoint",
		RunE:  runServe,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.GetVersionString())
		},
	}
)

func init() {
	serveCmd.Flags().Bool("stdio", false, "serve MCP over stdio instead of streamable HTTP")
}

// configEnvKeys maps config-file keys to the environment variables the
// loader reads, so file-based settings reach it without clobbering explicit
// env overrides.
var configEnvKeys = map[string]string{
	"papersketch_api_key":  "PAPERSKETCH_API_KEY",
	"papersketch_endpoint": "PAPERSKETCH_ENDPOINT",
	"request_timeout":      "REQUEST_TIMEOUT",
	"public_base_url":      "PUBLIC_BASE_URL",
	"cache_ttl":            "CACHE_TTL",
	"mcp_port":             "MCP_PORT",
	"api_port":             "API_PORT",
	"export_format":        "EXPORT_FORMAT",
	"render_width":         "RENDER_WIDTH",
	"render_scale":         "RENDER_SCALE",
	"widget_bundle_path":   "WIDGET_BUNDLE_PATH",
}

func runServe(cmd *cobra.Command, args []string) error {
	stdio, _ := cmd.Flags().GetBool("stdio")

	for key, env := range configEnvKeys {
		if viper.IsSet(key) && os.Getenv(env) == "" {
			os.Setenv(env, viper.GetString(key))
		}
	}

	return runServer(stdio)
}
