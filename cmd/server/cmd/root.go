package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	logLevel  string
	logFormat string

	rootCmd = &cobra.Command{
		Use:   "server",
		Short: "Role-based web GIS backend for geo-tagged events",
		Long: `HTTP backend for a web GIS event catalog.

The server provides:
- Event listing with category and bounding-box filters (PostGIS)
- JWT registration and login with user/organizer/admin roles
- Owner-or-admin update and delete on events
- Request audit logging to MongoDB with an admin query endpoint
- An embedded Leaflet map front end`,
		// No subcommand runs serve
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCmd.RunE(cmd, args)
		},
	}
)

// Execute adds all child commands to the root command and runs it. Called
// once by main.main().
func Execute() {
	// Missing .env is fine; environment variables take precedence anyway
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error) (default: info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, console) (default: json)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}
