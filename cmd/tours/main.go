// Command tours runs the tour catalogue API and its operator tasks.
//
//	@title						Tour Service API
//	@version					1.0
//	@description				GraphQL API for browsing and managing tour listings.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tourdesk/tour-service/internal/infrastructure/config"
	"github.com/tourdesk/tour-service/pkg/logger"
)

const serviceName = "tour-service"

var (
	// Global flags
	logLevel string

	cfg *config.Config
	log zerolog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tours",
	Short: "Tour catalogue GraphQL service",
	Long: `tours serves the tour catalogue over GraphQL and provides the
operator tasks around it: seeding sample data and creating accounts.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		log = logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  cfg.IsDevelopment(),
			Service: serviceName,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL (trace, debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd, seedCmd, userCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
