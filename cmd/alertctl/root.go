package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Behyna/safetycheck/internal/alert"
	"github.com/Behyna/safetycheck/internal/config"
	"github.com/Behyna/safetycheck/internal/metrics"
	"github.com/Behyna/safetycheck/internal/service"
	"github.com/Behyna/safetycheck/pkg/httpclient"
	"github.com/Behyna/safetycheck/pkg/smsprovider"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgDir   string
	username string
	apiKey   string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:          "alertctl",
	Short:        "Send SafetyCheck test messages and emergency alerts from the terminal",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgDir, "config", "c", "./config", "directory containing config.yml")
	rootCmd.PersistentFlags().StringVar(&username, "username", "", "ClickSend username (overrides config)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "ClickSend API key (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every send")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}

func newEmergencyService(logger *zap.Logger) (service.EmergencyService, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadFrom(cfgDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	m := metrics.NewMetrics(prometheus.NewRegistry())
	client := httpclient.NewHTTPClient(httpclient.Config{Timeout: cfg.Provider.Timeout})
	provider := service.NewProviderService(smsprovider.NewClickSend(cfg.Provider, client), logger, cfg, m)

	return service.NewEmergencyService(provider, alert.NewComposer(time.Now), logger, cfg, m), nil
}

func credentials() smsprovider.Credentials {
	return smsprovider.Credentials{Username: username, APIKey: apiKey}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
