package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/app"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/config"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/infra/logger"
	"github.com/Luqman-Ismat-Pinnacle/ppcdemo-sub010/pkg/export"
)

var (
	scenarioPath string
	outPath      string
	outFormat    string
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Run resource leveling over a scenario file",
	RunE:  runLevel,
}

func init() {
	levelCmd.Flags().StringVar(&scenarioPath, "scenario", "", "scenario file (json or yaml)")
	levelCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")
	levelCmd.Flags().StringVar(&outFormat, "format", "json", "output format: json or csv")
	_ = levelCmd.MarkFlagRequired("scenario")
	rootCmd.AddCommand(levelCmd)
}

func runLevel(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	go func() {
		if err := svc.ServeMetrics(ctx); err != nil {
			logger.New("main").Errorf("prom server: %v", err)
		}
	}()

	res, err := svc.Level(scenarioPath)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	switch outFormat {
	case "json":
		return export.WriteJSON(out, res)
	case "csv":
		return export.WriteCSV(out, res)
	default:
		return fmt.Errorf("unsupported format: %s", outFormat)
	}
}
