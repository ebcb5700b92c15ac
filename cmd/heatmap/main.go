package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/midbel/heatmap/display"
	"github.com/midbel/heatmap/logging"
	"github.com/midbel/heatmap/server"
	"github.com/midbel/heatmap/temperature"
)

var logLevels = []string{
	zap.DebugLevel.String(),
	zap.InfoLevel.String(),
	zap.WarnLevel.String(),
	zap.ErrorLevel.String(),
}

var cli struct {
	LogLevel string `default:"info" help:"${help_log_level}" enum:"${enum_log_level}"`

	Draw struct {
		Output string `short:"o" default:"" help:"Output file, stdout when empty."`
		Format string `default:"svg" help:"Output format." enum:"svg,html"`
	} `cmd:"" help:"Fetch the dataset once and write the heatmap."`

	Serve struct {
		ListenAddr string `default:"127.0.0.1:8080" help:"Listen TCP address."`
	} `cmd:"" help:"Serve the interactive heatmap page."`
}

var kongOptions = []kong.Option{
	kong.Description("Calendar heatmap of the monthly global land-surface temperature."),
	kong.Vars{
		"enum_log_level": strings.Join(logLevels, ","),
		"help_log_level": fmt.Sprintf("Log level: '%s'.", strings.Join(logLevels, "', '")),
	},
	kong.DefaultEnvars("HEATMAP"),
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("loading .env: %s", err)
	}
	kctx := kong.Parse(&cli, kongOptions...)

	logger, err := logging.New(cli.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		reg     = prometheus.NewRegistry()
		metrics = temperature.NewMetrics()
		loader  = temperature.NewLoader(logger, metrics)
		session = display.NewSession(loader, logger)
	)
	reg.MustRegister(metrics)

	switch kctx.Command() {
	case "draw":
		err = draw(ctx, session)
	case "serve":
		err = serve(ctx, session, reg, logger)
	default:
		err = fmt.Errorf("%s: unknown command", kctx.Command())
	}
	if err != nil {
		logger.Error("heatmap failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func draw(ctx context.Context, session *display.Session) error {
	session.Start(ctx)
	if err := session.Wait(ctx); err != nil {
		return err
	}
	return export(session, cli.Draw.Output, cli.Draw.Format, os.Stdout)
}

// export writes the chart to file, or to stdout when file is empty. Nothing is
// written when the chart can not be rendered.
func export(session *display.Session, file, format string, stdout io.Writer) error {
	var buf bytes.Buffer
	if err := session.Export(&buf, format); err != nil {
		return err
	}
	if file == "" {
		_, err := buf.WriteTo(stdout)
		return err
	}
	return os.WriteFile(file, buf.Bytes(), 0o644)
}

func serve(ctx context.Context, session *display.Session, reg *prometheus.Registry, logger *zap.Logger) error {
	srv, err := server.New(session, reg, logger)
	if err != nil {
		return err
	}
	return srv.Run(ctx, cli.Serve.ListenAddr)
}
