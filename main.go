package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dreitier/dirscan/config"
	"github.com/dreitier/dirscan/metrics"
	"github.com/dreitier/dirscan/report"
	"github.com/dreitier/dirscan/storage/owner"
	"github.com/go-faster/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const app = "dirscan"

var gitRepo = "dreitier/dirscan"
var gitCommit = "unknown"
var gitTag = "unknown"

type options struct {
	configFile   string
	debug        bool
	output       string
	timezone     string
	workers      int
	strictOwner  bool
	unknownOwner string
	metricsFile  string
}

func printVersion() {
	if gitTag == "" {
		gitTag = "err-no-git-tag"
	}

	log.Debugf("%s (dist=%s; version=%s; commit=%s)", app, gitRepo, gitTag, gitCommit)
}

func main() {
	configureLogrus()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdout).ExecuteContext(ctx); err != nil {
		stop()
		log.Fatalf("%s", err)
	}
}

func configureLogrus() {
	customFormatter := new(log.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   app + " [TARGET]",
		Short: "List all files below a directory, most recently modified first",
		Long: `dirscan walks TARGET recursively and prints every regular file with its
relative directory, size, modification time and owner, newest first.

TARGET defaults to default_target of the configuration file or ~/Downloads.`,
		Version:       gitTag,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts, stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "configuration file (default: first config.yaml in ./, ~/.dirscan, /etc/dirscan)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug log; overwrites any configuration file loglevel")
	flags.StringVarP(&opts.output, "output", "o", config.DefaultOutput, "output format: table, json or yaml")
	flags.StringVar(&opts.timezone, "timezone", "", "timezone of rendered modification times, e.g. Europe/Berlin or Local")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "number of files read in parallel (default min(cpus, 8))")
	flags.BoolVar(&opts.strictOwner, "strict-owner", false, "skip files whose owner can not be resolved")
	flags.StringVar(&opts.unknownOwner, "unknown-owner", config.DefaultUnknownOwner, "owner reported if the owner can not be resolved")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write scan metrics in Prometheus text format to this file")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options, stdout io.Writer) error {
	if opts.debug {
		log.SetLevel(log.DebugLevel)
	}

	printVersion()

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}

	global := cfg.Global()

	if !opts.debug {
		log.SetLevel(global.LogLevel())
	}

	flags := cmd.Flags()

	output := global.Output()
	if flags.Changed("output") {
		output = opts.output
	}

	renderer, err := report.NewRenderer(output)
	if err != nil {
		return err
	}

	location := global.Location()
	if flags.Changed("timezone") {
		location, err = config.ParseLocation(opts.timezone)
		if err != nil {
			return errors.Wrap(err, "parse timezone")
		}
	}

	resolver, err := owner.New(global.OwnerCacheSize())
	if err != nil {
		return err
	}

	scanner := &report.Scanner{
		Owners:       resolver,
		Formatter:    report.Formatter{Location: location},
		Workers:      global.Workers(),
		UnknownOwner: global.UnknownOwner(),
		StrictOwner:  global.StrictOwner(),
	}

	if flags.Changed("workers") {
		scanner.Workers = opts.workers
	}

	if flags.Changed("unknown-owner") {
		scanner.UnknownOwner = opts.unknownOwner
	}

	if flags.Changed("strict-owner") {
		scanner.StrictOwner = opts.strictOwner
	}

	metricsFile := global.MetricsFile()
	if flags.Changed("metrics-file") {
		metricsFile = opts.metricsFile
	}

	target := global.DefaultTarget()
	if len(args) > 0 {
		target = args[0]
	}

	startedAt := time.Now()

	result, err := scanner.Scan(cmd.Context(), target)
	if err != nil {
		return err
	}

	if err := renderer(stdout, result); err != nil {
		return err
	}

	if metricsFile != "" {
		finishedAt := time.Now()
		metrics.GetScanMetrics().UpdateScan(len(result.Records), result.TotalBytes, result.ProblemsByReason(), finishedAt.Sub(startedAt), finishedAt)

		if err := metrics.WriteTextfile(metricsFile); err != nil {
			// the table has been printed already, a missing metrics file is not fatal
			log.Errorf("Failed to write metrics to %s, %v", metricsFile, err)
		}
	}

	return nil
}
