package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/appengine-ltd/planet-aqua/internal/content"
	"github.com/appengine-ltd/planet-aqua/internal/game"
	"github.com/appengine-ltd/planet-aqua/internal/logging"
	"github.com/appengine-ltd/planet-aqua/internal/ui"
)

// version, commit, date are injected at build time with -ldflags -X.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	showVersion bool
	seed        int64
	contentDir  string
	plain       bool
	script      string
	logLevel    string
	logFile     string
}

func main() {
	var opts options

	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	flag.Int64Var(&opts.seed, "seed", 0, "run seed; 0 picks a random one")
	flag.StringVar(&opts.contentDir, "content-dir", "", "load content CSVs and config.yaml from this directory instead of the built-in set")
	flag.BoolVar(&opts.plain, "plain", false, "line mode instead of the full-screen diary")
	flag.StringVar(&opts.script, "script", "", `comma separated inputs to play first, e.g. "b,3,hold" (implies --plain)`)
	flag.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (default warn)")
	flag.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	flag.Parse()

	if opts.showVersion {
		fmt.Printf("Planet Aqua %s (%s) %s\n", version, commit, date)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	var logCfg logging.Config
	if err := content.ParseEnv(&logCfg); err != nil {
		return err
	}
	if opts.logLevel != "" {
		logCfg.Level = opts.logLevel
	}
	if opts.logFile != "" {
		logCfg.OutputPath = opts.logFile
	}
	baseLogger, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	defer func() { _ = baseLogger.Sync() }()
	logger, _ := logging.WithRunID(baseLogger)

	var fsys fs.FS = content.Default()
	if opts.contentDir != "" {
		fsys = os.DirFS(opts.contentDir)
	}
	bundle, err := content.Load(fsys)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	if err := content.ApplyEnv(&bundle.Config); err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		if seed, err = game.NewSeed(); err != nil {
			return err
		}
	}

	seq, err := game.NewSequencer(bundle.Catalog, bundle.Config, seed, logger)
	if err != nil {
		return err
	}
	if err := seq.Start(); err != nil {
		return err
	}
	logger.Info("diary opened",
		zap.Int64("seed", seed),
		zap.String("content_dir", opts.contentDir),
	)

	if opts.plain || opts.script != "" {
		fmt.Printf("Seed %d\n\n", seed)
		return ui.NewPlainSession(seq, os.Stdin, os.Stdout, ui.ParseScript(opts.script), logger).Run()
	}

	app := ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
	}, seq, logger)
	if err := app.Run(); err != nil {
		return err
	}
	fmt.Printf("Seed %d. Run again with --seed %d to replay this ocean.\n", seed, seed)
	return nil
}
