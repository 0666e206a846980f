package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"foldersize/internal/annotate"
	"foldersize/internal/config"
	"foldersize/internal/services"
	"foldersize/internal/state"
	"foldersize/internal/ui"
)

// App holds what the commands need from the outside world.
type App struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
}

func New() *App {
	return &App{
		Fs:     afero.NewReadOnlyFs(afero.NewOsFs()),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

type session struct {
	base       config.Config
	cfg        config.Config
	configPath string
	warning    string
	log        *logrus.Logger
	closeLog   func() error
	scanner    *services.FSScanner
}

// prepare loads the configuration, applies flags, and builds a scanner for the
// requested root. Logs go to logOut unless a log file is configured.
func (app *App) prepare(cmd *cobra.Command, args []string, logOut io.Writer) (*session, error) {
	configPath := config.ConfigFile(cmd)
	var (
		loaded  config.Config
		loadErr error
		pathErr error
	)
	if configPath != "" {
		loaded, loadErr = config.LoadConfigFile(configPath)
	} else {
		loaded, loadErr = config.LoadConfig()
		configPath, pathErr = config.ConfigPath()
	}

	base, err := config.ApplyFlags(cmd, loaded)
	if err != nil {
		return nil, fmt.Errorf("apply flags: %w", err)
	}
	logger, closeLog, err := NewLogger(base, logOut)
	if err != nil {
		return nil, err
	}

	current := &session{base: base, configPath: configPath, log: logger, closeLog: closeLog}
	if loadErr != nil {
		logger.WithError(loadErr).Warn("using default configuration")
		current.warning = "Config warning: using defaults"
	}
	if pathErr != nil {
		logger.WithError(pathErr).Debug("no config location, preferences will not be saved")
	}

	requested := base.Path
	if len(args) > 0 {
		requested = args[0]
	}
	current.cfg = base
	current.cfg.Path = ResolveRoot(app.Fs, requested, logger)

	exclusions, err := services.NewExclusionPolicy(base.ExcludePatterns...)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	current.scanner = services.NewFSScanner(services.NewFSProvider(app.Fs), exclusions, nil, logger)
	return current, nil
}

// NewLogger builds the logger for cfg. The caller must call the returned
// function once logging is done.
func NewLogger(cfg config.Config, out io.Writer) (*logrus.Logger, func() error, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)

	closeLog := func() error { return nil }
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(file)
		closeLog = file.Close
	}
	return logger, closeLog, nil
}

// ResolveRoot returns an absolute path for requested when it names a
// directory, otherwise it warns and falls back to the working directory.
func ResolveRoot(fsys afero.Fs, requested string, log logrus.FieldLogger) string {
	if requested == "" {
		requested = "."
	}
	if isDir, err := afero.IsDir(fsys, requested); err == nil && isDir {
		if abs, err := filepath.Abs(requested); err == nil {
			return abs
		}
		return filepath.Clean(requested)
	}
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	log.WithFields(logrus.Fields{
		"path":     requested,
		"fallback": cwd,
	}).Warn("not a directory, using the current directory")
	return cwd
}

// Run opens the explorer and saves the view preferences when it closes.
func (app *App) Run(cmd *cobra.Command, args []string) error {
	current, err := app.prepare(cmd, args, io.Discard)
	if err != nil {
		return err
	}
	defer current.closeLog()

	model := ui.NewModel(state.NewState(current.cfg), current.scanner, annotate.New(), current.base).WithStatus(current.warning)
	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("run explorer: %w", err)
	}
	if provider, ok := finalModel.(ui.ConfigProvider); ok && current.configPath != "" {
		if err := config.SaveConfigFile(current.configPath, provider.ConfigSnapshot()); err != nil {
			current.log.WithError(err).Warn("could not save preferences")
		}
	}
	return nil
}

// Report scans the root and prints the summary to Stdout.
func (app *App) Report(cmd *cobra.Command, args []string, opts ReportOptions) error {
	current, err := app.prepare(cmd, args, app.Stderr)
	if err != nil {
		return err
	}
	defer current.closeLog()

	result := current.scanner.Scan(services.ScanRequest{RootPath: current.cfg.Path})
	if failures := result.Stats.Failures(); failures > 0 {
		current.log.WithField("failures", failures).Warn("some entries could not be read")
	}
	opts.ShowHidden = opts.ShowHidden || current.cfg.ShowHidden
	opts.HideComments = opts.HideComments || current.cfg.HideComments
	if err := WriteReport(app.Stdout, result.Root, annotate.New(), opts); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
