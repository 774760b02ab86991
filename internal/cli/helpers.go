package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/glorpus-work/mfdl/internal/logger"
	"github.com/glorpus-work/mfdl/pkg/archive"
	"github.com/glorpus-work/mfdl/pkg/config"
	"github.com/glorpus-work/mfdl/pkg/download"
	"github.com/glorpus-work/mfdl/pkg/hooks"
	"github.com/glorpus-work/mfdl/pkg/mediafire"
	"github.com/glorpus-work/mfdl/pkg/orchestrator"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
)

// loadConfig loads the configuration from the --config flag or the default
// location and applies flag overrides.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}
	if configPath == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", err)
		}
		configPath = defaultPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	return cfg, nil
}

// buildOrchestrator wires the MediaFire adapter, the transfer engine with a
// progress bar sink, the bounded scheduler, the hook manager and optional
// archive extraction together.
func buildOrchestrator(cfg *config.Config) (*orchestrator.Orchestrator, error) {
	client := mediafire.NewClient(cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent)

	transfer := download.NewManager(cfg.Settings.HTTPTimeout, cfg.Settings.UserAgent, cfg.Settings.ChunkSize)
	transfer.SetProgress(progressSink)

	hookManager := hooks.NewHookManager()
	if cfg.Settings.HooksDir != "" {
		if err := hooks.LoadHooksFromDir(hookManager, cfg.Settings.HooksDir); err != nil {
			return nil, fmt.Errorf("failed to load hooks: %w", err)
		}
	}

	var extractor *archive.Manager
	if cfg.Settings.Extract {
		extractor = archive.NewManager()
	}

	orch := orchestrator.New(
		client,
		transfer,
		download.NewScheduler(cfg.Settings.Simultaneous),
		orchestrator.Hooks{OnEvent: eventHandler(hookManager, extractor)},
	)
	orch.MaxPages = cfg.Settings.MaxPages
	return orch, nil
}

// progressSink renders a byte progress bar for one transfer. A zero total
// (missing Content-Length) falls back to an indeterminate spinner.
func progressSink(filename string, total int64) io.Writer {
	if total <= 0 {
		total = -1
	}
	return progressbar.DefaultBytes(total, filename)
}

// eventHandler logs engine events, runs the matching download hooks and,
// when an extractor is configured, unpacks completed archives. Hook and
// extraction failures are logged, never escalated: they must not fail the
// download they decorate.
func eventHandler(hookManager hooks.HookManager, extractor *archive.Manager) func(orchestrator.Event) {
	return func(e orchestrator.Event) {
		switch e.Phase {
		case "routing":
			logger.Debugf("Routing %s", e.ID)
		case "listing":
			logger.Debugf("Listing folder %s", e.ID)
		case "downloading":
			logger.Infof("Starting download: %s", e.ID)
			runHook(hookManager, hooks.PreDownload, e)
		case "downloaded":
			logger.Infof("Finished download: %s", e.ID)
			runHook(hookManager, hooks.PostDownload, e)
			extractArchive(extractor, e.ID)
		case "skipped":
			logger.Infof("Already up to date: %s", e.ID)
		case "error":
			logger.Errorf("%s: %s", e.ID, e.Msg)
		}
	}
}

func runHook(hookManager hooks.HookManager, hookType hooks.HookType, e orchestrator.Event) {
	err := hookManager.Execute(hookType, hooks.HookContext{
		ShareLink: e.ShareLink,
		Path:      e.ID,
		Filename:  filepath.Base(e.ID),
		Hash:      e.Hash,
	})
	if err != nil {
		logger.Warnf("%s hook failed for %s: %v", hookType, e.ID, err)
	}
}

// extractArchive unpacks a downloaded archive into a directory named after
// the file, next to the download.
func extractArchive(extractor *archive.Manager, path string) {
	if extractor == nil {
		return
	}
	ctx := context.Background()
	if !extractor.IsArchive(ctx, path) {
		return
	}
	destDir := strings.TrimSuffix(path, filepath.Ext(path))
	if destDir == path {
		destDir = path + "-extracted"
	}
	logger.Infof("Extracting %s", path)
	if err := extractor.ExtractAll(ctx, path, destDir); err != nil {
		logger.Warnf("Extraction failed for %s: %v", path, err)
	}
}
