package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/mfdl/internal/logger"
	"github.com/glorpus-work/mfdl/pkg/bookmarks"
	"github.com/glorpus-work/mfdl/pkg/download"
)

// mediafireHost filters bookmark links down to MediaFire share links.
const mediafireHost = "mediafire.com"

type getFlags struct {
	dir          string
	simultaneous int
	fromFile     string
	extract      bool
}

// NewGetCmd creates the get command.
func NewGetCmd() *cobra.Command {
	flags := &getFlags{}

	cmd := &cobra.Command{
		Use:   "get [share-link...]",
		Short: "Download MediaFire share links",
		Long: `Download one or more MediaFire file or folder share links.
Folder links are mirrored recursively. Files already present locally with a
matching content hash are skipped, so re-running after a partial failure
only redoes the missing work.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.dir, "dir", "d", "", "target directory (default from config)")
	cmd.Flags().IntVarP(&flags.simultaneous, "simultaneous", "s", 0, "maximum concurrent downloads (default from config)")
	cmd.Flags().StringVarP(&flags.fromFile, "from-file", "f", "", "extract share links from a bookmarks or text file")
	cmd.Flags().BoolVar(&flags.extract, "extract", false, "unpack downloaded archives next to the download")

	return cmd
}

func runGet(cmd *cobra.Command, args []string, flags *getFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flags.dir != "" {
		cfg.Settings.DownloadDir = flags.dir
	}
	if flags.simultaneous > 0 {
		cfg.Settings.Simultaneous = flags.simultaneous
	}
	if flags.extract {
		cfg.Settings.Extract = true
	}
	logger.InitLogger(cfg.Settings.LogLevel)

	links := append([]string{}, args...)
	if flags.fromFile != "" {
		fromFile, err := bookmarks.ExtractLinks(flags.fromFile, mediafireHost)
		if err != nil {
			return err
		}
		links = append(links, fromFile...)
	}
	if len(links) == 0 {
		return fmt.Errorf("no share links given (pass links as arguments or use --from-file)")
	}

	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	logger.Infof("Starting bulk download of %d links", len(links))
	outcomes := orch.DownloadMany(cmd.Context(), links, cfg.Settings.DownloadDir)

	failed := 0
	for _, outcome := range outcomes {
		switch outcome.Status {
		case download.StatusCompleted:
			logger.Successf("%s", outcome.ID)
		case download.StatusSkipped:
			logger.Infof("Already up to date: %s", outcome.ID)
		case download.StatusFailed:
			failed++
			logger.Errorf("Failed: %s: %v", outcome.ID, outcome.Err)
		}
	}
	logger.Infof("Finished bulk download of %d links", len(links))

	if failed > 0 {
		return fmt.Errorf("%d of %d links failed", failed, len(links))
	}
	return nil
}
