package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"vocabulaire/internal/config"
	"vocabulaire/internal/handler"
	"vocabulaire/internal/logging"
	"vocabulaire/internal/repository"
	"vocabulaire/internal/repository/file"
	"vocabulaire/internal/repository/postgres"
	"vocabulaire/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every command shares once configuration is loaded
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *sql.DB
}

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "vocab [file.voc]",
		Short:        "Spelling quiz over vocabulary word lists",
		Long:         "Quiz yourself on a word list of \"term, definition\" lines, split a large list into smaller ones, and save quizzed words for review.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			return a.runQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), arg)
		},
	}

	cmd.AddCommand(newStatsCmd(a))
	return cmd
}

// init loads configuration and builds the logger
func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("Configuration loaded",
		zap.Int("menu_threshold", cfg.Quiz.MenuThreshold),
		zap.Int("ask_threshold", cfg.Quiz.AskThreshold),
		zap.Bool("history", cfg.History.Enabled),
	)
	return nil
}

func (a *app) close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) runQuiz(in io.Reader, out io.Writer, arg string) error {
	var history repository.HistoryRepository
	if a.cfg.History.Enabled {
		repo, err := a.openHistory()
		if err != nil {
			return fmt.Errorf("failed to open quiz history: %w", err)
		}
		history = repo
	}

	words := file.NewWordListRepo()
	ext := a.cfg.Quiz.Extension

	h := handler.NewHandler(
		handler.NewConsole(in, out),
		service.NewLoaderService(words, ext, a.logger),
		service.NewSplitService(words, ext, a.logger),
		service.NewQuizService(history, nil, a.logger),
		service.NewReviewService(words, ext, a.logger),
		a.cfg.Quiz,
		a.logger,
	)

	err := h.Run(arg)
	if errors.Is(err, handler.ErrInputClosed) {
		a.logger.Info("Input closed, leaving")
		fmt.Fprintln(out)
		return nil
	}
	return err
}

// openHistory connects to the history database, applies migrations and
// drops rounds past the retention period
func (a *app) openHistory() (*postgres.HistoryRepo, error) {
	if a.db == nil {
		db, err := connectDatabase(a.cfg.DSN(), a.logger)
		if err != nil {
			return nil, err
		}
		if err := runMigrations(db, a.logger); err != nil {
			db.Close()
			return nil, err
		}
		a.db = db
	}

	repo := postgres.NewHistoryRepo(a.db)
	stats := service.NewStatsService(repo, a.cfg.History.RetentionDays, a.logger)
	if err := stats.CleanupOldData(); err != nil {
		a.logger.Warn("Failed to clean old rounds", zap.Error(err))
	}
	return repo, nil
}
