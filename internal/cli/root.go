// Package cli defines Cobra command definitions for the hiremind CLI.
// This file contains the root command, version flag, and the shared
// environment the subcommands run in.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prajaltale/HireMind/internal/api"
	"github.com/prajaltale/HireMind/internal/config"
	"github.com/prajaltale/HireMind/internal/history"
	"github.com/prajaltale/HireMind/internal/log"
	"github.com/prajaltale/HireMind/internal/session"
	"github.com/prajaltale/HireMind/internal/speech"
	"github.com/prajaltale/HireMind/internal/tui"
	"github.com/prajaltale/HireMind/internal/tui/app"
)

var (
	baseURL string
	version = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "hiremind",
	Short: "Resume analysis and mock interview client",
	Long: `HireMind scores your resume against job descriptions, reviews it
qualitatively, and runs five-question voice mock interviews with
per-answer feedback.

Run without arguments to open the interactive terminal UI.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tui.IsTTY() {
			return cmd.Help()
		}

		env, err := newEnv()
		if err != nil {
			return err
		}
		defer env.close()

		sess, err := env.store.Load()
		if err != nil {
			env.logger.Warn("loading stored session failed", zap.Error(err))
		}

		m := tui.NewModel(env.cfg, env.client, env.store, env.history, env.logger, sess)
		m.Speaker, m.Transcriber = newSpeech(env.cfg, env.logger)

		return tui.Run(app.New(m))
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env holds the collaborators every subcommand works with.
type env struct {
	cfg     *config.Config
	client  *api.Client
	store   *session.Store
	history *history.Store
	logger  *zap.Logger
}

// newEnv loads config from the state directory and wires the shared
// collaborators. Local history is optional; a failure to open it is logged
// and the client runs without it.
func newEnv() (*env, error) {
	dir := config.StateDir()
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}

	logger := log.New(dir, log.Options{
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	hist, err := history.NewStore(filepath.Join(dir, "history.db"))
	if err != nil {
		logger.Warn("opening local history failed", zap.Error(err))
		hist = nil
	}

	return &env{
		cfg:     cfg,
		client:  api.NewClient(cfg.API.BaseURL),
		store:   session.NewStore(dir),
		history: hist,
		logger:  logger,
	}, nil
}

func (e *env) close() {
	if e.history != nil {
		e.history.Close()
	}
	_ = e.logger.Sync()
}

// requireSession rehydrates the stored session and authenticates the
// client, failing when the user has not logged in.
func (e *env) requireSession() (*session.Session, error) {
	sess, err := e.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if !sess.Valid() {
		return nil, fmt.Errorf("not signed in; run: hiremind login")
	}
	e.client.SetToken(sess.Token)
	return sess, nil
}

// newSpeech builds the optional speech capabilities from config. Either
// may be absent on the host; the interview degrades to typing.
func newSpeech(cfg *config.Config, logger *zap.Logger) (speech.Speaker, speech.Transcriber) {
	var speaker speech.Speaker
	if s, err := speech.NewSpeaker(cfg.Speech.SpeakCommand, cfg.Speech.Rate); err == nil {
		speaker = s
	} else {
		logger.Info("speech output disabled", zap.Error(err))
	}

	var transcriber speech.Transcriber
	if t, err := speech.NewTranscriber(cfg.Speech.TranscribeCommand); err == nil {
		transcriber = t
	} else {
		logger.Info("voice capture disabled", zap.Error(err))
	}
	return speaker, transcriber
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "api", "", "Override the backend base URL")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(atsCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(historyCmd)
}
