package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rivnefurniture-lab/kurevin-art/config"
	"github.com/rivnefurniture-lab/kurevin-art/database"
	routes "github.com/rivnefurniture-lab/kurevin-art/internal/app/http"
	"github.com/rivnefurniture-lab/kurevin-art/internal/domain/users"
	"github.com/rivnefurniture-lab/kurevin-art/internal/infra/imagestore"
	"github.com/rivnefurniture-lab/kurevin-art/internal/infra/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "kurevin",
		Short:        "Kurevin art portfolio and studio",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), seedCmd(), passwdCmd())
	return root
}

// bootstrap loads configuration, sets up logging and opens the database.
func bootstrap() (*config.Config, error) {
	loaded := config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Env)
	if len(loaded) > 0 {
		logger.Get().Info().Strs("files", loaded).Msg("loaded env files")
	}
	if cfg.UsesDevSecret() {
		logger.Get().Warn().Msg("SESSION_SECRET not set, using the development key")
	}
	if _, err := database.InitDB(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap()
			if err != nil {
				return err
			}
			if !cfg.IsDevelopment() {
				gin.SetMode(gin.ReleaseMode)
			}

			r, err := routes.Setup(cfg)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() {
				logger.Get().Info().Str("addr", srv.Addr).Msg("listening")
				errc <- srv.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Get().Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the initial catalogue when the database has no paintings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap()
			if err != nil {
				return err
			}
			images, err := imagestore.New(cfg.UploadDir)
			if err != nil {
				return err
			}
			n, err := database.Seed(database.DB, images.Exists)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d paintings\n", n)
			return nil
		},
	}
}

func passwdCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "passwd <username>",
		Short: "Set an admin password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				return errors.New("--password is required")
			}
			if _, err := bootstrap(); err != nil {
				return err
			}
			if err := users.ResetPassword(database.DB, args[0], password); err != nil {
				return fmt.Errorf("set password for %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "password updated for %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&password, "password", "", "new password")
	return cmd
}
