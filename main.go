package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"club-review/config"
	"club-review/logger"
	"club-review/models"
	"club-review/scraper"
	"club-review/seed"
	"club-review/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "clubreview",
		Short:         "Club review API server and data tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			config.Init()
		},
	}

	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", logger.FormatConsole, "log format (console, json)")
	cmd.PersistentFlags().String("db-driver", config.DriverSQLite, "database driver (sqlite, postgres)")
	cmd.PersistentFlags().String("db-path", "clubreview.db", "sqlite database file")
	bindFlags(cmd.PersistentFlags().Lookup, "log-level", "log-format", "db-driver", "db-path")

	cmd.AddCommand(newServeCommand(), newSeedCommand(), newScrapeCommand())
	return cmd
}

// bindFlags makes each flag override the matching environment variable.
func bindFlags(lookup func(string) *pflag.Flag, names ...string) {
	for _, name := range names {
		if err := viper.BindPFlag(name, lookup(name)); err != nil {
			panic(err)
		}
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			gin.SetMode(cfg.GinMode)

			db, err := config.InitDB(cfg.Database, log)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			router := server.NewRouter(cfg, server.NewServices(db, log), log)
			return server.Run(ctx, cfg, router, log)
		},
	}

	cmd.Flags().String("port", "8080", "port to listen on")
	bindFlags(cmd.Flags().Lookup, "port")
	return cmd
}

func newSeedCommand() *cobra.Command {
	var (
		file string
		url  string
		user models.SignupRequest
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load clubs from a JSON file or a scraped listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (file == "") == (url == "") {
				return fmt.Errorf("exactly one of --file or --url is required")
			}

			cfg := config.Load()
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			var clubs []models.ClubSeed
			if file != "" {
				clubs, err = seed.LoadClubsFile(file)
			} else {
				clubs, err = scraper.New(nil, log).Scrape(cmd.Context(), url)
			}
			if err != nil {
				return err
			}

			db, err := config.InitDB(cfg.Database, log)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}

			svc := server.NewServices(db, log)
			seeder := seed.NewSeeder(svc.Club, svc.Auth, log)

			if user.Username != "" {
				if err := seeder.SeedUser(user); err != nil {
					return err
				}
			}

			_, _, err = seeder.SeedClubs(clubs)
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to a JSON array of clubs")
	cmd.Flags().StringVar(&url, "url", "", "club listing page to scrape instead of a file")
	cmd.Flags().StringVar(&user.Username, "user", "", "also create this user")
	cmd.Flags().StringVar(&user.Name, "user-name", "", "display name of the seeded user")
	cmd.Flags().StringVar(&user.Password, "password", "", "password of the seeded user")
	cmd.Flags().StringVar(&user.Email, "email", "", "email of the seeded user")
	return cmd
}

func newScrapeCommand() *cobra.Command {
	var (
		url string
		out string
	)

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape the club listing into seed JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			clubs, err := scraper.New(nil, log).Scrape(cmd.Context(), url)
			if err != nil {
				return err
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(clubs)
		},
	}

	cmd.Flags().StringVar(&url, "url", scraper.DefaultURL, "club listing page")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}
