// Command portfolio-seed replaces the portfolio content with the initial dataset.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gomesdev1/portfolio-api/internal/config"
	"github.com/gomesdev1/portfolio-api/internal/database"
	"github.com/gomesdev1/portfolio-api/internal/seed"
	"github.com/spf13/cobra"
)

var (
	seedConfirm bool
	seedEnvFile string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-seed",
	Short: "Seed the portfolio database",
	Long:  "Deletes every document in the six portfolio collections and inserts the initial personal info, skills, education, projects, goals and current learning items.",
	RunE:  runSeed,
}

func init() {
	rootCmd.Flags().BoolVar(&seedConfirm, "yes", false, "Confirm that existing content will be deleted")
	rootCmd.Flags().StringVar(&seedEnvFile, "env-file", ".env", "Path to the dotenv file to load")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if !seedConfirm {
		return errors.New("seeding deletes all portfolio content; rerun with --yes to continue")
	}

	cfg, err := config.Load(seedEnvFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.MongoURL, cfg.DBName, cfg.MongoConnectTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	results, err := seed.Run(ctx, db, seed.Default())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(out, "%-18s cleared %d, inserted %d\n", r.Collection, r.Cleared, r.Inserted)
	}
	fmt.Fprintln(out, "Database seeded successfully")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
