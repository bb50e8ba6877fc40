package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"restUriHub/config"
	"restUriHub/initialization"
	"restUriHub/internal/global"
	"restUriHub/migrations"
	"restUriHub/pkg/client"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var Version string

func main() {
	global.Version = Version

	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	var confPath string

	cmd := &cobra.Command{
		Use:   "restUriHub",
		Short: "REST API URI definition service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(confPath)
		},
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&confPath, "config", "c", "", "config file, defaults to config/config.yaml or config/config.{ENV}.yaml")

	cmd.AddCommand(
		newCmdServe(&confPath),
		newCmdConfig(&confPath),
		newCmdMigrate(&confPath),
		newCmdVersion(),
	)
	return cmd
}

func newCmdServe(confPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*confPath)
		},
		SilenceUsage: true,
	}
}

func runServe(confPath string) error {
	b := initialization.InitBasic(confPath)
	return initialization.InitRoute(b)
}

func newCmdConfig(confPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration with secrets masked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(*confPath)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(c.Masked())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
		SilenceUsage: true,
	}
}

func newCmdMigrate(confPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema.",
	}

	run := func(fn func(ctx context.Context, c config.App) error) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(*confPath)
			if err != nil {
				return err
			}
			if err := initialization.SetUpLog(c.Log); err != nil {
				return err
			}
			return fn(cmd.Context(), c)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:          "up",
			Short:        "Apply all pending migrations.",
			RunE:         run(withDB(migrations.Up)),
			SilenceUsage: true,
		},
		&cobra.Command{
			Use:          "down",
			Short:        "Roll back the latest migration.",
			RunE:         run(withDB(migrations.Down)),
			SilenceUsage: true,
		},
		&cobra.Command{
			Use:          "status",
			Short:        "Print the migration status.",
			RunE:         run(withDB(migrations.Status)),
			SilenceUsage: true,
		},
	)
	return cmd
}

func withDB(fn func(ctx context.Context, db *sql.DB, driver string) error) func(ctx context.Context, c config.App) error {
	return func(ctx context.Context, c config.App) error {
		db, err := client.NewDBClient(c.Database, false)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		return fn(ctx, sqlDB, c.Database.Driver)
	}
}

func newCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "restUriHub version: %s\n", global.Version)
		},
	}
}
