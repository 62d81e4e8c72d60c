package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"commission-tracker/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const migrateTimeout = 2 * time.Minute

// migrate applies pending files from the migrations directory with the atlas CLI.
func main() {
	dir := flag.String("dir", "migrations", "migrations directory")
	bin := flag.String("atlas", "atlas", "atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	if err := run(*dir, *bin, *dryRun); err != nil {
		slog.Error("migration failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(dir, bin string, dryRun bool) error {
	cfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), bin)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DryRun: dryRun,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		slog.Info("migration applied", "name", f.Name, "version", f.Version)
	}
	slog.Info("database is up to date", "current", res.Current, "target", res.Target, "pending", len(res.Pending), "dry_run", dryRun)
	return nil
}
