package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lysyi3m/catalog-merge/app/furniture"
	"github.com/lysyi3m/catalog-merge/app/runner"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		slog.Error("Pipeline failed", "error", err)
		os.Exit(1)
	}
}

// run exports to SQLite before writing the CSV so a failed export leaves no new output file.
func run(ctx context.Context, args []string) error {
	env, err := runner.Setup(furniture.Name, args)
	if err != nil {
		return err
	}
	if env == nil {
		// Help was shown
		return nil
	}

	p := furniture.NewPipeline(furniture.Options{
		DataDir:  env.Cfg.DataDir,
		Settings: env.Pipeline.Furniture,
		Policy:   env.Policy,
		Encoding: env.Pipeline.Encoding,
	}, env.Metrics)

	products, err := p.Run()
	if err != nil {
		return err
	}

	store, err := env.OpenStore(ctx)
	if err != nil {
		return fmt.Errorf("failed to open export database: %w", err)
	}
	if store != nil {
		defer store.Close()
		if err := p.Export(ctx, store, products); err != nil {
			return err
		}
	}

	path, err := p.Save(products)
	if err != nil {
		return err
	}

	if err := env.Finish(furniture.Name); err != nil {
		return fmt.Errorf("%s was written but metrics were not: %w", path, err)
	}

	slog.Info("Final dataset saved", "path", path, "rows", len(products))
	return nil
}
