package furniture

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lysyi3m/catalog-merge/app/config"
	"github.com/lysyi3m/catalog-merge/app/dataset"
	"github.com/lysyi3m/catalog-merge/app/export"
	"github.com/lysyi3m/catalog-merge/app/merge"
	"github.com/lysyi3m/catalog-merge/app/stage"
)

const (
	Name       = "furniture"
	OutputFile = "final_products.csv"

	IkeaFile      = "ikea.csv"
	PepperfryFile = "pepperfry.csv"
)

type Options struct {
	DataDir  string
	Settings config.FurnitureSettings
	Policy   merge.Policy
	Encoding string
}

type Pipeline struct {
	opts    Options
	tracker *stage.Tracker
	cleaner *Cleaner
	links   *LinkGenerator
}

func NewPipeline(opts Options, recorder stage.Recorder) *Pipeline {
	return &Pipeline{
		opts:    opts,
		tracker: stage.NewTracker(Name, recorder),
		cleaner: NewCleaner(opts.Policy, opts.Settings.DescriptionDefault, opts.Settings.StripHTML),
		links:   NewLinkGenerator(opts.Settings.AmazonSearchURL, opts.Settings.FlipkartSearchURL),
	}
}

func OutputPath(dataDir string) string {
	return filepath.Join(dataDir, "processed", OutputFile)
}

// Run loads both sources and returns cleaned products with marketplace links.
func (p *Pipeline) Run() ([]Product, error) {
	var ikea, pepperfry *dataset.Table
	err := p.tracker.Run(stage.NameLoad, func() (int, error) {
		var err error
		raw := filepath.Join(p.opts.DataDir, "raw")
		readOpts := dataset.ReadOptions{Encoding: p.opts.Encoding}

		if ikea, err = dataset.ReadFile(filepath.Join(raw, IkeaFile), readOpts); err != nil {
			return 0, err
		}
		if pepperfry, err = dataset.ReadFile(filepath.Join(raw, PepperfryFile), readOpts); err != nil {
			return 0, err
		}
		return ikea.Len() + pepperfry.Len(), nil
	})
	if err != nil {
		return nil, err
	}

	var tables [][]Listing
	err = p.tracker.Run(stage.NameStandardize, func() (int, error) {
		ikeaListings, err := StandardizeIkea(ikea)
		if err != nil {
			return 0, fmt.Errorf("failed to standardize %s: %w", IkeaFile, err)
		}
		pepperfryListings, err := StandardizePepperfry(pepperfry)
		if err != nil {
			return 0, fmt.Errorf("failed to standardize %s: %w", PepperfryFile, err)
		}
		tables = [][]Listing{ikeaListings, pepperfryListings}
		return len(ikeaListings) + len(pepperfryListings), nil
	})
	if err != nil {
		return nil, err
	}

	var merged []Listing
	err = p.tracker.Run(stage.NameMerge, func() (int, error) {
		merged = merge.Concat(tables...)
		return len(merged), nil
	})
	if err != nil {
		return nil, err
	}

	var products []Product
	err = p.tracker.Run(stage.NameClean, func() (int, error) {
		var stats CleanStats
		products, stats = p.cleaner.Run(merged)
		p.tracker.Dropped("duplicate_product_name", stats.Duplicates)
		p.tracker.Dropped("missing_product_name", stats.MissingName)
		p.tracker.Dropped("missing_price", stats.MissingPrice)
		return len(products), nil
	})
	if err != nil {
		return nil, err
	}

	err = p.tracker.Run(stage.NameLinks, func() (int, error) {
		products = p.links.Run(products)
		return len(products), nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// Save writes products to processed/final_products.csv under the data directory.
func (p *Pipeline) Save(products []Product) (string, error) {
	path := OutputPath(p.opts.DataDir)

	err := p.tracker.Run(stage.NameSave, func() (int, error) {
		rows := make([][]string, 0, len(products))
		for _, product := range products {
			rows = append(rows, product.Row())
		}
		if err := dataset.Save(path, Columns, rows); err != nil {
			return 0, err
		}
		return len(rows), nil
	})
	if err != nil {
		return "", err
	}

	return path, nil
}

// Export replaces the furniture_products table of store with products.
func (p *Pipeline) Export(ctx context.Context, store *export.Store, products []Product) error {
	return p.tracker.Run(stage.NameExport, func() (int, error) {
		rows := make([][]any, 0, len(products))
		for _, product := range products {
			rows = append(rows, product.Values())
		}
		n, err := store.Replace(ctx, export.TableFurniture, Columns, rows)
		return int(n), err
	})
}
