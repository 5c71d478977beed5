package fashion

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/lysyi3m/catalog-merge/app/config"
	"github.com/lysyi3m/catalog-merge/app/dataset"
	"github.com/lysyi3m/catalog-merge/app/export"
	"github.com/lysyi3m/catalog-merge/app/merge"
	"github.com/lysyi3m/catalog-merge/app/stage"
)

const (
	Name       = "fashion"
	OutputFile = "final_women_fashion.csv"

	FashionDatasetFile = "Fashion Dataset.csv"
	KhaadiFile         = "khaadi_data.csv"
	KurtiFile          = "kurtiData.csv"
	WomenDir           = "women"
)

type Options struct {
	DataDir  string
	Settings config.FashionSettings
	Policy   merge.Policy
	Encoding string
}

type Pipeline struct {
	opts    Options
	tracker *stage.Tracker
}

type sources struct {
	fashion *dataset.Table
	khaadi  *dataset.Table
	kurti   *dataset.Table
	women   []*dataset.Table
}

func NewPipeline(opts Options, recorder stage.Recorder) *Pipeline {
	return &Pipeline{
		opts:    opts,
		tracker: stage.NewTracker(Name, recorder),
	}
}

func OutputPath(dataDir string) string {
	return filepath.Join(dataDir, "processed", OutputFile)
}

// Run loads every source, standardizes and merges them. Rows without a
// product_id are dropped.
func (p *Pipeline) Run() ([]Product, error) {
	var src sources
	err := p.tracker.Run(stage.NameLoad, func() (int, error) {
		var err error
		src, err = p.load()
		if err != nil {
			return 0, err
		}
		return src.rows(), nil
	})
	if err != nil {
		return nil, err
	}

	var tables [][]Product
	standardized := 0
	err = p.tracker.Run(stage.NameStandardize, func() (int, error) {
		var err error
		tables, err = p.standardize(src)
		if err != nil {
			return 0, err
		}
		for _, t := range tables {
			standardized += len(t)
		}
		return standardized, nil
	})
	if err != nil {
		return nil, err
	}

	var merged []Product
	err = p.tracker.Run(stage.NameMerge, func() (int, error) {
		deduped := merge.Run(productKey, p.opts.Policy, tables...)
		p.tracker.Dropped("duplicate_product_id", standardized-len(deduped))

		merged = make([]Product, 0, len(deduped))
		for _, product := range deduped {
			if product.ProductID != "" {
				merged = append(merged, product)
			}
		}
		p.tracker.Dropped("missing_product_id", len(deduped)-len(merged))

		return len(merged), nil
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

// Save writes products to processed/final_women_fashion.csv under the data directory.
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

// Export replaces the fashion_products table of store with products.
func (p *Pipeline) Export(ctx context.Context, store *export.Store, products []Product) error {
	return p.tracker.Run(stage.NameExport, func() (int, error) {
		rows := make([][]any, 0, len(products))
		for _, product := range products {
			rows = append(rows, product.Values())
		}
		n, err := store.Replace(ctx, export.TableFashion, Columns, rows)
		return int(n), err
	})
}

func (p *Pipeline) load() (sources, error) {
	var src sources
	var err error

	raw := filepath.Join(p.opts.DataDir, "raw")
	readOpts := dataset.ReadOptions{Encoding: p.opts.Encoding}

	if src.fashion, err = dataset.ReadFile(filepath.Join(raw, FashionDatasetFile), readOpts); err != nil {
		return src, err
	}
	if src.khaadi, err = dataset.ReadFile(filepath.Join(raw, KhaadiFile), readOpts); err != nil {
		return src, err
	}
	if src.kurti, err = dataset.ReadFile(filepath.Join(raw, KurtiFile), readOpts); err != nil {
		return src, err
	}

	files, err := ListCategoryFiles(filepath.Join(raw, WomenDir), p.opts.Settings.FileExtension, p.opts.Settings.SelectedFiles)
	if err != nil {
		return src, err
	}
	for _, file := range files {
		table, err := dataset.ReadFile(file, readOpts)
		if err != nil {
			return src, err
		}
		slog.Debug("Category file loaded", "file", filepath.Base(file), "rows", table.Len())
		src.women = append(src.women, table)
	}

	return src, nil
}

func (p *Pipeline) standardize(src sources) ([][]Product, error) {
	fashion := StandardizeFashionDataset(src.fashion)

	khaadi, err := StandardizeKhaadi(src.khaadi)
	if err != nil {
		return nil, fmt.Errorf("failed to standardize %s: %w", KhaadiFile, err)
	}

	sampled := Sample(src.kurti, p.opts.Settings.GetSampleSize(), p.opts.Settings.GetSampleSeed())
	slog.Debug("Kurti sampled", "rows", src.kurti.Len(), "sampled", sampled.Len(), "seed", p.opts.Settings.GetSampleSeed())

	kurti, err := StandardizeKurti(sampled)
	if err != nil {
		return nil, fmt.Errorf("failed to standardize %s: %w", KurtiFile, err)
	}

	tables := [][]Product{fashion, khaadi, kurti}
	for _, t := range src.women {
		tables = append(tables, StandardizeWomen(t))
	}

	return tables, nil
}

func (s sources) rows() int {
	total := s.fashion.Len() + s.khaadi.Len() + s.kurti.Len()
	for _, t := range s.women {
		total += t.Len()
	}
	return total
}
