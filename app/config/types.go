package config

// PipelineConfig holds the tunables of both pipelines
type PipelineConfig struct {
	DedupPolicy string            `yaml:"dedup_policy"`
	Encoding    string            `yaml:"encoding"`
	Fashion     FashionSettings   `yaml:"fashion"`
	Furniture   FurnitureSettings `yaml:"furniture"`
}

// FashionSettings controls the fashion sources
type FashionSettings struct {
	SampleSize    *int     `yaml:"sample_size"`
	SampleSeed    *int64   `yaml:"sample_seed"`
	SelectedFiles []string `yaml:"selected_files"`
	FileExtension string   `yaml:"file_extension"`
}

// FurnitureSettings controls cleaning and link generation
type FurnitureSettings struct {
	DescriptionDefault string `yaml:"description_default"`
	StripHTML          bool   `yaml:"strip_html"`
	AmazonSearchURL    string `yaml:"amazon_search_url"`
	FlipkartSearchURL  string `yaml:"flipkart_search_url"`
}
