package config

const (
	DefaultSampleSize        = 5000
	DefaultSampleSeed        = int64(42)
	DefaultFileExtension     = ".csv"
	DefaultDedupPolicy       = "keep-first"
	DefaultDescription       = "No description available"
	DefaultAmazonSearchURL   = "https://www.amazon.in/s?k="
	DefaultFlipkartSearchURL = "https://www.flipkart.com/search?q="
)

// GetSampleSize returns the kurti sample size; an explicit zero samples nothing
func (s *FashionSettings) GetSampleSize() int {
	if s.SampleSize == nil {
		return DefaultSampleSize
	}
	return *s.SampleSize
}

// GetSampleSeed returns the sampling seed; zero is a valid seed so an unset value is nil
func (s *FashionSettings) GetSampleSeed() int64 {
	if s.SampleSeed == nil {
		return DefaultSampleSeed
	}
	return *s.SampleSeed
}

// Defaults returns a configuration as if an empty file had been loaded
func Defaults() *PipelineConfig {
	var config PipelineConfig
	setDefaults(&config)
	return &config
}
