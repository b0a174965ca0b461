package imaging

type Config struct {
	MaxDimension   int `env:"IMAGE_MAX_DIMENSION" env-default:"1200" validate:"gte=64"`
	MaxBytes       int `env:"IMAGE_MAX_BYTES" env-default:"419430" validate:"gte=1024"`
	InitialQuality int `env:"IMAGE_INITIAL_QUALITY" env-default:"90" validate:"gte=1,lte=100"`
	MinQuality     int `env:"IMAGE_MIN_QUALITY" env-default:"40" validate:"gte=1,lte=100"`
	QualityStep    int `env:"IMAGE_QUALITY_STEP" env-default:"10" validate:"gte=1"`
	Workers        int `env:"IMAGE_WORKERS" env-default:"4" validate:"gte=1"`
}

// DefaultConfig matches the env defaults, for callers that skip config loading.
func DefaultConfig() Config {
	return Config{
		MaxDimension:   1200,
		MaxBytes:       419430,
		InitialQuality: 90,
		MinQuality:     40,
		QualityStep:    10,
		Workers:        4,
	}
}
