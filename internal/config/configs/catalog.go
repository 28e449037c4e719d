package configs

// Catalog locates the dataset catalog. Relative dataset paths inside the
// catalog are resolved against DataDir, or against the catalog's own
// directory when DataDir is empty.
type Catalog struct {
	Path    string `env:"PATH" envDefault:"datasets.yaml"`
	DataDir string `env:"DATA_DIR"`
}
