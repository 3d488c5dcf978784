package cfg

type Cfg struct {
	// File inputs and outputs
	OutputPath  string
	SourcesPath string
	PlaysPath   string

	// Search configuration
	Season             string
	MaxRecords         int
	MaxArticlesPerPlay int
	Timeout            int

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
