package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	OutputDir string
	Encoding  string
	Prefix    string
	Sort      bool
	Archive   bool
	Debug     bool

	// Export flags
	Database string
	AnkiFile string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputDir: ".",
		Encoding:  "utf-8",
		Prefix:    "hunapertium",
	}
}
