package cli

import "fbcheck/internal/config"

// Flags holds command-line flags
type Flags struct {
	EnvFile      string
	ConfigFile   string
	Filter       string
	Table        bool
	Progress     bool
	OpenFailures bool
	Verbose      bool
	Quiet        bool
	LogJSON      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		EnvFile:      f.EnvFile,
		ConfigFile:   f.ConfigFile,
		Filter:       f.Filter,
		Table:        f.Table,
		Progress:     f.Progress,
		OpenFailures: f.OpenFailures,
		Verbose:      f.Verbose,
		Quiet:        f.Quiet,
		LogJSON:      f.LogJSON,
	}
}
