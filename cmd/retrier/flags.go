package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	ConfigFile  string
	ReplayFile  string
	Algorithm   string
	RetryOn     string
	SuccessOn   string
	MaxAttempts int
	DryRun      bool
	SkipDelay   bool
	Command     []string

	// Boolean flags override the config file in both directions, so the
	// zero value alone cannot signal "flag was given on the command line".
	DryRunSet    bool
	SkipDelaySet bool
}

func ParseFlags() AppFlags {
	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	replayFile := flag.String("replay", "", "Path to a YAML/JSON event file; computes the delay trace for the recorded history instead of running a command.")
	replayFileAlias := flag.String("r", "", "Alias for -replay")

	algorithm := flag.String("algorithm", "", "Backoff algorithm override: constant, exponential, fibonacci, lild, limd, mild or mimd.")
	algorithmAlias := flag.String("a", "", "Alias for -algorithm")

	retryOn := flag.String("retry-on", "", "Comma-separated exit codes that trigger a retry; all other codes succeed.")
	successOn := flag.String("success-on", "", "Comma-separated exit codes treated as success; all other codes retry. Ignored when -retry-on is set.")
	maxAttempts := flag.Int("max-attempts", -1, "Give up after this many failed attempts (0 = unlimited). Overrides the config file.")
	dryRun := flag.Bool("dry-run", false, "Never execute the command; show the retry cadence instead. A dry run only ends by giving up.")
	skipDelay := flag.Bool("skip-delay", false, "Do not sleep between attempts; advance a virtual clock instead.")

	flag.Parse()

	flags := AppFlags{
		RetryOn:     *retryOn,
		SuccessOn:   *successOn,
		MaxAttempts: *maxAttempts,
		DryRun:      *dryRun,
		SkipDelay:   *skipDelay,
		Command:     flag.Args(),
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dry-run":
			flags.DryRunSet = true
		case "skip-delay":
			flags.SkipDelaySet = true
		}
	})

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	if *replayFile != "" {
		flags.ReplayFile = *replayFile
	} else if *replayFileAlias != "" {
		flags.ReplayFile = *replayFileAlias
	}

	if *algorithm != "" {
		flags.Algorithm = *algorithm
	} else if *algorithmAlias != "" {
		flags.Algorithm = *algorithmAlias
	}

	if flags.ReplayFile == "" && len(flags.Command) == 0 {
		fmt.Fprintln(os.Stderr, "[FATAL] a command to run is required (or use -replay with an event file)")
		os.Exit(2)
	}

	return flags
}
