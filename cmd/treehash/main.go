package main

import (
	"fmt"
	"os"
	"path/filepath"

	treehash "github.com/mattkeenan/treehash/pkg"
)

const version = "1.0.0"

func defineOptions() *ParsedOptions {
	opts := NewParsedOptions()
	opts.DefineOption("verbose", "v", OptionTypeBool, "", "Show individual entry hashes, not just the root hash")
	opts.DefineOption("threads", "t", OptionTypeInt, "", "Number of parallel hash workers (default: CPU count)")
	opts.DefineOption("hash", "H", OptionTypeString, "", "Hash algorithm: sha256, sha512, blake3 (default: sha256)")
	opts.DefineOption("config", "c", OptionTypeString, "", "Path to config file")
	opts.DefineOption("debug", "d", OptionTypeString, "", "Comma-separated debug flags (e.g. walk,hash)")
	opts.DefineOption("version", "", OptionTypeBool, "", "Show version information and exit")
	opts.DefineOption("help", "h", OptionTypeBool, "", "Show this help and exit")
	return opts
}

// defaultConfigPath returns the per-user config file location, or "" if the
// user config directory cannot be determined
func defaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "treehash", "config")
}

func run(opts *ParsedOptions) error {
	args := opts.GetArgs()
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one PATH argument, got %d", len(args))
	}
	rootPath := args[0]

	configPath := opts.GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath()
	}
	cfg, err := treehash.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// Precedence: command line, then config file, then built-in defaults
	verboseCfg := cfg.GetVerboseConfig()
	treehash.SetVerboseLevel(verboseCfg.Level)
	debugFlags := verboseCfg.Debug
	if opts.IsSet("debug") {
		debugFlags = opts.GetString("debug")
	}
	treehash.SetDebugFlags(debugFlags)

	algorithm := cfg.GetHashConfig().Default
	if opts.IsSet("hash") {
		algorithm = opts.GetString("hash")
	}

	perfCfg := cfg.GetPerformanceConfig()
	workers := perfCfg.HashWorkers
	if opts.IsSet("threads") {
		workers = opts.GetInt("threads")
		if workers <= 0 {
			return fmt.Errorf("thread count must be positive, got %d", workers)
		}
	}

	walker, err := treehash.NewWalker(algorithm, workers)
	if err != nil {
		return err
	}

	if perfCfg.HashBuffer != "" {
		bufferSize, err := treehash.ParseHumanSize(perfCfg.HashBuffer)
		if err != nil {
			return fmt.Errorf("invalid hash_buffer in config: %w", err)
		}
		walker.SetHashBuffer(bufferSize)
	}

	if opts.GetBool("verbose") {
		walker.SetTrace(treehash.NewWriterTrace(os.Stdout))
	}

	result, err := walker.HashPath(rootPath)
	if err != nil {
		return err
	}

	fmt.Println(result.Hash)
	return nil
}

func main() {
	opts := defineOptions()
	if err := opts.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "treehash: %v\n", err)
		os.Exit(1)
	}

	if opts.GetBool("help") {
		opts.ShowUsage("treehash")
		return
	}

	if opts.GetBool("version") {
		fmt.Printf("treehash %s\n", version)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "treehash: %v\n", err)
		os.Exit(1)
	}
}
