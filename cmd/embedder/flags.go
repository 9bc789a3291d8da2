package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	InputFile  string
	AssetsDir  string
	OutputFile string
	ConfigFile string
}

func ParseFlags() AppFlags {
	inputFile := flag.String("input", "", "Path to the cloned HTML document to process.")
	inputFileAlias := flag.String("i", "", "Alias for -input")

	assetsDir := flag.String("assets", "", "Directory of fetched asset files, keyed by their document-relative paths.")
	assetsDirAlias := flag.String("a", "", "Alias for -assets")

	outputFile := flag.String("output", "", "Path to write the mutated document. Writes to stdout if not set.")
	outputFileAlias := flag.String("o", "", "Alias for -output")

	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. Defaults apply if not set.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	flag.Parse()

	flags := AppFlags{}

	if *inputFile != "" {
		flags.InputFile = *inputFile
	} else if *inputFileAlias != "" {
		flags.InputFile = *inputFileAlias
	}

	if *assetsDir != "" {
		flags.AssetsDir = *assetsDir
	} else if *assetsDirAlias != "" {
		flags.AssetsDir = *assetsDirAlias
	}

	if *outputFile != "" {
		flags.OutputFile = *outputFile
	} else if *outputFileAlias != "" {
		flags.OutputFile = *outputFileAlias
	}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	if flags.InputFile == "" {
		fmt.Fprintln(os.Stderr, "[FATAL] -input argument is required")
		os.Exit(1)
	}

	return flags
}
