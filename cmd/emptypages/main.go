// emptypages is a command-line tool for detecting pages without transcribed text in PAGE XML collections.
//
// This tool scans a directory of transcription collections as exported by Transkribus,
// checks every page description for transcribed text content, and writes a tabular
// report of the pages that have none. The report lists the collection, the source
// image filename, and the XML filename for each empty page.
//
// Expected directory structure:
//
//	base_path/Collection_Name/page/*.xml
//
// Usage:
//
//	emptypages [options] [base_path]
//
// If base_path is omitted the tool prompts for it interactively.
//
// Options:
//
//	-o, -output string   Output file path (default: empty_pages.xlsx next to the executable).
//	                     The extension selects the format: .xlsx, .csv or .pdf
//	-config string       Path to an optional YAML defaults file
//	-q, -quiet           Suppress progress output
//
// Configuration:
//
// The optional YAML file provides defaults that flags override:
//
//	output: "/reports/empty_pages.xlsx"
//	quiet: false
//	page_dir: "page"
//	page_ext: ".xml"
//
// Examples:
//
//	emptypages /data/transkribus/export
//	emptypages -o audit.csv -q /data/transkribus/export
//	emptypages -config scan.yml
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gardar/pagescan/pkg/emptypages"
	"github.com/gardar/pagescan/pkg/report"
)

const defaultOutputName = "empty_pages.xlsx"

type yamlConfig struct {
	Output  string `yaml:"output"`
	Quiet   bool   `yaml:"quiet"`
	PageDir string `yaml:"page_dir"`
	PageExt string `yaml:"page_ext"`
}

// loadConfig reads an optional YAML defaults file
func loadConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, err
	}
	return &yc, nil
}

// defaultOutputPath places the report next to the executable, falling
// back to the working directory when the executable path is unknown.
func defaultOutputPath() string {
	exe, err := os.Executable()
	if err != nil {
		return defaultOutputName
	}
	return filepath.Join(filepath.Dir(exe), defaultOutputName)
}

// promptBasePath asks for the collections directory interactively.
func promptBasePath() (string, error) {
	fmt.Print("Enter path to collections directory: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("no path provided")
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", fmt.Errorf("no path provided")
	}
	return path, nil
}

func main() {
	outputPath := flag.String("output", "", "Output file path (.xlsx, .csv or .pdf)")
	flag.StringVar(outputPath, "o", "", "Shorthand for -output")
	quiet := flag.Bool("quiet", false, "Suppress progress output")
	flag.BoolVar(quiet, "q", false, "Shorthand for -quiet")
	configPath := flag.String("config", "", "Path to an optional YAML defaults file")
	flag.Parse()

	// Track provided flags so they override the config file.
	providedFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		providedFlags[f.Name] = true
	})

	config := emptypages.DefaultConfig()
	output := defaultOutputPath()

	if *configPath != "" {
		yc, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot load config %s: %v\n", *configPath, err)
			os.Exit(1)
		}
		if yc.Output != "" {
			output = yc.Output
		}
		if yc.PageDir != "" {
			config.PageDirName = yc.PageDir
		}
		if yc.PageExt != "" {
			config.PageExt = yc.PageExt
		}
		config.Quiet = yc.Quiet
	}

	if providedFlags["o"] || providedFlags["output"] {
		output = *outputPath
	}
	if providedFlags["q"] || providedFlags["quiet"] {
		config.Quiet = *quiet
	}
	if config.Quiet {
		config.LogWarnings = false
	}

	basePath := flag.Arg(0)
	if basePath == "" {
		var err error
		basePath, err = promptBasePath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	pages, err := emptypages.Run(basePath, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(pages) == 0 {
		fmt.Println("\nNo empty pages found. All pages contain transcribed text.")
		return
	}

	fmt.Println("\nGenerating output file...")
	written, err := report.Write(pages, output, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Report generated: %s\n", written)
}
