package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/steamutil/vdfkit/appcache"
)

var (
	// Global flags
	steamRoot     string
	appinfoPath   string
	packinfoPath  string
	verbose       bool
	quiet         bool
	jsonOut       bool
)

var rootCmd = &cobra.Command{
	Use:   "steamctl",
	Short: "Inspect the local Steam library",
	Long: `steamctl decodes the Steam client's binary metadata caches
(appinfo.vdf and packageinfo.vdf) and lists, filters, and dumps the
apps and packages they describe, cross-referenced against the local
installation.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&steamRoot, "steam-root", defaultSteamRoot(),
		"Steam installation directory")
	rootCmd.PersistentFlags().StringVar(&appinfoPath, "appinfo", "",
		"Path to appinfo.vdf (default <steam-root>/appcache/appinfo.vdf)")
	rootCmd.PersistentFlags().StringVar(&packinfoPath, "packageinfo", "",
		"Path to packageinfo.vdf (default <steam-root>/appcache/packageinfo.vdf)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func defaultSteamRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".steam", "steam")
}

func resolvedAppinfo() string {
	if appinfoPath != "" {
		return appinfoPath
	}
	return filepath.Join(steamRoot, "appcache", "appinfo.vdf")
}

func resolvedPackageinfo() string {
	if packinfoPath != "" {
		return packinfoPath
	}
	return filepath.Join(steamRoot, "appcache", "packageinfo.vdf")
}

func loadApps() ([]appcache.AppRecord, error) {
	path := resolvedAppinfo()
	printVerbose("Loading app cache: %s\n", path)
	apps, err := appcache.LoadApps(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load app cache: %w", err)
	}
	return apps, nil
}

func loadPackages() ([]appcache.PackageRecord, error) {
	path := resolvedPackageinfo()
	printVerbose("Loading package cache: %s\n", path)
	pkgs, err := appcache.LoadPackages(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load package cache: %w", err)
	}
	return pkgs, nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
