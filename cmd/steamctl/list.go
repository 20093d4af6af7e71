package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/steamutil/vdfkit/games"
)

var (
	listInstalled string
	listMax       int
)

func init() {
	cmd := newListCmd()
	cmd.Flags().StringVar(&listInstalled, "installed", "",
		"Only show installed (true) or not installed (false) games")
	cmd.Flags().IntVarP(&listMax, "max", "m", 1000, "Maximum number of games to print")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games in the local library",
		Long: `The list command assembles the game list from the app and package
caches, sorted by title. Ownership comes from package records and
installed state from appmanifest files in the library folders.

Example:
  steamctl list
  steamctl list --installed true --json
  steamctl list --max 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
	return cmd
}

func runList() error {
	apps, err := loadApps()
	if err != nil {
		return err
	}
	pkgs, err := loadPackages()
	if err != nil {
		return err
	}

	list, err := games.Build(apps, pkgs, steamRoot)
	if err != nil {
		return err
	}
	games.SortByTitle(list)

	if listInstalled != "" {
		installed, err := strconv.ParseBool(listInstalled)
		if err != nil {
			return err
		}
		list = games.FilterInstalled(list, installed)
	}
	if listMax > 0 && len(list) > listMax {
		list = list[:listMax]
	}

	if jsonOut {
		return printJSON(list)
	}
	for _, g := range list {
		installed := " "
		if g.Installed {
			installed = "*"
		}
		printInfo("%s %7d  %s\n", installed, g.ID, g.Title)
	}
	return nil
}
