package main

import (
	"github.com/spf13/cobra"
)

var packagesMax int

func init() {
	cmd := newPackagesCmd()
	cmd.Flags().IntVarP(&packagesMax, "max", "m", 1000, "Maximum number of packages to print")
	rootCmd.AddCommand(cmd)
}

func newPackagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List package ids from the package cache",
		Long: `The packages command lists the id and change number of every record
in packageinfo.vdf.

Example:
  steamctl packages
  steamctl packages --json --max 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackages()
		},
	}
	return cmd
}

func runPackages() error {
	pkgs, err := loadPackages()
	if err != nil {
		return err
	}
	if packagesMax > 0 && len(pkgs) > packagesMax {
		pkgs = pkgs[:packagesMax]
	}

	if jsonOut {
		type pkgInfo struct {
			ID           uint32 `json:"id"`
			ChangeNumber uint32 `json:"change_number"`
		}
		out := make([]pkgInfo, 0, len(pkgs))
		for _, p := range pkgs {
			out = append(out, pkgInfo{ID: p.ID, ChangeNumber: p.ChangeNumber})
		}
		return printJSON(out)
	}
	for _, p := range pkgs {
		printInfo("%d\n", p.ID)
	}
	return nil
}
