package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/steamutil/vdfkit/vdf"
	"github.com/steamutil/vdfkit/vdf/printer"
)

var (
	dumpProp  string
	dumpDepth int
)

func init() {
	appCmd := newDumpAppCmd()
	pkgCmd := newDumpPkgCmd()
	for _, cmd := range []*cobra.Command{appCmd, pkgCmd} {
		cmd.Flags().StringVarP(&dumpProp, "prop", "p", "",
			"Print only the property at this comma-separated path")
		cmd.Flags().IntVarP(&dumpDepth, "depth", "d", 0,
			"Number of map levels to print (0 = unlimited)")
	}
	rootCmd.AddCommand(appCmd)
	rootCmd.AddCommand(pkgCmd)
}

func newDumpAppCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump-app <id>...",
		Short: "Dump the decoded metadata of one or more apps",
		Long: `The dump-app command prints the full property tree of the given app
ids, or a single property when --prop is set.

Example:
  steamctl dump-app 620
  steamctl dump-app 620 440 --depth 2
  steamctl dump-app 620 --prop appinfo,common,name --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDumpApp(args)
		},
	}
}

func newDumpPkgCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump-pkg <id>...",
		Short: "Dump the decoded metadata of one or more packages",
		Long: `The dump-pkg command prints the full property tree of the given
package ids, or a single property when --prop is set.

Example:
  steamctl dump-pkg 12345
  steamctl dump-pkg 12345 --prop appids`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDumpPkg(args)
		},
	}
}

func dumpOptions() printer.Options {
	opts := printer.DefaultOptions()
	opts.MaxDepth = dumpDepth
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return opts
}

func dumpTree(props vdf.Map) error {
	p := printer.New(os.Stdout, dumpOptions())
	if path := propPath(dumpProp); path != nil {
		return p.PrintPath(props, path...)
	}
	return p.PrintTree(props)
}

func parseIDs(args []string) ([]uint32, error) {
	ids := make([]uint32, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", arg, err)
		}
		ids = append(ids, uint32(id))
	}
	return ids, nil
}

func runDumpApp(args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	apps, err := loadApps()
	if err != nil {
		return err
	}
	for _, id := range ids {
		found := false
		for _, app := range apps {
			if appID, ok := app.Props.LookupUint32("appinfo", "appid"); !ok || appID != id {
				continue
			}
			found = true
			printInfo("app %d (state 0x%X, change %d)\n", id, app.State, app.ChangeNumber)
			if err := dumpTree(app.Props); err != nil {
				return err
			}
		}
		if !found {
			printInfo("app %d not found\n", id)
		}
	}
	return nil
}

func runDumpPkg(args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}
	pkgs, err := loadPackages()
	if err != nil {
		return err
	}
	for _, id := range ids {
		found := false
		for _, pkg := range pkgs {
			if pkg.ID != id {
				continue
			}
			found = true
			printInfo("package %d (change %d)\n", id, pkg.ChangeNumber)
			if err := dumpTree(pkg.Props); err != nil {
				return err
			}
		}
		if !found {
			printInfo("package %d not found\n", id)
		}
	}
	return nil
}
