package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/steamutil/vdfkit/vdf/printer"
)

var (
	rawMax  int
	rawProp string
)

func init() {
	cmd := newRawCmd()
	cmd.Flags().IntVarP(&rawMax, "max", "m", 1000, "Maximum number of records to print")
	cmd.Flags().StringVarP(&rawProp, "prop", "p", "",
		"Also print the property at this comma-separated path")
	rootCmd.AddCommand(cmd)
}

func newRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw",
		Short: "List every app record in the app cache",
		Long: `The raw command prints one line per appinfo.vdf record: id, type and
name, without any ownership or installation filtering.

Example:
  steamctl raw
  steamctl raw --prop appinfo,common,oslist --max 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRaw()
		},
	}
	return cmd
}

func propPath(flag string) []string {
	if flag == "" {
		return nil
	}
	return strings.Split(flag, ",")
}

func runRaw() error {
	apps, err := loadApps()
	if err != nil {
		return err
	}
	if rawMax > 0 && len(apps) > rawMax {
		apps = apps[:rawMax]
	}

	path := propPath(rawProp)
	for _, app := range apps {
		id, _ := app.Props.LookupUint32("appinfo", "appid")
		typ, ok := app.Props.LookupString("appinfo", "common", "type")
		if !ok {
			typ = "none"
		}
		name, ok := app.Props.LookupString("appinfo", "common", "name")
		if !ok {
			name = "none"
		}
		extra := "-"
		if path != nil {
			v, found := app.Props.Lookup(path...)
			extra = printer.FormatValue(v, found)
		}
		printInfo("%d %s %s %s\n", id, typ, name, extra)
	}
	return nil
}
