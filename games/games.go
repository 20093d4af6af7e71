// Package games assembles a user-facing game list by cross-referencing
// decoded app and package records against the local Steam installation:
// ownership comes from package records, titles and types from app
// records, and installed state from appmanifest files in the library
// folders.
package games

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/steamutil/vdfkit/appcache"
)

// Game is one entry of the assembled list.
type Game struct {
	ID        uint32 `json:"id"`
	Title     string `json:"title"`
	Logo      string `json:"logo,omitempty"`
	Installed bool   `json:"installed"`
}

// Build assembles the game list. steamRoot is the client installation
// directory (the one containing steamapps/ and appcache/).
//
// An app makes the list when some package grants it (its id appears as
// appids/0 in a package tree), it has a common/name, and its
// common/type is a game. Logo is the library capsule image path when
// the file exists; Installed reflects the presence of an
// appmanifest_<id>.acf in any library folder.
func Build(apps []appcache.AppRecord, pkgs []appcache.PackageRecord, steamRoot string) ([]Game, error) {
	libs, err := Libraries(steamRoot)
	if err != nil {
		return nil, fmt.Errorf("games: %w", err)
	}

	owned := make(map[uint32]bool)
	for _, pkg := range pkgs {
		if id, ok := pkg.Props.LookupUint32("appids", "0"); ok {
			owned[id] = true
		}
	}

	var list []Game
	for _, app := range apps {
		id, ok := app.Props.LookupUint32("appinfo", "appid")
		if !ok || !owned[id] {
			continue
		}
		name, ok := app.Props.LookupString("appinfo", "common", "name")
		if !ok {
			continue
		}
		typ, ok := app.Props.LookupString("appinfo", "common", "type")
		if !ok || (typ != "Game" && typ != "game") {
			continue
		}
		g := Game{ID: id, Title: name}
		logo := filepath.Join(steamRoot, "appcache", "librarycache", fmt.Sprintf("%d_library_600x900.jpg", id))
		if fileExists(logo) {
			g.Logo = logo
		}
		manifest := fmt.Sprintf("appmanifest_%d.acf", id)
		for _, lib := range libs {
			if fileExists(filepath.Join(lib, manifest)) {
				g.Installed = true
				break
			}
		}
		list = append(list, g)
	}
	return list, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
