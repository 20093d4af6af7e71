package games

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByTitle orders games for display. Titles are user-facing text,
// so ordering uses case-insensitive collation rather than byte order.
func SortByTitle(list []Game) {
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(list, func(i, j int) bool {
		return c.CompareString(list[i].Title, list[j].Title) < 0
	})
}

// FilterInstalled returns the games whose installed state matches
// installed.
func FilterInstalled(list []Game, installed bool) []Game {
	var out []Game
	for _, g := range list {
		if g.Installed == installed {
			out = append(out, g)
		}
	}
	return out
}
