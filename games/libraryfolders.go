package games

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Libraries returns every steamapps directory of the installation: the
// one under steamRoot plus each additional library folder listed in
// steamapps/libraryfolders.vdf. A missing libraryfolders.vdf is not an
// error; fresh installations have none.
func Libraries(steamRoot string) ([]string, error) {
	libs := []string{filepath.Join(steamRoot, "steamapps")}

	f, err := os.Open(filepath.Join(steamRoot, "steamapps", "libraryfolders.vdf"))
	if err != nil {
		if os.IsNotExist(err) {
			return libs, nil
		}
		return nil, err
	}
	defer f.Close()

	extra, err := parseLibraryFolders(f)
	if err != nil {
		return nil, err
	}
	for _, dir := range extra {
		libs = append(libs, filepath.Join(dir, "steamapps"))
	}
	return libs, nil
}

// parseLibraryFolders extracts library folder paths from the
// line-oriented text VDF: entries look like
//
//	"1"		"D:\\Games\\Steam"
//
// Only lines whose quoted key is numeric name a folder; everything
// else ("libraryfolders", "timeupdated", braces) is skipped.
func parseLibraryFolders(r io.Reader) ([]string, error) {
	var dirs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		fields := splitQuoted(line)
		if len(fields) < 2 {
			continue
		}
		if _, err := strconv.ParseUint(fields[0], 10, 64); err != nil {
			continue
		}
		dirs = append(dirs, strings.ReplaceAll(fields[1], `\\`, `\`))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return dirs, nil
}

// splitQuoted splits a line on tabs, drops empty parts, and strips
// surrounding quotes.
func splitQuoted(line string) []string {
	var out []string
	for _, part := range strings.Split(line, "\t") {
		part = strings.ReplaceAll(part, `"`, "")
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
