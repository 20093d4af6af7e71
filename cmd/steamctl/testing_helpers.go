package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/steamutil/vdfkit/internal/cachetest"
)

// setupSteamRoot builds a throwaway Steam installation with both
// caches: Portal 2 (620) owned and installed, Team Fortress 2 (440)
// owned but not installed, and a non-game tool record (1840).
func setupSteamRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	appcacheDir := filepath.Join(root, "appcache")
	steamapps := filepath.Join(root, "steamapps")
	for _, dir := range []string{appcacheDir, steamapps} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	appTree := func(id uint32, name, typ string) []byte {
		var w cachetest.TreeWriter
		w.Begin("appinfo").
			U32("appid", id).
			Begin("common").Str("name", name).Str("type", typ).End().
			End()
		return w.Record()
	}
	apps := cachetest.AppCache(0x27, 0x06,
		cachetest.App{ID: 620, State: 4, ChangeNumber: 10, Tree: appTree(620, "Portal 2", "Game")},
		cachetest.App{ID: 440, State: 4, ChangeNumber: 11, Tree: appTree(440, "Team Fortress 2", "game")},
		cachetest.App{ID: 1840, State: 4, ChangeNumber: 12, Tree: appTree(1840, "Source Filmmaker", "Tool")},
	)
	if err := os.WriteFile(filepath.Join(appcacheDir, "appinfo.vdf"), apps, 0o644); err != nil {
		t.Fatal(err)
	}

	pkgTree := func(pkgID, appID uint32) []byte {
		return cachetest.WrappedTree(strconv.FormatUint(uint64(pkgID), 10), func(w *cachetest.TreeWriter) {
			w.U32("packageid", pkgID)
			w.Begin("appids").U32("0", appID).End()
		})
	}
	pkgs := cachetest.PackageCache(0x28, 0x06,
		cachetest.Package{ID: 100, ChangeNumber: 20, Tree: pkgTree(100, 620)},
		cachetest.Package{ID: 101, ChangeNumber: 21, Tree: pkgTree(101, 440)},
		cachetest.Package{ID: 102, ChangeNumber: 22, Tree: pkgTree(102, 1840)},
	)
	if err := os.WriteFile(filepath.Join(appcacheDir, "packageinfo.vdf"), pkgs, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(steamapps, "appmanifest_620.acf"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	useSteamRoot(t, root)
	return root
}

// useSteamRoot points the global path flags at root and restores them
// when the test ends.
func useSteamRoot(t *testing.T, root string) {
	t.Helper()
	origRoot, origApp, origPkg := steamRoot, appinfoPath, packinfoPath
	origJSON, origQuiet, origVerbose := jsonOut, quiet, verbose
	steamRoot, appinfoPath, packinfoPath = root, "", ""
	t.Cleanup(func() {
		steamRoot, appinfoPath, packinfoPath = origRoot, origApp, origPkg
		jsonOut, quiet, verbose = origJSON, origQuiet, origVerbose
	})
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
