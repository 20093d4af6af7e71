package main

import (
	"strings"
	"testing"
)

func TestListCommand(t *testing.T) {
	setupSteamRoot(t)

	tests := []struct {
		name           string
		installed      string
		json           bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:           "all games sorted by title",
			wantContain:    []string{"Portal 2", "Team Fortress 2"},
			wantNotContain: []string{"Source Filmmaker"},
		},
		{
			name:           "installed only",
			installed:      "true",
			wantContain:    []string{"Portal 2"},
			wantNotContain: []string{"Team Fortress 2"},
		},
		{
			name:           "not installed only",
			installed:      "false",
			wantContain:    []string{"Team Fortress 2"},
			wantNotContain: []string{"Portal 2"},
		},
		{
			name:        "json output",
			json:        true,
			wantContain: []string{`"title": "Portal 2"`, `"installed": true`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listInstalled = tt.installed
			listMax = 1000
			jsonOut = tt.json
			defer func() { listInstalled = ""; jsonOut = false }()

			out, err := captureOutput(t, runList)
			if err != nil {
				t.Fatalf("runList: %v", err)
			}
			if tt.json {
				assertJSON(t, out)
			}
			assertContains(t, out, tt.wantContain)
			assertNotContains(t, out, tt.wantNotContain)
		})
	}
}

func TestListTitleOrder(t *testing.T) {
	setupSteamRoot(t)
	listInstalled = ""
	listMax = 1000

	out, err := captureOutput(t, runList)
	if err != nil {
		t.Fatalf("runList: %v", err)
	}
	// "Portal 2" collates before "Team Fortress 2".
	assertContains(t, out, []string{"Portal 2"})
	portal := strings.Index(out, "Portal 2")
	tf2 := strings.Index(out, "Team Fortress 2")
	if portal < 0 || tf2 < 0 || portal > tf2 {
		t.Fatalf("titles out of order:\n%s", out)
	}
}

func TestListMax(t *testing.T) {
	setupSteamRoot(t)
	listInstalled = ""
	listMax = 1
	defer func() { listMax = 1000 }()

	out, err := captureOutput(t, runList)
	if err != nil {
		t.Fatalf("runList: %v", err)
	}
	assertContains(t, out, []string{"Portal 2"})
	assertNotContains(t, out, []string{"Team Fortress 2"})
}
