package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func testEngines(t *testing.T) *engines {
	t.Helper()
	eng, err := newEngines("UTC", "/emergency", nil)
	if err != nil {
		t.Fatalf("newEngines: %v", err)
	}
	return eng
}

func TestRunChatRoutesAfterTwoTurns(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("my pipe has burst\nI'm in Leeds\nthis line is never read\n")

	if err := runChat(testEngines(t), in, &out, true); err != nil {
		t.Fatalf("runChat: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "-> /emergency/plumber/leeds") {
		t.Errorf("missing navigation target:\n%s", got)
	}
	if strings.Contains(got, "never read") {
		t.Error("chat should stop once routed")
	}
	if !strings.Contains(got, "[need_location step=LOCATION_CHECK trade=plumber city=]") {
		t.Errorf("missing verbose state line:\n%s", got)
	}
}

func TestRunChatStopsOnEmptyLine(t *testing.T) {
	var out bytes.Buffer
	if err := runChat(testEngines(t), strings.NewReader("\ngas\n"), &out, false); err != nil {
		t.Fatalf("runChat: %v", err)
	}
	if strings.Contains(out.String(), "GAS SAFETY") {
		t.Error("input after an empty line should be ignored")
	}
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"search", []string{"search", "boiler", "pressure", "dropping"}, "Common questions:"},
		{"search miss", []string{"search", "xyzzy"}, "No advice found."},
		{"assess", []string{"assess", "--trade", "plumber", "--problem", "burst-pipe", "--urgency", "emergency"}, "Priority:  10/10"},
		{"assess unknown", []string{"assess", "--trade", "plumber", "--problem", "nope"}, "general estimate"},
		{"trades", []string{"trades", "--timezone", "UTC"}, "burst-pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			chdirForTest(t, t.TempDir())

			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}

// chdirForTest mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdirForTest(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
