package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestPrintHelp(t *testing.T) {
	rootCmd := &cobra.Command{
		Use:     "shelf",
		Short:   "Test root",
		Version: "0.1.0",
	}
	// Added out of order on purpose.
	rootCmd.AddCommand(
		&cobra.Command{Use: "version", Short: "Show version information"},
		&cobra.Command{Use: "list", Short: "List products"},
		&cobra.Command{Use: "tui", Short: "Open the interactive catalog"},
		&cobra.Command{Use: "delete <id>", Short: "Delete a product"},
		&cobra.Command{Use: "hidden-extra", Short: "Not in the help order"},
	)

	var buf bytes.Buffer
	outputWriter = &buf
	defer func() { outputWriter = nil }()

	PrintHelp(rootCmd)
	output := buf.String()

	for _, want := range []string{"shelf v0.1.0", description, "USAGE:", "COMMANDS:", "OPTIONS:"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output should contain %q, got:\n%s", want, output)
		}
	}
	for _, name := range []string{"tui", "list", "delete <id>", "version"} {
		if !strings.Contains(output, name) {
			t.Errorf("help output should contain command %q", name)
		}
	}
	if strings.Contains(output, "hidden-extra") {
		t.Errorf("help output should only list known commands, got:\n%s", output)
	}

	tui := strings.Index(output, "    tui")
	list := strings.Index(output, "    list")
	del := strings.Index(output, "    delete")
	ver := strings.Index(output, "    version")
	if !(tui < list && list < del && del < ver) {
		t.Errorf("commands should follow the help order, got:\n%s", output)
	}
}

func TestPrintHelpDefaultsToCommandOutput(t *testing.T) {
	rootCmd := &cobra.Command{Use: "shelf", Version: "1.2.3"}
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	PrintHelp(rootCmd)

	if !strings.HasPrefix(buf.String(), "shelf v1.2.3") {
		t.Errorf("expected help on the command output, got %q", buf.String())
	}
}

func TestRootCmdSilencesCobraErrors(t *testing.T) {
	if !RootCmd.SilenceErrors || !RootCmd.SilenceUsage {
		t.Fatal("root command should leave error reporting to the caller")
	}
	if RootCmd.Version == "" {
		t.Fatal("root command should carry a version")
	}
}
