package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/twreport/internal/report"
)

const payload = "temp.report.start: 20210711T000000Z\nverbose: on\n\n" +
	`[{"id":1,"start":"20210711T090000Z","end":"20210711T100000Z","tags":["work","proj"],"annotation":"morning block"},` +
	`{"id":2,"start":"20210711T103000Z","end":"20210711T110000Z","tags":["work"]}]`

func run(t *testing.T, cmd *cobra.Command, input string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir()) // no user config

	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("command failed: %v\noutput:\n%s", err, out.String())
	}
	return out.String()
}

func TestSummaryCommand(t *testing.T) {
	out := run(t, summaryCmd(), payload)

	if !strings.Contains(out, "work") || !strings.Contains(out, "1:30:00") {
		t.Fatalf("summary missing work total:\n%s", out)
	}
	if !strings.Contains(out, "Total") {
		t.Fatalf("summary missing footer:\n%s", out)
	}
}

func TestSummaryTagFilter(t *testing.T) {
	cmd := summaryCmd()
	if err := cmd.Flags().Set("tag", "proj"); err != nil {
		t.Fatal(err)
	}
	out := run(t, cmd, payload)

	if !strings.Contains(out, "proj") {
		t.Fatalf("filtered summary missing proj:\n%s", out)
	}
	// session 2 carries only "work" and is filtered out
	if !strings.Contains(out, "1:00:00") {
		t.Fatalf("filtered total should be one hour:\n%s", out)
	}
}

func TestSessionsCommand(t *testing.T) {
	out := run(t, sessionsCmd(), payload)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows:\n%s", out)
	}
	if !strings.Contains(lines[1], "morning block") {
		t.Fatalf("first row should carry the annotation:\n%s", out)
	}
}

func TestTagsCommand(t *testing.T) {
	out := run(t, tagsCmd(), payload)

	if !strings.Contains(out, "work") || !strings.Contains(out, "2") {
		t.Fatalf("tags output wrong:\n%s", out)
	}
}

func TestConfigCommand(t *testing.T) {
	out := run(t, configCmd(), payload)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 config lines:\n%s", out)
	}
	// sorted by key
	if !strings.HasPrefix(lines[0], "temp.report.start") || !strings.HasPrefix(lines[1], "verbose") {
		t.Fatalf("config keys not sorted:\n%s", out)
	}
}

func TestCheckCommand(t *testing.T) {
	out := run(t, checkCmd(), payload)

	if !strings.Contains(out, "Status: OK") {
		t.Fatalf("check should report OK:\n%s", out)
	}
	if !strings.Contains(out, "Config entries: 2") || !strings.Contains(out, "Sessions: 2") {
		t.Fatalf("check counts wrong:\n%s", out)
	}
	// both fixture sessions are closed
	if !strings.Contains(out, "Open: 0") || !strings.Contains(out, "Annotated: 1") {
		t.Fatalf("check session breakdown wrong:\n%s", out)
	}
	if !strings.Contains(out, "Tracked: 1:30:00") {
		t.Fatalf("check total wrong:\n%s", out)
	}
}

func TestCheckCommandMalformed(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := checkCmd()
	cmd.SetIn(strings.NewReader("no separator here"))
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	if !errors.Is(err, report.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
	if !strings.Contains(out.String(), "MALFORMED INPUT") {
		t.Fatalf("check should label the failure kind:\n%s", out.String())
	}
}

func TestMalformedInputFailsCleanly(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := summaryCmd()
	cmd.SetIn(strings.NewReader("no separator here"))
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	if !errors.Is(err, report.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}
