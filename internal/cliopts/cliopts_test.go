package cliopts

import (
	"bytes"
	"testing"
)

func TestParseSeparatesFlagsFromObjectTokens(t *testing.T) {
	opts, err := Parse([]string{"-j", "-p", "device", "show", "id", "0"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !opts.JSON || !opts.Pretty {
		t.Fatalf("expected json+pretty set: %+v", opts)
	}
	want := []string{"device", "show", "id", "0"}
	if len(opts.Args) != len(want) {
		t.Fatalf("unexpected remaining args: %v", opts.Args)
	}
	for i := range want {
		if opts.Args[i] != want[i] {
			t.Fatalf("unexpected remaining args: %v", opts.Args)
		}
	}
}

func TestParseLongFlagAliases(t *testing.T) {
	opts, err := Parse([]string{"--Version"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !opts.Version {
		t.Fatalf("expected version flag set")
	}
}

func TestParseUnknownFlagFails(t *testing.T) {
	var buf bytes.Buffer
	if _, err := Parse([]string{"-bogus"}, &buf); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestParseNoFlagsLeavesArgsUntouched(t *testing.T) {
	opts, err := Parse([]string{"monitor"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.JSON || opts.Pretty || opts.Version {
		t.Fatalf("expected no flags set: %+v", opts)
	}
	if len(opts.Args) != 1 || opts.Args[0] != "monitor" {
		t.Fatalf("unexpected args: %v", opts.Args)
	}
}
