package main

import (
	"testing"

	"github.com/orosp/iproute2/internal/cliopts"
	"github.com/orosp/iproute2/internal/config"
	"github.com/orosp/iproute2/internal/dispatch"
	"github.com/orosp/iproute2/internal/output"
)

func TestExitForMapsEveryKind(t *testing.T) {
	cases := map[dispatch.Kind]int{
		dispatch.UsageError:           1,
		dispatch.MissingArgument:      1,
		dispatch.InvalidArgument:      1,
		dispatch.TransportUnavailable: 1,
		dispatch.KernelError:          1,
		dispatch.DecodeError:          1,
		dispatch.AllocationFailure:    1,
	}
	for kind, want := range cases {
		if got := exitFor(kind); got != want {
			t.Fatalf("kind %v: got exit %d, want %d", kind, got, want)
		}
	}
}

func TestNewSinkPrefersJSONWhenEitherFlagOrPreferenceSet(t *testing.T) {
	jsonOpts := cliopts.Options{JSON: true}
	if _, ok := newSink(jsonOpts, config.Preferences{}).(*output.JSONSink); !ok {
		t.Fatalf("expected JSON sink when -json flag is set")
	}

	jsonPrefs := config.Preferences{JSON: true}
	if _, ok := newSink(cliopts.Options{}, jsonPrefs).(*output.JSONSink); !ok {
		t.Fatalf("expected JSON sink when preference file sets json")
	}

	if _, ok := newSink(cliopts.Options{}, config.Preferences{}).(*output.TextSink); !ok {
		t.Fatalf("expected text sink by default")
	}
}
