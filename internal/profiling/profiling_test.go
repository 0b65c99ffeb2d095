package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackCountsCalls(t *testing.T) {
	Reset()
	for i := 0; i < 3; i++ {
		Track("a")()
	}
	Track("b")()

	snap := Snapshot()
	if snap["a"].Calls != 3 || snap["b"].Calls != 1 {
		t.Fatalf("calls = %d/%d, want 3/1", snap["a"].Calls, snap["b"].Calls)
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Error("ResetFrame left entries behind")
	}
	if Cumulative()["a"].Calls != 3 {
		t.Error("ResetFrame cleared the run totals")
	}

	Reset()
	if len(Cumulative()) != 0 {
		t.Error("Reset left run totals behind")
	}
}

func TestFormat(t *testing.T) {
	stats := map[string]Stat{
		"slow":   {Total: 4200 * time.Microsecond, Calls: 2},
		"fast":   {Total: 100 * time.Microsecond, Calls: 7},
		"medium": {Total: 2 * time.Millisecond, Calls: 1},
	}
	got := Format(stats, 2)
	if got != "slow:4.2ms(2), medium:2.0ms(1)" {
		t.Errorf("Format = %q", got)
	}
	if all := Format(stats, 10); strings.Count(all, ",") != 2 {
		t.Errorf("Format with large n = %q", all)
	}
	if Format(nil, 3) != "" {
		t.Error("empty stats should format to an empty string")
	}
}
