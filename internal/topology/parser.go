// Package topology reconstructs the engine's bond graph from its session
// logs and audits it for structurally impossible valence configurations.
//
// The engine emits one log line per successful bond formation. This package
// parses those lines, folds them into a parent/child graph, and checks the
// one structural invariant decidable from the log alone: the root particle's
// fan-out against its known valence.
package topology

import (
	"regexp"
	"strconv"
)

// BondEvent is one successful bond formation recorded by the engine:
// child was enlisted under parent.
type BondEvent struct {
	ChildID  int
	ParentID int
}

// bondLine matches the engine's bond-success log line. The first integer is
// the child particle id, the second the parent it bonded to.
var bondLine = regexp.MustCompile(`\[BOND\] GLOBAL SUCCESS: (\d+) -> (\d+)`)

// ParseBondEvent extracts a bond event from a single log line.
// ok is false for lines that are not bond-success lines; that is the normal
// case for most of a session log, not an error. Parsing is best-effort and
// never fails on malformed input.
func ParseBondEvent(line string) (ev BondEvent, ok bool) {
	m := bondLine.FindStringSubmatch(line)
	if m == nil {
		return BondEvent{}, false
	}
	// The pattern only admits digit runs; Atoi can still fail on overflow.
	child, err := strconv.Atoi(m[1])
	if err != nil {
		return BondEvent{}, false
	}
	parent, err := strconv.Atoi(m[2])
	if err != nil {
		return BondEvent{}, false
	}
	return BondEvent{ChildID: child, ParentID: parent}, true
}
