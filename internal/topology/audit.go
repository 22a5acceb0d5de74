package topology

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mauro3422/molverify/internal/chem"
)

// Violation is one detected breach of the engine's structural invariants.
type Violation struct {
	Description string `json:"description"`
}

// ChildSummary describes one direct child of the root and how many bonds
// that child holds in turn.
type ChildSummary struct {
	ChildID int `json:"child_id"`
	Bonds   int `json:"bonds"`
}

// ChainTrace is a depth-2 chain rooted at the root particle, reported as
// diagnostic context (e.g. confirming an H-C-H shaped assembly). Chains
// carry no pass/fail meaning on their own.
type ChainTrace struct {
	Child      int `json:"child"`
	Grandchild int `json:"grandchild"`
}

// Report is the structured outcome of a topology audit. Rendering is the
// caller's concern; nothing in this package prints.
type Report struct {
	Source       string         `json:"source,omitempty"`
	LinesScanned int            `json:"lines_scanned"`
	Events       int            `json:"events"`
	RootSymbol   string         `json:"root_symbol"`
	RootChildren []int          `json:"root_children"`
	ChildFanout  []ChildSummary `json:"child_fanout,omitempty"`
	Chains       []ChainTrace   `json:"chains,omitempty"`
	Violations   []Violation    `json:"violations"`
}

// Clean reports whether the audit found no violations.
func (r *Report) Clean() bool {
	return len(r.Violations) == 0
}

// Audit inspects a reconstructed bond graph against the element table.
//
// Only the root particle's element is known by construction, so the one
// hard check is the root's fan-out against its valence. Non-root atom
// types are not observable from the bond log, so their subtrees are
// reported descriptively (child fan-out, depth-2 chains) without a
// verdict. This scope limit is deliberate: inventing a type-inference
// step here would assert invariants the log cannot support.
func Audit(g *Graph, table chem.Table) *Report {
	rep := &Report{
		RootSymbol: table.Symbol(chem.RootAtomicNumber),
		Events:     g.Events(),
	}

	rootValence, ok := table.Valence(chem.RootAtomicNumber)
	if !ok {
		rep.Violations = append(rep.Violations, Violation{
			Description: fmt.Sprintf("element table has no entry for root element %d", chem.RootAtomicNumber),
		})
		return rep
	}

	children := g.Children(chem.RootParticleID)
	rep.RootChildren = append([]int(nil), children...)
	if len(children) > rootValence {
		rep.Violations = append(rep.Violations, Violation{
			Description: fmt.Sprintf("root particle %s (id %d) has %d bonds (max %d)",
				rep.RootSymbol, chem.RootParticleID, len(children), rootValence),
		})
	}

	for _, child := range children {
		grandchildren := g.Children(child)
		if len(grandchildren) == 0 {
			continue
		}
		rep.ChildFanout = append(rep.ChildFanout, ChildSummary{ChildID: child, Bonds: len(grandchildren)})
		for _, gc := range grandchildren {
			rep.Chains = append(rep.Chains, ChainTrace{Child: child, Grandchild: gc})
		}
	}

	return rep
}

// AuditLog streams a session log, reconstructs the bond graph, and audits
// it. Lines that are not bond-success lines are skipped; they are the bulk
// of a normal log. Only a read failure on the source is an error.
func AuditLog(r io.Reader, table chem.Table) (*Report, error) {
	g := NewGraph()
	lines := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines++
		if ev, ok := ParseBondEvent(scanner.Text()); ok {
			g.Record(ev)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}

	rep := Audit(g, table)
	rep.LinesScanned = lines
	return rep, nil
}

// AuditFile audits the session log at path. A missing or unreadable file
// is fatal to the audit and returned as an error.
func AuditFile(path string, table chem.Table) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	defer f.Close()

	rep, err := AuditLog(f, table)
	if err != nil {
		return nil, err
	}
	rep.Source = path
	return rep, nil
}
