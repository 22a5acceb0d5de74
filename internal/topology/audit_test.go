package topology

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauro3422/molverify/internal/chem"
)

func TestAuditCleanRootWithSingleBond(t *testing.T) {
	g := BuildGraph([]BondEvent{
		{ChildID: 5, ParentID: 0},
		{ChildID: 9, ParentID: 5},
		{ChildID: 12, ParentID: 5},
	})

	rep := Audit(g, chem.DefaultTable())

	assert.True(t, rep.Clean())
	assert.Equal(t, []int{5}, rep.RootChildren)
	require.Len(t, rep.ChildFanout, 1)
	assert.Equal(t, ChildSummary{ChildID: 5, Bonds: 2}, rep.ChildFanout[0])
	assert.Equal(t, []ChainTrace{{Child: 5, Grandchild: 9}, {Child: 5, Grandchild: 12}}, rep.Chains)
	assert.Equal(t, "H", rep.RootSymbol)
}

func TestAuditRootOverValence(t *testing.T) {
	// Hydrogen root with three bonds: exactly one violation naming the
	// observed count.
	g := BuildGraph([]BondEvent{
		{ChildID: 3, ParentID: 0},
		{ChildID: 4, ParentID: 0},
		{ChildID: 5, ParentID: 0},
	})

	rep := Audit(g, chem.DefaultTable())

	require.Len(t, rep.Violations, 1)
	assert.Contains(t, rep.Violations[0].Description, "3 bonds")
	assert.Contains(t, rep.Violations[0].Description, "max 1")
	assert.False(t, rep.Clean())
}

func TestAuditRootNeverBonds(t *testing.T) {
	// Bonds elsewhere in the population do not implicate the root.
	g := BuildGraph([]BondEvent{
		{ChildID: 8, ParentID: 7},
		{ChildID: 9, ParentID: 7},
	})

	rep := Audit(g, chem.DefaultTable())

	assert.True(t, rep.Clean())
	assert.Empty(t, rep.RootChildren)
	assert.Empty(t, rep.Chains)
}

func TestAuditEmptyGraph(t *testing.T) {
	rep := Audit(NewGraph(), chem.DefaultTable())
	assert.True(t, rep.Clean())
	assert.Empty(t, rep.RootChildren)
	assert.Zero(t, rep.Events)
}

func TestAuditWiderValenceTable(t *testing.T) {
	// A scenario table where the root element allows two bonds: two
	// children are legal, three are not.
	table := chem.Table{
		chem.RootAtomicNumber: {Symbol: "X", Valence: 2, VdWRadius: 1.0},
	}

	g := BuildGraph([]BondEvent{
		{ChildID: 1, ParentID: 0},
		{ChildID: 2, ParentID: 0},
	})
	assert.True(t, Audit(g, table).Clean())

	g.Record(BondEvent{ChildID: 3, ParentID: 0})
	rep := Audit(g, table)
	require.Len(t, rep.Violations, 1)
	assert.Contains(t, rep.Violations[0].Description, "3 bonds")
}

func TestAuditLogStreamsAndSkipsNoise(t *testing.T) {
	var log strings.Builder
	log.WriteString("[INIT] engine build 6784067\n")
	log.WriteString("[BOND] GLOBAL SUCCESS: 5 -> 0\n")
	log.WriteString("[PHYS] step 1 complete\n")
	log.WriteString("[BOND] GLOBAL SUCCESS: 9 -> 5\n")
	log.WriteString("garbage line ### \n")

	rep, err := AuditLog(strings.NewReader(log.String()), chem.DefaultTable())
	require.NoError(t, err)

	assert.Equal(t, 5, rep.LinesScanned)
	assert.Equal(t, 2, rep.Events)
	assert.Equal(t, []int{5}, rep.RootChildren)
	assert.Equal(t, []ChainTrace{{Child: 5, Grandchild: 9}}, rep.Chains)
	assert.True(t, rep.Clean())
}

func TestAuditLogLargeSession(t *testing.T) {
	// A long clean session: one chain off the root, everything else a
	// carbon backbone. Replay must stay linear and report clean.
	var log strings.Builder
	log.WriteString("[BOND] GLOBAL SUCCESS: 1 -> 0\n")
	for i := 2; i < 2000; i++ {
		fmt.Fprintf(&log, "[BOND] GLOBAL SUCCESS: %d -> %d\n", i, i-1)
	}

	rep, err := AuditLog(strings.NewReader(log.String()), chem.DefaultTable())
	require.NoError(t, err)

	assert.True(t, rep.Clean())
	assert.Equal(t, 1999, rep.Events)
	assert.Equal(t, []int{1}, rep.RootChildren)
	require.Len(t, rep.Chains, 1)
	assert.Equal(t, ChainTrace{Child: 1, Grandchild: 2}, rep.Chains[0])
}

func TestAuditFileMissing(t *testing.T) {
	_, err := AuditFile("testdata/does-not-exist.log", chem.DefaultTable())
	require.Error(t, err)
}
