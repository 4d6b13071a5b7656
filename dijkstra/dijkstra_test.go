// Package dijkstra_test contains unit tests for the pose-graph solver:
// validation, small reference graphs, tie-breaking, thresholds and
// structural properties over both node-store backends.
package dijkstra_test

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/posegraph/dijkstra"
	"github.com/katalvlaran/posegraph/nodestore"
	"github.com/katalvlaran/posegraph/pose"
	"github.com/katalvlaran/posegraph/posegraph"
)

// step returns a 2D pose whose cost is w.
func step(w float64) pose.Pose2D { return pose.Pose2D{X: w} }

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNew_NilGraph(t *testing.T) {
	var g *posegraph.Graph[pose.Pose2D, *nodestore.MapStore[pose.Pose2D]]
	_, err := dijkstra.New(g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestNew_UnknownSource(t *testing.T) {
	g := posegraph.NewMapBacked[pose.Pose2D]()
	require.NoError(t, g.InsertEdge(0, 1, step(1)))

	_, err := dijkstra.New(g, 42)
	assert.ErrorIs(t, err, dijkstra.ErrUnknownSource)

	empty := posegraph.NewDenseBacked[pose.Pose2D](0)
	_, err = dijkstra.New(empty, 0)
	assert.ErrorIs(t, err, dijkstra.ErrUnknownSource)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.Panics(t, func() { dijkstra.WithConcurrency(0) })
}

// ------------------------------------------------------------------------
// 2. Reference graphs
// ------------------------------------------------------------------------

// checkDetour builds 0→1 (1), 1→2 (1), 0→2 (5), 2→3 (1) and checks the solve from 0.
func checkDetour[S nodestore.Backend[pose.Pose2D, S]](t *testing.T, g *posegraph.Graph[pose.Pose2D, S]) {
	t.Helper()
	require.NoError(t, g.InsertEdge(0, 1, step(1)))
	require.NoError(t, g.InsertEdge(1, 2, step(1)))
	require.NoError(t, g.InsertEdge(0, 2, step(5)))
	require.NoError(t, g.InsertEdge(2, 3, step(1)))

	s, err := dijkstra.New(g, 0)
	require.NoError(t, err)

	d1, _ := s.Distance(1)
	d2, _ := s.Distance(2)
	assert.Equal(t, 1.0, d1)
	assert.Equal(t, 2.0, d2)
	assert.Equal(t, []dijkstra.NodeID{0, 1, 2}, s.PathTo(2))
	assert.Equal(t, []dijkstra.NodeID{0, 1, 2, 3}, s.PathTo(3))
}

func TestDetourBeatsDirectEdge(t *testing.T) {
	t.Run("map", func(t *testing.T) {
		checkDetour(t, posegraph.NewMapBacked[pose.Pose2D]())
	})
	t.Run("dense", func(t *testing.T) {
		checkDetour(t, posegraph.NewDenseBacked[pose.Pose2D](0))
	})
}

// checkSingleNode seeds node 0 directly in store and solves from it.
func checkSingleNode[S nodestore.Backend[pose.Pose3D, S]](t *testing.T, store S) {
	t.Helper()
	_, err := store.Upsert(0, pose.Pose3D{})
	require.NoError(t, err)
	g := posegraph.New[pose.Pose3D](store)

	s, err := dijkstra.New(g, 0)
	require.NoError(t, err)
	d, ok := s.Distance(0)
	assert.True(t, ok)
	assert.Equal(t, 0.0, d)
	assert.Len(t, s.Distances(), 1)
	assert.Empty(t, s.Predecessors())
	assert.Equal(t, []dijkstra.NodeID{0}, s.PathTo(0))
	_, ok = s.Distance(1)
	assert.False(t, ok)
}

func TestSingleNodeGraph(t *testing.T) {
	t.Run("map", func(t *testing.T) {
		checkSingleNode(t, nodestore.NewMapStore[pose.Pose3D]())
	})
	t.Run("dense", func(t *testing.T) {
		checkSingleNode(t, nodestore.NewDenseStore[pose.Pose3D](0))
	})
}

// checkChain inserts the unit chain 0→1→…→n and checks every distance.
func checkChain[S nodestore.Backend[pose.Pose3D, S]](t *testing.T, g *posegraph.Graph[pose.Pose3D, S], n int) {
	t.Helper()
	for i := range dijkstra.NodeID(n) {
		require.NoError(t, g.InsertEdge(i, i+1, pose.Pose3D{Z: 1}))
	}

	s, err := dijkstra.New(g, 0)
	require.NoError(t, err)
	for i := range dijkstra.NodeID(n + 1) {
		d, ok := s.Distance(i)
		require.True(t, ok)
		require.Equal(t, float64(i), d)
	}
	assert.Len(t, s.PathTo(dijkstra.NodeID(n)), n+1)
	assert.Equal(t, n+1, s.ReachedCount())

	var prev *posegraph.Edge[pose.Pose3D]
	for e := range g.Edges() {
		if prev != nil {
			require.True(t, prev.From < e.From || (prev.From == e.From && prev.To < e.To))
		}
		cp := e
		prev = &cp
	}
}

func TestChain1000(t *testing.T) {
	const n = 1000
	t.Run("map", func(t *testing.T) {
		checkChain(t, posegraph.NewMapBacked[pose.Pose3D](), n)
	})
	t.Run("dense", func(t *testing.T) {
		checkChain(t, posegraph.NewDenseBacked[pose.Pose3D](0), n)
	})
}

// ------------------------------------------------------------------------
// 3. Structural properties
// ------------------------------------------------------------------------

func TestDisconnectedNodeIsUnreached(t *testing.T) {
	g := posegraph.NewMapBacked[pose.Pose2D]()
	require.NoError(t, g.InsertEdge(0, 1, step(1)))
	require.NoError(t, g.InsertEdge(5, 6, step(1)))
	require.NoError(t, g.InsertEdge(2, 0, step(1)))

	s, err := dijkstra.New(g, 0)
	require.NoError(t, err)
	for _, id := range []dijkstra.NodeID{2, 5, 6} {
		d, ok := s.Distance(id)
		assert.True(t, ok, "node %d is in the graph", id)
		assert.True(t, math.IsInf(d, 1))
		assert.Equal(t, dijkstra.Unreached, d)
		assert.False(t, s.Reached(id))
		assert.Empty(t, s.PathTo(id))
		_, hasPrev := s.Predecessor(id)
		assert.False(t, hasPrev)
	}
	assert.False(t, s.ReachedSet().Contains(5))
	assert.True(t, s.ReachedSet().Contains(1))
}

func TestReached_IgnoresReassignedUnreached(t *testing.T) {
	saved := dijkstra.Unreached
	t.Cleanup(func() { dijkstra.Unreached = saved })
	dijkstra.Unreached = 0

	g := posegraph.NewMapBacked[pose.Pose2D]()
	require.NoError(t, g.InsertEdge(0, 1, step(1)))
	require.NoError(t, g.InsertEdge(2, 3, step(1)))

	s, err := dijkstra.New(g, 0)
	require.NoError(t, err)
	assert.True(t, s.Reached(0))
	assert.True(t, s.Reached(1))
	assert.False(t, s.Reached(3))
	d, _ := s.Distance(3)
	assert.True(t, math.IsInf(d, 1))
	assert.Equal(t, 2, s.ReachedCount())
}

func TestSelfLoopNeverImproves(t *testing.T) {
	g := posegraph.NewMapBacked[pose.Pose2D](posegraph.WithSelfLoops())
	require.NoError(t, g.InsertEdge(0, 1, step(2)))
	require.NoError(t, g.InsertEdge(1, 1, step(0)))
	require.NoError(t, g.InsertEdge(0, 0, step(0)))
	require.NoError(t, g.InsertEdge(1, 2, step(3)))

	s, err := dijkstra.New(g, 0)
	require.NoError(t, err)

	plain := posegraph.NewMapBacked[pose.Pose2D]()
	require.NoError(t, plain.InsertEdge(0, 1, step(2)))
	require.NoError(t, plain.InsertEdge(1, 2, step(3)))
	ref, err := dijkstra.New(plain, 0)
	require.NoError(t, err)

	assert.Equal(t, ref.Distances(), s.Distances())
	assert.Equal(t, ref.Predecessors(), s.Predecessors())
	_, hasPrev := s.Predecessor(0)
	assert.False(t, hasPrev, "source keeps no predecessor despite its self-loop")
}

func TestFirstRelaxWinsOnTies(t *testing.T) {
	// 0→1 (1), 0→2 (1), 1→3 (1), 2→3 (1): both reach 3 at distance 2.
	g := posegraph.NewMapBacked[pose.Pose2D]()
	require.NoError(t, g.InsertEdge(2, 3, step(1)))
	require.NoError(t, g.InsertEdge(0, 2, step(1)))
	require.NoError(t, g.InsertEdge(1, 3, step(1)))
	require.NoError(t, g.InsertEdge(0, 1, step(1)))

	s, err := dijkstra.New(g, 0)
	require.NoError(t, err)
	p, ok := s.Predecessor(3)
	require.True(t, ok)
	// Node 1 is pushed first (edge 0→1 precedes 0→2) and thus settled first.
	assert.Equal(t, dijkstra.NodeID(1), p)
}

func TestParallelEdges_CheapestWins(t *testing.T) {
	g := posegraph.NewMapBacked[pose.Pose2D]()
	require.NoError(t, g.InsertEdge(0, 1, step(4)))
	require.NoError(t, g.InsertEdge(0, 1, step(1.5)))

	s, err := dijkstra.New(g, 0)
	require.NoError(t, err)
	d, _ := s.Distance(1)
	assert.Equal(t, 1.5, d)
}

func TestDirectedEdgesOnly(t *testing.T) {
	g := posegraph.NewMapBacked[pose.Pose2D]()
	require.NoError(t, g.InsertEdge(1, 0, step(1)))

	s, err := dijkstra.New(g, 0)
	require.NoError(t, err)
	assert.False(t, s.Reached(1), "edges are never walked backwards")
}

func TestTriangleInequality_RandomGraph(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	g := posegraph.NewMapBacked[pose.Pose2D]()
	type wedge struct {
		u, v dijkstra.NodeID
		w    float64
	}
	var edges []wedge
	for range 400 {
		u := dijkstra.NodeID(rng.Intn(60))
		v := dijkstra.NodeID(rng.Intn(60))
		if u == v {
			continue
		}
		w := float64(rng.Intn(10))
		require.NoError(t, g.InsertEdge(u, v, step(w)))
		edges = append(edges, wedge{u, v, w})
	}

	s, err := dijkstra.New(g, edges[0].u)
	require.NoError(t, err)
	for _, e := range edges {
		du, _ := s.Distance(e.u)
		dv, _ := s.Distance(e.v)
		assert.LessOrEqual(t, dv, du+e.w, "edge %d→%d", e.u, e.v)
	}
	for _, a := range edges {
		for _, b := range edges {
			if a.v != b.u {
				continue
			}
			du, _ := s.Distance(a.u)
			dw, _ := s.Distance(b.v)
			assert.LessOrEqual(t, dw, du+a.w+b.w)
		}
	}

	// Every reported path runs from the source to its target.
	for id := range g.Nodes() {
		path := s.PathTo(id)
		if len(path) == 0 {
			continue
		}
		assert.Equal(t, edges[0].u, path[0])
		assert.Equal(t, id, path[len(path)-1])
	}
}

func TestIdempotentSolves(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := posegraph.NewDenseBacked[pose.Pose3DInf](0)
	for i := range dijkstra.NodeID(200) {
		to := dijkstra.NodeID(rng.Intn(200))
		if to == i {
			continue
		}
		p := pose.NewPose3DInf(pose.Pose3D{X: rng.Float64()}, pose.Identity3DInfo(2))
		require.NoError(t, g.InsertEdge(i, to, p))
		require.NoError(t, g.InsertEdge(i, i+1, pose.Pose3DInf{Mean: pose.Pose3D{Y: 1}}))
	}

	a, err := dijkstra.New(g, 0)
	require.NoError(t, err)
	b, err := dijkstra.New(g, 0)
	require.NoError(t, err)
	assert.Equal(t, a.Distances(), b.Distances())
	assert.Equal(t, a.Predecessors(), b.Predecessors())
	assert.Equal(t, a.Tree(), b.Tree())
}

// ------------------------------------------------------------------------
// 4. Weight functions and thresholds
// ------------------------------------------------------------------------

func TestNewWithWeight_CustomCost(t *testing.T) {
	g := posegraph.NewMapBacked[pose.Pose2D]()
	require.NoError(t, g.InsertEdge(0, 1, step(10)))
	require.NoError(t, g.InsertEdge(0, 2, step(1)))
	require.NoError(t, g.InsertEdge(2, 1, step(1)))

	hops := func(pose.Pose2D) float64 { return 1 }
	s, err := dijkstra.NewWithWeight(g, 0, hops)
	require.NoError(t, err)
	d, _ := s.Distance(1)
	assert.Equal(t, 1.0, d)
	assert.Equal(t, []dijkstra.NodeID{0, 1}, s.PathTo(1))
}

func TestMahalanobisWeight(t *testing.T) {
	g := posegraph.NewMapBacked[pose.Pose2DInf]()
	confident := pose.NewPose2DInf(pose.Pose2D{X: 1}, pose.Identity2DInfo(100))
	loose := pose.NewPose2DInf(pose.Pose2D{X: 1}, pose.Identity2DInfo(1))
	require.NoError(t, g.InsertEdge(0, 1, confident))
	require.NoError(t, g.InsertEdge(0, 2, loose))
	require.NoError(t, g.InsertEdge(2, 1, loose))

	s, err := dijkstra.New(g, 0)
	require.NoError(t, err)
	d, _ := s.Distance(1)
	assert.InDelta(t, 2.0, d, 1e-12)
}

func TestMaxDistance(t *testing.T) {
	g := posegraph.NewMapBacked[pose.Pose2D]()
	for i := range dijkstra.NodeID(3) {
		require.NoError(t, g.InsertEdge(i, i+1, step(1)))
	}

	s, err := dijkstra.New(g, 0, dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.True(t, s.Reached(1))
	assert.False(t, s.Reached(2))
	d, _ := s.Distance(3)
	assert.Equal(t, dijkstra.Unreached, d)
}

func TestInfEdgeThreshold(t *testing.T) {
	g := posegraph.NewMapBacked[pose.Pose2D]()
	require.NoError(t, g.InsertEdge(0, 2, step(10)))
	require.NoError(t, g.InsertEdge(0, 1, step(2)))
	require.NoError(t, g.InsertEdge(1, 2, step(4)))

	s, err := dijkstra.New(g, 0, dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	d, _ := s.Distance(2)
	assert.Equal(t, 6.0, d)

	g2 := posegraph.NewMapBacked[pose.Pose2D]()
	require.NoError(t, g2.InsertEdge(0, 1, step(5)))
	s, err = dijkstra.New(g2, 0, dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.False(t, s.Reached(1))
}

func TestTree(t *testing.T) {
	g := posegraph.NewMapBacked[pose.Pose2D]()
	require.NoError(t, g.InsertEdge(0, 2, step(1)))
	require.NoError(t, g.InsertEdge(0, 1, step(1)))
	require.NoError(t, g.InsertEdge(1, 3, step(1)))

	s, err := dijkstra.New(g, 0)
	require.NoError(t, err)
	assert.Equal(t, map[dijkstra.NodeID][]dijkstra.NodeID{
		0: {1, 2},
		1: {3},
	}, s.Tree())
	assert.Equal(t, dijkstra.NodeID(0), s.Source())
}

func TestResultCopiesAreIndependent(t *testing.T) {
	g := posegraph.NewMapBacked[pose.Pose2D]()
	require.NoError(t, g.InsertEdge(0, 1, step(1)))
	s, err := dijkstra.New(g, 0)
	require.NoError(t, err)

	dist := s.Distances()
	dist[1] = 100
	set := s.ReachedSet()
	set.Remove(1)

	d, _ := s.Distance(1)
	assert.Equal(t, 1.0, d)
	assert.True(t, s.ReachedSet().Contains(1))
}

// ------------------------------------------------------------------------
// 5. SolveAll
// ------------------------------------------------------------------------

func TestSolveAll_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := posegraph.NewMapBacked[pose.Pose2D]()
	for range 300 {
		u := dijkstra.NodeID(rng.Intn(50))
		v := dijkstra.NodeID(rng.Intn(50))
		if u != v {
			require.NoError(t, g.InsertEdge(u, v, step(float64(1+rng.Intn(5)))))
		}
	}
	var sources []dijkstra.NodeID
	for id := range g.Nodes() {
		sources = append(sources, id)
	}

	all, err := dijkstra.SolveAll(context.Background(), g, sources, nil, dijkstra.WithConcurrency(4))
	require.NoError(t, err)
	require.Len(t, all, len(sources))
	for _, src := range sources {
		seq, err := dijkstra.New(g, src)
		require.NoError(t, err)
		assert.Equal(t, seq.Distances(), all[src].Distances())
		assert.Equal(t, seq.Predecessors(), all[src].Predecessors())
	}
}

func TestSolveAll_UnknownSource(t *testing.T) {
	g := posegraph.NewMapBacked[pose.Pose2D]()
	require.NoError(t, g.InsertEdge(0, 1, step(1)))

	_, err := dijkstra.SolveAll(context.Background(), g, []dijkstra.NodeID{0, 9}, nil)
	assert.ErrorIs(t, err, dijkstra.ErrUnknownSource)
}

func TestSolveAll_Cancelled(t *testing.T) {
	g := posegraph.NewMapBacked[pose.Pose2D]()
	require.NoError(t, g.InsertEdge(0, 1, step(1)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dijkstra.SolveAll(ctx, g, []dijkstra.NodeID{0, 1}, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSolveAll_NilGraph(t *testing.T) {
	var g *posegraph.Graph[pose.Pose2D, *nodestore.DenseStore[pose.Pose2D]]
	_, err := dijkstra.SolveAll(context.Background(), g, []dijkstra.NodeID{0}, nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}
