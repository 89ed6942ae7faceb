package transform

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/mkleist/astrolabe/pkg/representation"
)

// Frame is a reference frame. Implementations may carry parameters that
// operators read at transform time.
type Frame interface {
	Name() string
}

// Motion is a position with an optional velocity, both expressed in some
// frame. Velocity components carry per-time units.
type Motion struct {
	Position representation.Representation
	Velocity *representation.CartesianOffset
}

// Operator maps a motion from a source frame into a destination frame.
type Operator interface {
	// Kind is a short label for the operator family, used in listings.
	Kind() string
	// Apply maps m from src to dst.
	Apply(m Motion, src, dst Frame) (Motion, error)
}

// Func adapts a plain function into an Operator.
type Func func(m Motion, src, dst Frame) (Motion, error)

func (f Func) Kind() string { return "func" }

func (f Func) Apply(m Motion, src, dst Frame) (Motion, error) { return f(m, src, dst) }

// Edge describes one registered transform.
type Edge struct {
	Src, Dst string
	Kind     string
}

// Graph is a concurrency-safe directed graph of frames and transform
// operators. Edges are directed: registering src to dst says nothing about
// dst to src.
type Graph struct {
	log   *slog.Logger
	hooks Hooks

	mu     sync.RWMutex
	frames map[string]Frame
	ops    map[[2]string]Operator
	ids    map[string]int64
	names  map[int64]string
	nextID int64
	top    *simple.DirectedGraph
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets the graph's logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// WithHooks sets the graph's event hooks.
func WithHooks(h Hooks) Option {
	return func(g *Graph) {
		if h != nil {
			g.hooks = h
		}
	}
}

// New returns an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{
		log:    slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		hooks:  NopHooks(),
		frames: make(map[string]Frame),
		ops:    make(map[[2]string]Operator),
		ids:    make(map[string]int64),
		names:  make(map[int64]string),
		top:    simple.NewDirectedGraph(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// node returns the topology id for a frame name, creating it if needed.
// Callers hold the write lock.
func (g *Graph) node(name string) int64 {
	if id, ok := g.ids[name]; ok {
		return id
	}
	id := g.nextID
	g.nextID++
	g.ids[name] = id
	g.names[id] = name
	g.top.AddNode(simple.Node(id))
	return id
}

// RegisterFrame adds or replaces a frame without attaching any edge.
func (g *Graph) RegisterFrame(f Frame) {
	g.mu.Lock()
	g.frames[f.Name()] = f
	g.node(f.Name())
	g.mu.Unlock()
}

// Register attaches op to the directed edge src -> dst, replacing any
// operator already registered there. Both frames become canonical instances
// for path routing.
func (g *Graph) Register(src, dst Frame, op Operator) error {
	if src.Name() == dst.Name() {
		return fmt.Errorf("cannot register %q onto itself", src.Name())
	}
	g.mu.Lock()
	g.frames[src.Name()] = src
	g.frames[dst.Name()] = dst
	sid, did := g.node(src.Name()), g.node(dst.Name())
	key := [2]string{src.Name(), dst.Name()}
	_, replaced := g.ops[key]
	g.ops[key] = op
	if !replaced {
		g.top.SetEdge(g.top.NewEdge(simple.Node(sid), simple.Node(did)))
	}
	g.mu.Unlock()

	g.log.Debug("transform registered",
		"src", src.Name(), "dst", dst.Name(), "kind", op.Kind(), "replaced", replaced)
	g.hooks.EdgeRegistered(src.Name(), dst.Name(), op.Kind())
	return nil
}

// Deregister removes the edge src -> dst, reporting whether it existed.
func (g *Graph) Deregister(src, dst string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := [2]string{src, dst}
	if _, ok := g.ops[key]; !ok {
		return false
	}
	delete(g.ops, key)
	g.top.RemoveEdge(g.ids[src], g.ids[dst])
	return true
}

// Frame returns the canonical instance registered under name.
func (g *Graph) Frame(name string) (Frame, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	f, ok := g.frames[name]
	return f, ok
}

// Frames returns all registered frame names, sorted.
func (g *Graph) Frames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.frames))
	for name := range g.frames {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Edges returns all registered edges, sorted by source then destination.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.ops))
	for key, op := range g.ops {
		out = append(out, Edge{Src: key[0], Dst: key[1], Kind: op.Kind()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Src != out[j].Src {
			return out[i].Src < out[j].Src
		}
		return out[i].Dst < out[j].Dst
	})
	return out
}

// Path returns the frame names along the cheapest route from src to dst,
// inclusive. Every edge costs one, so the cheapest route is the fewest hops.
func (g *Graph) Path(src, dst string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.pathLocked(src, dst)
}

func (g *Graph) pathLocked(src, dst string) ([]string, error) {
	sid, ok := g.ids[src]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrame, src)
	}
	did, ok := g.ids[dst]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrame, dst)
	}
	if src == dst {
		return []string{src}, nil
	}
	shortest := path.DijkstraFrom(g.top.Node(sid), g.top)
	nodes, w := shortest.To(did)
	if len(nodes) == 0 || math.IsInf(w, 1) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, src, dst)
	}
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = g.names[n.ID()]
	}
	return out, nil
}

// Transform routes m from src to dst, composing the operators along the
// cheapest path. The given src and dst instances are used at the endpoints;
// intermediate hops use the canonical instances captured at registration.
// Transforming a frame onto itself returns m unchanged.
func (g *Graph) Transform(m Motion, src, dst Frame) (Motion, error) {
	if m.Position == nil {
		return Motion{}, ErrNoPosition
	}
	if src.Name() == dst.Name() {
		return m, nil
	}

	g.mu.RLock()
	route, err := g.pathLocked(src.Name(), dst.Name())
	if err != nil {
		g.mu.RUnlock()
		return Motion{}, err
	}
	hops := make([]Operator, len(route)-1)
	stops := make([]Frame, len(route))
	for i, name := range route {
		stops[i] = g.frames[name]
	}
	for i := 0; i < len(route)-1; i++ {
		hops[i] = g.ops[[2]string{route[i], route[i+1]}]
	}
	g.mu.RUnlock()

	stops[0] = src
	stops[len(stops)-1] = dst
	for i, op := range hops {
		m, err = op.Apply(m, stops[i], stops[i+1])
		if err != nil {
			return Motion{}, fmt.Errorf("transform %s -> %s: %w", stops[i].Name(), stops[i+1].Name(), err)
		}
	}

	g.log.Debug("transform applied",
		"src", src.Name(), "dst", dst.Name(), "hops", len(hops))
	g.hooks.TransformApplied(src.Name(), dst.Name(), len(hops))
	return m, nil
}

// TransformByName is Transform using the canonical frame instances.
func (g *Graph) TransformByName(m Motion, src, dst string) (Motion, error) {
	sf, ok := g.Frame(src)
	if !ok {
		return Motion{}, fmt.Errorf("%w: %q", ErrUnknownFrame, src)
	}
	df, ok := g.Frame(dst)
	if !ok {
		return Motion{}, fmt.Errorf("%w: %q", ErrUnknownFrame, dst)
	}
	return g.Transform(m, sf, df)
}
