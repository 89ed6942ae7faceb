package astrolabe

import (
	"log/slog"

	"github.com/mkleist/astrolabe/internal/catalog"
	"github.com/mkleist/astrolabe/internal/logging"
	"github.com/mkleist/astrolabe/internal/presentation/graphmd"
	"github.com/mkleist/astrolabe/pkg/transform"

	"github.com/mkleist/astrolabe/pkg/frames"
)

// Version is the current release of the module.
const Version = "0.1.0"

// System bundles a frame transform graph with its logging and observability
// wiring. The zero configuration gives the built-in frames and a silent
// logger.
type System struct {
	log   *slog.Logger
	graph *transform.Graph
}

type config struct {
	log      *slog.Logger
	hooks    transform.Hooks
	catalogs []string
}

// Option configures a System.
type Option func(*config)

// WithLogger sets the system logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithHooks attaches transform lifecycle hooks, e.g. Prometheus metrics.
func WithHooks(h transform.Hooks) Option {
	return func(c *config) {
		if h != nil {
			c.hooks = h
		}
	}
}

// WithCatalog loads a YAML frame catalog on top of the built-in graph.
// Catalogs apply in the order given.
func WithCatalog(path string) Option {
	return func(c *config) { c.catalogs = append(c.catalogs, path) }
}

// New builds a System with the built-in frames plus any configured catalogs.
func New(opts ...Option) (*System, error) {
	cfg := config{log: logging.NewNop(), hooks: transform.NopHooks()}
	for _, opt := range opts {
		opt(&cfg)
	}
	g := frames.NewDefaultGraph(
		transform.WithLogger(cfg.log),
		transform.WithHooks(cfg.hooks),
	)
	for _, path := range cfg.catalogs {
		f, err := catalog.Load(path)
		if err != nil {
			return nil, err
		}
		if err := f.Apply(g); err != nil {
			return nil, err
		}
	}
	return &System{log: cfg.log, graph: g}, nil
}

// Graph exposes the underlying transform graph for registration of custom
// frames and operators.
func (s *System) Graph() *transform.Graph { return s.graph }

// Frames returns the registered frame names, sorted.
func (s *System) Frames() []string { return s.graph.Frames() }

// Transform routes a motion between two frames by name.
func (s *System) Transform(m transform.Motion, src, dst string) (transform.Motion, error) {
	return s.graph.TransformByName(m, src, dst)
}

// Path returns the frame names a transform from src to dst would traverse.
func (s *System) Path(src, dst string) ([]string, error) {
	return s.graph.Path(src, dst)
}

// Mermaid renders the graph as a Mermaid flowchart, optionally highlighting
// a route.
func (s *System) Mermaid(route ...string) string {
	var overlay *graphmd.Overlay
	if len(route) > 0 {
		overlay = &graphmd.Overlay{Route: route}
	}
	return graphmd.GenerateMermaid(s.graph, overlay)
}
