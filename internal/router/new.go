package router

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"emergency-triage/internal/knowledge"
	"emergency-triage/internal/model"
)

// KeywordRouter classifies turns by ordered substring rules.
// It holds no mutable state and is safe for concurrent use.
type KeywordRouter struct {
	tables      Tables
	cities      []city
	routePrefix string
	kb          Retriever
	newID       func() string
	now         func() time.Time
}

type city struct {
	name  string
	lower string
}

// Option customises a KeywordRouter.
type Option func(*KeywordRouter)

// WithIDFunc overrides how message IDs are generated.
func WithIDFunc(f func() string) Option {
	return func(r *KeywordRouter) { r.newID = f }
}

// WithNow overrides the message timestamp source.
func WithNow(f func() time.Time) Option {
	return func(r *KeywordRouter) { r.now = f }
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter. Keyword tables are lowercased and copied so
// later changes to cfg cannot leak in.
func New(cfg Config, kb Retriever, opts ...Option) *KeywordRouter {
	r := &KeywordRouter{
		tables:      copyTables(cfg.Tables),
		routePrefix: strings.TrimSuffix(cfg.RoutePrefix, "/"),
		kb:          kb,
		newID:       uuid.NewString,
		now:         time.Now,
	}
	for _, c := range cfg.Cities {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		r.cities = append(r.cities, city{name: c, lower: strings.ToLower(c)})
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewDefault wires the built-in tables and gazetteer to kb.
func NewDefault(kb Retriever) *KeywordRouter {
	return New(Config{
		Tables:      DefaultTables(),
		Cities:      DefaultCities,
		RoutePrefix: DefaultRoutePrefix,
	}, kb)
}

func copyTables(t Tables) Tables {
	out := Tables{
		Danger:         lowerAll(t.Danger),
		Gas:            lowerAll(t.Gas),
		GasSuppressors: lowerAll(t.GasSuppressors),
		Trades:         make(map[model.Trade][]string, len(t.Trades)),
		Priority:       append([]model.Trade(nil), t.Priority...),
		Knowledge:      make(map[model.Trade]knowledge.Category, len(t.Knowledge)),
	}
	for _, rule := range t.Rules {
		groups := make([][]string, len(rule.Groups))
		for i, g := range rule.Groups {
			groups[i] = lowerAll(g)
		}
		out.Rules = append(out.Rules, Rule{Name: rule.Name, Trade: rule.Trade, Groups: groups})
	}
	for k, v := range t.Trades {
		out.Trades[k] = lowerAll(v)
	}
	for k, v := range t.Knowledge {
		out.Knowledge[k] = v
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
