package dataset

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Kind names one of the five source datasets.
type Kind string

const (
	// Baseline is the 2.5% discount-rate table with flux columns.
	Baseline Kind = "baseline"
	// DR3 is the 3% discount-rate scenario.
	DR3 Kind = "dr3"
	// DR5 is the 5% discount-rate scenario.
	DR5 Kind = "dr5"
	// Endo is the endogenous discount-rate scenario.
	Endo Kind = "endo"
	// Bilateral holds sink-to-target flows per hectare.
	Bilateral Kind = "bilat"
)

// Kinds lists every dataset the dashboard needs, in load order.
var Kinds = []Kind{Baseline, DR3, DR5, Endo, Bilateral}

// Sources maps each dataset to a local path or URL.
type Sources map[Kind]string

// Schema lists the columns each dataset must expose.
type Schema map[Kind][]string

// Context is the immutable set of loaded tables shared by every panel.
type Context struct {
	ID       string
	LoadedAt time.Time
	tables   map[Kind]*Table
}

// NewContext assembles a Context from already-parsed tables. Every kind in
// Kinds must be present.
func NewContext(tables map[Kind]*Table) (*Context, error) {
	for _, k := range Kinds {
		if tables[k] == nil {
			return nil, fmt.Errorf("missing %s dataset", k)
		}
	}
	c := &Context{ID: uuid.NewString(), LoadedAt: time.Now(), tables: make(map[Kind]*Table, len(tables))}
	for k, t := range tables {
		c.tables[k] = t
	}
	return c, nil
}

// Table returns the loaded table for k, or nil.
func (c *Context) Table(k Kind) *Table { return c.tables[k] }

// Rows returns the rows of k, or nil when unknown. The rows are shared with
// the Context and must be treated as read-only; the slice is clipped so
// appending to it never writes into the table.
func (c *Context) Rows(k Kind) []Row {
	t := c.tables[k]
	if t == nil {
		return nil
	}
	return slices.Clip(t.Rows)
}

// Validate checks every table against schema and returns the first
// SchemaError found, in Kinds order.
func (c *Context) Validate(schema Schema) error {
	for _, k := range Kinds {
		cols, ok := schema[k]
		if !ok {
			continue
		}
		if missing := c.tables[k].MissingColumns(cols...); len(missing) > 0 {
			sort.Strings(missing)
			return &SchemaError{Kind: k, Missing: missing}
		}
	}
	return nil
}

// LoadOptions controls LoadAll.
type LoadOptions struct {
	Client  *http.Client
	Timeout time.Duration
	Read    ReadOptions
	Schema  Schema
	Logger  *zap.Logger
}

// LoadAll fetches every dataset concurrently and waits for all of them.
// The first failure cancels the remaining fetches and no Context is
// returned.
func LoadAll(ctx context.Context, src Sources, opt LoadOptions) (*Context, error) {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	client := opt.Client
	if client == nil {
		client = &http.Client{Timeout: opt.Timeout}
	}
	if opt.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opt.Timeout)
		defer cancel()
	}
	for _, k := range Kinds {
		if src[k] == "" {
			return nil, &FetchError{Kind: k, Err: fmt.Errorf("no location configured")}
		}
	}

	start := time.Now()
	results := make([]*Table, len(Kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, k := range Kinds {
		i, k := i, k
		loc := src[k]
		g.Go(func() error {
			t, err := loadOne(gctx, client, loc, opt.Read)
			if err != nil {
				return &FetchError{Kind: k, Location: loc, Err: err}
			}
			t.Name = string(k)
			results[i] = t
			log.Debug("dataset loaded", zap.String("dataset", string(k)), zap.String("location", loc), zap.Int("rows", t.Len()))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tables := make(map[Kind]*Table, len(Kinds))
	for i, k := range Kinds {
		tables[k] = results[i]
	}
	c, err := NewContext(tables)
	if err != nil {
		return nil, err
	}
	if opt.Schema != nil {
		if err := c.Validate(opt.Schema); err != nil {
			return nil, err
		}
	}
	log.Info("datasets ready", zap.String("load_id", c.ID), zap.Duration("elapsed", time.Since(start)))
	return c, nil
}

func loadOne(ctx context.Context, client *http.Client, loc string, ro ReadOptions) (*Table, error) {
	rc, err := open(ctx, client, loc)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	name := baseName(loc)
	if IsWorkbook(name) {
		return ReadXLSX(rc, name, ro)
	}
	return ReadCSV(rc, name, ro)
}
