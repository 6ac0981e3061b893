package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/samvad-hq/ninja-client/internal/logger"
	"github.com/samvad-hq/ninja-client/pkg/apiclient"
	"github.com/samvad-hq/ninja-client/pkg/ninja"
	"github.com/samvad-hq/ninja-client/pkg/publishers"
)

const (
	KindCurrency = "currency"
	KindItem     = "item"
)

// Overview names one economy overview to snapshot.
type Overview struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

func (o Overview) String() string { return o.Kind + "/" + o.Name }

// AllOverviews lists every currency and item overview.
func AllOverviews() []Overview {
	out := make([]Overview, 0, len(ninja.CurrencyOverviewTypes)+len(ninja.ItemOverviewTypes))
	for _, t := range ninja.CurrencyOverviewTypes {
		out = append(out, Overview{Kind: KindCurrency, Name: string(t)})
	}
	for _, t := range ninja.ItemOverviewTypes {
		out = append(out, Overview{Kind: KindItem, Name: string(t)})
	}
	return out
}

// ParseOverview resolves a bare overview name ("Currency", "UniqueJewel") to its kind.
func ParseOverview(name string) (Overview, error) {
	name = strings.TrimSpace(name)
	if t, err := ninja.ParseCurrencyOverviewType(name); err == nil {
		return Overview{Kind: KindCurrency, Name: string(t)}, nil
	}
	t, err := ninja.ParseItemOverviewType(name)
	if err != nil {
		return Overview{}, fmt.Errorf("unknown overview %q", name)
	}
	return Overview{Kind: KindItem, Name: string(t)}, nil
}

// eventSink is satisfied by *publishers.Fanout.
type eventSink interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}

// SnapshotSummary reports the outcome of one snapshot run.
type SnapshotSummary struct {
	Requested int      `json:"requested"`
	Fetched   int      `json:"fetched"`
	Published int      `json:"published"`
	Failed    []string `json:"failed,omitempty"`
	ElapsedMS int64    `json:"elapsed_ms"`
}

// Snapshotter fetches economy overviews concurrently and publishes each payload.
type Snapshotter struct {
	economy     *ninja.EconomyAPI
	sink        eventSink
	concurrency int
	log         logger.Logger
}

// NewSnapshotter builds a snapshotter. A nil sink only fetches.
func NewSnapshotter(economy *ninja.EconomyAPI, sink eventSink, concurrency int, log logger.Logger) *Snapshotter {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Snapshotter{
		economy:     economy,
		sink:        sink,
		concurrency: concurrency,
		log:         logger.Ensure(log),
	}
}

// Run fetches every overview. Individual failures do not stop the run; they are
// joined into the returned error.
func (s *Snapshotter) Run(ctx context.Context, overviews []Overview) (SnapshotSummary, error) {
	start := time.Now()
	summary := SnapshotSummary{Requested: len(overviews)}
	league := s.economy.Client().Config().League

	var (
		mu   sync.Mutex
		errs []error
	)
	fail := func(o Overview, err error) {
		mu.Lock()
		defer mu.Unlock()
		summary.Failed = append(summary.Failed, o.String())
		errs = append(errs, fmt.Errorf("%s: %w", o, err))
	}

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for _, o := range overviews {
		g.Go(func() error {
			payload, err := s.fetch(ctx, o)
			if err != nil {
				s.log.WarnObj("snapshot fetch failed", "snapshot_error", map[string]any{
					"overview": o.String(),
					"error":    err.Error(),
				})
				fail(o, err)
				return nil
			}

			mu.Lock()
			summary.Fetched++
			mu.Unlock()

			if s.sink == nil {
				return nil
			}
			n, err := s.sink.Publish(ctx, publishers.NewEvent(o.Kind, league, o.Name, payload))
			mu.Lock()
			summary.Published += n
			mu.Unlock()
			if err != nil {
				fail(o, fmt.Errorf("publish: %w", err))
			}
			return nil
		})
	}
	_ = g.Wait()

	summary.ElapsedMS = time.Since(start).Milliseconds()
	s.log.InfoObj("snapshot completed", "snapshot_summary", summary)
	return summary, errors.Join(errs...)
}

func (s *Snapshotter) fetch(ctx context.Context, o Overview) (json.RawMessage, error) {
	switch o.Kind {
	case KindCurrency:
		res, err := s.economy.CurrencyOverview(ctx, ninja.CurrencyOverviewType(o.Name))
		return marshalResult(res, err)
	case KindItem:
		res, err := s.economy.ItemOverview(ctx, ninja.ItemOverviewType(o.Name))
		return marshalResult(res, err)
	default:
		return nil, fmt.Errorf("unknown overview kind %q", o.Kind)
	}
}

// marshalResult handles both raise and return modes of the core client.
func marshalResult[T any](res apiclient.Result[T], err error) (json.RawMessage, error) {
	if err != nil {
		return nil, err
	}
	data, err := res.Unwrap()
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return raw, nil
}

// LoadFanout builds publishers from the registry file. An empty path yields a nil fanout.
func LoadFanout(ctx context.Context, path string, log logger.Logger) (*publishers.Fanout, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	log = logger.Ensure(log)

	reg, err := publishers.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}
	enabled := reg.Enabled()
	if len(enabled) == 0 {
		return nil, fmt.Errorf("no publishers enabled in %s", path)
	}

	pubs, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}
	log.InfoObj("publishers registry loaded", "publishers", enabled)
	return publishers.NewFanout(pubs), nil
}
