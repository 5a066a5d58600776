// Package roster builds assignment records for an engagement, orders them
// by priority and fills them from the tier cache.
//
// Records are sorted ascending with assignment.Compare and served from the
// end of that order: the highest tier goes first, and within a tier the
// record that sorts last goes first.
package roster

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync/atomic"

	"github.com/aurceive/loadout_roster/internal/assignment"
	"github.com/aurceive/loadout_roster/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Seed          uint64
	Workers       int
	Weighted      bool
	GenerateEmpty bool
	Logger        *zap.Logger
}

type Session struct {
	source  assignment.Source
	opts    Options
	logger  *zap.Logger
	records []*assignment.Record
}

type Stats struct {
	Records int
	// Filled counts records that got at least one slot.
	Filled  int
	Slots   int
	Skipped int
}

func NewSession(source assignment.Source, opts Options) *Session {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{source: source, opts: opts, logger: logger}
}

// Build creates Count records per unit and re-sorts the whole session.
func (s *Session) Build(units []*domain.Unit) {
	for _, u := range units {
		n := u.Count
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			s.records = append(s.records, assignment.New(u))
		}
	}
	slices.SortStableFunc(s.records, assignment.Compare)
	s.logger.Debug("roster built", zap.Int("units", len(units)), zap.Int("records", len(s.records)))
}

// Add registers a single character and keeps the session sorted.
func (s *Session) Add(ch domain.Character) *assignment.Record {
	r := assignment.New(ch)
	pos, _ := slices.BinarySearchFunc(s.records, r, assignment.Compare)
	// place after existing equal records
	for pos < len(s.records) && assignment.Compare(s.records[pos], r) == 0 {
		pos++
	}
	s.records = slices.Insert(s.records, pos, r)
	return r
}

// Records returns the records in ascending comparator order.
func (s *Session) Records() []*assignment.Record {
	return slices.Clone(s.records)
}

// Order returns the records in serving order.
func (s *Session) Order() []*assignment.Record {
	out := slices.Clone(s.records)
	slices.Reverse(out)
	return out
}

// Fill fills every unassigned record in serving order and marks it assigned.
// Each position gets its own rand source derived from Seed, so the outcome
// does not depend on how workers are scheduled.
func (s *Session) Fill(ctx context.Context) (Stats, error) {
	order := s.Order()
	var filled, slots, skipped atomic.Int64

	fillOne := func(pos int, r *assignment.Record) {
		if r.IsAssigned() {
			skipped.Add(1)
			return
		}
		f := &assignment.Filler{
			Source:        s.source,
			Rand:          rand.New(rand.NewPCG(s.opts.Seed, uint64(pos))),
			Logger:        s.logger,
			Weighted:      s.opts.Weighted,
			GenerateEmpty: s.opts.GenerateEmpty,
		}
		if n := f.Fill(r); n > 0 {
			filled.Add(1)
			slots.Add(int64(n))
		}
		r.SetAssigned(true)
	}

	var err error
	if s.opts.Workers == 1 {
		for pos, r := range order {
			if err = ctx.Err(); err != nil {
				break
			}
			fillOne(pos, r)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.opts.Workers)
		for pos, r := range order {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				fillOne(pos, r)
				return nil
			})
		}
		err = g.Wait()
		if err == nil {
			err = ctx.Err()
		}
	}

	st := Stats{
		Records: len(order),
		Filled:  int(filled.Load()),
		Slots:   int(slots.Load()),
		Skipped: int(skipped.Load()),
	}
	s.logger.Info("roster filled",
		zap.Int("records", st.Records),
		zap.Int("filled", st.Filled),
		zap.Int("slots", st.Slots),
		zap.Int("skipped", st.Skipped),
		zap.Int("workers", s.opts.Workers),
	)
	return st, err
}

// Unassigned lists records whose assignment has not been finalized, in serving order.
func (s *Session) Unassigned() []*assignment.Record {
	var out []*assignment.Record
	for _, r := range s.Order() {
		if !r.IsAssigned() {
			out = append(out, r)
		}
	}
	return out
}
