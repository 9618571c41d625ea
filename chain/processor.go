// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/ava-labs/cpamm/codec"
	"github.com/ava-labs/cpamm/emap"
	"github.com/ava-labs/cpamm/ledger"
	"github.com/ava-labs/cpamm/lockmap"
	"github.com/ava-labs/cpamm/state"
	"github.com/ava-labs/cpamm/storage"
	"github.com/ava-labs/cpamm/tstate"
)

// Result is returned for every committed transaction.
type Result struct {
	ID     ids.ID      `json:"txId"`
	Output codec.Typed `json:"output"`
}

// Processor is the transactional boundary around actions. Every call locks
// the keys it declares (in sorted order, exclusive for writes), loads them
// into a [tstate.TStateView] and writes the view's changes to the database
// in one batch only if the action succeeds.
type Processor struct {
	log     logging.Logger
	tracer  trace.Tracer
	metrics *chainMetrics

	chainID        ids.ID
	validityWindow int64

	db    state.Database
	locks *lockmap.Lockmap
	seen  *emap.EMap[*Transaction]
}

func NewProcessor(
	log logging.Logger,
	tracer trace.Tracer,
	db state.Database,
	chainID ids.ID,
	validityWindow int64,
) (*Processor, *prometheus.Registry, error) {
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}
	return &Processor{
		log:            log,
		tracer:         tracer,
		metrics:        metrics,
		chainID:        chainID,
		validityWindow: validityWindow,
		db:             db,
		locks:          lockmap.New(1024),
		seen:           emap.NewEMap[*Transaction](),
	}, registry, nil
}

// ChainID is the id every transaction must be bound to.
func (p *Processor) ChainID() ids.ID {
	return p.chainID
}

// Execute runs [tx] at [timestamp] (unix milliseconds). Nothing is written
// unless the action succeeds.
func (p *Processor) Execute(ctx context.Context, tx *Transaction, timestamp int64) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "Processor.Execute")
	defer span.End()

	span.SetAttributes(
		attribute.Stringer("tx", tx.ID()),
		attribute.Int("action", int(tx.Action.GetTypeID())),
	)

	if err := p.verify(ctx, tx, timestamp); err != nil {
		p.metrics.txsRejected.Inc()
		p.log.Debug("rejected transaction",
			zap.Stringer("txID", tx.ID()),
			zap.Error(err),
		)
		return nil, err
	}

	var output codec.Typed
	err := p.run(ctx, tx.StateKeys(), true, func(view *tstate.TStateView) error {
		// Checked under the locks so two copies of one transaction cannot
		// both pass.
		if p.seen.Has(tx.ID()) {
			return ErrDuplicateTx
		}
		start := time.Now()
		out, err := tx.Action.Execute(ctx, ledger.NewStateLedger(view), view, timestamp, tx.Actor())
		p.metrics.execute.Observe(float64(time.Since(start)))
		if err != nil {
			return err
		}
		output = out
		return nil
	}, func() {
		p.seen.Add([]*Transaction{tx})
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateTx) {
			p.metrics.txsRejected.Inc()
		} else {
			p.metrics.txsFailed.Inc()
		}
		p.log.Debug("transaction failed",
			zap.Stringer("txID", tx.ID()),
			zap.Stringer("actor", tx.Actor()),
			zap.Uint8("action", tx.Action.GetTypeID()),
			zap.Error(err),
		)
		return nil, err
	}
	p.metrics.txsAccepted.Inc()
	p.log.Debug("accepted transaction",
		zap.Stringer("txID", tx.ID()),
		zap.Stringer("pool", tx.Action.PoolAddress()),
		zap.Uint8("action", tx.Action.GetTypeID()),
	)
	return &Result{ID: tx.ID(), Output: output}, nil
}

func (p *Processor) verify(ctx context.Context, tx *Transaction, timestamp int64) error {
	// Ids stay tracked for one validity window past their expiry.
	p.seen.SetMin(timestamp - p.validityWindow)

	if err := tx.Base.Execute(p.chainID, p.validityWindow, timestamp); err != nil {
		return err
	}
	digest, err := tx.Digest()
	if err != nil {
		return err
	}
	if err := tx.Auth.Verify(ctx, digest); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return nil
}

// Issue credits [amount] of [asset] to [to] outside of any transaction.
func (p *Processor) Issue(ctx context.Context, asset codec.Address, to codec.Address, amount uint64) error {
	ctx, span := p.tracer.Start(ctx, "Processor.Issue")
	defer span.End()

	keys := state.Keys{
		string(storage.AssetKey(asset)):       state.All,
		string(storage.BalanceKey(asset, to)): state.All,
	}
	if err := p.run(ctx, keys, true, func(view *tstate.TStateView) error {
		return ledger.NewStateLedger(view).Issue(ctx, asset, to, amount)
	}, nil); err != nil {
		return err
	}
	p.metrics.issued.Inc()
	p.log.Info("issued asset",
		zap.Stringer("asset", asset),
		zap.Stringer("to", to),
		zap.Uint64("amount", amount),
	)
	return nil
}

// Read gives [f] a consistent view of [keys]. Any write through the view
// fails and nothing is ever committed.
func (p *Processor) Read(ctx context.Context, keys state.Keys, f func(state.Mutable) error) error {
	ctx, span := p.tracer.Start(ctx, "Processor.Read")
	defer span.End()

	readOnly := make(state.Keys, len(keys))
	for k := range keys {
		readOnly.Add(k, state.Read)
	}
	p.metrics.reads.Inc()
	return p.run(ctx, readOnly, false, func(view *tstate.TStateView) error {
		return f(view)
	}, nil)
}

// run executes [f] over a view of [keys] while holding their locks. If
// [commit] is set and [f] succeeds, the view is written to the database and
// [accepted] is called before the locks are released.
func (p *Processor) run(
	ctx context.Context,
	keys state.Keys,
	commit bool,
	f func(*tstate.TStateView) error,
	accepted func(),
) error {
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	start := time.Now()
	for _, k := range sorted {
		if keys[k].Has(state.Write) || keys[k].Has(state.Allocate) {
			p.locks.Lock(k)
			defer p.locks.Unlock(k)
		} else {
			p.locks.RLock(k)
			defer p.locks.RUnlock(k)
		}
	}
	p.metrics.waitLocks.Observe(float64(time.Since(start)))

	values := make(map[string][]byte, len(keys))
	for _, k := range sorted {
		v, err := p.db.GetValue(ctx, []byte(k))
		switch {
		case errors.Is(err, database.ErrNotFound):
			continue
		case err != nil:
			return err
		}
		values[k] = v
	}

	ts := tstate.New(len(keys))
	view := ts.NewView(keys, values)
	if err := f(view); err != nil {
		return err
	}
	if !commit {
		return nil
	}

	view.Commit()
	changes := ts.ChangedKeys()
	start = time.Now()
	if err := p.db.WriteBatch(ctx, changes); err != nil {
		return err
	}
	p.metrics.commit.Observe(float64(time.Since(start)))
	p.metrics.stateChanges.Add(float64(len(changes)))
	p.metrics.stateOperations.Add(float64(ts.OpIndex()))
	if accepted != nil {
		accepted()
	}
	return nil
}
