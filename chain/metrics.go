// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type chainMetrics struct {
	txsRejected prometheus.Counter
	txsFailed   prometheus.Counter
	txsAccepted prometheus.Counter
	issued      prometheus.Counter
	reads       prometheus.Counter

	stateChanges    prometheus.Counter
	stateOperations prometheus.Counter

	waitLocks metric.Averager
	execute   metric.Averager
	commit    metric.Averager
}

func newMetrics() (*prometheus.Registry, *chainMetrics, error) {
	r := prometheus.NewRegistry()

	waitLocks, err := metric.NewAverager(
		"chain_wait_locks",
		"time spent waiting for state key locks",
		r,
	)
	if err != nil {
		return nil, nil, err
	}
	execute, err := metric.NewAverager(
		"chain_execute",
		"time spent executing an action",
		r,
	)
	if err != nil {
		return nil, nil, err
	}
	commit, err := metric.NewAverager(
		"chain_commit",
		"time spent writing changes to the database",
		r,
	)
	if err != nil {
		return nil, nil, err
	}

	m := &chainMetrics{
		txsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "txs_rejected",
			Help:      "number of txs rejected before execution",
		}),
		txsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "txs_failed",
			Help:      "number of txs whose action returned an error",
		}),
		txsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "txs_accepted",
			Help:      "number of txs committed to the database",
		}),
		issued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "issued",
			Help:      "number of faucet issuances",
		}),
		reads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "reads",
			Help:      "number of read-only views served",
		}),
		stateChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "state_changes",
			Help:      "number of state changes",
		}),
		stateOperations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "state_operations",
			Help:      "number of state operations",
		}),
		waitLocks: waitLocks,
		execute:   execute,
		commit:    commit,
	}

	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.txsRejected),
		r.Register(m.txsFailed),
		r.Register(m.txsAccepted),
		r.Register(m.issued),
		r.Register(m.reads),
		r.Register(m.stateChanges),
		r.Register(m.stateOperations),
	)
	return r, m, errs.Err
}
