// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "cpamm_db"
	metricsInterval  = 10 * time.Second

	levelLabel = "level"
	fileLabel  = "file"
)

type metrics struct {
	stallStart time.Time
	writeStall metric.Averager

	getLatency   metric.Averager
	batchLatency metric.Averager
	batchKeys    prometheus.Counter

	// compactions is labeled by the input level ("l0" or "l1+")
	compactions       *prometheus.CounterVec
	activeCompactions prometheus.Gauge

	tombstones prometheus.Gauge
	// obsoleteBytes and obsoleteFiles are labeled by file kind
	// ("table", "zombie_table", "wal")
	obsoleteBytes *prometheus.GaugeVec
	obsoleteFiles *prometheus.GaugeVec
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()
	m := &metrics{
		batchKeys: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "batch_keys",
			Help:      "number of pool state keys written or deleted by committed batches",
		}),
		compactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "compactions",
			Help:      "number of compactions started",
		}, []string{levelLabel}),
		activeCompactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "active_compactions",
			Help:      "number of running compactions",
		}),
		tombstones: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "tombstones",
			Help:      "approximate number of deleted keys not yet compacted away",
		}),
		obsoleteBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "obsolete_bytes",
			Help:      "bytes held by files the db no longer needs",
		}, []string{fileLabel}),
		obsoleteFiles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "obsolete_files",
			Help:      "files the db no longer needs",
		}, []string{fileLabel}),
	}

	var err error
	errs := wrappers.Errs{}
	m.writeStall, err = metric.NewAverager(metricsNamespace+"_write_stall", "time writes spent stalled", r)
	errs.Add(err)
	m.getLatency, err = metric.NewAverager(metricsNamespace+"_get_latency", "time spent reading a key", r)
	errs.Add(err)
	m.batchLatency, err = metric.NewAverager(metricsNamespace+"_batch_latency", "time spent committing a batch", r)
	errs.Add(
		err,
		r.Register(m.batchKeys),
		r.Register(m.compactions),
		r.Register(m.activeCompactions),
		r.Register(m.tombstones),
		r.Register(m.obsoleteBytes),
		r.Register(m.obsoleteFiles),
	)
	return r, m, errs.Err
}

func (db *Database) onCompactionBegin(info pebble.CompactionInfo) {
	db.metrics.activeCompactions.Inc()
	level := "l1+"
	if len(info.Input) > 0 && info.Input[0].Level == 0 {
		level = "l0"
	}
	db.metrics.compactions.WithLabelValues(level).Inc()
}

func (db *Database) onCompactionEnd(pebble.CompactionInfo) {
	db.metrics.activeCompactions.Dec()
}

func (db *Database) onWriteStallBegin(pebble.WriteStallBeginInfo) {
	db.metrics.stallStart = time.Now()
}

func (db *Database) onWriteStallEnd() {
	db.metrics.writeStall.Observe(float64(time.Since(db.metrics.stallStart)))
}

// collectMetrics samples pebble's internal counters until the database
// closes.
func (db *Database) collectMetrics() {
	t := time.NewTicker(metricsInterval)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			m := db.db.Metrics()
			db.metrics.tombstones.Set(float64(m.Keys.TombstoneCount))
			db.metrics.obsoleteBytes.WithLabelValues("table").Set(float64(m.Table.ObsoleteSize))
			db.metrics.obsoleteFiles.WithLabelValues("table").Set(float64(m.Table.ObsoleteCount))
			db.metrics.obsoleteBytes.WithLabelValues("zombie_table").Set(float64(m.Table.ZombieSize))
			db.metrics.obsoleteFiles.WithLabelValues("zombie_table").Set(float64(m.Table.ZombieCount))
			db.metrics.obsoleteBytes.WithLabelValues("wal").Set(float64(m.WAL.ObsoletePhysicalSize))
			db.metrics.obsoleteFiles.WithLabelValues("wal").Set(float64(m.WAL.ObsoleteFiles))
		case <-db.closing:
			return
		}
	}
}
