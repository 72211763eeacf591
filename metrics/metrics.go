package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Playlist run metrics
var (
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "setlist_runs_total",
			Help: "Total number of playlist runs by source",
		},
		[]string{"source"}, // "cli", "http", "message", "slash"
	)

	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "setlist_commands_total",
			Help: "Total number of commands processed by outcome",
		},
		[]string{"outcome"}, // "added", "undone", "undo_noop", "ignored"
	)

	PlaylistLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "setlist_playlist_length",
			Help:    "Number of songs in the resulting playlist",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)
)

// Result cache metrics
var (
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "setlist_cache_hits_total",
			Help: "Total number of rendered playlists served from redis",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "setlist_cache_misses_total",
			Help: "Total number of playlist runs not found in redis",
		},
	)

	CacheErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "setlist_cache_errors_total",
			Help: "Total number of failed redis reads or writes",
		},
	)
)
