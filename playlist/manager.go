package playlist

import (
	"Setlist/metrics"
	"Setlist/utils"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/Strum355/log"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type PlaylistManager struct {
	Redis    *redis.Client // Optional cache of rendered results, nil disables it
	cacheTTL time.Duration
}

// NewManager returns a new instance of PlaylistManager
func NewManager(r *redis.Client) *PlaylistManager {
	return &PlaylistManager{
		Redis:    r,
		cacheTTL: time.Duration(viper.GetInt("cache.ttl")) * time.Second,
	}
}

// Play decodes a bracketed command line, runs it and renders the playlist in
// the same bracketed style. source labels the run in logs and metrics.
func (pm *PlaylistManager) Play(ctx context.Context, source, line string) string {
	metrics.RunsTotal.WithLabelValues(source).Inc()
	key := cacheKey(line)

	if out, ok := pm.cached(ctx, key); ok {
		return out
	}

	res := Run(utils.ParseList(line))
	recordStats(res)

	ctx = context.WithValue(ctx, log.Key, log.Fields{
		"source":     source,
		"songs":      len(res.Songs),
		"added":      res.Stats.Added,
		"undone":     res.Stats.Undone,
		"undo_noops": res.Stats.UndoNoops,
		"ignored":    res.Stats.Ignored,
	})
	log.WithContext(ctx).Info("Processed playlist commands")

	out := utils.FormatList(res.Songs)
	pm.store(ctx, key, out)
	return out
}

// cached looks the rendered result up in redis
func (pm *PlaylistManager) cached(ctx context.Context, key string) (string, bool) {
	if pm.Redis == nil {
		return "", false
	}
	out, err := pm.Redis.Get(ctx, key).Result()
	if err == redis.Nil {
		metrics.CacheMisses.Inc()
		return "", false
	}
	if err != nil {
		metrics.CacheErrors.Inc()
		log.WithError(err).Error("Failed to read cached playlist")
		return "", false
	}
	metrics.CacheHits.Inc()
	return out, true
}

func (pm *PlaylistManager) store(ctx context.Context, key, out string) {
	if pm.Redis == nil {
		return
	}
	if err := pm.Redis.Set(ctx, key, out, pm.cacheTTL).Err(); err != nil {
		metrics.CacheErrors.Inc()
		log.WithError(err).Error("Failed to cache playlist")
	}
}

func cacheKey(line string) string {
	sum := sha1.Sum([]byte(line))
	return "playlist:" + hex.EncodeToString(sum[:])
}

func recordStats(res Result) {
	metrics.CommandsTotal.WithLabelValues("added").Add(float64(res.Stats.Added))
	metrics.CommandsTotal.WithLabelValues("undone").Add(float64(res.Stats.Undone))
	metrics.CommandsTotal.WithLabelValues("undo_noop").Add(float64(res.Stats.UndoNoops))
	metrics.CommandsTotal.WithLabelValues("ignored").Add(float64(res.Stats.Ignored))
	metrics.PlaylistLength.Observe(float64(len(res.Songs)))
}
