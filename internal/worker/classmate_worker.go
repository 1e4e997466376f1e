package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/campuslink/campuslink-backend/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ClassmateWorker consumes classmate_refresh_queue. When a class roster
// changes, every member's cached classmate payload is stale; the worker
// drops those keys so the next read rebuilds them. Deleting instead of
// recomputing keeps the worker cheap during add/drop storms.
type ClassmateWorker struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewClassmateWorker creates a new ClassmateWorker.
func NewClassmateWorker(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *ClassmateWorker {
	return &ClassmateWorker{
		pool: pool,
		rdb:  rdb,
		log:  log.With().Str("component", "classmate_worker").Logger(),
	}
}

type refreshPayload struct {
	ClassID string `json:"class_id"`
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *ClassmateWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *ClassmateWorker) processNext(ctx context.Context) {
	result, err := w.rdb.BLPop(ctx, time.Second, config.WorkerKey.ClassmateRefreshQueue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	var payload refreshPayload
	if err := json.Unmarshal([]byte(result[1]), &payload); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error")
		return
	}

	if err := w.refresh(ctx, payload.ClassID); err != nil {
		w.log.Error().Err(err).
			Str("class_id", payload.ClassID).
			Msg("Refresh error, retrying in 5s")
		w.rdb.RPush(ctx, config.WorkerKey.ClassmateRefreshQueue, result[1])
		time.Sleep(5 * time.Second)
	}
}

// refresh invalidates the cached classmate payloads of every active member
// of the class.
func (w *ClassmateWorker) refresh(ctx context.Context, classID string) error {
	rows, err := w.pool.Query(ctx,
		`SELECT user_id FROM user_class_enrollments
		 WHERE class_id = $1 AND is_active`, classID)
	if err != nil {
		return err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return err
		}
		keys = append(keys,
			config.CacheKey.AllClassmatesKey(userID),
			config.CacheKey.ClassmatesKey(userID, classID),
		)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}
	if err := w.rdb.Del(ctx, keys...).Err(); err != nil {
		return err
	}

	w.log.Debug().
		Str("class_id", classID).
		Int("keys", len(keys)).
		Msg("Classmate caches invalidated")
	return nil
}

func (w *ClassmateWorker) drain(ctx context.Context) {
	for {
		result, err := w.rdb.LPop(ctx, config.WorkerKey.ClassmateRefreshQueue).Result()
		if err != nil {
			break
		}

		var payload refreshPayload
		if err := json.Unmarshal([]byte(result), &payload); err != nil {
			continue
		}
		if err := w.refresh(ctx, payload.ClassID); err != nil {
			w.log.Error().Err(err).Msg("Drain refresh error")
		}
	}
}
