package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/campuslink/campuslink-backend/internal/config"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ChatWorker consumes chat_provision_queue and idempotently creates the
// group chat for a chat-eligible class, then adds the enrolling member.
// Provisioning is asynchronous so enrollment never waits on it.
type ChatWorker struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewChatWorker creates a new ChatWorker.
func NewChatWorker(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *ChatWorker {
	return &ChatWorker{
		pool: pool,
		rdb:  rdb,
		log:  log.With().Str("component", "chat_worker").Logger(),
	}
}

type chatProvisionPayload struct {
	UserID    string `json:"user_id"`
	ClassID   string `json:"class_id"`
	SectionID string `json:"section_id,omitempty"`
	Title     string `json:"title"`
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *ChatWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *ChatWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.WorkerKey.ChatProvisionQueue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	var payload chatProvisionPayload
	if err := json.Unmarshal([]byte(result[1]), &payload); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error")
		return
	}

	if err := w.provision(ctx, &payload); err != nil {
		w.log.Error().Err(err).
			Str("class_id", payload.ClassID).
			Str("user_id", payload.UserID).
			Msg("Provision error, retrying in 5s")
		// Push back to queue for retry.
		w.rdb.RPush(ctx, config.WorkerKey.ChatProvisionQueue, result[1])
		time.Sleep(5 * time.Second)
	}
}

// provision UPSERTs the chat and the membership. Both statements are
// idempotent, so a retried payload never duplicates rows.
func (w *ChatWorker) provision(ctx context.Context, p *chatProvisionPayload) error {
	userID, err := uuid.Parse(p.UserID)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(p.ClassID)
	if err != nil {
		return err
	}
	var sectionID *uuid.UUID
	if p.SectionID != "" {
		id, err := uuid.Parse(p.SectionID)
		if err != nil {
			return err
		}
		sectionID = &id
	}

	var chatID uuid.UUID
	err = w.pool.QueryRow(ctx,
		`INSERT INTO class_chats (class_id, section_id, title)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (class_id, COALESCE(section_id, '00000000-0000-0000-0000-000000000000'::uuid))
		 DO UPDATE SET title = class_chats.title
		 RETURNING id`,
		classID, sectionID, p.Title,
	).Scan(&chatID)
	if err != nil {
		return err
	}

	_, err = w.pool.Exec(ctx,
		`INSERT INTO chat_members (chat_id, user_id)
		 VALUES ($1, $2)
		 ON CONFLICT (chat_id, user_id) DO NOTHING`,
		chatID, userID,
	)
	if err != nil {
		return err
	}

	w.log.Info().
		Str("chat_id", chatID.String()).
		Str("user_id", p.UserID).
		Msg("Chat provisioned")
	return nil
}

// drain processes all remaining items in the queue before shutdown.
func (w *ChatWorker) drain(ctx context.Context) {
	drained := 0
	for {
		result, err := w.rdb.LPop(ctx, config.WorkerKey.ChatProvisionQueue).Result()
		if err != nil {
			break
		}

		var payload chatProvisionPayload
		if err := json.Unmarshal([]byte(result), &payload); err != nil {
			continue
		}
		if err := w.provision(ctx, &payload); err != nil {
			w.log.Error().Err(err).Msg("Drain provision error")
			continue
		}
		drained++
	}
	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained pending provisions")
	}
}
