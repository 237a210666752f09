package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/jenniferhuangg/ConcertCloud/pkg/response"
)

// IdempotencyKeyHeader carries the client-chosen dedup key.
const IdempotencyKeyHeader = "X-Idempotency-Key"

const (
	idempotencyKeyPrefix = "idempotency:"

	// Completed responses are replayable for 24h; in-flight markers are
	// short-lived so a crashed request does not wedge the key.
	completedTTL  = 24 * time.Hour
	processingTTL = 60 * time.Second
)

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
)

// idempotencyRecord is the Redis-stored state of one keyed request.
type idempotencyRecord struct {
	Key          string     `json:"key"`
	Status       string     `json:"status"`
	RequestHash  string     `json:"request_hash"`
	ResponseCode int        `json:"response_code"`
	ResponseBody string     `json:"response_body"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// IdempotencyStore is the subset of redis operations the middleware needs.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// Idempotency deduplicates mutating requests that carry an X-Idempotency-Key
// header. A replayed key with the same payload gets the cached response; the
// same key with a different payload is rejected. Requests without the header
// pass through untouched, and redis outages fail open.
func Idempotency(store IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}
		requestHash := hashRequest(c, bodyBytes)

		redisKey := idempotencyKeyPrefix + key
		ctx := c.Request.Context()

		existing, err := getRecord(ctx, store, redisKey)
		if err != nil && !errors.Is(err, redis.Nil) {
			c.Next()
			return
		}

		if existing != nil {
			replayRecord(c, existing, requestHash)
			return
		}

		record := &idempotencyRecord{
			Key:         key,
			Status:      statusProcessing,
			RequestHash: requestHash,
			CreatedAt:   time.Now(),
		}
		if !claimKey(ctx, store, redisKey, record) {
			// Lost the race to a concurrent request with the same key.
			existing, _ = getRecord(ctx, store, redisKey)
			if existing != nil {
				replayRecord(c, existing, requestHash)
				return
			}
		}

		rw := &captureWriter{ResponseWriter: c.Writer, body: bytes.NewBuffer(nil)}
		c.Writer = rw

		c.Next()

		now := time.Now()
		record.Status = statusCompleted
		record.ResponseCode = rw.Status()
		record.ResponseBody = rw.body.String()
		record.CompletedAt = &now

		if data, err := json.Marshal(record); err == nil {
			store.Set(ctx, redisKey, string(data), completedTTL)
		}
	}
}

func replayRecord(c *gin.Context, record *idempotencyRecord, requestHash string) {
	if record.RequestHash != requestHash {
		c.Abort()
		response.Error(c, http.StatusUnprocessableEntity, "IDEMPOTENCY_KEY_REUSED",
			"idempotency key already used with a different request", "")
		return
	}
	if record.Status == statusProcessing {
		c.Abort()
		response.Conflict(c, "a request with this idempotency key is in progress")
		return
	}
	c.Data(record.ResponseCode, "application/json", []byte(record.ResponseBody))
	c.Abort()
}

func hashRequest(c *gin.Context, body []byte) string {
	h := sha256.New()
	h.Write([]byte(c.Request.Method))
	h.Write([]byte(c.Request.URL.Path))
	if userID, ok := GetUserID(c); ok {
		h.Write([]byte(userID))
	}
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

func getRecord(ctx context.Context, store IdempotencyStore, key string) (*idempotencyRecord, error) {
	data, err := store.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	var record idempotencyRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func claimKey(ctx context.Context, store IdempotencyStore, key string, record *idempotencyRecord) bool {
	data, err := json.Marshal(record)
	if err != nil {
		return false
	}
	ok, err := store.SetNX(ctx, key, string(data), processingTTL).Result()
	return err == nil && ok
}

// captureWriter buffers the response body so it can be replayed later.
type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
