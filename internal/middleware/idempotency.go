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
	"github.com/sashabryl/train-station-api-service/internal/dto"
)

const (
	// IdempotencyKeyHeader is the header name for the idempotency key
	IdempotencyKeyHeader = "X-Idempotency-Key"
	// idempotencyKeyPrefix namespaces idempotency records in Redis
	idempotencyKeyPrefix = "idempotency:"

	// completedTTL keeps finished responses long enough for client retries
	completedTTL = 24 * time.Hour
	// processingTTL is short so a crashed request does not block the key
	processingTTL = 60 * time.Second
)

type idempotencyStatus string

const (
	statusProcessing idempotencyStatus = "processing"
	statusCompleted  idempotencyStatus = "completed"
)

type idempotencyRecord struct {
	Key          string            `json:"key"`
	Status       idempotencyStatus `json:"status"`
	RequestHash  string            `json:"request_hash"`
	ResponseCode int               `json:"response_code"`
	ResponseBody string            `json:"response_body"`
	CreatedAt    time.Time         `json:"created_at"`
}

// IdempotencyStore is the subset of Redis operations the middleware needs
type IdempotencyStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// Idempotency makes a booking POST safe to retry: the first request with a
// given X-Idempotency-Key runs, duplicates replay the stored response.
// Requests without the header pass through unchanged.
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
			// Redis unavailable, fail open
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
			CreatedAt:   time.Now().UTC(),
		}

		ok, err := setRecordNX(ctx, store, redisKey, record, processingTTL)
		if err != nil {
			c.Next()
			return
		}
		if !ok {
			// Lost the race, another request holds the key
			existing, _ = getRecord(ctx, store, redisKey)
			if existing != nil {
				replayRecord(c, existing, requestHash)
				return
			}
		}

		rw := &captureWriter{ResponseWriter: c.Writer, body: bytes.NewBuffer(nil)}
		c.Writer = rw

		c.Next()

		record.Status = statusCompleted
		record.ResponseCode = rw.status
		record.ResponseBody = rw.body.String()
		saveRecord(ctx, store, redisKey, record, completedTTL)
	}
}

func replayRecord(c *gin.Context, record *idempotencyRecord, requestHash string) {
	if record.RequestHash != requestHash {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: "Idempotency key already used with a different request",
			Code:  "IDEMPOTENCY_KEY_REUSED",
		})
		return
	}
	if record.Status == statusProcessing {
		c.AbortWithStatusJSON(http.StatusConflict, dto.ErrorResponse{
			Error: "A request with this idempotency key is still being processed",
			Code:  "REQUEST_IN_PROGRESS",
		})
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
	raw, err := store.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	var record idempotencyRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func setRecordNX(ctx context.Context, store IdempotencyStore, key string, record *idempotencyRecord, ttl time.Duration) (bool, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return false, err
	}
	return store.SetNX(ctx, key, string(data), ttl).Result()
}

func saveRecord(ctx context.Context, store IdempotencyStore, key string, record *idempotencyRecord, ttl time.Duration) {
	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	store.Set(ctx, key, string(data), ttl)
}

// captureWriter records the response so it can be replayed for duplicates
type captureWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
