package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a repeated Idempotency-Key on
// the same route and user. While the first request is still in flight a
// short-lived lock turns duplicates into 409s instead of double submissions.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString("user_id")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached json.RawMessage
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				c.Data(http.StatusOK, "application/json", cached)
				c.Abort()
				return
			}
		}

		// Lock expires on its own so a crashed server never wedges the key
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "A request with this idempotency key is already in progress",
			})
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec

		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			if err := rdb.Set(c.Request.Context(), cacheKey, rec.body.String(), idempotencyTTL).Err(); err != nil {
				zap.L().Named("middleware.idempotency").Warn("store idempotent response failed",
					zap.String("cache_key", cacheKey),
					zap.Error(err),
				)
			}
		}
		_ = rdb.Del(c.Request.Context(), lockKey).Err()
	}
}
