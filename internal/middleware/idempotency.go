package middleware

import (
	"bytes"
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listas-tarefas/task-manager/internal/cache"
	"github.com/listas-tarefas/task-manager/internal/constants"
	apierrors "github.com/listas-tarefas/task-manager/internal/errors"
)

// bodyRecorder copies everything written to the client.
type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the first response for a repeated Idempotency-Key on
// the same route and user. It is a no-op without a store or header. Must run
// after RequireAuth.
func Idempotency(store *cache.IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		idemKey := c.GetHeader(constants.HeaderIdempotencyKey)
		if store == nil || idemKey == "" {
			c.Next()
			return
		}

		userID, _ := GetUserID(c)
		key := cache.Key(userID, c.FullPath(), idemKey)
		ctx := c.Request.Context()

		reserved, stored, err := store.Reserve(ctx, key)
		if err != nil {
			log.Printf("Idempotency store unavailable, request %s not deduplicated: %v", GetRequestID(c), err)
			c.Next()
			return
		}
		if stored != nil {
			c.Header("Idempotent-Replayed", "true")
			c.Data(stored.Status, stored.ContentType, stored.Body)
			c.Abort()
			return
		}
		if !reserved {
			apierrors.Conflict(c, "A request with this Idempotency-Key is still being processed")
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		// A panicking handler must not leave the key pending until the TTL.
		defer func() {
			if r := recover(); r != nil {
				if err := store.Release(context.WithoutCancel(ctx), key); err != nil {
					log.Printf("Failed to release idempotency key: %v", err)
				}
				panic(r)
			}
		}()

		c.Next()

		if recorder.Status() >= http.StatusInternalServerError {
			if err := store.Release(ctx, key); err != nil {
				log.Printf("Failed to release idempotency key: %v", err)
			}
			return
		}

		resp := cache.StoredResponse{
			Status:      recorder.Status(),
			ContentType: recorder.Header().Get("Content-Type"),
			Body:        recorder.body.Bytes(),
		}
		if err := store.Complete(ctx, key, resp); err != nil {
			log.Printf("Failed to store idempotent response: %v", err)
		}
	}
}
