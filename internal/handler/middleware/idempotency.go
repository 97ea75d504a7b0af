package middleware

import (
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
)

const maxIdempotencyKeyLength = 128

// ValidateIdempotencyKey rejects keys the cache could not store as a single token.
// An absent key is allowed and leaves the request unguarded.
func ValidateIdempotencyKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if len(key) > maxIdempotencyKeyLength {
			abortJSON(c, http.StatusBadRequest, "Idempotency-Key too long")
			return
		}
		for _, r := range key {
			if unicode.IsSpace(r) || !unicode.IsPrint(r) {
				abortJSON(c, http.StatusBadRequest, "Idempotency-Key must be printable without spaces")
				return
			}
		}
		c.Next()
	}
}
