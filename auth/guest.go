package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const base36Chars = "0123456789abcdefghijklmnopqrstuvwxyz"
const guestSuffixLen = 9

// NewGuestID mints a guest session token: guest_<unix-millis>_<random
// base36 suffix>. The client persists it and sends it with every cart and
// order call; it never expires and is never merged (there is no customer
// login).
func NewGuestID() string {
	suffix := make([]byte, guestSuffixLen)
	max := big.NewInt(int64(len(base36Chars)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			suffix[i] = base36Chars[0]
			continue
		}
		suffix[i] = base36Chars[n.Int64()]
	}
	return fmt.Sprintf("guest_%d_%s", time.Now().UnixMilli(), suffix)
}

// POST /auth/guest
func CreateGuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"guest_id": NewGuestID()})
	}
}
