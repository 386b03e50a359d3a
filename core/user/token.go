package user

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"

	"github.com/connectingcampuses/backend/core"
)

const tokenBytes = 32 // 256 bits of entropy, hex-encoded

var nowFunc = time.Now // mockable

// issueToken generates a random opaque token and its expiry timestamp.
// The caller persists the pair onto the account; nothing is stored here.
func issueToken() (string, time.Time, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", time.Time{}, errors.Wrap(err, "reading random bytes")
	}
	expires := nowFunc().Add(core.Conf.TokenExpirationDelta).UTC()
	return hex.EncodeToString(b), expires, nil
}
