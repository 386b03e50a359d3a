package user

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/connectingcampuses/backend/core"
)

func TestIssueToken(t *testing.T) {
	now := time.Now()
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = time.Now }()

	token, expires, err := issueToken()
	if err != nil {
		t.Fatalf("issueToken() error = %v", err)
	}
	if len(token) != 2*tokenBytes {
		t.Errorf("issueToken() token length = %d, want %d", len(token), 2*tokenBytes)
	}
	if _, err = hex.DecodeString(token); err != nil {
		t.Errorf("issueToken() token is not hex: %v", err)
	}
	if want := now.Add(core.Conf.TokenExpirationDelta).UTC(); !expires.Equal(want) {
		t.Errorf("issueToken() expires = %v, want %v", expires, want)
	}

	token2, _, err := issueToken()
	if err != nil {
		t.Fatalf("issueToken() error = %v", err)
	}
	if token2 == token {
		t.Error("issueToken() returned the same token twice")
	}
}
