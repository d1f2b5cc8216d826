// internal/app/features/login/captcha.go
package login

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// captchaTTL is how long a challenge stays answerable.
const captchaTTL = 5 * time.Minute

// Challenge is a simple arithmetic question shown on the login view. The
// ID carries everything needed to verify the answer (expiry, nonce, and an
// HMAC over both plus the expected answer), so no server-side state is kept
// between issuing and checking.
type Challenge struct {
	ID       string `json:"captcha_id"`
	Question string `json:"question"`
}

// NewChallenge issues an addition question over two random digits.
func NewChallenge(secret []byte) (Challenge, error) {
	a, err := randDigit()
	if err != nil {
		return Challenge{}, err
	}
	b, err := randDigit()
	if err != nil {
		return Challenge{}, err
	}

	nonce := make([]byte, 8)
	if _, err := rand.Read(nonce); err != nil {
		return Challenge{}, err
	}

	expiry := time.Now().Add(captchaTTL).Unix()
	answer := strconv.Itoa(a + b)
	tag := challengeMAC(secret, expiry, hex.EncodeToString(nonce), answer)

	raw := fmt.Sprintf("%d.%s.%s", expiry, hex.EncodeToString(nonce), tag)
	return Challenge{
		ID:       base64.RawURLEncoding.EncodeToString([]byte(raw)),
		Question: fmt.Sprintf("What is %d + %d?", a, b),
	}, nil
}

// VerifyChallenge reports whether answer solves the challenge behind id and
// the challenge has not expired. Comparison is constant-time.
func VerifyChallenge(secret []byte, id, answer string) bool {
	raw, err := base64.RawURLEncoding.DecodeString(id)
	if err != nil {
		return false
	}
	parts := strings.Split(string(raw), ".")
	if len(parts) != 3 {
		return false
	}

	expiry, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || time.Now().Unix() > expiry {
		return false
	}

	want := challengeMAC(secret, expiry, parts[1], strings.TrimSpace(answer))
	return hmac.Equal([]byte(want), []byte(parts[2]))
}

func challengeMAC(secret []byte, expiry int64, nonce, answer string) string {
	m := hmac.New(sha256.New, secret)
	fmt.Fprintf(m, "%d|%s|%s", expiry, nonce, answer)
	return hex.EncodeToString(m.Sum(nil))
}

func randDigit() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
