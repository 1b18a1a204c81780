package store

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

// OTPLedgerOption configures a ledger built by [NewOTPLedger].
type OTPLedgerOption func(*otpLedger)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) OTPLedgerOption {
	return func(l *otpLedger) {
		l.now = now
	}
}

// WithCodeSource replaces the crypto/rand code generator.
func WithCodeSource(next func() (int, error)) OTPLedgerOption {
	return func(l *otpLedger) {
		l.nextCode = next
	}
}

// otpLedger is a process-wide in-memory [OTPLedger]. A single mutex guards
// the map, so issue and verify each see one consistent entry. Nothing
// survives a restart.
type otpLedger struct {
	mu         sync.Mutex
	challenges map[string]models.OTPChallenge

	ttl      time.Duration
	now      func() time.Time
	nextCode func() (int, error)
}

// NewOTPLedger returns an empty ledger whose codes live for ttl. A
// non-positive ttl falls back to [models.DefaultOTPTTL].
func NewOTPLedger(ttl time.Duration, opts ...OTPLedgerOption) OTPLedger {
	if ttl <= 0 {
		ttl = models.DefaultOTPTTL
	}

	l := &otpLedger{
		challenges: make(map[string]models.OTPChallenge),
		ttl:        ttl,
		now:        time.Now,
		nextCode:   randomCode,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

func (l *otpLedger) Issue(email string) (int, error) {
	code, err := l.nextCode()
	if err != nil {
		return 0, fmt.Errorf("error generating otp code: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.challenges[email] = models.OTPChallenge{
		Code:      code,
		ExpiresAt: l.now().Add(l.ttl),
	}

	return code, nil
}

func (l *otpLedger) Verify(email, code string) bool {
	presented, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	challenge, ok := l.challenges[email]
	if !ok {
		return false
	}

	return challenge.Matches(presented, l.now())
}

func (l *otpLedger) PurgeExpired(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	purged := 0
	for email, challenge := range l.challenges {
		if challenge.Expired(now) {
			delete(l.challenges, email)
			purged++
		}
	}

	return purged
}

func (l *otpLedger) TTL() time.Duration {
	return l.ttl
}

// randomCode draws uniformly from [models.OTPMinCode, models.OTPMaxCode].
func randomCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(models.OTPMaxCode-models.OTPMinCode+1))
	if err != nil {
		return 0, err
	}

	return models.OTPMinCode + int(n.Int64()), nil
}
