package store

import (
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func sequence(codes ...int) func() (int, error) {
	var mu sync.Mutex
	return func() (int, error) {
		mu.Lock()
		defer mu.Unlock()
		code := codes[0]
		codes = codes[1:]
		return code, nil
	}
}

func newTestLedger(codes ...int) (OTPLedger, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)}
	return NewOTPLedger(models.DefaultOTPTTL, WithClock(clock.Now), WithCodeSource(sequence(codes...))), clock
}

func TestOTPLedger_IssueAndVerify(t *testing.T) {
	ledger, _ := newTestLedger(123456)

	code, err := ledger.Issue("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 123456, code)

	assert.True(t, ledger.Verify("a@x.com", "123456"))
	assert.True(t, ledger.Verify("a@x.com", " 123456 "), "surrounding spaces are ignored")
	assert.True(t, ledger.Verify("a@x.com", "123456"), "verification does not consume the code")
	assert.False(t, ledger.Verify("a@x.com", "654321"))
	assert.False(t, ledger.Verify("b@x.com", "123456"), "never issued for this email")
}

func TestOTPLedger_NonNumericFails(t *testing.T) {
	ledger, _ := newTestLedger(123456)
	_, err := ledger.Issue("a@x.com")
	require.NoError(t, err)

	for _, code := range []string{"", "abc", "12345a", "1e5"} {
		assert.False(t, ledger.Verify("a@x.com", code), code)
	}
}

func TestOTPLedger_Expiry(t *testing.T) {
	ledger, clock := newTestLedger(111111)
	_, err := ledger.Issue("a@x.com")
	require.NoError(t, err)

	clock.Advance(299 * time.Second)
	assert.True(t, ledger.Verify("a@x.com", "111111"))

	clock.Advance(time.Second)
	assert.False(t, ledger.Verify("a@x.com", "111111"), "expires_at itself is too late")

	clock.Advance(time.Second)
	assert.False(t, ledger.Verify("a@x.com", "111111"))
}

func TestOTPLedger_NewestOverwrites(t *testing.T) {
	ledger, _ := newTestLedger(111111, 222222, 333333)

	_, err := ledger.Issue("a@x.com")
	require.NoError(t, err)
	_, err = ledger.Issue("b@x.com")
	require.NoError(t, err)
	_, err = ledger.Issue("a@x.com")
	require.NoError(t, err)

	assert.False(t, ledger.Verify("a@x.com", "111111"))
	assert.True(t, ledger.Verify("a@x.com", "333333"))
	assert.True(t, ledger.Verify("b@x.com", "222222"), "other emails are untouched")
}

func TestOTPLedger_ReissueRestartsWindow(t *testing.T) {
	ledger, clock := newTestLedger(111111, 111111)

	_, err := ledger.Issue("a@x.com")
	require.NoError(t, err)
	clock.Advance(200 * time.Second)
	_, err = ledger.Issue("a@x.com")
	require.NoError(t, err)
	clock.Advance(200 * time.Second)

	assert.True(t, ledger.Verify("a@x.com", "111111"))
}

func TestOTPLedger_PurgeExpired(t *testing.T) {
	ledger, clock := newTestLedger(111111, 222222)

	_, err := ledger.Issue("a@x.com")
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, err = ledger.Issue("b@x.com")
	require.NoError(t, err)

	start := clock.Now().Add(-time.Minute)
	assert.Zero(t, ledger.PurgeExpired(start.Add(models.DefaultOTPTTL-time.Nanosecond)))
	assert.Equal(t, 1, ledger.PurgeExpired(start.Add(models.DefaultOTPTTL)))
	assert.True(t, ledger.Verify("b@x.com", "222222"))
	assert.Equal(t, 1, ledger.PurgeExpired(start.Add(time.Hour)))
	assert.Zero(t, ledger.PurgeExpired(start.Add(time.Hour)))
}

func TestOTPLedger_CodeSourceError(t *testing.T) {
	ledger := NewOTPLedger(time.Minute, WithCodeSource(func() (int, error) {
		return 0, errors.New("entropy exhausted")
	}))

	_, err := ledger.Issue("a@x.com")
	require.Error(t, err)
	assert.False(t, ledger.Verify("a@x.com", "0"))
}

func TestOTPLedger_DefaultTTL(t *testing.T) {
	assert.Equal(t, models.DefaultOTPTTL, NewOTPLedger(0).TTL())
	assert.Equal(t, time.Minute, NewOTPLedger(time.Minute).TTL())
}

func TestRandomCode_Range(t *testing.T) {
	for range 1000 {
		code, err := randomCode()
		require.NoError(t, err)
		require.GreaterOrEqual(t, code, models.OTPMinCode)
		require.LessOrEqual(t, code, models.OTPMaxCode)
		require.Len(t, strconv.Itoa(code), 6)
	}
}

func TestOTPLedger_ConcurrentIssueVerify(t *testing.T) {
	ledger := NewOTPLedger(time.Minute)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := ledger.Issue("race@x.com")
			assert.NoError(t, err)
			_ = ledger.Verify("race@x.com", strconv.Itoa(code))
		}()
	}
	wg.Wait()

	ledger.PurgeExpired(time.Now().Add(time.Hour))
	assert.False(t, ledger.Verify("race@x.com", "100000"))
}
