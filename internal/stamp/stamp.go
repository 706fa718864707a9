// Package stamp issues and verifies tamper-evident write-instant tokens for
// attendance records. The digest binds an instant to a per-call random salt;
// both are stored in the clear, so this detects naive edits and replays of the
// stored token but is not a substitute for authenticated writes.
package stamp

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"staff-attendance-backend/internal/clock"
	"staff-attendance-backend/internal/model"
)

// ErrVerificationFailed is returned when a stamp's digest does not reproduce or
// its instant is older than the allowed age. Callers treat it as a trust
// downgrade, not a hard failure.
var ErrVerificationFailed = errors.New("integrity stamp verification failed")

// Issue produces a stamp for the clock's current instant.
func Issue(clk clock.Source) model.IntegrityStamp {
	now := clk.Now()
	salt := uuid.NewString()
	return model.IntegrityStamp{
		Instant:     now,
		Salt:        salt,
		Digest:      digest(now, salt),
		DisplayTime: now.Format("15:04:05"),
		DisplayDate: now.Format(clock.DateLayout),
	}
}

// Verify recomputes the digest from the stamp's embedded salt and instant and
// checks the instant is within maxAge of the clock's now. The freshness window
// is the caller's policy; writers that only need tamper evidence on stored
// records, whose age is arbitrary, use CheckDigest instead.
func Verify(clk clock.Source, s model.IntegrityStamp, maxAge time.Duration) error {
	if err := CheckDigest(s); err != nil {
		return err
	}
	if age := clk.Now().Sub(s.Instant); age > maxAge {
		return fmt.Errorf("%w: stamp is %s old, max %s", ErrVerificationFailed, age.Round(time.Second), maxAge)
	}
	return nil
}

// CheckDigest verifies only that the stored digest reproduces from the stamp's
// instant and salt. Used when auditing stored records, whose age is arbitrary.
func CheckDigest(s model.IntegrityStamp) error {
	want := digest(s.Instant, s.Salt)
	if subtle.ConstantTimeCompare([]byte(want), []byte(s.Digest)) == 0 {
		return fmt.Errorf("%w: digest mismatch", ErrVerificationFailed)
	}
	return nil
}

func digest(instant time.Time, salt string) string {
	sum := sha256.Sum256([]byte(instant.UTC().Format(time.RFC3339Nano) + "|" + salt))
	return hex.EncodeToString(sum[:])
}
