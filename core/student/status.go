package student

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

const daysPerMonth = 30

// ComputeStatus derives the effective status of a student.
// A stored "Dropped" always wins, then full payment, then course expiry.
// Durations without any digit never expire.
func ComputeStatus(stored string, netFee, paid float64, duration string, enrolledAt, now time.Time) string {
	if stored == StatusDropped {
		return StatusDropped
	}
	if paid >= netFee {
		return StatusCompleted
	}
	if months, ok := durationMonths(duration); ok && !enrolledAt.IsZero() {
		end := enrolledAt.AddDate(0, 0, months*daysPerMonth)
		if now.After(end) {
			return StatusInactive
		}
	}
	return StatusActive
}

// durationMonths concatenates every decimal digit found in `duration`, e.g. "12 months" -> 12.
// Digits of any script count, so "١٢ months" -> 12 as well.
func durationMonths(duration string) (int, bool) {
	var digits strings.Builder
	for _, r := range duration {
		if v, ok := digitValue(r); ok {
			digits.WriteByte(byte('0' + v))
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	months, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return months, true
}

// digitValue returns the value of a decimal digit rune.
// Unicode lays out every decimal digit set as ten contiguous code points starting at zero.
func digitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !unicode.IsDigit(r) {
		return 0, false
	}
	for _, rng := range unicode.Nd.R16 {
		if lo, hi := rune(rng.Lo), rune(rng.Hi); r >= lo && r <= hi {
			return int(r-lo) % 10, true
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if lo, hi := rune(rng.Lo), rune(rng.Hi); r >= lo && r <= hi {
			return int(r-lo) % 10, true
		}
	}
	return 0, false
}
