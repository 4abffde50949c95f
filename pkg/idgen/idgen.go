// Package idgen allocates the fixed-width identifiers used by the bank:
// 5-digit user IDs and 7-digit account numbers rendered as "ddd-dddd".
// Allocation draws uniformly from the space and redraws on collision, so a
// caller must pass the set of identifiers already in use. The number of draws
// is capped; a saturated space surfaces as ErrSpaceExhausted instead of an
// endless loop.
package idgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	userIDMin = 10000
	userIDMax = 99999

	accountNumberMin = 1000000
	accountNumberMax = 9999999

	DefaultMaxAttempts = 10000
)

var ErrSpaceExhausted = errors.New("identifier space exhausted")

type Generator struct {
	maxAttempts int
}

func New(maxAttempts int) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{maxAttempts: maxAttempts}
}

// UserID returns a 5-digit ID for which inUse reports false.
// IDs carry no ordering guarantee across calls.
func (g *Generator) UserID(inUse func(id int) bool) (int, error) {
	for i := 0; i < g.maxAttempts; i++ {
		id := rand.IntN(userIDMax-userIDMin+1) + userIDMin
		if !inUse(id) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("allocate user id: %w", ErrSpaceExhausted)
}

// AccountNumber returns a free account number formatted as three digits,
// a dash, then four digits.
func (g *Generator) AccountNumber(inUse func(number string) bool) (string, error) {
	for i := 0; i < g.maxAttempts; i++ {
		n := rand.IntN(accountNumberMax-accountNumberMin+1) + accountNumberMin
		number := fmt.Sprintf("%07d", n)
		number = number[:3] + "-" + number[3:]
		if !inUse(number) {
			return number, nil
		}
	}
	return "", fmt.Errorf("allocate account number: %w", ErrSpaceExhausted)
}
