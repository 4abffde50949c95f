package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type HashServiceInterface interface {
	HashPIN(pin string) (string, error)
	ComparePIN(hashedPIN, pin string) bool
}

// HashService digests customer PINs with bcrypt. The plaintext PIN is never
// stored and never logged.
type HashService struct {
	cost int
}

// NewHashService validates the bcrypt cost once, at bootstrap. A cost outside
// the supported range is a configuration error the process must not start with.
func NewHashService(cost int) (*HashService, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d outside supported range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &HashService{cost: cost}, nil
}

func (b *HashService) HashPIN(pin string) (string, error) {
	if pin == "" {
		return "", errors.New("pin cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), b.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePIN reports whether pin matches the stored digest. bcrypt's compare
// does not leak the length of a matching prefix.
func (b *HashService) ComparePIN(hashedPIN, pin string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPIN), []byte(pin))
	return err == nil
}
