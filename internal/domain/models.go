package domain

import "time"

type AccountType string

const (
	Checking AccountType = "Checking"
	Savings  AccountType = "Savings"
)

// ParseAccountType maps the wire representation of an account type to the
// domain tag. The canonical spelling and its lowercase form are accepted.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "Checking", "checking":
		return Checking, nil
	case "Savings", "savings":
		return Savings, nil
	}
	return "", ErrUnknownAccountType
}

// User is an identity record. Accounts holds account numbers only; the Bank
// registry is the single owner of Account objects. The slice is guarded by
// the Bank mutex.
type User struct {
	ID        int
	FirstName string
	LastName  string
	PINHash   string
	Accounts  []string
}

func (u *User) Name() string {
	return u.FirstName + " " + u.LastName
}

// Transaction is an immutable, append-only ledger entry. Amount is signed:
// credits positive, debits negative, in minor units.
type Transaction struct {
	Location string
	Amount   int64
	Date     time.Time
	Memo     string
}
