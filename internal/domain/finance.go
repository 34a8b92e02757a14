package domain

import (
	"fmt"
)

// Finance-specific validation errors
var (
	// ErrNonPositiveAmount is returned when a deposit or withdrawal amount
	// is zero or negative.
	ErrNonPositiveAmount = fmt.Errorf("%w: amount must be positive", ErrInvalidValue)
)

// AccountKind is the closed set of account variants in the finance demo.
// Behavior is dispatched by switching on the kind; there is no subtyping
// and no further kinds are expected.
type AccountKind uint8

const (
	Checking AccountKind = iota + 1
	Savings
	CreditLine
)

// String returns the human-readable kind name.
func (k AccountKind) String() string {
	switch k {
	case Checking:
		return "checking"
	case Savings:
		return "savings"
	case CreditLine:
		return "credit line"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

func (k AccountKind) valid() bool {
	switch k {
	case Checking, Savings, CreditLine:
		return true
	default:
		return false
	}
}

// Monthly interest rates and withdrawal floors per account kind.
const (
	savingsMonthlyRate    = 0.0025 // credited on positive balances
	creditLineMonthlyRate = 0.015  // charged on drawn (negative) balances
	checkingOverdraft     = 500
	creditLineLimit       = 2000
)

// Account represents one account in the finance demo.
type Account struct {
	ID      int         `json:"id"    validate:"gt=0"`
	Owner   string      `json:"owner" validate:"required"`
	Kind    AccountKind `json:"kind"`
	Balance float64     `json:"balance"`
}

// EntityID returns the account's unique identifier.
func (a Account) EntityID() int { return a.ID }

// NewAccount creates an Account and validates it.
// Returns ErrUnknownAccountKind if kind is outside the closed set.
func NewAccount(id int, owner string, kind AccountKind, balance float64) (Account, error) {
	a := Account{
		ID:      id,
		Owner:   owner,
		Kind:    kind,
		Balance: balance,
	}
	if err := a.Validate(); err != nil {
		return Account{}, err
	}
	return a, nil
}

// Validate checks if the Account has valid data.
func (a Account) Validate() error {
	if err := checkStruct(a); err != nil {
		return err
	}
	if !a.Kind.valid() {
		return ErrUnknownAccountKind
	}
	return nil
}

// MonthlyInterest returns the interest the account earns (positive) or owes
// (negative) for one month at its current balance.
func (a Account) MonthlyInterest() float64 {
	switch a.Kind {
	case Savings:
		if a.Balance > 0 {
			return a.Balance * savingsMonthlyRate
		}
		return 0
	case CreditLine:
		if a.Balance < 0 {
			return a.Balance * creditLineMonthlyRate
		}
		return 0
	default:
		// checking earns and owes nothing
		return 0
	}
}

// withdrawalFloor returns the lowest balance the account kind permits.
func (a Account) withdrawalFloor() float64 {
	switch a.Kind {
	case Checking:
		return -checkingOverdraft
	case CreditLine:
		return -creditLineLimit
	default:
		return 0
	}
}

// Deposit returns a copy of the account credited with amount.
// Returns ErrNonPositiveAmount if amount is not positive.
func (a Account) Deposit(amount float64) (Account, error) {
	if amount <= 0 {
		return Account{}, ErrNonPositiveAmount
	}
	a.Balance += amount
	return a, nil
}

// Withdraw returns a copy of the account debited by amount.
// Returns ErrNonPositiveAmount if amount is not positive, and
// ErrInsufficientFunds if the resulting balance would fall below what the
// account kind permits (zero for savings, the overdraft limit for checking,
// the credit limit for a credit line).
func (a Account) Withdraw(amount float64) (Account, error) {
	if amount <= 0 {
		return Account{}, ErrNonPositiveAmount
	}
	if a.Balance-amount < a.withdrawalFloor() {
		return Account{}, ErrInsufficientFunds
	}
	a.Balance -= amount
	return a, nil
}
