// Package main implements the finance demo: a closed set of account kinds
// in a keyed store, kind-dispatched interest, and withdrawals bounded by
// what each kind permits.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/davidegreene/storelab/internal/config"
	"github.com/davidegreene/storelab/internal/domain"
	"github.com/davidegreene/storelab/internal/platform/logger"
	"github.com/davidegreene/storelab/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	appLogger := logger.Setup(cfg.App).With("run_id", uuid.NewString(), "demo", "finance")
	appLogger.Info("starting finance demo")

	accounts := store.New[domain.Account]("account")
	seed := []struct {
		id      int
		owner   string
		kind    domain.AccountKind
		balance float64
	}{
		{1, "Ana Duarte", domain.Checking, 250.00},
		{2, "Ana Duarte", domain.Savings, 4800.00},
		{3, "Marcus Webb", domain.CreditLine, -1250.00},
	}
	for _, s := range seed {
		a, err := domain.NewAccount(s.id, s.owner, s.kind, s.balance)
		if err != nil {
			log.Fatalf("bad seed data: %v", err)
		}
		if err := accounts.Insert(a); err != nil {
			log.Fatalf("failed to seed accounts: %v", err)
		}
	}
	appLogger.Info("seeded accounts", "count", accounts.Len())

	fmt.Println("Accounts with projected monthly interest:")
	printAccounts(accounts.GetAll())

	// A checking account may dip into its overdraft.
	if err := accounts.Update(1, func(a domain.Account) (domain.Account, error) {
		return a.Withdraw(400)
	}); err != nil {
		appLogger.Error("withdrawal failed", "error", err)
	} else {
		fmt.Println("\nWithdrew 400.00 from checking; overdraft covers the difference.")
	}

	// A savings account may not go below zero; the balance is unchanged.
	err = accounts.Update(2, func(a domain.Account) (domain.Account, error) {
		return a.Withdraw(5000)
	})
	if errors.Is(err, domain.ErrInsufficientFunds) {
		fmt.Printf("Savings withdrawal rejected: %v\n", err)
	}

	// Paying down the credit line shrinks next month's interest charge.
	if err := accounts.Update(3, func(a domain.Account) (domain.Account, error) {
		return a.Deposit(500)
	}); err != nil {
		appLogger.Error("payment failed", "error", err)
	} else {
		fmt.Println("Paid 500.00 toward the credit line.")
	}

	fmt.Println("\nAccounts after the month's activity:")
	printAccounts(accounts.GetAll())
}

func printAccounts(accounts []domain.Account) {
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tOWNER\tKIND\tBALANCE\tMONTHLY INTEREST")
	for _, a := range accounts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.2f\n", a.ID, a.Owner, a.Kind, a.Balance, a.MonthlyInterest())
	}
	w.Flush()
}
