package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionIncome     = "Income"
	TransactionExpense    = "Expense"
	TransactionTransfer   = "Transfer"
	TransactionAdjustment = "Adjustment"

	AccountingPending   = "Pending"
	AccountingCompleted = "Completed"
	AccountingCancelled = "Cancelled"
)

var (
	TransactionTypes   = []string{TransactionIncome, TransactionExpense, TransactionTransfer, TransactionAdjustment}
	AccountingStatuses = []string{AccountingPending, AccountingCompleted, AccountingCancelled}
)

// Accounting movimiento contable del concesionario (tabla accounting).
type Accounting struct {
	Meta
	AccountingID    string          `json:"accounting_id"`
	TransactionDate time.Time       `json:"transaction_date"`
	TransactionType string          `json:"transaction_type"`
	AccountName     string          `json:"account_name"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"reference_number"`
	PaymentMethod   string          `json:"payment_method"`
	Status          string          `json:"status"`
	DueDate         *time.Time      `json:"due_date"`
}

func (a *Accounting) RecordKey() string       { return a.AccountingID }
func (a *Accounting) SetRecordKey(key string) { a.AccountingID = key }

func (a *Accounting) Prepare(now time.Time) error {
	a.Status = orDefault(a.Status, AccountingPending)
	var c checker
	c.text("accounting_id", a.AccountingID)
	c.date("transaction_date", a.TransactionDate)
	c.text("transaction_type", a.TransactionType)
	c.text("account_name", a.AccountName)
	c.present("amount", !a.Amount.IsZero())
	c.oneOf("transaction_type", a.TransactionType, TransactionTypes)
	c.oneOf("status", a.Status, AccountingStatuses)
	return c.err()
}

// AccountingPatch actualización parcial de un movimiento contable.
type AccountingPatch struct {
	TransactionDate *time.Time       `json:"transaction_date,omitempty"`
	TransactionType *string          `json:"transaction_type,omitempty"`
	AccountName     *string          `json:"account_name,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Description     *string          `json:"description,omitempty"`
	ReferenceNumber *string          `json:"reference_number,omitempty"`
	PaymentMethod   *string          `json:"payment_method,omitempty"`
	Status          *string          `json:"status,omitempty"`
	DueDate         *time.Time       `json:"due_date,omitempty"`
}

func (p AccountingPatch) IsEmpty() bool { return p == AccountingPatch{} }

func (p AccountingPatch) Validate() error {
	var c checker
	c.oneOfPtr("transaction_type", p.TransactionType, TransactionTypes)
	c.oneOfPtr("status", p.Status, AccountingStatuses)
	c.textPtr("account_name", p.AccountName)
	c.datePtr("transaction_date", p.TransactionDate)
	c.check("amount", p.Amount == nil || !p.Amount.IsZero())
	return c.err()
}
