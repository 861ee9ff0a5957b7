package schema

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

// Request inputs for the funding endpoints. Plain fields are required,
// mo.Option fields are sent only when present.

const (
	MinPageLimit     = 1
	MaxPageLimit     = 100
	DefaultPageLimit = 100
)

// Page 分页参数，After/Before 以毫秒时间戳发送
type Page struct {
	After  mo.Option[time.Time]
	Before mo.Option[time.Time]
	Limit  mo.Option[int]
}

type FundTransferRequest struct {
	Currency         string
	Amount           decimal.Decimal
	Type             TransferType
	From             Account
	To               Account
	SubAccount       mo.Option[string]
	FromInstrumentID mo.Option[string]
	ToInstrumentID   mo.Option[string]
	ClientID         mo.Option[string]
}

// TransferStateRequest needs exactly one of TransferID or ClientID.
type TransferStateRequest struct {
	TransferID mo.Option[string]
	ClientID   mo.Option[string]
	Type       mo.Option[TransferType]
}

type FundingBillsRequest struct {
	Currency mo.Option[string]
	Type     mo.Option[FundingBillType]
	Page
}

type LightningDepositRequest struct {
	Currency string
	Amount   decimal.Decimal
	Account  mo.Option[LightningDepositAccount]
}

type DepositHistoryRequest struct {
	Currency      mo.Option[string]
	TransactionID mo.Option[string]
	State         mo.Option[DepositState]
	Page
}

type WithdrawalRequest struct {
	Currency    string
	Amount      decimal.Decimal
	Destination WithdrawalDestination
	ToAddress   string
	Password    string
	Fee         decimal.Decimal
	Chain       mo.Option[string]
	ClientID    mo.Option[string]
}

type LightningWithdrawalRequest struct {
	Currency string
	Invoice  string
	Memo     mo.Option[string]
}

type WithdrawalHistoryRequest struct {
	Currency      mo.Option[string]
	TransactionID mo.Option[string]
	State         mo.Option[WithdrawalState]
	Page
}

type SavingActionRequest struct {
	Currency string
	Amount   decimal.Decimal
	Side     SavingActionSide
	Rate     mo.Option[decimal.Decimal]
}

type LendingRateRequest struct {
	Currency string
	Rate     decimal.Decimal
}

type LendingHistoryRequest struct {
	Currency mo.Option[string]
	Page
}

type PublicBorrowHistoryRequest struct {
	Currency mo.Option[string]
	Page
}

// NewClientID returns a client-assigned id accepted by the transfer and
// withdrawal endpoints (alphanumeric, 32 chars).
func NewClientID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
