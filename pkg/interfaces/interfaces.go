package interfaces

import (
	"context"
	"net/http"
	"time"

	"github.com/kingsmao/okx-funding-connector/pkg/schema"
)

// HTTPRequest is what the dispatcher hands to a Transport. Query is already
// encoded in parameter order and is part of the signed request path.
type HTTPRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// RequestPath returns path plus "?query" when a query is present.
func (r *HTTPRequest) RequestPath() string {
	if r.Query == "" {
		return r.Path
	}
	return r.Path + "?" + r.Query
}

// HTTPResponse is the raw answer from a Transport.
type HTTPResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport issues one HTTP exchange. Implementations must honour ctx.
type Transport interface {
	Do(ctx context.Context, req *HTTPRequest) (*HTTPResponse, error)
}

// Signer attaches authentication headers to a request before it is sent.
type Signer interface {
	Authenticate(req *HTTPRequest, now time.Time) error
}

// FundingClient defines the OKX funding (asset) REST APIs.
type FundingClient interface {
	GetCurrencies(ctx context.Context, currency ...string) (schema.Result[[]schema.Currency], error)
	GetFundingBalance(ctx context.Context, currency ...string) (schema.Result[[]schema.FundingBalance], error)
	GetAssetValuation(ctx context.Context, currency ...string) (schema.Result[[]schema.AssetValuation], error)

	FundTransfer(ctx context.Context, req schema.FundTransferRequest) (schema.Result[schema.TransferResponse], error)
	GetTransferState(ctx context.Context, req schema.TransferStateRequest) (schema.Result[[]schema.TransferStatus], error)
	GetFundingBillDetails(ctx context.Context, req schema.FundingBillsRequest) (schema.Result[[]schema.FundingBill], error)

	GetLightningDeposits(ctx context.Context, req schema.LightningDepositRequest) (schema.Result[[]schema.LightningDeposit], error)
	GetDepositAddress(ctx context.Context, currency string) (schema.Result[[]schema.DepositAddress], error)
	GetDepositHistory(ctx context.Context, req schema.DepositHistoryRequest) (schema.Result[[]schema.DepositHistory], error)

	Withdraw(ctx context.Context, req schema.WithdrawalRequest) (schema.Result[schema.WithdrawalResponse], error)
	GetLightningWithdrawals(ctx context.Context, req schema.LightningWithdrawalRequest) (schema.Result[schema.LightningWithdrawal], error)
	CancelWithdrawal(ctx context.Context, withdrawalID string) (schema.Result[schema.WithdrawalID], error)
	GetWithdrawalHistory(ctx context.Context, req schema.WithdrawalHistoryRequest) (schema.Result[[]schema.WithdrawalHistory], error)

	ConvertDustAssets(ctx context.Context, currencies []string) (schema.Result[schema.DustConversion], error)

	// 余币宝
	GetSavingBalances(ctx context.Context, currency ...string) (schema.Result[[]schema.SavingBalance], error)
	SavingPurchaseRedemption(ctx context.Context, req schema.SavingActionRequest) (schema.Result[schema.SavingActionResponse], error)
	SetLendingRate(ctx context.Context, req schema.LendingRateRequest) (schema.Result[schema.LendingRateResponse], error)
	GetLendingHistory(ctx context.Context, req schema.LendingHistoryRequest) (schema.Result[[]schema.LendingHistory], error)

	// Public endpoints, sent without credentials.
	GetPublicBorrowInfo(ctx context.Context, currency ...string) (schema.Result[[]schema.PublicBorrowInfo], error)
	GetPublicBorrowHistory(ctx context.Context, req schema.PublicBorrowHistoryRequest) (schema.Result[[]schema.PublicBorrowHistory], error)
}
