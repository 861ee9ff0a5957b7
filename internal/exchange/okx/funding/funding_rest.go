package funding

import (
	"context"
	"fmt"

	"github.com/samber/mo"

	"github.com/kingsmao/okx-funding-connector/internal/exchange/okx/rest"
	"github.com/kingsmao/okx-funding-connector/pkg/interfaces"
	"github.com/kingsmao/okx-funding-connector/pkg/schema"
)

var _ interfaces.FundingClient = (*FundingREST)(nil)

// FundingREST implements the OKX funding (asset) REST endpoints.
type FundingREST struct{ d *rest.Dispatcher }

func NewFundingREST(d *rest.Dispatcher) *FundingREST {
	return &FundingREST{d: d}
}

// GetCurrencies lists currencies and their chains. Not all currencies can be
// traded.
func (f *FundingREST) GetCurrencies(ctx context.Context, currency ...string) (schema.Result[[]schema.Currency], error) {
	p := rest.NewParams().SetJoined("ccy", currency)
	return rest.SendList[schema.Currency](ctx, f.d, epCurrencies, p)
}

// GetFundingBalance returns funding account balances, optionally filtered by
// one or more currencies.
func (f *FundingREST) GetFundingBalance(ctx context.Context, currency ...string) (schema.Result[[]schema.FundingBalance], error) {
	p := rest.NewParams().SetJoined("ccy", currency)
	return rest.SendList[schema.FundingBalance](ctx, f.d, epBalances, p)
}

// GetAssetValuation valuates all assets, denominated in currency (default BTC).
func (f *FundingREST) GetAssetValuation(ctx context.Context, currency ...string) (schema.Result[[]schema.AssetValuation], error) {
	if len(currency) > 1 {
		return schema.Result[[]schema.AssetValuation]{}, schema.NewArgumentError("ccy", "takes a single valuation currency")
	}
	p := rest.NewParams().SetJoined("ccy", currency)
	return rest.SendList[schema.AssetValuation](ctx, f.d, epAssetValuation, p)
}

// FundTransfer moves funds between funding and trading accounts, or between
// master and sub-accounts.
func (f *FundingREST) FundTransfer(ctx context.Context, req schema.FundTransferRequest) (schema.Result[schema.TransferResponse], error) {
	var zero schema.Result[schema.TransferResponse]
	if err := requireString("ccy", req.Currency); err != nil {
		return zero, err
	}
	if err := requirePositive("amt", req.Amount); err != nil {
		return zero, err
	}

	fromInst, err := optionalInstrument("instId", req.FromInstrumentID)
	if err != nil {
		return zero, err
	}
	toInst, err := optionalInstrument("toInstId", req.ToInstrumentID)
	if err != nil {
		return zero, err
	}

	p := rest.NewParams().
		Set("ccy", req.Currency).
		Set("amt", req.Amount).
		Set("type", req.Type).
		Set("from", req.From).
		Set("to", req.To)
	rest.SetOptional(p, "subAcct", req.SubAccount)
	rest.SetOptional(p, "instId", fromInst)
	rest.SetOptional(p, "toInstId", toInst)
	rest.SetOptional(p, "clientId", req.ClientID)

	return rest.SendSingle[schema.TransferResponse](ctx, f.d, epTransfer, p)
}

// GetTransferState queries a transfer by transfer id or client id.
func (f *FundingREST) GetTransferState(ctx context.Context, req schema.TransferStateRequest) (schema.Result[[]schema.TransferStatus], error) {
	if req.TransferID.IsPresent() == req.ClientID.IsPresent() {
		return schema.Result[[]schema.TransferStatus]{}, schema.NewArgumentError("transId", "exactly one of transId or clientId is required")
	}
	p := rest.NewParams()
	rest.SetOptional(p, "transId", req.TransferID)
	rest.SetOptional(p, "clientId", req.ClientID)
	rest.SetOptional(p, "type", req.Type)
	return rest.SendList[schema.TransferStatus](ctx, f.d, epTransferState, p)
}

// GetFundingBillDetails queries funding bills of the last month.
func (f *FundingREST) GetFundingBillDetails(ctx context.Context, req schema.FundingBillsRequest) (schema.Result[[]schema.FundingBill], error) {
	p := rest.NewParams()
	rest.SetOptional(p, "ccy", req.Currency)
	rest.SetOptional(p, "type", req.Type)
	if err := setPage(p, req.Page); err != nil {
		return schema.Result[[]schema.FundingBill]{}, err
	}
	return rest.SendList[schema.FundingBill](ctx, f.d, epBills, p)
}

// GetLightningDeposits creates lightning invoices; up to 10,000 per 24h.
func (f *FundingREST) GetLightningDeposits(ctx context.Context, req schema.LightningDepositRequest) (schema.Result[[]schema.LightningDeposit], error) {
	var zero schema.Result[[]schema.LightningDeposit]
	if err := requireString("ccy", req.Currency); err != nil {
		return zero, err
	}
	if err := requirePositive("amt", req.Amount); err != nil {
		return zero, err
	}
	p := rest.NewParams().
		Set("ccy", req.Currency).
		Set("amt", req.Amount)
	rest.SetOptional(p, "to", req.Account)
	return rest.SendList[schema.LightningDeposit](ctx, f.d, epDepositLightning, p)
}

// GetDepositAddress lists deposit addresses of currency, including used ones.
func (f *FundingREST) GetDepositAddress(ctx context.Context, currency string) (schema.Result[[]schema.DepositAddress], error) {
	if err := requireString("ccy", currency); err != nil {
		return schema.Result[[]schema.DepositAddress]{}, err
	}
	p := rest.NewParams().Set("ccy", currency)
	return rest.SendList[schema.DepositAddress](ctx, f.d, epDepositAddress, p)
}

// GetDepositHistory returns deposit records in reverse chronological order.
func (f *FundingREST) GetDepositHistory(ctx context.Context, req schema.DepositHistoryRequest) (schema.Result[[]schema.DepositHistory], error) {
	p := rest.NewParams()
	rest.SetOptional(p, "ccy", req.Currency)
	rest.SetOptional(p, "txId", req.TransactionID)
	rest.SetOptional(p, "state", req.State)
	if err := setPage(p, req.Page); err != nil {
		return schema.Result[[]schema.DepositHistory]{}, err
	}
	return rest.SendList[schema.DepositHistory](ctx, f.d, epDepositHistory, p)
}

// Withdraw withdraws tokens on chain or to another OKX account.
func (f *FundingREST) Withdraw(ctx context.Context, req schema.WithdrawalRequest) (schema.Result[schema.WithdrawalResponse], error) {
	var zero schema.Result[schema.WithdrawalResponse]
	if err := requireString("ccy", req.Currency); err != nil {
		return zero, err
	}
	if err := requirePositive("amt", req.Amount); err != nil {
		return zero, err
	}
	if err := requireString("toAddr", req.ToAddress); err != nil {
		return zero, err
	}
	if err := requireNonNegative("fee", req.Fee); err != nil {
		return zero, err
	}

	p := rest.NewParams().
		Set("ccy", req.Currency).
		Set("amt", req.Amount).
		Set("dest", req.Destination).
		Set("toAddr", req.ToAddress).
		Set("pwd", req.Password).
		Set("fee", req.Fee)
	rest.SetOptional(p, "chain", req.Chain)
	rest.SetOptional(p, "clientId", req.ClientID)

	return rest.SendSingle[schema.WithdrawalResponse](ctx, f.d, epWithdrawal, p)
}

// GetLightningWithdrawals pays a lightning invoice. Sub-accounts cannot
// withdraw.
func (f *FundingREST) GetLightningWithdrawals(ctx context.Context, req schema.LightningWithdrawalRequest) (schema.Result[schema.LightningWithdrawal], error) {
	var zero schema.Result[schema.LightningWithdrawal]
	if err := requireString("ccy", req.Currency); err != nil {
		return zero, err
	}
	if err := requireString("invoice", req.Invoice); err != nil {
		return zero, err
	}
	p := rest.NewParams().
		Set("ccy", req.Currency).
		Set("invoice", req.Invoice)
	rest.SetOptional(p, "memo", req.Memo)
	return rest.SendSingle[schema.LightningWithdrawal](ctx, f.d, epWithdrawalLightning, p)
}

// CancelWithdrawal cancels a normal withdrawal; lightning withdrawals cannot be
// cancelled.
func (f *FundingREST) CancelWithdrawal(ctx context.Context, withdrawalID string) (schema.Result[schema.WithdrawalID], error) {
	if err := requireString("wdId", withdrawalID); err != nil {
		return schema.Result[schema.WithdrawalID]{}, err
	}
	p := rest.NewParams().Set("wdId", withdrawalID)
	return rest.SendSingle[schema.WithdrawalID](ctx, f.d, epCancelWithdrawal, p)
}

// GetWithdrawalHistory returns withdrawal records in reverse chronological
// order.
func (f *FundingREST) GetWithdrawalHistory(ctx context.Context, req schema.WithdrawalHistoryRequest) (schema.Result[[]schema.WithdrawalHistory], error) {
	p := rest.NewParams()
	rest.SetOptional(p, "ccy", req.Currency)
	rest.SetOptional(p, "txId", req.TransactionID)
	rest.SetOptional(p, "state", req.State)
	if err := setPage(p, req.Page); err != nil {
		return schema.Result[[]schema.WithdrawalHistory]{}, err
	}
	return rest.SendList[schema.WithdrawalHistory](ctx, f.d, epWithdrawalHistory, p)
}

// ConvertDustAssets converts small balances into OKB.
func (f *FundingREST) ConvertDustAssets(ctx context.Context, currencies []string) (schema.Result[schema.DustConversion], error) {
	if len(currencies) == 0 {
		return schema.Result[schema.DustConversion]{}, schema.NewArgumentError("ccy", "at least one currency is required")
	}
	for i, c := range currencies {
		if err := requireString(fmt.Sprintf("ccy[%d]", i), c); err != nil {
			return schema.Result[schema.DustConversion]{}, err
		}
	}
	p := rest.NewParams().Set("ccy", currencies)
	return rest.SendSingle[schema.DustConversion](ctx, f.d, epConvertDustAssets, p)
}

// GetSavingBalances returns savings balances. Only funding account assets can
// be saved.
func (f *FundingREST) GetSavingBalances(ctx context.Context, currency ...string) (schema.Result[[]schema.SavingBalance], error) {
	p := rest.NewParams().SetJoined("ccy", currency)
	return rest.SendList[schema.SavingBalance](ctx, f.d, epSavingBalance, p)
}

// SavingPurchaseRedemption subscribes to or redeems from savings. Rate only
// applies to purchases.
func (f *FundingREST) SavingPurchaseRedemption(ctx context.Context, req schema.SavingActionRequest) (schema.Result[schema.SavingActionResponse], error) {
	var zero schema.Result[schema.SavingActionResponse]
	if err := requireString("ccy", req.Currency); err != nil {
		return zero, err
	}
	if err := requirePositive("amt", req.Amount); err != nil {
		return zero, err
	}
	if rate, ok := req.Rate.Get(); ok {
		if err := requireRate("rate", rate); err != nil {
			return zero, err
		}
	}

	p := rest.NewParams().
		Set("ccy", req.Currency).
		Set("amt", req.Amount).
		Set("side", req.Side)
	rest.SetOptional(p, "rate", req.Rate)
	return rest.SendSingle[schema.SavingActionResponse](ctx, f.d, epPurchaseRedempt, p)
}

func (f *FundingREST) SetLendingRate(ctx context.Context, req schema.LendingRateRequest) (schema.Result[schema.LendingRateResponse], error) {
	var zero schema.Result[schema.LendingRateResponse]
	if err := requireString("ccy", req.Currency); err != nil {
		return zero, err
	}
	if err := requireRate("rate", req.Rate); err != nil {
		return zero, err
	}
	p := rest.NewParams().
		Set("ccy", req.Currency).
		Set("rate", req.Rate)
	return rest.SendSingle[schema.LendingRateResponse](ctx, f.d, epSetLendingRate, p)
}

// GetLendingHistory returns lending records of the last month.
func (f *FundingREST) GetLendingHistory(ctx context.Context, req schema.LendingHistoryRequest) (schema.Result[[]schema.LendingHistory], error) {
	p := rest.NewParams()
	rest.SetOptional(p, "ccy", req.Currency)
	if err := setPage(p, req.Page); err != nil {
		return schema.Result[[]schema.LendingHistory]{}, err
	}
	return rest.SendList[schema.LendingHistory](ctx, f.d, epLendingHistory, p)
}

// GetPublicBorrowInfo is a public market summary, sent unsigned.
func (f *FundingREST) GetPublicBorrowInfo(ctx context.Context, currency ...string) (schema.Result[[]schema.PublicBorrowInfo], error) {
	if len(currency) > 1 {
		return schema.Result[[]schema.PublicBorrowInfo]{}, schema.NewArgumentError("ccy", "takes a single currency")
	}
	p := rest.NewParams().SetJoined("ccy", currency)
	return rest.SendList[schema.PublicBorrowInfo](ctx, f.d, epLendingRateSummary, p)
}

func (f *FundingREST) GetPublicBorrowHistory(ctx context.Context, req schema.PublicBorrowHistoryRequest) (schema.Result[[]schema.PublicBorrowHistory], error) {
	p := rest.NewParams()
	rest.SetOptional(p, "ccy", req.Currency)
	if err := setPage(p, req.Page); err != nil {
		return schema.Result[[]schema.PublicBorrowHistory]{}, err
	}
	return rest.SendList[schema.PublicBorrowHistory](ctx, f.d, epLendingRateHistory, p)
}

func optionalInstrument(name string, v mo.Option[string]) (mo.Option[string], error) {
	raw, ok := v.Get()
	if !ok {
		return v, nil
	}
	id, err := schema.InstrumentID(raw)
	if err != nil {
		return mo.None[string](), schema.NewArgumentError(name, "%v", err)
	}
	return mo.Some(id), nil
}
