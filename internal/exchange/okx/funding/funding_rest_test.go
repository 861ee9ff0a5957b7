package funding

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"

	"github.com/kingsmao/okx-funding-connector/internal/exchange/okx/rest"
	"github.com/kingsmao/okx-funding-connector/pkg/interfaces"
	"github.com/kingsmao/okx-funding-connector/pkg/schema"
)

type recordingTransport struct {
	mu    sync.Mutex
	calls []*interfaces.HTTPRequest
	body  string
}

func (r *recordingTransport) Do(ctx context.Context, req *interfaces.HTTPRequest) (*interfaces.HTTPResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, req)
	return &interfaces.HTTPResponse{StatusCode: http.StatusOK, Header: http.Header{}, Body: []byte(r.body)}, nil
}

func (r *recordingTransport) last(t *testing.T) *interfaces.HTTPRequest {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		t.Fatalf("no request was sent")
	}
	return r.calls[len(r.calls)-1]
}

const okOne = `{"code":"0","msg":"","data":[{}]}`

var creds = schema.Credentials{APIKey: "key", SecretKey: "secret", Passphrase: "pass"}

func newTestREST(body string) (*FundingREST, *recordingTransport) {
	rt := &recordingTransport{body: body}
	d := rest.NewDispatcher(rt, rest.WithSigner(rest.NewHMACSigner(creds)))
	return NewFundingREST(d), rt
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFundTransferBody(t *testing.T) {
	f, rt := newTestREST(`{"code":"0","msg":"","data":[{"transId":"754147","ccy":"BTC","clientId":"","from":"6","amt":"0.5","to":"18"}]}`)

	res, err := f.FundTransfer(context.Background(), schema.FundTransferRequest{
		Currency: "BTC",
		Amount:   dec("0.5"),
		Type:     schema.TransferWithinAccount,
		From:     schema.AccountFunding,
		To:       schema.AccountTrading,
	})
	if err != nil {
		t.Fatalf("FundTransfer: %v", err)
	}

	req := rt.last(t)
	if req.Method != http.MethodPost || req.Path != "/api/v5/asset/transfer" {
		t.Errorf("sent %s %s", req.Method, req.Path)
	}
	if string(req.Body) != `{"ccy":"BTC","amt":"0.5","type":"0","from":"6","to":"18"}` {
		t.Errorf("body = %s", req.Body)
	}
	if req.Header.Get(rest.HeaderAccessSign) == "" {
		t.Errorf("transfer must be signed")
	}

	data, ok := res.Data()
	if !ok {
		t.Fatalf("expected success: %v", res.Err())
	}
	if data.TransferID != "754147" || data.From != schema.AccountFunding || data.To != schema.AccountTrading {
		t.Errorf("unexpected data: %+v", data)
	}
}

func TestFundTransferOptionalFields(t *testing.T) {
	f, rt := newTestREST(okOne)
	_, err := f.FundTransfer(context.Background(), schema.FundTransferRequest{
		Currency:         "USDT",
		Amount:           dec("10"),
		Type:             schema.TransferMasterToSubAccount,
		From:             schema.AccountFunding,
		To:               schema.AccountMargin,
		SubAccount:       mo.Some("sub1"),
		FromInstrumentID: mo.Some("btc/usdt"),
		ToInstrumentID:   mo.Some("ETHUSDT"),
		ClientID:         mo.Some("abc123"),
	})
	if err != nil {
		t.Fatalf("FundTransfer: %v", err)
	}
	want := `{"ccy":"USDT","amt":"10","type":"1","from":"6","to":"5","subAcct":"sub1","instId":"BTC-USDT","toInstId":"ETH-USDT","clientId":"abc123"}`
	if got := string(rt.last(t).Body); got != want {
		t.Errorf("body = %s\nwant  %s", got, want)
	}
}

func TestFundTransferValidation(t *testing.T) {
	cases := map[string]schema.FundTransferRequest{
		"missing currency": {Amount: dec("1"), Type: schema.TransferWithinAccount, From: schema.AccountFunding, To: schema.AccountTrading},
		"zero amount":      {Currency: "BTC", Type: schema.TransferWithinAccount, From: schema.AccountFunding, To: schema.AccountTrading},
		"negative amount":  {Currency: "BTC", Amount: dec("-1"), Type: schema.TransferWithinAccount, From: schema.AccountFunding, To: schema.AccountTrading},
		"unset account":    {Currency: "BTC", Amount: dec("1"), Type: schema.TransferWithinAccount, From: schema.AccountFunding},
		"bad instrument":   {Currency: "BTC", Amount: dec("1"), Type: schema.TransferWithinAccount, From: schema.AccountFunding, To: schema.AccountMargin, FromInstrumentID: mo.Some("???")},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			f, rt := newTestREST(okOne)
			_, err := f.FundTransfer(context.Background(), req)
			if !errors.Is(err, schema.ErrInvalidArgument) {
				t.Fatalf("err = %v, want invalid argument", err)
			}
			if len(rt.calls) != 0 {
				t.Errorf("invalid request was dispatched")
			}
		})
	}
}

func TestPageLimitBounds(t *testing.T) {
	for _, limit := range []int{0, -1, 101} {
		f, rt := newTestREST(`{"code":"0","msg":"","data":[]}`)
		_, err := f.GetWithdrawalHistory(context.Background(), schema.WithdrawalHistoryRequest{
			Page: schema.Page{Limit: mo.Some(limit)},
		})
		if !errors.Is(err, schema.ErrInvalidArgument) {
			t.Errorf("limit %d: err = %v, want invalid argument", limit, err)
		}
		_, err = f.GetFundingBillDetails(context.Background(), schema.FundingBillsRequest{
			Page: schema.Page{Limit: mo.Some(limit)},
		})
		if !errors.Is(err, schema.ErrInvalidArgument) {
			t.Errorf("bills limit %d: err = %v, want invalid argument", limit, err)
		}
		if len(rt.calls) != 0 {
			t.Errorf("limit %d: request dispatched", limit)
		}
	}
}

func TestPageParams(t *testing.T) {
	f, rt := newTestREST(`{"code":"0","msg":"","data":[]}`)
	after := time.UnixMilli(1597026383085)

	res, err := f.GetDepositHistory(context.Background(), schema.DepositHistoryRequest{
		Currency: mo.Some("BTC"),
		State:    mo.Some(schema.DepositSuccessful),
		Page:     schema.Page{After: mo.Some(after), Limit: mo.Some(50)},
	})
	if err != nil {
		t.Fatalf("GetDepositHistory: %v", err)
	}
	if items, ok := res.Data(); !ok || items == nil {
		t.Errorf("want empty non-nil slice")
	}
	req := rt.last(t)
	if req.Method != http.MethodGet || req.Path != "/api/v5/asset/deposit-history" {
		t.Errorf("sent %s %s", req.Method, req.Path)
	}
	if req.Query != "ccy=BTC&state=2&after=1597026383085&limit=50" {
		t.Errorf("query = %q", req.Query)
	}
}

func TestPageDefaultLimit(t *testing.T) {
	f, rt := newTestREST(`{"code":"0","msg":"","data":[]}`)
	if _, err := f.GetFundingBillDetails(context.Background(), schema.FundingBillsRequest{}); err != nil {
		t.Fatalf("GetFundingBillDetails: %v", err)
	}
	if q := rt.last(t).Query; q != "limit=100" {
		t.Errorf("query = %q", q)
	}
}

func TestCurrencyListJoined(t *testing.T) {
	f, rt := newTestREST(`{"code":"0","msg":"","data":[]}`)
	if _, err := f.GetFundingBalance(context.Background(), "BTC", "ETH"); err != nil {
		t.Fatalf("GetFundingBalance: %v", err)
	}
	if q := rt.last(t).Query; q != "ccy=BTC%2CETH" {
		t.Errorf("query = %q", q)
	}

	if _, err := f.GetCurrencies(context.Background()); err != nil {
		t.Fatalf("GetCurrencies: %v", err)
	}
	if q := rt.last(t).Query; q != "" {
		t.Errorf("no filter expected, got %q", q)
	}
}

func TestSingleCurrencyEndpoints(t *testing.T) {
	f, rt := newTestREST(okOne)
	if _, err := f.GetAssetValuation(context.Background(), "BTC", "USDT"); !errors.Is(err, schema.ErrInvalidArgument) {
		t.Errorf("valuation with two currencies: err = %v", err)
	}
	if _, err := f.GetPublicBorrowInfo(context.Background(), "BTC", "USDT"); !errors.Is(err, schema.ErrInvalidArgument) {
		t.Errorf("borrow info with two currencies: err = %v", err)
	}
	if _, err := f.GetDepositAddress(context.Background(), ""); !errors.Is(err, schema.ErrInvalidArgument) {
		t.Errorf("deposit address without currency: err = %v", err)
	}
	if len(rt.calls) != 0 {
		t.Errorf("invalid requests were dispatched")
	}
}

func TestTransferStateNeedsOneID(t *testing.T) {
	f, rt := newTestREST(`{"code":"0","msg":"","data":[]}`)
	ctx := context.Background()

	if _, err := f.GetTransferState(ctx, schema.TransferStateRequest{}); !errors.Is(err, schema.ErrInvalidArgument) {
		t.Errorf("no id: err = %v", err)
	}
	both := schema.TransferStateRequest{TransferID: mo.Some("1"), ClientID: mo.Some("c")}
	if _, err := f.GetTransferState(ctx, both); !errors.Is(err, schema.ErrInvalidArgument) {
		t.Errorf("both ids: err = %v", err)
	}
	if len(rt.calls) != 0 {
		t.Fatalf("invalid requests were dispatched")
	}

	req := schema.TransferStateRequest{TransferID: mo.Some("754147"), Type: mo.Some(schema.TransferSubAccountToMaster)}
	if _, err := f.GetTransferState(ctx, req); err != nil {
		t.Fatalf("GetTransferState: %v", err)
	}
	if q := rt.last(t).Query; q != "transId=754147&type=2" {
		t.Errorf("query = %q", q)
	}
}

func TestWithdraw(t *testing.T) {
	f, rt := newTestREST(`{"code":"0","msg":"","data":[{"ccy":"USDT","chain":"USDT-TRC20","amt":"100","wdId":"67485","clientId":""}]}`)
	res, err := f.Withdraw(context.Background(), schema.WithdrawalRequest{
		Currency:    "USDT",
		Amount:      dec("100"),
		Destination: schema.WithdrawalDestinationOnChain,
		ToAddress:   "TXyz",
		Password:    "pwd",
		Fee:         dec("1"),
		Chain:       mo.Some("USDT-TRC20"),
	})
	if err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	want := `{"ccy":"USDT","amt":"100","dest":"4","toAddr":"TXyz","pwd":"pwd","fee":"1","chain":"USDT-TRC20"}`
	if got := string(rt.last(t).Body); got != want {
		t.Errorf("body = %s", got)
	}
	if data, ok := res.Data(); !ok || data.WithdrawalID != "67485" {
		t.Errorf("unexpected result: %+v", data)
	}

	_, err = f.Withdraw(context.Background(), schema.WithdrawalRequest{
		Currency: "USDT", Amount: dec("1"), Destination: schema.WithdrawalDestinationOKX, ToAddress: "a", Fee: dec("-0.1"),
	})
	if !errors.Is(err, schema.ErrInvalidArgument) {
		t.Errorf("negative fee: err = %v", err)
	}
}

func TestLightningEndpoints(t *testing.T) {
	f, rt := newTestREST(`{"code":"0","msg":"","data":[{"invoice":"lnbc1","cTime":"1631171307612"}]}`)
	res, err := f.GetLightningDeposits(context.Background(), schema.LightningDepositRequest{
		Currency: "BTC",
		Amount:   dec("0.001"),
		Account:  mo.Some(schema.LightningDepositFunding),
	})
	if err != nil {
		t.Fatalf("GetLightningDeposits: %v", err)
	}
	req := rt.last(t)
	if req.Method != http.MethodGet || req.Query != "ccy=BTC&amt=0.001&to=6" {
		t.Errorf("sent %s %s?%s", req.Method, req.Path, req.Query)
	}
	items, _ := res.Data()
	if len(items) != 1 || items[0].Invoice != "lnbc1" || items[0].CreateTime.UnixMilli() != 1631171307612 {
		t.Errorf("unexpected items: %+v", items)
	}

	_, err = f.GetLightningWithdrawals(context.Background(), schema.LightningWithdrawalRequest{Currency: "BTC", Invoice: "lnbc1", Memo: mo.Some("hi")})
	if err != nil {
		t.Fatalf("GetLightningWithdrawals: %v", err)
	}
	req = rt.last(t)
	if req.Method != http.MethodPost || req.Path != "/api/v5/asset/withdrawal-lightning" {
		t.Errorf("sent %s %s", req.Method, req.Path)
	}
	if string(req.Body) != `{"ccy":"BTC","invoice":"lnbc1","memo":"hi"}` {
		t.Errorf("body = %s", req.Body)
	}
}

func TestCancelWithdrawal(t *testing.T) {
	f, rt := newTestREST(`{"code":"0","msg":"","data":[{"wdId":"1123456"}]}`)
	res, err := f.CancelWithdrawal(context.Background(), "1123456")
	if err != nil {
		t.Fatalf("CancelWithdrawal: %v", err)
	}
	if string(rt.last(t).Body) != `{"wdId":"1123456"}` {
		t.Errorf("body = %s", rt.last(t).Body)
	}
	if data, _ := res.Data(); data.WithdrawalID != "1123456" {
		t.Errorf("wdId = %q", data.WithdrawalID)
	}
}

func TestConvertDustAssets(t *testing.T) {
	f, rt := newTestREST(`{"code":"0","msg":"","data":[{"totalCnvAmt":"0.002","details":[{"ccy":"ADA","amt":"0.2","cnvAmt":"0.002","fee":"0"}]}]}`)
	res, err := f.ConvertDustAssets(context.Background(), []string{"ADA", "DOGE"})
	if err != nil {
		t.Fatalf("ConvertDustAssets: %v", err)
	}
	if string(rt.last(t).Body) != `{"ccy":["ADA","DOGE"]}` {
		t.Errorf("body = %s", rt.last(t).Body)
	}
	data, _ := res.Data()
	if len(data.Details) != 1 || data.Details[0].Currency != "ADA" {
		t.Errorf("unexpected details: %+v", data)
	}

	if _, err := f.ConvertDustAssets(context.Background(), nil); !errors.Is(err, schema.ErrInvalidArgument) {
		t.Errorf("empty list: err = %v", err)
	}
}

func TestSavingPurchaseRedemption(t *testing.T) {
	f, rt := newTestREST(`{"code":"0","msg":"","data":[{"ccy":"USDT","amt":"1","side":"purchase","rate":"0.02"}]}`)
	res, err := f.SavingPurchaseRedemption(context.Background(), schema.SavingActionRequest{
		Currency: "USDT",
		Amount:   dec("1"),
		Side:     schema.SavingPurchase,
		Rate:     mo.Some(dec("0.02")),
	})
	if err != nil {
		t.Fatalf("SavingPurchaseRedemption: %v", err)
	}
	if string(rt.last(t).Body) != `{"ccy":"USDT","amt":"1","side":"purchase","rate":"0.02"}` {
		t.Errorf("body = %s", rt.last(t).Body)
	}
	if data, _ := res.Data(); data.Side != schema.SavingPurchase {
		t.Errorf("side = %v", data.Side)
	}
}

func TestLendingRateBounds(t *testing.T) {
	for _, rate := range []string{"0.009", "3.66", "0"} {
		f, rt := newTestREST(okOne)
		_, err := f.SetLendingRate(context.Background(), schema.LendingRateRequest{Currency: "USDT", Rate: dec(rate)})
		if !errors.Is(err, schema.ErrInvalidArgument) {
			t.Errorf("rate %s: err = %v", rate, err)
		}
		if len(rt.calls) != 0 {
			t.Errorf("rate %s: dispatched", rate)
		}
	}

	for _, rate := range []string{"0.01", "3.65"} {
		f, rt := newTestREST(okOne)
		if _, err := f.SetLendingRate(context.Background(), schema.LendingRateRequest{Currency: "USDT", Rate: dec(rate)}); err != nil {
			t.Errorf("rate %s: %v", rate, err)
			continue
		}
		if want := `{"ccy":"USDT","rate":"` + rate + `"}`; string(rt.last(t).Body) != want {
			t.Errorf("body = %s", rt.last(t).Body)
		}
	}

	f, _ := newTestREST(okOne)
	_, err := f.SavingPurchaseRedemption(context.Background(), schema.SavingActionRequest{
		Currency: "USDT", Amount: dec("1"), Side: schema.SavingPurchase, Rate: mo.Some(dec("5")),
	})
	if !errors.Is(err, schema.ErrInvalidArgument) {
		t.Errorf("purchase rate out of range: err = %v", err)
	}
}

func TestPublicEndpointsUnsigned(t *testing.T) {
	rt := &recordingTransport{body: `{"code":"0","msg":"","data":[{"ccy":"USDT","avgAmt":"1000","avgRate":"0.04","preRate":"0.05","estRate":"0.04","avgAmtUsd":"1000"}]}`}
	f := NewFundingREST(rest.NewDispatcher(rt))

	res, err := f.GetPublicBorrowInfo(context.Background(), "USDT")
	if err != nil {
		t.Fatalf("GetPublicBorrowInfo: %v", err)
	}
	req := rt.last(t)
	if req.Header.Get(rest.HeaderAccessSign) != "" || req.Header.Get(rest.HeaderAccessKey) != "" {
		t.Errorf("public endpoint was signed")
	}
	if req.Path != "/api/v5/asset/lending-rate-summary" || req.Query != "ccy=USDT" {
		t.Errorf("sent %s?%s", req.Path, req.Query)
	}
	if items, _ := res.Data(); len(items) != 1 || items[0].AverageRate.String() != "0.04" {
		t.Errorf("unexpected items: %+v", items)
	}

	if _, err := f.GetPublicBorrowHistory(context.Background(), schema.PublicBorrowHistoryRequest{Currency: mo.Some("USDT")}); err != nil {
		t.Fatalf("GetPublicBorrowHistory: %v", err)
	}
	if q := rt.last(t).Query; q != "ccy=USDT&limit=100" {
		t.Errorf("query = %q", q)
	}

	// 私有接口没有签名器时本地报错
	if _, err := f.GetSavingBalances(context.Background()); !errors.Is(err, schema.ErrInvalidArgument) {
		t.Errorf("private call without signer: err = %v", err)
	}
}

func TestEndpointCatalog(t *testing.T) {
	f, rt := newTestREST(okOne)
	ctx := context.Background()
	page := schema.Page{}

	type call struct {
		name   string
		method string
		path   string
		run    func() error
	}
	calls := []call{
		{"currencies", http.MethodGet, apiV5AssetCurrencies, func() error { _, err := f.GetCurrencies(ctx); return err }},
		{"balances", http.MethodGet, apiV5AssetBalances, func() error { _, err := f.GetFundingBalance(ctx); return err }},
		{"valuation", http.MethodGet, apiV5AssetValuation, func() error { _, err := f.GetAssetValuation(ctx); return err }},
		{"bills", http.MethodGet, apiV5AssetBills, func() error {
			_, err := f.GetFundingBillDetails(ctx, schema.FundingBillsRequest{Page: page})
			return err
		}},
		{"deposit address", http.MethodGet, apiV5AssetDepositAddress, func() error { _, err := f.GetDepositAddress(ctx, "BTC"); return err }},
		{"withdrawal history", http.MethodGet, apiV5AssetWithdrawalHistory, func() error {
			_, err := f.GetWithdrawalHistory(ctx, schema.WithdrawalHistoryRequest{})
			return err
		}},
		{"saving balance", http.MethodGet, apiV5AssetSavingBalance, func() error { _, err := f.GetSavingBalances(ctx, "USDT"); return err }},
		{"lending history", http.MethodGet, apiV5AssetLendingHistory, func() error {
			_, err := f.GetLendingHistory(ctx, schema.LendingHistoryRequest{})
			return err
		}},
		{"redeem", http.MethodPost, apiV5AssetPurchaseRedempt, func() error {
			_, err := f.SavingPurchaseRedemption(ctx, schema.SavingActionRequest{Currency: "USDT", Amount: dec("1"), Side: schema.SavingRedempt})
			return err
		}},
	}
	for _, c := range calls {
		if err := c.run(); err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		req := rt.last(t)
		if req.Method != c.method || req.Path != c.path {
			t.Errorf("%s: sent %s %s, want %s %s", c.name, req.Method, req.Path, c.method, c.path)
		}
		if req.Header.Get(rest.HeaderAccessSign) == "" {
			t.Errorf("%s: private endpoint not signed", c.name)
		}
	}
}

func TestApplicationErrorSurfacesInResult(t *testing.T) {
	f, _ := newTestREST(`{"code":"58117","msg":"Account assets are abnormal","data":[]}`)
	res, err := f.Withdraw(context.Background(), schema.WithdrawalRequest{
		Currency: "BTC", Amount: dec("1"), Destination: schema.WithdrawalDestinationOKX, ToAddress: "a@b.c", Fee: dec("0"),
	})
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	apiErr, ok := res.Failure()
	if !ok || apiErr.Code != "58117" {
		t.Errorf("expected api failure, got %+v", res)
	}
}

func TestOverHTTP(t *testing.T) {
	var gotMethod, gotURI, gotBody, gotDemo string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotURI = r.URL.RequestURI()
		gotDemo = r.Header.Get(rest.HeaderSimulatedTrading)
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = w.Write([]byte(`{"code":"0","msg":"","data":[{"totalBal":"1.5","ts":"1597026383085","details":{"funding":"0.5","trading":"1","classic":"","earn":"0"}}]}`))
	}))
	defer srv.Close()

	d := rest.NewDispatcher(
		rest.NewRestyTransport(resty.New().SetBaseURL(srv.URL)),
		rest.WithSigner(rest.NewHMACSigner(creds)),
		rest.WithDemoTrading(true),
	)
	f := NewFundingREST(d)

	res, err := f.GetAssetValuation(context.Background(), "USDT")
	if err != nil {
		t.Fatalf("GetAssetValuation: %v", err)
	}
	if gotMethod != http.MethodGet || gotURI != "/api/v5/asset/asset-valuation?ccy=USDT" {
		t.Errorf("server saw %s %s", gotMethod, gotURI)
	}
	if gotBody != "" {
		t.Errorf("body = %q", gotBody)
	}
	if gotDemo != "1" {
		t.Errorf("demo header = %q", gotDemo)
	}
	items, _ := res.Data()
	if len(items) != 1 || items[0].TotalBalance.String() != "1.5" || items[0].Details.Trading.String() != "1" {
		t.Errorf("unexpected items: %+v", items)
	}
	if !items[0].Time.Equal(time.UnixMilli(1597026383085)) {
		t.Errorf("ts = %v", items[0].Time)
	}
}

func TestFailedCallsAreNotOK(t *testing.T) {
	f, rt := newTestREST(`{"code":"0","msg":"","data":[]}`)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	balances, err := f.GetFundingBalance(cancelled)
	if !errors.Is(err, schema.ErrCancelled) {
		t.Fatalf("err = %v, want cancelled", err)
	}
	if balances.OK() {
		t.Errorf("cancelled call reported success")
	}
	if items, ok := balances.Data(); ok || items != nil {
		t.Errorf("cancelled call carried data %v", items)
	}

	bills, err := f.GetFundingBillDetails(context.Background(), schema.FundingBillsRequest{
		Page: schema.Page{Limit: mo.Some(0)},
	})
	if !errors.Is(err, schema.ErrInvalidArgument) {
		t.Fatalf("err = %v, want invalid argument", err)
	}
	if bills.OK() {
		t.Errorf("rejected call reported success")
	}

	transfer, err := f.FundTransfer(context.Background(), schema.FundTransferRequest{Currency: "BTC"})
	if !errors.Is(err, schema.ErrInvalidArgument) {
		t.Fatalf("err = %v, want invalid argument", err)
	}
	if transfer.OK() {
		t.Errorf("rejected transfer reported success")
	}
	if len(rt.calls) != 0 {
		t.Errorf("failed calls reached the transport")
	}
}

func TestUnknownBillTypeFailsPage(t *testing.T) {
	f, _ := newTestREST(`{"code":"0","msg":"","data":[{"billId":"1","ccy":"BTC","balChg":"1","bal":"1","type":"1","ts":"1597026383085"},{"billId":"2","ccy":"BTC","balChg":"1","bal":"2","type":"150","ts":"1597026383085"}]}`)
	res, err := f.GetFundingBillDetails(context.Background(), schema.FundingBillsRequest{})
	if !errors.Is(err, schema.ErrMalformedResponse) || !errors.Is(err, schema.ErrTransport) {
		t.Fatalf("err = %v, want malformed transport error", err)
	}
	if res.OK() {
		t.Errorf("partial page must not be returned")
	}
}
