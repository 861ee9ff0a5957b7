package schema

// OKX funding (asset) API response models.

// Currency represents one currency/chain pair from /api/v5/asset/currencies.
type Currency struct {
	Currency             string `json:"ccy"`
	Name                 string `json:"name"`
	LogoLink             string `json:"logoLink"`
	Chain                string `json:"chain"`
	CanDeposit           bool   `json:"canDep"`
	CanWithdraw          bool   `json:"canWd"`
	CanInternal          bool   `json:"canInternal"`
	MinDeposit           Amount `json:"minDep"`
	MinWithdrawal        Amount `json:"minWd"`
	MaxWithdrawal        Amount `json:"maxWd"`
	WithdrawalTickSize   string `json:"wdTickSz"`
	WithdrawalQuota      Amount `json:"wdQuota"`
	UsedWithdrawalQuota  Amount `json:"usedWdQuota"`
	MinFee               Amount `json:"minFee"`
	MaxFee               Amount `json:"maxFee"`
	MainNet              bool   `json:"mainNet"`
	NeedTag              bool   `json:"needTag"`
	MinDepositConfirm    string `json:"minDepArrivalConfirm"`
	MinWithdrawalConfirm string `json:"minWdUnlockConfirm"`
}

// FundingBalance 资金账户余额
type FundingBalance struct {
	Currency         string `json:"ccy"`
	Balance          Amount `json:"bal"`
	FrozenBalance    Amount `json:"frozenBal"`
	AvailableBalance Amount `json:"availBal"`
}

type AssetValuation struct {
	TotalBalance Amount                `json:"totalBal"`
	Time         Millis                `json:"ts"`
	Details      AssetValuationDetails `json:"details"`
}

type AssetValuationDetails struct {
	Funding Amount `json:"funding"`
	Trading Amount `json:"trading"`
	Classic Amount `json:"classic"`
	Earn    Amount `json:"earn"`
}

// TransferResponse is the receipt of a fund transfer.
type TransferResponse struct {
	TransferID string  `json:"transId"`
	ClientID   string  `json:"clientId"`
	Currency   string  `json:"ccy"`
	Amount     Amount  `json:"amt"`
	From       Account `json:"from"`
	To         Account `json:"to"`
}

type TransferStatus struct {
	TransferID       string        `json:"transId"`
	ClientID         string        `json:"clientId"`
	Currency         string        `json:"ccy"`
	Amount           Amount        `json:"amt"`
	Type             TransferType  `json:"type"`
	From             Account       `json:"from"`
	To               Account       `json:"to"`
	SubAccount       string        `json:"subAcct"`
	FromInstrumentID string        `json:"instId"`
	ToInstrumentID   string        `json:"toInstId"`
	State            TransferState `json:"state"`
}

// FundingBill 资金流水
type FundingBill struct {
	BillID        string          `json:"billId"`
	Currency      string          `json:"ccy"`
	BalanceChange Amount          `json:"balChg"`
	Balance       Amount          `json:"bal"`
	Type          FundingBillType `json:"type"`
	Time          Millis          `json:"ts"`
}

type LightningDeposit struct {
	CreateTime Millis `json:"cTime"`
	Invoice    string `json:"invoice"`
}

type DepositAddress struct {
	Address         string  `json:"addr"`
	Tag             string  `json:"tag"`
	Memo            string  `json:"memo"`
	PaymentID       string  `json:"pmtId"`
	Currency        string  `json:"ccy"`
	Chain           string  `json:"chain"`
	To              Account `json:"to"`
	Selected        bool    `json:"selected"`
	ContractAddress string  `json:"ctAddr"`
}

// DepositHistory 充值记录
type DepositHistory struct {
	Currency      string       `json:"ccy"`
	Chain         string       `json:"chain"`
	Amount        Amount       `json:"amt"`
	From          string       `json:"from"`
	To            string       `json:"to"`
	TransactionID string       `json:"txId"`
	Time          Millis       `json:"ts"`
	State         DepositState `json:"state"`
	DepositID     string       `json:"depId"`
	Confirmations string       `json:"actualDepBlkConfirm"`
}

type WithdrawalResponse struct {
	Currency     string `json:"ccy"`
	Chain        string `json:"chain"`
	Amount       Amount `json:"amt"`
	WithdrawalID string `json:"wdId"`
	ClientID     string `json:"clientId"`
}

type LightningWithdrawal struct {
	WithdrawalID string `json:"wdId"`
	CreateTime   Millis `json:"cTime"`
}

type WithdrawalID struct {
	WithdrawalID string `json:"wdId"`
}

// WithdrawalHistory 提币记录
type WithdrawalHistory struct {
	Currency      string          `json:"ccy"`
	Chain         string          `json:"chain"`
	Amount        Amount          `json:"amt"`
	Time          Millis          `json:"ts"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	Tag           string          `json:"tag"`
	PaymentID     string          `json:"pmtId"`
	Memo          string          `json:"memo"`
	TransactionID string          `json:"txId"`
	Fee           Amount          `json:"fee"`
	State         WithdrawalState `json:"state"`
	WithdrawalID  string          `json:"wdId"`
	ClientID      string          `json:"clientId"`
}

type DustConversion struct {
	TotalConvertedAmount Amount                 `json:"totalCnvAmt"`
	Details              []DustConversionDetail `json:"details"`
}

type DustConversionDetail struct {
	Currency        string `json:"ccy"`
	Amount          Amount `json:"amt"`
	ConvertedAmount Amount `json:"cnvAmt"`
	Fee             Amount `json:"fee"`
}

// SavingBalance 余币宝余额
type SavingBalance struct {
	Currency         string `json:"ccy"`
	Amount           Amount `json:"amt"`
	Earnings         Amount `json:"earnings"`
	Rate             Amount `json:"rate"`
	LoanAmount       Amount `json:"loanAmt"`
	PendingAmount    Amount `json:"pendingAmt"`
	RedemptionAmount Amount `json:"redemptAmt"`
}

type SavingActionResponse struct {
	Currency string           `json:"ccy"`
	Amount   Amount           `json:"amt"`
	Side     SavingActionSide `json:"side"`
	Rate     Amount           `json:"rate"`
}

type LendingRateResponse struct {
	Currency string `json:"ccy"`
	Rate     Amount `json:"rate"`
}

type LendingHistory struct {
	Currency string `json:"ccy"`
	Amount   Amount `json:"amt"`
	Earnings Amount `json:"earnings"`
	Rate     Amount `json:"rate"`
	Time     Millis `json:"ts"`
}

// PublicBorrowInfo 市场借贷信息（公共）
type PublicBorrowInfo struct {
	Currency         string `json:"ccy"`
	AverageAmount    Amount `json:"avgAmt"`
	AverageAmountUSD Amount `json:"avgAmtUsd"`
	AverageRate      Amount `json:"avgRate"`
	PreviousRate     Amount `json:"preRate"`
	EstimatedRate    Amount `json:"estRate"`
}

type PublicBorrowHistory struct {
	Currency string `json:"ccy"`
	Amount   Amount `json:"amt"`
	Rate     Amount `json:"rate"`
	Time     Millis `json:"ts"`
}
