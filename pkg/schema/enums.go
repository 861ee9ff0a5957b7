package schema

import (
	"fmt"
)

// WireEncoder is implemented by every enum that travels in a request.
type WireEncoder interface {
	Encode() (string, error)
}

type enumPair[E ~int] struct {
	value E
	token string
}

// enumCodec holds one enum's value <-> token tables. Tables are validated when
// the codec is built, duplicates on either side panic at init.
type enumCodec[E ~int] struct {
	name     string
	values   []E
	toWire   map[E]string
	fromWire map[string]E
}

func newEnumCodec[E ~int](name string, pairs ...enumPair[E]) *enumCodec[E] {
	c := &enumCodec[E]{
		name:     name,
		values:   make([]E, 0, len(pairs)),
		toWire:   make(map[E]string, len(pairs)),
		fromWire: make(map[string]E, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := c.toWire[p.value]; dup {
			panic(fmt.Sprintf("schema: %s value %d mapped twice", name, int(p.value)))
		}
		if _, dup := c.fromWire[p.token]; dup {
			panic(fmt.Sprintf("schema: %s token %q mapped twice", name, p.token))
		}
		c.values = append(c.values, p.value)
		c.toWire[p.value] = p.token
		c.fromWire[p.token] = p.value
	}
	return c
}

func (c *enumCodec[E]) encode(v E) (string, error) {
	token, ok := c.toWire[v]
	if !ok {
		return "", NewArgumentError(c.name, "value %d has no wire token", int(v))
	}
	return token, nil
}

func (c *enumCodec[E]) decode(token string) (E, error) {
	v, ok := c.fromWire[token]
	if !ok {
		var zero E
		return zero, &EnumError{Enum: c.name, Token: token}
	}
	return v, nil
}

func (c *enumCodec[E]) display(v E) string {
	if token, ok := c.toWire[v]; ok {
		return token
	}
	return fmt.Sprintf("%s(%d)", c.name, int(v))
}

// unmarshal treats an empty token as "no value" and leaves the zero value.
func (c *enumCodec[E]) unmarshal(dst *E, b []byte) error {
	if len(b) == 0 {
		var zero E
		*dst = zero
		return nil
	}
	v, err := c.decode(string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// TransferType 资金划转类型
type TransferType int

const (
	TransferWithinAccount                TransferType = iota + 1 // 账户内划转
	TransferMasterToSubAccount                                   // 母账户转子账户(母账户 APIKey)
	TransferSubAccountToMaster                                   // 子账户转母账户(母账户 APIKey)
	TransferSubAccountToMasterWithSubKey                         // 子账户转母账户(子账户 APIKey)
	TransferSubAccountToSubAccount                               // 子账户转子账户(子账户 APIKey)
)

var transferTypeCodec = newEnumCodec("TransferType",
	enumPair[TransferType]{TransferWithinAccount, "0"},
	enumPair[TransferType]{TransferMasterToSubAccount, "1"},
	enumPair[TransferType]{TransferSubAccountToMaster, "2"},
	enumPair[TransferType]{TransferSubAccountToMasterWithSubKey, "3"},
	enumPair[TransferType]{TransferSubAccountToSubAccount, "4"},
)

func ParseTransferType(s string) (TransferType, error) { return transferTypeCodec.decode(s) }
func (t TransferType) Encode() (string, error) { return transferTypeCodec.encode(t) }
func (t TransferType) String() string { return transferTypeCodec.display(t) }
func (t TransferType) MarshalText() ([]byte, error) {
	s, err := t.Encode()
	return []byte(s), err
}
func (t *TransferType) UnmarshalText(b []byte) error { return transferTypeCodec.unmarshal(t, b) }

// Account identifies an OKX account bucket in transfers.
type Account int

const (
	AccountSpot Account = iota + 1
	AccountFutures
	AccountMargin
	AccountFunding
	AccountSwap
	AccountOption
	AccountTrading // 统一账户/交易账户
)

var accountCodec = newEnumCodec("Account",
	enumPair[Account]{AccountSpot, "1"},
	enumPair[Account]{AccountFutures, "3"},
	enumPair[Account]{AccountMargin, "5"},
	enumPair[Account]{AccountFunding, "6"},
	enumPair[Account]{AccountSwap, "9"},
	enumPair[Account]{AccountOption, "12"},
	enumPair[Account]{AccountTrading, "18"},
)

func ParseAccount(s string) (Account, error) { return accountCodec.decode(s) }
func (a Account) Encode() (string, error) { return accountCodec.encode(a) }
func (a Account) String() string { return accountCodec.display(a) }
func (a Account) MarshalText() ([]byte, error) {
	s, err := a.Encode()
	return []byte(s), err
}
func (a *Account) UnmarshalText(b []byte) error { return accountCodec.unmarshal(a, b) }

// WithdrawalDestination 提币方式
type WithdrawalDestination int

const (
	WithdrawalDestinationOKX     WithdrawalDestination = iota + 1 // 内部转账
	WithdrawalDestinationOnChain                                  // 链上提币
)

var withdrawalDestinationCodec = newEnumCodec("WithdrawalDestination",
	enumPair[WithdrawalDestination]{WithdrawalDestinationOKX, "3"},
	enumPair[WithdrawalDestination]{WithdrawalDestinationOnChain, "4"},
)

func ParseWithdrawalDestination(s string) (WithdrawalDestination, error) {
	return withdrawalDestinationCodec.decode(s)
}
func (d WithdrawalDestination) Encode() (string, error) { return withdrawalDestinationCodec.encode(d) }
func (d WithdrawalDestination) String() string { return withdrawalDestinationCodec.display(d) }
func (d WithdrawalDestination) MarshalText() ([]byte, error) {
	s, err := d.Encode()
	return []byte(s), err
}
func (d *WithdrawalDestination) UnmarshalText(b []byte) error {
	return withdrawalDestinationCodec.unmarshal(d, b)
}

// LightningDepositAccount is the receiving account of a lightning deposit.
type LightningDepositAccount int

const (
	LightningDepositSpot LightningDepositAccount = iota + 1
	LightningDepositFunding
)

var lightningDepositAccountCodec = newEnumCodec("LightningDepositAccount",
	enumPair[LightningDepositAccount]{LightningDepositSpot, "1"},
	enumPair[LightningDepositAccount]{LightningDepositFunding, "6"},
)

func ParseLightningDepositAccount(s string) (LightningDepositAccount, error) {
	return lightningDepositAccountCodec.decode(s)
}
func (a LightningDepositAccount) Encode() (string, error) { return lightningDepositAccountCodec.encode(a) }
func (a LightningDepositAccount) String() string { return lightningDepositAccountCodec.display(a) }
func (a LightningDepositAccount) MarshalText() ([]byte, error) {
	s, err := a.Encode()
	return []byte(s), err
}
func (a *LightningDepositAccount) UnmarshalText(b []byte) error {
	return lightningDepositAccountCodec.unmarshal(a, b)
}

// SavingActionSide 余币宝申购/赎回
type SavingActionSide int

const (
	SavingPurchase SavingActionSide = iota + 1
	SavingRedempt
)

var savingActionSideCodec = newEnumCodec("SavingActionSide",
	enumPair[SavingActionSide]{SavingPurchase, "purchase"},
	enumPair[SavingActionSide]{SavingRedempt, "redempt"},
)

func ParseSavingActionSide(s string) (SavingActionSide, error) { return savingActionSideCodec.decode(s) }
func (s SavingActionSide) Encode() (string, error) { return savingActionSideCodec.encode(s) }
func (s SavingActionSide) String() string { return savingActionSideCodec.display(s) }
func (s SavingActionSide) MarshalText() ([]byte, error) {
	t, err := s.Encode()
	return []byte(t), err
}
func (s *SavingActionSide) UnmarshalText(b []byte) error { return savingActionSideCodec.unmarshal(s, b) }

// DepositState 充值状态
type DepositState int

const (
	DepositWaitingForConfirmation DepositState = iota + 1 // 等待确认
	DepositCredited                                        // 确认到账
	DepositSuccessful                                      // 充值成功
	DepositPendingSuspension                               // 因该币种暂停充值而未到账
	DepositBlacklistedAddress                              // 匹配地址黑名单
	DepositFrozen                                          // 账户或充值被冻结
	DepositSubAccountIntercepted                           // 子账户充值拦截
	DepositKYCLimit                                        // KYC 限额
)

var depositStateCodec = newEnumCodec("DepositState",
	enumPair[DepositState]{DepositWaitingForConfirmation, "0"},
	enumPair[DepositState]{DepositCredited, "1"},
	enumPair[DepositState]{DepositSuccessful, "2"},
	enumPair[DepositState]{DepositPendingSuspension, "8"},
	enumPair[DepositState]{DepositBlacklistedAddress, "11"},
	enumPair[DepositState]{DepositFrozen, "12"},
	enumPair[DepositState]{DepositSubAccountIntercepted, "13"},
	enumPair[DepositState]{DepositKYCLimit, "14"},
)

func ParseDepositState(s string) (DepositState, error) { return depositStateCodec.decode(s) }
func (s DepositState) Encode() (string, error) { return depositStateCodec.encode(s) }
func (s DepositState) String() string { return depositStateCodec.display(s) }
func (s DepositState) MarshalText() ([]byte, error) {
	t, err := s.Encode()
	return []byte(t), err
}
func (s *DepositState) UnmarshalText(b []byte) error { return depositStateCodec.unmarshal(s, b) }

// WithdrawalState 提币状态
type WithdrawalState int

const (
	WithdrawalCanceling WithdrawalState = iota + 1
	WithdrawalCanceled
	WithdrawalFailed
	WithdrawalPending
	WithdrawalSending
	WithdrawalSent
	WithdrawalAwaitingEmailVerification
	WithdrawalAwaitingManualVerification
	WithdrawalAwaitingIdentityVerification
	WithdrawalApproved
	WithdrawalWaitingTransfer
)

var withdrawalStateCodec = newEnumCodec("WithdrawalState",
	enumPair[WithdrawalState]{WithdrawalCanceling, "-3"},
	enumPair[WithdrawalState]{WithdrawalCanceled, "-2"},
	enumPair[WithdrawalState]{WithdrawalFailed, "-1"},
	enumPair[WithdrawalState]{WithdrawalPending, "0"},
	enumPair[WithdrawalState]{WithdrawalSending, "1"},
	enumPair[WithdrawalState]{WithdrawalSent, "2"},
	enumPair[WithdrawalState]{WithdrawalAwaitingEmailVerification, "3"},
	enumPair[WithdrawalState]{WithdrawalAwaitingManualVerification, "4"},
	enumPair[WithdrawalState]{WithdrawalAwaitingIdentityVerification, "5"},
	enumPair[WithdrawalState]{WithdrawalApproved, "7"},
	enumPair[WithdrawalState]{WithdrawalWaitingTransfer, "10"},
)

func ParseWithdrawalState(s string) (WithdrawalState, error) { return withdrawalStateCodec.decode(s) }
func (s WithdrawalState) Encode() (string, error) { return withdrawalStateCodec.encode(s) }
func (s WithdrawalState) String() string { return withdrawalStateCodec.display(s) }
func (s WithdrawalState) MarshalText() ([]byte, error) {
	t, err := s.Encode()
	return []byte(t), err
}
func (s *WithdrawalState) UnmarshalText(b []byte) error { return withdrawalStateCodec.unmarshal(s, b) }

// TransferState 划转状态
type TransferState int

const (
	TransferStateSuccess TransferState = iota + 1
	TransferStatePending
	TransferStateFailed
)

var transferStateCodec = newEnumCodec("TransferState",
	enumPair[TransferState]{TransferStateSuccess, "success"},
	enumPair[TransferState]{TransferStatePending, "pending"},
	enumPair[TransferState]{TransferStateFailed, "failed"},
)

func ParseTransferState(s string) (TransferState, error) { return transferStateCodec.decode(s) }
func (s TransferState) Encode() (string, error) { return transferStateCodec.encode(s) }
func (s TransferState) String() string { return transferStateCodec.display(s) }
func (s TransferState) MarshalText() ([]byte, error) {
	t, err := s.Encode()
	return []byte(t), err
}
func (s *TransferState) UnmarshalText(b []byte) error { return transferStateCodec.unmarshal(s, b) }

// FundingBillType 资金流水类型
type FundingBillType int

const (
	BillDeposit FundingBillType = iota + 1
	BillWithdrawal
	BillCanceledWithdrawal
	BillTransferToSubAccount
	BillTransferFromSubAccount
	BillTransferOutFromSubToMaster
	BillTransferInFromMasterToSub
	BillManuallyClaimedAirdrop
	BillSystemReversal
	BillEventReward
	BillEventGiveaway
	BillFeeRebate
	BillTokenReceived
	BillTokenGivenAway
	BillTokenRefunded
	BillSavingsSubscription
	BillSavingsRedemption
	BillJumpstartDistribute
	BillJumpstartLockUp
	BillStakingPurchase
	BillStakingRedemption
	BillStakingYield
	BillViolationFee
	BillDepositYield
	BillFiatDeposit
	BillFiatWithdrawal
	BillFiatRefund
	BillJumpstartUnlock
	BillTransferredFromTrading
	BillTransferredToTrading
	BillConvert
)

var fundingBillTypeCodec = newEnumCodec("FundingBillType",
	enumPair[FundingBillType]{BillDeposit, "1"},
	enumPair[FundingBillType]{BillWithdrawal, "2"},
	enumPair[FundingBillType]{BillCanceledWithdrawal, "13"},
	enumPair[FundingBillType]{BillTransferToSubAccount, "20"},
	enumPair[FundingBillType]{BillTransferFromSubAccount, "21"},
	enumPair[FundingBillType]{BillTransferOutFromSubToMaster, "22"},
	enumPair[FundingBillType]{BillTransferInFromMasterToSub, "23"},
	enumPair[FundingBillType]{BillManuallyClaimedAirdrop, "28"},
	enumPair[FundingBillType]{BillSystemReversal, "47"},
	enumPair[FundingBillType]{BillEventReward, "48"},
	enumPair[FundingBillType]{BillEventGiveaway, "49"},
	enumPair[FundingBillType]{BillFeeRebate, "68"},
	enumPair[FundingBillType]{BillTokenReceived, "72"},
	enumPair[FundingBillType]{BillTokenGivenAway, "73"},
	enumPair[FundingBillType]{BillTokenRefunded, "74"},
	enumPair[FundingBillType]{BillSavingsSubscription, "75"},
	enumPair[FundingBillType]{BillSavingsRedemption, "76"},
	enumPair[FundingBillType]{BillJumpstartDistribute, "77"},
	enumPair[FundingBillType]{BillJumpstartLockUp, "78"},
	enumPair[FundingBillType]{BillStakingPurchase, "80"},
	enumPair[FundingBillType]{BillStakingRedemption, "82"},
	enumPair[FundingBillType]{BillStakingYield, "83"},
	enumPair[FundingBillType]{BillViolationFee, "84"},
	enumPair[FundingBillType]{BillDepositYield, "89"},
	enumPair[FundingBillType]{BillFiatDeposit, "116"},
	enumPair[FundingBillType]{BillFiatWithdrawal, "117"},
	enumPair[FundingBillType]{BillFiatRefund, "118"},
	enumPair[FundingBillType]{BillJumpstartUnlock, "124"},
	enumPair[FundingBillType]{BillTransferredFromTrading, "130"},
	enumPair[FundingBillType]{BillTransferredToTrading, "131"},
	enumPair[FundingBillType]{BillConvert, "136"},
)

func ParseFundingBillType(s string) (FundingBillType, error) { return fundingBillTypeCodec.decode(s) }
func (t FundingBillType) Encode() (string, error) { return fundingBillTypeCodec.encode(t) }
func (t FundingBillType) String() string { return fundingBillTypeCodec.display(t) }
func (t FundingBillType) MarshalText() ([]byte, error) {
	s, err := t.Encode()
	return []byte(s), err
}
func (t *FundingBillType) UnmarshalText(b []byte) error { return fundingBillTypeCodec.unmarshal(t, b) }
