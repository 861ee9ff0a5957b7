package funding

import (
	"net/http"

	"github.com/kingsmao/okx-funding-connector/internal/exchange/okx/rest"
)

const (
	apiV5AssetCurrencies          = "/api/v5/asset/currencies"
	apiV5AssetBalances            = "/api/v5/asset/balances"
	apiV5AssetValuation           = "/api/v5/asset/asset-valuation"
	apiV5AssetTransfer            = "/api/v5/asset/transfer"
	apiV5AssetTransferState       = "/api/v5/asset/transfer-state"
	apiV5AssetBills               = "/api/v5/asset/bills"
	apiV5AssetDepositLightning    = "/api/v5/asset/deposit-lightning"
	apiV5AssetDepositAddress      = "/api/v5/asset/deposit-address"
	apiV5AssetDepositHistory      = "/api/v5/asset/deposit-history"
	apiV5AssetWithdrawal          = "/api/v5/asset/withdrawal"
	apiV5AssetWithdrawalLightning = "/api/v5/asset/withdrawal-lightning"
	apiV5AssetCancelWithdrawal    = "/api/v5/asset/cancel-withdrawal"
	apiV5AssetWithdrawalHistory   = "/api/v5/asset/withdrawal-history"
	apiV5AssetConvertDustAssets   = "/api/v5/asset/convert-dust-assets"
	apiV5AssetSavingBalance       = "/api/v5/asset/saving-balance"
	apiV5AssetPurchaseRedempt     = "/api/v5/asset/purchase_redempt"
	apiV5AssetSetLendingRate      = "/api/v5/asset/set-lending-rate"
	apiV5AssetLendingHistory      = "/api/v5/asset/lending-history"
	apiV5AssetLendingRateSummary  = "/api/v5/asset/lending-rate-summary"
	apiV5AssetLendingRateHistory  = "/api/v5/asset/lending-rate-history"
)

var (
	epCurrencies          = rest.Private(http.MethodGet, apiV5AssetCurrencies)
	epBalances            = rest.Private(http.MethodGet, apiV5AssetBalances)
	epAssetValuation      = rest.Private(http.MethodGet, apiV5AssetValuation)
	epTransfer            = rest.Private(http.MethodPost, apiV5AssetTransfer)
	epTransferState       = rest.Private(http.MethodGet, apiV5AssetTransferState)
	epBills               = rest.Private(http.MethodGet, apiV5AssetBills)
	epDepositLightning    = rest.Private(http.MethodGet, apiV5AssetDepositLightning)
	epDepositAddress      = rest.Private(http.MethodGet, apiV5AssetDepositAddress)
	epDepositHistory      = rest.Private(http.MethodGet, apiV5AssetDepositHistory)
	epWithdrawal          = rest.Private(http.MethodPost, apiV5AssetWithdrawal)
	epWithdrawalLightning = rest.Private(http.MethodPost, apiV5AssetWithdrawalLightning)
	epCancelWithdrawal    = rest.Private(http.MethodPost, apiV5AssetCancelWithdrawal)
	epWithdrawalHistory   = rest.Private(http.MethodGet, apiV5AssetWithdrawalHistory)
	epConvertDustAssets   = rest.Private(http.MethodPost, apiV5AssetConvertDustAssets)
	epSavingBalance       = rest.Private(http.MethodGet, apiV5AssetSavingBalance)
	epPurchaseRedempt     = rest.Private(http.MethodPost, apiV5AssetPurchaseRedempt)
	epSetLendingRate      = rest.Private(http.MethodPost, apiV5AssetSetLendingRate)
	epLendingHistory      = rest.Private(http.MethodGet, apiV5AssetLendingHistory)
	epLendingRateSummary  = rest.Public(http.MethodGet, apiV5AssetLendingRateSummary)
	epLendingRateHistory  = rest.Public(http.MethodGet, apiV5AssetLendingRateHistory)
)
