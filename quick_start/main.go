package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/mo"

	"github.com/kingsmao/okx-funding-connector/pkg/logger"
	"github.com/kingsmao/okx-funding-connector/pkg/schema"
	"github.com/kingsmao/okx-funding-connector/pkg/sdk"
)

func main() {
	fmt.Println("=== OKX Funding Connector 快速开始 ===")
	logger.Init()

	// 1. 从 .env / 环境变量创建SDK
	sdkInstance, err := sdk.NewSDKFromEnv()
	if err != nil {
		panic(err)
	}
	cfg := sdkInstance.Config()
	fmt.Printf("接入点: %s, 模拟盘: %v\n", cfg.BaseURL, cfg.DemoTrading)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ctrl+C 取消进行中的请求
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		fmt.Println("\n收到退出信号，正在关闭...")
		cancel()
	}()

	funding := sdkInstance.Funding()

	// 2. 公共接口：不需要凭证
	callCtx, callCancel := context.WithTimeout(ctx, cfg.CallTimeout())
	info, err := funding.GetPublicBorrowInfo(callCtx, "USDT")
	callCancel()
	if err != nil {
		fmt.Printf("市场借贷信息请求失败: %v\n", err)
	} else {
		info.Match(func(items []schema.PublicBorrowInfo) {
			for _, it := range items {
				fmt.Printf("%s 平均出借利率=%s 预估利率=%s\n", it.Currency, it.AverageRate, it.EstimatedRate)
			}
		}, func(e *schema.APIError) {
			fmt.Printf("OKX 返回错误: %v\n", e)
		})
	}

	if !cfg.Credentials.Complete() {
		fmt.Println("未配置 OKX_API_KEY / OKX_SECRET_KEY / OKX_PASSPHRASE，跳过私有接口")
		return
	}

	// 3. 私有接口：资金账户余额
	callCtx, callCancel = context.WithTimeout(ctx, cfg.CallTimeout())
	balances, err := funding.GetFundingBalance(callCtx, "BTC", "USDT")
	callCancel()
	if err != nil {
		panic(err)
	}
	if items, ok := balances.Data(); ok {
		for _, b := range items {
			fmt.Printf("资金账户 %s: 余额=%s, 可用=%s, 冻结=%s\n", b.Currency, b.Balance, b.AvailableBalance, b.FrozenBalance)
		}
	} else {
		fmt.Printf("查询余额失败: %v\n", balances.Err())
	}

	// 4. 最近一周的充值记录
	callCtx, callCancel = context.WithTimeout(ctx, cfg.CallTimeout())
	deposits, err := funding.GetDepositHistory(callCtx, schema.DepositHistoryRequest{
		Page: schema.Page{
			Before: mo.Some(time.Now().Add(-7 * 24 * time.Hour)),
			Limit:  mo.Some(20),
		},
	})
	callCancel()
	if err != nil {
		panic(err)
	}
	if items, ok := deposits.Data(); ok {
		fmt.Printf("最近充值 %d 笔\n", len(items))
		for _, d := range items {
			fmt.Printf("  %s %s %s 状态=%s txId=%s\n", d.Time.Format("2006-01-02 15:04:05"), d.Currency, d.Amount, d.State, d.TransactionID)
		}
	}
}
