// futctl is a command-line front end for the futures gateway: account
// queries, symbol configuration, and order placement from the shell.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/tradekit/binfut/futures/client"
	"github.com/tradekit/binfut/futures/types"
	"github.com/tradekit/binfut/pkg/config"
	"github.com/tradekit/binfut/pkg/logger"
)

func main() {
	cfgPath := flag.String("config", "", "optional yaml config path")
	flag.Parse()

	// .env is optional; the environment may already carry the credentials.
	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	if err := logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		OutputFile: cfg.LogFile,
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     14,
	}); err != nil {
		fatal(err)
	}

	opts := []client.Option{
		client.WithRecvWindow(int64(cfg.RecvWindow)),
		client.WithTimeout(time.Duration(cfg.TimeoutSec) * time.Second),
	}
	switch {
	case cfg.BaseURL != "":
		opts = append(opts, client.WithBaseURL(cfg.BaseURL))
	case cfg.Testnet:
		opts = append(opts, client.WithTestnet())
	}
	c := client.New(client.Credentials{APIKey: cfg.APIKey, APISecret: cfg.APISecret}, opts...)

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	if err := run(context.Background(), c, args[0], args[1:]); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, c *client.Client, cmd string, args []string) error {
	switch cmd {
	case "balance":
		if len(args) == 1 {
			bal, err := c.Balance(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%-8s balance=%s available=%s\n", bal.Asset, bal.Balance, bal.AvailableBalance)
			return nil
		}
		rows, err := c.Balances(ctx)
		if err != nil {
			return err
		}
		for _, b := range rows {
			if b.Balance.IsZero() && b.AvailableBalance.IsZero() {
				continue
			}
			fmt.Printf("%-8s balance=%s available=%s\n", b.Asset, b.Balance, b.AvailableBalance)
		}
		return nil

	case "instruments":
		quote := "USDT"
		if len(args) == 1 {
			quote = args[0]
		}
		symbols, err := c.ListInstruments(ctx, quote)
		if err != nil {
			return err
		}
		for _, s := range symbols {
			fmt.Println(s)
		}
		return nil

	case "params":
		if len(args) != 1 {
			return fmt.Errorf("usage: futctl params SYMBOL")
		}
		ip, err := c.InstrumentParams(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("symbol=%s tick=%s step=%s minQty=%s minNotional=%s pricePrec=%d qtyPrec=%d last=%s\n",
			ip.Symbol, ip.TickSize, ip.StepSize, ip.MinQty, ip.MinNotional,
			ip.PricePrecision, ip.QuantityPrecision, ip.LastPrice)
		return nil

	case "price":
		if len(args) != 1 {
			return fmt.Errorf("usage: futctl price SYMBOL")
		}
		p, err := c.TickerPrice(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil

	case "positions":
		positions, err := c.Positions(ctx)
		if err != nil {
			return err
		}
		for _, p := range positions {
			if !p.Open() {
				continue
			}
			fmt.Printf("%-12s %s amt=%s entry=%s mark=%s pnl=%s\n",
				p.Symbol, p.Direction(), p.PositionAmt, p.EntryPrice, p.MarkPrice, p.UnrealizedProfit)
		}
		return nil

	case "leverage":
		if len(args) != 2 {
			return fmt.Errorf("usage: futctl leverage SYMBOL N")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("leverage must be an integer: %w", err)
		}
		resp, err := c.SetLeverage(ctx, args[0], n)
		if err != nil {
			return err
		}
		fmt.Printf("%s leverage=%d maxNotional=%s\n", resp.Symbol, resp.Leverage, resp.MaxNotionalValue)
		return nil

	case "margin":
		if len(args) != 2 {
			return fmt.Errorf("usage: futctl margin SYMBOL isolated|cross")
		}
		mt, err := types.ParseMarginType(args[1])
		if err != nil {
			return err
		}
		return c.SetMarginType(ctx, args[0], mt)

	case "position-mode":
		if len(args) == 0 {
			hedge, err := c.GetPositionMode(ctx)
			if err != nil {
				return err
			}
			if hedge {
				fmt.Println("hedge")
			} else {
				fmt.Println("one-way")
			}
			return nil
		}
		switch args[0] {
		case "hedge":
			return c.SetPositionMode(ctx, true)
		case "one-way", "oneway":
			return c.SetPositionMode(ctx, false)
		default:
			return fmt.Errorf("usage: futctl position-mode [hedge|one-way]")
		}

	case "market":
		if len(args) != 3 {
			return fmt.Errorf("usage: futctl market SYMBOL long|short QTY")
		}
		direction, qty, err := parseDirQty(args[1], args[2])
		if err != nil {
			return err
		}
		ack, err := c.MarketOrder(ctx, args[0], direction, qty)
		if err != nil {
			return err
		}
		printAck(ack)
		return nil

	case "limit":
		if len(args) != 4 {
			return fmt.Errorf("usage: futctl limit SYMBOL long|short QTY PRICE")
		}
		direction, qty, err := parseDirQty(args[1], args[2])
		if err != nil {
			return err
		}
		price, err := decimal.NewFromString(args[3])
		if err != nil {
			return fmt.Errorf("bad price %q: %w", args[3], err)
		}
		ack, err := c.LimitOrder(ctx, args[0], direction, qty, price)
		if err != nil {
			return err
		}
		printAck(ack)
		return nil

	case "stop-loss":
		if len(args) != 4 {
			return fmt.Errorf("usage: futctl stop-loss SYMBOL long|short QTY PCT")
		}
		direction, qty, err := parseDirQty(args[1], args[2])
		if err != nil {
			return err
		}
		pct, err := decimal.NewFromString(args[3])
		if err != nil {
			return fmt.Errorf("bad percent %q: %w", args[3], err)
		}
		ack, err := c.StopLossOrder(ctx, args[0], direction, qty, pct)
		if err != nil {
			return err
		}
		printAck(ack)
		return nil

	case "take-profit":
		if len(args) != 4 {
			return fmt.Errorf("usage: futctl take-profit SYMBOL long|short QTY PCT")
		}
		direction, qty, err := parseDirQty(args[1], args[2])
		if err != nil {
			return err
		}
		pct, err := decimal.NewFromString(args[3])
		if err != nil {
			return fmt.Errorf("bad percent %q: %w", args[3], err)
		}
		ack, err := c.TakeProfitOrder(ctx, args[0], direction, qty, pct)
		if err != nil {
			return err
		}
		printAck(ack)
		return nil

	case "cancel":
		if len(args) == 1 {
			return c.CancelOrders(ctx, args[0])
		}
		n, err := c.CancelAllOrders(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("canceled %d orders\n", n)
		return nil

	case "close":
		if len(args) == 1 {
			ack, err := c.ClosePosition(ctx, args[0])
			if err != nil {
				return err
			}
			if ack == nil {
				fmt.Printf("%s already flat\n", args[0])
				return nil
			}
			printAck(ack)
			return nil
		}
		n, err := c.CloseAllPositions(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("closed %d positions\n", n)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func parseDirQty(dir, qty string) (types.Direction, decimal.Decimal, error) {
	direction, err := types.ParseDirection(dir)
	if err != nil {
		return "", decimal.Zero, err
	}
	quantity, err := decimal.NewFromString(qty)
	if err != nil {
		return "", decimal.Zero, fmt.Errorf("bad quantity %q: %w", qty, err)
	}
	return direction, quantity, nil
}

func printAck(ack *types.OrderAck) {
	fmt.Printf("order %d %s %s %s status=%s qty=%s price=%s stop=%s\n",
		ack.OrderID, ack.Symbol, ack.Side, ack.Type, ack.Status,
		ack.OrigQty, ack.Price, ack.StopPrice)
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: futctl [-config file.yaml] COMMAND [args]

commands:
  balance [ASSET]               wallet balances
  instruments [QUOTE]           tradable perpetual symbols (default quote USDT)
  params SYMBOL                 tick/step/minimum filters and last price
  price SYMBOL                  latest traded price
  positions                     open positions
  leverage SYMBOL N             set initial leverage
  margin SYMBOL isolated|cross  set margin type
  position-mode [hedge|one-way] show or set position mode
  market SYMBOL long|short QTY  market order
  limit SYMBOL long|short QTY PRICE
  stop-loss SYMBOL long|short QTY PCT
                                stop-loss on the open position, or open a
                                protected position when flat
  take-profit SYMBOL long|short QTY PCT
                                take-profit, same entry behaviour
  cancel [SYMBOL]               cancel open orders (all symbols when omitted)
  close [SYMBOL]                flatten positions (all symbols when omitted)
`)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "futctl:", err)
	os.Exit(1)
}
