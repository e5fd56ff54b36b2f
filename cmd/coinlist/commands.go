package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"coinlist/config"
	"coinlist/internal/snapshot"
	"coinlist/pkg/coinlist"

	"go.uber.org/zap"
)

var errUsage = errors.New("usage error")

func usageErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// runCommand executes one CLI command and prints its result to out as indented JSON.
func runCommand(ctx context.Context, client *coinlist.RESTClient, cfg *config.Config, log *zap.Logger, args []string, out io.Writer) error {
	if len(args) == 0 {
		return usageErr("missing command")
	}

	name, rest := args[0], args[1:]
	result, err := execute(ctx, client, cfg, log, name, rest)
	if err != nil {
		return err
	}
	return printJSON(out, result)
}

func execute(ctx context.Context, client *coinlist.RESTClient, cfg *config.Config, log *zap.Logger, name string, args []string) (any, error) {
	switch name {
	case "time":
		if err := wantArgs(name, args, 0); err != nil {
			return nil, err
		}
		return client.GetTime(ctx)

	case "accounts":
		if err := wantArgs(name, args, 0); err != nil {
			return nil, err
		}
		return client.ListAccounts(ctx)

	case "summary":
		if err := wantArgs(name, args, 0); err != nil {
			return nil, err
		}
		traderID, err := client.TraderID(ctx)
		if err != nil {
			return nil, err
		}
		return client.GetAccountSummary(ctx, traderID)

	case "balances":
		if err := wantArgs(name, args, 0); err != nil {
			return nil, err
		}
		return client.ListBalances(ctx)

	case "orders":
		if len(args) > 1 {
			return nil, usageErr("orders takes at most one symbol")
		}
		var q coinlist.OrdersQuery
		if len(args) == 1 {
			q.Symbol = args[0]
		}
		return client.ListOrders(ctx, q)

	case "order":
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		return client.GetOrder(ctx, args[0])

	case "cancel":
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		return client.CancelOrder(ctx, args[0])

	case "cancel-all":
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		return client.CancelAllOrders(ctx, args[0])

	case "buy", "sell":
		if err := wantArgs(name, args, 3); err != nil {
			return nil, err
		}
		size, err := coinlist.ParseAmount(args[1])
		if err != nil {
			return nil, usageErr("invalid size %q", args[1])
		}
		price, err := coinlist.ParseAmount(args[2])
		if err != nil {
			return nil, usageErr("invalid price %q", args[2])
		}
		order := coinlist.LimitOrder(strings.ToUpper(args[0]), coinlist.OrderSide(name), size, price)
		log.Info("placing order",
			zap.String("symbol", order.Symbol),
			zap.String("side", string(order.Side)),
			zap.String("size", size.String()),
			zap.String("price", price.String()),
		)
		return client.CreateOrder(ctx, order)

	case "quote":
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		return client.GetQuote(ctx, args[0])

	case "book":
		if err := wantArgs(name, args, 1); err != nil {
			return nil, err
		}
		return client.GetOrderBook(ctx, args[0])

	case "symbols":
		if err := wantArgs(name, args, 0); err != nil {
			return nil, err
		}
		return dumpSymbols(ctx, client, cfg.Symbols.OutputFile, log)

	default:
		return nil, usageErr("unknown command %q", name)
	}
}

type symbolDump struct {
	File  string `json:"file"`
	Count int    `json:"count"`
}

func dumpSymbols(ctx context.Context, client *coinlist.RESTClient, path string, log *zap.Logger) (*symbolDump, error) {
	loader := &snapshot.SymbolLoader{Client: client, Logger: log}

	n, err := snapshot.DumpSymbols(ctx, loader, path)
	if err != nil {
		return nil, err
	}
	return &symbolDump{File: path, Count: n}, nil
}

func wantArgs(name string, args []string, n int) error {
	if len(args) != n {
		return usageErr("%s takes %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
