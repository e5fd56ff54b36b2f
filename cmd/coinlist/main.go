package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"coinlist/config"
	"coinlist/internal/metrics"
	"coinlist/logger"
	"coinlist/pkg/coinlist"

	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "", "config file path (default: config.yaml in . or ./config)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	// viper config
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	// zap logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			usage()
			os.Exit(2)
		}
		log.Error("command failed", zap.String("command", flag.Arg(0)), zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger, args []string) error {
	if cfg.UsesSSM() {
		store, err := config.NewSSMParameterStore(ctx)
		if err != nil {
			return err
		}
		if err := cfg.ResolveCredentials(ctx, store); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	signer, err := coinlist.NewSigner(cfg.Coinlist.AccessKey, cfg.Coinlist.AccessSecret)
	if err != nil {
		return err
	}

	recorder := metrics.New()
	client := coinlist.NewRESTClient(
		cfg.Coinlist.REST.BaseURL,
		cfg.Coinlist.REST.Timeout,
		signer,
		coinlist.WithLogger(log),
		coinlist.WithObserver(recorder),
	)

	cmdErr := runCommand(ctx, client, cfg, log, args, os.Stdout)

	if cfg.Metrics.Textfile != "" {
		if err := recorder.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.Warn("failed to write metrics", zap.String("path", cfg.Metrics.Textfile), zap.Error(err))
		}
	}

	return cmdErr
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: coinlist [-config file] <command> [args]

commands:
  time                              server time
  accounts                          list trading accounts
  summary                           account summary of the first account
  balances                          balances of all accounts
  orders [symbol]                   list orders
  order <id>                        order details
  cancel <id>                       cancel one order
  cancel-all <symbol>               cancel all orders of a symbol
  buy|sell <symbol> <size> <price>  place a limit order
  quote <symbol>                    best bid/ask
  book <symbol>                     order book
  symbols                           write all symbols to symbols.output_file

flags:
`)
	flag.PrintDefaults()
}
