package snapshot

import (
	"context"

	"coinlist/pkg/coinlist"

	"go.uber.org/zap"
)

type SymbolLoader struct {
	Client *coinlist.RESTClient
	Logger *zap.Logger
}

// LoadSymbols fetches every tradable symbol from CoinList
// and streams the symbol codes into the provided channel.
func (l *SymbolLoader) LoadSymbols(ctx context.Context, ch chan<- string) error {
	defer close(ch) // Ensure downstream consumers can exit cleanly

	symbols, err := l.Client.ListSymbols(ctx)
	if err != nil {
		l.Logger.Error("failed to load symbols", zap.Error(err))
		return err
	}
	l.Logger.Info("loaded symbols", zap.Int("count", len(symbols)))

	for _, s := range symbols {
		select {
		case ch <- s.Symbol:
		case <-ctx.Done():
			l.Logger.Warn("symbol streaming interrupted", zap.Error(ctx.Err()))
			return ctx.Err()
		}
	}

	return nil
}
