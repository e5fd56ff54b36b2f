package snapshot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// WriteSymbols writes one symbol per line to w until ch is closed and
// returns the number of symbols written. The channel is always drained.
func WriteSymbols(ch <-chan string, w io.Writer) (n int, err error) {
	defer func() {
		if err != nil {
			for range ch {
			}
		}
	}()

	bw := bufio.NewWriter(w)
	for symbol := range ch {
		if _, err := bw.WriteString(symbol + "\n"); err != nil {
			return n, fmt.Errorf("write symbol %s: %w", symbol, err)
		}
		n++
	}

	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("flush symbols: %w", err)
	}
	return n, nil
}

// DumpSymbols loads every symbol and replaces the file at path with one
// symbol per line. The previous file is left untouched unless both the load
// and the write succeed.
func DumpSymbols(ctx context.Context, loader *SymbolLoader, path string) (int, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create symbols directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, fmt.Errorf("failed to create symbols file: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	symbolCh := make(chan string, 100)
	errCh := make(chan error, 1)
	go func() {
		errCh <- loader.LoadSymbols(ctx, symbolCh)
	}()

	n, writeErr := WriteSymbols(symbolCh, tmp)
	if err := <-errCh; err != nil {
		return 0, err
	}
	if writeErr != nil {
		return 0, writeErr
	}

	if err := tmp.Sync(); err != nil {
		return 0, fmt.Errorf("sync symbols file: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return 0, fmt.Errorf("chmod symbols file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close symbols file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return 0, fmt.Errorf("replace symbols file: %w", err)
	}
	committed = true

	loader.Logger.Info("wrote symbols", zap.String("path", path), zap.Int("count", n))
	return n, nil
}
