package pipeline

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"sync"

	"go.trai.ch/anvil/internal/adapters/zipfs"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// RewriteFunc transforms the bytes of one archive entry. It must be a pure
// function of its inputs; the pass gives no ordering or visibility guarantee
// between entries.
type RewriteFunc func(ctx context.Context, name string, data []byte) ([]byte, error)

// RewriteEntries fans the rewrite of every matching entry out across a
// bounded worker pool and blocks until all workers finish. Only entries
// whose rewritten bytes differ are written back, which keeps the pass
// idempotent and avoids needless archive churn.
//
// The first error is raised after the barrier; already-dispatched workers
// run to completion and their successful writes are still flushed, so a
// failed pass leaves a mixed archive that callers must treat as "redo the
// whole stage".
func RewriteEntries(ctx context.Context, archivePath string, match EntryFilter, fn RewriteFunc, workers int) (err error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	a, err := zipfs.Open(archivePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	// Snapshot the work units up front so workers never read the entry map
	// while another worker writes it.
	type unit struct {
		name string
		data []byte
	}

	var units []unit

	for _, name := range a.Names() {
		if match != nil && !match(name) {
			continue
		}

		data, rerr := a.Read(name)
		if rerr != nil {
			return rerr
		}

		units = append(units, unit{name: name, data: data})
	}

	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, u := range units {
		g.Go(func() error {
			out, ferr := fn(gctx, u.name, u.data)
			if ferr != nil {
				return zerr.With(errors.Join(domain.ErrEntryRewriteFailed, ferr), "entry", u.name)
			}

			if bytes.Equal(u.data, out) {
				return nil
			}

			mu.Lock()
			a.Write(u.name, out)
			mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}
