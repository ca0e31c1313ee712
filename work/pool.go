// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package work

import (
	"context"
	"runtime"
	"sync"

	"github.com/btcsuite/btclog"

	"github.com/toole-brendan/rai/primitives"
)

// log is a logger that is initialized with no output filters. This means
// the package will not perform any logging by default until the caller
// requests it.
var log = btclog.Disabled

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// resultChanCapacity bounds the channel the fixed-size worker pool
// posts results through.
const resultChanCapacity = 100

// pollInterval is how many attempts a worker makes between checks of its
// cancellation signal; the same bound applies to vanity-address search,
// the other CPU-bound mining loop of this shape.
const pollInterval = 10000

// Result is a solved proof-of-work nonce paired with the subject it was
// mined for, so a consumer reading off a shared channel can tell which
// job produced it.
type Result struct {
	Subject Subject
	Work    primitives.Work
}

// Pool is a fixed-size, OS-thread-backed worker pool for CPU-bound PoW
// generation. Workers post their first success onto a single shared,
// bounded channel; Generate takes the first result and cancels the
// remaining workers itself.
type Pool struct {
	workers int
}

// NewPool creates a Pool with the given number of workers. A non-positive
// count defaults to runtime.GOMAXPROCS(0).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pool{workers: workers}
}

// Generate runs the pool against subject/threshold until ctx is
// cancelled or a worker finds a solution. Workers poll ctx.Err() every
// pollInterval attempts.
func (p *Pool) Generate(ctx context.Context, subject Subject, threshold Difficulty) (primitives.Work, error) {
	results := make(chan Result, resultChanCapacity)
	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runWorker(workerCtx, subject, threshold, results)
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case r := <-results:
		cancel()
		<-done
		return r.Work, nil
	case <-ctx.Done():
		<-done
		return primitives.Work{}, ctx.Err()
	}
}

func runWorker(ctx context.Context, subject Subject, threshold Difficulty, results chan<- Result) {
	attempts := 0
	for {
		attempts++
		if attempts%pollInterval == 0 {
			select {
			case <-ctx.Done():
				return
			default:
			}
		}

		w, ok, err := Attempt(subject, threshold)
		if err != nil {
			log.Errorf("work: PoW attempt failed: %v", err)
			return
		}
		if !ok {
			continue
		}

		select {
		case results <- Result{Subject: subject, Work: w}:
		case <-ctx.Done():
		}
		return
	}
}
