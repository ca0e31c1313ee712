// Copyright (c) 2025 Shell Reserve developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command rai is a thin CLI wrapping the library packages: each
// subcommand is a one-to-one mapping to a library call, with no
// protocol logic of its own.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/toole-brendan/rai/ledger"
	"github.com/toole-brendan/rai/peer"
	"github.com/toole-brendan/rai/primitives"
	"github.com/toole-brendan/rai/state"
	"github.com/toole-brendan/rai/wire"
	"github.com/toole-brendan/rai/work"
)

// Exit codes: 0 success, 1 user-input error, 2 protocol/ledger error,
// 3 I/O error.
const (
	exitSuccess = 0
	exitUsage   = 1
	exitProto   = 2
	exitIO      = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: rai <address|seed|work|vanity|node|rpc> ...")
		return exitUsage
	}

	switch args[0] {
	case "address":
		return cmdAddress(args[1:], stdin, stdout, stderr)
	case "seed":
		return cmdSeed(args[1:], stdout, stderr)
	case "work":
		return cmdWork(args[1:], stdout, stderr)
	case "vanity":
		return cmdVanity(args[1:], stdout, stderr)
	case "node":
		return cmdNode(args[1:], stderr)
	case "rpc":
		fmt.Fprintln(stderr, "rpc: not part of this core")
		return exitUsage
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		return exitUsage
	}
}

func cmdAddress(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("address", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() < 2 || fs.Arg(0) != "to-public" {
		fmt.Fprintln(stderr, "usage: rai address to-public <addr|->")
		return exitUsage
	}

	addr := fs.Arg(1)
	if addr == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitIO
		}
		addr = string(data)
	}

	pub, err := primitives.ParseAddress(addr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	fmt.Fprintln(stdout, pub.Hex())
	return exitSuccess
}

func cmdSeed(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: rai seed new | rai seed derive <seed> <idx>")
		return exitUsage
	}

	switch args[0] {
	case "new":
		seed, err := primitives.RandomSeed()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitIO
		}
		fmt.Fprintln(stdout, seed.Hex())
		return exitSuccess

	case "derive":
		if len(args) != 3 {
			fmt.Fprintln(stderr, "usage: rai seed derive <seed> <idx>")
			return exitUsage
		}
		seed, err := primitives.SeedFromHex(args[1])
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
		var idx uint32
		if _, err := fmt.Sscanf(args[2], "%d", &idx); err != nil {
			fmt.Fprintln(stderr, "invalid index:", err)
			return exitUsage
		}
		fmt.Fprintln(stdout, seed.Derive(idx).Hex())
		return exitSuccess

	default:
		fmt.Fprintln(stderr, "usage: rai seed new | rai seed derive <seed> <idx>")
		return exitUsage
	}
}

func cmdWork(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("work", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 3 || fs.Arg(0) != "generate" {
		fmt.Fprintln(stderr, "usage: rai work generate <subject-hash-hex> <threshold-hex>")
		return exitUsage
	}

	hash, err := primitives.BlockHashFromHex(fs.Arg(1))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	threshold, err := work.DifficultyFromHex(fs.Arg(2))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	pool := work.NewPool(0)
	w, err := pool.Generate(context.Background(), work.SubjectFromHash(hash), threshold)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitProto
	}
	fmt.Fprintln(stdout, w.Hex())
	return exitSuccess
}

// vanityResult pairs a matching seed with the address it produces.
type vanityResult struct {
	seed primitives.Seed
	addr string
}

// vanityPollInterval is how many attempts a vanity worker makes between
// checks of its cancellation signal.
const vanityPollInterval = 10000

func cmdVanity(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vanity", flag.ContinueOnError)
	count := fs.Int("count", 1, "number of matches to find")
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: rai vanity <match-spec> [--count N]")
		return exitUsage
	}
	prefix := fs.Arg(0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan vanityResult, 100)
	var wg sync.WaitGroup
	for i := 0; i < runtime.GOMAXPROCS(0); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			vanityWorker(ctx, prefix, results)
		}()
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for found := 0; found < *count; found++ {
		select {
		case r := <-results:
			fmt.Fprintln(stdout, r.seed.Hex(), r.addr)
		case <-done:
			fmt.Fprintln(stderr, "vanity: workers exited before enough matches were found")
			return exitIO
		}
	}
	cancel()
	<-done
	return exitSuccess
}

// vanityWorker streams matching secrets onto results until cancelled. It
// samples the cancellation signal every vanityPollInterval attempts.
func vanityWorker(ctx context.Context, prefix string, results chan<- vanityResult) {
	attempts := 0
	for {
		attempts++
		if attempts%vanityPollInterval == 0 {
			select {
			case <-ctx.Done():
				return
			default:
			}
		}

		seed, err := primitives.RandomSeed()
		if err != nil {
			return
		}
		addr := seed.Derive(0).Public().Address()
		if !strings.HasPrefix(addr[len(addressPrefixConst):], prefix) {
			continue
		}
		select {
		case results <- vanityResult{seed: seed, addr: addr}:
		case <-ctx.Done():
			return
		}
	}
}

// addressPrefixConst mirrors the fixed "nano_" prefix every address
// starts with, so vanity matching operates on the part after it.
const addressPrefixConst = "nano_"

func cmdNode(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("node", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 || fs.Arg(0) != "connect" {
		fmt.Fprintln(stderr, "usage: rai node connect <host:port>")
		return exitUsage
	}

	conn, err := net.Dial("tcp", fs.Arg(1))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIO
	}
	defer conn.Close()

	seed, err := primitives.RandomSeed()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIO
	}
	store := ledger.NewMemoryStore()
	controller := ledger.NewController(store, work.Difficulty(0xffffffc000000000))
	st := state.New(wire.NetworkLive, seed.Derive(0), controller)

	p := peer.New(st, conn)
	if err := p.Run(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitProto
	}
	return exitSuccess
}
