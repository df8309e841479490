// bufstat replays a pin/unpin trace against a page file and prints the
// resulting frame table and I/O counters.
//
// Usage:
//
//	bufstat -config pool.yaml -trace "pin:0,pin:1,dirty:1,unpin:0,unpin:1,flush"
//	bufstat -file pages.db -capacity 3 -strategy lru -trace "pin:0,pin:1"
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ApurvGaikwad0/Buffer-Manager/internal/bufferpool"
	"github.com/ApurvGaikwad0/Buffer-Manager/internal/config"
	"github.com/ApurvGaikwad0/Buffer-Manager/internal/storage"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file (page_file, capacity, strategy, lru_k)")
	file := flag.String("file", "", "page file (alternative to -config)")
	capacity := flag.Int("capacity", 8, "number of frames")
	strategy := flag.String("strategy", "fifo", "replacement strategy: fifo|lru|lru-k")
	trace := flag.String("trace", "", "comma-separated ops: pin:N, unpin:N, dirty:N, force:N, flush")
	flag.Parse()

	cfg, err := resolveConfig(*cfgPath, *file, *capacity, *strategy)
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	pool, err := cfg.Open()
	if err != nil {
		slog.Error("open pool", "page_file", cfg.PageFile, "err", err)
		os.Exit(1)
	}

	if err := replay(pool, *trace); err != nil {
		slog.Error("trace replay failed", "err", err)
		// Still try to flush whatever the trace dirtied before failing.
		if cerr := pool.Close(); cerr != nil {
			slog.Error("close pool", "err", cerr)
		}
		os.Exit(1)
	}

	printFrames(pool)

	if err := pool.Close(); err != nil {
		slog.Error("close pool", "err", err)
		os.Exit(1)
	}
}

func resolveConfig(cfgPath, file string, capacity int, strategy string) (*config.Config, error) {
	if cfgPath != "" {
		return config.Load(cfgPath)
	}
	cfg := config.Default()
	cfg.PageFile = file
	cfg.Capacity = capacity
	cfg.Strategy = strategy
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// replay runs one trace op after another, stopping at the first error.
func replay(pool *bufferpool.Pool, trace string) error {
	if trace == "" {
		return nil
	}
	for _, tok := range strings.Split(trace, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if err := step(pool, tok); err != nil {
			return fmt.Errorf("op %q: %w", tok, err)
		}
	}
	return nil
}

func step(pool *bufferpool.Pool, tok string) error {
	if tok == "flush" {
		return pool.FlushAll()
	}

	op, arg, ok := strings.Cut(tok, ":")
	if !ok {
		return fmt.Errorf("want op:page or flush")
	}
	pageNum, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return fmt.Errorf("bad page number %q: %w", arg, err)
	}

	switch op {
	case "pin":
		_, err := pool.Pin(int32(pageNum))
		return err
	case "unpin":
		return pool.Unpin(int32(pageNum))
	case "dirty":
		return pool.MarkDirty(int32(pageNum))
	case "force":
		return pool.FlushPage(int32(pageNum))
	default:
		return fmt.Errorf("unknown op %q", op)
	}
}

func printFrames(pool *bufferpool.Pool) {
	contents := pool.FrameContents()
	dirty := pool.DirtyFlags()
	pins := pool.PinCounts()
	attrs := pool.Attributes()

	if pool.Strategy() == bufferpool.LRUK {
		fmt.Printf("strategy=%s(k=%d) capacity=%d\n", pool.Strategy(), pool.LRUKParam(), pool.Capacity())
	} else {
		fmt.Printf("strategy=%s capacity=%d\n", pool.Strategy(), pool.Capacity())
	}
	fmt.Printf("%5s %8s %5s %6s %8s\n", "frame", "page", "pin", "dirty", "attr")
	for i := range contents {
		page := "-"
		if contents[i] != storage.NoPage {
			page = strconv.FormatInt(int64(contents[i]), 10)
		}
		fmt.Printf("%5d %8s %5d %6v %8d\n", i, page, pins[i], dirty[i], attrs[i])
	}
	fmt.Printf("reads=%d writes=%d\n", pool.ReadCount(), pool.WriteCount())
}
