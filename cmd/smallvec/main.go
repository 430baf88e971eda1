// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command smallvec loads values from a job file into a fixed-capacity
// vector, sorts them in place and runs binary searches over the result.
//
// Usage:
//
//	smallvec -config job.yaml [-debug]
//
// Values beyond the vector's capacity are dropped and logged.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"code.hybscloud.com/smallvec"
	"code.hybscloud.com/smallvec/internal/config"
)

// capacity is the length of the backing array below.
const capacity = 256

type vector = smallvec.Vector[int64, [capacity]int64]

func main() {
	configPath := flag.String("config", "", "path to the YAML job file")
	debug := flag.Bool("debug", false, "enable development logging")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "smallvec: logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if *configPath == "" {
		logger.Fatal("missing -config")
	}
	job, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load job", zap.String("path", *configPath), zap.Error(err))
	}

	if err := run(job, os.Stdout, logger); err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// run executes job and writes its report to out.
func run(job config.Job, out io.Writer, logger *zap.Logger) error {
	var v vector
	dropped := load(&v, job.Values, logger)

	logger.Debug("loaded values",
		zap.Int("len", v.Len()),
		zap.Int("cap", v.Cap()),
		zap.Int("dropped", dropped),
	)

	if err := sortWith(&v, job.Algorithm); err != nil {
		return err
	}
	logger.Debug("sorted", zap.String("algorithm", job.Algorithm))

	if _, err := v.Dump(out, job.SeparatorRune()); err != nil {
		return fmt.Errorf("write values: %w", err)
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}

	if job.Output.ShowDropped {
		if _, err := fmt.Fprintf(out, "dropped: %d\n", dropped); err != nil {
			return err
		}
	}

	for _, target := range job.Search {
		i := smallvec.BinarySearch[int64](&v, target)
		if err := report(out, target, i, job.Output.ShowIndex); err != nil {
			return err
		}
	}
	return nil
}

// load appends values to dst and returns how many were rejected.
func load(dst smallvec.Appender[int64], values []int64, logger *zap.Logger) int {
	dropped := 0
	for i, x := range values {
		err := dst.TryPushBack(x)
		if err == nil {
			continue
		}
		if !smallvec.IsWouldBlock(err) {
			logger.Error("append failed", zap.Int("position", i), zap.Error(err))
		}
		dropped++
	}
	if dropped > 0 {
		logger.Warn("capacity exhausted, values dropped",
			zap.Int("capacity", capacity),
			zap.Int("dropped", dropped),
		)
	}
	return dropped
}

var errUnknownAlgorithm = errors.New("unknown algorithm")

func sortWith(v *vector, algorithm string) error {
	switch algorithm {
	case config.AlgorithmHeap:
		smallvec.HeapSort(v)
	case config.AlgorithmQuick:
		return smallvec.QuickSort(v, 0, v.Len()-1)
	case config.AlgorithmAuto:
		smallvec.Sort(v)
	default:
		return fmt.Errorf("%w: %q", errUnknownAlgorithm, algorithm)
	}
	return nil
}

func report(out io.Writer, target int64, index int, showIndex bool) error {
	var err error
	switch {
	case index == smallvec.NotFound:
		_, err = fmt.Fprintf(out, "%d: not found\n", target)
	case showIndex:
		_, err = fmt.Fprintf(out, "%d: found at %d\n", target, index)
	default:
		_, err = fmt.Fprintf(out, "%d: found\n", target)
	}
	return err
}
