// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"code.hybscloud.com/smallvec"
	"code.hybscloud.com/smallvec/internal/config"
)

type smallVector4 = smallvec.Vector[int64, [4]int64]

func TestRunReferenceJob(t *testing.T) {
	for _, alg := range []string{config.AlgorithmHeap, config.AlgorithmQuick, config.AlgorithmAuto} {
		t.Run(alg, func(t *testing.T) {
			job, err := config.Parse([]byte(`
values: [11, 30, 1, 20, 15, 5, 19, 88, 99, 12]
algorithm: ` + alg + `
search: [20, 5, 99, 7]
separator: ","
`))
			require.NoError(t, err)

			var out bytes.Buffer
			require.NoError(t, run(job, &out, zap.NewNop()))

			assert.Equal(t, strings.Join([]string{
				"1,5,11,12,15,19,20,30,88,99",
				"20: found at 6",
				"5: found at 1",
				"99: found at 9",
				"7: not found",
				"",
			}, "\n"), out.String())
		})
	}
}

func TestRunEmptyJob(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(config.Default(), &out, zap.NewNop()))
	assert.Equal(t, "\n", out.String())
}

func TestRunDropsBeyondCapacity(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	job := config.Default()
	job.Output.ShowDropped = true
	job.Output.ShowIndex = false
	for i := range capacity + 5 {
		job.Values = append(job.Values, int64(capacity+5-i))
	}
	job.Search = []int64{1, capacity + 5}

	var out bytes.Buffer
	require.NoError(t, run(job, &out, logger))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Len(t, strings.Fields(lines[0]), capacity)
	assert.Equal(t, "dropped: 5", lines[1])
	// The first values pushed were the largest; 1..5 did not fit.
	assert.Equal(t, "1: not found", lines[2])
	assert.Equal(t, "261: found", lines[3])

	entries := logs.FilterMessage("capacity exhausted, values dropped").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(5), entries[0].ContextMap()["dropped"])
}

func TestSortWithUnknownAlgorithm(t *testing.T) {
	var v vector
	err := sortWith(&v, "bogo")
	require.ErrorIs(t, err, errUnknownAlgorithm)
}

func TestLoadCountsDrops(t *testing.T) {
	var v smallVector4
	dropped := load(&v, []int64{1, 2, 3, 4, 5, 6}, zap.NewNop())
	assert.Equal(t, 2, dropped)
	assert.Equal(t, 4, v.Len())
}

func TestRunTestdataJob(t *testing.T) {
	job, err := config.Load("testdata/job.yaml")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(job, &out, zap.NewNop()))
	assert.Equal(t, "1 5 11 12 15 19 20 30 88 99\ndropped: 0\n20: found at 6\n5: found at 1\n99: found at 9\n7: not found\n", out.String())
}
