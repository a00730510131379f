package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primeworks/pprimes"
)

func findTo30(t *testing.T) *pprimes.Result {
	t.Helper()
	res, err := pprimes.Find(context.Background(), 30, pprimes.WithWorkers(4))
	require.NoError(t, err)
	return res
}

func TestWriteTextWithList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, findTo30(t), Options{ListPrimes: true}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 11, "ten primes plus the summary line")
	assert.Equal(t, "2", lines[0])
	assert.Equal(t, "29", lines[9])
	assert.Contains(t, lines[10], "total primes: 10")
	assert.Contains(t, lines[10], "4 workers")
}

func TestWriteTextSummaryOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, findTo30(t), Options{}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "total primes: 10")
}

func TestCSVRows(t *testing.T) {
	res := findTo30(t)

	var buf bytes.Buffer
	w := NewCSV(&buf)
	require.NoError(t, w.WriteRun(res, 1))
	require.NoError(t, w.WriteRun(res, 2))
	require.NoError(t, w.Flush())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus two rows")

	assert.Equal(t, []string{"max_value", "workers", "trial", "elapsed_ms", "total_primes"}, records[0])
	assert.Equal(t, "30", records[1][0])
	assert.Equal(t, "4", records[1][1])
	assert.Equal(t, "1", records[1][2])
	assert.Equal(t, "10", records[1][4])
	assert.Equal(t, "2", records[2][2])
}
