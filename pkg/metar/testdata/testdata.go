// Package testdata embeds a corpus of real-world report lines for
// decoder tests.
package testdata

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"strings"
	"testing"

	_ "embed"

	"github.com/stretchr/testify/require"
)

//go:embed metar.txt.gz
var corpus []byte

// Reports returns the embedded corpus, one raw METAR per entry. Blank lines
// are skipped.
func Reports(t testing.TB) []string {
	t.Helper()

	zr, err := gzip.NewReader(bytes.NewReader(corpus))
	require.NoError(t, err)

	var reports []string
	scanner := bufio.NewScanner(zr)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			reports = append(reports, line)
		}
	}
	require.NoError(t, scanner.Err())
	require.NoError(t, zr.Close())
	return reports
}
