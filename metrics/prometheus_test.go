package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRowsSkippedTotal(t *testing.T) {
	before := testutil.ToFloat64(RowsSkippedTotal.WithLabelValues("missing_score"))
	RowsSkippedTotal.WithLabelValues("missing_score").Add(2)
	assert.Equal(t, before+2, testutil.ToFloat64(RowsSkippedTotal.WithLabelValues("missing_score")))
}

func TestMatchesExtracted(t *testing.T) {
	MatchesExtracted.Set(7)
	expected := `
# HELP liguilla_matches_extracted Matches read from the workbook by the last build
# TYPE liguilla_matches_extracted gauge
liguilla_matches_extracted 7
`
	assert.NoError(t, testutil.CollectAndCompare(MatchesExtracted, strings.NewReader(expected)))
}
