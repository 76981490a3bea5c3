package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-reviewlens/types"
)

func sampleRun() ([]types.ProductInfo, []types.ProductAnalysisEntry, types.CrossSummary) {
	products := []types.ProductInfo{{Name: "テスト商品", Price: 1980}}
	analyses := []types.ProductAnalysisEntry{
		{ProductInfo: products[0], Analysis: types.ProductAnalysis{TotalReviews: 3}},
	}
	summary := types.CrossSummary{Category: "イヤホン", ProductCount: 1, TotalReviews: 3}
	return products, analyses, summary
}

func TestLatestBeforeAnyRun(t *testing.T) {
	s := New()

	_, err := s.Latest()
	assert.ErrorIs(t, err, ErrNoAnalysis)

	_, err = s.ProductEntry(0)
	assert.ErrorIs(t, err, ErrNoAnalysis)
}

func TestSaveAndLatest(t *testing.T) {
	s := New()
	products, analyses, summary := sampleRun()

	run := s.Save(products, analyses, summary)
	assert.NotEmpty(t, run.RunID)
	assert.False(t, run.AnalyzedAt.IsZero())

	got, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, run.RunID, got.RunID)
	assert.Equal(t, "イヤホン", got.Summary.Category)
}

func TestSaveReplacesPreviousRun(t *testing.T) {
	s := New()
	products, analyses, summary := sampleRun()

	first := s.Save(products, analyses, summary)
	second := s.Save(products, analyses, summary)
	assert.NotEqual(t, first.RunID, second.RunID)

	got, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, second.RunID, got.RunID)
}

func TestProductEntry(t *testing.T) {
	s := New()
	products, analyses, summary := sampleRun()
	s.Save(products, analyses, summary)

	entry, err := s.ProductEntry(0)
	require.NoError(t, err)
	assert.Equal(t, "テスト商品", entry.ProductInfo.Name)

	_, err = s.ProductEntry(-1)
	assert.Error(t, err)
	_, err = s.ProductEntry(1)
	assert.Error(t, err)
}
