package orchestrator

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JAaron93/PhenomenalLayout-sub001/layout"
)

func mustAdapter(t *testing.T, translator Translator) *Adapter {
	t.Helper()
	engine, err := layout.NewEngine(layout.DefaultConfig())
	require.NoError(t, err)
	return NewAdapter(engine, translator)
}

func mustContext(t *testing.T, width, height, fontSize float64) layout.LayoutContext {
	t.Helper()
	bbox, err := layout.NewBoundingBox(0, 0, width, height)
	require.NoError(t, err)
	font, err := layout.NewFontInfo("Helvetica", fontSize, layout.WeightNormal, layout.StyleNormal, layout.RGBColor{})
	require.NoError(t, err)
	return layout.LayoutContext{BBox: bbox, Font: font}
}

// stubTranslator implements Translator only.
type stubTranslator struct {
	translations map[string]string
	err          error
}

func (s *stubTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if out, ok := s.translations[text]; ok {
		return out, nil
	}
	return text, nil
}

// confidenceTranslator additionally implements ConfidenceTranslator.
type confidenceTranslator struct {
	stubTranslator
	confidence float64
}

func (c *confidenceTranslator) TranslateWithConfidence(ctx context.Context, text, sourceLang, targetLang string) (string, float64, error) {
	out, err := c.stubTranslator.Translate(ctx, text, sourceLang, targetLang)
	return out, c.confidence, err
}

// batchTranslator additionally implements BatchTranslator; it records
// whether TranslateBatch was actually invoked so tests can assert the
// adapter prefers it over per-block calls.
type batchTranslator struct {
	stubTranslator
	batchCalls int32
}

func (b *batchTranslator) TranslateBatch(ctx context.Context, texts []string, sourceLang, targetLang string) ([]string, error) {
	atomic.AddInt32(&b.batchCalls, 1)
	out := make([]string, len(texts))
	for i, text := range texts {
		translated, err := b.stubTranslator.Translate(ctx, text, sourceLang, targetLang)
		if err != nil {
			return nil, err
		}
		out[i] = translated
	}
	return out, nil
}

func TestTranslateBlock_Basic(t *testing.T) {
	translator := &stubTranslator{translations: map[string]string{"hello": "hola"}}
	adapter := mustAdapter(t, translator)

	result, err := adapter.TranslateBlock(context.Background(), Block{
		OriginalText: "hello",
		Context:      mustContext(t, 100, 20, 12),
	}, "en", "es")

	require.NoError(t, err)
	assert.Equal(t, "hola", result.RawTranslation)
	assert.Equal(t, "hello", result.SourceText)
	assert.NotEmpty(t, result.AdjustedText)
}

func TestTranslateBlock_UsesConfidenceTranslatorWhenAvailable(t *testing.T) {
	translator := &confidenceTranslator{
		stubTranslator: stubTranslator{translations: map[string]string{"hello": "hola"}},
		confidence:     0.42,
	}
	adapter := mustAdapter(t, translator)

	result, err := adapter.TranslateBlock(context.Background(), Block{
		OriginalText: "hello",
		Context:      mustContext(t, 100, 20, 12),
	}, "en", "es")

	require.NoError(t, err)
	require.NotNil(t, result.TranslationConfidence)
	assert.InDelta(t, 0.42, *result.TranslationConfidence, 1e-9)
}

func TestTranslateBlock_TranslatorErrorIsClassified(t *testing.T) {
	translator := &stubTranslator{err: errors.New("boom")}
	adapter := mustAdapter(t, translator)

	_, err := adapter.TranslateBlock(context.Background(), Block{
		OriginalText: "hello",
		Context:      mustContext(t, 100, 20, 12),
	}, "en", "es")

	require.Error(t, err)
	var te *TranslatorError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, ProviderError, te.Kind)
}

func TestTranslateBatch_PreservesOrderWithoutBatchAPI(t *testing.T) {
	translator := &stubTranslator{translations: map[string]string{
		"one":   "uno",
		"two":   "dos",
		"three": "tres",
	}}
	adapter := mustAdapter(t, translator)

	blocks := []Block{
		{OriginalText: "one", Context: mustContext(t, 100, 20, 12)},
		{OriginalText: "two", Context: mustContext(t, 100, 20, 12)},
		{OriginalText: "three", Context: mustContext(t, 100, 20, 12)},
	}

	results, err := adapter.TranslateBatch(context.Background(), blocks, "en", "es")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "uno", results[0].RawTranslation)
	assert.Equal(t, "dos", results[1].RawTranslation)
	assert.Equal(t, "tres", results[2].RawTranslation)
}

func TestTranslateBatch_PrefersBatchAPIWhenAvailable(t *testing.T) {
	translator := &batchTranslator{stubTranslator: stubTranslator{translations: map[string]string{
		"one": "uno",
		"two": "dos",
	}}}
	adapter := mustAdapter(t, translator)

	blocks := []Block{
		{OriginalText: "one", Context: mustContext(t, 100, 20, 12)},
		{OriginalText: "two", Context: mustContext(t, 100, 20, 12)},
	}

	results, err := adapter.TranslateBatch(context.Background(), blocks, "en", "es")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "uno", results[0].RawTranslation)
	assert.Equal(t, "dos", results[1].RawTranslation)
	assert.Equal(t, int32(1), atomic.LoadInt32(&translator.batchCalls))
}

func TestTranslateBatch_ErrorIndexesCorrelateByPosition(t *testing.T) {
	translator := &stubTranslator{err: errors.New("boom")}
	adapter := mustAdapter(t, translator)

	blocks := []Block{
		{OriginalText: "one", Context: mustContext(t, 100, 20, 12)},
	}

	_, err := adapter.TranslateBatch(context.Background(), blocks, "en", "es")
	require.Error(t, err)
	var te *TranslatorError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 0, te.Index)
}

// failAfterTranslator succeeds for every text except failOn, which it
// fails on every call; used to force a mid-batch failure while letting
// other blocks complete concurrently.
type failAfterTranslator struct {
	stubTranslator
	failOn string
}

func (f *failAfterTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if text == f.failOn {
		return "", errors.New("boom")
	}
	return f.stubTranslator.Translate(ctx, text, sourceLang, targetLang)
}

func TestTranslateBatch_ReturnsPartialResultsOnMidBatchFailure(t *testing.T) {
	translator := &failAfterTranslator{
		stubTranslator: stubTranslator{translations: map[string]string{
			"one":   "uno",
			"three": "tres",
		}},
		failOn: "two",
	}
	adapter := mustAdapter(t, translator)

	blocks := []Block{
		{OriginalText: "one", Context: mustContext(t, 100, 20, 12)},
		{OriginalText: "two", Context: mustContext(t, 100, 20, 12)},
		{OriginalText: "three", Context: mustContext(t, 100, 20, 12)},
	}

	results, err := adapter.TranslateBatch(context.Background(), blocks, "en", "es")
	require.Error(t, err)
	var te *TranslatorError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 1, te.Index)

	require.Len(t, results, 3)
	assert.Equal(t, "uno", results[0].RawTranslation)
	assert.Equal(t, "tres", results[2].RawTranslation)
}
