package orchestrator

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/JAaron93/PhenomenalLayout-sub001/layout"
)

// Adapter is the Orchestrator Adapter (C8): a pure function over an
// injected Translator capability and a layout.Engine. It holds no
// mutable state, matching the Engine's own thread-safety guarantee
// (§5) — a single Adapter may be shared across goroutines.
type Adapter struct {
	engine     *layout.Engine
	translator Translator
	log        *logrus.Entry
}

// NewAdapter builds an Adapter from a validated Engine and a Translator
// capability.
func NewAdapter(engine *layout.Engine, translator Translator) *Adapter {
	return &Adapter{engine: engine, translator: translator, log: logrus.WithField("component", "orchestrator.adapter")}
}

// Block is one unit of input to TranslateBlock/TranslateBatch: the
// original text plus the LayoutContext the OCR stage produced for it
// (§6.2).
type Block struct {
	OriginalText string
	Context      layout.LayoutContext
}

// TranslateBlock runs §4.8 steps 1-7 for a single block.
func (a *Adapter) TranslateBlock(ctx context.Context, block Block, sourceLang, targetLang string) (TranslationResult, error) {
	return a.translateOne(ctx, block, sourceLang, targetLang, -1)
}

func (a *Adapter) translateOne(ctx context.Context, block Block, sourceLang, targetLang string, index int) (TranslationResult, error) {
	raw, confidence, err := a.callTranslator(ctx, block.OriginalText, sourceLang, targetLang)
	if err != nil {
		return TranslationResult{}, err
	}

	lctx := block.Context
	res := a.engine.Layout(block.OriginalText, raw, lctx.BBox, lctx.Font, targetLang, confidence, lctx.OCRConfidence)

	return TranslationResult{
		SourceText:            block.OriginalText,
		RawTranslation:        raw,
		AdjustedText:          res.Adjusted.Text,
		Analysis:              res.Analysis,
		Strategy:              res.Strategy,
		AdjustedFont:          res.Adjusted.Font,
		AdjustedBBox:          res.Adjusted.BBox,
		Direction:             lctx.Direction,
		QualityScore:          res.Quality.OverallScore,
		OCRConfidence:         lctx.OCRConfidence,
		TranslationConfidence: confidence,
	}, nil
}

// callTranslator calls translate_with_confidence when the translator
// offers it, otherwise falls back to the required Translate (§6.1).
// Errors are mapped into a *TranslatorError with index -1; index is
// overwritten by the batch caller.
func (a *Adapter) callTranslator(ctx context.Context, text, sourceLang, targetLang string) (string, *float64, error) {
	if ct, ok := a.translator.(ConfidenceTranslator); ok {
		raw, conf, err := ct.TranslateWithConfidence(ctx, text, sourceLang, targetLang)
		if err != nil {
			return "", nil, classifyTranslatorError(err, -1)
		}
		return raw, &conf, nil
	}

	raw, err := a.translator.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		return "", nil, classifyTranslatorError(err, -1)
	}
	return raw, nil, nil
}

// TranslateBatch runs translate_batch (§4.8, §5): it preserves input
// order in its output regardless of the underlying translator's
// concurrency, and correlates results by position, not content. If the
// translator supports BatchTranslator, that single call is preferred;
// otherwise each block is translated concurrently via errgroup and
// results are written back into their original slots. On a mid-batch
// failure the returned slice still carries whichever results completed
// before the error; callers get the partial successes alongside the
// error rather than losing them.
func (a *Adapter) TranslateBatch(ctx context.Context, blocks []Block, sourceLang, targetLang string) ([]TranslationResult, error) {
	batchID := uuid.New().String()
	log := a.log.WithFields(logrus.Fields{"batch_id": batchID, "blocks": len(blocks)})
	log.Debug("starting batch translation")

	var results []TranslationResult
	var err error
	if bt, ok := a.translator.(BatchTranslator); ok {
		results, err = a.translateBatchViaBatchAPI(ctx, bt, blocks, sourceLang, targetLang)
	} else {
		results, err = a.translateBatchConcurrently(ctx, blocks, sourceLang, targetLang)
	}

	if err != nil {
		log.WithError(err).Warn("batch translation failed")
		return results, err
	}
	log.Debug("batch translation complete")
	return results, nil
}

func (a *Adapter) translateBatchViaBatchAPI(ctx context.Context, bt BatchTranslator, blocks []Block, sourceLang, targetLang string) ([]TranslationResult, error) {
	texts := make([]string, len(blocks))
	for i, b := range blocks {
		texts[i] = b.OriginalText
	}

	rawTranslations, err := bt.TranslateBatch(ctx, texts, sourceLang, targetLang)
	if err != nil {
		return nil, classifyTranslatorError(err, -1)
	}

	results := make([]TranslationResult, len(blocks))
	for i, block := range blocks {
		lctx := block.Context
		res := a.engine.Layout(block.OriginalText, rawTranslations[i], lctx.BBox, lctx.Font, targetLang, nil, lctx.OCRConfidence)
		results[i] = TranslationResult{
			SourceText:     block.OriginalText,
			RawTranslation: rawTranslations[i],
			AdjustedText:   res.Adjusted.Text,
			Analysis:       res.Analysis,
			Strategy:       res.Strategy,
			AdjustedFont:   res.Adjusted.Font,
			AdjustedBBox:   res.Adjusted.BBox,
			Direction:      lctx.Direction,
			QualityScore:   res.Quality.OverallScore,
			OCRConfidence:  lctx.OCRConfidence,
		}
	}
	return results, nil
}

func (a *Adapter) translateBatchConcurrently(ctx context.Context, blocks []Block, sourceLang, targetLang string) ([]TranslationResult, error) {
	results := make([]TranslationResult, len(blocks))

	g, gctx := errgroup.WithContext(ctx)
	for i, block := range blocks {
		i, block := i, block
		g.Go(func() error {
			res, err := a.translateOne(gctx, block, sourceLang, targetLang, i)
			if err != nil {
				if te, ok := err.(*TranslatorError); ok {
					te.Index = i
				}
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
