package idiomate

import "context"

// translateSegment decides how one segment's translation is obtained.
//
// Idiom segments try the curated table first; a hit never touches the
// provider. Without a curated entry the idiom's canonical form (not the
// literal matched text) is sent to the provider as one unit. Plain
// segments delegate their content to the provider directly. A provider
// failure reports StrategyFailed so the caller can record the degraded
// outcome.
func (t *Translator) translateSegment(ctx context.Context, seg Segment, src, tgt string) (string, Strategy, error) {
	if seg.Kind == SegmentIdiom {
		if curated, ok := t.curated.Lookup(seg.Canonical, src, tgt); ok {
			t.logger.Debug("using curated idiom translation",
				"idiom", seg.Canonical, "translation", curated)
			return curated, StrategyCurated, nil
		}

		t.logger.Warn("no curated translation, translating idiom as a unit",
			"idiom", seg.Canonical, "source", src, "target", tgt)

		out, err := t.translateCached(ctx, seg.Canonical, src, tgt)
		if err != nil {
			return "", StrategyFailed, err
		}
		return out, StrategyNeuralUnit, nil
	}

	out, err := t.translateCached(ctx, seg.Text, src, tgt)
	if err != nil {
		return "", StrategyFailed, err
	}
	return out, StrategyNeuralPlain, nil
}
