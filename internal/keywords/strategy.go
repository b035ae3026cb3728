package keywords

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-matcher/internal/llm"
)

// WeightedKeyword is the normalized keyword payload: a mandatory keyword and
// a weight in [0,1]. Loose payloads (bare strings, objects with optional
// weight) are coerced into this shape once at the boundary so downstream code
// never branches on payload shape.
type WeightedKeyword struct {
	Keyword string  `json:"keyword"`
	Weight  float64 `json:"weight"`
}

// Default weights assigned by the rule-based strategy
const (
	weightTechnicalTerm  = 1.0
	weightContentKeyword = 0.5
)

// Strategy produces weighted keywords for a text. A failed strategy reports
// an error and the chain moves on; no control flow depends on error types.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, text string) ([]WeightedKeyword, error)
}

// Chain is an explicit ordered list of extraction strategies. Extract walks
// the list and returns the first success.
type Chain struct {
	strategies []Strategy
}

// NewChain creates a chain from strategies in priority order.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// Extract runs strategies in order and returns the first successful result
// together with the name of the strategy that produced it. It fails only when
// every strategy fails, which cannot happen when the rule-based strategy is
// the terminal entry.
func (c *Chain) Extract(ctx context.Context, text string) ([]WeightedKeyword, string, error) {
	var lastErr error
	for _, s := range c.strategies {
		result, err := s.Extract(ctx, text)
		if err != nil {
			lastErr = err
			continue
		}
		return result, s.Name(), nil
	}
	return nil, "", fmt.Errorf("all extraction strategies failed: %w", lastErr)
}

// RuleBasedStrategy extracts weighted keywords with the deterministic
// Extractor: technical terms weigh more than plain content keywords, and
// duplicates keep the maximum weight. It never fails.
type RuleBasedStrategy struct {
	extractor *Extractor
}

// NewRuleBasedStrategy creates the terminal rule-based strategy.
func NewRuleBasedStrategy(extractor *Extractor) *RuleBasedStrategy {
	return &RuleBasedStrategy{extractor: extractor}
}

// Name identifies the strategy in output metadata.
func (s *RuleBasedStrategy) Name() string { return "rule_based" }

// Extract implements Strategy.
func (s *RuleBasedStrategy) Extract(_ context.Context, text string) ([]WeightedKeyword, error) {
	weights := make(map[string]float64)
	order := make([]string, 0)

	for _, kw := range s.extractor.Keywords(text) {
		if _, seen := weights[kw]; !seen {
			order = append(order, kw)
		}
		if weights[kw] < weightContentKeyword {
			weights[kw] = weightContentKeyword
		}
	}
	for _, term := range s.extractor.TechnicalTerms(text) {
		if _, seen := weights[term]; !seen {
			order = append(order, term)
		}
		if weights[term] < weightTechnicalTerm {
			weights[term] = weightTechnicalTerm
		}
	}

	result := make([]WeightedKeyword, 0, len(order))
	for _, kw := range order {
		result = append(result, WeightedKeyword{Keyword: kw, Weight: weights[kw]})
	}
	return result, nil
}

// LLMStrategy extracts weighted keywords through the language-model service.
// Failures (no client, transport errors, unparseable output) are reported to
// the chain, which falls through to the rule-based strategy.
type LLMStrategy struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewLLMStrategy creates an LLM-backed strategy. A nil client yields a
// strategy that always fails, which the chain skips.
func NewLLMStrategy(client llm.Client, tier llm.ModelTier) *LLMStrategy {
	return &LLMStrategy{client: client, tier: tier}
}

// Name identifies the strategy in output metadata.
func (s *LLMStrategy) Name() string { return "llm" }

// Extract implements Strategy.
func (s *LLMStrategy) Extract(ctx context.Context, text string) ([]WeightedKeyword, error) {
	if s.client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}

	prompt := llm.BuildExtractionPrompt(llm.KeywordWeightsSchema(), text)
	response, err := s.client.GenerateJSON(ctx, prompt, s.tier)
	if err != nil {
		return nil, fmt.Errorf("LLM extraction failed: %w", err)
	}

	return CoerceWeightedKeywords([]byte(response))
}

// CoerceWeightedKeywords parses a JSON array whose elements may be bare
// strings or {keyword, weight} objects into normalized WeightedKeyword
// records. Bare strings get weight 1.0; missing weights default to 1.0;
// weights are clamped to [0,1]; entries without a keyword are rejected.
func CoerceWeightedKeywords(data []byte) ([]WeightedKeyword, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keyword payload is not a JSON array: %w", err)
	}

	result := make([]WeightedKeyword, 0, len(raw))
	for i, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			result = append(result, WeightedKeyword{Keyword: s, Weight: 1.0})
			continue
		}

		var obj struct {
			Keyword string   `json:"keyword"`
			Weight  *float64 `json:"weight"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return nil, fmt.Errorf("keyword payload element %d has unsupported shape: %w", i, err)
		}
		if obj.Keyword == "" {
			return nil, fmt.Errorf("keyword payload element %d is missing the keyword field", i)
		}

		weight := 1.0
		if obj.Weight != nil {
			weight = *obj.Weight
		}
		if weight < 0 {
			weight = 0
		}
		if weight > 1 {
			weight = 1
		}

		result = append(result, WeightedKeyword{Keyword: obj.Keyword, Weight: weight})
	}

	return result, nil
}
