package metar

import "strings"

// tokenStream is the whitespace-split form of one raw report. Two boundary
// tokens partition it: the first trend marker (NOSIG/TEMPO/BECMG) ends the
// observed body, and RMK ends the trend section. The field parsers only ever
// see body tokens; trend groups describe a forecast, not the present
// conditions. A stream is built per decode call and discarded afterwards.
type tokenStream struct {
	tokens []string
	// trend is the index of the first trend marker before rmk, or rmk when
	// absent.
	trend int
	// rmk is the index of the RMK token, or len(tokens) when absent.
	rmk int
}

// tokenize splits raw into tokens and locates the trend and remarks
// boundaries. Empty or whitespace-only input yields an empty stream;
// classifying individual tokens is deferred to the field parsers.
func tokenize(raw string) tokenStream {
	tokens := strings.Fields(raw)
	rmk := len(tokens)
	for i, tok := range tokens {
		if tok == "RMK" {
			rmk = i
			break
		}
	}
	trend := rmk
	for i, tok := range tokens[:rmk] {
		if trendRegex.MatchString(tok) {
			trend = i
			break
		}
	}
	return tokenStream{tokens: tokens, trend: trend, rmk: rmk}
}

func (ts tokenStream) empty() bool { return len(ts.tokens) == 0 }

// body returns the observed tokens between the station/time header and the
// trend boundary. start is the index of the first post-header token.
func (ts tokenStream) body(start int) []string {
	if start >= ts.trend {
		return nil
	}
	return ts.tokens[start:ts.trend]
}

// trendSection returns the tokens from the first trend marker up to the
// remarks boundary, or nil when the report carries no trend group.
func (ts tokenStream) trendSection() []string {
	if ts.trend >= ts.rmk {
		return nil
	}
	return ts.tokens[ts.trend:ts.rmk]
}
