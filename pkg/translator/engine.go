// Package translator turns Chinese (or mixed Chinese and Latin) phrases into
// lowercase identifier fragments.
//
// An Engine tries its strategies from most to least trustworthy and returns
// the first confident result:
//
//	already Latin  -> formatted input                  1.0
//	exact term     -> the stored primary                1.0
//	pattern rule   -> verb/qualifier/unit composition   0.8-0.9
//	segmentation   -> 3/2/1 character windows           0.6
//	partial term   -> longest contained term            0.7
//	phonetic       -> per-character romanization        0.3
//
// A partial term result is only returned when no segmentation window hits the
// store, which happens when the contained term is longer than any window.
//
// Translate never fails. Results are cached per (text, context) until the term
// store changes through AddCustomTerm.
package translator

import (
	"io"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/japaniel/namer/pkg/dictionary"
	"github.com/japaniel/namer/pkg/identifier"
	"github.com/japaniel/namer/pkg/pinyin"
	"github.com/japaniel/namer/pkg/rules"
)

// DefaultContext is the context used by BatchTranslate and Suggestions.
const DefaultContext = "general"

// DefaultCacheSize bounds the number of cached results.
const DefaultCacheSize = 4096

// patternThreshold is the lowest rule confidence accepted before the engine
// moves on to weaker strategies.
const patternThreshold = 0.8

// latinRatio is the share of Latin identifier characters above which input is
// treated as already translated.
const latinRatio = 0.8

type cacheKey struct {
	text    string
	context string
}

// Engine translates phrases against a term store. The zero value is not
// usable; construct one with New or NewFromFile.
//
// An Engine may be shared between goroutines: the store and the cache guard
// their own state.
type Engine struct {
	store   *dictionary.Store
	rules   *rules.Set
	cache   *lru.Cache[cacheKey, Result]
	logger  *slog.Logger
	fold    bool
	ruleSet []rules.Rule
	size    int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for load failures and debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithCacheSize sets the maximum number of cached results. Non-positive sizes
// keep the default.
func WithCacheSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.size = n
		}
	}
}

// WithRules replaces the built-in pattern rules. Rules run in the given order.
func WithRules(rs ...rules.Rule) Option {
	return func(e *Engine) { e.ruleSet = rs }
}

// WithWidthFolding controls whether full-width Latin letters and digits are
// folded to ASCII before translation. It is on by default.
func WithWidthFolding(on bool) Option {
	return func(e *Engine) { e.fold = on }
}

// New returns an engine over store. A nil store is treated as empty.
func New(store *dictionary.Store, opts ...Option) *Engine {
	if store == nil {
		store = dictionary.NewStore()
	}
	e := &Engine{
		store:   store,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		fold:    true,
		ruleSet: rules.Default(),
		size:    DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "translator")
	e.rules = rules.NewSet(e.translateText, e.ruleSet...)
	// lru.New only fails for non-positive sizes, which the options rule out.
	e.cache, _ = lru.New[cacheKey, Result](e.size)
	return e
}

// NewFromFile loads a JSON term database from path. A missing or malformed
// file is logged once and the engine starts with an empty store.
func NewFromFile(path string, opts ...Option) *Engine {
	e := New(nil, opts...)
	store, err := dictionary.LoadFile(path)
	if err != nil {
		e.logger.Warn("term database unavailable, continuing with empty store",
			slog.String("path", path),
			slog.Any("error", err))
		return e
	}
	e.store = store
	e.logger.Debug("term database loaded",
		slog.String("path", path),
		slog.Int("terms", store.Len()))
	return e
}

// Store returns the engine's term store. Terms added to it directly are not
// seen by cached results; use AddCustomTerm to keep the cache coherent.
func (e *Engine) Store() *dictionary.Store { return e.store }

// Translate converts text into an identifier fragment. The returned result is
// a copy and may be modified by the caller.
func (e *Engine) Translate(text, context string) Result {
	text = e.normalize(text)
	if text == "" {
		return Result{Source: SourceEmpty}
	}

	if isMostlyLatin(text) {
		primary := identifier.Format(text)
		return Result{
			Primary:    primary,
			Phonetic:   primary,
			Confidence: ConfidenceExact,
			Source:     SourceAlreadyLatin,
		}
	}

	key := cacheKey{text: text, context: context}
	if cached, ok := e.cache.Get(key); ok {
		return cached.clone()
	}

	res := e.resolve(text, context)
	e.cache.Add(key, res)
	e.logger.Debug("translated",
		slog.String("text", text),
		slog.String("primary", res.Primary),
		slog.String("source", string(res.Source)))
	return res.clone()
}

// resolve runs the strategies in order of decreasing confidence.
func (e *Engine) resolve(text, context string) Result {
	phonetic := identifier.Format(pinyin.TextToLatin(text))

	if rec, ok := e.store.Lookup(text); ok {
		if primary := identifier.Format(rec.Primary); primary != "" {
			return Result{
				Primary:      primary,
				Alternatives: formatAll(rec.Alternatives),
				Phonetic:     phonetic,
				Confidence:   ConfidenceExact,
				Source:       SourceExact,
				Category:     rec.Category,
				MatchedSpan:  text,
			}
		}
	}

	if out, ok := e.rules.Match(text, context); ok && out.Confidence >= patternThreshold {
		if primary := identifier.Format(out.Primary); primary != "" {
			return Result{
				Primary:    primary,
				Phonetic:   phonetic,
				Confidence: min(out.Confidence, 1),
				Source:     SourcePattern,
			}
		}
	}

	// A partial hit only stands when segmentation found nothing; otherwise
	// its primary is kept as an alternative.
	partial, hasPartial := e.partial(text)

	if seg, ok := e.segment(text); ok {
		seg.Phonetic = phonetic
		if hasPartial && partial.Primary != seg.Primary && !slices.Contains(seg.Alternatives, partial.Primary) {
			seg.Alternatives = append(seg.Alternatives, partial.Primary)
		}
		return seg
	}

	if hasPartial {
		partial.Phonetic = phonetic
		return partial
	}

	primary := phonetic
	if primary == "" {
		primary = identifier.Format(pinyin.CodePoints(text))
	}
	return Result{
		Primary:    primary,
		Phonetic:   phonetic,
		Confidence: ConfidencePhonetic,
		Source:     SourcePhonetic,
	}
}

// translateText is the callback handed to the pattern rules.
func (e *Engine) translateText(text, context string) string {
	return e.Translate(text, context).Primary
}

func (e *Engine) normalize(text string) string {
	if e.fold {
		return dictionary.NormalizePhrase(text)
	}
	return strings.TrimSpace(text)
}

func isMostlyLatin(text string) bool {
	total := utf8.RuneCountInString(text)
	if total == 0 {
		return false
	}
	latin := 0
	for _, r := range text {
		if identifier.IsLatinRune(r) {
			latin++
		}
	}
	return float64(latin)/float64(total) > latinRatio
}

func formatAll(in []string) []string {
	var out []string
	for _, s := range in {
		if f := identifier.Format(s); f != "" {
			out = append(out, f)
		}
	}
	return out
}
