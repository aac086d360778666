// Package insights is the single entry point that fuses the analytic
// engines. It harmonizes session history, fans out to the analytics,
// predictive and compatibility engines plus the base evaluator, merges
// their outputs into one consolidated bundle and caches the result.
package insights

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/marqos/signmentor/internal/analytics"
	"github.com/marqos/signmentor/internal/compat"
	"github.com/marqos/signmentor/internal/evaluator"
	"github.com/marqos/signmentor/internal/history"
	"github.com/marqos/signmentor/internal/mentor"
	"github.com/marqos/signmentor/internal/predict"
	"github.com/marqos/signmentor/internal/session"
	"github.com/marqos/signmentor/internal/student"
)

// Evaluator is the baseline assessment collaborator.
type Evaluator interface {
	Evaluate(ctx context.Context, mentorID string, records []history.Record) (evaluator.BaseEvaluation, error)
}

// Bundle is the consolidated insight object.
type Bundle struct {
	MentorID        string                   `json:"mentor_id"`
	StudentName     string                   `json:"student_name"`
	Evaluation      evaluator.BaseEvaluation `json:"evaluation"`
	Metrics         analytics.Metrics        `json:"metrics"`
	Projection      predict.Projection       `json:"projection"`
	Compatibility   compat.DetailedAnalysis  `json:"compatibility"`
	Recommendations []string                 `json:"recommendations"`
	Confidence      float64                  `json:"confidence"`
	GeneratedAt     time.Time                `json:"generated_at"`
}

// Service coordinates the engines behind a time-boxed cache.
type Service struct {
	eval  Evaluator
	cache *Cache
	now   func() time.Time
}

// NewService creates an insight service with the default 30-minute cache.
func NewService(eval Evaluator) *Service {
	return &Service{
		eval:  eval,
		cache: NewCache(DefaultTTL),
		now:   time.Now,
	}
}

// GenerateInsights returns the consolidated bundle for a mentor/student
// pair. A cached bundle younger than the TTL is returned as-is; otherwise
// all four analyses run concurrently on their own read-only snapshots and
// the merged result is cached. Evaluator errors are logged and re-raised,
// never masked with defaults.
func (s *Service) GenerateInsights(ctx context.Context, profile mentor.Profile, st *student.State, summaries []*session.Summary) (*Bundle, error) {
	records := history.Harmonize(summaries)
	key := cacheKey(profile.ID, st, records)

	if b := s.cache.Get(key); b != nil {
		return b, nil
	}

	snapshot := st.Clone()

	var (
		wg         sync.WaitGroup
		metrics    analytics.Metrics
		projection predict.Projection
		fit        compat.DetailedAnalysis
		baseEval   evaluator.BaseEvaluation
		evalErr    error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		metrics = analytics.Compute(records)
	}()
	go func() {
		defer wg.Done()
		projection = predict.Forecast(snapshot, records)
	}()
	go func() {
		defer wg.Done()
		fit = compat.Analyze(profile, snapshot, records)
	}()
	go func() {
		defer wg.Done()
		baseEval, evalErr = s.eval.Evaluate(ctx, profile.ID, records)
	}()
	wg.Wait()

	if evalErr != nil {
		fmt.Fprintf(os.Stderr, "insights: base evaluation failed for mentor %s: %v\n", profile.ID, evalErr)
		return nil, fmt.Errorf("base evaluation: %w", evalErr)
	}

	b := &Bundle{
		MentorID:      profile.ID,
		Evaluation:    baseEval,
		Metrics:       metrics,
		Projection:    projection,
		Compatibility: fit,
		Confidence:    confidence(len(records), metrics, fit),
		GeneratedAt:   s.now(),
	}
	if st != nil {
		b.StudentName = st.Name
	}
	b.Recommendations = consolidate(fit, projection, metrics)

	s.cache.Put(key, b)
	return b, nil
}

// cacheKey derives the cache key from mentor ID, student name and the
// concatenated session IDs, so any new closed session invalidates the entry.
func cacheKey(mentorID string, st *student.State, records []history.Record) string {
	var b strings.Builder
	b.WriteString(mentorID)
	b.WriteByte('|')
	if st != nil {
		b.WriteString(st.Name)
	}
	for _, r := range records {
		b.WriteByte('|')
		b.WriteString(r.SessionID)
	}
	return b.String()
}

// consolidate merges recommendations from all sources, deduplicated in
// order: compatibility advice first, then prediction focus areas, then
// pattern-derived guidance.
func consolidate(fit compat.DetailedAnalysis, projection predict.Projection, metrics analytics.Metrics) []string {
	seen := make(map[string]bool)
	merged := []string{}

	add := func(recs ...string) {
		for _, r := range recs {
			if r == "" || seen[r] {
				continue
			}
			seen[r] = true
			merged = append(merged, r)
		}
	}

	add(fit.Recommendations...)
	for _, area := range projection.FocusAreas {
		add("Focus upcoming sessions on " + area)
	}
	for _, p := range metrics.ErrorPatterns {
		if advice, ok := patternAdvice[p]; ok {
			add(advice)
		}
	}
	return merged
}

// patternAdvice translates detected error patterns into actionable guidance.
var patternAdvice = map[string]string{
	"temporal_confusion":     "Re-teach time-line placement with explicit before/after contrasts",
	"attention_drift":        "Shorten sessions to match the student's attention span",
	"spatial_grammar_gaps":   "Drill spatial referencing before introducing new vocabulary",
	"inconsistent_retention": "Add brief review rounds of previously mastered concepts",
}

// confidence blends history depth, analytic consistency signals and the
// compatibility confidence: 0.4/0.3/0.3.
func confidence(sessions int, metrics analytics.Metrics, fit compat.DetailedAnalysis) float64 {
	depth := float64(sessions) / 10
	if depth > 1 {
		depth = 1
	}
	consistency := (metrics.ProgressConsistency + metrics.EmotionalStability) / 2
	return 0.4*depth + 0.3*consistency + 0.3*fit.Confidence
}
