// Package reading turns casts into readings by resolving their hexagrams.
package reading

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/qrzn23/iching/internal/core/casting"
	"github.com/qrzn23/iching/internal/hexagram"
	apperrors "github.com/qrzn23/iching/internal/platform/errors"
)

const tracerName = "github.com/qrzn23/iching/internal/reading"

// Reading is a cast with its resolved hexagrams.
type Reading struct {
	Cast    casting.Result
	Primary hexagram.Entry
	// Changed is set only when at least one line moves.
	Changed *hexagram.Entry
}

// View is a single hexagram looked up without casting.
type View struct {
	Key   int
	Lines casting.Lines
	Entry hexagram.Entry
}

// ViewRequest selects a hexagram by exactly one of key, King Wen ordinal or
// a lower/upper trigram pair.
type ViewRequest struct {
	Key     *int
	KingWen *int
	Lower   string
	Upper   string
}

// Service resolves casts against a hexagram lookup.
type Service struct {
	lookup hexagram.Lookup
	tracer trace.Tracer
}

// NewService builds a Service. The lookup must be fully initialised.
func NewService(lookup hexagram.Lookup) *Service {
	return &Service{
		lookup: lookup,
		tracer: otel.Tracer(tracerName),
	}
}

// Cast casts with seed and resolves the result.
func (s *Service) Cast(ctx context.Context, seed int64) (Reading, error) {
	return s.Resolve(ctx, casting.Cast(seed))
}

// Resolve looks up both hexagrams of result. A key without an entry is an
// integrity failure and is returned as an error.
func (s *Service) Resolve(ctx context.Context, result casting.Result) (Reading, error) {
	_, span := s.tracer.Start(ctx, "reading.Resolve", trace.WithAttributes(
		attribute.Int64("iching.seed", result.Seed),
		attribute.String("iching.method", result.MethodID),
		attribute.Int("iching.key_primary", result.KeyPrimary),
		attribute.Int("iching.key_changed", result.KeyChanged),
		attribute.Int("iching.changing_lines", len(result.ChangingLines)),
	))
	defer span.End()

	primary, err := hexagram.ResolveKey(s.lookup, result.KeyPrimary)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Reading{}, fmt.Errorf("resolve primary hexagram: %w", err)
	}

	out := Reading{Cast: result, Primary: primary}
	if result.HasChanges() {
		changed, err := hexagram.ResolveKey(s.lookup, result.KeyChanged)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return Reading{}, fmt.Errorf("resolve changed hexagram: %w", err)
		}
		out.Changed = &changed
	}
	return out, nil
}

// View resolves a single hexagram without casting.
func (s *Service) View(ctx context.Context, req ViewRequest) (View, error) {
	_, span := s.tracer.Start(ctx, "reading.View")
	defer span.End()

	key, err := s.viewKey(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return View{}, err
	}
	span.SetAttributes(attribute.Int("iching.key", key))

	entry, err := hexagram.ResolveKey(s.lookup, key)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return View{}, fmt.Errorf("resolve hexagram: %w", err)
	}
	return View{Key: key, Lines: casting.LinesFromKey(key), Entry: entry}, nil
}

func (s *Service) viewKey(req ViewRequest) (int, error) {
	hasTrigrams := strings.TrimSpace(req.Lower) != "" || strings.TrimSpace(req.Upper) != ""
	selectors := 0
	for _, set := range []bool{req.Key != nil, req.KingWen != nil, hasTrigrams} {
		if set {
			selectors++
		}
	}
	if selectors != 1 {
		return 0, fmt.Errorf("exactly one of key, king wen or trigrams is required")
	}

	switch {
	case req.Key != nil:
		return *req.Key, nil
	case req.KingWen != nil:
		entry, err := hexagram.ResolveKingWen(s.lookup, *req.KingWen)
		if err != nil {
			return 0, fmt.Errorf("resolve king wen: %w", err)
		}
		return entry.KeyPrimary, nil
	default:
		lower, err := parseTrigram(req.Lower)
		if err != nil {
			return 0, err
		}
		upper, err := parseTrigram(req.Upper)
		if err != nil {
			return 0, err
		}
		return casting.Compose(lower, upper), nil
	}
}

func parseTrigram(name string) (casting.Trigram, error) {
	t, ok := casting.TrigramByName(name)
	if !ok {
		return 0, apperrors.WithMetadata(apperrors.CodeUnknownTrigram,
			fmt.Sprintf("unknown trigram %q", name),
			map[string]string{"trigram": name})
	}
	return t, nil
}
