package queries

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"carhaul-portal/internal/pkg/config"
	"carhaul-portal/internal/pkg/errs"
	"carhaul-portal/internal/usecase/converter"
	"carhaul-portal/internal/usecase/readmodel"
)

// ErrSuperseded is returned to a lookup that was cancelled because the same
// caller typed more. The client should discard the response.
var ErrSuperseded = errs.New("lookup superseded by a newer query")

type inflightLookup struct {
	id     uint64
	cancel context.CancelFunc
}

type cachedLookup struct {
	input  string
	result []readmodel.SuggestionRM
}

// SuggestQueries proxies address autocomplete with real cancellation: a new
// query from the same caller cancels the one still in flight, so stale
// responses are killed at the transport instead of being filtered client-side.
// The last successful result per caller is kept to absorb repeat keystrokes.
type SuggestQueries struct {
	maps MapsGateway
	cfg  config.SuggestConfig

	mu       sync.Mutex
	nextID   uint64
	inflight map[string]inflightLookup
	last     map[string]cachedLookup
}

func NewSuggestQueries(maps MapsGateway, cfg config.SuggestConfig) *SuggestQueries {
	return &SuggestQueries{
		maps:     maps,
		cfg:      cfg,
		inflight: make(map[string]inflightLookup),
		last:     make(map[string]cachedLookup),
	}
}

// Autocomplete returns suggestions for the given input, keyed by caller.
// Inputs shorter than the configured minimum return an empty list without an
// upstream call.
func (s *SuggestQueries) Autocomplete(ctx context.Context, key, input string) ([]readmodel.SuggestionRM, error) {
	input = strings.TrimSpace(input)
	if utf8.RuneCountInString(input) < s.cfg.MinQueryLength {
		return []readmodel.SuggestionRM{}, nil
	}

	s.mu.Lock()
	if cached, ok := s.last[key]; ok && cached.input == input {
		result := cached.result
		s.mu.Unlock()
		return result, nil
	}
	if prev, ok := s.inflight[key]; ok {
		prev.cancel()
	}
	lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.LookupTimeout)
	s.nextID++
	id := s.nextID
	s.inflight[key] = inflightLookup{id: id, cancel: cancel}
	s.mu.Unlock()

	suggestions, err := s.maps.Autocomplete(lookupCtx, input)

	s.mu.Lock()
	superseded := s.inflight[key].id != id
	if !superseded {
		delete(s.inflight, key)
	}
	s.mu.Unlock()
	// Read the context state before cancel(); afterwards Err() reports
	// Canceled regardless of why the lookup ended.
	ctxErr := lookupCtx.Err()
	cancel()

	if superseded {
		return nil, ErrSuperseded
	}
	if err != nil {
		if ctxErr == context.Canceled {
			return nil, ErrSuperseded
		}
		return nil, errs.Wrap(err, "autocomplete upstream")
	}

	result := converter.SuggestionsToRM(suggestions)
	s.mu.Lock()
	s.last[key] = cachedLookup{input: input, result: result}
	s.mu.Unlock()
	return result, nil
}
