package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/username/sellerprofit/src/export"
	"github.com/username/sellerprofit/src/logger"
	"github.com/username/sellerprofit/src/models"
	"github.com/username/sellerprofit/src/parsers"
)

// session is guarded by mu; the pipeline never touches two sessions at once.
type session struct {
	mu      sync.Mutex
	id      string
	variant models.Variant
	records []models.TransactionRecord
	costs   *models.CostTable
	manual  models.ManualEntries
	outcome *Outcome
}

type sessionServiceImpl struct {
	pipeline *Pipeline
	store    *cache.Cache
	ttl      time.Duration
}

func NewSessionService(pipeline *Pipeline, store *cache.Cache, ttl time.Duration) SessionService {
	return &sessionServiceImpl{pipeline: pipeline, store: store, ttl: ttl}
}

// NewSessionStore returns the in-memory cache backing sessions.
func NewSessionStore(ttl, cleanupInterval time.Duration) *cache.Cache {
	return cache.New(ttl, cleanupInterval)
}

func (s *sessionServiceImpl) CreateSession(ctx context.Context, variantName string, transactions parsers.Input, costs []parsers.Input) (*SessionResult, error) {
	start := time.Now()
	variant, err := parsers.GetVariant(variantName)
	if err != nil {
		return nil, err
	}

	records, table, err := s.pipeline.Ingest(variant, transactions, costs)
	if err != nil {
		logger.FromContext(ctx).Warn("Upload rejected", "variant", variant.Name, "error", err)
		return nil, err
	}

	sess := &session{
		id:      uuid.NewString(),
		variant: variant,
		records: records,
		costs:   table,
		manual:  models.ManualEntries{},
	}
	outcome, err := s.pipeline.Run(variant, records, table, sess.manual)
	if err != nil {
		return nil, err
	}
	sess.outcome = outcome
	s.store.Set(sess.id, sess, s.ttl)

	logger.FromContext(logger.WithSession(ctx, sess.id)).Info("Session created",
		"variant", variant.Name,
		"records", len(records),
		"costEntries", table.Len(),
		"pendingKeys", len(outcome.Worklist),
		"duration", time.Since(start))
	return sess.result(), nil
}

func (s *sessionServiceImpl) GetResult(ctx context.Context, sessionID string) (*SessionResult, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.result(), nil
}

// SubmitManualCosts merges entries into the session's manual values and re-runs the pipeline.
// Keys that are not pending are ignored. A rejected value leaves the session unchanged.
func (s *sessionServiceImpl) SubmitManualCosts(ctx context.Context, sessionID string, entries map[string]string) (*SessionResult, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(logger.WithSession(ctx, sessionID))

	sess.mu.Lock()
	defer sess.mu.Unlock()

	pending := make(map[string]bool, len(sess.outcome.Worklist))
	for _, item := range sess.outcome.Worklist {
		pending[item.Key] = true
	}

	next := sess.manual.Clone()
	var ignored []string
	for key, value := range entries {
		if !pending[key] {
			ignored = append(ignored, key)
			continue
		}
		next[key] = value
	}
	if len(ignored) > 0 {
		sort.Strings(ignored)
		log.Warn("Ignoring manual costs for keys that are not pending", "keys", ignored)
	}

	outcome, err := s.pipeline.Run(sess.variant, sess.records, sess.costs, next)
	if err != nil {
		log.Warn("Manual costs rejected", "error", err)
		return nil, err
	}
	sess.manual = next
	sess.outcome = outcome
	s.store.Set(sess.id, sess, s.ttl)

	log.Info("Manual costs applied", "submitted", len(entries), "unresolvedRecords", outcome.Summary.UnresolvedRecords)
	return sess.result(), nil
}

func (s *sessionServiceImpl) Export(ctx context.Context, sessionID string, format string) (*export.File, error) {
	exporter, err := export.GetExporter(format)
	if err != nil {
		return nil, err
	}
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	records, err := s.pipeline.Final(sess.outcome)
	if err != nil {
		return nil, err
	}
	file, err := exporter.Export(records)
	if err != nil {
		return nil, err
	}
	logger.FromContext(logger.WithSession(ctx, sessionID)).Info("Session exported", "file", file.Name, "records", len(records))
	return file, nil
}

func (s *sessionServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := s.lookup(sessionID); err != nil {
		return err
	}
	s.store.Delete(sessionID)
	logger.FromContext(logger.WithSession(ctx, sessionID)).Info("Session deleted")
	return nil
}

func (s *sessionServiceImpl) lookup(sessionID string) (*session, error) {
	cached, found := s.store.Get(sessionID)
	if !found {
		return nil, ErrSessionNotFound
	}
	return cached.(*session), nil
}

// result must be called with mu held.
func (sess *session) result() *SessionResult {
	return &SessionResult{
		SessionID:   sess.id,
		Variant:     sess.variant.Name,
		Records:     sess.outcome.Records,
		Prompts:     sess.outcome.Prompts,
		Summary:     sess.outcome.Summary,
		CostEntries: sess.costs.Len(),
		Complete:    sess.outcome.Complete(),
	}
}
