package services

import (
	"context"
	"errors"

	"github.com/username/sellerprofit/src/export"
	"github.com/username/sellerprofit/src/models"
	"github.com/username/sellerprofit/src/parsers"
)

var ErrSessionNotFound = errors.New("session not found or expired")

// SessionResult is the state of a reconciliation session as returned to clients.
// Records carry metrics where a cost is known; Prompts list the keys still asking for one.
type SessionResult struct {
	SessionID   string                    `json:"session_id"`
	Variant     string                    `json:"variant"`
	Records     []models.ReconciledRecord `json:"records"`
	Prompts     []models.ManualPrompt     `json:"prompts"`
	Summary     models.MetricsSummary     `json:"summary"`
	CostEntries int                       `json:"cost_entries"`
	Complete    bool                      `json:"complete"` // every record has a cost, export is allowed
}

// SessionService runs the reconciliation pipeline for uploaded files and keeps each
// session's state in memory until it expires or is deleted.
type SessionService interface {
	CreateSession(ctx context.Context, variantName string, transactions parsers.Input, costs []parsers.Input) (*SessionResult, error)
	GetResult(ctx context.Context, sessionID string) (*SessionResult, error)
	SubmitManualCosts(ctx context.Context, sessionID string, entries map[string]string) (*SessionResult, error)
	Export(ctx context.Context, sessionID string, format string) (*export.File, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
