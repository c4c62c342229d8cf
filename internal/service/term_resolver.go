package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-services/internal/models"
	"github.com/noah-isme/school-services/pkg/config"
	appErrors "github.com/noah-isme/school-services/pkg/errors"
)

// TermResolver resolves a term id to the term and its date window. Every
// failure, including an unreachable term service, is reported as not found.
type TermResolver interface {
	Resolve(ctx context.Context, termID int64) (*models.Term, error)
}

func termNotFound() error {
	return appErrors.Clone(appErrors.ErrNotFound, "term not found")
}

// TermAPIResolver looks terms up through the term service HTTP API.
type TermAPIResolver struct {
	baseURL string
	client  *http.Client
	metrics *MetricsService
	logger  *zap.Logger
}

// NewTermAPIResolver builds a resolver against cfg.BaseURL.
func NewTermAPIResolver(cfg config.TermAPIConfig, metrics *MetricsService, logger *zap.Logger) *TermAPIResolver {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TermAPIResolver{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve fetches {baseURL}/{termID}.
func (r *TermAPIResolver) Resolve(ctx context.Context, termID int64) (*models.Term, error) {
	start := time.Now()
	term, outcome, err := r.fetch(ctx, termID)
	r.metrics.ObserveTermLookup(outcome, time.Since(start))
	if err != nil {
		r.logger.Warn("term lookup failed",
			zap.Int64("term_id", termID),
			zap.String("outcome", outcome),
			zap.Error(err),
		)
		return nil, termNotFound()
	}
	return term, nil
}

func (r *TermAPIResolver) fetch(ctx context.Context, termID int64) (*models.Term, string, error) {
	url := r.baseURL + "/" + strconv.FormatInt(termID, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, TermLookupUnavailable, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, TermLookupUnavailable, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, TermLookupNotFound, errors.New("term service returned 404")
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, TermLookupUnavailable, fmt.Errorf("term service returned %d", resp.StatusCode)
	}

	var envelope struct {
		Data *models.Term `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, TermLookupUnavailable, fmt.Errorf("decode term: %w", err)
	}
	if envelope.Data == nil {
		return nil, TermLookupNotFound, errors.New("term service returned no term")
	}
	return envelope.Data, TermLookupFound, nil
}

type termFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Term, error)
}

// LocalTermResolver resolves terms from an in-process term store.
type LocalTermResolver struct {
	repo    termFinder
	metrics *MetricsService
	logger  *zap.Logger
}

// NewLocalTermResolver wraps repo as a TermResolver.
func NewLocalTermResolver(repo termFinder, metrics *MetricsService, logger *zap.Logger) *LocalTermResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalTermResolver{repo: repo, metrics: metrics, logger: logger}
}

// Resolve loads the term by id.
func (r *LocalTermResolver) Resolve(ctx context.Context, termID int64) (*models.Term, error) {
	start := time.Now()
	term, err := r.repo.FindByID(ctx, termID)
	switch {
	case err == nil && term != nil:
		r.metrics.ObserveTermLookup(TermLookupFound, time.Since(start))
		return term, nil
	case err == nil || errors.Is(err, sql.ErrNoRows):
		r.metrics.ObserveTermLookup(TermLookupNotFound, time.Since(start))
	default:
		r.metrics.ObserveTermLookup(TermLookupUnavailable, time.Since(start))
		r.logger.Warn("term lookup failed", zap.Int64("term_id", termID), zap.Error(err))
	}
	return nil, termNotFound()
}
