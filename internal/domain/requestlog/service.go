package requestlog

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultLimit applies when the caller gives no usable limit.
	DefaultLimit = 50

	// MaxLimit is the hard cap on returned log entries.
	MaxLimit = 200
)

// ListParams are the raw /logs query parameters.
type ListParams struct {
	Limit  string
	Method string
	Status string
	Path   string
}

// Result mirrors the /logs response: the applied filter is echoed back so
// callers can see how their parameters were interpreted.
type Result struct {
	Count         int            `json:"count"`
	Limit         int64          `json:"limit"`
	FilterApplied map[string]any `json:"filterApplied"`
	Logs          []Entry        `json:"logs"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List queries the audit store. Out-of-range or unparsable limits fall back
// to the default rather than erroring; unparsable status filters are ignored.
func (s *Service) List(ctx context.Context, params ListParams) (Result, error) {
	query := buildQuery(params)

	logs, err := s.repo.Find(ctx, query)
	if err != nil {
		return Result{}, fmt.Errorf("find logs: %w", err)
	}
	if logs == nil {
		logs = []Entry{}
	}

	return Result{
		Count:         len(logs),
		Limit:         query.Limit,
		FilterApplied: filterApplied(query),
		Logs:          logs,
	}, nil
}

func buildQuery(params ListParams) Query {
	limit := int64(DefaultLimit)
	if parsed, err := strconv.ParseInt(strings.TrimSpace(params.Limit), 10, 64); err == nil && parsed > 0 {
		limit = parsed
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	query := Query{
		Limit:        limit,
		Method:       strings.ToUpper(strings.TrimSpace(params.Method)),
		PathContains: strings.TrimSpace(params.Path),
	}
	if status, err := strconv.Atoi(strings.TrimSpace(params.Status)); err == nil {
		query.Status = &status
	}
	return query
}

func filterApplied(query Query) map[string]any {
	filter := map[string]any{}
	if query.Method != "" {
		filter["method"] = query.Method
	}
	if query.Status != nil {
		filter["statusCode"] = *query.Status
	}
	if query.PathContains != "" {
		filter["path"] = map[string]string{"$regex": query.PathContains, "$options": "i"}
	}
	return filter
}
