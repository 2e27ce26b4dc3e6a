package api

import (
	"context"
	"errors"
	"net/http"

	"attentionops/backend/internal/common"
	"attentionops/backend/internal/mission"
	"attentionops/backend/internal/observability"
)

const (
	defaultHistoryLimit = 50
	topicLogPreviewLen  = 40
)

func (s *Server) handleGenerateMission(w http.ResponseWriter, r *http.Request) {
	var req generateMissionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	composeReq, err := validateGenerateRequest(req, s.composer.Bank(), s.cfg.TopicMaxLen)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	composition := s.composer.Compose(composeReq)
	for _, fallback := range composition.Fallbacks {
		s.metrics.IncPhrasebankFallback(string(fallback))
	}

	ctx, cancel := s.storeContext(r.Context())
	defer cancel()
	record, err := s.missions.Create(ctx, composition.Draft())
	if err != nil {
		s.storeFailed(w, r, "create", err)
		return
	}

	s.metrics.IncMissionGenerated(string(record.Platform), string(record.Style), record.MissionNumber)

	fields := observability.Fields{
		"request_id":     requestIDFromRequest(r),
		"mission_id":     record.ID,
		"mission_number": record.MissionNumber,
		"platform":       string(record.Platform),
		"style":          string(record.Style),
		"goal":           string(record.Goal),
		"topic_preview":  common.TruncateRunes(record.Topic, topicLogPreviewLen),
		"bank_version":   s.composer.Bank().Version(),
	}
	if len(composition.Fallbacks) > 0 {
		fields["fallbacks"] = composition.Fallbacks
	}
	s.logger.Info("mission_generated", fields)

	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleGetCurrentMission(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.storeContext(r.Context())
	defer cancel()

	current, err := s.missions.Current(ctx)
	if err != nil {
		s.storeFailed(w, r, "current", err)
		return
	}
	// A nil pointer encodes as JSON null.
	writeJSON(w, http.StatusOK, current)
}

func (s *Server) handleGetMissionCount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.storeContext(r.Context())
	defer cancel()

	count, err := s.missions.Count(ctx)
	if err != nil {
		s.storeFailed(w, r, "count", err)
		return
	}
	writeJSON(w, http.StatusOK, count)
}

func (s *Server) handleGetMissionHistory(w http.ResponseWriter, r *http.Request) {
	maxLimit := s.cfg.HistoryMaxLimit
	if maxLimit <= 0 {
		maxLimit = 200
	}
	limit, err := parsePaginationLimit(r.URL.Query().Get("limit"), min(defaultHistoryLimit, maxLimit), 1, maxLimit)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	ctx, cancel := s.storeContext(r.Context())
	defer cancel()

	history, err := s.missions.History(ctx, limit)
	if err != nil {
		s.storeFailed(w, r, "history", err)
		return
	}
	if history == nil {
		history = []mission.Mission{}
	}
	writeJSON(w, http.StatusOK, history)
}

func (s *Server) storeContext(parent context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.DBQueryTimeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, s.cfg.DBQueryTimeout)
}

func (s *Server) storeFailed(w http.ResponseWriter, r *http.Request, operation string, err error) {
	s.metrics.IncStoreError(operation)
	s.logger.Error("mission_store_failed", observability.Fields{
		"request_id": requestIDFromRequest(r),
		"route":      routePatternFromRequest(r),
		"operation":  operation,
		"error":      err.Error(),
	})
	if isTimeout(err) {
		writeServiceUnavailable(w, "mission store unavailable")
		return
	}
	writeInternalError(w, "could not "+operationVerb(operation))
}

func operationVerb(operation string) string {
	switch operation {
	case "create":
		return "save mission"
	case "current":
		return "load current mission"
	case "count":
		return "load mission count"
	case "history":
		return "load mission history"
	default:
		return "complete request"
	}
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
