package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/skillcoder/kguard/internal/logic/discovery"
	"github.com/skillcoder/kguard/internal/logic/remediation"
)

// API serves the operator dashboard endpoints.
type API struct {
	logger      *slog.Logger
	discovery   discoverer
	remediation remediator
	scanner     imageScanner
	audit       auditLister
	auth        *Authenticator
	corsOrigins []string
}

// NewAPI wires the dashboard endpoints. A nil audit disables GET /api/k3s/audit
// (it answers with an empty list). Without corsOrigins no CORS headers are sent.
func NewAPI(
	logger *slog.Logger,
	discovery discoverer,
	remediation remediator,
	scanner imageScanner,
	audit auditLister,
	auth *Authenticator,
	corsOrigins []string,
) *API {
	return &API{
		logger:      logger,
		discovery:   discovery,
		remediation: remediation,
		scanner:     scanner,
		audit:       audit,
		auth:        auth,
		corsOrigins: corsOrigins,
	}
}

// Routes registers the API on r. CORS preflights are answered before authentication.
func (a *API) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		if len(a.corsOrigins) > 0 {
			r.Use(corsHandler(a.corsOrigins))
		}

		r.Route("/k3s", a.k3sRoutes)
		r.Route("/security", a.securityRoutes)
	})
}

func (a *API) k3sRoutes(r chi.Router) {
	r.Get("/health", a.handleHealth)
	r.Get("/deployments/all", a.handleDeployments)

	r.Group(func(r chi.Router) {
		r.Use(a.auth.Middleware)

		r.Get("/node-capacity", a.handleNodeCapacity)
		r.Get("/status", a.handleClusterStatus)
		r.Get("/metrics/{namespace}", a.handleMetrics)
		r.Get("/logs/{namespace}/{pod}", a.handleLogs)
		r.Delete("/restart/{namespace}/{pod}", a.handleRestart)
		r.Post("/remediate/{namespace}/{pod}", a.handleRemediate)
		r.Post("/patch-image", a.handlePatchImage)
		r.Get("/patch-logs/{namespace}/{deployment}", a.handlePatchLogs)
		r.Get("/audit", a.handleAudit)
	})
}

func (a *API) securityRoutes(r chi.Router) {
	r.Use(a.auth.Middleware)

	r.Post("/scan", a.handleScan)
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(a.logger, w, r, http.StatusOK, a.discovery.ListInstancesQuery(r.Context()))
}

func (a *API) handleDeployments(w http.ResponseWriter, r *http.Request) {
	writeJSON(a.logger, w, r, http.StatusOK, a.discovery.ListWorkloadsQuery(r.Context()))
}

func (a *API) handleNodeCapacity(w http.ResponseWriter, r *http.Request) {
	writeJSON(a.logger, w, r, http.StatusOK, a.discovery.NodeCapacityQuery(r.Context()))
}

func (a *API) handleClusterStatus(w http.ResponseWriter, r *http.Request) {
	status, err := a.discovery.ClusterStatusQuery(r.Context())
	if err != nil {
		writeError(a.logger, w, r, err)

		return
	}

	writeJSON(a.logger, w, r, http.StatusOK, status)
}

// handleMetrics accepts an explicit quota via cpu_quota (millicores) and
// memory_quota (MiB). Without one the observed node capacity is used; the
// capacity fallback never produces percentages.
func (a *API) handleMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	quota, err := quotaFromQuery(r)
	if err != nil {
		writeError(a.logger, w, r, err)

		return
	}

	if quota == nil {
		if capacity := a.discovery.NodeCapacityQuery(ctx); !capacity.Fallback {
			q := capacity.Quota()
			quota = &q
		}
	}

	samples := a.discovery.PodMetricsQuery(ctx, chi.URLParam(r, "namespace"), quota)

	writeJSON(a.logger, w, r, http.StatusOK, samples)
}

func (a *API) handleLogs(w http.ResponseWriter, r *http.Request) {
	logs := a.discovery.PodLogsQuery(
		r.Context(),
		chi.URLParam(r, "namespace"),
		chi.URLParam(r, "pod"),
		r.URL.Query().Get("container"),
	)

	writeJSON(a.logger, w, r, http.StatusOK, logsResponse{Logs: logs})
}

func (a *API) handleRestart(w http.ResponseWriter, r *http.Request) {
	result, err := a.remediation.ForceRestartCommand(
		r.Context(),
		chi.URLParam(r, "namespace"),
		chi.URLParam(r, "pod"),
	)

	a.writeResult(w, r, result, err)
}

type remediateRequest struct {
	Replicas *int32 `json:"replicas"`
}

func (a *API) handleRemediate(w http.ResponseWriter, r *http.Request) {
	var req remediateRequest

	if err := decodeBody(w, r, &req, true); err != nil {
		writeError(a.logger, w, r, err)

		return
	}

	replicas := defaultScaleReplicas
	if req.Replicas != nil {
		replicas = *req.Replicas
	}

	result, err := a.remediation.ScaleDownCommand(
		r.Context(),
		chi.URLParam(r, "namespace"),
		chi.URLParam(r, "pod"),
		replicas,
	)

	a.writeResult(w, r, result, err)
}

type patchImageRequest struct {
	Namespace  string `json:"namespace"`
	Deployment string `json:"deployment"`
	NewImage   string `json:"new_image"`
}

func (a *API) handlePatchImage(w http.ResponseWriter, r *http.Request) {
	var req patchImageRequest

	if err := decodeBody(w, r, &req, false); err != nil {
		writeError(a.logger, w, r, err)

		return
	}

	result, err := a.remediation.PatchImageCommand(r.Context(), req.Namespace, req.Deployment, req.NewImage)

	a.writeResult(w, r, result, err)
}

func (a *API) handlePatchLogs(w http.ResponseWriter, r *http.Request) {
	logs := a.remediation.RecentEventsQuery(
		r.Context(),
		chi.URLParam(r, "namespace"),
		chi.URLParam(r, "deployment"),
	)

	writeJSON(a.logger, w, r, http.StatusOK, logsResponse{Logs: logs})
}

func (a *API) handleAudit(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit

	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(a.logger, w, r, fmt.Errorf("%w: limit must be a positive integer", ErrBadRequest))

			return
		}

		limit = n
	}

	if a.audit == nil {
		writeJSON(a.logger, w, r, http.StatusOK, []remediation.AuditEntry{})

		return
	}

	entries, err := a.audit.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(a.logger, w, r, err)

		return
	}

	writeJSON(a.logger, w, r, http.StatusOK, entries)
}

type scanRequest struct {
	Image string `json:"image"`
}

func (a *API) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest

	if err := decodeBody(w, r, &req, false); err != nil {
		writeError(a.logger, w, r, err)

		return
	}

	report, err := a.scanner.ScanImageCommand(r.Context(), req.Image)
	if err != nil {
		writeError(a.logger, w, r, err)

		return
	}

	writeJSON(a.logger, w, r, http.StatusOK, report)
}

func (a *API) writeResult(w http.ResponseWriter, r *http.Request, result remediation.Result, err error) {
	if err != nil {
		writeError(a.logger, w, r, err)

		return
	}

	writeJSON(a.logger, w, r, http.StatusOK, result)
}

// decodeBody reads a JSON object from the request. An empty body is accepted
// only when allowEmpty is set.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	err := decoder.Decode(dst)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF) && allowEmpty:
		return nil
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: request body is required", ErrBadRequest)
	default:
		return fmt.Errorf("%w: decode body: %w", ErrBadRequest, err)
	}
}

func quotaFromQuery(r *http.Request) (*discovery.Quota, error) {
	query := r.URL.Query()
	rawCPU := strings.TrimSpace(query.Get("cpu_quota"))
	rawMemory := strings.TrimSpace(query.Get("memory_quota"))

	if rawCPU == "" && rawMemory == "" {
		return nil, nil //nolint:nilnil // no quota requested
	}

	quota := &discovery.Quota{}

	var err error

	if rawCPU != "" {
		if quota.CPUMillicores, err = strconv.ParseInt(rawCPU, 10, 64); err != nil {
			return nil, fmt.Errorf("%w: cpu_quota: %w", ErrBadRequest, err)
		}
	}

	if rawMemory != "" {
		if quota.MemoryMiB, err = strconv.ParseInt(rawMemory, 10, 64); err != nil {
			return nil, fmt.Errorf("%w: memory_quota: %w", ErrBadRequest, err)
		}
	}

	return quota, nil
}
