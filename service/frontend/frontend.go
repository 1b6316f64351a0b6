package frontend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mycok/uRank/corpus"
	"github.com/mycok/uRank/metrics"
	"github.com/mycok/uRank/search"
	"github.com/mycok/uRank/webpage"
)

const (
	searchEndpoint    = "/search"
	pageRankEndpoint  = "/pagerank"
	relevanceEndpoint = "/relevance"
	statsEndpoint     = "/stats"
	pagesEndpoint     = "/pages"
	metricsEndpoint   = "/metrics"
)

var errNoEngine = errors.New("no search engine has been built yet")

// Service exposes the published search engine over a JSON HTTP API. It
// satisfies the service.Service interface.
type Service struct {
	config Config
	router *chi.Mux
}

// New creates and returns a fully configured front-end service instance.
func New(config Config) (*Service, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("frontend service: config validation failed: %w", err)
	}

	svc := &Service{
		config: config,
		router: chi.NewRouter(),
	}

	svc.router.Get(searchEndpoint, svc.search)
	svc.router.Get(pageRankEndpoint, svc.pageRank)
	svc.router.Get(relevanceEndpoint, svc.relevance)
	svc.router.Get(statsEndpoint, svc.stats)
	svc.router.Post(pagesEndpoint, svc.submitPage)
	svc.router.Handle(metricsEndpoint, config.Metrics.Handler())

	svc.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("endpoint not found"))
	})

	return svc, nil
}

// Name returns the name of the service.
func (svc *Service) Name() string { return "frontend" }

// ServeHTTP dispatches requests to the API endpoints.
func (svc *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

// Run executes the service and blocks until the context gets cancelled
// or an error occurs.
func (svc *Service) Run(ctx context.Context) error {
	l, err := net.Listen("tcp", svc.config.ListenAddr)
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	srv := &http.Server{
		Addr:              svc.config.ListenAddr,
		Handler:           svc.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancelFn := context.WithTimeout(context.Background(), svc.config.ShutdownTimeout)
		defer cancelFn()
		_ = srv.Shutdown(shutdownCtx)
	}()

	svc.config.Logger.WithField("addr", l.Addr().String()).Info("started service")
	defer svc.config.Logger.Info("stopped service")

	if err = srv.Serve(l); errors.Is(err, http.ErrServerClosed) {
		// Server closed gracefully.
		err = nil
	}

	return err
}

type searchResponse struct {
	Query   []string        `json:"query"`
	Total   uint64          `json:"total"`
	Offset  int             `json:"offset"`
	Limit   int             `json:"limit"`
	Results []search.Result `json:"results"`
}

func (svc *Service) search(w http.ResponseWriter, r *http.Request) {
	startedAt := time.Now()
	status := svc.handleSearch(w, r)
	svc.recordQuery("search", status, startedAt)
}

func (svc *Service) handleSearch(w http.ResponseWriter, r *http.Request) int {
	engine := svc.config.EngineAPI.Engine()
	if engine == nil {
		return writeError(w, http.StatusServiceUnavailable, errNoEngine)
	}

	limit, err := intParam(r, "limit", search.DefaultResultLimit)
	if err != nil || limit <= 0 {
		return writeError(w, http.StatusBadRequest, errors.New("invalid value for limit, must be > 0"))
	}
	if limit > svc.config.MaxResultsPerPage {
		limit = svc.config.MaxResultsPerPage
	}

	offset, err := intParam(r, "offset", 0)
	if err != nil || offset < 0 {
		return writeError(w, http.StatusBadRequest, errors.New("invalid value for offset, must be >= 0"))
	}

	terms := search.ParseQuery(r.URL.Query().Get("q"))
	it, err := engine.Search(search.Query{Terms: terms, Limit: limit, Offset: offset})
	if err != nil {
		svc.config.Logger.WithField("err", err).Error("search query execution failed")

		return writeError(w, http.StatusInternalServerError, err)
	}
	defer func() { _ = it.Close() }()

	resp := searchResponse{
		Query:   terms,
		Total:   it.TotalCount(),
		Offset:  offset,
		Limit:   limit,
		Results: make([]search.Result, 0, limit),
	}
	for it.Next() {
		resp.Results = append(resp.Results, it.Result())
	}

	if err := it.Error(); err != nil {
		return writeError(w, http.StatusInternalServerError, err)
	}

	return writeJSON(w, http.StatusOK, resp)
}

func (svc *Service) pageRank(w http.ResponseWriter, r *http.Request) {
	startedAt := time.Now()
	status := svc.handlePageRank(w, r)
	svc.recordQuery("pagerank", status, startedAt)
}

func (svc *Service) handlePageRank(w http.ResponseWriter, r *http.Request) int {
	engine := svc.config.EngineAPI.Engine()
	if engine == nil {
		return writeError(w, http.StatusServiceUnavailable, errNoEngine)
	}

	if !r.URL.Query().Has("uri") {
		return writeError(w, http.StatusBadRequest, errors.New("uri parameter not provided"))
	}

	uri := r.URL.Query().Get("uri")
	score, err := engine.PageRank(uri)
	if err != nil {
		return writeLookupError(w, err)
	}

	return writeJSON(w, http.StatusOK, map[string]interface{}{
		"uri":      uri,
		"pagerank": score,
	})
}

func (svc *Service) relevance(w http.ResponseWriter, r *http.Request) {
	startedAt := time.Now()
	status := svc.handleRelevance(w, r)
	svc.recordQuery("relevance", status, startedAt)
}

func (svc *Service) handleRelevance(w http.ResponseWriter, r *http.Request) int {
	engine := svc.config.EngineAPI.Engine()
	if engine == nil {
		return writeError(w, http.StatusServiceUnavailable, errNoEngine)
	}

	if !r.URL.Query().Has("uri") {
		return writeError(w, http.StatusBadRequest, errors.New("uri parameter not provided"))
	}

	uri := r.URL.Query().Get("uri")
	terms := search.ParseQuery(r.URL.Query().Get("q"))
	score, err := engine.Relevance(terms, uri)
	if err != nil {
		return writeLookupError(w, err)
	}

	return writeJSON(w, http.StatusOK, map[string]interface{}{
		"uri":       uri,
		"query":     terms,
		"relevance": score,
	})
}

func (svc *Service) stats(w http.ResponseWriter, _ *http.Request) {
	engine := svc.config.EngineAPI.Engine()
	if engine == nil {
		writeError(w, http.StatusServiceUnavailable, errNoEngine)

		return
	}

	writeJSON(w, http.StatusOK, engine.Stats())
}

func (svc *Service) submitPage(w http.ResponseWriter, r *http.Request) {
	if svc.config.PageStore == nil {
		writeError(w, http.StatusNotImplemented, errors.New("page submission is disabled"))

		return
	}

	var doc corpus.Document
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPageBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("malformed page: %w", err))

		return
	}

	if err := svc.config.PageStore.UpsertPage(&doc); err != nil {
		if errors.Is(err, webpage.ErrInvalidArgument) {
			writeError(w, http.StatusBadRequest, err)

			return
		}

		svc.config.Logger.WithField("err", err).Error("could not upsert submitted page")
		writeError(w, http.StatusInternalServerError, errors.New("could not store page; please try again later"))

		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id":  doc.ID.String(),
		"uri": doc.URI,
	})
}

func (svc *Service) recordQuery(queryType string, status int, startedAt time.Time) {
	outcome := metrics.StatusSuccess
	if status >= http.StatusBadRequest {
		outcome = metrics.StatusError
	}

	svc.config.Metrics.RecordQuery(queryType, outcome, time.Since(startedAt))
}

func intParam(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}

	return strconv.Atoi(raw)
}

func writeLookupError(w http.ResponseWriter, err error) int {
	if errors.Is(err, webpage.ErrNotFound) {
		return writeError(w, http.StatusNotFound, err)
	}

	return writeError(w, http.StatusInternalServerError, err)
}

func writeError(w http.ResponseWriter, status int, err error) int {
	return writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) int {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)

	return status
}
