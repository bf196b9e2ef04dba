package server

import (
	"encoding/json"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/elite100/visualizer-go/log"
	"github.com/elite100/visualizer-go/pkg/model"
	"github.com/elite100/visualizer-go/pkg/service"
)

type vizHandler struct {
	viz      *service.VizService
	logger   *log.Logger
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func registerHandlers(viz *service.VizService) *http.ServeMux {
	meter := otel.Meter("github.com/elite100/visualizer-go/pkg/cmd/server")
	requests, _ := meter.Int64Counter("visualize.requests")
	duration, _ := meter.Float64Histogram("visualize.duration",
		metric.WithUnit("ms"))
	h := &vizHandler{
		viz:      viz,
		logger:   log.GetLogger("api"),
		requests: requests,
		duration: duration,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/options", h.options)
	mux.HandleFunc("POST /api/visualize", h.visualize)
	mux.HandleFunc("GET /healthz", h.healthz)
	return mux
}

func (h *vizHandler) options(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.viz.Options())
}

func (h *vizHandler) visualize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	var sel model.FilterSelection
	if err := json.NewDecoder(r.Body).Decode(&sel); err != nil {
		http.Error(w, "invalid filter selection", http.StatusBadRequest)
		return
	}
	res := h.viz.Update(sel)

	h.requests.Add(r.Context(), 1)
	h.duration.Record(r.Context(), float64(time.Since(start).Milliseconds()))
	h.logger.Debug("visualize",
		log.Any("selection", sel),
		log.Int("matches", res.Summary.VehicleCount),
		log.Duration("took", time.Since(start)))
	h.writeJSON(w, res)
}

func (h *vizHandler) healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *vizHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("could not write response", log.ErrorField(err))
	}
}
