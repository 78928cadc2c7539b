// Package curve exposes the bootstrapping library over a thin JSON/HTTP
// surface, in the shape of the teacher repo's pkg/api handlers: CORS
// headers for local dev, encoding/json request/response structs, and
// log.Printf-tagged progress messages. Each request is an independent,
// synchronous call into pkg/core/curve — no state is held between
// requests (spec.md §5, §6).
package curve

import (
	"encoding/json"
	"log"
	"net/http"

	"curveboot/pkg/core/curve"

	"github.com/google/uuid"
)

// BootstrapRequest is the wire shape for POST /api/curve/bootstrap.
type BootstrapRequest struct {
	Currency string           `json:"currency"`
	Method   curve.Method     `json:"method"`
	Swaps    []curve.RawPoint `json:"swaps"`
	Futures  []curve.RawPoint `json:"futures"`
	Bonds    []curve.RawPoint `json:"bonds"`
}

// BootstrapResponse wraps the library result with a run correlation ID
// used only for log tracing, never fed back into the numeric pipeline.
type BootstrapResponse struct {
	RunID  string                `json:"run_id"`
	Result curve.BootstrapResult `json:"result"`
}

func withCORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

// HandleBootstrap runs Bootstrap or BootstrapBonds depending on whether
// the request carries bond observations, and returns the JSON-encoded
// BootstrapResult.
func HandleBootstrap(w http.ResponseWriter, r *http.Request) {
	if withCORS(w, r) {
		return
	}

	var req BootstrapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	runID := uuid.New().String()
	log.Printf("[curve] run=%s bootstrap currency=%s method=%s swaps=%d futures=%d bonds=%d",
		runID, req.Currency, req.Method, len(req.Swaps), len(req.Futures), len(req.Bonds))

	var result curve.BootstrapResult
	if len(req.Bonds) > 0 {
		result = curve.BootstrapBonds(req.Bonds, req.Method, req.Currency)
	} else {
		result = curve.Bootstrap(req.Swaps, req.Futures, req.Method, req.Currency)
	}

	log.Printf("[curve] run=%s bootstrap complete grid_points=%d", runID, len(result.DiscountFactors))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(BootstrapResponse{RunID: runID, Result: result}); err != nil {
		log.Printf("[curve] run=%s encode error: %v", runID, err)
	}
}

// ExportRequest is the wire shape for POST /api/curve/export: the same
// bootstrap inputs, returned as the CSV text instead of JSON.
type ExportRequest = BootstrapRequest

// HandleExport runs the same bootstrap as HandleBootstrap but responds
// with the CSV export (spec.md §4.5) as text/csv.
func HandleExport(w http.ResponseWriter, r *http.Request) {
	if withCORS(w, r) {
		return
	}

	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	runID := uuid.New().String()
	log.Printf("[curve] run=%s export currency=%s method=%s", runID, req.Currency, req.Method)

	var result curve.BootstrapResult
	if len(req.Bonds) > 0 {
		result = curve.BootstrapBonds(req.Bonds, req.Method, req.Currency)
	} else {
		result = curve.Bootstrap(req.Swaps, req.Futures, req.Method, req.Currency)
	}

	w.Header().Set("Content-Type", "text/csv")
	if _, err := w.Write([]byte(curve.ExportCSV(result))); err != nil {
		log.Printf("[curve] run=%s write error: %v", runID, err)
	}
}
