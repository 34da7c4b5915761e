// Package valuation exposes the intrinsic-value calculation over HTTP.
package valuation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"intrinsic_value/pkg/api/response"
	core "intrinsic_value/pkg/core/valuation"

	"github.com/google/uuid"
)

// Route is the calculation endpoint path.
const Route = "/api/v1/intrinsic-value/calculate"

// HandleCalculate serves POST /api/v1/intrinsic-value/calculate.
// The body is the seven-field assumption record; the reply is the standard
// envelope around {intrinsicValue, currency, remarks}.
func HandleCalculate(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	reqID := uuid.New().String()[:8]

	var input core.ValuationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		fmt.Printf("[VALUATION] (%s) bad body: %v\n", reqID, err)
		response.Write(w, response.BadRequest(response.CodeMalformedBody, err))
		return
	}

	result, err := core.Calculate(&input)
	if err != nil {
		fmt.Printf("[VALUATION] (%s) rejected: %v\n", reqID, err)
		if !IsCallerError(err) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		response.Write(w, response.BadRequest(response.CodeInvalidInput, err))
		return
	}

	fmt.Printf("[VALUATION] (%s) intrinsic=%s market=%s remark=%s\n",
		reqID, result.IntrinsicValue, input.CurrentMarketPrice, result.Remark)
	response.Write(w, response.OK(result, response.CodeCalculated))
}

// IsCallerError reports whether err belongs to the engine's validation
// taxonomy, which maps to a 400 rather than a 500.
func IsCallerError(err error) bool {
	return errors.Is(err, core.ErrNilInput) ||
		errors.Is(err, core.ErrMissingField) ||
		errors.Is(err, core.ErrNonPositiveShares) ||
		errors.Is(err, core.ErrDegenerateRate)
}
