package valuation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postCalculate(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, Route, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	HandleCalculate(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return env
}

const validBody = `{
  "fcfLastYear": 1.1,
  "growthRate": 0.15,
  "discountRate": 0.10,
  "terminalGrowthRate": 0.03,
  "sharesOutstanding": 122,
  "netDebt": 0.5,
  "currentMarketPrice": 291.06
}`

func TestHandleCalculate_ValidRequest(t *testing.T) {
	rec := postCalculate(t, validBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, exp 200\nbody: %s", rec.Code, rec.Body.String())
	}

	env := decodeEnvelope(t, rec)
	if env["status"] != "OK" {
		t.Errorf("status field: got %v, exp OK", env["status"])
	}
	if env["httpStatus"] != float64(200) {
		t.Errorf("httpStatus: got %v, exp 200", env["httpStatus"])
	}
	if env["message"] != "list found" {
		t.Errorf("message: got %v, exp 'list found'", env["message"])
	}
	if env["internalCode"] != "PRODUCT-10" {
		t.Errorf("internalCode: got %v, exp PRODUCT-10", env["internalCode"])
	}

	data, ok := env["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data: got %v, exp object", env["data"])
	}
	if data["intrinsicValue"] != float64(318.91) {
		t.Errorf("intrinsicValue: got %v, exp 318.91", data["intrinsicValue"])
	}
	if data["currency"] != "USD" {
		t.Errorf("currency: got %v, exp USD", data["currency"])
	}
	if data["remarks"] != "Undervalued" {
		t.Errorf("remarks: got %v, exp Undervalued", data["remarks"])
	}
}

func TestHandleCalculate_MissingField(t *testing.T) {
	// sharesOutstanding absent
	body := `{
	  "fcfLastYear": 1.1,
	  "growthRate": 0.15,
	  "discountRate": 0.10,
	  "terminalGrowthRate": 0.03,
	  "netDebt": 0.5,
	  "currentMarketPrice": 291.06
	}`
	rec := postCalculate(t, body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, exp 400", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env["internalCode"] != "PRODUCT-12" {
		t.Errorf("internalCode: got %v, exp PRODUCT-12", env["internalCode"])
	}
	errText, _ := env["error"].(string)
	if !strings.Contains(errText, "sharesOutstanding") {
		t.Errorf("error text %q does not name the missing field", errText)
	}
}

func TestHandleCalculate_DegenerateRate(t *testing.T) {
	body := strings.Replace(validBody, `"discountRate": 0.10`, `"discountRate": 0.03`, 1)
	rec := postCalculate(t, body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, exp 400", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env["internalCode"] != "PRODUCT-12" {
		t.Errorf("internalCode: got %v, exp PRODUCT-12", env["internalCode"])
	}
}

func TestHandleCalculate_MalformedJSON(t *testing.T) {
	rec := postCalculate(t, `{"fcfLastYear": `)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, exp 400", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env["internalCode"] != "PRODUCT-11" {
		t.Errorf("internalCode: got %v, exp PRODUCT-11", env["internalCode"])
	}
}

func TestHandleCalculate_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, Route, nil)
	rec := httptest.NewRecorder()
	HandleCalculate(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status: got %d, exp 405", rec.Code)
	}
}

func TestHandleCalculate_Preflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, Route, nil)
	rec := httptest.NewRecorder()
	HandleCalculate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, exp 200", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("missing CORS allow-origin header")
	}
}
