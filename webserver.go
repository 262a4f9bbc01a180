package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ctxKey int

const requestIDKey ctxKey = iota

// WebServer holds the HTTP server configuration
type WebServer struct {
	config     *Config
	addr       string
	cache      ResultCache
	charts     *ChartRenderer
	limiter    *RateLimiter
	exportDir  string
	configPath string // when set, submitted parameters are saved here
}

// NewWebServer creates a new web server instance
func NewWebServer(config *Config, addr string) *WebServer {
	if config == nil {
		if def, err := LoadDefaultConfig(); err == nil {
			config = def
		} else {
			config = &Config{Calculation: DefaultParams()}
		}
	}
	cache := NewResultCache(config.Cache)
	ws := &WebServer{
		config:    config,
		addr:      addr,
		cache:     cache,
		charts:    NewChartRenderer(cache),
		exportDir: "exports",
	}
	if config.Server.RateLimitPerMinute > 0 {
		ws.limiter = NewRateLimiter(config.Server.RateLimitPerMinute, time.Minute)
	}
	return ws
}

// APICalculateRequest is a flat parameter set; omitted fields keep the server defaults
type APICalculateRequest struct {
	Params
	IncludeRows bool `json:"include_rows"`
}

// calculationResult is the cacheable part of a calculate response
type calculationResult struct {
	Analysis *Analysis      `json:"analysis"`
	Yearly   []YearSummary  `json:"yearly"`
	Rows     []CostRow      `json:"rows,omitempty"`
	Summary  costSeriesSums `json:"summary"`
}

type costSeriesSums struct {
	TotalBuyingCost      float64 `json:"total_buying_cost"`
	TotalRentPaid        float64 `json:"total_rent_paid"`
	TotalInvestmentValue float64 `json:"total_investment_value"`
	NetDifference        float64 `json:"net_difference"`
}

// APICalculateResponse represents the calculation results
type APICalculateResponse struct {
	Success       bool            `json:"success"`
	Error         string          `json:"error,omitempty"`
	CalculationID string          `json:"calculation_id,omitempty"`
	Cached        bool            `json:"cached"`
	Result        json.RawMessage `json:"result,omitempty"`
}

// APISensitivityRequest carries the base parameters and optional grid ranges
type APISensitivityRequest struct {
	Params      *Params            `json:"params"`
	Sensitivity *SensitivityConfig `json:"sensitivity"`
}

// APISensitivityResponse wraps the grid
type APISensitivityResponse struct {
	Success       bool            `json:"success"`
	Error         string          `json:"error,omitempty"`
	CalculationID string          `json:"calculation_id,omitempty"`
	Cached        bool            `json:"cached"`
	Result        json.RawMessage `json:"result,omitempty"`
}

// CSVExportResponse represents the response from CSV export
type CSVExportResponse struct {
	Success  bool   `json:"success"`
	FilePath string `json:"file_path,omitempty"`
	Message  string `json:"message"`
}

// Handler returns the complete HTTP handler: routes, request IDs and rate limiting
func (ws *WebServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", ws.handleIndex)
	mux.HandleFunc("/api/config", ws.handleGetConfig)
	mux.HandleFunc("/api/calculate", ws.handleCalculate)
	mux.HandleFunc("/api/chart", ws.handleChart)
	mux.HandleFunc("/api/export-csv", ws.handleExportCSV)
	mux.HandleFunc("/api/download-pdf", ws.handleDownloadPDF)
	mux.HandleFunc("/api/sensitivity", ws.handleSensitivity)

	var handler http.Handler = mux
	if ws.limiter != nil {
		handler = RateLimitMiddleware(ws.limiter, handler)
	}
	return requestIDMiddleware(handler)
}

// listen opens the listener and works out the browser URL (use :0 for auto-assign)
func (ws *WebServer) listen() (net.Listener, string, error) {
	listener, err := net.Listen("tcp", ws.addr)
	if err != nil {
		return nil, "", err
	}

	actualAddr := listener.Addr().String()
	url := fmt.Sprintf("http://%s", actualAddr)

	// If listening on all interfaces, use localhost for the URL
	if strings.HasPrefix(actualAddr, ":") || strings.HasPrefix(actualAddr, "0.0.0.0:") || strings.HasPrefix(actualAddr, "[::]:") {
		port := actualAddr[strings.LastIndex(actualAddr, ":")+1:]
		url = fmt.Sprintf("http://localhost:%s", port)
	}
	return listener, url, nil
}

// Start starts the web server, opens the browser and blocks
func (ws *WebServer) Start() error {
	listener, url, err := ws.listen()
	if err != nil {
		return err
	}

	log.Printf("Starting web server on %s", listener.Addr())
	log.Printf("Opening %s in your browser...", url)

	go openBrowser(url)

	server := &http.Server{Handler: ws.Handler(), ReadHeaderTimeout: 10 * time.Second}
	return server.Serve(listener)
}

// StartForEmbedded starts the server and returns the URL and a cleanup function.
// Unlike Start(), this does NOT open the browser and does NOT block.
func (ws *WebServer) StartForEmbedded() (url string, cleanup func(), err error) {
	listener, url, err := ws.listen()
	if err != nil {
		return "", nil, err
	}

	log.Printf("Starting embedded web server on %s", listener.Addr())

	server := &http.Server{Handler: ws.Handler(), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if err := server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
		}
	}()

	cleanup = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
		if ws.limiter != nil {
			ws.limiter.Stop()
		}
	}

	return url, cleanup, nil
}

// requestIDMiddleware tags every request with an X-Request-ID, keeping one sent by the client
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return uuid.NewString()
}

// handleIndex serves the main web UI
func (ws *WebServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, webUIHTML)
}

// handleGetConfig returns the current configuration
func (ws *WebServer) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ws.config)
}

// maxRequestBody caps JSON request bodies
const maxRequestBody = 1 << 20

// decodeJSONBody decodes a bounded request body, rejecting unknown fields.
// An empty body leaves v unchanged.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// decodeParams reads a flat parameter set on top of the server defaults
func (ws *WebServer) decodeParams(w http.ResponseWriter, r *http.Request) (APICalculateRequest, error) {
	req := APICalculateRequest{Params: ws.config.Calculation}
	err := decodeJSONBody(w, r, &req)
	return req, err
}

// analyzeRequest decodes, validates and analyses; on failure it writes the error response
func (ws *WebServer) analyzeRequest(w http.ResponseWriter, r *http.Request) (*Analysis, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	req, err := ws.decodeParams(w, r)
	if err != nil {
		sendJSONError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	a, err := Analyze(req.Params)
	if err != nil {
		sendAnalysisError(w, err)
		return nil, false
	}
	return a, true
}

// handleCalculate runs one calculation, served from the cache when possible
func (ws *WebServer) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	req, err := ws.decodeParams(w, r)
	if err != nil {
		sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	response := APICalculateResponse{Success: true, CalculationID: requestID(ctx)}

	key, err := CacheKey("calculate", req)
	if err != nil {
		sendJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if body, ok := ws.cache.Get(ctx, key); ok {
		ws.saveParams(req.Params)
		response.Cached = true
		response.Result = body
		writeJSON(w, http.StatusOK, response)
		return
	}

	a, err := Analyze(req.Params)
	if err != nil {
		sendAnalysisError(w, err)
		return
	}

	result := calculationResult{
		Analysis: a,
		Yearly:   a.Series.Yearly(),
		Summary: costSeriesSums{
			TotalBuyingCost:      a.Series.TotalBuyingCost(),
			TotalRentPaid:        a.Series.TotalRentPaid(),
			TotalInvestmentValue: a.Series.TotalInvestmentValue(),
			NetDifference:        a.Series.NetDifference(),
		},
	}
	if req.IncludeRows {
		result.Rows = a.Series.Rows()
	}
	body, err := json.Marshal(result)
	if err != nil {
		sendJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := ws.cache.Set(ctx, key, body); err != nil {
		log.Printf("Warning: failed to cache result: %v", err)
	}
	ws.saveParams(req.Params)

	response.Result = body
	writeJSON(w, http.StatusOK, response)
}

// handleChart returns the comparison chart as a PNG
func (ws *WebServer) handleChart(w http.ResponseWriter, r *http.Request) {
	a, ok := ws.analyzeRequest(w, r)
	if !ok {
		return
	}
	img, err := ws.charts.Render(r.Context(), a)
	if err != nil {
		sendJSONError(w, http.StatusInternalServerError, "Failed to render chart: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(img)))
	w.Write(img)
}

// handleExportCSV saves the month-by-month series to the exports directory and returns the path.
// The embedded window cannot trigger browser downloads, so the file is written server side.
func (ws *WebServer) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	a, ok := ws.analyzeRequest(w, r)
	if !ok {
		return
	}

	if err := os.MkdirAll(ws.exportDir, 0755); err != nil {
		writeJSON(w, http.StatusInternalServerError, CSVExportResponse{
			Message: "Failed to create exports directory: " + err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("rent-or-buy-%s.csv", time.Now().Format("2006-01-02-150405"))
	filePath := filepath.Join(ws.exportDir, filename)
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		absPath = filePath
	}

	if err := ExportCostSeriesCSV(a.Series, filePath); err != nil {
		writeJSON(w, http.StatusInternalServerError, CSVExportResponse{
			Message: "Failed to write file: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, CSVExportResponse{
		Success:  true,
		FilePath: absPath,
		Message:  fmt.Sprintf("CSV saved to %s", absPath),
	})
}

// handleDownloadPDF returns PDF content directly for browser download
func (ws *WebServer) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	a, ok := ws.analyzeRequest(w, r)
	if !ok {
		return
	}

	img, err := ws.charts.Render(r.Context(), a)
	if err != nil {
		log.Printf("Warning: chart unavailable for PDF: %v", err)
		img = nil
	}
	pdfBytes, err := GeneratePDFReport(a, img)
	if err != nil {
		sendJSONError(w, http.StatusInternalServerError, "Failed to generate PDF: "+err.Error())
		return
	}

	filename := fmt.Sprintf("rent-or-buy-%dy.pdf", a.Params.Years)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfBytes)))
	w.Write(pdfBytes)
}

// handleSensitivity runs the growth rate grid
func (ws *WebServer) handleSensitivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req APISensitivityRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	cfg := *ws.config
	if req.Params != nil {
		cfg.Calculation = *req.Params
	}
	if req.Sensitivity != nil {
		cfg.Sensitivity = *req.Sensitivity
	}

	ctx := r.Context()
	response := APISensitivityResponse{Success: true, CalculationID: requestID(ctx)}
	key, err := CacheKey("sensitivity", struct {
		P Params
		S SensitivityConfig
	}{cfg.Calculation, cfg.Sensitivity})
	if err != nil {
		sendJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if body, ok := ws.cache.Get(ctx, key); ok {
		response.Cached = true
		response.Result = body
		writeJSON(w, http.StatusOK, response)
		return
	}

	analysis, err := RunSensitivityForConfig(&cfg)
	if err != nil {
		sendAnalysisError(w, err)
		return
	}
	body, err := json.Marshal(analysis)
	if err != nil {
		sendJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := ws.cache.Set(ctx, key, body); err != nil {
		log.Printf("Warning: failed to cache sensitivity grid: %v", err)
	}
	response.Result = body
	writeJSON(w, http.StatusOK, response)
}

// saveParams persists the last submitted parameters so the next run starts from them
func (ws *WebServer) saveParams(p Params) {
	if ws.configPath == "" {
		return
	}
	cfg := *ws.config
	cfg.Calculation = p
	if err := SaveConfig(&cfg, ws.configPath); err != nil {
		log.Printf("Warning: failed to save config: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// sendJSONError sends a JSON error response
func sendJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APICalculateResponse{
		Success: false,
		Error:   message,
	})
}

// sendAnalysisError maps invalid parameters to 400 and anything else to 500
func sendAnalysisError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidParameter) {
		sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	sendJSONError(w, http.StatusInternalServerError, err.Error())
}

// webUIHTML is the embedded web interface HTML
const webUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Rent or Buy Calculator</title>
    <style>
        :root {
            --primary: #2563eb;
            --primary-dark: #1d4ed8;
            --success: #16a34a;
            --danger: #dc2626;
            --bg: #f1f5f9;
            --card-bg: #ffffff;
            --text: #1e293b;
            --text-muted: #64748b;
            --border: #e2e8f0;
        }
        * { box-sizing: border-box; margin: 0; padding: 0; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            line-height: 1.5;
            padding: 1.5rem;
        }
        .layout { display: grid; grid-template-columns: 320px 1fr; gap: 1.5rem; max-width: 1400px; margin: 0 auto; }
        @media (max-width: 900px) { .layout { grid-template-columns: 1fr; } }
        .card { background: var(--card-bg); border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); padding: 1.25rem; margin-bottom: 1rem; }
        h1 { font-size: 1.4rem; color: var(--primary); margin-bottom: 1rem; }
        h2 { font-size: 1.1rem; margin-bottom: 0.75rem; }
        label { display: block; font-size: 0.85rem; color: var(--text-muted); margin-top: 0.6rem; }
        input { width: 100%; padding: 0.4rem 0.5rem; border: 1px solid var(--border); border-radius: 4px; font-size: 0.95rem; }
        button { margin-top: 0.75rem; padding: 0.5rem 0.9rem; border: none; border-radius: 4px; background: var(--primary); color: #fff; cursor: pointer; font-size: 0.9rem; }
        button:hover { background: var(--primary-dark); }
        button.secondary { background: #475569; }
        .verdict { font-size: 1.6rem; font-weight: 700; }
        .buy { color: var(--success); }
        .rent { color: var(--primary); }
        .error { color: var(--danger); }
        .muted { color: var(--text-muted); font-size: 0.85rem; }
        .grid-2 { display: grid; grid-template-columns: 1fr 1fr; gap: 1rem; }
        table { width: 100%; border-collapse: collapse; font-size: 0.85rem; }
        th, td { padding: 0.3rem 0.5rem; border-bottom: 1px solid var(--border); text-align: right; }
        th:first-child, td:first-child { text-align: left; }
        th { background: #f8fafc; }
        td.cell-buy { background: #dcfce7; }
        td.cell-rent { background: #dbeafe; }
        img.chart { max-width: 100%; }
    </style>
</head>
<body>
<div class="layout">
    <div>
        <div class="card">
            <h1>Rent or Buy</h1>
            <form id="params">
                <label>Years (horizon and mortgage term)<input name="years" type="number" min="1" step="1"></label>
                <label>Property value<input name="property_value" type="number" step="any"></label>
                <label>Capital / down payment<input name="capital" type="number" step="any"></label>
                <label>Purchase costs<input name="purchase_cost" type="number" step="any"></label>
                <label>Interest rate %<input name="interest_rate" type="number" step="any"></label>
                <label>Monthly maintenance<input name="monthly_maintenance" type="number" step="any"></label>
                <label>Property value increase %<input name="property_value_increase" type="number" step="any"></label>
                <label>Monthly rent<input name="rent" type="number" step="any"></label>
                <label>Rent increase %<input name="rent_increase" type="number" step="any"></label>
                <label>Alternative investment return %<input name="alternative_investment_increase" type="number" step="any"></label>
                <button type="submit">Calculate</button>
                <button type="button" class="secondary" id="sensitivity">Sensitivity</button>
            </form>
        </div>
    </div>
    <div id="output">
        <div class="card muted">Enter your numbers and press Calculate.</div>
    </div>
</div>
<script>
const form = document.getElementById('params');
const output = document.getElementById('output');
const money = v => v.toLocaleString(undefined, {style: 'currency', currency: 'USD'});

function params() {
    const p = {};
    for (const input of form.querySelectorAll('input')) {
        p[input.name] = input.name === 'years' ? parseInt(input.value, 10) : parseFloat(input.value);
    }
    return p;
}

async function post(path, body) {
    return fetch(path, {method: 'POST', headers: {'Content-Type': 'application/json'}, body: JSON.stringify(body)});
}

function showError(msg) {
    output.innerHTML = '<div class="card error">' + msg + '</div>';
}

async function calculate() {
    const resp = await post('/api/calculate', params());
    const data = await resp.json();
    if (!data.success) { showError(data.error); return; }
    const r = data.result, a = r.analysis, m = a.mortgage;
    const cls = a.recommendation === 'BUY' ? 'buy' : 'rent';
    let rows = '';
    for (const y of r.yearly) {
        rows += '<tr><td>' + y.year + '</td><td>' + money(y.buying_cost) + '</td><td>' + money(y.renting_cost) +
            '</td><td>' + money(y.diff) + '</td><td>' + money(y.investment) + '</td></tr>';
    }
    output.innerHTML =
        '<div class="card"><div class="verdict ' + cls + '">' + a.recommendation + '</div>' +
        '<p>You are better off ' + (cls === 'buy' ? 'buying' : 'renting') + ' by <strong>' + money(a.margin) + '</strong>.</p>' +
        '<p class="muted">Calculation ' + data.calculation_id + (data.cached ? ' (cached)' : '') + '</p>' +
        '<button id="csv" class="secondary">Export CSV</button> <button id="pdf" class="secondary">Download PDF</button></div>' +
        '<div class="grid-2"><div class="card"><h2>Mortgage</h2><table>' +
        '<tr><td>Principal</td><td>' + money(m.principal) + '</td></tr>' +
        '<tr><td>Monthly payment</td><td>' + money(m.monthly_payment) + '</td></tr>' +
        '<tr><td>Total payments</td><td>' + money(m.total_payments) + '</td></tr>' +
        '<tr><td>Total interest</td><td>' + money(m.total_interest) + '</td></tr></table></div>' +
        '<div class="card"><h2>Outcome</h2><table><tr><th></th><th>Buying</th><th>Renting</th></tr>' +
        '<tr><td>Total cost</td><td>' + money(a.buying.total_cost) + '</td><td>' + money(a.renting.total_rent_paid) + '</td></tr>' +
        '<tr><td>Asset value</td><td>' + money(a.buying.property_future_value) + '</td><td>' + money(a.renting.investment_worth) + '</td></tr>' +
        '<tr><td>Net worth</td><td>' + money(a.buying.net_worth) + '</td><td>' + money(a.renting.net_worth) + '</td></tr></table></div></div>' +
        '<div class="card"><img class="chart" id="chart" alt="chart"></div>' +
        '<div class="card"><h2>Year by year</h2><table><tr><th>Year</th><th>Buying</th><th>Renting</th><th>Difference</th><th>Investment</th></tr>' +
        rows + '</table></div>';
    document.getElementById('csv').onclick = exportCSV;
    document.getElementById('pdf').onclick = downloadPDF;
    const img = await post('/api/chart', params());
    if (img.ok) { document.getElementById('chart').src = URL.createObjectURL(await img.blob()); }
}

async function exportCSV() {
    const data = await (await post('/api/export-csv', params())).json();
    alert(data.message || data.error);
}

async function downloadPDF() {
    const resp = await post('/api/download-pdf', params());
    if (!resp.ok) { showError('PDF generation failed'); return; }
    const link = document.createElement('a');
    link.href = URL.createObjectURL(await resp.blob());
    link.download = 'rent-or-buy.pdf';
    link.click();
}

async function sensitivity() {
    const data = await (await post('/api/sensitivity', {params: params()})).json();
    if (!data.success) { showError(data.error); return; }
    const s = data.result;
    let html = '<div class="card"><h2>Sensitivity</h2><p class="muted">Rows: property increase. Columns: investment return.</p><table><tr><th></th>';
    for (const alt of s.alt_investment_rates) { html += '<th>' + alt + '%</th>'; }
    html += '</tr>';
    s.cells.forEach((row, i) => {
        html += '<tr><td>' + s.property_rates[i] + '%</td>';
        for (const c of row) {
            html += '<td class="' + (c.recommendation === 'BUY' ? 'cell-buy' : 'cell-rent') + '">' + c.recommendation + '<br>' + money(c.margin) + '</td>';
        }
        html += '</tr>';
    });
    output.innerHTML = html + '</table></div>';
}

form.addEventListener('submit', e => { e.preventDefault(); calculate(); });
document.getElementById('sensitivity').onclick = sensitivity;

fetch('/api/config').then(r => r.json()).then(cfg => {
    for (const [k, v] of Object.entries(cfg.calculation)) {
        const input = form.querySelector('[name="' + k + '"]');
        if (input) input.value = v;
    }
});
</script>
</body>
</html>
`
