package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/scope3-api/internal/application/analytics"
	"github.com/jhoicas/scope3-api/internal/application/assistant"
	"github.com/jhoicas/scope3-api/internal/application/auth"
	"github.com/jhoicas/scope3-api/internal/application/dto"
	"github.com/jhoicas/scope3-api/internal/application/ingest"
	"github.com/jhoicas/scope3-api/internal/application/report"
	"github.com/jhoicas/scope3-api/internal/application/wizard"
	"github.com/jhoicas/scope3-api/internal/infrastructure/excel"
	"github.com/jhoicas/scope3-api/internal/infrastructure/memory"
	"github.com/jhoicas/scope3-api/internal/infrastructure/pdf"
	"github.com/jhoicas/scope3-api/internal/infrastructure/submission"
	apphttp "github.com/jhoicas/scope3-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const csvUpload = "scope3_category,supplier_name,activity_description,reporting_period,quantity,unit,emission_factor,notes\n" +
	"Purchased Goods & Services,Acme Supplies,Office paper,2024-07,500,kg,0.0015,N/A\n" +
	"Business Travel,Acme Air,Flight,2024-07,100,km,0.01,\n" +
	"Capital Goods,,Servers,2024-07,3,usd,1,\n" +
	"Franchises,Acme Supplies,Store,2024-08,10,kwh,0.2,\n"

type testServer struct {
	app  *fiber.App
	sink *submission.LogSubmitter
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := zerolog.Nop()
	sink := submission.NewLogSubmitter(log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:     "scope3-api-test",
		AuthUC:      auth.NewAuthUseCase(auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		WizardSvc:   wizard.NewService(memory.NewSessionStore[*wizard.Wizard](0), sink, log),
		BatchSvc:    ingest.NewService(memory.NewSessionStore[*ingest.Pipeline](0), sink, log),
		DashboardUC: analytics.NewDashboardUseCase(sink, log),
		ReportUC:    report.NewUseCase(pdf.NewMarotoReportGenerator("test"), log),
		AssistantSv: assistant.NewService(memory.NewSessionStore[*assistant.Conversation](0)),
		Templates: map[string]apphttp.TemplateFormat{
			"csv":  {ContentType: "text/csv; charset=utf-8", Write: ingest.WriteTemplateCSV},
			"xlsx": {ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", Write: excel.WriteTemplate},
		},
		JWTSecret: testJWTSecret,
	})
	return &testServer{app: app, sink: sink}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", bearer(t))
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (s *testServer) upload(t *testing.T, path, filename, content string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", bearer(t))
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func ptr(s string) *string { return &s }

func num(s string) *dto.NumericText {
	n := dto.NumericText(s)
	return &n
}

// patchRaw envía un cuerpo JSON literal (para valores numéricos sin comillas).
func (s *testServer) patchRaw(t *testing.T, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t))
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Health y auth
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	body := decode[dto.HealthResponse](t, resp)
	assert.Equal(t, "ok", body.Status)
}

func TestLogin_TokenUsableEnRutasProtegidas(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"ana@acme.test","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, login.Token)

	req = httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	resp, err = s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogin_CamposVacios_Retorna422(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Contains(t, body.Fields, "password")
}

func TestRutasProtegidas_SinToken_Retorna401(t *testing.T) {
	s := newTestServer(t)
	resp, err := s.app.Test(httptest.NewRequest(http.MethodPost, "/api/wizard", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Formulario paso a paso
// ──────────────────────────────────────────────────────────────────────────────

func TestWizard_FlujoCompleto(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/api/wizard", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.WizardResponse](t, resp)
	assert.Equal(t, 1, created.Step)
	base := "/api/wizard/" + created.ID

	// paso 1 vacío → 422 con errores por campo, sigue en el paso 1
	resp = s.do(t, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	failed := decode[dto.WizardActionResponse](t, resp)
	assert.Equal(t, 1, failed.Wizard.Step)
	assert.Contains(t, failed.Wizard.Errors, "category")
	assert.Contains(t, failed.Wizard.Errors, "supplier")
	require.NotNil(t, failed.Notice)

	resp = s.do(t, http.MethodPatch, base+"/draft", dto.UpdateWizardDraftRequest{
		Category:       ptr("Business Travel"),
		Supplier:       ptr("Acme Air"),
		Activity:       ptr("Flight"),
		Period:         ptr("2024-07"),
		Quantity:       num("150"),
		Unit:           ptr("km"),
		EmissionFactor: num("0.01"),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	for step := 2; step <= 5; step++ {
		resp = s.do(t, http.MethodPost, base+"/next", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		adv := decode[dto.WizardActionResponse](t, resp)
		assert.Equal(t, step, adv.Wizard.Step)
	}

	resp = s.do(t, http.MethodGet, base, nil)
	state := decode[dto.WizardResponse](t, resp)
	require.NotNil(t, state.Review)
	assert.Equal(t, "1.50 tCO2e", state.Review.TotalLabel)

	resp = s.do(t, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	done := decode[dto.WizardSubmitResponse](t, resp)
	assert.True(t, done.Notice.OK())
	assert.Contains(t, done.Notice.Description, "1.50")
	assert.Equal(t, 1, done.Wizard.Step)
	assert.Empty(t, done.Wizard.Draft.Category)

	resp = s.do(t, http.MethodGet, "/api/dashboard/summary", nil)
	summary := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, 1, summary.SubmittedRecords)
}

func TestWizard_BorradorAceptaNumerosJSON(t *testing.T) {
	s := newTestServer(t)
	created := decode[dto.WizardResponse](t, s.do(t, http.MethodPost, "/api/wizard", nil))
	path := "/api/wizard/" + created.ID + "/draft"

	resp := s.patchRaw(t, path, `{"quantity": 10, "emissionFactor": 0.15}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decode[dto.WizardResponse](t, resp)
	assert.Equal(t, "10", state.Draft.Quantity)
	assert.Equal(t, "0.15", state.Draft.EmissionFactor)

	resp = s.patchRaw(t, path, `{"quantity": "12.5", "emissionFactor": null}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state = decode[dto.WizardResponse](t, resp)
	assert.Equal(t, "12.5", state.Draft.Quantity)
	assert.Equal(t, "0.15", state.Draft.EmissionFactor, "null no modifica el campo")

	resp = s.patchRaw(t, path, `{"quantity": true}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestWizard_SubmitAntesDeRevision_Retorna409(t *testing.T) {
	s := newTestServer(t)
	created := decode[dto.WizardResponse](t, s.do(t, http.MethodPost, "/api/wizard", nil))

	resp := s.do(t, http.MethodPost, "/api/wizard/"+created.ID+"/submit", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestWizard_Inexistente_Retorna404(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodGet, "/api/wizard/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga por lotes
// ──────────────────────────────────────────────────────────────────────────────

func TestBatch_SubirConfirmar(t *testing.T) {
	s := newTestServer(t)
	created := decode[dto.BatchResponse](t, s.do(t, http.MethodPost, "/api/batches", nil))
	base := "/api/batches/" + created.ID

	resp := s.upload(t, base+"/file", "datos.csv", csvUpload)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	up := decode[dto.BatchActionResponse](t, resp)
	assert.Equal(t, "preview", up.Batch.State)
	require.NotNil(t, up.Batch.Summary)
	assert.Equal(t, 3, up.Batch.Summary.TotalRecords)
	assert.Equal(t, "3.75 tCO2e", up.Batch.Summary.TotalLabel)
	assert.Len(t, up.Batch.Sample, 3)
	assert.Equal(t, 0, up.Batch.Remainder)

	resp = s.do(t, http.MethodPost, base+"/confirm", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	conf := decode[dto.BatchActionResponse](t, resp)
	assert.Equal(t, "idle", conf.Batch.State)
	assert.Contains(t, conf.Notice.Description, "3 registros")

	resp = s.do(t, http.MethodPost, base+"/confirm", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "nada que confirmar")
	resp.Body.Close()
}

func TestBatch_PDFRequiereBackend(t *testing.T) {
	s := newTestServer(t)
	created := decode[dto.BatchResponse](t, s.do(t, http.MethodPost, "/api/batches", nil))

	resp := s.upload(t, "/api/batches/"+created.ID+"/file", "factura.pdf", "%PDF-1.4")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.BatchActionResponse](t, resp)
	assert.Equal(t, "idle", out.Batch.State)
	assert.False(t, out.Notice.OK())
	require.NotNil(t, out.Batch.LastError)
}

func TestBatch_SinArchivo_Retorna400(t *testing.T) {
	s := newTestServer(t)
	created := decode[dto.BatchResponse](t, s.do(t, http.MethodPost, "/api/batches", nil))

	resp := s.do(t, http.MethodPost, "/api/batches/"+created.ID+"/file", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestBatch_Plantillas(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/batches/template", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "emission_data_template.csv")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.True(t, strings.HasPrefix(string(body), "scope3_category,supplier_name"))

	resp = s.do(t, http.MethodGet, "/api/batches/template?format=xlsx", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "emission_data_template.xlsx")
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(body, []byte("PK")), "xlsx es un zip")

	resp = s.do(t, http.MethodGet, "/api/batches/template?format=ods", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes, análisis y asistente
// ──────────────────────────────────────────────────────────────────────────────

func TestReports(t *testing.T) {
	s := newTestServer(t)

	opts := decode[dto.ReportOptionsDTO](t, s.do(t, http.MethodGet, "/api/reports/templates", nil))
	assert.Len(t, opts.Templates, 4)

	resp := s.do(t, http.MethodPost, "/api/reports", dto.GenerateReportRequest{Type: "executive"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	resp = s.do(t, http.MethodPost, "/api/reports", dto.GenerateReportRequest{Type: "executive", Period: "current-month"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestAnalysis(t *testing.T) {
	s := newTestServer(t)
	out := decode[dto.AnalysisDTO](t, s.do(t, http.MethodGet, "/api/analysis", nil))
	assert.Len(t, out.Monthly, 6)
	assert.Len(t, out.Suppliers, 5)
}

func TestAssistant(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/api/assistant/messages", dto.AssistantMessageRequest{Text: "how do I make a report?"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.AssistantConversationDTO](t, resp)
	assert.Equal(t, assistant.Respond("report"), out.Reply)
	assert.Len(t, out.Messages, 3)

	resp = s.do(t, http.MethodPost, "/api/assistant/messages", dto.AssistantMessageRequest{ConversationID: out.ID, Text: " "})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()
}
