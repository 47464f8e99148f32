package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewRouter(NewHandler("Linux and IT Tools", log), []string{"*"}))
	t.Cleanup(srv.Close)
	return srv
}

type resultBody struct {
	Course               string   `json:"course"`
	FormativeTotal       float64  `json:"formative_total"`
	SummativeTotal       float64  `json:"summative_total"`
	Passed               bool     `json:"passed"`
	FormativePassed      bool     `json:"formative_passed"`
	SummativePassed      bool     `json:"summative_passed"`
	ResubmissionEligible []string `json:"resubmission_eligible"`
	Rows                 []struct {
		Name  string  `json:"name"`
		Score float64 `json:"score"`
	} `json:"rows"`
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCreateTranscript(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/transcripts", `{
		"course": "Networks",
		"order": "descending",
		"assignments": [
			{"name": "Lab", "category": "Formative", "score": 40, "weight": 30},
			{"name": "Exam", "category": "Summative", "score": 90, "weight": 40}
		]
	}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var body resultBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Networks", body.Course)
	assert.InDelta(t, 12.0, body.FormativeTotal, 1e-9)
	assert.InDelta(t, 36.0, body.SummativeTotal, 1e-9)
	assert.False(t, body.Passed)
	assert.False(t, body.FormativePassed)
	assert.True(t, body.SummativePassed)
	assert.Equal(t, []string{"Lab"}, body.ResubmissionEligible)
	require.Len(t, body.Rows, 2)
	assert.Equal(t, "Exam", body.Rows[0].Name)
}

func TestCreateTranscriptText(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/transcripts?format=text", `{"assignments": [
		{"name": "Portfolio", "category": "formative", "score": 100, "weight": 30},
		{"name": "Final", "category": "summative", "score": 100, "weight": 20}
	]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(raw)
	assert.True(t, strings.HasPrefix(text, "Congratulations!"))
	assert.Contains(t, text, "Scores in Linux and IT Tools\n")
	assert.Contains(t, text, "Portfolio\tFormative\t100.00\t30.00\n")
	assert.Contains(t, text, "Formative Total: 30.00%\n")
	assert.Contains(t, text, "Summative Total: 20.00%\n")
}

func TestCreateTranscriptErrors(t *testing.T) {
	srv := setupServer(t)

	tests := []struct {
		name   string
		body   string
		status int
		errMsg string
	}{
		{
			name:   "malformed json",
			body:   `{"assignments": [`,
			status: http.StatusBadRequest,
			errMsg: "invalid request",
		},
		{
			name:   "unknown category",
			body:   `{"assignments": [{"name": "Quiz", "category": "Formatve", "score": 40, "weight": 10}]}`,
			status: http.StatusBadRequest,
			errMsg: "unknown category",
		},
		{
			name:   "unknown order",
			body:   `{"order": "sideways", "assignments": [{"name": "Quiz", "category": "Formative", "score": 40, "weight": 10}]}`,
			status: http.StatusBadRequest,
			errMsg: "unknown transcript order",
		},
		{
			name:   "weight gate",
			body:   `{"assignments": [{"name": "Exam", "category": "Summative", "score": 90, "weight": 45}]}`,
			status: http.StatusUnprocessableEntity,
			errMsg: "Error: Formative or summative weights exceed the allowed limit.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/transcripts", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body errorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Contains(t, body.Error, tt.errMsg)
		})
	}
}

func TestSampleTranscript(t *testing.T) {
	srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/transcripts/sample?order=ascending")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var body resultBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.InDelta(t, 32.25, body.FormativeTotal, 1e-9)
	assert.InDelta(t, 25.8, body.SummativeTotal, 1e-9)
	assert.True(t, body.Passed)
	assert.Equal(t, []string{"Assignment 1", "Assignment 3"}, body.ResubmissionEligible)
	require.Len(t, body.Rows, 6)
	assert.Equal(t, "Midterm", body.Rows[0].Name)
	assert.Equal(t, "Final Exam", body.Rows[5].Name)
}

func TestHealthAndCORS(t *testing.T) {
	srv := setupServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(raw))
}

func TestSampleTranscriptFormats(t *testing.T) {
	srv := setupServer(t)

	tests := []struct {
		query       string
		contentType string
		prefix      string
	}{
		{query: "", contentType: "application/json", prefix: "{"},
		{query: "?format=json", contentType: "application/json", prefix: "{"},
		{query: "?format=text", contentType: "text/plain", prefix: "Assignment 'Assignment 1' is eligible for resubmission."},
	}
	for _, tt := range tests {
		t.Run("format"+tt.query, func(t *testing.T) {
			resp, err := http.Get(srv.URL + "/transcripts/sample" + tt.query)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), tt.contentType)
			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(raw), tt.prefix))
		})
	}

	resp, err := http.Get(srv.URL + "/transcripts/sample?format=xml")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateTranscriptEmptyRoster(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/transcripts", `{"assignments": []}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body resultBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Zero(t, body.FormativeTotal)
	assert.Zero(t, body.SummativeTotal)
	assert.False(t, body.Passed)
	assert.False(t, body.FormativePassed)
	assert.False(t, body.SummativePassed)
	assert.Empty(t, body.ResubmissionEligible)
	assert.Empty(t, body.Rows)
}
