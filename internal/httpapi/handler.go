package httpapi

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"gradebook/internal/grades"
	"gradebook/internal/roster"
	"gradebook/internal/transcript"
)

type Handler struct {
	course string
	log    *slog.Logger
}

func NewHandler(course string, log *slog.Logger) *Handler {
	return &Handler{
		course: course,
		log:    log,
	}
}

func (h *Handler) CreateTranscript(w http.ResponseWriter, r *http.Request) {
	var req gradeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.log.Error("failed to decode request", "err", err)
		h.fail(w, r, http.StatusBadRequest, "invalid request")
		return
	}

	order, err := transcript.ParseOrder(req.Order)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err.Error())
		return
	}

	assignments, err := roster.Build(req.Assignments)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err.Error())
		return
	}

	course := req.Course
	if course == "" {
		course = h.course
	}
	h.respond(w, r, assignments, transcript.Options{Course: course, Order: order})
}

func (h *Handler) SampleTranscript(w http.ResponseWriter, r *http.Request) {
	order, err := transcript.ParseOrder(r.URL.Query().Get("order"))
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err.Error())
		return
	}
	h.respond(w, r, roster.Sample().Assignments, transcript.Options{Course: h.course, Order: order})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, "ok")
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, assignments []grades.Assignment, opts transcript.Options) {
	format, err := responseFormat(r)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := grades.Grade(assignments)
	if err != nil {
		if errors.Is(err, grades.ErrWeightLimitExceeded) {
			h.log.Warn("weight gate rejected request", "err", err)
			h.fail(w, r, http.StatusUnprocessableEntity, transcript.GateFailureMessage)
			return
		}
		h.log.Error("failed to grade", "err", err)
		h.fail(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	h.log.Debug("graded",
		"formative_total", res.Formative,
		"summative_total", res.Summative,
		"passed", res.Passed,
	)

	switch format {
	case transcript.FormatText:
		var buf bytes.Buffer
		if err := transcript.WriteReport(&buf, res, opts); err != nil {
			h.log.Error("failed to render transcript", "err", err)
			h.fail(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		render.Status(r, http.StatusOK)
		render.PlainText(w, r, buf.String())
	case transcript.FormatJSON:
		render.Status(r, http.StatusOK)
		render.JSON(w, r, transcript.NewDocument(res, opts))
	}
}

// responseFormat defaults to JSON; ?format=text asks for the console report.
func responseFormat(r *http.Request) (transcript.Format, error) {
	raw := r.URL.Query().Get("format")
	if raw == "" {
		return transcript.FormatJSON, nil
	}
	return transcript.ParseFormat(raw)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: msg})
}
