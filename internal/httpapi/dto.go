package httpapi

import "gradebook/internal/roster"

type gradeRequest struct {
	Course      string                   `json:"course"`
	Order       string                   `json:"order"`
	Assignments []roster.AssignmentEntry `json:"assignments"`
}

type errorResponse struct {
	Error string `json:"error"`
}
