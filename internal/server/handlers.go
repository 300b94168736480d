package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/abhinav4568482/pyterminal/internal/core/history"
	"github.com/abhinav4568482/pyterminal/internal/core/result"
	"github.com/abhinav4568482/pyterminal/internal/core/session"
	"github.com/abhinav4568482/pyterminal/pkg/iojson"
)

// SessionCookie names the cookie carrying the session token.
const SessionCookie = "pyterminal_session"

type executeRequest struct {
	Command string `json:"command"`
}

type executeResponse struct {
	Success    bool   `json:"success"`
	Output     string `json:"output"`
	Error      string `json:"error"`
	Clear      bool   `json:"clear,omitempty"`
	Exit       bool   `json:"exit,omitempty"`
	Translated string `json:"translated,omitempty"`
	CurrentDir string `json:"current_dir,omitempty"`
}

type historyResponse struct {
	History []history.Entry `json:"history"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)

	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, executeResponse{Error: "request body too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, executeResponse{Error: "invalid request body"})
		return
	}

	res := s.dispatcher.Dispatch(r.Context(), sess, req.Command)
	writeJSON(w, http.StatusOK, newExecuteResponse(res, sess))
}

func newExecuteResponse(res result.Result, sess *session.Session) executeResponse {
	resp := executeResponse{
		Success:    res.Succeeded(),
		Translated: res.Translated,
	}

	switch res.Status {
	case result.StatusExit:
		resp.Output = res.Output
		resp.Exit = true
	case result.StatusClearScreen:
		resp.Clear = true
	default:
		resp.Output = res.Output
		resp.Error = res.ErrorMessage()
		resp.CurrentDir = sess.Dir()
	}

	return resp
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	sess := s.session(w, r)

	entries, err := s.dispatcher.History().List(r.Context(), sess.ID, limit)
	if err != nil {
		s.log.Error().Ctx(r.Context()).Err(err).Msg("list history")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Error getting history"})
		return
	}

	writeJSON(w, http.StatusOK, historyResponse{History: entries})
}

// session resolves the caller's session, issuing a new cookie when the token
// is missing or unknown.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Session {
	var token string
	if c, err := r.Cookie(SessionCookie); err == nil {
		token = c.Value
	}

	sess, created := s.sessions.Resolve(token)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		s.log.Info().Str("session_id", sess.ID).Msg("session created")
	}
	return sess
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = iojson.WriteWith(w, w, body)
}
