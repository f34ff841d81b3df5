package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/tomasen/realip"

	"github.com/Decentr-net/usly/internal/entities"
	"github.com/Decentr-net/usly/internal/navigation"
	"github.com/Decentr-net/usly/internal/projection"
	"github.com/Decentr-net/usly/internal/render"
	"github.com/Decentr-net/usly/internal/service"
	"github.com/Decentr-net/usly/internal/store"
)

func (s server) submitFeedback(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /feedback Feedback SubmitFeedback
	//
	// Stores user feedback, e.g. a bug report.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/FeedbackRequest"
	// responses:
	//   '201':
	//     schema:
	//       "$ref": "#/definitions/Feedback"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req FeedbackRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	f := entities.Feedback{
		Type:    req.Type,
		Message: req.Message,
		View:    req.View,
		Role:    req.Role,
		IP:      realip.FromRequest(r),
	}

	if err := s.svc.SubmitFeedback(r.Context(), &f); err != nil {
		if errors.Is(err, service.ErrInvalidFeedback) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to submit feedback: %s", err.Error())
		return
	}

	writeOK(w, http.StatusCreated, toAPIFeedback(&f))
}

func (s server) getFeedback(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /feedback/{id} Feedback GetFeedback
	//
	// Get feedback by id.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// responses:
	//   '200':
	//     schema:
	//       "$ref": "#/definitions/Feedback"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, err := strconv.ParseInt(chi.URLParam(r, "fid"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	f, err := s.svc.GetFeedback(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeError(w, http.StatusNotFound, "feedback not found")
			return
		}
		writeInternalErrorf(r.Context(), w, "failed to get feedback: %s", err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIFeedback(f))
}

func (s server) listFeedback(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /feedback Feedback ListFeedback
	//
	// Lists feedback, newest first.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: type
	//   in: query
	//   required: false
	//   example: bug
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// - name: before
	//   description: sets not-including upper bound for id
	//   in: query
	//   required: false
	// responses:
	//   '200':
	//     schema:
	//       "$ref": "#/definitions/ListFeedbackResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	p, err := extractListFeedbackParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ff, err := s.svc.ListFeedback(r.Context(), p)
	if err != nil {
		writeInternalErrorf(r.Context(), w, "failed to list feedback: %s", err.Error())
		return
	}

	resp := ListFeedbackResponse{Feedback: make([]Feedback, len(ff))}
	for i, v := range ff {
		resp.Feedback[i] = toAPIFeedback(v)
	}

	writeOK(w, http.StatusOK, resp)
}

func extractListFeedbackParams(q url.Values) (service.ListFeedbackParams, error) {
	p := service.ListFeedbackParams{
		Type: q.Get("type"),
	}

	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > service.MaxLimit {
			return p, fmt.Errorf("%w: invalid limit", errInvalidRequest)
		}
		p.Limit = v
	}

	if s := q.Get("before"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < 1 {
			return p, fmt.Errorf("%w: invalid before", errInvalidRequest)
		}
		p.Before = v
	}

	return p, nil
}

func (s server) listInterests(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /interests Catalog ListInterests
	//
	// Suggests interest tags starting with the query.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: q
	//   in: query
	//   required: true
	//   example: ka
	// responses:
	//   '200':
	//     schema:
	//       "$ref": "#/definitions/InterestsResponse"

	resp := InterestsResponse{Interests: []string{}}
	for v := range projection.InterestCatalog(store.InterestCatalog, r.URL.Query().Get("q")) {
		resp.Interests = append(resp.Interests, v)
	}

	writeOK(w, http.StatusOK, resp)
}

func (s server) listViews(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /views Catalog ListViews
	//
	// Lists views with projections they show.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/View"

	views := navigation.AllViews()
	resp := make([]View, len(views))
	for i, v := range views {
		resp[i] = View{
			Name:        v.String(),
			Projections: render.Projections(v),
		}
		if resp[i].Projections == nil {
			resp[i].Projections = []render.Projection{}
		}
	}

	writeOK(w, http.StatusOK, resp)
}
