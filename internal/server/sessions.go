package server

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi"

	"github.com/Decentr-net/usly/internal/entities"
	"github.com/Decentr-net/usly/internal/geo"
	"github.com/Decentr-net/usly/internal/render"
	"github.com/Decentr-net/usly/internal/session"
	"github.com/Decentr-net/usly/internal/store"
)

// action applies a user event to the session. Domain failures are reported within the frame,
// a returned error means the request itself is malformed.
type action func(r *http.Request, ss *session.Session) (render.Frame, error)

func (s server) createSession(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /sessions Sessions CreateSession
	//
	// Creates a new session showing the welcome view.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '201':
	//     schema:
	//       "$ref": "#/definitions/SessionResponse"

	ss := s.m.Create()

	writeOK(w, http.StatusCreated, SessionResponse{
		ID:    ss.ID(),
		Frame: ss.Frame(),
	})
}

func (s server) withSession(a action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ss, err := s.m.Get(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}

		f, err := a(r, ss)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeOK(w, http.StatusOK, SessionResponse{
			ID:    ss.ID(),
			Frame: f,
		})
	}
}

func urlParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func getFrame(_ *http.Request, ss *session.Session) (render.Frame, error) {
	return ss.Frame(), nil
}

func gotoView(r *http.Request, ss *session.Session) (render.Frame, error) {
	return ss.Goto(urlParam(r, "view")), nil
}

func back(_ *http.Request, ss *session.Session) (render.Frame, error) {
	return ss.Back(), nil
}

func login(_ *http.Request, ss *session.Session) (render.Frame, error) {
	return ss.Login(), nil
}

func logout(_ *http.Request, ss *session.Session) (render.Frame, error) {
	return ss.Logout(), nil
}

func register(r *http.Request, ss *session.Session) (render.Frame, error) {
	var req RegisterRequest
	if err := decode(r, &req); err != nil {
		return render.Frame{}, err
	}
	return ss.Register(req.toForm()), nil
}

func selectRole(r *http.Request, ss *session.Session) (render.Frame, error) {
	var req RoleRequest
	if err := decode(r, &req); err != nil {
		return render.Frame{}, err
	}
	return ss.SelectRole(req.Role), nil
}

func setPlan(r *http.Request, ss *session.Session) (render.Frame, error) {
	var req PlanRequest
	if err := decode(r, &req); err != nil {
		return render.Frame{}, err
	}
	return ss.SetPlan(req.Plan), nil
}

func saveSettings(r *http.Request, ss *session.Session) (render.Frame, error) {
	var req SettingsRequest
	if err := decode(r, &req); err != nil {
		return render.Frame{}, err
	}

	return ss.SaveRoleSettings(
		store.SettingsForm{
			Nickname: req.Nickname,
			Bio:      req.Bio,
			City:     req.City,
			AgeFrom:  req.AgeFrom,
			AgeTo:    req.AgeTo,
		},
		store.PartnerSettingsForm{
			Company:  req.Company,
			Category: req.Category,
			City:     req.City,
			About:    req.About,
		},
	), nil
}

func finishProfileSetup(r *http.Request, ss *session.Session) (render.Frame, error) {
	var req ProfileSetupRequest
	if err := decode(r, &req); err != nil {
		return render.Frame{}, err
	}
	return ss.FinishProfileSetup(store.ProfileSetupForm{City: req.City, Bio: req.Bio}), nil
}

func addInterest(r *http.Request, ss *session.Session) (render.Frame, error) {
	var req InterestRequest
	if err := decode(r, &req); err != nil {
		return render.Frame{}, err
	}
	return ss.AddInterest(req.Tag), nil
}

func removeInterest(r *http.Request, ss *session.Session) (render.Frame, error) {
	return ss.RemoveInterest(urlParam(r, "tag")), nil
}

func setAgeRange(r *http.Request, ss *session.Session) (render.Frame, error) {
	var req AgeRangeRequest
	if err := decode(r, &req); err != nil {
		return render.Frame{}, err
	}
	return ss.SetAgeRange(req.From, req.To), nil
}

func setQuery(r *http.Request, ss *session.Session) (render.Frame, error) {
	var req QueryRequest
	if err := decode(r, &req); err != nil {
		return render.Frame{}, err
	}
	return ss.SetQuery(store.List(req.List), req.Query), nil
}

func openPerson(r *http.Request, ss *session.Session) (render.Frame, error) {
	return ss.OpenPerson(urlParam(r, "pid")), nil
}

func startChat(_ *http.Request, ss *session.Session) (render.Frame, error) {
	return ss.StartChat(), nil
}

func openChat(r *http.Request, ss *session.Session) (render.Frame, error) {
	return ss.OpenChat(urlParam(r, "cid")), nil
}

func sendChatMessage(r *http.Request, ss *session.Session) (render.Frame, error) {
	var req MessageRequest
	if err := decode(r, &req); err != nil {
		return render.Frame{}, err
	}
	return ss.SendChatMessage(req.Text), nil
}

func openEvent(r *http.Request, ss *session.Session) (render.Frame, error) {
	return ss.OpenEvent(urlParam(r, "eid")), nil
}

func toggleSaved(_ *http.Request, ss *session.Session) (render.Frame, error) {
	return ss.ToggleSaved(), nil
}

func toggleInterested(_ *http.Request, ss *session.Session) (render.Frame, error) {
	return ss.ToggleInterested(), nil
}

func setEventsTab(r *http.Request, ss *session.Session) (render.Frame, error) {
	var req EventsTabRequest
	if err := decode(r, &req); err != nil {
		return render.Frame{}, err
	}
	return ss.SetEventsTab(req.Tab), nil
}

func publishEvent(r *http.Request, ss *session.Session) (render.Frame, error) {
	var req PublishRequest
	if err := decode(r, &req); err != nil {
		return render.Frame{}, err
	}
	return ss.PublishEvent(req.toForm()), nil
}

func openGroup(r *http.Request, ss *session.Session) (render.Frame, error) {
	return ss.OpenGroup(urlParam(r, "gid")), nil
}

func sendGroupMessage(r *http.Request, ss *session.Session) (render.Frame, error) {
	var req MessageRequest
	if err := decode(r, &req); err != nil {
		return render.Frame{}, err
	}
	return ss.SendGroupMessage(req.Text), nil
}

// reportLocation stores the position reported by the device and waits until the session handles it.
func (s server) reportLocation(r *http.Request, ss *session.Session) (render.Frame, error) {
	var req LocationRequest
	if err := decode(r, &req); err != nil {
		return render.Frame{}, err
	}

	var l geo.Reported
	switch req.Error {
	case "":
		ts := s.now()
		if req.Timestamp != 0 {
			ts = time.UnixMilli(req.Timestamp)
		}
		l.Fix = geo.Fix{
			Coordinates: entities.Coordinates{Lat: req.Latitude, Lng: req.Longitude},
			Timestamp:   ts,
		}
	case LocationTimeout:
		l.Err = geo.ErrTimeout
	case LocationDenied, LocationUnavailable:
		l.Err = fmt.Errorf("%w: %s", geo.ErrUnavailable, req.Error)
	default:
		return render.Frame{}, fmt.Errorf("%w: unknown location error %q", errInvalidRequest, req.Error)
	}

	pending := ss.RequestLocation(r.Context(), l)
	select {
	case <-pending.Done():
	case <-r.Context().Done():
	}

	return ss.Frame(), nil
}

// submitBugReport doesn't wait for delivery, the outcome appears in later frames.
func submitBugReport(r *http.Request, ss *session.Session) (render.Frame, error) {
	var req BugReportRequest
	if err := decode(r, &req); err != nil {
		return render.Frame{}, err
	}

	ss.SubmitBugReport(r.Context(), req.Message)

	return ss.Frame(), nil
}
