package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Decentr-net/usly/internal/navigation"
	"github.com/Decentr-net/usly/internal/service"
	"github.com/Decentr-net/usly/internal/session"
)

func newTestRouter(svc service.Service) (chi.Router, *session.Manager) {
	m := session.NewManager(time.Minute, session.Options{})

	r := chi.NewRouter()
	SetupRouter(m, svc, r, 5*time.Second)

	return r, m
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) SessionResponse {
	t.Helper()

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())

	return resp
}

func createSession(t *testing.T, r http.Handler) string {
	t.Helper()

	w := do(r, http.MethodPost, "/v1/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeSession(t, w)
	require.NotEmpty(t, resp.ID)
	require.Equal(t, navigation.Welcome, resp.Frame.View)

	return resp.ID
}

func TestSessions_Create(t *testing.T) {
	r, m := newTestRouter(nil)

	id := createSession(t, r)
	require.Equal(t, 1, m.Len())

	w := do(r, http.MethodGet, fmt.Sprintf("/v1/sessions/%s", id), "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, id, decodeSession(t, w).ID)

	w = do(r, http.MethodGet, fmt.Sprintf("/v1/sessions/%s/", id), "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSessions_NotFound(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := do(r, http.MethodPost, "/v1/sessions/unknown/login", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"session not found"}`, w.Body.String())
}

func TestSessions_BadRequest(t *testing.T) {
	r, _ := newTestRouter(nil)
	id := createSession(t, r)

	for _, path := range []string{"register", "role", "plan", "settings", "interests", "messages", "events", "location", "bug-report"} {
		w := do(r, http.MethodPost, fmt.Sprintf("/v1/sessions/%s/%s", id, path), "{")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestSessions_Goto(t *testing.T) {
	r, _ := newTestRouter(nil)
	id := createSession(t, r)

	w := do(r, http.MethodPost, fmt.Sprintf("/v1/sessions/%s/goto/events", id), "")
	require.Equal(t, http.StatusOK, w.Code)
	f := decodeSession(t, w).Frame
	require.Equal(t, navigation.Events, f.View)
	require.NotEmpty(t, f.Events)

	w = do(r, http.MethodPost, fmt.Sprintf("/v1/sessions/%s/goto/nowhere", id), "")
	require.Equal(t, http.StatusOK, w.Code)
	f = decodeSession(t, w).Frame
	require.Equal(t, navigation.Events, f.View)
	require.Contains(t, f.Toasts, "Brak widoku: nowhere")

	w = do(r, http.MethodPost, fmt.Sprintf("/v1/sessions/%s/back", id), "")
	require.Equal(t, navigation.Welcome, decodeSession(t, w).Frame.View)
}

func TestSessions_UserFlow(t *testing.T) {
	r, _ := newTestRouter(nil)
	id := createSession(t, r)
	path := func(p string) string {
		return fmt.Sprintf("/v1/sessions/%s/%s", id, p)
	}

	f := decodeSession(t, do(r, http.MethodPost, path("role"), `{"role":"user"}`)).Frame
	require.Equal(t, "Towarzysz", f.Summary.RoleLabel)

	f = decodeSession(t, do(r, http.MethodPost, path("login"), "")).Frame
	require.Equal(t, navigation.Nearby, f.View)
	require.True(t, f.Summary.TabBarVisible)
	require.Contains(t, f.Toasts, "Zalogowano")
	require.NotEmpty(t, f.NearbyPeople)

	f = decodeSession(t, do(r, http.MethodPost, path("interests"), `{"tag":"#wspinaczka"}`)).Frame
	require.Contains(t, f.Summary.Profile.Interests, "wspinaczka")
	require.Contains(t, f.Toasts, "Dodano #wspinaczka")

	f = decodeSession(t, do(r, http.MethodDelete, path("interests/kawa"), "")).Frame
	require.NotContains(t, f.Summary.Profile.Interests, "kawa")

	f = decodeSession(t, do(r, http.MethodPost, path("age-range"), `{"from":40,"to":20}`)).Frame
	require.Equal(t, 20, f.Summary.Profile.AgeFrom)
	require.Equal(t, 40, f.Summary.Profile.AgeTo)

	f = decodeSession(t, do(r, http.MethodPost, path("settings"), `{"nickname":"Ola","bio":"hej","company":"ignored"}`)).Frame
	require.Equal(t, "Ola", f.Summary.Profile.Nickname)
	require.Equal(t, "hej", f.Summary.Profile.Bio)
	require.NotEqual(t, "ignored", f.Summary.Partner.Company)

	f = decodeSession(t, do(r, http.MethodPost, path("plan"), `{"plan":"premium"}`)).Frame
	require.Contains(t, f.Toasts, "Wybrano plan: PREMIUM")

	f = decodeSession(t, do(r, http.MethodPost, path("people/u4"), "")).Frame
	require.Equal(t, navigation.PersonProfile, f.View)
	require.NotNil(t, f.Person)

	f = decodeSession(t, do(r, http.MethodPost, path("chat"), "")).Frame
	require.Equal(t, navigation.ChatThread, f.View)
	require.NotNil(t, f.Chat)

	f = decodeSession(t, do(r, http.MethodPost, path("messages"), `{"text":"Cześć!"}`)).Frame
	require.Equal(t, "Cześć!", f.Chat.Messages[len(f.Chat.Messages)-1].Text)
	require.True(t, f.Chat.Messages[len(f.Chat.Messages)-1].Mine)

	f = decodeSession(t, do(r, http.MethodPost, path("events/e1"), "")).Frame
	require.Equal(t, navigation.EventDetail, f.View)
	saved := f.Event.Saved

	f = decodeSession(t, do(r, http.MethodPost, path("save"), "")).Frame
	require.Equal(t, !saved, f.Event.Saved)

	f = decodeSession(t, do(r, http.MethodPost, path("groups/g1"), "")).Frame
	require.Equal(t, navigation.GroupThread, f.View)
	n := len(f.Group.Messages)

	f = decodeSession(t, do(r, http.MethodPost, path("group-messages"), `{"text":"Kto idzie?"}`)).Frame
	require.Len(t, f.Group.Messages, n+1)

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, path("goto/nearby"), "").Code)
	f = decodeSession(t, do(r, http.MethodPost, path("query"), `{"list":"nearby_people","query":"ma"}`)).Frame
	require.Len(t, f.NearbyPeople, 1)

	f = decodeSession(t, do(r, http.MethodPost, path("logout"), "")).Frame
	require.Equal(t, navigation.Welcome, f.View)
	require.False(t, f.Summary.LoggedIn)
}

func TestSessions_Partner(t *testing.T) {
	r, _ := newTestRouter(nil)
	id := createSession(t, r)
	path := func(p string) string {
		return fmt.Sprintf("/v1/sessions/%s/%s", id, p)
	}

	decodeSession(t, do(r, http.MethodPost, path("role"), `{"role":"partner"}`))

	f := decodeSession(t, do(r, http.MethodPost, path("register"), `{
		"accept_terms": true,
		"accept_privacy": true,
		"email": "kontakt@aurora.pl",
		"password": "tajnehaslo",
		"company": "Aurora",
		"partner_city": "Kraków"
	}`)).Frame
	require.Equal(t, navigation.PartnerDashboard, f.View)
	require.Equal(t, "Aurora", f.Summary.Partner.Company)
	require.Equal(t, "inne", f.Summary.Partner.Category)

	f = decodeSession(t, do(r, http.MethodPost, path("settings"), `{"about":"Kawiarnia","nickname":"ignored"}`)).Frame
	require.Equal(t, "Kawiarnia", f.Summary.Partner.About)
	require.NotEqual(t, "ignored", f.Summary.Profile.Nickname)

	f = decodeSession(t, do(r, http.MethodPost, path("events"), `{"title":"Degustacja"}`)).Frame
	require.Contains(t, f.Toasts, "Uzupełnij: nazwa, miasto, kiedy, gdzie, hashtag")

	f = decodeSession(t, do(r, http.MethodPost, path("events"), `{
		"title": "Degustacja",
		"city": "Kraków",
		"when": "Sobota 18:00",
		"where": "Aurora",
		"interest": "#kawa",
		"pricing_mode": "range",
		"price_from": 20,
		"price_to": 10
	}`)).Frame
	require.Equal(t, navigation.PartnerEvents, f.View)
	require.Equal(t, "Degustacja", f.PartnerEvents[0].Title)
	require.Equal(t, "10–20 zł", f.PartnerEvents[0].Price)
}

func TestSessions_Location(t *testing.T) {
	r, _ := newTestRouter(nil)
	id := createSession(t, r)
	path := fmt.Sprintf("/v1/sessions/%s/location", id)

	tt := []struct {
		name  string
		body  string
		toast string
		geo   bool
	}{
		{
			name:  "denied",
			body:  `{"error":"denied"}`,
			toast: "Nie udało się pobrać lokalizacji (brak zgody?)",
		},
		{
			name:  "timeout",
			body:  `{"error":"timeout"}`,
			toast: "Nie udało się pobrać lokalizacji w wyznaczonym czasie",
		},
		{
			name:  "stale",
			body:  `{"latitude":52.23,"longitude":21.01,"timestamp":1000}`,
			toast: "Lokalizacja jest nieaktualna, spróbuj ponownie",
		},
		{
			name:  "success",
			body:  `{"latitude":52.23,"longitude":21.01}`,
			toast: "Lokalizacja zapisana",
			geo:   true,
		},
	}

	for _, tc := range tt {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, http.MethodPost, path, tc.body)
			require.Equal(t, http.StatusOK, w.Code)

			f := decodeSession(t, w).Frame
			require.Contains(t, f.Toasts, tc.toast)
			require.Equal(t, tc.geo, f.Summary.Profile.HasGeo)
		})
	}

	w := do(r, http.MethodPost, path, `{"error":"exploded"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessions_BugReport(t *testing.T) {
	r, _ := newTestRouter(nil)
	id := createSession(t, r)
	path := fmt.Sprintf("/v1/sessions/%s/bug-report", id)

	f := decodeSession(t, do(r, http.MethodPost, path, `{"message":"  "}`)).Frame
	require.Contains(t, f.Toasts, "Opisz proszę problem")

	f = decodeSession(t, do(r, http.MethodPost, path, `{"message":"Mapa nie działa"}`)).Frame
	require.Contains(t, f.Toasts, "Dzięki! Zgłoszenie zapisane")
}
