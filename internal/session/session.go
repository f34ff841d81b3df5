// Package session binds a store, a navigator and a synchronizer into a session context.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/usly/internal/entities"
	"github.com/Decentr-net/usly/internal/feedback"
	"github.com/Decentr-net/usly/internal/geo"
	"github.com/Decentr-net/usly/internal/navigation"
	"github.com/Decentr-net/usly/internal/render"
	"github.com/Decentr-net/usly/internal/store"
)

// nolint:gochecknoglobals
var log = logrus.WithField("layer", "session").WithField("package", "session")

const genericFailure = "Coś poszło nie tak"

// Options ...
type Options struct {
	HistoryLimit int
	ToastTTL     time.Duration
	Geo          geo.Options
	// Sender delivers bug reports. Reports are only acknowledged locally when it is nil.
	Sender        feedback.Sender
	Presenter     render.Presenter
	RenderMetrics *render.Metrics
	Metrics       *Metrics
	Now           func() time.Time
	StoreOptions  []store.Option
}

// Session is a single user's view-state context. All its methods are safe for concurrent use,
// mutations are serialized.
type Session struct {
	id string

	mu       sync.Mutex
	store    *store.Store
	nav      *navigation.Navigator
	syncer   *render.Synchronizer
	notifier *Notifier
	frame    render.Frame
	pending  map[*Request]struct{}
	touched  time.Time

	ctx    context.Context
	cancel context.CancelFunc

	opts Options
}

// New creates a session over the demo state showing the welcome view.
func New(id string, opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Geo.Now == nil {
		opts.Geo.Now = opts.Now
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Session{
		id:       id,
		store:    store.New(store.Demo(), append([]store.Option{store.WithClock(opts.Now)}, opts.StoreOptions...)...),
		nav:      navigation.NewNavigator(opts.HistoryLimit),
		syncer:   render.NewSynchronizer(opts.Presenter, opts.RenderMetrics),
		notifier: NewNotifier(opts.ToastTTL, opts.Now),
		pending:  map[*Request]struct{}{},
		touched:  opts.Now(),
		ctx:      ctx,
		cancel:   cancel,
		opts:     opts,
	}

	s.render()

	return s
}

// ID ...
func (s *Session) ID() string {
	return s.id
}

// LastActive returns the time of the last operation.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.touched
}

// Close cancels all pending requests.
func (s *Session) Close() {
	s.cancel()
}

// History returns the navigation history, oldest first.
func (s *Session) History() []navigation.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.nav.History()
}

// Frame returns the last synchronized frame with active notifications.
func (s *Session) Frame() render.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current()
}

func (s *Session) current() render.Frame {
	f := s.frame
	f.Toasts = s.notifier.Active()
	return f
}

func (s *Session) render() {
	s.frame = s.syncer.Sync(s.nav.Current(), s.store.State())
}

func (s *Session) notify(format string, args ...interface{}) {
	s.notifier.Notify(fmt.Sprintf(format, args...))
	s.opts.Metrics.incNotifications()
}

// fail reports the error of a refused operation. Stale selections are ignored silently.
func (s *Session) fail(err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.WithField("session", s.id).WithError(err).Debug("selection not found")
		return
	case errors.Is(err, store.ErrValidation), errors.Is(err, navigation.ErrUnknownView):
		s.notify("%s", err.Error())
		return
	}

	log.WithField("session", s.id).WithError(err).Error("operation failed")
	s.notify(genericFailure)
}

// mutate runs f under the session lock. The frame is synchronized only when f succeeds.
func (s *Session) mutate(f func() error) render.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touched = s.opts.Now()

	if err := f(); err != nil {
		s.fail(err)
		return s.current()
	}

	s.render()

	return s.current()
}

// goTo must be called with the lock held.
func (s *Session) goTo(v navigation.View) error {
	changed, err := s.nav.Goto(v)
	if err != nil {
		return err
	}
	if changed {
		s.cancelStale()
	}
	return nil
}

// cancelStale cancels view-bound requests tied to any view but the current one.
func (s *Session) cancelStale() {
	current := s.nav.Current()
	for r := range s.pending {
		if r.bound && r.view != current {
			r.cancel()
		}
	}
}

func (s *Session) cancelAll() {
	for r := range s.pending {
		r.cancel()
	}
}

// Goto navigates to the view by its name. Unknown names only raise a notification.
func (s *Session) Goto(name string) render.Frame {
	return s.mutate(func() error {
		v, err := navigation.ParseView(name)
		if err != nil {
			return &unknownViewError{name: name}
		}
		return s.goTo(v)
	})
}

type unknownViewError struct {
	name string
}

func (e *unknownViewError) Error() string {
	return fmt.Sprintf("Brak widoku: %s", e.name)
}

func (e *unknownViewError) Unwrap() error {
	return navigation.ErrUnknownView
}

// Back navigates to the previous view.
func (s *Session) Back() render.Frame {
	return s.mutate(func() error {
		s.nav.Back()
		s.cancelStale()
		return nil
	})
}

// SelectRole ...
func (s *Session) SelectRole(role string) render.Frame {
	return s.mutate(func() error {
		return s.store.SelectRole(role)
	})
}

func (s *Session) startView() navigation.View {
	if s.store.State().Role == entities.PartnerRole {
		return navigation.PartnerDashboard
	}
	return navigation.Nearby
}

// Login logs in and opens the start view of the role.
func (s *Session) Login() render.Frame {
	return s.mutate(func() error {
		s.store.Login()
		s.notify("Zalogowano")
		return s.goTo(s.startView())
	})
}

// Register creates the account. Users continue with profile setup, partners land on the dashboard.
func (s *Session) Register(f store.RegisterForm) render.Frame {
	return s.mutate(func() error {
		if err := s.store.Register(f); err != nil {
			return err
		}

		s.notify("Konto utworzone")

		if s.store.State().Role == entities.PartnerRole {
			return s.goTo(navigation.PartnerDashboard)
		}
		return s.goTo(navigation.ProfileSetup)
	})
}

// Logout resets profiles and the navigation history.
func (s *Session) Logout() render.Frame {
	return s.mutate(func() error {
		s.store.Logout()
		s.nav.Reset()
		s.cancelAll()
		s.notify("Wylogowano")
		return nil
	})
}

// SetPlan sets the plan of the current role.
func (s *Session) SetPlan(plan string) render.Frame {
	return s.mutate(func() error {
		var err error
		if s.store.State().Role == entities.PartnerRole {
			err = s.store.SetPartnerPlan(plan)
		} else {
			err = s.store.SetUserPlan(plan)
		}
		if err != nil {
			return err
		}

		s.notify("Wybrano plan: %s", strings.ToUpper(plan))
		return nil
	})
}

// SaveSettings ...
func (s *Session) SaveSettings(f store.SettingsForm) render.Frame {
	return s.mutate(func() error {
		s.saveSettings(f)
		return nil
	})
}

// SavePartnerSettings ...
func (s *Session) SavePartnerSettings(f store.PartnerSettingsForm) render.Frame {
	return s.mutate(func() error {
		s.savePartnerSettings(f)
		return nil
	})
}

// SaveRoleSettings saves the form of the role selected at the moment of the call.
func (s *Session) SaveRoleSettings(user store.SettingsForm, partner store.PartnerSettingsForm) render.Frame {
	return s.mutate(func() error {
		if s.store.State().Role == entities.PartnerRole {
			s.savePartnerSettings(partner)
		} else {
			s.saveSettings(user)
		}
		return nil
	})
}

func (s *Session) saveSettings(f store.SettingsForm) {
	s.store.SaveSettings(f)
	s.notify("Zapisano ustawienia")
}

func (s *Session) savePartnerSettings(f store.PartnerSettingsForm) {
	s.store.SavePartnerSettings(f)
	s.notify("Zapisano ustawienia organizatora")
}

// FinishProfileSetup saves the profile and opens the nearby view.
func (s *Session) FinishProfileSetup(f store.ProfileSetupForm) render.Frame {
	return s.mutate(func() error {
		s.store.FinishProfileSetup(f)
		s.notify("Profil zapisany")
		return s.goTo(navigation.Nearby)
	})
}

// AddInterest ...
func (s *Session) AddInterest(tag string) render.Frame {
	return s.mutate(func() error {
		t, err := s.store.AddInterest(tag)
		if err != nil {
			return err
		}
		s.notify("Dodano #%s", t)
		return nil
	})
}

// RemoveInterest ...
func (s *Session) RemoveInterest(tag string) render.Frame {
	return s.mutate(func() error {
		s.notify("Usunięto #%s", s.store.RemoveInterest(tag))
		return nil
	})
}

// SetAgeRange ...
func (s *Session) SetAgeRange(from, to int) render.Frame {
	return s.mutate(func() error {
		return s.store.SetAgeRange(from, to)
	})
}

// SetQuery sets the free-text filter of the list.
func (s *Session) SetQuery(l store.List, q string) render.Frame {
	return s.mutate(func() error {
		return s.store.SetQuery(l, q)
	})
}

// OpenPerson opens the person's profile.
func (s *Session) OpenPerson(id string) render.Frame {
	return s.mutate(func() error {
		if _, err := s.store.OpenPerson(id); err != nil {
			return err
		}
		return s.goTo(navigation.PersonProfile)
	})
}

// StartChat opens the chat with the focused person.
func (s *Session) StartChat() render.Frame {
	return s.mutate(func() error {
		if _, err := s.store.StartChat(); err != nil {
			return err
		}
		return s.goTo(navigation.ChatThread)
	})
}

// OpenChat ...
func (s *Session) OpenChat(id string) render.Frame {
	return s.mutate(func() error {
		if _, err := s.store.OpenChat(id); err != nil {
			return err
		}
		return s.goTo(navigation.ChatThread)
	})
}

// SendChatMessage ...
func (s *Session) SendChatMessage(text string) render.Frame {
	return s.mutate(func() error {
		return s.store.SendChatMessage(text)
	})
}

// OpenEvent ...
func (s *Session) OpenEvent(id string) render.Frame {
	return s.mutate(func() error {
		if _, err := s.store.OpenEvent(id); err != nil {
			return err
		}
		return s.goTo(navigation.EventDetail)
	})
}

// ToggleSaved ...
func (s *Session) ToggleSaved() render.Frame {
	return s.mutate(func() error {
		e, err := s.store.ToggleSaved()
		if err != nil {
			return err
		}

		if e.Saved {
			s.notify("Zapisano wydarzenie")
		} else {
			s.notify("Usunięto z zapisanych")
		}
		return nil
	})
}

// ToggleInterested ...
func (s *Session) ToggleInterested() render.Frame {
	return s.mutate(func() error {
		e, err := s.store.ToggleInterested()
		if err != nil {
			return err
		}

		if e.Interested {
			s.notify("Dodano jako zainteresowany")
		} else {
			s.notify("Usunięto zainteresowanie")
		}
		return nil
	})
}

// SetEventsTab ...
func (s *Session) SetEventsTab(tab string) render.Frame {
	return s.mutate(func() error {
		return s.store.SetEventsTab(tab)
	})
}

// PublishEvent publishes the partner's event and opens the partner's event list.
func (s *Session) PublishEvent(f store.PublishForm) render.Frame {
	return s.mutate(func() error {
		if _, err := s.store.PublishEvent(f); err != nil {
			return err
		}
		s.notify("Opublikowano wydarzenie")
		return s.goTo(navigation.PartnerEvents)
	})
}

// OpenGroup ...
func (s *Session) OpenGroup(id string) render.Frame {
	return s.mutate(func() error {
		if _, err := s.store.OpenGroup(id); err != nil {
			return err
		}
		return s.goTo(navigation.GroupThread)
	})
}

// SendGroupMessage ...
func (s *Session) SendGroupMessage(text string) render.Frame {
	return s.mutate(func() error {
		return s.store.SendGroupMessage(text)
	})
}

// start runs the operation asynchronously. It must be called with the lock held.
// complete is called with the lock held unless the request was canceled.
func (s *Session) start(ctx context.Context, kind string, bound bool, run func(ctx context.Context) error, complete func(err error)) *Request {
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(s.ctx, cancel)

	r := &Request{
		kind:   kind,
		view:   s.nav.Current(),
		bound:  bound,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.pending[r] = struct{}{}

	go func() {
		err := run(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()

		stop()
		delete(s.pending, r)

		switch {
		case ctx.Err() != nil:
			r.err = context.Canceled
			s.opts.Metrics.incRequests(kind, StatusCanceled)
			log.WithField("session", s.id).WithField("kind", kind).Debug("late completion ignored")
		default:
			r.err = err
			complete(err)
			s.render()

			if err != nil {
				s.opts.Metrics.incRequests(kind, StatusFailure)
			} else {
				s.opts.Metrics.incRequests(kind, StatusSuccess)
			}
		}

		cancel()
		close(r.done)
	}()

	return r
}

func locationMessage(err error) string {
	switch {
	case errors.Is(err, geo.ErrTimeout):
		return "Nie udało się pobrać lokalizacji w wyznaczonym czasie"
	case errors.Is(err, geo.ErrStale):
		return "Lokalizacja jest nieaktualna, spróbuj ponownie"
	default:
		return "Nie udało się pobrać lokalizacji (brak zgody?)"
	}
}

// RequestLocation determines the user's position with the locator and stores it.
// The returned request is canceled when the user leaves the current view.
func (s *Session) RequestLocation(ctx context.Context, l geo.Locator) *Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touched = s.opts.Now()
	s.notify("Pobieram lokalizację…")

	var coords entities.Coordinates

	return s.start(ctx, LocationRequest, true,
		func(ctx context.Context) error {
			var err error
			coords, err = geo.Locate(ctx, l, s.opts.Geo)
			return err
		},
		func(err error) {
			if err != nil {
				log.WithField("session", s.id).WithError(err).Info("failed to locate")
				s.notify(locationMessage(err))
				return
			}

			s.store.SetGeo(coords)
			s.notify("Lokalizacja zapisana")
		},
	)
}

// SubmitBugReport sends the report in the background. Navigation does not cancel the delivery.
// It returns nil when nothing is sent: the message is empty or there is no sender and the report
// is acknowledged locally.
func (s *Session) SubmitBugReport(ctx context.Context, message string) *Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touched = s.opts.Now()

	message = strings.TrimSpace(message)
	if message == "" {
		s.notify("Opisz proszę problem")
		return nil
	}

	if s.opts.Sender == nil {
		s.notify("Dzięki! Zgłoszenie zapisane")
		return nil
	}

	st := s.store.State()
	report := feedback.Report{
		Type:    feedback.BugType,
		Message: message,
		View:    s.nav.Current().String(),
		Role:    string(st.Role),
	}

	return s.start(ctx, BugReportRequest, false,
		func(ctx context.Context) error {
			return s.opts.Sender.Send(ctx, report)
		},
		func(err error) {
			if err != nil {
				log.WithField("session", s.id).WithError(err).Error("failed to send bug report")
				s.notify("Nie udało się wysłać zgłoszenia")
				return
			}
			s.notify("Dzięki! Zgłoszenie wysłane.")
		},
	)
}
