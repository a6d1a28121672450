package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/car-rental-admin/internal/config"
	"github.com/iliyamo/car-rental-admin/internal/form"
	"github.com/iliyamo/car-rental-admin/internal/modals"
	"github.com/iliyamo/car-rental-admin/internal/model"
	"github.com/iliyamo/car-rental-admin/internal/queue"
	"github.com/iliyamo/car-rental-admin/internal/repository"
	"github.com/iliyamo/car-rental-admin/internal/view"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type memStore[T any] struct {
	mu      sync.Mutex
	items   []T
	byID    map[uint64]T
	saved   []T
	saveErr error
	listErr error
}

func (s *memStore[T]) List(context.Context) ([]T, error) { return s.items, s.listErr }

func (s *memStore[T]) GetByID(_ context.Context, id uint64) (*T, error) {
	if v, ok := s.byID[id]; ok {
		return &v, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memStore[T]) Create(_ context.Context, rec *T) error { return s.save(rec) }
func (s *memStore[T]) Update(_ context.Context, rec *T) error { return s.save(rec) }

func (s *memStore[T]) save(rec *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, *rec)
	return nil
}

type recordingAuditor struct{ events []queue.RecordChangedEvent }

func (a *recordingAuditor) RecordChanged(_ context.Context, ev queue.RecordChangedEvent) {
	a.events = append(a.events, ev)
}

type feedbackFixture struct {
	e     *echo.Echo
	store *memStore[model.Feedback]
	audit *recordingAuditor
}

func newFeedbackFixture() *feedbackFixture {
	existing := model.Feedback{ID: 9, CustomerID: 2, RentalID: 3, Rating: 4, Comments: "fine"}
	store := &memStore[model.Feedback]{
		items: []model.Feedback{existing},
		byID:  map[uint64]model.Feedback{9: existing},
	}
	customers := &memStore[model.Customer]{items: []model.Customer{{ID: 2, FirstName: "Ada", LastName: "Lovelace"}}}
	rentals := &memStore[model.Rental]{items: []model.Rental{{ID: 3}}}
	audit := &recordingAuditor{}

	h := NewEntityHandler(Entity[model.Feedback]{
		Name:     "feedback",
		Resource: "feedbacks",
		Title:    "Feedback",
		Columns:  []string{"ID", "Rating", "Comments"},
		Row: func(f model.Feedback) []string {
			return []string{form.FormatUint(f.ID), form.FormatUint(uint64(f.Rating)), f.Comments}
		},
		ID:      func(f model.Feedback) uint64 { return f.ID },
		Modal:   modals.Feedback(),
		Sources: []form.ReferenceSource{modals.CustomerSource(customers), modals.RentalSource(rentals)},
	}, store, audit, discard)

	e := echo.New()
	e.Renderer = view.NewRenderer()
	e.HTTPErrorHandler = ErrorHandler(discard)
	e.GET("/feedbacks", h.List)
	e.POST("/feedbacks", h.Create)
	e.POST("/feedbacks/:id", h.Update)
	return &feedbackFixture{e: e, store: store, audit: audit}
}

func (f *feedbackFixture) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func validFeedback() url.Values {
	return url.Values{"customerId": {"2"}, "rentalId": {"3"}, "rating": {"5"}, "comments": {"great car"}}
}

func TestEntityHandler_ListWithoutModal(t *testing.T) {
	f := newFeedbackFixture()
	rec := f.do(http.MethodGet, "/feedbacks", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<td>fine</td>")
	require.NotContains(t, rec.Body.String(), `class="modal-title"`)
}

func TestEntityHandler_ListFailureShowsGenericAlert(t *testing.T) {
	f := newFeedbackFixture()
	f.store.listErr = errors.New("connection refused")

	rec := f.do(http.MethodGet, "/feedbacks", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `role="alert">Error</div>`)
	require.NotContains(t, rec.Body.String(), "connection refused")
}

func TestEntityHandler_EditOpenPrefillsRecord(t *testing.T) {
	f := newFeedbackFixture()
	rec := f.do(http.MethodGet, "/feedbacks?modal=edit&id=9", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Edit Feedback")
	require.Contains(t, body, `action="/feedbacks/9"`)
	require.Contains(t, body, `<option value="2" selected>Ada Lovelace</option>`)
	require.Contains(t, body, `<option value="3" selected>Rental ID: 3</option>`)
	require.Contains(t, body, `name="rating" value="4"`)
	require.Contains(t, body, ">fine</textarea>")
}

func TestEntityHandler_NewOpenStartsAtSentinel(t *testing.T) {
	f := newFeedbackFixture()
	rec := f.do(http.MethodGet, "/feedbacks?modal=new", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Create Feedback")
	require.Contains(t, body, `<option value="0" selected>Select customer...</option>`)
	require.Contains(t, body, `<option value="0" selected>Select rental...</option>`)
}

func TestEntityHandler_EditUnknownIDIsNotFound(t *testing.T) {
	f := newFeedbackFixture()
	rec := f.do(http.MethodGet, "/feedbacks?modal=edit&id=404", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "record not found")
}

func TestEntityHandler_CreateWithSentinelCustomerIsRejected(t *testing.T) {
	f := newFeedbackFixture()
	vals := validFeedback()
	vals.Set("customerId", "0")

	rec := f.do(http.MethodPost, "/feedbacks", vals)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), `<p style="color: red">Select customer</p>`)
	require.Empty(t, f.store.saved)
	require.Empty(t, f.audit.events)
}

func TestEntityHandler_RatingOutOfRangeIsRejected(t *testing.T) {
	f := newFeedbackFixture()
	vals := validFeedback()
	vals.Set("rating", "6")

	rec := f.do(http.MethodPost, "/feedbacks/9", vals)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "Maximum rating is 5")
	require.Empty(t, f.store.saved)
}

func TestEntityHandler_UpdateSuccessRedirectsAndAudits(t *testing.T) {
	f := newFeedbackFixture()
	rec := f.do(http.MethodPost, "/feedbacks/9", validFeedback())

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/feedbacks", rec.Header().Get("Location"))
	require.Equal(t, []model.Feedback{{ID: 9, CustomerID: 2, RentalID: 3, Rating: 5, Comments: "great car"}}, f.store.saved)
	require.Len(t, f.audit.events, 1)
	require.Equal(t, "feedback", f.audit.events[0].Entity)
	require.Equal(t, uint64(9), f.audit.events[0].RecordID)
	require.Equal(t, "update", f.audit.events[0].Action)
	require.Equal(t, "anon", f.audit.events[0].AdminID)
}

func TestEntityHandler_CreateIgnoresPostedID(t *testing.T) {
	f := newFeedbackFixture()
	vals := validFeedback()
	vals.Set("id", "77")

	rec := f.do(http.MethodPost, "/feedbacks", vals)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, f.store.saved, 1)
	require.Zero(t, f.store.saved[0].ID)
	require.Equal(t, "create", f.audit.events[0].Action)
}

func TestEntityHandler_APIFailureKeepsModalOpen(t *testing.T) {
	f := newFeedbackFixture()
	f.store.saveErr = errors.New("api: 500")

	rec := f.do(http.MethodPost, "/feedbacks/9", validFeedback())

	require.Equal(t, http.StatusBadGateway, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, `role="alert">Error</div>`)
	require.Contains(t, body, ">great car</textarea>")
	require.Contains(t, body, `action="/feedbacks/9"`)
	require.Empty(t, f.audit.events)
}

type fakeAuth struct {
	token string
	err   error
}

func (a fakeAuth) Login(context.Context, string, string) (string, error) { return a.token, a.err }

func newAuthApp(auth Authenticator) *echo.Echo {
	h := NewAuthHandler(config.Config{APITimeout: time.Second, CookieSecure: true}, auth, discard)
	e := echo.New()
	e.Renderer = view.NewRenderer()
	e.GET("/login", h.LoginPage)
	e.POST("/login", h.Login)
	e.POST("/logout", h.Logout)
	return e
}

func postLogin(e *echo.Echo, email, password string) *httptest.ResponseRecorder {
	form := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_LoginSetsSessionCookie(t *testing.T) {
	rec := postLogin(newAuthApp(fakeAuth{token: "tok"}), " Admin@Example.com ", "pw")

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/feedbacks", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "access_token", cookies[0].Name)
	require.Equal(t, "tok", cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
	require.True(t, cookies[0].Secure)
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	rec := postLogin(newAuthApp(fakeAuth{err: repository.ErrInvalidCredentials}), "a@b.c", "bad")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid email or password")
	require.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_LoginAPIDownShowsGenericError(t *testing.T) {
	rec := postLogin(newAuthApp(fakeAuth{err: errors.New("dial tcp: refused")}), "a@b.c", "pw")

	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), `role="alert">Error</div>`)
}

func TestAuthHandler_LogoutClearsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	newAuthApp(fakeAuth{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}

func TestHealth(t *testing.T) {
	e := echo.New()
	e.GET("/healthz", Health)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}
