package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lumenplay/levelkeeper/internal/config"
	"github.com/lumenplay/levelkeeper/internal/logger"
	"github.com/lumenplay/levelkeeper/internal/mock"
	"github.com/lumenplay/levelkeeper/internal/service"
	"github.com/lumenplay/levelkeeper/models"
)

// testMocks bundles the repository mocks behind a fully wired Handler.
type testMocks struct {
	users   *mock.MockUserRepository
	players *mock.MockPlayerStateRepository
	catalog *mock.MockContentCatalog
	auth    service.AuthService
}

// newTestRouter builds a router over real services backed by gomock
// repositories, so handler tests exercise the full service stack.
func newTestRouter(t *testing.T, ctrl *gomock.Controller) (*chi.Mux, *testMocks) {
	t.Helper()

	m := &testMocks{
		users:   mock.NewMockUserRepository(ctrl),
		players: mock.NewMockPlayerStateRepository(ctrl),
		catalog: mock.NewMockContentCatalog(ctrl),
	}

	log := logger.Nop()
	cfg := config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "levelkeeper-test",
		TokenDuration: time.Hour,
	}
	m.auth = service.NewAuthService(m.users, cfg, log)

	svcs := &service.Services{
		AuthService:    m.auth,
		ContentService: service.NewContentService(m.catalog, log),
		PlayerService:  service.NewPlayerService(m.players, log),
	}

	return NewHandler(svcs, log).Init(), m
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, logger.Nop())

	assert.Equal(t, svc, h.services)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	// auth
	{http.MethodPost, "/api/auth/register"},
	{http.MethodPost, "/api/auth/login"},
	// content — public
	{http.MethodGet, "/api/content/manifest"},
	{http.MethodGet, "/api/content/entities"},
	{http.MethodGet, "/api/content/entities/some-id"},
	// player — auth middleware will return 401, not 404/405
	{http.MethodGet, "/api/player/state"},
	{http.MethodPost, "/api/player/mutations"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, m := newTestRouter(t, ctrl)

	// public content routes reach the catalog; any answer proves routing
	m.catalog.EXPECT().Manifest(gomock.Any()).Return(models.Manifest{}, nil).AnyTimes()
	m.catalog.EXPECT().EntityMetas(gomock.Any()).Return(nil, nil).AnyTimes()
	m.catalog.EXPECT().EntityContent(gomock.Any(), gomock.Any()).Return(models.EntityContent{}, nil).AnyTimes()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (not found) or
			// 405 (method not allowed). Auth-protected routes return 401 —
			// that still proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	// only GET is registered for the manifest
	req := httptest.NewRequest(http.MethodPost, "/api/content/manifest", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
