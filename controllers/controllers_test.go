package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritchadh/watchlist/services"
)

type testApp struct {
	router     *gin.Engine
	userStore  *services.FakeUserStore
	movieStore *services.FakeMovieStore
	auth       *services.AuthService
	watchlist  *services.WatchlistService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userStore := services.NewFakeUserStore()
	movieStore := services.NewFakeMovieStore()
	authService := services.NewAuthService(userStore)
	watchlistService := services.NewWatchlistService(movieStore, userStore)

	r := gin.New()
	r.Use(sessions.Sessions("watchlist_session", cookie.NewStore([]byte("test-secret"))))
	r.LoadHTMLGlob("../templates/*.html")
	RegisterRoutes(r, NewAuthController(authService), NewMovieController(watchlistService))

	return &testApp{
		router:     r,
		userStore:  userStore,
		movieStore: movieStore,
		auth:       authService,
		watchlist:  watchlistService,
	}
}

// browser carries the session cookie between requests, like a real client.
type browser struct {
	t       *testing.T
	app     *testApp
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, app *testApp) *browser {
	return &browser{t: t, app: app, cookies: map[string]*http.Cookie{}}
}

func (b *browser) get(target string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, target, nil)
}

func (b *browser) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, target, form)
}

func (b *browser) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	b.app.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		b.cookies[ck.Name] = ck
	}
	return w
}

// login registers and signs in a fresh user, returning their id.
func (b *browser) login(email, password string) string {
	b.t.Helper()

	_, err := b.app.auth.Register(context.Background(), email, password)
	require.NoError(b.t, err)

	w := b.postForm("/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	require.Equal(b.t, http.StatusFound, w.Code)
	require.Equal(b.t, "/", w.Header().Get("Location"))

	user, err := b.app.userStore.FindByEmail(context.Background(), email)
	require.NoError(b.t, err)
	require.NotNil(b.t, user)
	return user.ID
}

func TestLoginRequired(t *testing.T) {
	app := newTestApp(t)
	b := newBrowser(t, app)

	for _, target := range []string{"/", "/add", "/edit/abc", "/movie/abc/rate?rating=3", "/movie/abc/lastWatched"} {
		w := b.get(target)
		assert.Equal(t, http.StatusFound, w.Code, target)
		assert.Equal(t, "/login", w.Header().Get("Location"), target)
	}
}

func TestRegister(t *testing.T) {
	t.Run("valid registration", func(t *testing.T) {
		app := newTestApp(t)
		b := newBrowser(t, app)

		w := b.postForm("/register", url.Values{
			"email":            {"ada@example.com"},
			"password":         {"hunter2"},
			"confirm_password": {"hunter2"},
		})
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))

		user, err := app.userStore.FindByEmail(context.Background(), "ada@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Empty(t, user.Movies)

		// The flash shows on the login page that follows.
		w = b.get("/login")
		assert.Contains(t, w.Body.String(), "User registered successfully")
	})

	t.Run("password mismatch re-renders with error", func(t *testing.T) {
		app := newTestApp(t)
		b := newBrowser(t, app)

		w := b.postForm("/register", url.Values{
			"email":            {"ada@example.com"},
			"password":         {"hunter2"},
			"confirm_password": {"hunter3"},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The passwords do not match")

		user, err := app.userStore.FindByEmail(context.Background(), "ada@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		app := newTestApp(t)
		b := newBrowser(t, app)

		form := url.Values{
			"email":            {"ada@example.com"},
			"password":         {"hunter2"},
			"confirm_password": {"hunter2"},
		}
		w := b.postForm("/register", form)
		require.Equal(t, http.StatusFound, w.Code)

		w = b.postForm("/register", form)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "A user with this email already exists")
	})
}

func TestLogin(t *testing.T) {
	t.Run("correct credentials reach the index", func(t *testing.T) {
		app := newTestApp(t)
		b := newBrowser(t, app)
		b.login("ada@example.com", "hunter2")

		w := b.get("/")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Your watchlist")
		assert.Contains(t, w.Body.String(), "User logged in successfully")
	})

	t.Run("wrong password re-renders the form", func(t *testing.T) {
		app := newTestApp(t)
		b := newBrowser(t, app)
		_, err := app.auth.Register(context.Background(), "ada@example.com", "hunter2")
		require.NoError(t, err)

		w := b.postForm("/login", url.Values{
			"email":    {"ada@example.com"},
			"password": {"wrong"},
		})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Login credentials not correct")

		// Session stays unauthenticated.
		w = b.get("/")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("unknown email redirects back to login", func(t *testing.T) {
		app := newTestApp(t)
		b := newBrowser(t, app)

		w := b.postForm("/login", url.Values{
			"email":    {"nobody@example.com"},
			"password": {"hunter2"},
		})
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))

		w = b.get("/login")
		assert.Contains(t, w.Body.String(), "Login credentials not correct")
	})

	t.Run("authenticated session short-circuits", func(t *testing.T) {
		app := newTestApp(t)
		b := newBrowser(t, app)
		b.login("ada@example.com", "hunter2")

		w := b.get("/login")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}

func TestAddMovie(t *testing.T) {
	addForm := func(year string) url.Values {
		return url.Values{
			"title":    {"Blade Runner"},
			"director": {"Ridley Scott"},
			"year":     {year},
		}
	}

	t.Run("year below 1878 rejected", func(t *testing.T) {
		app := newTestApp(t)
		b := newBrowser(t, app)
		userID := b.login("ada@example.com", "hunter2")

		w := b.postForm("/add", addForm("1877"))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Please enter a year between 1878 and 2023")

		user, err := app.userStore.FindByID(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, user.Movies)
	})

	t.Run("boundary years accepted", func(t *testing.T) {
		app := newTestApp(t)
		b := newBrowser(t, app)
		userID := b.login("ada@example.com", "hunter2")

		for _, year := range []string{"1878", "2023"} {
			w := b.postForm("/add", addForm(year))
			assert.Equal(t, http.StatusFound, w.Code, year)
			assert.Equal(t, "/", w.Header().Get("Location"), year)
		}

		user, err := app.userStore.FindByID(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, user.Movies, 2)

		movies, err := app.watchlist.OwnedMovies(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, movies, 2)

		w := b.get("/")
		assert.Contains(t, w.Body.String(), "Blade Runner")
	})
}

func TestEditMovie(t *testing.T) {
	app := newTestApp(t)
	b := newBrowser(t, app)
	userID := b.login("ada@example.com", "hunter2")

	movie, err := app.watchlist.AddMovie(context.Background(), userID, "Blade Runner", "Ridley Scott", 1982)
	require.NoError(t, err)
	require.NoError(t, app.watchlist.Rate(context.Background(), movie.ID, 5))

	w := b.get("/edit/" + movie.ID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Edit Blade Runner")

	w = b.postForm("/edit/"+movie.ID, url.Values{
		"cast":        {"Harrison Ford\nRutger Hauer"},
		"series":      {""},
		"tags":        {"sci-fi\nnoir"},
		"description": {"A blade runner must pursue four replicants."},
		"video_link":  {"https://example.com/blade-runner"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/movie/"+movie.ID, w.Header().Get("Location"))

	updated, err := app.watchlist.GetMovie(context.Background(), movie.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Harrison Ford", "Rutger Hauer"}, updated.Cast)
	assert.Equal(t, []string{}, updated.Series)
	assert.Equal(t, []string{"sci-fi", "noir"}, updated.Tags)

	// Basic fields and the rating survive the full-document replace.
	assert.Equal(t, "Blade Runner", updated.Title)
	assert.Equal(t, 1982, updated.Year)
	assert.Equal(t, 5, updated.Rating)

	t.Run("missing movie is a 404", func(t *testing.T) {
		w := b.get("/edit/does-not-exist")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestViewMovie(t *testing.T) {
	app := newTestApp(t)
	owner := newBrowser(t, app)
	userID := owner.login("ada@example.com", "hunter2")

	movie, err := app.watchlist.AddMovie(context.Background(), userID, "Heat", "Michael Mann", 1995)
	require.NoError(t, err)

	t.Run("reachable without authentication", func(t *testing.T) {
		anon := newBrowser(t, app)
		w := anon.get("/movie/" + movie.ID)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Heat")
		assert.Contains(t, w.Body.String(), "Michael Mann")
	})

	t.Run("missing movie is a 404", func(t *testing.T) {
		anon := newBrowser(t, app)
		w := anon.get("/movie/does-not-exist")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRateMovie(t *testing.T) {
	app := newTestApp(t)
	b := newBrowser(t, app)
	userID := b.login("ada@example.com", "hunter2")

	movie, err := app.watchlist.AddMovie(context.Background(), userID, "Heat", "Michael Mann", 1995)
	require.NoError(t, err)

	t.Run("valid rating persists and redirects", func(t *testing.T) {
		w := b.get("/movie/" + movie.ID + "/rate?rating=4")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/movie/"+movie.ID, w.Header().Get("Location"))

		got, err := app.watchlist.GetMovie(context.Background(), movie.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, got.Rating)
	})

	t.Run("non-numeric rating is a 400", func(t *testing.T) {
		w := b.get("/movie/" + movie.ID + "/rate?rating=lots")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing rating is a 400", func(t *testing.T) {
		w := b.get("/movie/" + movie.ID + "/rate")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("nonexistent movie is a 404", func(t *testing.T) {
		w := b.get("/movie/does-not-exist/rate?rating=4")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLastWatched(t *testing.T) {
	app := newTestApp(t)
	b := newBrowser(t, app)
	userID := b.login("ada@example.com", "hunter2")

	movie, err := app.watchlist.AddMovie(context.Background(), userID, "Heat", "Michael Mann", 1995)
	require.NoError(t, err)

	w := b.get("/movie/" + movie.ID + "/lastWatched")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/movie/"+movie.ID, w.Header().Get("Location"))

	got, err := app.watchlist.GetMovie(context.Background(), movie.ID)
	require.NoError(t, err)
	assert.False(t, got.LastWatched.IsZero())

	t.Run("nonexistent movie is a 404", func(t *testing.T) {
		w := b.get("/movie/does-not-exist/lastWatched")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestThemeToggle(t *testing.T) {
	t.Run("two toggles restore the light theme", func(t *testing.T) {
		app := newTestApp(t)
		b := newBrowser(t, app)

		w := b.get("/theme-toggle?current_page=%2Flogin")
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))

		w = b.get("/login")
		assert.Contains(t, w.Body.String(), `class="dark"`)

		w = b.get("/theme-toggle?current_page=%2Flogin")
		require.Equal(t, http.StatusFound, w.Code)

		w = b.get("/login")
		assert.Contains(t, w.Body.String(), `class="light"`)
	})

	t.Run("redirect target constrained to relative paths", func(t *testing.T) {
		app := newTestApp(t)
		b := newBrowser(t, app)

		for _, target := range []string{
			"https://evil.example/",
			"//evil.example",
			"",
		} {
			w := b.get("/theme-toggle?current_page=" + url.QueryEscape(target))
			assert.Equal(t, http.StatusFound, w.Code, target)
			assert.Equal(t, "/", w.Header().Get("Location"), target)
		}
	})
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	b := newBrowser(t, app)
	b.login("ada@example.com", "hunter2")

	// Pick the dark theme so we can see it cleared as well.
	w := b.get("/theme-toggle?current_page=%2F")
	require.Equal(t, http.StatusFound, w.Code)

	w = b.get("/logout")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// Session is gone: protected pages redirect and the theme is back to default.
	w = b.get("/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = b.get("/login")
	assert.NotContains(t, w.Body.String(), `class="dark"`)
}
