// Package testutil builds sqlite-backed applications for tests.
package testutil

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"event-portal/core/cache"
	"event-portal/core/config"
	"event-portal/core/constants"
	"event-portal/core/database"
	"event-portal/core/logger"
	"event-portal/core/server"
	"event-portal/core/storage"
	"event-portal/core/utils"
	"event-portal/modules/notification/dto"
)

const (
	SessionSecret = "test-session-secret"
	AdminPassword = "admin-pass"
)

// NewDB opens a private in-memory sqlite database with all migrations applied.
func NewDB(t *testing.T) *database.Database {
	t.Helper()
	logger.SetOutput(io.Discard)

	db, err := database.Open(constants.DriverSQLite, "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// RecordingNotifier keeps every notification instead of queueing it.
type RecordingNotifier struct {
	mu       sync.Mutex
	Payloads []dto.RegistrationConfirmation
	Err      error
}

func (n *RecordingNotifier) NotifyRegistration(_ context.Context, payload *dto.RegistrationConfirmation) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Payloads = append(n.Payloads, *payload)
	return n.Err
}

func (n *RecordingNotifier) Close() error { return nil }

func (n *RecordingNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Payloads)
}

// Options tune the test application.
type Options struct {
	AllowAnonymous bool
	Uploader       storage.Uploader
}

// App is a running test server over a fresh database.
type App struct {
	Server   *httptest.Server
	DB       *database.Database
	Notifier *RecordingNotifier
	Cache    cache.Cache
}

var (
	adminHashOnce sync.Once
	adminHash     string
)

func adminPasswordHash(t *testing.T) string {
	adminHashOnce.Do(func() {
		h, err := utils.HashPassword(AdminPassword)
		if err != nil {
			t.Fatalf("hash admin password: %v", err)
		}
		adminHash = h
	})
	return adminHash
}

func NewApp(t *testing.T, opts Options) *App {
	t.Helper()

	db := NewDB(t)
	notifier := &RecordingNotifier{}
	memCache := cache.NewMemoryCache()

	cfg := &config.Config{
		App: config.AppConfig{Env: "test"},
		Session: config.SessionConfig{
			Secret: SessionSecret,
			TTL:    time.Hour,
		},
		Registration: config.RegistrationConfig{AllowAnonymous: opts.AllowAnonymous},
	}

	e, err := server.NewApp(server.Deps{
		Config:            cfg,
		DB:                db,
		Cache:             memCache,
		Notifier:          notifier,
		Uploader:          opts.Uploader,
		AdminPasswordHash: adminPasswordHash(t),
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	return &App{Server: srv, DB: db, Notifier: notifier, Cache: memCache}
}

// Client is a browser-like client: it keeps cookies and does not follow
// redirects, so tests can assert on them.
type Client struct {
	t    *testing.T
	base string
	http *http.Client
}

func (a *App) NewClient(t *testing.T) *Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &Client{
		t:    t,
		base: a.Server.URL,
		http: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Response is a fully read HTTP response.
type Response struct {
	Status   int
	Location string
	Body     string
	Header   http.Header
}

func (c *Client) Get(path string) *Response {
	c.t.Helper()
	resp, err := c.http.Get(c.base + path)
	if err != nil {
		c.t.Fatalf("GET %s: %v", path, err)
	}
	return read(c.t, resp)
}

func (c *Client) PostForm(path string, form url.Values) *Response {
	c.t.Helper()
	resp, err := c.http.Post(c.base+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		c.t.Fatalf("POST %s: %v", path, err)
	}
	return read(c.t, resp)
}

func read(t *testing.T, resp *http.Response) *Response {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return &Response{
		Status:   resp.StatusCode,
		Location: resp.Header.Get("Location"),
		Body:     string(body),
		Header:   resp.Header,
	}
}

// Count returns the number of rows in table.
func Count(t *testing.T, db database.IDatabase, table string) int {
	t.Helper()
	var n int
	if err := db.GetContext(context.Background(), &n, "SELECT COUNT(1) FROM "+table); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

// SignUp creates an account through the public form.
func (c *Client) SignUp(username, password string) *Response {
	c.t.Helper()
	return c.PostForm("/register_user", url.Values{
		"username": {username},
		"email":    {username + "@example.com"},
		"password": {password},
	})
}

// Login signs an existing account in and fails the test otherwise.
func (c *Client) Login(username, password string) {
	c.t.Helper()
	resp := c.PostForm("/login", url.Values{"username": {username}, "password": {password}})
	if resp.Status != http.StatusFound || resp.Location != "/" {
		c.t.Fatalf("login %s: status %d location %q", username, resp.Status, resp.Location)
	}
}

// AdminLogin grants the admin flag and fails the test otherwise.
func (c *Client) AdminLogin() {
	c.t.Helper()
	resp := c.PostForm("/admin", url.Values{"password": {AdminPassword}})
	if resp.Status != http.StatusFound || resp.Location != "/dashboard" {
		c.t.Fatalf("admin login: status %d location %q", resp.Status, resp.Location)
	}
}
