package server_test

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"event-portal/core/config"
	"event-portal/core/server"
	"event-portal/core/testutil"
	"event-portal/core/utils"
)

func createEvent(t *testing.T, admin *testutil.Client, name string) {
	t.Helper()
	resp := admin.PostForm("/dashboard", url.Values{
		"event_name":        {name},
		"event_date":        {"2026-11-02"},
		"event_venue":       {"Hall A"},
		"event_description": {"An evening of talks"},
	})
	if resp.Status != http.StatusOK {
		t.Fatalf("create event %q: status %d body %q", name, resp.Status, resp.Body)
	}
}

func eventID(t *testing.T, app *testutil.App, name string) int64 {
	t.Helper()
	var id int64
	if err := app.DB.GetContext(context.Background(), &id, "SELECT id FROM events WHERE name = ?", name); err != nil {
		t.Fatalf("lookup event %q: %v", name, err)
	}
	return id
}

func submit(c *testutil.Client, eventID int64, name, email, phone string) *testutil.Response {
	return c.PostForm("/submit", url.Values{
		"event_id": {utils.ToString(eventID)},
		"name":     {name},
		"email":    {email},
		"phone":    {phone},
	})
}

func TestRegistrationScenario(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{})

	admin := app.NewClient(t)
	admin.AdminLogin()
	createEvent(t, admin, "E1")
	e1 := eventID(t, app, "E1")

	user := app.NewClient(t)
	if resp := user.SignUp("ann", "secret"); resp.Status != http.StatusFound || resp.Location != "/login" {
		t.Fatalf("sign up: status %d location %q", resp.Status, resp.Location)
	}
	user.Login("ann", "secret")

	resp := submit(user, e1, "Ann", "a@x.com", "1234567890")
	if resp.Status != http.StatusFound || resp.Location != "/success?name=Ann" {
		t.Fatalf("submit: status %d location %q", resp.Status, resp.Location)
	}
	if n := testutil.Count(t, app.DB, "registrants"); n != 1 {
		t.Fatalf("registrants = %d, want 1", n)
	}
	if app.Notifier.Count() != 1 || app.Notifier.Payloads[0].EventName != "E1" {
		t.Errorf("notification not queued: %+v", app.Notifier.Payloads)
	}

	success := user.Get(resp.Location)
	if !strings.Contains(success.Body, "Thank you, Ann!") {
		t.Errorf("success page missing name: %q", success.Body)
	}

	resp = submit(user, e1, "Ann", "a@x.com", "12345")
	if resp.Status != http.StatusBadRequest {
		t.Fatalf("short phone: status %d, want 400", resp.Status)
	}
	if n := testutil.Count(t, app.DB, "registrants"); n != 1 {
		t.Fatalf("registrants after invalid submit = %d, want 1", n)
	}

	var fullName, phone string
	err := app.DB.GetContext(context.Background(), &fullName, "SELECT full_name FROM users WHERE username = ?", "ann")
	if err != nil || fullName != "Ann" {
		t.Errorf("profile full_name = %q, %v", fullName, err)
	}
	_ = app.DB.GetContext(context.Background(), &phone, "SELECT phone FROM users WHERE username = ?", "ann")
	if phone != "1234567890" {
		t.Errorf("profile phone = %q", phone)
	}

	form := user.Get(fmt.Sprintf("/register?event_id=%d", e1))
	if form.Status != http.StatusOK || !strings.Contains(form.Body, `value="1234567890"`) {
		t.Errorf("form not prefilled from profile: %d %q", form.Status, form.Body)
	}
}

func TestPhoneValidation(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{AllowAnonymous: true})
	admin := app.NewClient(t)
	admin.AdminLogin()
	createEvent(t, admin, "Talk")
	id := eventID(t, app, "Talk")

	visitor := app.NewClient(t)
	for _, phone := range []string{"", "12345", "12345678901", "12345abcde", "１２３４５６７８９０", "123456789 "} {
		resp := submit(visitor, id, "Ann", "a@x.com", phone)
		if resp.Status != http.StatusBadRequest {
			t.Errorf("phone %q: status %d, want 400", phone, resp.Status)
		}
	}
	for _, missing := range []string{"name", "email"} {
		form := url.Values{"event_id": {utils.ToString(id)}, "name": {"Ann"}, "email": {"a@x.com"}, "phone": {"1234567890"}}
		form.Set(missing, "")
		if resp := visitor.PostForm("/submit", form); resp.Status != http.StatusBadRequest {
			t.Errorf("missing %s: status %d, want 400", missing, resp.Status)
		}
	}
	if n := testutil.Count(t, app.DB, "registrants"); n != 0 {
		t.Fatalf("registrants = %d, want 0", n)
	}

	resp := submit(visitor, id, "Ann", "a@x.com", "0123456789")
	if resp.Status != http.StatusFound {
		t.Fatalf("valid anonymous submit: status %d", resp.Status)
	}
	var userID *int64
	if err := app.DB.GetContext(context.Background(), &userID, "SELECT user_id FROM registrants"); err != nil || userID != nil {
		t.Errorf("anonymous registrant user_id = %v, %v", userID, err)
	}
}

func TestSubmitUnknownEvent(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{AllowAnonymous: true})
	visitor := app.NewClient(t)

	if resp := submit(visitor, 999, "Ann", "a@x.com", "1234567890"); resp.Status != http.StatusNotFound {
		t.Errorf("unknown event: status %d, want 404", resp.Status)
	}
	resp := visitor.PostForm("/submit", url.Values{
		"event_id": {"abc"}, "name": {"Ann"}, "email": {"a@x.com"}, "phone": {"1234567890"},
	})
	if resp.Status != http.StatusNotFound {
		t.Errorf("malformed event id: status %d, want 404", resp.Status)
	}
	if resp := visitor.Get("/register?event_id=42"); resp.Status != http.StatusNotFound {
		t.Errorf("register form unknown event: status %d, want 404", resp.Status)
	}
}

func TestSubmitRequiresUser(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{})
	admin := app.NewClient(t)
	admin.AdminLogin()
	createEvent(t, admin, "Talk")
	id := eventID(t, app, "Talk")

	visitor := app.NewClient(t)
	resp := submit(visitor, id, "Ann", "a@x.com", "1234567890")
	if resp.Status != http.StatusFound || resp.Location != "/login" {
		t.Fatalf("anonymous submit: status %d location %q", resp.Status, resp.Location)
	}
	if n := testutil.Count(t, app.DB, "registrants"); n != 0 {
		t.Fatalf("registrants = %d, want 0", n)
	}
	login := visitor.Get("/login")
	if !strings.Contains(login.Body, "Please log in to continue.") {
		t.Errorf("login flash missing: %q", login.Body)
	}
}

func TestAnonymousSubmission(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{AllowAnonymous: true})
	admin := app.NewClient(t)
	admin.AdminLogin()
	createEvent(t, admin, "Open Day")
	id := eventID(t, app, "Open Day")

	visitor := app.NewClient(t)
	for i := 0; i < 2; i++ {
		resp := submit(visitor, id, "Guest", "g@x.com", "5556667777")
		if resp.Status != http.StatusFound || !strings.HasPrefix(resp.Location, "/success") {
			t.Fatalf("anonymous submit %d: status %d location %q", i, resp.Status, resp.Location)
		}
	}
	if n := testutil.Count(t, app.DB, "registrants"); n != 2 {
		t.Fatalf("registrants = %d, want 2", n)
	}
	var withUser int
	if err := app.DB.GetContext(context.Background(), &withUser, "SELECT COUNT(*) FROM registrants WHERE user_id IS NOT NULL"); err != nil {
		t.Fatal(err)
	}
	if withUser != 0 {
		t.Errorf("registrants with user_id = %d, want 0", withUser)
	}
	if app.Notifier.Count() != 2 {
		t.Errorf("notifications = %d, want 2", app.Notifier.Count())
	}
}

func TestDuplicateRegistration(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{})
	admin := app.NewClient(t)
	admin.AdminLogin()
	createEvent(t, admin, "Talk")
	id := eventID(t, app, "Talk")

	user := app.NewClient(t)
	user.SignUp("bob", "pw")
	user.Login("bob", "pw")

	if resp := submit(user, id, "Bob", "b@x.com", "1112223333"); resp.Status != http.StatusFound {
		t.Fatalf("first submit: status %d", resp.Status)
	}
	resp := submit(user, id, "Bob", "b@x.com", "1112223333")
	if resp.Status != http.StatusFound || resp.Location != "/my_events" {
		t.Fatalf("second submit: status %d location %q", resp.Status, resp.Location)
	}
	if n := testutil.Count(t, app.DB, "registrants"); n != 1 {
		t.Fatalf("registrants = %d, want 1", n)
	}

	mine := user.Get("/my_events")
	if !strings.Contains(mine.Body, "already registered") || !strings.Contains(mine.Body, "Talk") {
		t.Errorf("my events page: %q", mine.Body)
	}

	resp = user.PostForm(fmt.Sprintf("/unregister/%d", id), nil)
	if resp.Status != http.StatusFound || resp.Location != "/my_events" {
		t.Fatalf("unregister: status %d location %q", resp.Status, resp.Location)
	}
	if n := testutil.Count(t, app.DB, "registrants"); n != 0 {
		t.Fatalf("registrants after unregister = %d, want 0", n)
	}
	if mine := user.Get("/my_events"); !strings.Contains(mine.Body, "Your registration has been removed.") {
		t.Errorf("removal flash missing: %q", mine.Body)
	}
	resp = user.PostForm(fmt.Sprintf("/unregister/%d", id), nil)
	if resp.Status != http.StatusFound || resp.Location != "/my_events" {
		t.Errorf("repeated unregister: status %d location %q", resp.Status, resp.Location)
	}
	if mine := user.Get("/my_events"); strings.Contains(mine.Body, "Your registration has been removed.") {
		t.Errorf("removal flash shown without a registration: %q", mine.Body)
	}
}

func TestAdminGate(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{})
	admin := app.NewClient(t)
	admin.AdminLogin()
	createEvent(t, admin, "Talk")
	id := eventID(t, app, "Talk")

	user := app.NewClient(t)
	user.SignUp("eve", "pw")
	user.Login("eve", "pw")
	submit(user, id, "Eve", "e@x.com", "1234567890")

	var registrantID int64
	_ = app.DB.GetContext(context.Background(), &registrantID, "SELECT id FROM registrants")

	posts := []struct {
		path string
		form url.Values
	}{
		{"/dashboard", url.Values{"event_name": {"Sneaky"}, "event_date": {"2026-01-01"}}},
		{fmt.Sprintf("/admin/edit_event/%d", id), url.Values{"event_name": {"Renamed"}, "event_date": {"2026-01-01"}}},
		{fmt.Sprintf("/admin/delete_event/%d", id), nil},
		{fmt.Sprintf("/admin/edit_registrant/%d/%d", id, registrantID), url.Values{"name": {"X"}, "email": {"x@x.com"}, "phone": {"0000000000"}}},
		{fmt.Sprintf("/admin/delete_registrant/%d/%d", id, registrantID), nil},
		{fmt.Sprintf("/admin/event/%d/export", id), nil},
	}
	for _, p := range posts {
		resp := user.PostForm(p.path, p.form)
		if resp.Status != http.StatusFound || resp.Location != "/admin" {
			t.Errorf("POST %s: status %d location %q", p.path, resp.Status, resp.Location)
		}
	}
	for _, path := range []string{"/dashboard", fmt.Sprintf("/admin/event/%d", id), fmt.Sprintf("/admin/edit_event/%d", id)} {
		resp := user.Get(path)
		if resp.Status != http.StatusFound || resp.Location != "/admin" {
			t.Errorf("GET %s: status %d location %q", path, resp.Status, resp.Location)
		}
	}

	if n := testutil.Count(t, app.DB, "events"); n != 1 {
		t.Errorf("events = %d, want 1", n)
	}
	if n := testutil.Count(t, app.DB, "registrants"); n != 1 {
		t.Errorf("registrants = %d, want 1", n)
	}
	var name string
	_ = app.DB.GetContext(context.Background(), &name, "SELECT name FROM events WHERE id = ?", id)
	if name != "Talk" {
		t.Errorf("event renamed to %q without admin", name)
	}

	if resp := user.PostForm("/admin", url.Values{"password": {"wrong"}}); resp.Status != http.StatusUnauthorized {
		t.Errorf("wrong admin password: status %d, want 401", resp.Status)
	}
}

func TestCascadeDelete(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{AllowAnonymous: true})
	admin := app.NewClient(t)
	admin.AdminLogin()
	createEvent(t, admin, "Doomed")
	createEvent(t, admin, "Kept")
	doomed, kept := eventID(t, app, "Doomed"), eventID(t, app, "Kept")

	visitor := app.NewClient(t)
	submit(visitor, doomed, "A", "a@x.com", "1111111111")
	submit(visitor, doomed, "B", "b@x.com", "2222222222")
	submit(visitor, kept, "C", "c@x.com", "3333333333")

	resp := admin.PostForm(fmt.Sprintf("/admin/delete_event/%d", doomed), nil)
	if resp.Status != http.StatusFound || resp.Location != "/dashboard" {
		t.Fatalf("delete: status %d location %q", resp.Status, resp.Location)
	}

	var left int
	_ = app.DB.GetContext(context.Background(), &left, "SELECT COUNT(1) FROM registrants WHERE event_id = ?", doomed)
	if left != 0 {
		t.Errorf("registrants of deleted event = %d, want 0", left)
	}
	if n := testutil.Count(t, app.DB, "registrants"); n != 1 {
		t.Errorf("registrants = %d, want 1", n)
	}
	if resp := admin.Get(fmt.Sprintf("/admin/event/%d", doomed)); resp.Status != http.StatusNotFound {
		t.Errorf("deleted event detail: status %d, want 404", resp.Status)
	}
	if resp := admin.PostForm(fmt.Sprintf("/admin/delete_event/%d", doomed), nil); resp.Status != http.StatusNotFound {
		t.Errorf("second delete: status %d, want 404", resp.Status)
	}
}

func TestUsernameUniqueness(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{})
	c := app.NewClient(t)

	if resp := c.SignUp("dup", "pw"); resp.Status != http.StatusFound {
		t.Fatalf("first sign up: status %d", resp.Status)
	}
	resp := c.SignUp("dup", "other")
	if resp.Status != http.StatusOK || !strings.Contains(resp.Body, "Username already exists.") {
		t.Fatalf("second sign up: status %d body %q", resp.Status, resp.Body)
	}
	if n := testutil.Count(t, app.DB, "users"); n != 1 {
		t.Fatalf("users = %d, want 1", n)
	}

	resp = c.PostForm("/register_user", url.Values{"username": {"x"}, "email": {"x@x.com"}, "password": {"pw"}, "phone": {"123"}})
	if resp.Status != http.StatusBadRequest {
		t.Errorf("bad optional phone: status %d, want 400", resp.Status)
	}
}

func TestSignUpRejectsOverlongPassword(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{})
	visitor := app.NewClient(t)

	resp := visitor.SignUp("longpw", strings.Repeat("a", 80))
	if resp.Status != http.StatusBadRequest {
		t.Fatalf("sign up: status %d body %q", resp.Status, resp.Body)
	}
	if !strings.Contains(resp.Body, "Create an account") {
		t.Errorf("form not re-rendered: %q", resp.Body)
	}
	if n := testutil.Count(t, app.DB, "users"); n != 0 {
		t.Errorf("users = %d, want 0", n)
	}
}

func TestLoginMessages(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{})
	c := app.NewClient(t)
	c.SignUp("carol", "right")

	resp := c.PostForm("/login", url.Values{"username": {"nobody"}, "password": {"x"}})
	if resp.Status != http.StatusUnauthorized || !strings.Contains(resp.Body, "User not found.") {
		t.Errorf("unknown user: status %d body %q", resp.Status, resp.Body)
	}
	resp = c.PostForm("/login", url.Values{"username": {"carol"}, "password": {"wrong"}})
	if resp.Status != http.StatusUnauthorized || !strings.Contains(resp.Body, "Incorrect password.") {
		t.Errorf("wrong password: status %d body %q", resp.Status, resp.Body)
	}

	var hash string
	_ = app.DB.GetContext(context.Background(), &hash, "SELECT password_hash FROM users WHERE username = ?", "carol")
	if hash == "right" || !utils.ComparePassword(hash, "right") {
		t.Errorf("password not stored as bcrypt hash: %q", hash)
	}
}

func TestLogoutAndAdminLogout(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{})
	c := app.NewClient(t)
	c.SignUp("dan", "pw")
	c.Login("dan", "pw")
	c.AdminLogin()

	resp := c.Get("/admin/logout")
	if resp.Status != http.StatusFound || resp.Location != "/admin" {
		t.Fatalf("admin logout: status %d location %q", resp.Status, resp.Location)
	}
	if resp := c.Get("/dashboard"); resp.Status != http.StatusFound {
		t.Errorf("dashboard after admin logout: status %d", resp.Status)
	}
	if resp := c.Get("/my_events"); resp.Status != http.StatusOK {
		t.Errorf("user identity lost on admin logout: status %d", resp.Status)
	}

	resp = c.Get("/logout")
	if resp.Status != http.StatusFound || resp.Location != "/" {
		t.Fatalf("logout: status %d location %q", resp.Status, resp.Location)
	}
	if resp := c.Get("/my_events"); resp.Status != http.StatusFound || resp.Location != "/login" {
		t.Errorf("my events after logout: status %d location %q", resp.Status, resp.Location)
	}
}

func TestRegistrantEditAndDeleteByStableID(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{AllowAnonymous: true})
	admin := app.NewClient(t)
	admin.AdminLogin()
	createEvent(t, admin, "One")
	createEvent(t, admin, "Two")
	one, two := eventID(t, app, "One"), eventID(t, app, "Two")

	visitor := app.NewClient(t)
	submit(visitor, one, "First", "f@x.com", "1111111111")
	submit(visitor, one, "Second", "s@x.com", "2222222222")

	var ids []int64
	_ = app.DB.SelectContext(context.Background(), &ids, "SELECT id FROM registrants ORDER BY id")
	second := ids[1]

	// deleting the first row must not shift which row the second id addresses
	resp := admin.PostForm(fmt.Sprintf("/admin/delete_registrant/%d/%d", one, ids[0]), nil)
	if resp.Status != http.StatusFound || resp.Location != fmt.Sprintf("/admin/event/%d", one) {
		t.Fatalf("delete registrant: status %d location %q", resp.Status, resp.Location)
	}

	edit := url.Values{"name": {"Second Edited"}, "email": {"s@x.com"}, "phone": {"9999999999"}}
	if resp := admin.PostForm(fmt.Sprintf("/admin/edit_registrant/%d/%d", two, second), edit); resp.Status != http.StatusNotFound {
		t.Errorf("edit via wrong event: status %d, want 404", resp.Status)
	}
	if resp := admin.PostForm(fmt.Sprintf("/admin/delete_registrant/%d/%d", two, second), nil); resp.Status != http.StatusNotFound {
		t.Errorf("delete via wrong event: status %d, want 404", resp.Status)
	}

	bad := url.Values{"name": {"Second"}, "email": {"s@x.com"}, "phone": {"99"}}
	if resp := admin.PostForm(fmt.Sprintf("/admin/edit_registrant/%d/%d", one, second), bad); resp.Status != http.StatusBadRequest {
		t.Errorf("edit with bad phone: status %d, want 400", resp.Status)
	}

	resp = admin.PostForm(fmt.Sprintf("/admin/edit_registrant/%d/%d", one, second), edit)
	if resp.Status != http.StatusFound || resp.Location != fmt.Sprintf("/admin/event/%d", one) {
		t.Fatalf("edit registrant: status %d location %q", resp.Status, resp.Location)
	}
	var name string
	_ = app.DB.GetContext(context.Background(), &name, "SELECT name FROM registrants WHERE id = ?", second)
	if name != "Second Edited" {
		t.Errorf("registrant name = %q", name)
	}

	detail := admin.Get(fmt.Sprintf("/admin/event/%d", one))
	if !strings.Contains(detail.Body, "Second Edited") || strings.Contains(detail.Body, "First") {
		t.Errorf("event detail: %q", detail.Body)
	}
}

func TestEditEvent(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{})
	admin := app.NewClient(t)
	admin.AdminLogin()
	createEvent(t, admin, "Draft")
	id := eventID(t, app, "Draft")

	if resp := admin.Get(fmt.Sprintf("/admin/edit_event/%d", id)); resp.Status != http.StatusOK || !strings.Contains(resp.Body, `value="Draft"`) {
		t.Fatalf("edit form: status %d", resp.Status)
	}
	if resp := admin.PostForm(fmt.Sprintf("/admin/edit_event/%d", id), url.Values{"event_name": {""}, "event_date": {"2026-01-01"}}); resp.Status != http.StatusBadRequest {
		t.Errorf("blank name: status %d, want 400", resp.Status)
	}
	resp := admin.PostForm(fmt.Sprintf("/admin/edit_event/%d", id), url.Values{
		"event_name": {"Final"}, "event_date": {"2026-12-24"}, "event_venue": {"Main"},
	})
	if resp.Status != http.StatusFound || resp.Location != "/dashboard" {
		t.Fatalf("update: status %d location %q", resp.Status, resp.Location)
	}
	if resp := admin.PostForm("/admin/edit_event/999", url.Values{"event_name": {"X"}, "event_date": {"2026-01-01"}}); resp.Status != http.StatusNotFound {
		t.Errorf("unknown event: status %d, want 404", resp.Status)
	}

	index := app.NewClient(t).Get("/")
	if !strings.Contains(index.Body, "Final") || !strings.Contains(index.Body, "2026-12-24") {
		t.Errorf("index does not list updated event: %q", index.Body)
	}
}

func TestDashboardRequiresNameAndDate(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{})
	admin := app.NewClient(t)
	admin.AdminLogin()

	if resp := admin.PostForm("/dashboard", url.Values{"event_name": {"No date"}}); resp.Status != http.StatusBadRequest {
		t.Errorf("missing date: status %d, want 400", resp.Status)
	}
	if n := testutil.Count(t, app.DB, "events"); n != 0 {
		t.Errorf("events = %d, want 0", n)
	}
}

func TestSuccessDefaultsToVisitor(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{})
	resp := app.NewClient(t).Get("/success")
	if resp.Status != http.StatusOK || !strings.Contains(resp.Body, "Thank you, Visitor!") {
		t.Errorf("success: status %d body %q", resp.Status, resp.Body)
	}
}

func TestExportWithoutStorageDownloadsCSV(t *testing.T) {
	app := testutil.NewApp(t, testutil.Options{AllowAnonymous: true})
	admin := app.NewClient(t)
	admin.AdminLogin()
	createEvent(t, admin, "Go Meetup")
	id := eventID(t, app, "Go Meetup")

	visitor := app.NewClient(t)
	submit(visitor, id, "Ann", "a@x.com", "1234567890")
	submit(visitor, id, "Ben", "b@x.com", "0987654321")

	resp := admin.PostForm(fmt.Sprintf("/admin/event/%d/export", id), nil)
	if resp.Status != http.StatusOK {
		t.Fatalf("export: status %d", resp.Status)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "go-meetup-") {
		t.Errorf("content disposition = %q", cd)
	}
	lines := strings.Split(strings.TrimSpace(resp.Body), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "id,name,email,phone") {
		t.Fatalf("csv = %q", resp.Body)
	}
}

type memoryUploader struct {
	keys []string
}

func (u *memoryUploader) Upload(_ context.Context, key, _ string, _ []byte) (string, error) {
	u.keys = append(u.keys, key)
	return "s3://bucket/" + key, nil
}

func TestExportWithStorageUploads(t *testing.T) {
	uploader := &memoryUploader{}
	app := testutil.NewApp(t, testutil.Options{Uploader: uploader})
	admin := app.NewClient(t)
	admin.AdminLogin()
	createEvent(t, admin, "Go Meetup")
	id := eventID(t, app, "Go Meetup")

	resp := admin.PostForm(fmt.Sprintf("/admin/event/%d/export", id), nil)
	if resp.Status != http.StatusFound || resp.Location != fmt.Sprintf("/admin/event/%d", id) {
		t.Fatalf("export: status %d location %q", resp.Status, resp.Location)
	}
	if len(uploader.keys) != 1 || !strings.HasPrefix(uploader.keys[0], "exports/go-meetup-") {
		t.Fatalf("uploaded keys = %v", uploader.keys)
	}
	detail := admin.Get(resp.Location)
	if !strings.Contains(detail.Body, "s3://bucket/exports/go-meetup-") {
		t.Errorf("upload flash missing: %q", detail.Body)
	}
}

func TestAdminPasswordHash(t *testing.T) {
	hash, err := server.AdminPasswordHash(config.AdminConfig{Password: "plain"})
	if err != nil {
		t.Fatalf("AdminPasswordHash: %v", err)
	}
	if !utils.ComparePassword(hash, "plain") {
		t.Error("hash does not match the plaintext password")
	}

	given, _ := server.AdminPasswordHash(config.AdminConfig{Password: "ignored", PasswordHash: hash})
	if given != hash {
		t.Error("configured hash not used as is")
	}
}
