package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ghuser/todolist/pkg/app"
	"github.com/ghuser/todolist/pkg/database/databasetest"
	"github.com/ghuser/todolist/pkg/httpx"
	"github.com/ghuser/todolist/pkg/logger"
	"github.com/ghuser/todolist/services/todo/application/api"
	"github.com/ghuser/todolist/services/todo/application/handlers"
)

func passthrough(next http.Handler) http.Handler { return next }

func newServer(t *testing.T, legacy bool) http.Handler {
	t.Helper()
	log := logger.Discard()
	r := httpx.NewRouter(
		httpx.ServerConfig{CORSAllowedOrigins: "*", RateLimitPerMinute: 10000},
		logger.Middleware(log),
		logger.Recovery(log),
		passthrough,
		passthrough,
	)
	svcs := api.TodoRoutes(r, &app.Application{
		Db:                   databasetest.NewSQLite(t),
		Logger:               log,
		LegacyErrorResponses: legacy,
	})
	t.Cleanup(func() { _ = svcs.Close() })
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return v
}

func create(t *testing.T, h http.Handler, name, description string) handlers.TodoResponse {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"name": name, "description": description})
	rr := do(t, h, http.MethodPost, "/todolist", string(body))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	return decode[handlers.TodoResponse](t, rr)
}

func list(t *testing.T, h http.Handler) []handlers.TodoResponse {
	t.Helper()
	rr := do(t, h, http.MethodGet, "/todolist", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rr.Code)
	}
	return decode[[]handlers.TodoResponse](t, rr)
}

func get(t *testing.T, h http.Handler, id int64) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, h, http.MethodGet, "/todolist/"+itoa(id), "")
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func nameOf(r handlers.TodoResponse) string {
	if r.Name == nil {
		return "<null>"
	}
	return *r.Name
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) handlers.InvalidRequestResponse {
	t.Helper()
	return decode[handlers.InvalidRequestResponse](t, rr)
}

func TestCreate_BuyMilk(t *testing.T) {
	h := newServer(t, false)
	before := time.Now().UTC().Add(-time.Second)

	got := create(t, h, "Buy milk", "2% from store")

	if got.ID != 1 {
		t.Errorf("expected id 1 on an empty store, got %d", got.ID)
	}
	if nameOf(got) != "Buy milk" || got.Description != "2% from store" {
		t.Errorf("unexpected text fields: %+v", got)
	}
	if got.Completed {
		t.Error("new todo must not be completed")
	}
	if got.DateCreated.Before(before) || got.DateCreated.After(time.Now().UTC().Add(time.Second)) {
		t.Errorf("date_created %v is not the creation time", got.DateCreated)
	}

	rr := get(t, h, got.ID)
	if rr.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rr.Code)
	}
	stored := decode[handlers.TodoResponse](t, rr)
	if stored.ID != got.ID || nameOf(stored) != nameOf(got) || stored.Description != got.Description || stored.Completed {
		t.Errorf("stored %+v does not match created %+v", stored, got)
	}
	if !stored.DateCreated.Equal(got.DateCreated) {
		t.Errorf("date_created changed between create (%v) and get (%v)", got.DateCreated, stored.DateCreated)
	}
}

func TestCreate_InvalidBodies(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing description", `{"name":"Buy milk"}`, "description"},
		{"missing name", `{"description":"2% from store"}`, "name"},
		{"null description", `{"name":"Buy milk","description":null}`, "description"},
		{"name too long", `{"name":"` + strings.Repeat("n", 201) + `","description":"d"}`, "name"},
		{"description too long", `{"name":"n","description":"` + strings.Repeat("d", 301) + `"}`, "description"},
		{"malformed json", `{"name":`, ""},
		{"wrong type", `{"name":1,"description":"d"}`, ""},
		{"trailing data", `{"name":"a","description":"b"} trailing`, ""},
		{"second object", `{"name":"a","description":"b"}{"name":"c","description":"d"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newServer(t, false)
			create(t, h, "existing", "existing")

			rr := do(t, h, http.MethodPost, "/todolist", tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
			}
			body := errorBody(t, rr)
			if body.Error != "Invalid request, please try again." {
				t.Errorf("unexpected error message %q", body.Error)
			}
			if tt.wantField != "" {
				if _, ok := body.Fields[tt.wantField]; !ok {
					t.Errorf("expected field error for %q, got %v", tt.wantField, body.Fields)
				}
			}

			if n := len(list(t, h)); n != 1 {
				t.Errorf("rejected create changed the item count to %d", n)
			}
		})
	}
}

func TestCreate_Boundaries(t *testing.T) {
	h := newServer(t, false)

	got := create(t, h, strings.Repeat("é", 200), strings.Repeat("d", 300))
	if len([]rune(nameOf(got))) != 200 || len(got.Description) != 300 {
		t.Errorf("boundary lengths not preserved: name %d runes, description %d", len([]rune(nameOf(got))), len(got.Description))
	}

	empty := create(t, h, "", "")
	if empty.Name == nil || *empty.Name != "" || empty.Description != "" {
		t.Errorf("expected empty strings to round-trip, got %+v", empty)
	}
}

func TestCreate_NullName(t *testing.T) {
	h := newServer(t, false)

	rr := do(t, h, http.MethodPost, "/todolist", `{"name":null,"description":"nameless"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	created := decode[handlers.TodoResponse](t, rr)
	if created.Name != nil {
		t.Fatalf("expected null name, got %q", *created.Name)
	}

	rr = get(t, h, created.ID)
	if !strings.Contains(rr.Body.String(), `"name":null`) {
		t.Errorf("expected a JSON null name, got %s", rr.Body.String())
	}

	rr = do(t, h, http.MethodPut, "/todolist/"+itoa(created.ID), `{"name":"named","description":"nameless","completed":false}`)
	if rr.Code != http.StatusOK || nameOf(decode[handlers.TodoResponse](t, rr)) != "named" {
		t.Fatalf("update from null name failed: %d", rr.Code)
	}
	rr = do(t, h, http.MethodPut, "/todolist/"+itoa(created.ID), `{"name":null,"description":"nameless","completed":false}`)
	if rr.Code != http.StatusOK || decode[handlers.TodoResponse](t, rr).Name != nil {
		t.Fatalf("update back to null name failed: %d", rr.Code)
	}
}

func dateCreatedOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	s, ok := body["date_created"].(string)
	if !ok {
		t.Fatalf("date_created missing from %s", rr.Body.String())
	}
	return s
}

func TestDateCreatedIsIdenticalAcrossResponses(t *testing.T) {
	h := newServer(t, false)

	rr := do(t, h, http.MethodPost, "/todolist", `{"name":"Buy milk","description":"2% from store"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", rr.Code)
	}
	created := dateCreatedOf(t, rr)

	if got := dateCreatedOf(t, get(t, h, 1)); got != created {
		t.Errorf("get date_created %q differs from create %q", got, created)
	}
	rr = do(t, h, http.MethodPut, "/todolist/1", `{"name":"Buy milk","description":"2% from store","completed":true}`)
	if got := dateCreatedOf(t, rr); got != created {
		t.Errorf("update date_created %q differs from create %q", got, created)
	}
}

func TestList(t *testing.T) {
	h := newServer(t, false)

	rr := do(t, h, http.MethodGet, "/todolist", "")
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected empty JSON array, got %s", rr.Body.String())
	}

	for _, name := range []string{"first", "second", "third"} {
		create(t, h, name, "d")
	}

	items := list(t, h)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].ID >= items[i].ID {
			t.Fatalf("items not ordered by id: %d before %d", items[i-1].ID, items[i].ID)
		}
	}
	if nameOf(items[0]) != "first" || nameOf(items[2]) != "third" {
		t.Errorf("unexpected order: %+v", items)
	}
}

func TestGet_NotFound(t *testing.T) {
	h := newServer(t, false)
	create(t, h, "only", "one")

	for _, path := range []string{"/todolist/999", "/todolist/abc", "/todolist/-1", "/todolist/99999999999999999999"} {
		t.Run(path, func(t *testing.T) {
			rr := do(t, h, http.MethodGet, path, "")
			if rr.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", rr.Code)
			}
			if msg := errorBody(t, rr).Error; msg != "Not found" {
				t.Errorf("expected Not found, got %q", msg)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	h := newServer(t, false)
	created := create(t, h, "Buy milk", "2% from store")

	rr := do(t, h, http.MethodPut, "/todolist/"+itoa(created.ID),
		`{"name":"Buy oat milk","description":"barista edition","completed":true}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	updated := decode[handlers.TodoResponse](t, rr)

	if updated.ID != created.ID {
		t.Errorf("id changed from %d to %d", created.ID, updated.ID)
	}
	if nameOf(updated) != "Buy oat milk" || updated.Description != "barista edition" || !updated.Completed {
		t.Errorf("unexpected updated item: %+v", updated)
	}
	if !updated.DateCreated.Equal(created.DateCreated) {
		t.Errorf("date_created changed from %v to %v", created.DateCreated, updated.DateCreated)
	}

	stored := decode[handlers.TodoResponse](t, get(t, h, created.ID))
	if nameOf(stored) != nameOf(updated) || stored.Completed != updated.Completed {
		t.Errorf("update not persisted: %+v", stored)
	}
}

func TestUpdate_CompleteOnly(t *testing.T) {
	h := newServer(t, false)
	created := create(t, h, "Buy milk", "2% from store")

	rr := do(t, h, http.MethodPut, "/todolist/"+itoa(created.ID),
		`{"name":"Buy milk","description":"2% from store","completed":true}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	stored := decode[handlers.TodoResponse](t, get(t, h, created.ID))
	if nameOf(stored) != nameOf(created) || stored.Description != created.Description {
		t.Errorf("text fields changed: %+v", stored)
	}
	if !stored.Completed {
		t.Error("expected completed=true")
	}
	if !stored.DateCreated.Equal(created.DateCreated) {
		t.Errorf("date_created changed from %v to %v", created.DateCreated, stored.DateCreated)
	}
}

func TestUpdate_CanUncomplete(t *testing.T) {
	h := newServer(t, false)
	created := create(t, h, "n", "d")
	path := "/todolist/" + itoa(created.ID)

	do(t, h, http.MethodPut, path, `{"name":"n","description":"d","completed":true}`)
	rr := do(t, h, http.MethodPut, path, `{"name":"n","description":"d","completed":false}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if decode[handlers.TodoResponse](t, rr).Completed {
		t.Error("expected completed=false after second update")
	}
}

func TestUpdate_InvalidBodyLeavesItemUnchanged(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing completed", `{"name":"x","description":"y"}`, "completed"},
		{"missing name", `{"description":"y","completed":true}`, "name"},
		{"missing description", `{"name":"x","completed":true}`, "description"},
		{"description too long", `{"name":"x","description":"` + strings.Repeat("d", 301) + `","completed":true}`, "description"},
		{"completed not bool", `{"name":"x","description":"y","completed":"yes"}`, ""},
		{"trailing data", `{"name":"x","description":"y","completed":true} trailing`, ""},
		{"second object", `{"name":"x","description":"y","completed":true}{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newServer(t, false)
			created := create(t, h, "Buy milk", "2% from store")

			rr := do(t, h, http.MethodPut, "/todolist/"+itoa(created.ID), tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
			}
			if tt.wantField != "" {
				if _, ok := errorBody(t, rr).Fields[tt.wantField]; !ok {
					t.Errorf("expected field error for %q", tt.wantField)
				}
			}

			stored := decode[handlers.TodoResponse](t, get(t, h, created.ID))
			if nameOf(stored) != "Buy milk" || stored.Description != "2% from store" || stored.Completed {
				t.Errorf("rejected update modified the item: %+v", stored)
			}
		})
	}
}

func TestUpdate_Missing(t *testing.T) {
	h := newServer(t, false)

	rr := do(t, h, http.MethodPut, "/todolist/42", `{"name":"x","description":"y","completed":true}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("valid body on missing id: expected 404, got %d", rr.Code)
	}

	// The body is checked before the datastore is consulted.
	rr = do(t, h, http.MethodPut, "/todolist/42", `{"name":"x"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("invalid body on missing id: expected 400, got %d", rr.Code)
	}
}

func TestDelete(t *testing.T) {
	h := newServer(t, false)
	keep := create(t, h, "keep", "k")
	gone := create(t, h, "gone", "g")

	rr := do(t, h, http.MethodDelete, "/todolist/"+itoa(gone.ID), "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if msg := decode[handlers.DeleteTodoResponse](t, rr).Success; msg != "Todo deleted." {
		t.Errorf("unexpected success message %q", msg)
	}

	items := list(t, h)
	if len(items) != 1 || items[0].ID != keep.ID {
		t.Fatalf("expected only item %d to remain, got %+v", keep.ID, items)
	}
	if rr := get(t, h, gone.ID); rr.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", rr.Code)
	}
	if rr := do(t, h, http.MethodDelete, "/todolist/"+itoa(gone.ID), ""); rr.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", rr.Code)
	}

	next := create(t, h, "next", "n")
	if next.ID == gone.ID {
		t.Errorf("deleted id %d was reused", gone.ID)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newServer(t, false)
	create(t, h, "n", "d")

	for _, tc := range []struct{ method, path string }{
		{http.MethodPatch, "/todolist"},
		{http.MethodDelete, "/todolist"},
		{http.MethodPost, "/todolist/1"},
	} {
		rr := do(t, h, tc.method, tc.path, "")
		if rr.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s: expected 405, got %d", tc.method, tc.path, rr.Code)
			continue
		}
		if msg := errorBody(t, rr).Error; msg != "Method not allowed" {
			t.Errorf("%s %s: unexpected message %q", tc.method, tc.path, msg)
		}
	}
}

func TestLegacyErrorResponses(t *testing.T) {
	h := newServer(t, true)
	created := create(t, h, "Buy milk", "2% from store")

	rr := do(t, h, http.MethodPost, "/todolist", `{"name":"no description"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("legacy create: expected 200, got %d", rr.Code)
	}
	if msg := decode[handlers.LegacyErrorResponse](t, rr).Error; msg != "Invalid Request, please try again." {
		t.Errorf("legacy create: unexpected message %q", msg)
	}

	rr = do(t, h, http.MethodPut, "/todolist/"+itoa(created.ID), `{"name":"x","description":"y"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("legacy update: expected 200, got %d", rr.Code)
	}
	if msg := decode[handlers.LegacyErrorResponse](t, rr).Error; msg != "Invalid request, please try again." {
		t.Errorf("legacy update: unexpected message %q", msg)
	}

	if n := len(list(t, h)); n != 1 {
		t.Errorf("legacy rejection changed the item count to %d", n)
	}

	// Not-found keeps its status in legacy mode.
	if rr := get(t, h, 404); rr.Code != http.StatusNotFound {
		t.Errorf("legacy get missing: expected 404, got %d", rr.Code)
	}
}
