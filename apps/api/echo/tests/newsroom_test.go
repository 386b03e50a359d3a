package tests

import (
	"net/http"
	"testing"
	"time"

	testutil "github.com/connectingcampuses/backend/tests"
)

var errForbidden = httpErr{Success: false, Message: "permission denied"}

func Test_newsroomApi(t *testing.T) {
	app := setup(t)
	gradYear := time.Now().Year() + 2
	author := testutil.CreateUser(t, usrRepo, "Author", "btech10290.23@bitmesra.ac.in", "9876543230", "GoodPass1", gradYear, true)
	reader := testutil.CreateUser(t, usrRepo, "Reader", "btech10291.23@bitmesra.ac.in", "9876543231", "GoodPass1", gradYear, true)
	authorToken, readerToken := getToken(t, author), getToken(t, reader)

	event := marchallObj(t, map[string]interface{}{
		"category":    "Cultural",
		"club":        "Dance Club",
		"title":       "Annual Fest Auditions",
		"src":         "https://img.example.com/fest.png",
		"description": "Auditions for the annual fest, all years welcome.",
		"date":        "2026-09-15",
	})

	// publishing needs a session
	req, rec := newRequest(http.MethodPost, "/api/events", event)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)

	req, rec = newAuthRequest(http.MethodPost, "/api/events", authorToken, event)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("publish code = %v; body = %s", rec.Code, rec.Body.String())
	}
	evt, _ := decodeBody(t, rec)["event"].(map[string]interface{})
	evtID, _ := evt["_id"].(string)
	if evtID == "" {
		t.Fatal("published event has no ID")
	}
	if evt["email"] != author.Email {
		t.Errorf("event email = %v; want %v", evt["email"], author.Email)
	}

	// anyone can browse
	req, rec = newRequest(http.MethodGet, "/api/events")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("query code = %v; body = %s", rec.Code, rec.Body.String())
	}
	if events, _ := decodeBody(t, rec)["events"].([]interface{}); len(events) != 1 {
		t.Errorf("events = %v; want 1", len(events))
	}

	req, rec = newRequest(http.MethodGet, "/api/events/by-email/"+author.Email)
	app.ServeHTTP(rec, req)
	if events, _ := decodeBody(t, rec)["events"].([]interface{}); len(events) != 1 {
		t.Errorf("events by email = %v; want 1", len(events))
	}
	req, rec = newRequest(http.MethodGet, "/api/events/by-email/"+reader.Email)
	app.ServeHTTP(rec, req)
	if events, _ := decodeBody(t, rec)["events"].([]interface{}); len(events) != 0 {
		t.Errorf("events by other email = %v; want none", len(events))
	}

	// only the creator may edit or delete
	patch := marchallObj(t, map[string]string{"title": "Fest Auditions (rescheduled)", "date": "2026-09-20"})
	req, rec = newAuthRequest(http.MethodPut, "/api/events/"+evtID, readerToken, patch)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)

	req, rec = newAuthRequest(http.MethodPut, "/api/events/"+evtID, authorToken, patch)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update code = %v; body = %s", rec.Code, rec.Body.String())
	}
	evt, _ = decodeBody(t, rec)["event"].(map[string]interface{})
	if evt["title"] != "Fest Auditions (rescheduled)" || evt["date"] != "2026-09-20" {
		t.Errorf("updated event = %v", evt)
	}
	if evt["club"] != "Dance Club" {
		t.Error("update clobbered untouched fields")
	}

	req, rec = newAuthRequest(http.MethodDelete, "/api/events/"+evtID, readerToken)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)

	req, rec = newAuthRequest(http.MethodDelete, "/api/events/"+evtID, authorToken)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete code = %v; body = %s", rec.Code, rec.Body.String())
	}

	// gone
	req, rec = newAuthRequest(http.MethodDelete, "/api/events/"+evtID, authorToken)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("delete again code = %v; want %v", rec.Code, http.StatusNotFound)
	}
}

func Test_newsroomApi_validation(t *testing.T) {
	app := setup(t)
	gradYear := time.Now().Year() + 1
	usr := testutil.CreateUser(t, usrRepo, "Poster", "btech10292.23@bitmesra.ac.in", "9876543232", "GoodPass1", gradYear, true)
	token := getToken(t, usr)

	tests := []httpTest{
		{
			name: "bad poster URL",
			body: marchallObj(t, map[string]string{
				"category": "Tech", "club": "IEEE", "title": "Talk",
				"description": "A talk.", "date": "2026-09-15", "src": "not a url",
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Success: false, Message: map[string]string{
				"src": "src must be a valid URL",
			}}),
		},
		{
			name: "missing fields",
			body: marchallObj(t, map[string]string{"category": "Tech"}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Success: false, Message: map[string]string{
				"club":        "this field is required",
				"title":       "this field is required",
				"description": "this field is required",
				"date":        "this field is required",
			}}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/api/events", token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
