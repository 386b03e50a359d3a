package tests

import (
	"net/http"
	"testing"
	"time"

	testutil "github.com/connectingcampuses/backend/tests"
)

func Test_attendanceApi(t *testing.T) {
	app := setup(t)
	gradYear := time.Now().Year() + 2
	usr := testutil.CreateUser(t, usrRepo, "Tracker", "btech10280.23@bitmesra.ac.in", "9876543220", "GoodPass1", gradYear, true)
	token := getToken(t, usr)

	mark := func(subject, date, status string) []byte {
		return marchallObj(t, map[string]string{"subject": subject, "date": date, "status": status})
	}

	// authentication is required throughout
	req, rec := newRequest(http.MethodPost, "/api/attendance", mark("Maths", "2026-08-20", "present"))
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}, rec)

	// mark two days on one subject
	req, rec = newAuthRequest(http.MethodPost, "/api/attendance", token, mark("Maths", "2026-08-20", "present"))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("mark code = %v; body = %s", rec.Code, rec.Body.String())
	}
	req, rec = newAuthRequest(http.MethodPost, "/api/attendance", token, mark("maths", "2026-08-21", "absent"))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("mark code = %v; body = %s", rec.Code, rec.Body.String())
	}

	// subject names are folded together regardless of casing
	req, rec = newAuthRequest(http.MethodGet, "/api/attendance/MATHS", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("retrieve code = %v; body = %s", rec.Code, rec.Body.String())
	}
	sheet, _ := decodeBody(t, rec)["attendance"].(map[string]interface{})
	records, _ := sheet["records"].(map[string]interface{})
	if len(records) != 2 {
		t.Fatalf("records = %v; want 2 entries", records)
	}
	if records["2026-08-20"] != "present" || records["2026-08-21"] != "absent" {
		t.Errorf("records = %v", records)
	}

	// remarking a day overwrites it
	req, rec = newAuthRequest(http.MethodPost, "/api/attendance", token, mark("Maths", "2026-08-20", "cancelled"))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("re-mark code = %v; body = %s", rec.Code, rec.Body.String())
	}
	sheet, _ = decodeBody(t, rec)["attendance"].(map[string]interface{})
	records, _ = sheet["records"].(map[string]interface{})
	if records["2026-08-20"] != "cancelled" {
		t.Errorf("records[2026-08-20] = %v; want cancelled", records["2026-08-20"])
	}
	if len(records) != 2 {
		t.Errorf("records = %v; want 2 entries", records)
	}

	// a second subject gets its own sheet
	req, rec = newAuthRequest(http.MethodPost, "/api/attendance", token, mark("Physics", "2026-08-20", "present"))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("mark code = %v; body = %s", rec.Code, rec.Body.String())
	}
	req, rec = newAuthRequest(http.MethodGet, "/api/attendance", token)
	app.ServeHTTP(rec, req)
	sheets, _ := decodeBody(t, rec)["attendance"].([]interface{})
	if len(sheets) != 2 {
		t.Fatalf("sheets = %v; want 2", len(sheets))
	}

	// sheets are scoped per user
	other := testutil.CreateUser(t, usrRepo, "Other", "btech10281.23@bitmesra.ac.in", "9876543221", "GoodPass1", gradYear, true)
	req, rec = newAuthRequest(http.MethodGet, "/api/attendance", getToken(t, other))
	app.ServeHTTP(rec, req)
	if sheets, _ = decodeBody(t, rec)["attendance"].([]interface{}); len(sheets) != 0 {
		t.Errorf("other user's sheets = %v; want none", sheets)
	}

	// drop one subject
	req, rec = newAuthRequest(http.MethodDelete, "/api/attendance/subject/physics", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete subject code = %v; body = %s", rec.Code, rec.Body.String())
	}
	req, rec = newAuthRequest(http.MethodGet, "/api/attendance/Physics", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("retrieve deleted subject code = %v; want %v", rec.Code, http.StatusNotFound)
	}

	// then everything
	req, rec = newAuthRequest(http.MethodDelete, "/api/attendance/allclear", token)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("allclear code = %v; body = %s", rec.Code, rec.Body.String())
	}
	req, rec = newAuthRequest(http.MethodGet, "/api/attendance", token)
	app.ServeHTTP(rec, req)
	if sheets, _ = decodeBody(t, rec)["attendance"].([]interface{}); len(sheets) != 0 {
		t.Errorf("sheets after allclear = %v; want none", sheets)
	}
}

func Test_attendanceApi_validation(t *testing.T) {
	app := setup(t)
	gradYear := time.Now().Year() + 1
	usr := testutil.CreateUser(t, usrRepo, "Checker", "btech10282.23@bitmesra.ac.in", "9876543222", "GoodPass1", gradYear, true)
	token := getToken(t, usr)

	tests := []httpTest{
		{
			name:     "unknown status",
			body:     marchallObj(t, map[string]string{"subject": "Maths", "date": "2026-08-20", "status": "late"}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Success: false, Message: map[string]string{
				"status": "status must be one of [present absent cancelled]",
			}}),
		},
		{
			name:     "bad date format",
			body:     marchallObj(t, map[string]string{"subject": "Maths", "date": "20-08-2026", "status": "present"}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Success: false, Message: map[string]string{
				"date": "date must be in YYYY-MM-DD format",
			}}),
		},
		{
			name:     "missing subject",
			body:     marchallObj(t, map[string]string{"date": "2026-08-20", "status": "present"}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Success: false, Message: map[string]string{
				"subject": "this field is required",
			}}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/api/attendance", token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
