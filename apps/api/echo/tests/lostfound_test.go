package tests

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	testutil "github.com/connectingcampuses/backend/tests"
)

func Test_lostfoundApi(t *testing.T) {
	app := setup(t)
	gradYear := time.Now().Year() + 2
	finder := testutil.CreateUser(t, usrRepo, "Finder", "btech10293.23@bitmesra.ac.in", "9876543233", "GoodPass1", gradYear, true)
	other := testutil.CreateUser(t, usrRepo, "Other", "btech10294.23@bitmesra.ac.in", "9876543234", "GoodPass1", gradYear, true)
	finderToken, otherToken := getToken(t, finder), getToken(t, other)

	photo := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10} // JPEG magic
	fields := map[string]string{
		"title":       "Black umbrella",
		"description": "Found near the library entrance after the evening shower.",
		"contact":     "9876543233",
		"date":        "2026-08-25",
	}

	// post an item with a photo
	req, rec := newUploadRequest(t, http.MethodPost, "/api/lostfound", finderToken, fields, photo, "image/jpeg")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("post code = %v; body = %s", rec.Code, rec.Body.String())
	}
	item, _ := decodeBody(t, rec)["item"].(map[string]interface{})
	itemID, _ := item["_id"].(string)
	if itemID == "" {
		t.Fatal("posted item has no ID")
	}
	if bytes.Contains(rec.Body.Bytes(), photo) {
		t.Error("item response embeds the photo bytes")
	}

	// browsing and the photo are public
	req, rec = newRequest(http.MethodGet, "/api/lostfound")
	app.ServeHTTP(rec, req)
	if items, _ := decodeBody(t, rec)["items"].([]interface{}); len(items) != 1 {
		t.Fatalf("items = %v; want 1", len(items))
	}

	req, rec = newRequest(http.MethodGet, "/api/lostfound/"+itemID+"/photo")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("photo code = %v", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("photo content type = %v; want image/jpeg", ct)
	}
	if !bytes.Equal(rec.Body.Bytes(), photo) {
		t.Error("photo bytes do not round-trip")
	}

	// an item without a photo serves no photo
	req, rec = newAuthRequest(http.MethodPost, "/api/lostfound", finderToken, marchallObj(t, map[string]string{
		"title":       "Blue bottle",
		"description": "Lost somewhere in the lecture hall complex.",
		"contact":     "9876543233",
		"date":        "2026-08-24",
	}))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("post (no photo) code = %v; body = %s", rec.Code, rec.Body.String())
	}
	bare, _ := decodeBody(t, rec)["item"].(map[string]interface{})
	req, rec = newRequest(http.MethodGet, "/api/lostfound/"+bare["_id"].(string)+"/photo")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("photo (none) code = %v; want %v", rec.Code, http.StatusNotFound)
	}

	// only the poster may take an item down
	req, rec = newAuthRequest(http.MethodDelete, "/api/lostfound/"+itemID, otherToken)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)

	req, rec = newAuthRequest(http.MethodDelete, "/api/lostfound/"+itemID, finderToken)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete code = %v; body = %s", rec.Code, rec.Body.String())
	}
}

func Test_lostfoundApi_validation(t *testing.T) {
	app := setup(t)
	gradYear := time.Now().Year() + 1
	usr := testutil.CreateUser(t, usrRepo, "Poster", "btech10295.23@bitmesra.ac.in", "9876543235", "GoodPass1", gradYear, true)
	token := getToken(t, usr)

	future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	tests := []httpTest{
		{
			name: "future date",
			body: marchallObj(t, map[string]string{
				"title": "Watch", "description": "Silver strap.", "contact": "9876543235", "date": future,
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Success: false, Message: map[string]string{
				"date": "date cannot be in the future",
			}}),
		},
		{
			name: "bad contact",
			body: marchallObj(t, map[string]string{
				"title": "Watch", "description": "Silver strap.", "contact": "12345", "date": "2026-08-25",
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Success: false, Message: map[string]string{
				"contact": "phone number must be 10 digits",
			}}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/api/lostfound", token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
