package tests

import (
	"bytes"
	"net/http"
	"strconv"
	"testing"
	"time"

	testutil "github.com/connectingcampuses/backend/tests"
)

func Test_marketApi(t *testing.T) {
	app := setup(t)
	gradYear := time.Now().Year() + 2
	seller := testutil.CreateUser(t, usrRepo, "Seller", "btech10300.23@bitmesra.ac.in", "9876543240", "GoodPass1", gradYear, true)
	buyer := testutil.CreateUser(t, usrRepo, "Buyer", "btech10301.23@bitmesra.ac.in", "9876543241", "GoodPass1", gradYear, true)
	sellerToken, buyerToken := getToken(t, seller), getToken(t, buyer)

	photo := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a} // PNG magic
	fields := map[string]string{
		"title":          "Drafter and lab apron",
		"price":          strconv.Itoa(350),
		"category":       "Academics",
		"description":    "Barely used, first year kit.",
		"whatsappNumber": "919876543240",
	}

	req, rec := newUploadRequest(t, http.MethodPost, "/api/listings", sellerToken, fields, photo, "image/png")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("publish code = %v; body = %s", rec.Code, rec.Body.String())
	}
	lst, _ := decodeBody(t, rec)["listing"].(map[string]interface{})
	lstID, _ := lst["_id"].(string)
	if lstID == "" {
		t.Fatal("published listing has no ID")
	}
	if lst["price"] != float64(350) {
		t.Errorf("price = %v; want 350", lst["price"])
	}

	// browsing and the photo are public
	req, rec = newRequest(http.MethodGet, "/api/listings")
	app.ServeHTTP(rec, req)
	if listings, _ := decodeBody(t, rec)["listings"].([]interface{}); len(listings) != 1 {
		t.Fatalf("listings = %v; want 1", len(listings))
	}

	req, rec = newRequest(http.MethodGet, "/api/listings/"+lstID+"/photo")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("photo code = %v", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("photo content type = %v; want image/png", ct)
	}
	if !bytes.Equal(rec.Body.Bytes(), photo) {
		t.Error("photo bytes do not round-trip")
	}

	// only the seller may take a listing down
	req, rec = newAuthRequest(http.MethodDelete, "/api/listings/"+lstID, buyerToken)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)

	req, rec = newAuthRequest(http.MethodDelete, "/api/listings/"+lstID, sellerToken)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete code = %v; body = %s", rec.Code, rec.Body.String())
	}
	req, rec = newRequest(http.MethodGet, "/api/listings/"+lstID+"/photo")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("photo after delete code = %v; want %v", rec.Code, http.StatusNotFound)
	}
}

func Test_marketApi_validation(t *testing.T) {
	app := setup(t)
	gradYear := time.Now().Year() + 1
	usr := testutil.CreateUser(t, usrRepo, "Seller", "btech10302.23@bitmesra.ac.in", "9876543242", "GoodPass1", gradYear, true)
	token := getToken(t, usr)

	body := marchallObj(t, map[string]interface{}{
		"title":          "Cycle",
		"price":          1200,
		"category":       "Transport",
		"description":    "Hero cycle, decent condition.",
		"whatsappNumber": "9876543242", // missing country code
	})
	req, rec := newAuthRequest(http.MethodPost, "/api/listings", token, body)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusBadRequest,
		wantData: marchallObj(t, httpErr{Success: false, Message: map[string]string{
			"whatsappNumber": "whatsapp number must start with 91 followed by 10 digits",
		}}),
	}, rec)
}
