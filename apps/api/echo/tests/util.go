package tests

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"reflect"
	"testing"

	. "github.com/connectingcampuses/backend/apps/api/echo"
	"github.com/connectingcampuses/backend/core/attendance"
	"github.com/connectingcampuses/backend/core/carpool"
	"github.com/connectingcampuses/backend/core/lostfound"
	"github.com/connectingcampuses/backend/core/market"
	"github.com/connectingcampuses/backend/core/newsroom"
	"github.com/connectingcampuses/backend/core/user"
	emailsvc "github.com/connectingcampuses/backend/services/email"
	inmemdb "github.com/connectingcampuses/backend/storage/database/inmem"
)

var (
	usrRepo user.Repository

	errMissingToken = httpErr{Success: false, Message: "missing or malformed jwt"}
)

func setup(t *testing.T) Server {
	t.Helper()

	// set up DB & repos
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	usrRepo = inmemdb.NewUserRepository(db)

	// set up services
	emailsvc.ClearSentMessages()
	mailSvc := emailsvc.NewConsoleServiceMock()

	// set up server
	return NewServer(
		&Options{
			DisableReqLogs: true,
			Logger:         testLogger{t},
			UserSvc:        user.NewService(usrRepo, mailSvc),
			AttendanceSvc:  attendance.NewService(inmemdb.NewAttendanceRepository(db)),
			NewsroomSvc:    newsroom.NewService(inmemdb.NewNewsroomRepository(db)),
			LostFoundSvc:   lostfound.NewService(inmemdb.NewLostFoundRepository(db)),
			CarpoolSvc:     carpool.NewService(inmemdb.NewCarpoolRepository(db)),
			MarketSvc:      market.NewService(inmemdb.NewMarketRepository(db)),
		},
	)
}

type testLogger struct {
	t *testing.T
}

func (l testLogger) Enable(bool)                           {}
func (l testLogger) Debug(msg string, args ...interface{}) { l.t.Logf("DEBUG %s %v", msg, args) }
func (l testLogger) Info(msg string, args ...interface{})  { l.t.Logf("INFO %s %v", msg, args) }
func (l testLogger) Warn(msg string, args ...interface{})  { l.t.Logf("WARN %s %v", msg, args) }
func (l testLogger) Error(msg string, args ...interface{}) { l.t.Logf("ERROR %s %v", msg, args) }
func (l testLogger) Fatal(msg string, args ...interface{}) { l.t.Fatalf("FATAL %s %v", msg, args) }

type httpErr struct {
	Success bool        `json:"success"`
	Message interface{} `json:"message"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

// newUploadRequest builds an authenticated multipart/form-data request with
// the given fields and an optional "photo" file part.
func newUploadRequest(
	t *testing.T,
	method, path, token string,
	fields map[string]string,
	photo []byte,
	photoContentType string,
) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("newUploadRequest() failed: %v", err)
		}
	}
	if photo != nil {
		hdr := make(textproto.MIMEHeader)
		hdr.Set("Content-Disposition", `form-data; name="photo"; filename="photo"`)
		hdr.Set("Content-Type", photoContentType)
		part, err := w.CreatePart(hdr)
		if err != nil {
			t.Fatalf("newUploadRequest() failed: %v", err)
		}
		if _, err = part.Write(photo); err != nil {
			t.Fatalf("newUploadRequest() failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("newUploadRequest() failed: %v", err)
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func getToken(t *testing.T, usr user.User) string {
	t.Helper()
	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

// decodeBody unmarshals a response body into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decodeBody() failed: %v; body = %s", err, rec.Body.String())
	}
	return body
}
