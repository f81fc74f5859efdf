package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/vaani-labs/vaani-backend/internal/speech"
	"github.com/vaani-labs/vaani-backend/internal/synthesis"
	"github.com/vaani-labs/vaani-backend/internal/translation"
)

type fakeTranslator struct {
	text   string
	err    error
	gotReq translation.Request
}

func (f *fakeTranslator) Translate(ctx context.Context, req translation.Request) (string, error) {
	f.gotReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeTranslator) Name() string { return "fake-translator" }

type fakeRecognizer struct {
	text   string
	err    error
	gotReq speech.Request
}

func (f *fakeRecognizer) Recognize(ctx context.Context, req speech.Request) (string, error) {
	f.gotReq = req
	// The temp file must exist while the collaborator runs.
	if _, err := os.Stat(req.FilePath); err != nil {
		return "", err
	}
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeRecognizer) Name() string { return "fake-recognizer" }

type fakeSynthesizer struct {
	audio  []byte
	err    error
	gotReq synthesis.Request
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, req synthesis.Request) ([]byte, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

func (f *fakeSynthesizer) Name() string { return "fake-synthesizer" }

type fakeDetector struct {
	code string
	ok   bool
}

func (f *fakeDetector) Detect(text string) (string, bool) { return f.code, f.ok }

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func postAudioForm(t *testing.T, handler http.HandlerFunc, audio []byte, sourceLang string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if audio != nil {
		fw, err := mw.CreateFormFile("audio", "sample.wav")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(audio); err != nil {
			t.Fatal(err)
		}
	}
	if sourceLang != "" {
		if err := mw.WriteField("source_lang", sourceLang); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v (%s)", err, rec.Body.String())
	}
	return body
}

func wantDetail(t *testing.T, rec *httptest.ResponseRecorder, status int, detail string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	body := decodeBody(t, rec)
	got, _ := body["detail"].(string)
	if got == "" {
		t.Fatalf("error response missing detail: %s", rec.Body.String())
	}
	if detail != "" && got != detail {
		t.Errorf("detail = %q, want %q", got, detail)
	}
}

// assertNoTempFiles verifies the scoped-file discipline: dir is the TMPDIR
// set for the test and must be empty once the handler returns.
func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("temp files leaked: %v", names)
	}
}
