package handlers

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestTranslate_Success(t *testing.T) {
	tr := &fakeTranslator{text: "नमस्ते"}
	h := NewTranslateHandler(tr)

	rec := postJSON(t, h.Translate, `{"text":"Hello","source_lang":"en","target_lang":"hi"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if body["translated_text"] != "नमस्ते" {
		t.Errorf("translated_text = %v", body["translated_text"])
	}
	if body["original_text"] != "Hello" {
		t.Errorf("original_text = %v, want echo of input", body["original_text"])
	}
	if body["source_lang"] != "en" || body["target_lang"] != "hi" {
		t.Errorf("language echo = %v/%v", body["source_lang"], body["target_lang"])
	}
	if body["status"] != "success" {
		t.Errorf("status field = %v, want %q", body["status"], "success")
	}

	if tr.gotReq.Text != "Hello" || tr.gotReq.SourceLang != "en" || tr.gotReq.TargetLang != "hi" {
		t.Errorf("collaborator received %+v", tr.gotReq)
	}
}

func TestTranslate_TrimsBeforeDelegating(t *testing.T) {
	tr := &fakeTranslator{text: "ok"}
	h := NewTranslateHandler(tr)

	rec := postJSON(t, h.Translate, `{"text":"  spaced out  ","source_lang":"en","target_lang":"ta"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if tr.gotReq.Text != "spaced out" {
		t.Errorf("collaborator received %q, want trimmed text", tr.gotReq.Text)
	}
	if got := decodeBody(t, rec)["original_text"]; got != "spaced out" {
		t.Errorf("original_text = %v, want trimmed echo", got)
	}
}

func TestTranslate_EmptyText(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing text", `{"source_lang":"en","target_lang":"hi"}`},
		{"empty text", `{"text":"","source_lang":"en","target_lang":"hi"}`},
		{"whitespace only", `{"text":"   \t ","source_lang":"en","target_lang":"hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &fakeTranslator{}
			h := NewTranslateHandler(tr)
			rec := postJSON(t, h.Translate, tt.body)
			wantDetail(t, rec, http.StatusBadRequest, "Text is required")
			if tr.gotReq.Text != "" {
				t.Error("collaborator must not be called for invalid input")
			}
		})
	}
}

func TestTranslate_MalformedBody(t *testing.T) {
	h := NewTranslateHandler(&fakeTranslator{})
	rec := postJSON(t, h.Translate, `{"text": `)
	wantDetail(t, rec, http.StatusBadRequest, "")
}

func TestTranslate_CollaboratorFailure(t *testing.T) {
	h := NewTranslateHandler(&fakeTranslator{err: errors.New("upstream unreachable")})
	rec := postJSON(t, h.Translate, `{"text":"Hello","source_lang":"en","target_lang":"hi"}`)

	wantDetail(t, rec, http.StatusInternalServerError, "")
	detail := decodeBody(t, rec)["detail"].(string)
	if !strings.HasPrefix(detail, "Translation failed: ") {
		t.Errorf("detail = %q, want Translation failed prefix", detail)
	}
	if !strings.Contains(detail, "upstream unreachable") {
		t.Errorf("detail %q does not carry the underlying message", detail)
	}
}

func TestTranslate_PassesCodesThroughUnvalidated(t *testing.T) {
	// Codes outside the catalog are forwarded as-is.
	tr := &fakeTranslator{text: "hola"}
	h := NewTranslateHandler(tr)

	rec := postJSON(t, h.Translate, `{"text":"hello","source_lang":"xx","target_lang":"zz"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if tr.gotReq.SourceLang != "xx" || tr.gotReq.TargetLang != "zz" {
		t.Errorf("collaborator received %q/%q, want pass-through", tr.gotReq.SourceLang, tr.gotReq.TargetLang)
	}
}
