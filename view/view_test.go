package view

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestRenderWithLayout(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "layout.html", `<html><body>{{ template "content" . }}</body></html>`)
	writeTemplate(t, dir, "page.html", `{{ define "content" }}<p>{{ .Message }}</p>{{ end }}`)

	ResetForTests()
	SetBaseDir(dir)
	t.Cleanup(ResetForTests)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := Render(rec, req, "page.html", map[string]any{"Message": "hello"}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<html>") || !strings.Contains(body, "<p>hello</p>") {
		t.Errorf("unexpected output: %s", body)
	}
}

func TestRenderFullDocumentSkipsLayout(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "layout.html", `LAYOUT{{ template "content" . }}`)
	writeTemplate(t, dir, "standalone.html", `<!DOCTYPE html><html><body>standalone</body></html>`)

	ResetForTests()
	SetBaseDir(dir)
	t.Cleanup(ResetForTests)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := Render(rec, req, "standalone.html", nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	body := rec.Body.String()
	if strings.Contains(body, "LAYOUT") {
		t.Error("layout applied to full document")
	}
	if !strings.Contains(body, "standalone") {
		t.Errorf("unexpected output: %s", body)
	}
}

func TestQRDataURL(t *testing.T) {
	got := string(qrDataURL("upi://pay?pa=acme@upi"))
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(got, prefix) {
		t.Fatalf("no data URL prefix: %.40s", got)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, prefix))
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 160 {
		t.Errorf("size = %dx%d, want 160x160", b.Dx(), b.Dy())
	}
}

func TestFuncsCurrencyAndDate(t *testing.T) {
	funcs := Funcs()
	currency := funcs["currency"].(func(float64) string)
	if got := currency(123456.78); got != "₹1,23,456.78" {
		t.Errorf("currency = %q", got)
	}
	if _, ok := funcs["qr"]; !ok {
		t.Error("qr func missing")
	}
}
