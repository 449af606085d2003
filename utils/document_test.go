package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExtractText(t *testing.T) {
	e := NewDocumentExtractor()

	got, err := e.ExtractText("notes.TXT", []byte("go, sql"))
	if err != nil {
		t.Fatalf("ExtractText txt: %v", err)
	}
	if got != "go, sql" {
		t.Errorf("unexpected txt text %q", got)
	}

	got, err = e.ExtractText("old.doc", []byte("\x00\x01Senior   Go\x02 engineer\xff"))
	if err != nil {
		t.Fatalf("ExtractText doc: %v", err)
	}
	if got != "Senior Go engineer" {
		t.Errorf("unexpected doc text %q", got)
	}

	if _, err := e.ExtractText("image.png", []byte{1, 2, 3}); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if _, err := e.ExtractText("broken.pdf", []byte("not a pdf")); err == nil {
		t.Error("expected error for malformed pdf")
	}
	if _, err := e.ExtractText("broken.docx", []byte("not a zip")); err == nil {
		t.Error("expected error for malformed docx")
	}
}

func TestStripXML(t *testing.T) {
	raw := `<w:document><w:body><w:p><w:r><w:t>Jane  Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Go &amp; SQL</w:t><w:br/><w:t>5 years</w:t></w:r></w:p></w:body></w:document>`

	want := "Jane Doe\nGo & SQL\n5 years"
	if got := stripXML(raw); got != want {
		t.Fatalf("stripXML = %q, want %q", got, want)
	}
}

func TestIsSupportedFormat(t *testing.T) {
	e := NewDocumentExtractor()
	for name, want := range map[string]bool{
		"cv.pdf":  true,
		"cv.DOCX": true,
		"cv.doc":  true,
		"cv.txt":  false,
		"cv":      false,
		"cv.exe":  false,
	} {
		if got := e.IsSupportedFormat(name); got != want {
			t.Errorf("IsSupportedFormat(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNewHTTPClientSetsUserAgent(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(5 * time.Second).Get(srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()

	if ua != "DreamJobsPortal/1.0" {
		t.Fatalf("unexpected user agent %q", ua)
	}
}
