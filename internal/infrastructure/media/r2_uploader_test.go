package media

import (
	"testing"

	"github.com/rs/zerolog"
)

func newTestUploader(cfg Config) *R2Uploader {
	cfg.AccountID = "acct"
	cfg.AccessKeyID = "key"
	cfg.SecretAccessKey = "secret"
	cfg.Bucket = "tiendas-fotos"
	cfg.Region = "auto"
	return NewR2Uploader(cfg, zerolog.Nop())
}

func TestObjectKey(t *testing.T) {
	u := newTestUploader(Config{Folder: "tiendas"})
	if got := u.objectKey("1700000000_0_Pizzería_Don_Carlos", "image/png"); got != "tiendas/1700000000_0_Pizzería_Don_Carlos.png" {
		t.Fatalf("unexpected key %q", got)
	}

	u2 := newTestUploader(Config{Folder: "/tiendas/"})
	if got := u2.objectKey("x", "image/jpeg"); got != "tiendas/x.jpg" {
		t.Fatalf("folder slashes must be trimmed, got %q", got)
	}

	u3 := newTestUploader(Config{})
	if got := u3.objectKey("x", "image/webp"); got != "x.webp" {
		t.Fatalf("empty folder keys at root, got %q", got)
	}
}

func TestPublicURLWithTransform(t *testing.T) {
	u := newTestUploader(Config{
		Folder:         "tiendas",
		PublicBaseURL:  "https://fotos.vitrinalocal.com/",
		ImageTransform: "width=800,height=600,fit=cover",
	})
	got := u.publicURL("tiendas/x.jpg")
	want := "https://fotos.vitrinalocal.com/cdn-cgi/image/width=800,height=600,fit=cover/tiendas/x.jpg"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPublicURLWithoutTransform(t *testing.T) {
	u := newTestUploader(Config{PublicBaseURL: "https://fotos.vitrinalocal.com"})
	if got := u.publicURL("x.jpg"); got != "https://fotos.vitrinalocal.com/x.jpg" {
		t.Fatalf("got %q", got)
	}
}

func TestExtensionFor(t *testing.T) {
	cases := map[string]string{
		"image/jpeg":               ".jpg",
		"image/png":                ".png",
		"image/webp":               ".webp",
		"image/gif":                ".gif",
		"application/octet-stream": ".jpg",
		"":                         ".jpg",
	}
	for contentType, want := range cases {
		if got := extensionFor(contentType); got != want {
			t.Fatalf("extensionFor(%q) = %q, want %q", contentType, got, want)
		}
	}
}
