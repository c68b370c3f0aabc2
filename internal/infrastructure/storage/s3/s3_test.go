package s3

import (
	"strings"
	"testing"
)

func TestBuildKey_FolderAndExtension(t *testing.T) {
	key := buildKey("photo.PNG", "products")

	if !strings.HasPrefix(key, "products/") {
		t.Errorf("expected products/ prefix, got %q", key)
	}
	if !strings.HasSuffix(key, ".PNG") {
		t.Errorf("original extension must be kept, got %q", key)
	}
}

func TestBuildKey_NoFolder(t *testing.T) {
	key := buildKey("photo.png", "")

	if strings.Contains(key, "/") {
		t.Errorf("no folder means no separator, got %q", key)
	}
}

func TestBuildKey_UniquePerCall(t *testing.T) {
	a := buildKey("photo.png", "products")
	b := buildKey("photo.png", "products")
	if a == b {
		t.Errorf("identical filenames must not collide: %q", a)
	}
}

func TestURL_VirtualHostedFormat(t *testing.T) {
	s := &Storage{bucket: "catalog-assets", region: "us-east-1"}

	got := s.URL("products/abc.png")
	want := "https://catalog-assets.s3.us-east-1.amazonaws.com/products/abc.png"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
