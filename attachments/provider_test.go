package attachments

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/pane/configs"
	"github.com/reusee/pane/generators"
	"github.com/reusee/pane/modes"
)

func TestProviderFromPackageDir(t *testing.T) {
	dscope.New(
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
		modes.ForTest(t),
	).Fork(
		func() FileNameOK {
			return func(name string) bool {
				return strings.HasSuffix(strings.ToLower(name), ".md")
			}
		},
	).Call(func(
		provider Provider,
		countTokens generators.BPETokenCounter,
	) {
		parts, err := provider.Parts(math.MaxInt, countTokens)
		if err != nil {
			t.Fatal(err)
		}
		if len(parts) != 1 {
			t.Fatalf("got %v", len(parts))
		}
		text, ok := parts[0].(generators.Text)
		if !ok {
			t.Fatalf("got %#v", parts[0])
		}
		if !strings.Contains(string(text), "amber accents") {
			t.Fatalf("got %v", text)
		}
	})
}

func TestProviderFromFilesFlag(t *testing.T) {
	dir := t.TempDir()
	content := "reference copy deck"
	if err := os.WriteFile(filepath.Join(dir, "copy.txt"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
		modes.ForTest(t),
	).Fork(
		func() Files {
			return Files{dir}
		},
	).Call(func(
		provider Provider,
		countTokens generators.BPETokenCounter,
	) {
		parts, err := provider.Parts(math.MaxInt, countTokens)
		if err != nil {
			t.Fatal(err)
		}
		if len(parts) != 1 {
			t.Fatalf("got %d", len(parts))
		}
		text, ok := parts[0].(generators.Text)
		if !ok {
			t.Fatalf("got %#v", parts)
		}
		if !strings.Contains(string(text), content) {
			t.Fatalf("got %q, want to contain %q", string(text), content)
		}
	})
}

func TestProviderTokenBudget(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte(strings.Repeat("word ", 300)), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte(strings.Repeat("word ", 300)), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
		modes.ForTest(t),
	).Fork(
		func() Files {
			return Files{dir}
		},
	).Call(func(
		provider Provider,
		countTokens generators.BPETokenCounter,
	) {
		// enough for one file, not two
		parts, err := provider.Parts(500, countTokens)
		if err != nil {
			t.Fatal(err)
		}
		if len(parts) != 1 {
			t.Fatalf("got %d", len(parts))
		}
	})
}

func TestProviderImages(t *testing.T) {
	dir := t.TempDir()
	png := append(
		[]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a},
		make([]byte, 64)...,
	)
	if err := os.WriteFile(filepath.Join(dir, "wireframe.png"), png, 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
		modes.ForTest(t),
	).Fork(
		func() Files {
			return Files{dir}
		},
		func() IncludeImages {
			return true
		},
	).Call(func(
		provider Provider,
		countTokens generators.BPETokenCounter,
	) {
		parts, err := provider.Parts(math.MaxInt, countTokens)
		if err != nil {
			t.Fatal(err)
		}
		if len(parts) != 1 {
			t.Fatalf("got %d", len(parts))
		}
		image, ok := parts[0].(generators.FileContent)
		if !ok {
			t.Fatalf("got %#v", parts[0])
		}
		if image.MimeType != "image/png" {
			t.Fatalf("got %q", image.MimeType)
		}
	})
}

func TestProviderSkipsImagesByDefault(t *testing.T) {
	dir := t.TempDir()
	png := append(
		[]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a},
		make([]byte, 64)...,
	)
	if err := os.WriteFile(filepath.Join(dir, "wireframe.png"), png, 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
		modes.ForTest(t),
	).Fork(
		func() Files {
			return Files{dir}
		},
	).Call(func(
		provider Provider,
		countTokens generators.BPETokenCounter,
	) {
		parts, err := provider.Parts(math.MaxInt, countTokens)
		if err != nil {
			t.Fatal(err)
		}
		if len(parts) != 0 {
			t.Fatalf("got %#v", parts)
		}
	})
}
