package generators

import (
	"errors"
	"reflect"
	"testing"
)

func TestPartGeminiRoundTrip(t *testing.T) {
	parts := []Part{
		Text("<button>Go</button>"),
		Thought("place it bottom right"),
		FileURL("https://example.com/ref.png"),
		FileContent{MimeType: "image/png", Content: []byte{1, 2, 3}},
	}
	for _, part := range parts {
		pb, err := part.ToGemini()
		if err != nil {
			t.Fatal(err)
		}
		back, err := PartFromGemini(pb)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(back, part) {
			t.Fatalf("got %+v, want %+v", back, part)
		}
	}
}

func TestBookkeepingPartsSkipWire(t *testing.T) {
	for _, part := range []Part{
		FinishReason("STOP"),
		Usage{InputTokens: 1},
		Error{Error: errors.New("x")},
	} {
		pb, err := part.ToGemini()
		if err != nil || pb != nil {
			t.Fatalf("got %v, %v", pb, err)
		}
	}
}

func TestUsageAdd(t *testing.T) {
	total := Usage{}.
		Add(Usage{InputTokens: 10, OutputTokens: 5}).
		Add(Usage{InputTokens: 3, CachedTokens: 2, ThoughtTokens: 7})
	want := Usage{
		InputTokens:   13,
		CachedTokens:  2,
		OutputTokens:  5,
		ThoughtTokens: 7,
	}
	if total != want {
		t.Fatalf("got %+v", total)
	}
}
