package generators

import (
	"fmt"

	"cloud.google.com/go/ai/generativelanguage/apiv1beta/generativelanguagepb"
)

// Part is one unit of a conversation turn. Payload parts (Text,
// Thought, FileURL, FileContent) are sent to the model; bookkeeping
// parts (FinishReason, Usage, Error) record what a provider reported
// and map to no wire part.
type Part interface {
	isPart()
	ToGemini() (*generativelanguagepb.Part, error)
}

// Text is plain conversation text, including streamed screen markup.
type Text string

// Thought is reasoning text a model emitted alongside its answer.
type Thought string

// FileURL references a file by URI without inlining its bytes.
type FileURL string

// FileContent inlines file bytes with their MIME type.
type FileContent struct {
	Content  []byte
	MimeType string
}

// FinishReason records why a provider stopped generating.
type FinishReason string

// Usage is the token accounting a provider reported for one call.
type Usage struct {
	InputTokens   int
	CachedTokens  int
	OutputTokens  int
	ThoughtTokens int
}

// Error carries a provider-side failure into the transcript.
type Error struct {
	Error error
}

func (Text) isPart()         {}
func (Thought) isPart()      {}
func (FileURL) isPart()      {}
func (FileContent) isPart()  {}
func (FinishReason) isPart() {}
func (Usage) isPart()        {}
func (Error) isPart()        {}

// Add sums two usage reports, for totaling across chunks and calls.
func (u Usage) Add(o Usage) Usage {
	u.InputTokens += o.InputTokens
	u.CachedTokens += o.CachedTokens
	u.OutputTokens += o.OutputTokens
	u.ThoughtTokens += o.ThoughtTokens
	return u
}

func (t Text) ToGemini() (*generativelanguagepb.Part, error) {
	return &generativelanguagepb.Part{
		Data: &generativelanguagepb.Part_Text{
			Text: string(t),
		},
	}, nil
}

func (t Thought) ToGemini() (*generativelanguagepb.Part, error) {
	part, err := Text(t).ToGemini()
	if err != nil {
		return nil, err
	}
	part.Thought = true
	return part, nil
}

func (f FileURL) ToGemini() (*generativelanguagepb.Part, error) {
	return &generativelanguagepb.Part{
		Data: &generativelanguagepb.Part_FileData{
			FileData: &generativelanguagepb.FileData{
				FileUri: string(f),
			},
		},
	}, nil
}

func (f FileContent) ToGemini() (*generativelanguagepb.Part, error) {
	return &generativelanguagepb.Part{
		Data: &generativelanguagepb.Part_InlineData{
			InlineData: &generativelanguagepb.Blob{
				MimeType: f.MimeType,
				Data:     f.Content,
			},
		},
	}, nil
}

// Bookkeeping parts stay out of provider requests.

func (FinishReason) ToGemini() (*generativelanguagepb.Part, error) { return nil, nil }

func (Usage) ToGemini() (*generativelanguagepb.Part, error) { return nil, nil }

func (Error) ToGemini() (*generativelanguagepb.Part, error) { return nil, nil }

// PartFromGemini converts a response part to its transcript form.
// Executable code and its output come back as plain text.
func PartFromGemini(part *generativelanguagepb.Part) (Part, error) {
	switch data := part.Data.(type) {

	case *generativelanguagepb.Part_Text:
		if part.Thought {
			return Thought(data.Text), nil
		}
		return Text(data.Text), nil

	case *generativelanguagepb.Part_ExecutableCode:
		return Text(data.ExecutableCode.GetCode()), nil

	case *generativelanguagepb.Part_CodeExecutionResult:
		return Text(data.CodeExecutionResult.GetOutput()), nil

	case *generativelanguagepb.Part_FileData:
		return FileURL(data.FileData.FileUri), nil

	case *generativelanguagepb.Part_InlineData:
		return FileContent{
			Content:  data.InlineData.Data,
			MimeType: data.InlineData.MimeType,
		}, nil

	}
	return nil, fmt.Errorf("unknown part type: %T", part.Data)
}
