package attachments

import (
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/dscope"
	"github.com/reusee/pane/cmds"
	"github.com/reusee/pane/generators"
	"github.com/reusee/pane/logs"
)

// Provider collects local reference material for the prompt:
// wireframes, style notes, copy decks, existing markup. Text files
// become fenced text parts, image files become inline image parts
// when enabled.
type Provider struct {
	FileNameOK    dscope.Inject[FileNameOK]
	NameMatch     dscope.Inject[NameMatch]
	IncludeImages dscope.Inject[IncludeImages]
	Logger        dscope.Inject[logs.Logger]
	Files         dscope.Inject[Files]
}

func (p Provider) RootDirs() ([]string, error) {
	if files := p.Files(); len(files) > 0 {
		return []string(files), nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return []string{
		dir,
	}, nil
}

type FileInfo struct {
	Path     string
	Content  []byte
	MimeType string
	IsImage  bool
}

func (p Provider) IterFiles() iter.Seq2[FileInfo, error] {
	return func(yield func(FileInfo, error) bool) {
		queue, err := p.RootDirs()
		if err != nil {
			yield(FileInfo{}, err)
			return
		}

		for len(queue) > 0 {
			path := queue[0]
			queue = queue[1:]

			base := filepath.Base(path)
			if base != "." && strings.HasPrefix(base, ".") {
				continue
			}
			switch base {
			case "node_modules", "dist", "build":
				continue
			}

			stat, err := os.Stat(path)
			if err != nil {
				yield(FileInfo{}, err)
				return
			}

			if stat.IsDir() {
				entries, err := os.ReadDir(path)
				if err != nil {
					yield(FileInfo{}, err)
					return
				}
				for _, entry := range entries {
					queue = append(queue, filepath.Join(path, entry.Name()))
				}
				continue
			}

			if !p.FileNameOK()(path) {
				continue
			}
			if !p.NameMatch()(path) {
				continue
			}

			content, err := os.ReadFile(path)
			if err != nil {
				yield(FileInfo{}, err)
				return
			}

			info, ok := p.classify(path, content)
			if !ok {
				continue
			}
			if !yield(info, nil) {
				return
			}
		}
	}
}

// classify keeps text files and, when enabled, images.
func (p Provider) classify(path string, content []byte) (FileInfo, bool) {
	mtype := mimetype.Detect(content)

	isText := false
	for t := mtype; t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			isText = true
			break
		}
	}

	isImage := !isText &&
		bool(p.IncludeImages()) &&
		strings.HasPrefix(mtype.String(), "image/")

	if !isText && !isImage {
		return FileInfo{}, false
	}
	return FileInfo{
		Path:     path,
		Content:  content,
		MimeType: mtype.String(),
		IsImage:  isImage,
	}, true
}

var debugFlag = cmds.Switch("-debug-attachments")

// Parts frames every collected file for the prompt, stopping at the
// token budget. Image parts bypass the text budget.
func (p Provider) Parts(
	maxTokens int,
	countTokens func(string) (int, error),
) ([]generators.Part, error) {
	var parts []generators.Part
	totalTokens := 0

	for info, err := range p.IterFiles() {
		if err != nil {
			return nil, err
		}

		if info.IsImage {
			if *debugFlag {
				p.Logger().Info("reference image",
					"path", info.Path,
					"mime type", info.MimeType,
					"bytes", len(info.Content),
				)
			}
			parts = append(parts, generators.FileContent{
				Content:  info.Content,
				MimeType: info.MimeType,
			})
			continue
		}

		text := "``` file " + info.Path + "\n" +
			string(info.Content) + "\n" +
			"``` end " + info.Path + "\n"
		numTokens, err := countTokens(text)
		if err != nil {
			return nil, err
		}
		if totalTokens+numTokens > maxTokens {
			p.Logger().Info("file skipped due to token limit",
				"at file", info.Path,
				"file tokens", numTokens,
				"total tokens", totalTokens,
				"max tokens", maxTokens,
			)
			break
		}
		totalTokens += numTokens

		if *debugFlag {
			p.Logger().Info("reference file",
				"path", info.Path,
				"tokens", numTokens,
				"mime type", info.MimeType,
			)
		}
		parts = append(parts, generators.Text(text))
	}

	p.Logger().Info("attachments",
		"max tokens", maxTokens,
		"total tokens", totalTokens,
	)
	return parts, nil
}

func (Module) Provider(
	inject dscope.InjectStruct,
) (ret Provider) {
	inject(&ret)
	return
}
