package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads a list of cue files once, on first use, and answers
// lookups against them in order. Earlier files win.
type Loader struct {
	sources func() ([]source, error)
}

type source struct {
	path  string
	value cue.Value
}

// NewLoader prepares a loader over filePaths. If schemaSrc is not
// empty it is compiled as a closed struct and every file must unify
// with it, so unknown fields are rejected.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		sources: sync.OnceValues(func() ([]source, error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			var sources []source
			for _, path := range filePaths {
				content, err := os.ReadFile(path)
				if err != nil {
					return nil, err
				}
				value := ctx.CompileBytes(content, cue.Filename(path))
				if err := value.Err(); err != nil {
					return nil, err
				}
				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}
				sources = append(sources, source{
					path:  path,
					value: value,
				})
			}
			return sources, nil
		}),
	}
}

// IterCueValues yields the value at path from every file defining it,
// in file order.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		sources, err := l.sources()
		if err != nil {
			yield(nil, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, src := range sources {
			value := src.value.LookupPath(cuePath)
			if value.Err() != nil {
				continue
			}
			if !yield(&value, nil) {
				return
			}
		}
	}
}

// AssignFirst decodes the first definition of path into target, or
// returns ErrValueNotFound when no file defines it.
func (l Loader) AssignFirst(path string, target any) error {
	sources, err := l.sources()
	if err != nil {
		return err
	}
	cuePath := cue.ParsePath(path)
	for _, src := range sources {
		value := src.value.LookupPath(cuePath)
		if value.Err() != nil {
			continue
		}
		if err := value.Decode(target); err != nil {
			return fmt.Errorf("decode %s in %s: %w", path, src.path, err)
		}
		return nil
	}
	return ErrValueNotFound
}
