package generators

import (
	"sync"

	"github.com/reusee/pane/configs"
)

// GeneratorSpec is one entry of the config's generators list, naming
// a provider type plus its client args.
type GeneratorSpec struct {
	Name string `json:"name"`
	Type string `json:"type"`
	GeneratorArgs
}

// GetGeneratorSpecs decodes the generators lists of all config files,
// once per scope.
type GetGeneratorSpecs func() ([]GeneratorSpec, error)

func (Module) GetGeneratorSpecs(
	loader configs.Loader,
) GetGeneratorSpecs {
	return sync.OnceValues(func() ([]GeneratorSpec, error) {
		var all []GeneratorSpec
		for value, err := range loader.IterCueValues("generators") {
			if err != nil {
				return nil, err
			}
			var specs []GeneratorSpec
			if err := value.Decode(&specs); err != nil {
				return nil, err
			}
			all = append(all, specs...)
		}
		return all, nil
	})
}
