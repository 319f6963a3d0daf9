package attachments

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pane/generators"
)

type Module struct {
	dscope.Module
	Generators generators.Module
}
