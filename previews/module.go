package previews

import (
	"github.com/reusee/dscope"
	"github.com/reusee/pane/sessions"
)

type Module struct {
	dscope.Module
	Sessions sessions.Module
}
