package sessions

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusee/pane/phases"
	"github.com/reusee/pane/prototypes"
)

func (Module) ChatCommands(
	session *Session,
	export Export,
) phases.ChatCommands {
	return phases.ChatCommands{

		{
			Name: "/screens",
			Desc: "list the screens parsed so far",
			Run: func(ctx context.Context) (string, error) {
				list := session.Screens()
				if len(list) == 0 {
					return "no screens yet", nil
				}
				var b strings.Builder
				for _, screen := range list {
					fmt.Fprintf(&b, "%s  [%d,%d]  %d bytes",
						screen.ID,
						screen.GridColumn,
						screen.GridRow,
						len(screen.Markup),
					)
					if screen.Root {
						b.WriteString("  root")
					}
					b.WriteByte('\n')
				}
				edges := prototypes.NavigationEdges(list)
				fmt.Fprintf(&b, "%d screens, %d navigation edges", len(list), len(edges))
				return b.String(), nil
			},
		},

		{
			Name: "/anomalies",
			Desc: "list tolerated protocol violations",
			Run: func(ctx context.Context) (string, error) {
				anomalies := session.Anomalies()
				if len(anomalies) == 0 {
					return "no anomalies", nil
				}
				var b strings.Builder
				for i, anomaly := range anomalies {
					if i > 0 {
						b.WriteByte('\n')
					}
					fmt.Fprintf(&b, "%s  %s", anomaly.Kind, anomaly.Screen)
				}
				return b.String(), nil
			},
		},

		{
			Name: "/export",
			Desc: "assemble the prototype and write it to the project directory",
			Run: func(ctx context.Context) (string, error) {
				path, err := export()
				if err != nil {
					return "", err
				}
				return "exported to " + path, nil
			},
		},

		{
			Name: "/hotspots",
			Desc: "toggle hotspot outlines in the preview",
			Run: func(ctx context.Context) (string, error) {
				if session.ToggleHotspots() {
					return "hotspots on", nil
				}
				return "hotspots off", nil
			},
		},
	}
}
