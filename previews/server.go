package previews

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/reusee/dscope"
	"github.com/reusee/pane/grids"
	"github.com/reusee/pane/logs"
	"github.com/reusee/pane/paneconfigs"
	"github.com/reusee/pane/procs"
	"github.com/reusee/pane/sessions"
	"github.com/reusee/pane/syncs"
)

// Server mirrors a session over HTTP for a local browser. Every
// request reads the session's current snapshot, so the page is as live
// as its polling interval.
type Server struct {
	Addr    dscope.Inject[paneconfigs.PreviewAddr]
	Profile dscope.Inject[grids.Profile]
	Logger  dscope.Inject[logs.Logger]
	Session dscope.Inject[*sessions.Session]

	// bounds concurrent document assembly under polling
	renders syncs.Semaphore
}

func (Module) Server(
	inject dscope.InjectStruct,
) *Server {
	ret := new(Server)
	inject(ret)
	ret.renders = syncs.NewSemaphore(2)
	return ret
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleShell)
	mux.HandleFunc("GET /prototype", s.handlePrototype)
	mux.HandleFunc("GET /canvas", s.handleCanvas)
	mux.HandleFunc("GET /screens.json", s.handleScreens)
	mux.HandleFunc("GET /anomalies", s.handleAnomalies)
	mux.HandleFunc("GET /state", s.handleState)
	mux.HandleFunc("POST /hotspots", s.handleHotspots)
	return withSecurityHeaders(mux)
}

// withSecurityHeaders keeps the preview browsable while pinning it to
// this origin. Inline style and script stay allowed: both the shell
// and the assembled document embed theirs.
func withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Content-Security-Policy",
			"default-src 'self'; style-src 'self' 'unsafe-inline'; script-src 'self' 'unsafe-inline'; img-src * data:; base-uri 'none'; frame-ancestors 'self'")
		next.ServeHTTP(w, r)
	})
}

// Run binds the preview address and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {

	var listener net.Listener

	var proc procs.Proc[context.Context] = procs.Procs[context.Context]{

		// bind
		procs.Func[context.Context](func(ctx context.Context) (procs.Proc[context.Context], error) {
			var err error
			listener, err = net.Listen("tcp", string(s.Addr()))
			if err != nil {
				return nil, wrap(err)
			}
			s.Logger().Info("preview listening",
				"url", "http://"+listener.Addr().String(),
			)
			return nil, nil
		}),

		// serve
		procs.Func[context.Context](func(ctx context.Context) (procs.Proc[context.Context], error) {
			server := &http.Server{
				Handler: s.Handler(),
			}
			go func() {
				<-ctx.Done()
				server.Close()
			}()
			err := server.Serve(listener)
			if errors.Is(err, http.ErrServerClosed) || ctx.Err() != nil {
				return nil, nil
			}
			return nil, wrap(err)
		}),
	}

	for proc != nil {
		var err error
		proc, err = proc.Run(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}
