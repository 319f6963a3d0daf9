package sessions

import (
	"slices"
	"sync"

	"github.com/reusee/pane/logs"
	"github.com/reusee/pane/paneconfigs"
	"github.com/reusee/pane/protocols"
	"github.com/reusee/pane/screens"
	"github.com/reusee/pane/vars"
)

const Theory = `
# One Session, One Buffer

A session is the meeting point of three parties with different paces: the generator streaming bytes, the chat loop issuing commands, and the preview server answering browsers. The parties agree on a single fact, the raw transcript, and everything else is derived from it on demand.

1. **The writer face**: the session is an io.Writer. Any producer that can write bytes can drive it: a live generation, a stored transcript, a test string. The session does not know or care which.

2. **Derived state is disposable**: every write re-parses the whole buffer and rebuilds the registry. Nothing incremental survives between writes, so a session restored from its transcript is indistinguishable from the live one that produced it.

3. **Regeneration is an edit**: replaying a turn appends to the same buffer, so a regenerated screen arrives as a re-declaration and replaces its previous markup in place. Identity and order hold without the session tracking turns at all.
`

// Session owns one conversation's reconstruction state: the raw
// transcript buffer, its parsed snapshot, and the screen registry
// rebuilt from it. Writes come from a single producer at a time;
// readers (chat commands, the preview server) take snapshots under
// the session lock.
type Session struct {
	logger    logs.Logger
	requested string

	mu         sync.RWMutex
	stream     protocols.Stream
	registry   *screens.Registry
	result     *protocols.Result
	revision   int64
	generating bool
	hotspots   bool
	// anomalies below this index are already logged
	logged   int
	onUpdate []func(*protocols.Result)
}

func (Module) Session(
	logger logs.Logger,
	requested ProjectName,
	hotspots paneconfigs.HotspotsEnabled,
) *Session {
	return &Session{
		logger:    logger,
		requested: string(requested),
		hotspots:  bool(hotspots),
		registry:  screens.NewRegistry(),
		result:    new(protocols.Result),
	}
}

var _ interface {
	Write(p []byte) (int, error)
} = new(Session)

// Write feeds producer output into the transcript. The whole buffer
// is re-parsed and the registry rebuilt, so results never depend on
// where this chunk was cut. New anomalies are logged once, by index
// high-water mark.
func (s *Session) Write(p []byte) (int, error) {
	s.mu.Lock()
	result := s.stream.Feed(string(p))
	s.registry.Rebuild(result)
	s.result = result
	s.revision++
	for _, anomaly := range result.Anomalies[min(s.logged, len(result.Anomalies)):] {
		s.logger.Warn("protocol anomaly",
			"kind", string(anomaly.Kind),
			"screen", anomaly.Screen,
		)
	}
	s.logged = len(result.Anomalies)
	hooks := slices.Clone(s.onUpdate)
	s.mu.Unlock()

	for _, hook := range hooks {
		hook(result)
	}
	return len(p), nil
}

// OnUpdate registers a hook called after every write with the fresh
// snapshot. Hooks run outside the session lock.
func (s *Session) OnUpdate(fn func(*protocols.Result)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = append(s.onUpdate, fn)
}

// Result returns the latest parsed snapshot.
func (s *Session) Result() *protocols.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// Screens returns the registered screens in creation order. Entries
// are snapshots: a later write builds new ones instead of mutating
// these.
func (s *Session) Screens() []*screens.Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.All()
}

func (s *Session) Anomalies() []protocols.Anomaly {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.result.Anomalies)
}

// Buffer returns the raw transcript fed so far.
func (s *Session) Buffer() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stream.Buffer()
}

// Revision counts writes. The preview polls it to know when to
// reload.
func (s *Session) Revision() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// ProjectName resolves the display name: the model's declared name
// wins over the requested one.
func (s *Session) ProjectName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return vars.FirstNonZero(s.result.Name, s.requested)
}

func (s *Session) Generating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generating
}

func (s *Session) setGenerating(yes bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = yes
}

func (s *Session) Hotspots() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hotspots
}

func (s *Session) SetHotspots(yes bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotspots = yes
}

// ToggleHotspots flips the hotspot overlay flag and returns the new
// value.
func (s *Session) ToggleHotspots() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotspots = !s.hotspots
	return s.hotspots
}
