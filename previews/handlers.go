package previews

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/reusee/pane/protocols"
	"github.com/reusee/pane/prototypes"
	"github.com/reusee/pane/screens"
)

func (s *Server) handleShell(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	var buf bytes.Buffer
	_ = shellTmpl.Execute(&buf, struct {
		Title string
	}{
		Title: s.Session().ProjectName(),
	})
	_, _ = w.Write(buf.Bytes())
}

// handlePrototype serves exactly what Export writes to disk. What the
// browser shows is what ships.
func (s *Server) handlePrototype(w http.ResponseWriter, r *http.Request) {
	session := s.Session()
	s.renders.Acquire()
	document := prototypes.Assemble(session.Screens(), s.Profile(), session.ProjectName())
	s.renders.Release()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(document))
}

func (s *Server) handleCanvas(w http.ResponseWriter, r *http.Request) {
	session := s.Session()
	s.renders.Acquire()
	document := prototypes.Canvas(session.Screens(), s.Profile(), session.ProjectName())
	s.renders.Release()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(document))
}

func (s *Server) handleScreens(w http.ResponseWriter, r *http.Request) {
	list := s.Session().Screens()
	if list == nil {
		list = []*screens.Screen{}
	}
	writeJSON(w, list)
}

func (s *Server) handleAnomalies(w http.ResponseWriter, r *http.Request) {
	anomalies := s.Session().Anomalies()
	if anomalies == nil {
		anomalies = []protocols.Anomaly{}
	}
	writeJSON(w, anomalies)
}

type stateResponse struct {
	Project    string `json:"project"`
	Revision   int64  `json:"revision"`
	Generating bool   `json:"generating"`
	Hotspots   bool   `json:"hotspots"`
	Screens    int    `json:"screens"`
	Anomalies  int    `json:"anomalies"`
}

func (s *Server) state() stateResponse {
	session := s.Session()
	return stateResponse{
		Project:    session.ProjectName(),
		Revision:   session.Revision(),
		Generating: session.Generating(),
		Hotspots:   session.Hotspots(),
		Screens:    len(session.Screens()),
		Anomalies:  len(session.Anomalies()),
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.state())
}

func (s *Server) handleHotspots(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.Session().SetHotspots(body.Enabled)
	writeJSON(w, s.state())
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(value)
}
