package plot

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/raykavin/yieldchart/pkg/core"
	"github.com/samber/lo"
)

// handleHealth reports unhealthy until an option has been applied
func (s *ChartServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	lastUpdate := s.chart.LastUpdate()
	if lastUpdate.IsZero() {
		http.Error(w, "no chart option applied", http.StatusServiceUnavailable)
		return
	}

	s.writeJSON(w, map[string]any{
		"surface":     s.chart.Surface().ID(),
		"last_update": lastUpdate,
		"resizes":     s.chart.Resizes(),
		"clients":     s.ws.Clients(),
	})
}

// handleIndex renders the page hosting the chart surface
func (s *ChartServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	err := s.indexHTML.Execute(&buf, map[string]any{
		"page":    s.page,
		"surface": s.chart.Surface().ID(),
		"ws":      "/ws",
	})
	if err != nil {
		s.log.Error("Template execution failed: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.log.Error("Failed writing page: ", err)
	}
}

// handleScript serves the transpiled page script
func (s *ChartServer) handleScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	fmt.Fprint(w, s.scriptContent)
}

// handleOption returns the option currently applied to the chart
func (s *ChartServer) handleOption(w http.ResponseWriter, _ *http.Request) {
	option := s.chart.Option()
	if option == nil {
		http.Error(w, "no chart option applied", http.StatusServiceUnavailable)
		return
	}

	s.writeJSON(w, option)
}

// handleData returns the plotted points
func (s *ChartServer) handleData(w http.ResponseWriter, _ *http.Request) {
	if len(s.points) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	s.writeJSON(w, s.points)
}

// handleHistory handles CSV export of the plotted points
func (s *ChartServer) handleHistory(w http.ResponseWriter, _ *http.Request) {
	if len(s.points) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	buffer := bytes.NewBuffer(nil)
	csvWriter := csv.NewWriter(buffer)

	if err := csvWriter.Write([]string{"date", "value"}); err != nil {
		s.log.Error("Failed writing CSV header: ", err)
		http.Error(w, "Failed to generate CSV", http.StatusInternalServerError)
		return
	}

	rows := lo.Map(s.points, func(p core.DataPoint, _ int) []string {
		return []string{p.Date, FormatValue(p.Value)}
	})
	if err := csvWriter.WriteAll(rows); err != nil {
		s.log.Error("Failed writing CSV data: ", err)
		http.Error(w, "Failed to generate CSV", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment;filename=history.csv")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buffer.Bytes()); err != nil {
		s.log.Error("Failed writing CSV response: ", err)
	}
}

func (s *ChartServer) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("JSON encoding failed: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
