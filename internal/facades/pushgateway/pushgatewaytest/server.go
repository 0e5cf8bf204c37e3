// Package pushgatewaytest provides an in-process push gateway double for tests.
package pushgatewaytest

import (
	"net/http"
	"net/http/httptest"
	"sync"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// Request is one push received by the Server.
type Request struct {
	Method        string
	Path          string
	ContentType   string
	Authorization string
	Username      string
	Password      string
	HasBasicAuth  bool
	TLS           bool
	Families      map[string]*dto.MetricFamily
	ParseErr      error
}

// Server records pushes and answers with a configurable status code.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	status   int
	requests []Request
}

// NewServer starts a plain HTTP double answering 200 OK.
func NewServer() *Server {
	s := &Server{status: http.StatusOK}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// NewTLSServer starts an HTTPS double answering 200 OK.
// Use Client() as the transport to trust its certificate.
func NewTLSServer() *Server {
	s := &Server{status: http.StatusOK}
	s.Server = httptest.NewTLSServer(http.HandlerFunc(s.handle))
	return s
}

// SetStatus changes the status code of subsequent responses.
func (s *Server) SetStatus(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = code
}

// Requests returns a copy of the recorded pushes.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// GaugeValue returns the value of the gauge family name for the series whose
// label key equals value, as seen in the request.
func (r Request) GaugeValue(name, key, value string) (float64, bool) {
	mf, ok := r.Families[name]
	if !ok {
		return 0, false
	}
	for _, m := range mf.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() == key && lp.GetValue() == value {
				return m.GetGauge().GetValue(), true
			}
		}
	}
	return 0, false
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	req := Request{
		Method:        r.Method,
		Path:          r.URL.Path,
		ContentType:   r.Header.Get("Content-Type"),
		Authorization: r.Header.Get("Authorization"),
		TLS:           r.TLS != nil,
	}
	req.Username, req.Password, req.HasBasicAuth = r.BasicAuth()

	var parser expfmt.TextParser
	req.Families, req.ParseErr = parser.TextToMetricFamilies(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, req)
	status := s.status
	s.mu.Unlock()

	w.WriteHeader(status)
}
