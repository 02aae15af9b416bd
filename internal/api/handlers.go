package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/wallcable/pkg/bom"
	"github.com/matzehuels/wallcable/pkg/buildinfo"
	"github.com/matzehuels/wallcable/pkg/cabling"
	"github.com/matzehuels/wallcable/pkg/errors"
	"github.com/matzehuels/wallcable/pkg/pipeline"
	"github.com/matzehuels/wallcable/pkg/project"
)

// WallRequest describes one wall and the panel it is built from.
type WallRequest struct {
	Project string            `json:"project,omitempty"`
	Panel   cabling.PanelSpec `json:"panel"`
	Wall    project.Wall      `json:"wall"`
}

// CablingResponse is the body of a successful /v1/cabling call.
type CablingResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	InputHash string          `json:"input_hash"`
	Cached    bool            `json:"cached"`
	Cabling   *cabling.Result `json:"cabling"`
	BOM       *bom.List       `json:"bom"`
}

// BOMResponse is the body of a successful /v1/bom call.
type BOMResponse struct {
	Project string               `json:"project"`
	Walls   map[string]*bom.List `json:"walls"`
	Total   *bom.List            `json:"total"`
}

type errorBody struct {
	Error struct {
		Code    errors.Code     `json:"code"`
		Message string          `json:"message"`
		Details []problemDetail `json:"details,omitempty"`
	} `json:"error"`
}

// problemDetail is one validation problem of a request.
type problemDetail struct {
	Code    errors.Code `json:"code"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleCabling(w http.ResponseWriter, r *http.Request) {
	p, err := decodeWall(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	res, err := s.runner.Execute(r.Context(), p, pipeline.Options{})
	if err != nil {
		s.writeError(w, err)
		return
	}
	wr := res.Walls[0]
	writeJSON(w, http.StatusOK, CablingResponse{
		ID:        wr.ID,
		Name:      wr.Name,
		InputHash: wr.InputHash,
		Cached:    wr.CacheInfo.ComputeHit,
		Cabling:   wr.Cabling,
		BOM:       wr.BOM,
	})
}

func (s *Server) handleBOM(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	p, err := project.ParseJSON(data)
	if err != nil {
		s.writeError(w, err)
		return
	}
	res, err := s.runner.Execute(r.Context(), p, pipeline.Options{Walls: r.URL.Query()["wall"]})
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := BOMResponse{Project: res.Project, Walls: make(map[string]*bom.List, len(res.Walls)), Total: res.BOM}
	for _, wr := range res.Walls {
		out.Walls[wr.Name] = wr.BOM
	}
	writeJSON(w, http.StatusOK, out)
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, err)
		return
	}
	power, _ := strconv.ParseBool(q.Get("power"))

	p, err := decodeWall(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	res, err := s.runner.Execute(r.Context(), p, pipeline.Options{
		Formats: []string{format},
		Power:   power,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	data, err := res.Walls[0].Artifact(format)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render"))
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// decodeWall reads a WallRequest and wraps it in a one-wall project.
func decodeWall(w http.ResponseWriter, r *http.Request) (*project.Project, error) {
	data, err := readBody(w, r)
	if err != nil {
		return nil, err
	}
	var req WallRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}

	if req.Project == "" {
		req.Project = "api"
	}
	if req.Wall.Name == "" {
		req.Wall.Name = "wall"
	}
	if req.Panel.Name == "" {
		req.Panel.Name = req.Wall.Panel
	}
	if req.Panel.Name == "" {
		req.Panel.Name = "panel"
	}
	req.Wall.Panel = req.Panel.Name
	if req.Wall.ID == "" {
		req.Wall.ID = project.WallID(req.Project, req.Wall.Name)
	}
	return &project.Project{
		Name:   req.Project,
		Panels: []cabling.PanelSpec{req.Panel},
		Walls:  []project.Wall{req.Wall},
	}, nil
}

// requestField maps a field path of the one-wall project built by
// decodeWall back onto the request body.
func requestField(field string) string {
	for from, to := range map[string]string{"walls[0]": "wall", "panels[0]": "panel"} {
		if rest, ok := strings.CutPrefix(field, from); ok {
			return to + rest
		}
	}
	return field
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body")
	}
	return data, nil
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeNotFound, errors.ErrCodePanelNotFound, errors.ErrCodeWallNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInternal, "":
		return http.StatusInternalServerError
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusBadRequest
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}

	var body errorBody
	body.Error.Code = code
	if code == "" {
		body.Error.Code = errors.ErrCodeInternal
	}
	body.Error.Message = errors.UserMessage(err)
	if probs := errors.Flatten(err); len(probs) > 1 || (len(probs) == 1 && probs[0].Field != "") {
		body.Error.Message = fmt.Sprintf("%d problems", len(probs))
		for _, p := range probs {
			body.Error.Details = append(body.Error.Details, problemDetail{Code: p.Code, Field: requestField(p.Field), Message: p.Message})
		}
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
