package v1handler

import (
	"fmt"
	"io"
	"linkgap/internal/gap"
	"linkgap/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
)

// maxRequestBody caps the analysis request payload. The body is a property
// name plus a short competitor list, so anything bigger is garbage.
const maxRequestBody = 64 << 10

// createAnalysisRequest is the decoded POST /v1/gap-analyses payload.
type createAnalysisRequest struct {
	Property    string
	Competitors []string
	Country     string
	Refresh     bool
}

// decodeCreateAnalysis parses the request payload field by field, rejecting
// unknown keys.
func decodeCreateAnalysis(body []byte) (*createAnalysisRequest, error) {
	var req createAnalysisRequest

	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "property":
			v, err := d.Str()
			if err != nil {
				return fmt.Errorf("property: %w", err)
			}
			req.Property = v
		case "competitors":
			if err := d.Arr(func(d *jx.Decoder) error {
				v, err := d.Str()
				if err != nil {
					return err
				}
				req.Competitors = append(req.Competitors, v)

				return nil
			}); err != nil {
				return fmt.Errorf("competitors: %w", err)
			}
		case "country":
			v, err := d.Str()
			if err != nil {
				return fmt.Errorf("country: %w", err)
			}
			req.Country = v
		case "refresh":
			v, err := d.Bool()
			if err != nil {
				return fmt.Errorf("refresh: %w", err)
			}
			req.Refresh = v
		default:
			return fmt.Errorf("unknown field %q", key)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	if req.Property == "" {
		return nil, fmt.Errorf("property is required")
	}

	return &req, nil
}

// CreateAnalysis runs (or serves from cache) a gap analysis for the property
// in the request body and returns the full result synchronously.
func (h *Handler) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "reading request body"))

		return
	}

	req, err := decodeCreateAnalysis(body)
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}

	result, err := h.deps.Analyzer.Analyze(r.Context(), gap.Request{
		Property:    req.Property,
		Competitors: req.Competitors,
		Country:     req.Country,
		Refresh:     req.Refresh,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetAnalysis returns the cached analysis for a property, or 404 when no
// fresh cached result exists.
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	cached, err := h.deps.Analyzer.CachedAnalysis(r.Context(), r.PathValue("property"))
	if err != nil {
		writeError(w, r, err)

		return
	}
	if cached == nil {
		writeError(w, r, serrors.With(serrors.ErrNotFound, "no cached analysis for this property"))

		return
	}

	writeJSON(w, http.StatusOK, cached.Result)
}
