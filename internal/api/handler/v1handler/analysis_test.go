package v1handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"linkgap/internal/api/handler/v1handler"
	"linkgap/internal/gap"
	mockgap "linkgap/internal/gap/mock"
	"linkgap/pkg/domain"
	"linkgap/pkg/serrors"
	"linkgap/pkg/storage"
)

func newTestMux(t *testing.T) (*mockgap.MockAnalyzer, *http.ServeMux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	analyzer := mockgap.NewMockAnalyzer(ctrl)

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Analyzer: analyzer}).Register(mux)

	return analyzer, mux
}

func doRequest(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func TestCreateAnalysis_Success(t *testing.T) {
	analyzer, mux := newTestMux(t)

	analyzer.EXPECT().
		Analyze(gomock.Any(), gap.Request{
			Property:    "example.com",
			Competitors: []string{"competitor1.com"},
			Country:     "de",
			Refresh:     true,
		}).
		Return(&domain.AnalysisResult{
			UserDomain:       "example.com",
			TotalGaps:        2,
			ThreadStarvation: domain.StarvationModerate,
		}, nil)

	rec := doRequest(mux, http.MethodPost, "/v1/gap-analyses",
		`{"property":"example.com","competitors":["competitor1.com"],"country":"de","refresh":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res domain.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "example.com", res.UserDomain)
	require.Equal(t, 2, res.TotalGaps)
	require.Equal(t, domain.StarvationModerate, res.ThreadStarvation)
}

func TestCreateAnalysis_BadPayloads(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "not json", body: `nope`},
		{name: "missing property", body: `{"competitors":["a.com"]}`},
		{name: "unknown field", body: `{"property":"example.com","depth":3}`},
		{name: "wrong type", body: `{"property":42}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, mux := newTestMux(t)

			rec := doRequest(mux, http.MethodPost, "/v1/gap-analyses", c.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), "BAD_REQUEST")
		})
	}
}

func TestCreateAnalysis_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "property set",
			err:    serrors.With(gap.ErrUnsupportedIdentifier, "property set"),
			status: http.StatusBadRequest,
			code:   "UNSUPPORTED_IDENTIFIER",
		},
		{
			name:   "no competitors",
			err:    serrors.With(gap.ErrNoCompetitors, "none found"),
			status: http.StatusUnprocessableEntity,
			code:   "NO_COMPETITORS",
		},
		{
			name:   "target unreachable",
			err:    serrors.With(gap.ErrTargetUnreachable, "fetch failed"),
			status: http.StatusBadGateway,
			code:   "TARGET_UNREACHABLE",
		},
		{
			name:   "rate limited",
			err:    serrors.With(serrors.ErrRateLimited, "budget exhausted"),
			status: http.StatusTooManyRequests,
			code:   "RATE_LIMITED",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			analyzer, mux := newTestMux(t)
			analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(nil, c.err)

			rec := doRequest(mux, http.MethodPost, "/v1/gap-analyses", `{"property":"example.com"}`)
			require.Equal(t, c.status, rec.Code)
			require.Contains(t, rec.Body.String(), c.code)
		})
	}
}

func TestGetAnalysis_CachedResult(t *testing.T) {
	analyzer, mux := newTestMux(t)

	analyzer.EXPECT().
		CachedAnalysis(gomock.Any(), "example.com").
		Return(&storage.CachedAnalysis{
			Property: "example.com",
			Result: domain.AnalysisResult{
				UserDomain: "example.com",
				TotalGaps:  5,
			},
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	rec := doRequest(mux, http.MethodGet, "/v1/gap-analyses/example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var res domain.AnalysisResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, 5, res.TotalGaps)
}

func TestGetAnalysis_Miss(t *testing.T) {
	analyzer, mux := newTestMux(t)

	analyzer.EXPECT().CachedAnalysis(gomock.Any(), "example.com").Return(nil, nil)

	rec := doRequest(mux, http.MethodGet, "/v1/gap-analyses/example.com", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "NOT_FOUND")
}
