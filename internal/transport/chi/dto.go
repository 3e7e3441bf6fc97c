package chi

import (
	dombatch "github.com/talentgrid/resumedex/internal/domain/batch"
	domrank "github.com/talentgrid/resumedex/internal/domain/rank"
	domres "github.com/talentgrid/resumedex/internal/domain/resume"
	healthuc "github.com/talentgrid/resumedex/internal/usecase/health"
)

// errorCode identifies the error class in API responses.
type errorCode string

const (
	codeBadRequest          errorCode = "bad_request"
	codeValidationFailed    errorCode = "validation_failed"
	codeResumeNotFound      errorCode = "resume_not_found"
	codeEmptyJobDescription errorCode = "empty_job_description"
	codeDocumentUnreadable  errorCode = "document_unreadable"
	codeInternalError       errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type analyzeTextRequest struct {
	Text string `json:"text"`
}

type batchRequest struct {
	Items []batchItem `json:"items"`
}

type batchItem struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type batchItemResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type batchResponse struct {
	Items []batchItemResponse `json:"items"`
}

type resumeResponse struct {
	Name       string   `json:"name"`
	Skills     []string `json:"skills"`
	Education  []string `json:"education"`
	Experience []string `json:"experience"`
	RawText    string   `json:"raw_text,omitempty"`
}

type resumeListResponse struct {
	Items      []resumeResponse `json:"items"`
	NextCursor string           `json:"next_cursor,omitempty"`
	HasMore    bool             `json:"has_more"`
}

type rankRequest struct {
	JobDescription string   `json:"job_description"`
	Names          []string `json:"names,omitempty"`
}

type rankedResponse struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type rankResponse struct {
	Results []rankedResponse `json:"results"`
}

type healthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Version string            `json:"version"`
}

func resumeToDTO(rec domres.Record, includeRaw bool) resumeResponse {
	resp := resumeResponse{
		Name:       rec.Name(),
		Skills:     emptyIfNil(rec.Skills()),
		Education:  emptyIfNil(rec.Education()),
		Experience: emptyIfNil(rec.Experience()),
	}
	if includeRaw {
		resp.RawText = rec.RawText()
	}
	return resp
}

func batchToDTO(results []dombatch.Result) batchResponse {
	items := make([]batchItemResponse, len(results))
	for i, res := range results {
		items[i] = batchItemResponse{
			Name:   res.Name(),
			Status: string(res.Status()),
		}
		if res.Err() != nil {
			items[i].Error = res.Err().Error()
		}
	}
	return batchResponse{Items: items}
}

func rankedToDTO(ranked []domrank.Ranked) rankResponse {
	results := make([]rankedResponse, len(ranked))
	for i := range ranked {
		rec := ranked[i].Record()
		results[i] = rankedResponse{Name: rec.Name(), Score: ranked[i].Score()}
	}
	return rankResponse{Results: results}
}

func healthToDTO(report healthuc.Report, version string) healthResponse {
	checks := make(map[string]string, len(report.Checks))
	for name, res := range report.Checks {
		checks[name] = string(res)
	}
	return healthResponse{Status: string(report.Status), Checks: checks, Version: version}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
