package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

// handleExtract extracts a structured profile from raw document text.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		reqErr := &RequestError{Message: "invalid request body", Cause: err}
		s.errorResponse(w, HTTPStatus(reqErr), reqErr.Message)
		return
	}
	if err := req.Validate(); err != nil {
		reqErr := &RequestError{Message: "invalid request", Cause: err}
		s.errorResponse(w, HTTPStatus(reqErr), reqErr.Error())
		return
	}

	doc := ingestion.NewDocument(req.SourceFile, req.Text)

	var profile *types.Profile
	if req.Kind == "job" {
		profile = s.builder.JobProfile(doc, nil)
	} else {
		profile = s.builder.CandidateProfile(doc)
	}

	if s.db != nil {
		kind := db.KindCandidate
		if req.Kind == "job" {
			kind = db.KindJob
		}
		if _, err := s.db.SaveProfile(r.Context(), kind, doc.SourceFile, doc.URL, doc.Hash, profile); err != nil {
			log.Printf("Failed to persist profile: %v", err)
		}
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleMatch scores one resume against one job description.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		reqErr := &RequestError{Message: "invalid request body", Cause: err}
		s.errorResponse(w, HTTPStatus(reqErr), reqErr.Message)
		return
	}
	if err := req.Validate(); err != nil {
		reqErr := &RequestError{Message: "invalid request", Cause: err}
		s.errorResponse(w, HTTPStatus(reqErr), reqErr.Error())
		return
	}

	jobDoc, err := s.jobDocument(r.Context(), req.JobText, req.JobURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resumeDoc := ingestion.NewDocument("", req.ResumeText)
	candidate := s.builder.CandidateProfile(resumeDoc)
	job := s.builder.JobProfile(jobDoc, req.RequiredSkills)

	result := s.scorer.OverallFit(r.Context(), candidate, job)

	s.persistMatch(r.Context(), resumeDoc, jobDoc, candidate, job, result)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidate":       candidate,
		"job":             job,
		"result":          result,
		"recommendations": scoring.Recommendations(result),
	})
}

// handleMatchBatch scores many resumes against one job and ranks them.
func (s *Server) handleMatchBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		reqErr := &RequestError{Message: "invalid request body", Cause: err}
		s.errorResponse(w, HTTPStatus(reqErr), reqErr.Message)
		return
	}
	if err := req.Validate(); err != nil {
		reqErr := &RequestError{Message: "invalid request", Cause: err}
		s.errorResponse(w, HTTPStatus(reqErr), reqErr.Error())
		return
	}

	jobDoc, err := s.jobDocument(r.Context(), req.JobText, req.JobURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	job := s.builder.JobProfile(jobDoc, req.RequiredSkills)

	candidates := make([]*types.Profile, len(req.Resumes))
	docs := make([]*ingestion.Document, len(req.Resumes))
	for i, resume := range req.Resumes {
		docs[i] = ingestion.NewDocument(resume.SourceFile, resume.Text)
		candidates[i] = s.builder.CandidateProfile(docs[i])
	}

	ranked, err := scoring.RankCandidates(r.Context(), s.scorer, job, candidates)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if s.db != nil {
		jobID, err := s.db.SaveProfile(r.Context(), db.KindJob, jobDoc.SourceFile, jobDoc.URL, jobDoc.Hash, job)
		if err != nil {
			log.Printf("Failed to persist job profile: %v", err)
		} else {
			byID := make(map[string]int, len(candidates))
			for i, c := range candidates {
				byID[c.ID] = i
			}
			for _, rc := range ranked {
				i := byID[rc.CandidateID]
				candID, err := s.db.SaveProfile(r.Context(), db.KindCandidate,
					docs[i].SourceFile, "", docs[i].Hash, candidates[i])
				if err != nil {
					log.Printf("Failed to persist candidate profile: %v", err)
					continue
				}
				if _, err := s.db.SaveMatchResult(r.Context(), candID, jobID, rc.Result); err != nil {
					log.Printf("Failed to persist match result: %v", err)
				}
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_title":        req.JobTitle,
		"job":              job,
		"total_candidates": len(ranked),
		"matches":          ranked,
	})
}

// jobDocument resolves the job description from inline text or a URL.
func (s *Server) jobDocument(ctx context.Context, jobText, jobURL string) (*ingestion.Document, error) {
	if jobURL != "" {
		return ingestion.FetchJobPosting(ctx, jobURL)
	}
	return ingestion.NewDocument("", jobText), nil
}

// persistMatch stores both profiles and the match result when a database is
// configured. Persistence failures are logged, not surfaced; the match
// response itself does not depend on storage.
func (s *Server) persistMatch(ctx context.Context, resumeDoc, jobDoc *ingestion.Document, candidate, job *types.Profile, result *types.FitResult) {
	if s.db == nil {
		return
	}
	candID, err := s.db.SaveProfile(ctx, db.KindCandidate, resumeDoc.SourceFile, "", resumeDoc.Hash, candidate)
	if err != nil {
		log.Printf("Failed to persist candidate profile: %v", err)
		return
	}
	jobID, err := s.db.SaveProfile(ctx, db.KindJob, jobDoc.SourceFile, jobDoc.URL, jobDoc.Hash, job)
	if err != nil {
		log.Printf("Failed to persist job profile: %v", err)
		return
	}
	if _, err := s.db.SaveMatchResult(ctx, candID, jobID, result); err != nil {
		log.Printf("Failed to persist match result: %v", err)
	}
}

// handleListProfiles lists stored profiles of one kind.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &UnavailableError{Service: "database"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = db.KindCandidate
	}
	if kind != db.KindCandidate && kind != db.KindJob {
		s.errorResponse(w, http.StatusBadRequest, "kind must be candidate or job")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	profiles, err := s.db.ListProfiles(r.Context(), kind, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"kind":     kind,
		"count":    len(profiles),
		"profiles": profiles,
	})
}

// handleGetProfile fetches one stored profile by ID.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &UnavailableError{Service: "database"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile ID")
		return
	}

	profile, err := s.db.GetProfile(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		err := &NotFoundError{Resource: "profile", ID: id.String()}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleDeleteProfile removes a stored profile.
func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &UnavailableError{Service: "database"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile ID")
		return
	}

	if err := s.db.DeleteProfile(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleListJobMatches lists stored match results for one job, best first.
func (s *Server) handleListJobMatches(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &UnavailableError{Service: "database"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	matches, err := s.db.ListMatchesForJob(r.Context(), jobID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":  jobID,
		"count":   len(matches),
		"matches": matches,
	})
}
