package server

import (
	"net/http"

	"resumeforge/internal/observability"
	"resumeforge/internal/resume"
	"resumeforge/internal/store"
	"resumeforge/internal/types"
)

// resumeWithCompleteness decorates a document with its completeness score
type resumeWithCompleteness struct {
	types.Resume
	Completeness int `json:"completeness"`
}

// createResumeHandler creates a fresh empty document and makes it current
func (s *Server) createResumeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := s.Store.CreateResume()

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(r.Context(), "resume_created", true, om)

		writeJSONResponse(w, http.StatusCreated, doc)
	}
}

// listResumesHandler returns the whole collection in insertion order
func (s *Server) listResumesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, s.Store.Resumes())
}

// getResumeHandler returns one document together with its completeness score
func (s *Server) getResumeHandler(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.Store.Resume(r.PathValue("id"))
	if !ok {
		writeErrorResponse(w, "Resume not found", "no resume with id "+r.PathValue("id"), http.StatusNotFound)
		return
	}

	writeJSONResponse(w, http.StatusOK, resumeWithCompleteness{
		Resume:       doc,
		Completeness: resume.Completeness(doc),
	})
}

// updateResumeHandler replaces a document wholesale
func (s *Server) updateResumeHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.Store.Resume(id); !ok {
		writeErrorResponse(w, "Resume not found", "no resume with id "+id, http.StatusNotFound)
		return
	}

	var doc types.Resume
	if err := parseJSONRequest(r, &doc); err != nil {
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	// The path, not the body, decides which document is replaced
	doc.ID = id
	s.Store.SetLoading(store.FlagSavingResume, true)
	s.Store.SaveResume(doc)
	s.Store.SetLoading(store.FlagSavingResume, false)

	saved, _ := s.Store.Resume(id)
	writeJSONResponse(w, http.StatusOK, saved)
}

// deleteResumeHandler removes a document from the collection
func (s *Server) deleteResumeHandler(w http.ResponseWriter, r *http.Request) {
	s.Store.DeleteResume(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// selectResume makes the identified document current so the store's
// single-editor mutators target it. Writes a 404 when the id is unknown.
func (s *Server) selectResume(w http.ResponseWriter, id string) bool {
	if _, ok := s.Store.Resume(id); !ok {
		writeErrorResponse(w, "Resume not found", "no resume with id "+id, http.StatusNotFound)
		return false
	}
	s.Store.SetCurrentResumeID(id)
	return true
}

// updatePersonalHandler patches the contact block of a document
func (s *Server) updatePersonalHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var patch types.PersonalInfoPatch
	if err := parseJSONRequest(r, &patch); err != nil {
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	if !s.selectResume(w, id) {
		return
	}
	s.Store.UpdatePersonalInfo(patch)

	doc, _ := s.Store.Resume(id)
	writeJSONResponse(w, http.StatusOK, doc)
}

// updateSummaryHandler replaces the summary of a document
func (s *Server) updateSummaryHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req SummaryUpdateRequest
	if err := parseJSONRequest(r, &req); err != nil {
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return
	}

	if !s.selectResume(w, id) {
		return
	}
	s.Store.UpdateSummary(req.Summary)

	doc, _ := s.Store.Resume(id)
	writeJSONResponse(w, http.StatusOK, doc)
}

// addEntryHandler appends an entry to one of the document's sections
func (s *Server) addEntryHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	section := r.PathValue("section")

	var entryID string
	switch section {
	case "experience":
		var entry types.WorkExperience
		if err := parseJSONRequest(r, &entry); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if !s.selectResume(w, id) {
			return
		}
		entryID = s.Store.AddWorkExperience(entry)
	case "education":
		var entry types.Education
		if err := parseJSONRequest(r, &entry); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if !s.selectResume(w, id) {
			return
		}
		entryID = s.Store.AddEducation(entry)
	case "skills":
		var entry types.Skill
		if err := parseJSONRequest(r, &entry); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if !s.selectResume(w, id) {
			return
		}
		entryID = s.Store.AddSkill(entry.Name, entry.Level, entry.Category)
	case "projects":
		var entry types.Project
		if err := parseJSONRequest(r, &entry); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if !s.selectResume(w, id) {
			return
		}
		entryID = s.Store.AddProject(entry)
	case "certifications":
		var entry types.Certification
		if err := parseJSONRequest(r, &entry); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if !s.selectResume(w, id) {
			return
		}
		entryID = s.Store.AddCertification(entry)
	default:
		writeErrorResponse(w, "Unknown section", "section must be one of experience, education, skills, projects, certifications", http.StatusNotFound)
		return
	}

	writeJSONResponse(w, http.StatusCreated, map[string]string{"id": entryID})
}

// patchEntryHandler applies a partial update to a single section entry
func (s *Server) patchEntryHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	section := r.PathValue("section")
	entryID := r.PathValue("entryID")

	switch section {
	case "experience":
		var patch types.WorkExperiencePatch
		if err := parseJSONRequest(r, &patch); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if !s.selectResume(w, id) {
			return
		}
		s.Store.UpdateWorkExperience(entryID, patch)
	case "education":
		var patch types.EducationPatch
		if err := parseJSONRequest(r, &patch); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if !s.selectResume(w, id) {
			return
		}
		s.Store.UpdateEducation(entryID, patch)
	case "skills":
		var patch types.SkillPatch
		if err := parseJSONRequest(r, &patch); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if !s.selectResume(w, id) {
			return
		}
		s.Store.UpdateSkill(entryID, patch)
	case "projects":
		var patch types.ProjectPatch
		if err := parseJSONRequest(r, &patch); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if !s.selectResume(w, id) {
			return
		}
		s.Store.UpdateProject(entryID, patch)
	case "certifications":
		var patch types.CertificationPatch
		if err := parseJSONRequest(r, &patch); err != nil {
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}
		if !s.selectResume(w, id) {
			return
		}
		s.Store.UpdateCertification(entryID, patch)
	default:
		writeErrorResponse(w, "Unknown section", "section must be one of experience, education, skills, projects, certifications", http.StatusNotFound)
		return
	}

	doc, _ := s.Store.Resume(id)
	writeJSONResponse(w, http.StatusOK, doc)
}

// deleteEntryHandler removes a single section entry
func (s *Server) deleteEntryHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	entryID := r.PathValue("entryID")

	if !s.selectResume(w, id) {
		return
	}

	switch r.PathValue("section") {
	case "experience":
		s.Store.DeleteWorkExperience(entryID)
	case "education":
		s.Store.DeleteEducation(entryID)
	case "skills":
		s.Store.DeleteSkill(entryID)
	case "projects":
		s.Store.DeleteProject(entryID)
	case "certifications":
		s.Store.DeleteCertification(entryID)
	default:
		writeErrorResponse(w, "Unknown section", "section must be one of experience, education, skills, projects, certifications", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
