// Package store holds the in-memory resume collection, the pointer to the
// document currently being edited, and the transient analysis state.
//
// The store follows a single-editor model: one mutex guards all state,
// every mutation replaces the affected document wholesale and stamps its
// updatedAt, and concurrent writers resolve by last write wins. Mutations
// that target the current document when none is selected are silent no-ops;
// they are counted and logged at debug level rather than returned as errors.
package store

import (
	"slices"
	"sync"

	"resumeforge/internal/errors"
	"resumeforge/internal/resume"
	"resumeforge/internal/types"
	"resumeforge/internal/utils"
)

// Store is the application state container. Construct with New; the zero
// value is not usable.
type Store struct {
	mu sync.Mutex

	resumes   []types.Resume
	currentID string

	activeJob *types.JobDescription
	analysis  *types.ATSAnalysis

	loading map[LoadingFlag]bool

	// skippedMutations counts mutations dropped because no document was
	// selected. Exposed through Stats so the condition is observable.
	skippedMutations uint64

	logger *errors.Logger
}

// New creates an empty store. The logger may be nil in tests.
func New(logger *errors.Logger) *Store {
	return &Store{
		resumes: []types.Resume{},
		loading: make(map[LoadingFlag]bool),
		logger:  logger,
	}
}

// CreateResume appends a fresh empty document, makes it current and
// returns a copy of it.
func (s *Store) CreateResume() types.Resume {
	doc := resume.NewEmpty()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumes = append(s.resumes, doc)
	s.currentID = doc.ID
	return cloneResume(doc)
}

// SaveResume replaces the stored document with the same id wholesale and
// stamps its updatedAt. Unknown ids are ignored.
func (s *Store) SaveResume(doc types.Resume) {
	doc = resume.Normalize(doc)
	doc.UpdatedAt = utils.NowISO()

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resumes {
		if s.resumes[i].ID == doc.ID {
			s.resumes[i] = cloneResume(doc)
			return
		}
	}
	s.debug("save ignored, unknown resume", "resume_id", doc.ID)
}

// ImportResume adds an externally loaded document to the collection and
// makes it current. An existing document with the same id is replaced.
func (s *Store) ImportResume(doc types.Resume) types.Resume {
	doc = resume.Normalize(doc)
	if doc.ID == "" {
		doc.ID = utils.NewID()
	}
	if doc.CreatedAt == "" {
		doc.CreatedAt = utils.NowISO()
	}
	if doc.UpdatedAt == "" {
		doc.UpdatedAt = doc.CreatedAt
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	replaced := false
	for i := range s.resumes {
		if s.resumes[i].ID == doc.ID {
			s.resumes[i] = cloneResume(doc)
			replaced = true
			break
		}
	}
	if !replaced {
		s.resumes = append(s.resumes, cloneResume(doc))
	}
	s.currentID = doc.ID
	return doc
}

// DeleteResume removes the document with the given id. When it was the
// current document the pointer is cleared; otherwise the pointer is kept.
func (s *Store) DeleteResume(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resumes = slices.DeleteFunc(s.resumes, func(r types.Resume) bool {
		return r.ID == id
	})
	if s.currentID == id {
		s.currentID = ""
	}
}

// SetCurrentResumeID moves the current pointer unconditionally; it does not
// verify the id exists.
func (s *Store) SetCurrentResumeID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentID = id
}

// CurrentResumeID returns the current pointer, which may be empty.
func (s *Store) CurrentResumeID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

// CurrentResume returns a copy of the current document, if one is selected
// and present in the collection.
func (s *Store) CurrentResume() (types.Resume, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(s.currentID); i >= 0 {
		return cloneResume(s.resumes[i]), true
	}
	return types.Resume{}, false
}

// Resume returns a copy of the document with the given id.
func (s *Store) Resume(id string) (types.Resume, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return cloneResume(s.resumes[i]), true
	}
	return types.Resume{}, false
}

// Resumes returns a copy of the whole collection in insertion order.
func (s *Store) Resumes() []types.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Resume, len(s.resumes))
	for i, r := range s.resumes {
		out[i] = cloneResume(r)
	}
	return out
}

// SetActiveJobDescription records the posting the next analysis runs
// against.
func (s *Store) SetActiveJobDescription(jd types.JobDescription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := cloneJob(jd)
	s.activeJob = &clone
}

// ActiveJobDescription returns a copy of the active posting, if set.
func (s *Store) ActiveJobDescription() (types.JobDescription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeJob == nil {
		return types.JobDescription{}, false
	}
	return cloneJob(*s.activeJob), true
}

// SetATSAnalysis records the latest analysis result.
func (s *Store) SetATSAnalysis(a types.ATSAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := cloneAnalysis(a)
	s.analysis = &clone
}

// ATSAnalysis returns a copy of the latest analysis result, if any.
func (s *Store) ATSAnalysis() (types.ATSAnalysis, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analysis == nil {
		return types.ATSAnalysis{}, false
	}
	return cloneAnalysis(*s.analysis), true
}

// ApplyAnalysis stores the analysis result and folds its score and the
// extracted keywords into the identified document. It reports whether the
// document was found and updated.
func (s *Store) ApplyAnalysis(resumeID string, a types.ATSAnalysis, keywords []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := cloneAnalysis(a)
	s.analysis = &clone

	i := s.indexOf(resumeID)
	if i < 0 {
		s.debug("analysis not applied, unknown resume", "resume_id", resumeID)
		return false
	}
	score := a.Score
	s.resumes[i].ATSScore = &score
	if keywords != nil {
		s.resumes[i].Keywords = slices.Clone(keywords)
	}
	s.resumes[i].UpdatedAt = utils.NowISO()
	return true
}

// Stats reports collection size and operational counters.
func (s *Store) Stats() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]any{
		"resume_count":      len(s.resumes),
		"current_selected":  s.indexOf(s.currentID) >= 0,
		"has_active_job":    s.activeJob != nil,
		"has_analysis":      s.analysis != nil,
		"skipped_mutations": s.skippedMutations,
	}
}

// SkippedMutations returns how many mutations were dropped for want of a
// current document.
func (s *Store) SkippedMutations() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skippedMutations
}

// indexOf returns the position of id in the collection, or -1.
// Caller must hold the mutex.
func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.resumes, func(r types.Resume) bool {
		return r.ID == id
	})
}

// mutateCurrent runs fn against the current document in place and stamps
// its updatedAt. With no current document it counts the skip and returns.
func (s *Store) mutateCurrent(op string, fn func(*types.Resume)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(s.currentID)
	if i < 0 {
		s.skippedMutations++
		s.debug("mutation skipped, no current resume", "operation", op)
		return
	}
	fn(&s.resumes[i])
	s.resumes[i].UpdatedAt = utils.NowISO()
}

func (s *Store) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func cloneResume(r types.Resume) types.Resume {
	out := r
	out.WorkExperience = slices.Clone(r.WorkExperience)
	for i, exp := range out.WorkExperience {
		out.WorkExperience[i].Achievements = slices.Clone(exp.Achievements)
	}
	out.Education = slices.Clone(r.Education)
	out.Skills = slices.Clone(r.Skills)
	out.Projects = slices.Clone(r.Projects)
	for i, p := range out.Projects {
		out.Projects[i].Technologies = slices.Clone(p.Technologies)
	}
	out.Certifications = slices.Clone(r.Certifications)
	out.Keywords = slices.Clone(r.Keywords)
	if r.ATSScore != nil {
		score := *r.ATSScore
		out.ATSScore = &score
	}
	return out
}

func cloneJob(jd types.JobDescription) types.JobDescription {
	jd.Skills = slices.Clone(jd.Skills)
	jd.Keywords = slices.Clone(jd.Keywords)
	return jd
}

func cloneAnalysis(a types.ATSAnalysis) types.ATSAnalysis {
	a.MissingKeywords = slices.Clone(a.MissingKeywords)
	a.Suggestions = slices.Clone(a.Suggestions)
	a.KeywordMatches = slices.Clone(a.KeywordMatches)
	a.SectionFeedback = slices.Clone(a.SectionFeedback)
	return a
}
