package api

// Request and response shapes for the HireMind backend. Field names follow
// the wire format exactly; optional numeric fields on the dashboard are
// pointers so a zero survives the trip intact.

// AuthRequest is the body of login and register calls. Name is only sent
// when registering.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name,omitempty"`
}

// AuthResponse is the success body of all three auth endpoints.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

// DashboardStats is the body of GET /api/dashboard/stats. Every field may
// be null server-side.
type DashboardStats struct {
	LastATSScore      *float64 `json:"last_ats_score"`
	SessionsCount     *int     `json:"sessions_count"`
	AvgInterviewScore *float64 `json:"avg_interview_score"`
}

// ParseResumeResponse carries the text extracted from an uploaded resume.
type ParseResumeResponse struct {
	Text string `json:"text"`
}

// ScoreRequest is shared by the ATS, feedback, and question endpoints.
type ScoreRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
	Count          int    `json:"count,omitempty"`
}

// ATSResult is the backend's match score and skill gap lists.
type ATSResult struct {
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// Feedback is the qualitative resume review.
type Feedback struct {
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Suggestions    []string `json:"suggestions"`
	Recommendation string   `json:"recommendation"`
}

// QuestionsResponse carries the generated interview questions.
type QuestionsResponse struct {
	Questions []string `json:"questions"`
}

// EvaluateRequest carries one answer plus the resume/job context.
type EvaluateRequest struct {
	Question       string `json:"question"`
	AnswerText     string `json:"answer_text"`
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

// Evaluation is the per-answer score and feedback.
type Evaluation struct {
	Score       float64  `json:"score"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}

// SaveSessionRequest persists a completed interview's summary.
type SaveSessionRequest struct {
	QuestionCount int     `json:"question_count"`
	AverageScore  float64 `json:"average_score"`
}
