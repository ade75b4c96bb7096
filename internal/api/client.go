// Package api implements the HTTP client for the HireMind backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// questionCount is the fixed size of a generated interview.
const questionCount = 5

// Error is a non-2xx response from the backend. Detail is the server's
// human-readable message when one was provided.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// Client talks to the HireMind backend. The zero token means requests go
// out unauthenticated; SetToken installs the bearer credential after login.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewClient creates a Client for the given base URL. No timeout is applied;
// every request runs to completion or failure.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// SetToken installs the bearer token used on authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently installed bearer token.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{Status: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &detail) == nil {
			apiErr.Detail = detail.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	in := AuthRequest{Email: email, Password: password}
	if err := c.postJSON(ctx, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and authenticates in one call.
func (c *Client) Register(ctx context.Context, email, password, name string) (*AuthResponse, error) {
	var out AuthResponse
	in := AuthRequest{Email: email, Password: password, Name: name}
	if err := c.postJSON(ctx, "/api/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GoogleSignIn performs the demo SSO flow. No password and no real identity
// verification; the backend mints a session for the given email.
func (c *Client) GoogleSignIn(ctx context.Context, email, name string) (*AuthResponse, error) {
	var out AuthResponse
	in := AuthRequest{Email: email, Name: name}
	if err := c.postJSON(ctx, "/api/auth/google", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardStats fetches the aggregate metrics for the signed-in user.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.get(ctx, "/api/dashboard/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ParseResume uploads the file contents as multipart form data and returns
// the extracted text.
func (c *Client) ParseResume(ctx context.Context, filename string, contents io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, contents); err != nil {
		return "", fmt.Errorf("copy file contents: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finish form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/parse-resume", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out ParseResumeResponse
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

// ATSScore computes the resume/job-description match.
func (c *Client) ATSScore(ctx context.Context, resumeText, jobDescription string) (*ATSResult, error) {
	var out ATSResult
	in := ScoreRequest{ResumeText: resumeText, JobDescription: jobDescription}
	if err := c.postJSON(ctx, "/api/ats-score", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResumeFeedback fetches the qualitative review.
func (c *Client) ResumeFeedback(ctx context.Context, resumeText, jobDescription string) (*Feedback, error) {
	var out Feedback
	in := ScoreRequest{ResumeText: resumeText, JobDescription: jobDescription}
	if err := c.postJSON(ctx, "/api/resume-feedback", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InterviewQuestions generates the fixed-size question list.
func (c *Client) InterviewQuestions(ctx context.Context, resumeText, jobDescription string) ([]string, error) {
	var out QuestionsResponse
	in := ScoreRequest{ResumeText: resumeText, JobDescription: jobDescription, Count: questionCount}
	if err := c.postJSON(ctx, "/api/interview/questions", in, &out); err != nil {
		return nil, err
	}
	return out.Questions, nil
}

// Evaluate scores one answer against its question and the resume context.
func (c *Client) Evaluate(ctx context.Context, req EvaluateRequest) (*Evaluation, error) {
	var out Evaluation
	if err := c.postJSON(ctx, "/api/interview/evaluate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveInterviewSession persists the completed interview summary.
func (c *Client) SaveInterviewSession(ctx context.Context, questionCount int, averageScore float64) error {
	in := SaveSessionRequest{QuestionCount: questionCount, AverageScore: averageScore}
	return c.postJSON(ctx, "/api/interview/save-session", in, nil)
}
