package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"ticketctl/internal/telemetry"
)

const missingTicketIDMessage = "no ticket ID associated with ticket object, set one with SetTicketID"

// CredentialMode selects how requests are authenticated.
type CredentialMode int

const (
	// CredentialBasic authenticates every request with a username and
	// password (or API token) via HTTP basic auth.
	CredentialBasic CredentialMode = iota
	// CredentialGSS performs a negotiated handshake against the
	// instance's step-auth-gss endpoint and relies on the resulting
	// session cookie.
	CredentialGSS
)

// Credential carries the authentication mode and, for basic auth, the
// credential pair.
type Credential struct {
	Mode     CredentialMode
	Username string
	Password string
}

// Ticket is a handle on a single Jira ticket. It holds the instance
// URL, the project key, and optionally a ticket ID; the ID may be set
// at construction, via SetTicketID, or by a successful Create.
type Ticket struct {
	BaseURL string
	Project string

	ticketID string
	restURL  string
	cred     Credential
	client   *http.Client

	// sessionReady flips once the GSS handshake has succeeded; the
	// handshake runs lazily before the first request.
	sessionReady bool
}

// New creates a ticket handle for the given Jira instance and project.
// A nil credential selects the negotiated GSS session flavor. ticketID
// may be empty when the handle will be used to create a new ticket.
func New(baseURL, project string, cred *Credential, ticketID string) *Ticket {
	jar, _ := cookiejar.New(nil)
	t := &Ticket{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Project: project,
		client: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
	t.restURL = fmt.Sprintf("%s/rest/api/2/issue", t.BaseURL)
	if cred != nil {
		t.cred = *cred
	} else {
		t.cred = Credential{Mode: CredentialGSS}
	}
	if ticketID != "" {
		t.SetTicketID(ticketID)
	}
	return t
}

// SetTicketID points the handle at an existing ticket. A bare numeric
// ID is prefixed with the project key so the stored ID is always of the
// form KEY-XX.
func (t *Ticket) SetTicketID(ticketID string) {
	t.ticketID = t.normalizeID(ticketID)
}

// TicketID returns the current ticket ID, empty if none is set.
func (t *Ticket) TicketID() string {
	return t.ticketID
}

func (t *Ticket) normalizeID(ticketID string) string {
	if ticketID == "" {
		return ""
	}
	if !strings.Contains(ticketID, "-") {
		return fmt.Sprintf("%s-%s", t.Project, ticketID)
	}
	return ticketID
}

// TicketURL returns the browsable URL for the current ticket, empty
// when no ticket ID is set.
func (t *Ticket) TicketURL() string {
	if t.ticketID == "" {
		return ""
	}
	return fmt.Sprintf("%s/browse/%s", t.BaseURL, t.ticketID)
}

func (t *Ticket) issueURL() string {
	return fmt.Sprintf("%s/%s", t.restURL, t.ticketID)
}

// ensureSession performs the GSS handshake once, before the first
// request. Basic-auth handles skip it entirely.
func (t *Ticket) ensureSession(ctx context.Context) error {
	if t.cred.Mode != CredentialGSS || t.sessionReady {
		return nil
	}

	url := fmt.Sprintf("%s/step-auth-gss", t.BaseURL)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create auth request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute auth handshake: %w", err)
	}
	defer resp.Body.Close()

	slog.Debug("auth handshake", "status_code", resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("auth handshake failed with status: %d", resp.StatusCode)
	}

	t.sessionReady = true
	return nil
}

// newRequest builds a request with auth and the Accept header applied.
func (t *Ticket) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if t.cred.Mode == CredentialBasic {
		req.SetBasicAuth(t.cred.Username, t.cred.Password)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// execute runs the request, records telemetry, and maps any non-2xx
// status to an error carrying the first remote error message.
func (t *Ticket) execute(op string, req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		telemetry.ObserveRequest(op, "error", time.Since(start))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	slog.Debug("ticket api response", "operation", op, "status_code", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		telemetry.ObserveRequest(op, "failure", time.Since(start))
		if msg := remoteError(data); msg != "" {
			return nil, fmt.Errorf("%s (status %d)", msg, resp.StatusCode)
		}
		return nil, fmt.Errorf("request failed with status: %d", resp.StatusCode)
	}

	telemetry.ObserveRequest(op, "success", time.Since(start))
	return data, nil
}

// doJSON issues a JSON request and decodes the JSON response, if any.
func (t *Ticket) doJSON(ctx context.Context, op, method, url string, payload interface{}) (map[string]interface{}, error) {
	if err := t.ensureSession(ctx); err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewBuffer(data)
	}

	req, err := t.newRequest(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	data, err := t.execute(op, req)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}

// remoteError pulls the first human-readable message out of a Jira
// error body, checking the errors map before errorMessages.
func remoteError(body []byte) string {
	var parsed struct {
		Errors        map[string]string `json:"errors"`
		ErrorMessages []string          `json:"errorMessages"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	for _, msg := range parsed.Errors {
		return msg
	}
	if len(parsed.ErrorMessages) > 0 {
		return parsed.ErrorMessages[0]
	}
	return ""
}

func (t *Ticket) success() Result {
	return Result{Status: StatusSuccess, URL: t.TicketURL()}
}

func (t *Ticket) failure(message string) Result {
	slog.Error(message, "ticket", t.ticketID)
	return Result{Status: StatusFailure, ErrorMessage: message, URL: t.TicketURL()}
}

// Get fetches the issue resource for the current ticket into
// Result.Content.
func (t *Ticket) Get(ctx context.Context) Result {
	if t.ticketID == "" {
		return t.failure(missingTicketIDMessage)
	}

	content, err := t.doJSON(ctx, "get", "GET", t.issueURL(), nil)
	if err != nil {
		return t.failure(fmt.Sprintf("error fetching ticket - %v", err))
	}

	result := t.success()
	result.Content = content
	return result
}

// VerifyProject checks whether the given project key exists on the
// instance.
func (t *Ticket) VerifyProject(ctx context.Context, project string) bool {
	url := fmt.Sprintf("%s/rest/api/2/project/%s", t.BaseURL, project)
	if _, err := t.doJSON(ctx, "verify_project", "GET", url, nil); err != nil {
		slog.Error("project is not valid", "project", project, "error", err)
		return false
	}
	slog.Debug("project is valid", "project", project)
	return true
}

// VerifyTicketID checks whether the given ticket exists on the
// instance.
func (t *Ticket) VerifyTicketID(ctx context.Context, ticketID string) bool {
	url := fmt.Sprintf("%s/%s", t.restURL, t.normalizeID(ticketID))
	if _, err := t.doJSON(ctx, "verify_ticket", "GET", url, nil); err != nil {
		slog.Error("ticket is not valid", "ticket", ticketID, "error", err)
		return false
	}
	slog.Debug("ticket is valid", "ticket", ticketID)
	return true
}
