package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var _ TicketAPI = (*Ticket)(nil)

// --- Helpers ---

func basicCred() *Credential {
	return &Credential{Mode: CredentialBasic, Username: "user", Password: "token"}
}

func newTestTicket(handler http.Handler) (*Ticket, *httptest.Server) {
	server := httptest.NewServer(handler)
	ticket := New(server.URL, "PROJ", basicCred(), "")
	return ticket, server
}

// countingHandler wraps a handler and counts the requests it serves.
type countingHandler struct {
	handler http.Handler
	calls   int
}

func (c *countingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.calls++
	if c.handler != nil {
		c.handler.ServeHTTP(w, r)
	}
}

// --- Tests ---

func TestTicketURL(t *testing.T) {
	t.Run("bare id gets project prefix", func(t *testing.T) {
		ticket := New("https://jira.example.com", "PROJ", basicCred(), "7")
		if ticket.TicketID() != "PROJ-7" {
			t.Errorf("expected ticket ID 'PROJ-7', got '%s'", ticket.TicketID())
		}
		if ticket.TicketURL() != "https://jira.example.com/browse/PROJ-7" {
			t.Errorf("unexpected ticket URL: %s", ticket.TicketURL())
		}
	})

	t.Run("prefixed id is not double-prefixed", func(t *testing.T) {
		ticket := New("https://jira.example.com", "PROJ", basicCred(), "PROJ-7")
		if ticket.TicketID() != "PROJ-7" {
			t.Errorf("expected ticket ID 'PROJ-7', got '%s'", ticket.TicketID())
		}
	})

	t.Run("empty when no id set", func(t *testing.T) {
		ticket := New("https://jira.example.com", "PROJ", basicCred(), "")
		if ticket.TicketURL() != "" {
			t.Errorf("expected empty URL, got '%s'", ticket.TicketURL())
		}
	})

	t.Run("recomputed when id changes", func(t *testing.T) {
		ticket := New("https://jira.example.com", "PROJ", basicCred(), "")
		ticket.SetTicketID("42")
		if ticket.TicketURL() != "https://jira.example.com/browse/PROJ-42" {
			t.Errorf("unexpected ticket URL: %s", ticket.TicketURL())
		}
	})
}

func TestTicket_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ticket, server := newTestTicket(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != "POST" || r.URL.Path != "/rest/api/2/issue" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			fields, _ := payload["fields"].(map[string]interface{})
			project, _ := fields["project"].(map[string]interface{})
			if project["key"] != "PROJ" {
				t.Errorf("expected project key 'PROJ', got '%v'", project["key"])
			}
			if _, hasType := fields["type"]; hasType {
				t.Error("expected 'type' to be rewritten to 'issuetype'")
			}
			if _, hasIssueType := fields["issuetype"]; !hasIssueType {
				t.Error("expected 'issuetype' in payload")
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"key": "PROJ-1"})
		}))
		defer server.Close()

		result := ticket.Create(context.Background(), "summary", "description", Fields{"type": "Task"})
		if result.Failed() {
			t.Fatalf("Create() failed: %s", result.ErrorMessage)
		}
		if ticket.TicketID() != "PROJ-1" {
			t.Errorf("expected ticket ID 'PROJ-1', got '%s'", ticket.TicketID())
		}
		if result.URL != server.URL+"/browse/PROJ-1" {
			t.Errorf("unexpected result URL: %s", result.URL)
		}
	})

	t.Run("missing summary fails without network call", func(t *testing.T) {
		counter := &countingHandler{}
		ticket, server := newTestTicket(counter)
		defer server.Close()

		result := ticket.Create(context.Background(), "", "description", nil)
		if !result.Failed() {
			t.Fatal("expected a failure result")
		}
		if result.ErrorMessage != "summary is a necessary parameter for ticket creation" {
			t.Errorf("unexpected error message: %s", result.ErrorMessage)
		}
		if counter.calls != 0 {
			t.Errorf("expected 0 network calls, got %d", counter.calls)
		}
	})

	t.Run("missing description fails without network call", func(t *testing.T) {
		counter := &countingHandler{}
		ticket, server := newTestTicket(counter)
		defer server.Close()

		result := ticket.Create(context.Background(), "summary", "", nil)
		if !result.Failed() {
			t.Fatal("expected a failure result")
		}
		if result.ErrorMessage != "description is a necessary parameter for ticket creation" {
			t.Errorf("unexpected error message: %s", result.ErrorMessage)
		}
		if counter.calls != 0 {
			t.Errorf("expected 0 network calls, got %d", counter.calls)
		}
	})

	t.Run("remote error message is surfaced", func(t *testing.T) {
		ticket, server := newTestTicket(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"errors": map[string]string{"summary": "Field 'summary' is invalid"},
			})
		}))
		defer server.Close()

		result := ticket.Create(context.Background(), "summary", "description", nil)
		if !result.Failed() {
			t.Fatal("expected a failure result")
		}
		if !strings.Contains(result.ErrorMessage, "Field 'summary' is invalid") {
			t.Errorf("expected remote error message, got: %s", result.ErrorMessage)
		}
	})
}

func TestTicket_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ticket, server := newTestTicket(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{"key": "PROJ-1"})
		}))
		defer server.Close()
		ticket.SetTicketID("PROJ-1")

		result := ticket.Get(context.Background())
		if result.Failed() {
			t.Fatalf("Get() failed: %s", result.ErrorMessage)
		}
		if key, _ := result.Content["key"].(string); key != "PROJ-1" {
			t.Errorf("expected content key 'PROJ-1', got '%s'", key)
		}
	})

	t.Run("missing ticket id fails without network call", func(t *testing.T) {
		counter := &countingHandler{}
		ticket, server := newTestTicket(counter)
		defer server.Close()

		result := ticket.Get(context.Background())
		if !result.Failed() {
			t.Fatal("expected a failure result")
		}
		if result.ErrorMessage != missingTicketIDMessage {
			t.Errorf("unexpected error message: %s", result.ErrorMessage)
		}
		if counter.calls != 0 {
			t.Errorf("expected 0 network calls, got %d", counter.calls)
		}
	})
}

func TestTicket_SessionAuth(t *testing.T) {
	t.Run("handshake runs before the first request", func(t *testing.T) {
		handshakes := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/step-auth-gss" {
				handshakes++
				w.WriteHeader(http.StatusOK)
				return
			}
			if handshakes == 0 {
				t.Error("API request issued before auth handshake")
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{"key": "PROJ-1"})
		}))
		defer server.Close()

		ticket := New(server.URL, "PROJ", nil, "PROJ-1")
		if result := ticket.Get(context.Background()); result.Failed() {
			t.Fatalf("Get() failed: %s", result.ErrorMessage)
		}
		if result := ticket.Get(context.Background()); result.Failed() {
			t.Fatalf("second Get() failed: %s", result.ErrorMessage)
		}
		if handshakes != 1 {
			t.Errorf("expected exactly 1 handshake, got %d", handshakes)
		}
	})

	t.Run("handshake failure surfaces on the first operation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/step-auth-gss" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			t.Errorf("unexpected API request after failed handshake: %s", r.URL.Path)
		}))
		defer server.Close()

		ticket := New(server.URL, "PROJ", nil, "PROJ-1")
		result := ticket.Get(context.Background())
		if !result.Failed() {
			t.Fatal("expected a failure result")
		}
	})

	t.Run("basic credentials are sent", func(t *testing.T) {
		ticket, server := newTestTicket(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok || username != "user" || password != "token" {
				t.Errorf("expected basic auth user/token, got %s/%s", username, password)
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{"key": "PROJ-1"})
		}))
		defer server.Close()
		ticket.SetTicketID("PROJ-1")

		if result := ticket.Get(context.Background()); result.Failed() {
			t.Fatalf("Get() failed: %s", result.ErrorMessage)
		}
	})
}

func TestTicket_Verify(t *testing.T) {
	t.Run("valid project", func(t *testing.T) {
		ticket, server := newTestTicket(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/rest/api/2/project/PROJ" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{"key": "PROJ"})
		}))
		defer server.Close()

		if !ticket.VerifyProject(context.Background(), "PROJ") {
			t.Error("expected project to be valid")
		}
	})

	t.Run("unknown ticket", func(t *testing.T) {
		ticket, server := newTestTicket(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"errorMessages": []string{"Issue Does Not Exist"},
			})
		}))
		defer server.Close()

		if ticket.VerifyTicketID(context.Background(), "PROJ-999") {
			t.Error("expected ticket to be invalid")
		}
	})
}

func TestRemoteError(t *testing.T) {
	if msg := remoteError([]byte(`{"errors":{"summary":"bad summary"}}`)); msg != "bad summary" {
		t.Errorf("expected 'bad summary', got '%s'", msg)
	}
	if msg := remoteError([]byte(`{"errorMessages":["first","second"]}`)); msg != "first" {
		t.Errorf("expected 'first', got '%s'", msg)
	}
	if msg := remoteError([]byte(`not json`)); msg != "" {
		t.Errorf("expected empty message, got '%s'", msg)
	}
}
