package jira

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
)

// AddAttachment uploads the file at path as an attachment on the
// current ticket. An unreadable path and a failed upload produce
// distinct failure messages.
func (t *Ticket) AddAttachment(ctx context.Context, path string) Result {
	if t.ticketID == "" {
		return t.failure(missingTicketIDMessage)
	}

	file, err := os.Open(path)
	if err != nil {
		return t.failure(fmt.Sprintf("file %s not found", path))
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return t.failure(fmt.Sprintf("error attaching file %s - %v", path, err))
	}
	if _, err := io.Copy(part, file); err != nil {
		return t.failure(fmt.Sprintf("error attaching file %s - %v", path, err))
	}
	if err := writer.Close(); err != nil {
		return t.failure(fmt.Sprintf("error attaching file %s - %v", path, err))
	}

	if err := t.ensureSession(ctx); err != nil {
		return t.failure(fmt.Sprintf("error attaching file %s - %v", path, err))
	}

	url := fmt.Sprintf("%s/attachments", t.issueURL())
	req, err := t.newRequest(ctx, "POST", url, &buf)
	if err != nil {
		return t.failure(fmt.Sprintf("error attaching file %s - %v", path, err))
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	// Required by the API to bypass XSRF protection on multipart posts.
	req.Header.Set("X-Atlassian-Token", "nocheck")

	if _, err := t.execute("attach", req); err != nil {
		return t.failure(fmt.Sprintf("error attaching file %s - %v", path, err))
	}

	slog.Info("attached file to ticket", "file", path, "ticket", t.ticketID, "url", t.TicketURL())
	return t.success()
}
