// Package api is the HTTP client for the document question-answering service.
// Every call is a single request/response: no retries, no caching.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"docchat/src/models"
)

// maxErrorBody bounds how much of a failure body is kept on a ServiceError.
const maxErrorBody = 512

// Client talks to the service. The zero value is not usable; use NewClient.
type Client struct {
	baseURL string
	authURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient returns a client for the given base URLs.
// authURL serves /register and /token; baseURL serves everything else.
// A zero timeout leaves requests unbounded.
func NewClient(baseURL, authURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if authURL == "" {
		authURL = baseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		authURL: strings.TrimRight(authURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type ingestResponse struct {
	DocID models.DocumentID `json:"doc_id"`
}

type queryResponse struct {
	Response *models.Answer `json:"response"`
}

// Register creates an account. Any 2xx is success.
func (c *Client) Register(ctx context.Context, username, password string) error {
	_, err := c.postForm(ctx, "register", c.authURL+"/register", credentials(username, password))
	return err
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := c.postForm(ctx, "token", c.authURL+"/token", credentials(username, password))
	if err != nil {
		return "", err
	}
	var out tokenResponse
	if err := decode("token", body, &out); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", &models.ServiceError{Op: "token", StatusCode: http.StatusOK, Body: "response has no access_token"}
	}
	return out.AccessToken, nil
}

// ListDocuments returns the documents the user has uploaded.
func (c *Client) ListDocuments(ctx context.Context, token string) ([]models.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/documents", nil)
	if err != nil {
		return nil, err
	}
	body, err := c.do("documents", req, token)
	if err != nil {
		return nil, err
	}
	var docs []models.Document
	if err := decode("documents", body, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UploadDocument sends a file for ingestion and returns its new id.
func (c *Client) UploadDocument(ctx context.Context, token, filename string, data []byte) (models.DocumentID, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ingest", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	body, err := c.do("ingest", req, token)
	if err != nil {
		return "", err
	}
	var out ingestResponse
	if err := decode("ingest", body, &out); err != nil {
		return "", err
	}
	return out.DocID, nil
}

// FetchDocumentBytes downloads the raw document.
func (c *Client) FetchDocumentBytes(ctx context.Context, token string, id models.DocumentID) ([]byte, error) {
	u := c.baseURL + "/documents/" + url.PathEscape(id.String()) + "/file"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	return c.do("document file", req, token)
}

// AskDocument asks a question grounded in the user's documents.
// An empty id searches across all documents, which is not the same as searching the active one.
func (c *Client) AskDocument(ctx context.Context, token, question string, id models.DocumentID) (models.Answer, error) {
	q := url.Values{}
	q.Set("question", question)
	if id != "" {
		q.Set("doc_id", id.String())
	}
	return c.ask(ctx, "query", c.baseURL+"/query?"+q.Encode(), token)
}

// AskWeb asks a question answered from a web search.
func (c *Client) AskWeb(ctx context.Context, token, question string) (models.Answer, error) {
	q := url.Values{}
	q.Set("question", question)
	return c.ask(ctx, "web-query", c.baseURL+"/web-query?"+q.Encode(), token)
}

func (c *Client) ask(ctx context.Context, op, u, token string) (models.Answer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return models.Answer{}, err
	}
	body, err := c.do(op, req, token)
	if err != nil {
		return models.Answer{}, err
	}
	var out queryResponse
	if err := decode(op, body, &out); err != nil {
		return models.Answer{}, err
	}
	if out.Response == nil {
		return models.Answer{}, &models.ServiceError{Op: op, StatusCode: http.StatusOK, Body: "response has no answer"}
	}
	return *out.Response, nil
}

func (c *Client) postForm(ctx context.Context, op, u string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(op, req, "")
}

// do sends req and returns the body of a 2xx response.
func (c *Client) do(op string, req *http.Request, token string) ([]byte, error) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Request failed", "op", op, "method", req.Method, "path", req.URL.Path, "error", err)
		return nil, &models.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("Reading response failed", "op", op, "status", resp.StatusCode, "error", err)
		return nil, &models.TransportError{Op: op, Err: err}
	}

	elapsed := time.Since(start)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Service returned failure", "op", op, "method", req.Method, "path", req.URL.Path,
			"status", resp.StatusCode, "elapsed", elapsed)
		return nil, &models.ServiceError{Op: op, StatusCode: resp.StatusCode, Body: excerpt(body)}
	}
	c.logger.Info("Request completed", "op", op, "method", req.Method, "path", req.URL.Path,
		"status", resp.StatusCode, "elapsed", elapsed, "bytes", len(body))
	return body, nil
}

func decode(op string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return &models.ServiceError{Op: op, StatusCode: http.StatusOK, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func credentials(username, password string) url.Values {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	return form
}

func excerpt(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody]
	}
	return s
}

// IsTransport reports whether err means no response was received.
func IsTransport(err error) bool {
	var te *models.TransportError
	return errors.As(err, &te)
}
