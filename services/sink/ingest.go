// Package sink delivers finished batches: each product goes to the Product
// Ingestion API, and optionally to a local results directory for auditing.
package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"edivaldoleitao/tracksave/internal/scraper"
	"edivaldoleitao/tracksave/logger"
	cerr "edivaldoleitao/tracksave/pkg/errors"
)

// FailureKind classifies why a product was not accepted
type FailureKind string

const (
	FailureConnection FailureKind = "connection"
	FailureTimeout    FailureKind = "timeout"
	FailureStatus     FailureKind = "status"
)

// SendFailure records one rejected product
type SendFailure struct {
	Product scraper.ScrapedProduct
	Kind    FailureKind
	Err     error
}

// SendReport summarizes one batch delivery
type SendReport struct {
	Sent     int
	Failures []SendFailure
}

// IngestClient posts products to the ingestion API, one request per product.
type IngestClient struct {
	baseURL string
	client  *http.Client
}

// NewIngestClient creates a client for the API at baseURL ("http://host/api").
func NewIngestClient(baseURL string, timeout time.Duration) *IngestClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &IngestClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Send posts every product in the batch. One product's failure never stops
// the rest; the report carries the classified failures.
func (c *IngestClient) Send(ctx context.Context, products []scraper.ScrapedProduct) SendReport {
	log := logger.ForSink()
	var report SendReport

	for _, p := range products {
		if err := c.sendOne(ctx, p); err != nil {
			kind := classify(err)
			log.Warn().
				Str("product", p.Name).
				Str("kind", string(kind)).
				Err(err).
				Msg("Ingestion rejected product")
			report.Failures = append(report.Failures, SendFailure{Product: p, Kind: kind, Err: err})
			continue
		}
		report.Sent++
	}

	log.Info().
		Int("sent", report.Sent).
		Int("failed", len(report.Failures)).
		Msg("Batch delivered")
	return report
}

// sendOne posts a single product; only 201 counts as accepted.
func (c *IngestClient) sendOne(ctx context.Context, p scraper.ScrapedProduct) error {
	body, err := json.Marshal(payload(p))
	if err != nil {
		return cerr.NewSubmission(p.Category.String(), "encode product", err)
	}

	url := c.baseURL + "/products/create"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return cerr.NewSubmission(p.Category.String(), "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return cerr.NewSubmission(p.Category.String(), "post product", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return cerr.NewSubmission(p.Category.String(),
			fmt.Sprintf("unexpected status %d", resp.StatusCode), errStatus)
	}
	return nil
}

var errStatus = errors.New("non-201 response")

// payload flattens the product for the ingestion API: the shared fields plus
// the category-specific attributes at the top level.
func payload(p scraper.ScrapedProduct) map[string]interface{} {
	body := map[string]interface{}{
		"name":            p.Name,
		"category":        p.Category.String(),
		"description":     p.Description,
		"image_url":       p.ImageURL,
		"brand":           p.Brand,
		"store":           p.Store,
		"url":             p.URL,
		"available":       p.Available,
		"rating":          p.Rating,
		"value":           p.Value,
		"collection_date": p.CollectionDate,
	}
	for k, v := range p.Specs {
		body[k] = v
	}
	return body
}

// classify maps a submission error to its failure kind
func classify(err error) FailureKind {
	if errors.Is(err, errStatus) {
		return FailureStatus
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	return FailureConnection
}
