// Package client is a Go client for the bloodnet HTTP API.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"bloodnet/internal/directory/engine"
	"bloodnet/internal/directory/handler"
	"bloodnet/internal/directory/models"
	"bloodnet/pkg/domain"
	dErrors "bloodnet/pkg/domain-errors"
)

// Client calls a bloodnet server. It is safe for concurrent use.
type Client struct {
	http *resty.Client
}

type Option func(*resty.Client)

func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) { c.SetTimeout(d) }
}

// WithRetries sets how many times a request failing at the transport level
// is retried.
func WithRetries(n int) Option {
	return func(c *resty.Client) { c.SetRetryCount(n) }
}

// New creates a client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(200*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(c)
	}
	return &Client{http: c}
}

// ErrUnavailable marks failures where the server gave no usable answer:
// transport errors and 5xx responses without an error body.
var ErrUnavailable = errors.New("bloodnet server unavailable")

// IsUnavailable reports whether err came from an unreachable or broken server
// rather than a rejected request.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, pathParams map[string]string, result any) error {
	var apiErr errorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		SetQueryParams(nonEmpty(query)).
		SetResult(result).
		SetError(&apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w: %w", path, ErrUnavailable, err)
	}
	if resp.IsError() {
		return toError(resp.StatusCode(), apiErr)
	}
	return nil
}

// toError rebuilds the server's domain error so callers can use
// dErrors.HasCode on client results.
func toError(status int, body errorBody) error {
	if body.Error == "" {
		msg := fmt.Sprintf("unexpected status %d", status)
		if status >= http.StatusInternalServerError {
			return dErrors.Wrap(ErrUnavailable, dErrors.CodeInternal, msg)
		}
		return dErrors.New(dErrors.CodeInternal, msg)
	}
	msg := body.Description
	if msg == "" {
		msg = http.StatusText(status)
	}
	return dErrors.New(dErrors.Code(body.Error), msg)
}

func nonEmpty(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// Districts lists districts whose name contains search, ignoring case.
func (c *Client) Districts(ctx context.Context, search string) ([]domain.District, error) {
	var out handler.DistrictListResponse
	if err := c.get(ctx, "/districts", map[string]string{"q": search}, nil, &out); err != nil {
		return nil, err
	}
	return out.Districts, nil
}

// FindDonors lists donors of bloodGroup in district.
func (c *Client) FindDonors(ctx context.Context, district, bloodGroup string) ([]models.DonorView, error) {
	var out handler.DonorListResponse
	err := c.get(ctx, "/donors/{district}/{bloodGroup}", nil,
		map[string]string{"district": district, "bloodGroup": bloodGroup}, &out)
	if err != nil {
		return nil, err
	}
	return out.Donors, nil
}

// SearchDonors runs an optional-criteria donor search.
func (c *Client) SearchDonors(ctx context.Context, q engine.DonorQuery) ([]models.DonorView, error) {
	var out handler.DonorListResponse
	err := c.get(ctx, "/donors", map[string]string{
		"district":    q.District,
		"blood_group": q.BloodGroup,
		"status":      string(q.Availability),
		"q":           q.Text,
	}, nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Donors, nil
}

// Donor fetches one donor by id.
func (c *Client) Donor(ctx context.Context, id string) (*models.DonorView, error) {
	var out models.DonorView
	if err := c.get(ctx, "/donors/id/{id}", nil, map[string]string{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recency asks whether lastDonated falls inside the recent-donation window.
func (c *Client) Recency(ctx context.Context, lastDonated string) (handler.RecencyResponse, error) {
	var out handler.RecencyResponse
	err := c.get(ctx, "/recency", map[string]string{"last_donated": lastDonated}, nil, &out)
	return out, err
}

func (c *Client) UrgentRequests(ctx context.Context) ([]models.RequestView, error) {
	var out handler.RequestListResponse
	if err := c.get(ctx, "/requests/urgent", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Requests, nil
}

func (c *Client) Requests(ctx context.Context, q engine.RequestQuery) ([]models.RequestView, error) {
	var out handler.RequestListResponse
	err := c.get(ctx, "/requests", map[string]string{
		"district":    q.District,
		"blood_group": q.BloodGroup,
		"urgency":     string(q.Urgency),
	}, nil, &out)
	if err != nil {
		return nil, err
	}
	return out.Requests, nil
}

func (c *Client) BloodBanks(ctx context.Context, district string) ([]models.BloodBank, error) {
	var out handler.BloodBankListResponse
	if err := c.get(ctx, "/facilities/blood-banks", map[string]string{"district": district}, nil, &out); err != nil {
		return nil, err
	}
	return out.BloodBanks, nil
}

func (c *Client) Camps(ctx context.Context) ([]models.DonationCamp, error) {
	var out handler.CampListResponse
	if err := c.get(ctx, "/facilities/camps", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Camps, nil
}

func (c *Client) Helplines(ctx context.Context) ([]models.HelplineView, error) {
	var out handler.HelplineListResponse
	if err := c.get(ctx, "/facilities/helplines", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Helplines, nil
}

func (c *Client) Summary(ctx context.Context) (models.Summary, error) {
	var out models.Summary
	err := c.get(ctx, "/summary", nil, nil, &out)
	return out, err
}

// ExportDonors downloads the xlsx export of a donor listing.
func (c *Client) ExportDonors(ctx context.Context, district, bloodGroup string) ([]byte, error) {
	var apiErr errorBody
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"district": district, "bloodGroup": bloodGroup}).
		SetError(&apiErr).
		Get("/donors/{district}/{bloodGroup}/export")
	if err != nil {
		return nil, fmt.Errorf("export donors: %w: %w", ErrUnavailable, err)
	}
	if resp.IsError() {
		return nil, toError(resp.StatusCode(), apiErr)
	}
	return resp.Body(), nil
}
