package calendar

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"examsched/internal/pkg/config"
	"examsched/internal/pkg/errs"
	"examsched/internal/usecase/shared"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPClient talks to the external calendar service over its JSON API.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPClient(cfg config.CalendarConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type eventBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

type createResponse struct {
	ID string `json:"id"`
}

func (c *HTTPClient) CreateEvent(ctx context.Context, event shared.CalendarEvent) (string, error) {
	url := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, event.CalendarID)
	resp, err := c.do(ctx, http.MethodPost, url, toBody(event))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", errs.Wrapf(statusError(resp), "create event on calendar %s", event.CalendarID)
	}

	var created createResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", errs.Wrap(err, "decode create event response")
	}
	if created.ID == "" {
		return "", errs.New("calendar returned empty event id")
	}
	return created.ID, nil
}

func (c *HTTPClient) UpdateEvent(ctx context.Context, eventRef string, event shared.CalendarEvent) error {
	url := fmt.Sprintf("%s/calendars/%s/events/%s", c.baseURL, event.CalendarID, eventRef)
	resp, err := c.do(ctx, http.MethodPut, url, toBody(event))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound, http.StatusGone:
		return shared.ErrEventNotFound
	default:
		return errs.Wrapf(statusError(resp), "update event %s on calendar %s", eventRef, event.CalendarID)
	}
}

func (c *HTTPClient) DeleteEvent(ctx context.Context, calendarID, eventRef string) error {
	url := fmt.Sprintf("%s/calendars/%s/events/%s", c.baseURL, calendarID, eventRef)
	resp, err := c.do(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound, http.StatusGone:
		return shared.ErrEventNotFound
	default:
		return errs.Wrapf(statusError(resp), "delete event %s on calendar %s", eventRef, calendarID)
	}
}

func (c *HTTPClient) do(ctx context.Context, method, url string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, errs.Wrap(err, "encode calendar request")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, errs.Wrap(err, "build calendar request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "calendar request failed")
	}
	return resp, nil
}

func toBody(event shared.CalendarEvent) eventBody {
	return eventBody{
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
	}
}

func statusError(resp *http.Response) error {
	// Read a short prefix of the body for diagnostics; errors here are
	// secondary to the status code itself.
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
	return errs.New(fmt.Sprintf("calendar responded %d: %s", resp.StatusCode, string(snippet)))
}
