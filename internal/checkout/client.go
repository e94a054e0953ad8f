package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	reqdto "experience-booking/internal/handler/dto/request"
	resdto "experience-booking/internal/handler/dto/response"

	"github.com/google/uuid"
)

// APIError is a non-2xx reply from the booking API, carrying the {"error"}
// body when one was sent.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// APIClient is a typed client for the booking API, the counterpart of the
// storefront's fetch calls.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *APIClient) Experiences(ctx context.Context) ([]*resdto.ExperienceResponse, error) {
	var out []*resdto.ExperienceResponse
	if err := c.do(ctx, http.MethodGet, "/api/experiences", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) Experience(ctx context.Context, id uuid.UUID) (*resdto.ExperienceResponse, error) {
	var out resdto.ExperienceResponse
	if err := c.do(ctx, http.MethodGet, "/api/experiences/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) Slots(ctx context.Context, experienceID uuid.UUID) ([]*resdto.SlotResponse, error) {
	var out []*resdto.SlotResponse
	if err := c.do(ctx, http.MethodGet, "/api/experiences/"+experienceID.String()+"/slots", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) ValidatePromo(ctx context.Context, code string) (*resdto.PromoCodeResponse, error) {
	var out resdto.PromoCodeResponse
	body := reqdto.ValidatePromoCodeRequest{Code: strings.ToUpper(code)}
	if err := c.do(ctx, http.MethodPost, "/api/promo/validate", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) CreateBooking(ctx context.Context, payload reqdto.CreateBookingRequest) (*resdto.BookingResponse, error) {
	var out resdto.BookingResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(res.Body).Decode(&errBody); decodeErr == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
