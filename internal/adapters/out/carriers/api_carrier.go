package carriers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/httpclient"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var _ ports.CarrierGateway = (*APICarrier)(nil)

const apiCarrierUpstream = "courier_api"

var (
	// ErrCredentialsMissing is the fallback cause when no API key or base URL is configured.
	ErrCredentialsMissing = errors.New("courier api credentials are not configured")

	errUnexpectedStatus = errors.New("unexpected status")
)

// APISettings configures the courier API client.
type APISettings struct {
	BaseURL      string
	APIKey       string
	LabelBaseURL string
	Timeout      time.Duration

	// RatePerSecond and Burst bound outbound calls. A non-positive rate disables the limit.
	RatePerSecond float64
	Burst         int
}

// APICarrier talks to the courier's REST API. Label generation falls back to a
// deterministic simulated label when credentials are missing or the call fails.
type APICarrier struct {
	settings APISettings
	profile  Profile
	pattern  *regexp.Regexp
	client   *http.Client
	limiter  *rate.Limiter
	clock    kernel.Clock
	logger   *zap.Logger
}

// NewAPICarrier builds the courier API client.
func NewAPICarrier(settings APISettings, clock kernel.Clock, logger *zap.Logger) *APICarrier {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.Timeout <= 0 {
		settings.Timeout = 10 * time.Second
	}

	limit := rate.Inf
	if settings.RatePerSecond > 0 {
		limit = rate.Limit(settings.RatePerSecond)
	}
	if settings.Burst <= 0 {
		settings.Burst = 1
	}

	logger = logger.With(zap.String("component", "carrier"), zap.String("carrier", string(carrier.CourierAPI)))
	profile := CourierAPIProfile()
	return &APICarrier{
		settings: settings,
		profile:  profile,
		pattern:  profile.Pattern(),
		client:   httpclient.NewClient(settings.Timeout, logger),
		limiter:  rate.NewLimiter(limit, settings.Burst),
		clock:    clock,
		logger:   logger,
	}
}

func (c *APICarrier) Name() string { return c.profile.DisplayName }

func (c *APICarrier) Supports(carrierType carrier.Type) bool { return carrierType == carrier.CourierAPI }

type apiAddress struct {
	FullName   string `json:"fullName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

type apiLabelRequest struct {
	Reference     string     `json:"reference"`
	From          apiAddress `json:"from"`
	To            apiAddress `json:"to"`
	WeightKg      float64    `json:"weightKg"`
	LengthCm      float64    `json:"lengthCm"`
	WidthCm       float64    `json:"widthCm"`
	HeightCm      float64    `json:"heightCm"`
	PickupPointID string     `json:"pickupPointId,omitempty"`
}

type apiLabelResponse struct {
	TrackingNumber        string    `json:"trackingNumber"`
	LabelURL              string    `json:"labelUrl"`
	Cost                  string    `json:"cost"`
	EstimatedDeliveryDate time.Time `json:"estimatedDeliveryDate"`
}

type apiTrackingResponse struct {
	TrackingNumber        string     `json:"trackingNumber"`
	ShippedAt             *time.Time `json:"shippedAt"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate"`
	DeliveredAt           *time.Time `json:"deliveredAt"`
}

type apiCancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

func toAPIAddress(a kernel.Address) apiAddress {
	return apiAddress{
		FullName:   a.FullName(),
		Street:     a.Street(),
		City:       a.City(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
		Phone:      a.Phone(),
	}
}

// GenerateLabel posts the label request. Any failure other than the caller cancelling ctx
// yields a simulated label; a router's per-call deadline counts as a failure.
func (c *APICarrier) GenerateLabel(ctx context.Context, req carrier.LabelRequest) (carrier.LabelResponse, error) {
	if !c.Supports(req.Carrier) {
		return carrier.LabelResponse{}, errs.NewUnsupportedCarrierError(req.Carrier.String())
	}
	if err := req.Validate(); err != nil {
		return carrier.LabelResponse{}, err
	}
	if !c.configured() {
		return c.simulate(req, ErrCredentialsMissing)
	}

	resp, err := c.requestLabel(ctx, req)
	if err != nil {
		if callerGaveUp(ctx) {
			return carrier.LabelResponse{}, ctx.Err()
		}
		return c.simulate(req, err)
	}
	return resp, nil
}

// callerGaveUp reports a cancelled or expired ctx, except when the only expiry is the
// per-call bound set by the router.
func callerGaveUp(ctx context.Context) bool {
	if ctx.Err() == nil {
		return false
	}
	return !errors.Is(context.Cause(ctx), carrier.ErrCallTimedOut)
}

func (c *APICarrier) requestLabel(ctx context.Context, req carrier.LabelRequest) (carrier.LabelResponse, error) {
	payload := apiLabelRequest{
		Reference:     req.Reference,
		From:          toAPIAddress(req.From),
		To:            toAPIAddress(req.To),
		WeightKg:      req.Dimensions.WeightKg(),
		LengthCm:      req.Dimensions.LengthCm(),
		WidthCm:       req.Dimensions.WidthCm(),
		HeightCm:      req.Dimensions.HeightCm(),
		PickupPointID: req.PickupPointID,
	}

	var body apiLabelResponse
	status, err := c.do(ctx, http.MethodPost, "/labels", payload, &body)
	if err != nil {
		return carrier.LabelResponse{}, err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return carrier.LabelResponse{}, fmt.Errorf("%w %d from label endpoint", errUnexpectedStatus, status)
	}

	cost, err := decimal.NewFromString(body.Cost)
	if err != nil {
		return carrier.LabelResponse{}, fmt.Errorf("parse label cost %q: %w", body.Cost, err)
	}

	resp := carrier.LabelResponse{
		TrackingNumber:        body.TrackingNumber,
		LabelURL:              body.LabelURL,
		Cost:                  cost,
		EstimatedDeliveryDate: body.EstimatedDeliveryDate,
	}
	if err := resp.Validate(); err != nil {
		return carrier.LabelResponse{}, fmt.Errorf("incomplete label response: %w", err)
	}
	return resp, nil
}

// GetTrackingInfo queries the tracking endpoint. There is no simulated fallback.
func (c *APICarrier) GetTrackingInfo(ctx context.Context, trackingNumber string) (carrier.TrackingInfo, error) {
	if !c.pattern.MatchString(trackingNumber) {
		return carrier.TrackingInfo{}, carrier.ErrTrackingNumberNotRecognized
	}
	if !c.configured() {
		return carrier.TrackingInfo{}, errs.NewUpstreamUnavailableError(apiCarrierUpstream, ErrCredentialsMissing)
	}

	var body apiTrackingResponse
	status, err := c.do(ctx, http.MethodGet, "/tracking/"+url.PathEscape(trackingNumber), nil, &body)
	if err != nil {
		return carrier.TrackingInfo{}, errs.NewUpstreamUnavailableError(apiCarrierUpstream, err)
	}
	switch status {
	case http.StatusOK:
	case http.StatusNotFound:
		return carrier.TrackingInfo{}, carrier.ErrTrackingNumberNotRecognized
	default:
		return carrier.TrackingInfo{}, errs.NewUpstreamUnavailableError(apiCarrierUpstream,
			fmt.Errorf("%w %d from tracking endpoint", errUnexpectedStatus, status))
	}

	info := carrier.TrackingInfo{
		TrackingNumber:        trackingNumber,
		CarrierName:           string(carrier.CourierAPI),
		ShippedAt:             body.ShippedAt,
		EstimatedDeliveryDate: body.EstimatedDeliveryDate,
		DeliveredAt:           body.DeliveredAt,
	}
	return info.ComputeDelay(c.clock.Now()), nil
}

// CancelShipment asks the courier to void the shipment. A conflict means the parcel
// can no longer be cancelled.
func (c *APICarrier) CancelShipment(ctx context.Context, trackingNumber string) (bool, error) {
	if !c.pattern.MatchString(trackingNumber) {
		return false, carrier.ErrTrackingNumberNotRecognized
	}
	if !c.configured() {
		return false, errs.NewUpstreamUnavailableError(apiCarrierUpstream, ErrCredentialsMissing)
	}

	var body apiCancelResponse
	status, err := c.do(ctx, http.MethodPost, "/shipments/"+url.PathEscape(trackingNumber)+"/cancel", nil, &body)
	if err != nil {
		return false, errs.NewUpstreamUnavailableError(apiCarrierUpstream, err)
	}
	switch status {
	case http.StatusOK:
		return body.Cancelled, nil
	case http.StatusConflict:
		return false, nil
	case http.StatusNotFound:
		return false, carrier.ErrTrackingNumberNotRecognized
	default:
		return false, errs.NewUpstreamUnavailableError(apiCarrierUpstream,
			fmt.Errorf("%w %d from cancel endpoint", errUnexpectedStatus, status))
	}
}

func (c *APICarrier) configured() bool {
	return c.settings.APIKey != "" && c.settings.BaseURL != ""
}

// do sends a JSON request and decodes a 2xx body into out. Non-2xx bodies are discarded.
func (c *APICarrier) do(ctx context.Context, method, path string, in, out any) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	endpoint := strings.TrimRight(c.settings.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.settings.APIKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil
}

// simulate derives the label from the request reference, so retries for the same
// order yield the same tracking number.
func (c *APICarrier) simulate(req carrier.LabelRequest, cause error) (carrier.LabelResponse, error) {
	cost, err := c.profile.Rates.Price(req.Dimensions.WeightKg())
	if err != nil {
		return carrier.LabelResponse{}, err
	}

	tn := c.profile.trackingNumber(deterministicString(req.Reference, c.profile.Alphabet, c.profile.Length))
	c.logger.Warn("courier api unavailable, issuing simulated label",
		zap.Bool("simulated", true),
		zap.String("tracking_number", tn),
		zap.String("reference", req.Reference),
		zap.Error(cause),
	)

	return carrier.LabelResponse{
		TrackingNumber:        tn,
		LabelURL:              labelURL(c.settings.LabelBaseURL, tn),
		Cost:                  cost,
		EstimatedDeliveryDate: c.profile.EstimatedDelivery(c.clock.Now()),
		Simulated:             true,
	}, nil
}

func deterministicString(seed, alphabet string, n int) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	sum := h.Sum64()

	b := make([]byte, n)
	base := uint64(len(alphabet))
	for i := range b {
		b[i] = alphabet[sum%base]
		sum /= base
		if sum == 0 {
			_, _ = h.Write([]byte{byte(i)})
			sum = h.Sum64()
		}
	}
	return string(b)
}
