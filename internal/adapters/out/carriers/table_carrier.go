package carriers

import (
	"context"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"go.uber.org/zap"
)

var _ ports.CarrierGateway = (*TableCarrier)(nil)

type issuedLabel struct {
	issuedAt time.Time
	estimate time.Time
}

// TableCarrier is a carrier without a remote system: labels are priced from the profile's
// rate table and tracking is answered from the labels it issued.
type TableCarrier struct {
	profile      Profile
	pattern      *regexp.Regexp
	labelBaseURL string
	clock        kernel.Clock
	logger       *zap.Logger

	mu     sync.Mutex
	issued map[string]issuedLabel
}

// NewTableCarrier builds a carrier from profile. Labels are published under labelBaseURL.
func NewTableCarrier(profile Profile, labelBaseURL string, clock kernel.Clock, logger *zap.Logger) *TableCarrier {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TableCarrier{
		profile:      profile,
		pattern:      profile.Pattern(),
		labelBaseURL: labelBaseURL,
		clock:        clock,
		logger:       logger.With(zap.String("component", "carrier"), zap.String("carrier", string(profile.Type))),
		issued:       make(map[string]issuedLabel),
	}
}

// NewPostal is standard post.
func NewPostal(labelBaseURL string, clock kernel.Clock, logger *zap.Logger) *TableCarrier {
	return NewTableCarrier(PostalProfile(), labelBaseURL, clock, logger)
}

// NewExpress is the express courier.
func NewExpress(labelBaseURL string, clock kernel.Clock, logger *zap.Logger) *TableCarrier {
	return NewTableCarrier(ExpressProfile(), labelBaseURL, clock, logger)
}

// NewPickupPoint is the parcel locker network.
func NewPickupPoint(labelBaseURL string, clock kernel.Clock, logger *zap.Logger) *TableCarrier {
	return NewTableCarrier(PickupPointProfile(), labelBaseURL, clock, logger)
}

func (c *TableCarrier) Name() string { return c.profile.DisplayName }

func (c *TableCarrier) Supports(carrierType carrier.Type) bool { return carrierType == c.profile.Type }

// GenerateLabel prices the parcel and issues a fresh tracking number.
func (c *TableCarrier) GenerateLabel(ctx context.Context, req carrier.LabelRequest) (carrier.LabelResponse, error) {
	if err := ctx.Err(); err != nil {
		return carrier.LabelResponse{}, err
	}
	if !c.Supports(req.Carrier) {
		return carrier.LabelResponse{}, errs.NewUnsupportedCarrierError(req.Carrier.String())
	}
	if err := req.Validate(); err != nil {
		return carrier.LabelResponse{}, err
	}
	if c.profile.RequiresPickupPoint && strings.TrimSpace(req.PickupPointID) == "" {
		return carrier.LabelResponse{}, carrier.ErrPickupPointRequired
	}

	cost, err := c.profile.Rates.Price(req.Dimensions.WeightKg())
	if err != nil {
		return carrier.LabelResponse{}, err
	}

	now := c.clock.Now()
	tn := c.profile.trackingNumber(randomString(c.profile.Alphabet, c.profile.Length))
	resp := carrier.LabelResponse{
		TrackingNumber:        tn,
		LabelURL:              labelURL(c.labelBaseURL, tn),
		Cost:                  cost,
		EstimatedDeliveryDate: c.profile.EstimatedDelivery(now),
	}

	c.mu.Lock()
	c.issued[tn] = issuedLabel{issuedAt: now, estimate: resp.EstimatedDeliveryDate}
	c.mu.Unlock()

	c.logger.Info("label issued",
		zap.String("tracking_number", tn),
		zap.String("reference", req.Reference),
		zap.String("cost", cost.StringFixed(2)),
	)
	return resp, nil
}

// GetTrackingInfo reports a label as delivered once its estimate has passed.
func (c *TableCarrier) GetTrackingInfo(ctx context.Context, trackingNumber string) (carrier.TrackingInfo, error) {
	if err := ctx.Err(); err != nil {
		return carrier.TrackingInfo{}, err
	}
	if !c.pattern.MatchString(trackingNumber) {
		return carrier.TrackingInfo{}, carrier.ErrTrackingNumberNotRecognized
	}

	info := carrier.TrackingInfo{
		TrackingNumber: trackingNumber,
		CarrierName:    string(c.profile.Type),
	}

	c.mu.Lock()
	label, ok := c.issued[trackingNumber]
	c.mu.Unlock()
	if !ok {
		return info, nil
	}

	now := c.clock.Now()
	shippedAt, estimate := label.issuedAt, label.estimate
	info.ShippedAt = &shippedAt
	info.EstimatedDeliveryDate = &estimate
	if !now.Before(estimate) {
		info.DeliveredAt = &estimate
	}
	return info.ComputeDelay(now), nil
}

// CancelShipment voids a label. Numbers in the carrier's format are always accepted.
func (c *TableCarrier) CancelShipment(ctx context.Context, trackingNumber string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if !c.pattern.MatchString(trackingNumber) {
		return false, carrier.ErrTrackingNumberNotRecognized
	}

	c.mu.Lock()
	delete(c.issued, trackingNumber)
	c.mu.Unlock()

	c.logger.Info("label cancelled", zap.String("tracking_number", trackingNumber))
	return true, nil
}

func randomString(alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}
