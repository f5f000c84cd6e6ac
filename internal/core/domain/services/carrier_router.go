package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// DefaultProbeTimeout bounds each gateway call made while probing.
const DefaultProbeTimeout = 5 * time.Second

var (
	// ErrTrackingLookupFailed is the cause reported when no gateway could resolve a tracking number.
	ErrTrackingLookupFailed = errors.New("tracking lookup failed")

	// ErrCancelFailed is the cause reported when no gateway could cancel a shipment.
	ErrCancelFailed = errors.New("cancel failed")
)

// CarrierRouter picks the gateway for a carrier and probes all gateways when only a
// tracking number is known.
//
// Example:
//
//	router := services.NewCarrierRouter(5*time.Second, postal, express, pickup, api)
//	gw, err := router.Route(carrier.Express)
//	info, err := router.TrackingInfo(ctx, "EX0123456789")
type CarrierRouter struct {
	gateways     []ports.CarrierGateway
	probeTimeout time.Duration
}

// NewCarrierRouter registers gateways in priority order. A non-positive timeout falls back
// to DefaultProbeTimeout.
func NewCarrierRouter(probeTimeout time.Duration, gateways ...ports.CarrierGateway) *CarrierRouter {
	if probeTimeout <= 0 {
		probeTimeout = DefaultProbeTimeout
	}
	return &CarrierRouter{gateways: gateways, probeTimeout: probeTimeout}
}

// Route returns the first gateway that supports carrierType.
func (r *CarrierRouter) Route(carrierType carrier.Type) (ports.CarrierGateway, error) {
	for _, gw := range r.gateways {
		if gw.Supports(carrierType) {
			return gw, nil
		}
	}
	return nil, errs.NewUnsupportedCarrierError(carrierType.String())
}

// Supports reports whether any registered gateway handles carrierType.
func (r *CarrierRouter) Supports(carrierType carrier.Type) bool {
	_, err := r.Route(carrierType)
	return err == nil
}

// GenerateLabel routes the request to its carrier's gateway under the probe timeout. The
// deadline carries carrier.ErrCallTimedOut as its cause.
func (r *CarrierRouter) GenerateLabel(ctx context.Context, req carrier.LabelRequest) (carrier.LabelResponse, error) {
	gw, err := r.Route(req.Carrier)
	if err != nil {
		return carrier.LabelResponse{}, err
	}

	callCtx, cancel := context.WithTimeoutCause(ctx, r.probeTimeout, carrier.ErrCallTimedOut)
	defer cancel()

	return gw.GenerateLabel(callCtx, req)
}

// TrackingInfo asks each gateway in turn and returns the first answer. Gateways that do
// not recognize the number are skipped; when every other gateway failed, the last failure
// is wrapped in the returned error.
func (r *CarrierRouter) TrackingInfo(ctx context.Context, trackingNumber string) (carrier.TrackingInfo, error) {
	var lastErr error
	for _, gw := range r.gateways {
		if err := ctx.Err(); err != nil {
			return carrier.TrackingInfo{}, err
		}

		info, err := probe(ctx, r.probeTimeout, func(c context.Context) (carrier.TrackingInfo, error) {
			return gw.GetTrackingInfo(c, trackingNumber)
		})
		if err == nil {
			return info, nil
		}
		if !errors.Is(err, carrier.ErrTrackingNumberNotRecognized) {
			lastErr = fmt.Errorf("%s: %w", gw.Name(), err)
		}
	}

	return carrier.TrackingInfo{}, probeFailure("tracking lookup", trackingNumber, ErrTrackingLookupFailed, lastErr)
}

// Cancel asks each gateway in turn to cancel the shipment with the same rules as TrackingInfo.
func (r *CarrierRouter) Cancel(ctx context.Context, trackingNumber string) (bool, error) {
	var lastErr error
	for _, gw := range r.gateways {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		ok, err := probe(ctx, r.probeTimeout, func(c context.Context) (bool, error) {
			return gw.CancelShipment(c, trackingNumber)
		})
		if err == nil {
			return ok, nil
		}
		if !errors.Is(err, carrier.ErrTrackingNumberNotRecognized) {
			lastErr = fmt.Errorf("%s: %w", gw.Name(), err)
		}
	}

	return false, probeFailure("cancel", trackingNumber, ErrCancelFailed, lastErr)
}

func probe[T any](ctx context.Context, timeout time.Duration, call func(context.Context) (T, error)) (T, error) {
	callCtx, cancel := context.WithTimeoutCause(ctx, timeout, carrier.ErrCallTimedOut)
	defer cancel()
	return call(callCtx)
}

// probeFailure reports an exhausted probe. Without any concrete failure no gateway
// recognized the number, which is reported as not found.
func probeFailure(op, trackingNumber string, kind, lastErr error) error {
	if lastErr == nil {
		return errs.NewObjectNotFoundErrorWithCause("trackingNumber", trackingNumber,
			fmt.Errorf("%w: %w", kind, carrier.ErrTrackingNumberNotRecognized))
	}
	return errs.NewUpstreamUnavailableError(op, fmt.Errorf("%w: %w", kind, lastErr))
}
