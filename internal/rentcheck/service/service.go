// Package service runs rent assessments for the HTTP handler and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"rentcheck_backend/internal/rentcheck/transport"
	"rentcheck_backend/internal/wws"
	"rentcheck_backend/internal/wws/rules"
	"rentcheck_backend/platform/apperr"
	"rentcheck_backend/platform/config"
	"rentcheck_backend/platform/logger"
	"rentcheck_backend/platform/validator"
)

// Service validates requests, scores units and shapes the responses.
type Service struct {
	engine      *wws.Engine
	val         *validator.Validator
	log         *logger.Logger
	batchLimit  int
	concurrency int
	newID       func() string
}

// New creates a rent check service bound to engine.
func New(engine *wws.Engine, val *validator.Validator, log *logger.Logger, cfg config.BatchConfig) *Service {
	return &Service{
		engine:      engine,
		val:         val,
		log:         log,
		batchLimit:  cfg.GetBatchLimit(),
		concurrency: cfg.GetBatchConcurrency(),
		newID:       uuid.NewString,
	}
}

// Assess validates and scores one unit.
func (s *Service) Assess(ctx context.Context, req transport.AssessRequest) (transport.AssessResponse, error) {
	if err := s.val.Check(req); err != nil {
		return transport.AssessResponse{}, err
	}
	unit, err := ToUnit(req)
	if err != nil {
		return transport.AssessResponse{}, err
	}

	result, err := s.engine.Assess(unit)
	if err != nil {
		if errors.Is(err, wws.ErrUnknownVariant) {
			s.log.WithContext(ctx).Error("rule set is missing a variant", "error", err)
		}
		return transport.AssessResponse{}, err
	}

	resp := ToResponse(s.newID(), result)
	s.log.WithContext(ctx).Assessment(resp.AssessmentID, string(resp.HousingType), string(resp.Regime), result.Breakdown.TotalPoints, resp.RuleYear)
	return resp, nil
}

// AssessBatch scores every item concurrently. Results keep the request order and
// a failing item is reported in place without failing the batch.
func (s *Service) AssessBatch(ctx context.Context, req transport.BatchRequest) (transport.BatchResponse, error) {
	if err := s.val.Check(req); err != nil {
		return transport.BatchResponse{}, err
	}
	if len(req.Items) > s.batchLimit {
		return transport.BatchResponse{}, apperr.Validation(fmt.Sprintf("batch holds %d items, the limit is %d", len(req.Items), s.batchLimit)).
			WithOp("rentcheck.AssessBatch").
			WithDetails([]apperr.FieldError{{Field: "items", Message: fmt.Sprintf("must hold at most %d items", s.batchLimit)}})
	}

	items := make([]transport.BatchItem, len(req.Items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, item := range req.Items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items[i] = s.assessItem(gctx, i, item)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return transport.BatchResponse{}, apperr.Wrap(apperr.KindUnavailable, "batch cancelled", err).WithOp("rentcheck.AssessBatch")
	}

	resp := transport.BatchResponse{Items: items}
	for _, item := range items {
		if item.Error != nil {
			resp.Failed++
		} else {
			resp.Succeeded++
		}
	}
	return resp, nil
}

func (s *Service) assessItem(ctx context.Context, index int, req transport.AssessRequest) transport.BatchItem {
	result, err := s.Assess(ctx, req)
	if err == nil {
		return transport.BatchItem{Index: index, Result: &result}
	}

	var domainErr *apperr.Error
	if errors.As(err, &domainErr) && domainErr.Kind != apperr.KindInternal {
		return transport.BatchItem{Index: index, Error: &transport.ItemError{Error: domainErr.Message, Details: domainErr.Details}}
	}
	s.log.WithContext(ctx).Error("batch item failed", "index", index, "error", err)
	return transport.BatchItem{Index: index, Error: &transport.ItemError{Error: "internal error"}}
}

// Rules summarizes the rule set the engine scores with.
func (s *Service) Rules() transport.RulesResponse {
	rs := s.engine.Rules()
	first, last := rs.RentTable[0], rs.RentTable[len(rs.RentTable)-1]
	return transport.RulesResponse{
		Year:                 rs.Year,
		EffectiveFrom:        rs.EffectiveFrom,
		AvailableYears:       rules.Years(),
		LiberalizationPoints: rs.Regime.LiberalizationPoints,
		CapExemptionRent:     rs.Regime.CapExemptionRent,
		RentTable: transport.RentRange{
			MinPoints: first.Points,
			MinRent:   first.Rent,
			MaxPoints: last.Points,
			MaxRent:   last.Rent,
		},
		BatchLimit: s.batchLimit,
	}
}

// ToResponse derives the presentation fields from an assessment result.
func ToResponse(id string, result *wws.AssessmentResult) transport.AssessResponse {
	resp := transport.AssessResponse{
		AssessmentID: id,
		HousingType:  result.HousingType,
		RuleYear:     result.RuleYear,
		Breakdown:    result.Breakdown,
		Regime:       result.Regime,
		MaxRent:      result.MaxRent,
		CurrentRent:  result.CurrentRent,
		Status:       statusOf(result),
	}
	if overpaying, ok := result.IsOverpaying(); ok {
		resp.IsOverpaying = &overpaying
		overpayment := result.Verdict.Overpayment
		resp.Overpayment = &overpayment
	}
	resp.GaugePercent = gauge(result.CurrentRent, result.MaxRent)
	return resp
}

func statusOf(result *wws.AssessmentResult) transport.Status {
	if result.Regime == wws.RegimeLiberalized {
		return transport.StatusLiberalized
	}
	overpaying, ok := result.IsOverpaying()
	switch {
	case !ok:
		return transport.StatusRegulated
	case overpaying:
		return transport.StatusOverpaying
	default:
		return transport.StatusFairPrice
	}
}

var hundred = decimal.NewFromInt(100)

// gauge is current rent as a percentage of max rent, one decimal, capped at 100.
func gauge(current, maxRent *decimal.Decimal) *float64 {
	if current == nil || maxRent == nil || !maxRent.IsPositive() {
		return nil
	}
	pct, _ := current.Div(*maxRent).Mul(hundred).Round(1).Float64()
	pct = math.Min(pct, 100)
	return &pct
}
