package recommendation

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"code.cloudfoundry.org/app-perfmon/alerting"
	"code.cloudfoundry.org/app-perfmon/db"
	"code.cloudfoundry.org/app-perfmon/models"
	"code.cloudfoundry.org/app-perfmon/recommendation/generative"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

const (
	DefaultCallTimeout     = 20 * time.Second
	DefaultFreshnessWindow = 24 * time.Hour
)

//go:embed recommendation.schema.json
var recommendationSchema []byte

type Config struct {
	CallTimeout     time.Duration `yaml:"call_timeout" json:"call_timeout"`
	FreshnessWindow time.Duration `yaml:"freshness_window" json:"freshness_window"`
}

type Engine struct {
	store       db.RecommendationDB
	completer   generative.Completer
	thresholds  alerting.Thresholds
	callTimeout time.Duration
	schema      *gojsonschema.Schema
	clock       clock.Clock
	logger      lager.Logger
}

// NewEngine builds an engine. completer may be nil, in which case every
// recommendation comes from a template.
func NewEngine(store db.RecommendationDB, completer generative.Completer, thresholds alerting.Thresholds, conf Config, clk clock.Clock, logger lager.Logger) (*Engine, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(recommendationSchema))
	if err != nil {
		return nil, err
	}
	callTimeout := conf.CallTimeout
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	return &Engine{
		store:       store,
		completer:   completer,
		thresholds:  thresholds,
		callTimeout: callTimeout,
		schema:      schema,
		clock:       clk,
		logger:      logger.Session("recommendation-engine"),
	}, nil
}

// Recommend returns fresh unchanged when it is non-empty. Otherwise it builds
// one recommendation per problem area in recent and persists them all as
// pending before returning.
func (e *Engine) Recommend(ctx context.Context, recent []*models.Sample, fresh []*models.OptimizationRecommendation) ([]*models.OptimizationRecommendation, error) {
	if len(fresh) > 0 {
		return fresh, nil
	}

	means := ComputeMeans(recent)
	areas := ProblemAreas(means, e.thresholds)
	if len(areas) == 0 {
		return []*models.OptimizationRecommendation{}, nil
	}
	logger := e.logger.Session("recommend", lager.Data{"samples": len(recent), "areas": areas})

	now := e.clock.Now()
	recommendations := make([]*models.OptimizationRecommendation, 0, len(areas))
	for _, area := range areas {
		rec, err := e.generate(ctx, area, means)
		if err != nil {
			logger.Error("falling-back-to-template", err)
			rec = templateFor(area).recommendation(area, means.Of(area))
		}
		rec.ID = uuid.NewString()
		rec.CreatedAt = now
		rec.Status = models.RecommendationStatusPending
		recommendations = append(recommendations, rec)
	}

	if err := e.store.SaveRecommendations(ctx, recommendations); err != nil {
		logger.Error("failed-to-save-recommendations", err)
		return nil, &models.StorageError{Op: "save recommendations", Err: err}
	}
	logger.Info("generated", lager.Data{"count": len(recommendations)})
	return recommendations, nil
}

type generated struct {
	Category       models.RecommendationCategory `json:"category"`
	Title          string                        `json:"title"`
	Description    string                        `json:"description"`
	Impact         models.Level                  `json:"impact"`
	Effort         models.Level                  `json:"effort"`
	Metrics        []models.RecommendationMetric `json:"metrics"`
	Implementation []string                      `json:"implementation"`
}

func (e *Engine) generate(ctx context.Context, area Area, means Means) (*models.OptimizationRecommendation, error) {
	if e.completer == nil {
		return templateFor(area).recommendation(area, means.Of(area)), nil
	}
	wrap := func(err error) error {
		return &models.RecommendationGenerationError{Area: string(area), Err: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()
	text, err := e.completer.Complete(callCtx, BuildPrompt(area, means))
	if err != nil {
		return nil, wrap(err)
	}

	object, err := ExtractJSONObject(text)
	if err != nil {
		return nil, wrap(err)
	}
	result, err := e.schema.Validate(gojsonschema.NewStringLoader(object))
	if err != nil {
		return nil, wrap(err)
	}
	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, v := range result.Errors() {
			violations = append(violations, v.String())
		}
		return nil, wrap(errors.New(strings.Join(violations, "; ")))
	}

	g := generated{}
	if err := json.Unmarshal([]byte(object), &g); err != nil {
		return nil, wrap(fmt.Errorf("decoding recommendation: %w", err))
	}
	return &models.OptimizationRecommendation{
		Category:       g.Category,
		Title:          g.Title,
		Description:    g.Description,
		Impact:         g.Impact,
		Effort:         g.Effort,
		Metrics:        g.Metrics,
		Implementation: g.Implementation,
	}, nil
}
