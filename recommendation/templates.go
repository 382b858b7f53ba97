package recommendation

import "code.cloudfoundry.org/app-perfmon/models"

type template struct {
	category       models.RecommendationCategory
	title          string
	description    string
	impact         models.Level
	effort         models.Level
	improvement    float64
	implementation []string
}

var templates = map[Area]template{
	AreaResponseTime: {
		category:    models.CategoryPerformance,
		title:       "Implement API response caching",
		description: "Average response time is close to its alert threshold. Cache frequently requested, rarely changing responses to cut server work per request.",
		impact:      models.LevelHigh,
		effort:      models.LevelMedium,
		improvement: 40,
		implementation: []string{
			"Identify the slowest read endpoints from recent samples",
			"Add a shared cache with explicit TTLs in front of those endpoints",
			"Set Cache-Control headers for cacheable responses",
			"Invalidate cache entries on writes to the underlying data",
		},
	},
	AreaPageLoadTime: {
		category:    models.CategoryUserExperience,
		title:       "Optimize image loading",
		description: "Pages take long to load. Serve images in modern formats at the rendered size and defer offscreen images.",
		impact:      models.LevelMedium,
		effort:      models.LevelLow,
		improvement: 30,
		implementation: []string{
			"Convert large images to WebP or AVIF",
			"Serve responsive sizes with srcset",
			"Lazy-load images below the fold",
			"Preload the largest contentful paint image",
		},
	},
	AreaCPUUsage: {
		category:    models.CategoryResource,
		title:       "Move heavy work to background processing",
		description: "CPU usage stays high. Offload expensive, non-interactive work from the request path to background workers.",
		impact:      models.LevelHigh,
		effort:      models.LevelHigh,
		improvement: 25,
		implementation: []string{
			"Profile the service to find CPU-heavy request handlers",
			"Move report generation and batch jobs to a queue",
			"Process queued jobs with a bounded worker pool",
		},
	},
	AreaMemoryUsage: {
		category:    models.CategoryResource,
		title:       "Fix memory leaks",
		description: "Memory usage stays high. Look for unbounded caches, retained references and listeners that are never released.",
		impact:      models.LevelMedium,
		effort:      models.LevelMedium,
		improvement: 20,
		implementation: []string{
			"Capture heap profiles under steady load",
			"Bound in-process caches by size and age",
			"Release event listeners and timers on teardown",
		},
	},
	AreaErrorRate: {
		category:    models.CategoryError,
		title:       "Harden error handling",
		description: "The error rate is close to its alert threshold. Add retries with backoff for transient failures and validate inputs early.",
		impact:      models.LevelHigh,
		effort:      models.LevelMedium,
		improvement: 50,
		implementation: []string{
			"Group recent errors by component and message",
			"Retry idempotent downstream calls with backoff",
			"Validate request payloads before processing",
			"Add error boundaries around failing UI components",
		},
	},
}

var genericTemplate = template{
	category:    models.CategoryPerformance,
	title:       "Review application performance",
	description: "A metric is trending towards its alert threshold. Review recent changes affecting it.",
	impact:      models.LevelMedium,
	effort:      models.LevelMedium,
	improvement: 20,
	implementation: []string{
		"Compare the metric before and after recent deployments",
		"Profile the affected code path",
	},
}

func templateFor(area Area) template {
	if t, ok := templates[area]; ok {
		return t
	}
	return genericTemplate
}

func (t template) recommendation(area Area, current float64) *models.OptimizationRecommendation {
	return &models.OptimizationRecommendation{
		Category:    t.category,
		Title:       t.title,
		Description: t.description,
		Impact:      t.impact,
		Effort:      t.effort,
		Metrics: []models.RecommendationMetric{{
			Metric:      string(area),
			Current:     current,
			Target:      current * (1 - t.improvement/100),
			Improvement: t.improvement,
		}},
		Implementation: append([]string(nil), t.implementation...),
	}
}
