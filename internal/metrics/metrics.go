package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhookRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chatbot_webhook_requests_total",
		Help: "Total number of webhook requests received.",
	})

	WebhookFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chatbot_webhook_failures_total",
		Help: "Total number of webhook requests answered with the apology payload.",
	})

	IntentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbot_intents_total",
		Help: "Total number of classified intents, by intent tag.",
	},
		[]string{"intent"},
	)

	CatalogMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbot_catalog_misses_total",
		Help: "Total number of catalog lookups that found nothing, by namespace.",
	},
		[]string{"namespace"},
	)
)
