package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchesTotal counts searches by model, chat mode, and outcome
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "youchat_searches_total",
		Help: "Total searches by model, chat mode, and outcome",
	}, []string{"model", "chat_mode", "status"})

	// searchDuration tracks end-to-end search latency, stream included
	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "youchat_search_duration_seconds",
		Help:    "End-to-end search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 10), // 250ms to ~2m
	}, []string{"model"})

	// answerTokens tracks fragments delivered per successful search
	answerTokens = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "youchat_answer_tokens",
		Help:    "Answer fragments delivered per successful search",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
)
