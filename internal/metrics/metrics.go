package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EndpointResponses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "endpoint_responses_total",
		Help: "The total number of endpoint responses",
	}, []string{"endpoint", "status_code"})

	// Geometry model metrics
	BlocksCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kerma_blocks_created_total",
		Help: "Total number of blocks successfully constructed",
	})

	WarpsMaterialized = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kerma_warps_materialized_total",
		Help: "Total number of warps allocated into block warp caches",
	})

	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kerma_validation_failures_total",
		Help: "Total number of rejected constructions by entity",
	}, []string{"entity"})

	// Last rendered block
	BlockThreads = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kerma_block_threads",
		Help: "Number of threads in the last block served",
	})

	BlockWarps = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kerma_block_warps",
		Help: "Number of warps in the last block served",
	})
)
