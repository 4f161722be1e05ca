package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// hiveRecordsCreated counts feeding, harvest and treatment rows written,
	// split by whether they came from an apply-to-all-hives request.
	hiveRecordsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "apiary",
			Subsystem: "service",
			Name:      "hive_records_created_total",
			Help:      "Hive records created, by entity and mode",
		},
		[]string{"entity", "mode"},
	)
)
