package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gallery"

var (
	// UploadDuration tracks the latency of a whole batch upload
	UploadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_duration_seconds",
			Help:      "Duration of batch uploads in seconds",
			Buckets: []float64{
				0.05, // 50ms
				0.1,  // 100ms
				0.25, // 250ms
				0.5,  // 500ms
				1.0,  // 1s
				2.5,  // 2.5s
				5.0,  // 5s
				10.0, // 10s
				30.0, // 30s
			},
		},
		[]string{"outcome"},
	)

	FilesStored = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_stored_total",
		Help:      "Images written to blob storage and recorded",
	})

	CodeRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_code_rejections_total",
		Help:      "Access code validations that failed",
	}, []string{"reason"})

	Compensations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blob_compensations_total",
		Help:      "Blob removals issued to undo a failed write",
	}, []string{"result"})

	Deletions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_deleted_total",
		Help:      "Submissions removed by an admin",
	}, []string{"mode"})
)

// RecordUpload records one upload call and, on success, its file count
func RecordUpload(outcome string, files int, seconds float64) {
	UploadDuration.WithLabelValues(outcome).Observe(seconds)
	if outcome == "success" {
		FilesStored.Add(float64(files))
	}
}

func RecordCodeRejection(reason string) {
	CodeRejections.WithLabelValues(reason).Inc()
}

func RecordCompensation(ok bool) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	Compensations.WithLabelValues(result).Inc()
}

func RecordDeletion(mode string, count int64) {
	Deletions.WithLabelValues(mode).Add(float64(count))
}
