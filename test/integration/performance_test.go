package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/country-gallery-api/internal/api"
	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/mocks"
	"github.com/kingrain94/country-gallery-api/internal/service"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

const benchCountryID = "0b6f7d4e-8f0a-4c57-9a11-5c1f3f0e7a21"

func syntheticSubmissions(groups, perGroup int) []domain.Submission {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	subs := make([]domain.Submission, 0, groups*perGroup)
	for g := groups - 1; g >= 0; g-- {
		batchID := fmt.Sprintf("01jb%022d", g)
		caption := fmt.Sprintf("caption %d", g)
		for i := 0; i < perGroup; i++ {
			subs = append(subs, domain.Submission{
				ID:          fmt.Sprintf("sub-%d-%d", g, i),
				CountryID:   benchCountryID,
				BatchID:     &batchID,
				StoragePath: fmt.Sprintf("%s/%s/%d-photo.jpg", benchCountryID, batchID, i),
				Caption:     &caption,
				Approved:    true,
				CreatedAt:   base.Add(time.Duration(g) * time.Minute),
			})
		}
	}
	return subs
}

func syntheticGroups(count int) []domain.Group {
	return service.GroupSubmissions(syntheticSubmissions(count, 3), nil, func(p string) string {
		return "https://cdn.example.com/" + p
	})
}

func galleryRouter(svc api.GalleryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := api.NewGalleryHandler(svc)

	router := gin.New()
	router.GET("/gallery", handler.ListGallery)
	router.GET("/gallery/search", handler.SearchGallery)
	return router
}

func BenchmarkListGallery(b *testing.B) {
	// Setup
	logger.NewLogger("test")
	mockService := new(mocks.GalleryService)
	mockService.On("ListApproved", mock.Anything, benchCountryID).Return(syntheticGroups(50), nil)
	router := galleryRouter(mockService)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/gallery?country_id="+benchCountryID, nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

func BenchmarkSearchGallery(b *testing.B) {
	mockService := new(mocks.GalleryService)
	mockService.On("Search", mock.Anything, benchCountryID, "sunset").Return(syntheticGroups(10), nil)
	router := galleryRouter(mockService)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/gallery/search?country_id="+benchCountryID+"&q=sunset", nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

func BenchmarkGroupSubmissions(b *testing.B) {
	subs := syntheticSubmissions(500, 4)
	publicURL := func(p string) string { return "https://cdn.example.com/" + p }

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		groups := service.GroupSubmissions(subs, nil, publicURL)
		if len(groups) != 500 {
			b.Fatalf("Expected 500 groups, got %d", len(groups))
		}
	}
}

func BenchmarkGroupKeyFromPath(b *testing.B) {
	paths := []string{
		benchCountryID + "/01jbx7h3k2m9q4r5s6t7v8w9xy/0-photo.jpg",
		benchCountryID + "/legacy-photo.jpg",
		"flat.jpg",
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = domain.GroupKeyFromPath(paths[i%len(paths)])
	}
}

// TestHighConcurrencyListGallery drives the gallery read path from many
// goroutines at once.
func TestHighConcurrencyListGallery(t *testing.T) {
	// Arrange
	mockService := new(mocks.GalleryService)
	mockService.On("ListApproved", mock.Anything, benchCountryID).Return(syntheticGroups(20), nil).Run(func(args mock.Arguments) {
		time.Sleep(time.Millisecond)
	})
	router := galleryRouter(mockService)

	numGoroutines := 100
	requestsPerGoroutine := 10
	totalRequests := numGoroutines * requestsPerGoroutine

	var successCount, errorCount int32
	var totalLatency, maxLatency time.Duration
	var mutex sync.Mutex
	var wg sync.WaitGroup

	// Act
	startTime := time.Now()
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < requestsPerGoroutine; j++ {
				reqStart := time.Now()

				req, _ := http.NewRequest(http.MethodGet, "/gallery?country_id="+benchCountryID, nil)
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				latency := time.Since(reqStart)
				mutex.Lock()
				totalLatency += latency
				if latency > maxLatency {
					maxLatency = latency
				}
				mutex.Unlock()

				if w.Code == http.StatusOK {
					atomic.AddInt32(&successCount, 1)
				} else {
					atomic.AddInt32(&errorCount, 1)
				}
			}
		}()
	}
	wg.Wait()
	totalTime := time.Since(startTime)

	avgLatency := totalLatency / time.Duration(totalRequests)
	throughput := float64(totalRequests) / totalTime.Seconds()

	t.Logf("Total requests: %d", totalRequests)
	t.Logf("Throughput: %.2f requests/second", throughput)
	t.Logf("Average latency: %v, max latency: %v", avgLatency, maxLatency)

	// Assert
	assert.Equal(t, int32(totalRequests), successCount)
	assert.Equal(t, int32(0), errorCount)
	assert.Less(t, avgLatency, 100*time.Millisecond)
}
