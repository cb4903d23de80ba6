package middleware

import "time"

// HTTPCollector интерфейс сборщика HTTP метрик
type HTTPCollector interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}
