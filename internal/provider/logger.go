package provider

import (
	"log"
	"time"
)

// LogRequest logs an outgoing request to an external data provider.
func LogRequest(provider, method, url string, params map[string]interface{}) {
	if len(params) > 0 {
		log.Printf("[%s] %s %s params=%v", provider, method, url, params)
	} else {
		log.Printf("[%s] %s %s", provider, method, url)
	}
}

// LogResponse logs a response received from an external data provider.
func LogResponse(provider string, statusCode int, duration time.Duration, resultCount int) {
	log.Printf("[%s] response status=%d duration=%dms results=%d",
		provider, statusCode, duration.Milliseconds(), resultCount)
}

// LogError logs an error from a provider operation.
func LogError(provider, operation string, err error) {
	log.Printf("[%s] %s error: %v", provider, operation, err)
}

// LogTransform logs a reshape/transform of provider data.
func LogTransform(provider string, inputCount, outputCount int, duration time.Duration) {
	log.Printf("[%s] transformed %d -> %d records in %dms",
		provider, inputCount, outputCount, duration.Milliseconds())
}

// LogSnapshot logs a snapshot write.
func LogSnapshot(name, path string, rows int) {
	log.Printf("[snapshot] wrote %s (%d rows) to %s", name, rows, path)
}

// LogUpsert logs database upsert operations.
func LogUpsert(table string, count int, duration time.Duration) {
	log.Printf("[publish] upserted %d rows into %s in %dms",
		count, table, duration.Milliseconds())
}
