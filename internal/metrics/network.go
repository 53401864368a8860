// internal/metrics/network.go
package metrics

import "github.com/tracelens/tracelens/internal/trace"

// AnalyzeNetwork collects finished resource loads and cache totals. Only
// ResourceFinish events carrying an args.data object contribute; the
// cache hit rate is 0 when no requests finished.
func AnalyzeNetwork(events []trace.Event) NetworkMetrics {
	net := NetworkMetrics{Requests: []NetworkRequest{}}
	cached := 0
	for _, e := range events {
		if e.Name != "ResourceFinish" {
			continue
		}
		data := e.Data()
		if data == nil {
			continue
		}
		var req NetworkRequest
		if url, ok := trace.StringField(data, "url"); ok {
			req.URL = url
		}
		finish, okFinish := trace.FloatField(data, "finishTime")
		start, okStart := trace.FloatField(data, "startTime")
		if okFinish && okStart {
			req.Duration = finish - start
		}
		if size, ok := trace.FloatField(data, "encodedDataLength"); ok {
			req.TransferSize = size
		}
		if fromCache, ok := trace.BoolField(data, "fromCache"); ok {
			req.FromCache = fromCache
		}
		if req.FromCache {
			cached++
		}
		net.TotalTransferSize += req.TransferSize
		net.Requests = append(net.Requests, req)
	}
	if len(net.Requests) > 0 {
		net.CacheHitRate = float64(cached) / float64(len(net.Requests)) * 100
	}
	return net
}
