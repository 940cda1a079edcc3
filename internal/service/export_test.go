package service

// SetBatchSize overrides the flush threshold so tests can exercise batching
// without multi-thousand-row fixtures.
func SetBatchSize(s *ImportService, n int) {
	s.batchSize = n
}
