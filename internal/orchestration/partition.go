package orchestration

// Chunk is one contiguous sub-interval of the overall range, assigned to
// exactly one worker. Chunks cover the range without gaps or overlaps; the
// final chunk may be shorter than the rest.
type Chunk struct {
	// Index is the worker index this chunk is assigned to (0-based).
	Index int
	// Start is the inclusive lower bound of the chunk.
	Start int64
	// End is the inclusive upper bound of the chunk.
	End int64
}

// ChunkSize returns the per-worker chunk size for the inclusive range
// [start, end] split across workers: ceil(rangeSize / workers).
func ChunkSize(start, end int64, workers int) int64 {
	rangeSize := end - start + 1
	return (rangeSize + int64(workers) - 1) / int64(workers)
}

// Partition splits the inclusive range [start, end] into at most workers
// contiguous equal-sized chunks. When workers does not divide the range size
// evenly the last chunk is clamped to end; when workers exceeds the range
// size, fewer chunks than workers are produced and the surplus workers are
// simply never dispatched.
func Partition(start, end int64, workers int) []Chunk {
	if end < start || workers < 1 {
		return nil
	}
	size := ChunkSize(start, end, workers)
	chunks := make([]Chunk, 0, workers)
	for i := 0; i < workers; i++ {
		chunkStart := start + int64(i)*size
		if chunkStart > end {
			break
		}
		chunkEnd := chunkStart + size - 1
		if chunkEnd > end {
			chunkEnd = end
		}
		chunks = append(chunks, Chunk{Index: i, Start: chunkStart, End: chunkEnd})
	}
	return chunks
}
