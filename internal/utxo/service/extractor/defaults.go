package extractor

const (
	progressInterval = 100
)
