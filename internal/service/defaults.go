package service

const (
	defaultFixtureConcurrency    = 10
	defaultTestBlocksConcurrency = 5

	maxLookback uint64 = 1 << 20
)
