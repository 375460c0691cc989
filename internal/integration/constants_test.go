package integration_test

import "time"

const (
	// Catalog rows seeded by testdata/catalog_up.sql
	TestTheaterId   = 1
	TestScreenId    = 1
	TestSmallScreen = 2
	TestMovieId     = 1
	TestCustomerId  = 1
	OtherCustomerId = 2

	TestMovieDuration = 120 * time.Minute
)

// TestShowStart is far enough ahead that seeded shows never start in the past.
var TestShowStart = time.Date(2095, 1, 1, 18, 0, 0, 0, time.UTC)
