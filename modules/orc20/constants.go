package orc20

import "time"

const (
	ClientVersion = "v0.1.0"
	DBVersion     = 1

	// DefaultStartHeight is the block of the first ORC-20 deploy inscription.
	DefaultStartHeight = 787606

	DefaultPollingInterval  = 60 * time.Second
	DefaultPrefetchBlocks   = 8
	DefaultStoreConcurrency = 100
	DefaultPebblePath       = "./data/orc20"
)
