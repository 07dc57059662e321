package entity

import "time"

type IndexerState struct {
	CreatedAt     time.Time
	ClientVersion string
	DBVersion     int32
	Namespace     string
}

type IndexedBlock struct {
	Height     int64
	EventCount int32
	CreatedAt  time.Time
}
