package constants

// Redis key patterns
const (
	// KeySpotCount holds the mirrored surfer count hash for a spot.
	KeySpotCount = "surfsup:spot:%s:count"

	// KeySpotGeo is the geo set holding all spot coordinates.
	KeySpotGeo = "surfsup:spots:geo"
)

// Redis hash fields
const (
	FieldCount       = "count"
	FieldLastUpdated = "last_updated"
)
