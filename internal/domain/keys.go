package domain

// KeyPrefix namespaces all matchdex keys and index names in the store.
const KeyPrefix = "matchdex:"

// Document collection names.
const (
	// CollectionJobs holds job posting documents.
	CollectionJobs = "jobs"
	// CollectionCandidates holds candidate profile documents.
	CollectionCandidates = "candidates"
)
