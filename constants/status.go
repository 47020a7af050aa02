package constants

// JobStatus is the canonical status for rows in ingest_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusExtractOK JobStatus = "EXTRACT_OK" // stage 1 completed (text extracted)
	JobStatusParseOK   JobStatus = "PARSE_OK"   // stage 2 completed (items parsed)
	JobStatusDone      JobStatus = "DONE"       // resolution + linkage finished
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)
