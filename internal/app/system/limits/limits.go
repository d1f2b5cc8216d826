// internal/app/system/limits/limits.go
package limits

// Request body size limits for the dashboard's form endpoints.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxFormSize is the maximum size for ordinary form submissions
	// (login, registration, admin CRUD).
	MaxFormSize = 1 << 20 // 1 MB

	// MaxPhotoUploadSize is the in-memory budget for attendance photo
	// uploads before multipart parsing spills to disk.
	// Photos come straight off a phone camera, so allow a generous cap.
	MaxPhotoUploadSize = 10 << 20 // 10 MB
)
