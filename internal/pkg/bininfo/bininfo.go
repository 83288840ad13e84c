// Version information injected at build time with
//
//	go build -ldflags "-X tasklog.dev/backend/internal/pkg/bininfo.Version=... -X tasklog.dev/backend/internal/pkg/bininfo.BuildTime=..."
//
// Keep the variable names in sync with the build scripts.
package bininfo

const Name = "tasklog"

var (
	// Version is the SemVer version of the binary, optionally suffixed with +<git commit>.
	Version = "v0.0.0"

	// BuildTime is the time at which the application was built.
	BuildTime = "1970-01-01T00:00:00Z"
)
