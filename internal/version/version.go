package version

// Version is overridable at build time:
//
//	go build -ldflags "-X genomesim/internal/version.Version=v1.2.3"
var Version = "0.2.0"
