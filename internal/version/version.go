package version

// Version is the application version, overridable at build time via
// -ldflags "-X countryservice/internal/version.Version=...".
var Version = "1.0.0"
