package version

// Version is overridden at build time with
// -ldflags "-X github.com/c9s/bstree/pkg/version.Version=v1.2.3"
var Version = "v0.1.0-dev"
