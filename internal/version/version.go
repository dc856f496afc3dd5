package version

// Version is the build version, set with -ldflags "-X github.com/CameronXie/ecommerce-cli/internal/version.Version=...".
var Version = "dev"
