package app

const ServiceName = "hpcf-website"

// Set at link time, e.g.
//
//	go build -ldflags="-X 'github.com/KignLeon/hpcf-website/internal/app.GitCommit=$(git rev-parse HEAD)'"
//
// New logs all three.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)
