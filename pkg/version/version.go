package version

var (
	// Set at build time: -ldflags "-X github.com/selectdb/login_watch/pkg/version.GitTagSha=..."
	GitTagSha = "Git tag sha: Not provided, use Makefile to build"
)

func GetVersion() string {
	return GitTagSha
}
