package tests

import (
	"os"
	"testing"

	. "github.com/trezcool/masomo-layout/apps/api/echo"
	"github.com/trezcool/masomo-layout/core"
)

var (
	app  *Server
	conf *core.Config
)

func TestMain(m *testing.M) {
	conf = &core.Config{
		Env:       "TEST",
		TestMode:  true,
		AppName:   "Masomo",
		SecretKey: "test-secret",
		Server: core.ServerConfig{
			DisableReqLogs: true,
		},
		Branding: core.BrandingConfig{
			Name: "Masomo",
		},
	}

	// set up server
	app = NewServer(ServerDeps{Conf: conf})

	os.Exit(m.Run())
}
