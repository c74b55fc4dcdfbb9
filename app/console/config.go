package console

import (
	"github.com/Mbii55/servio-admin-sub000/core/apiclient"
	"github.com/Mbii55/servio-admin-sub000/core/credstore"
	"github.com/Mbii55/servio-admin-sub000/core/routeguard"
	"github.com/Mbii55/servio-admin-sub000/core/session"
	"github.com/Mbii55/servio-admin-sub000/integration/database/redis"
)

// Config composes the configuration of every component the console wires
// together. One Load call populates the whole tree from the environment.
type Config struct {
	API         apiclient.Config
	Credentials credstore.Config
	Redis       redis.Config
	Session     session.Config
	Guard       routeguard.Config

	AppName  string `env:"APP_NAME" envDefault:"servio-admin"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}
