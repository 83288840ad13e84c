package appcontext

const (
	EnvServer Env = iota
	EnvLauncher
	EnvCLI
	EnvTest
)

type Env int

type Ctx struct {
	Env Env
}

func Declare(env Env) Ctx {
	return Ctx{
		Env: env,
	}
}

func (e Env) String() string {
	switch e {
	case EnvServer:
		return "server"
	case EnvLauncher:
		return "launcher"
	case EnvCLI:
		return "cli"
	case EnvTest:
		return "test"
	default:
		return "unknown"
	}
}
