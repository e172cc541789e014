package domain

type Environment string

const (
	EnvProduction  Environment = "production"
	EnvSandbox     Environment = "sandbox"
	EnvStage       Environment = "stage"
	EnvDevelopment Environment = "development"
)

var baseURLs = map[Environment]string{
	EnvProduction: "https://app.tonder.io",
	EnvSandbox:    "https://sandbox.tonder.io",
	EnvStage:      "https://stage.tonder.io",
}

// BaseURL returns the backend root for env. Development points wherever the
// caller says, everything else is fixed.
func BaseURL(env Environment, developmentURL string) (string, bool) {
	if env == EnvDevelopment {
		return developmentURL, developmentURL != ""
	}
	u, ok := baseURLs[env]
	return u, ok
}

func (e Environment) IsProduction() bool {
	return e == EnvProduction
}
