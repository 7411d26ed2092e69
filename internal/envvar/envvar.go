package envvar

const (
	// ReceptroEnv is the environment variable used to determine the environment
	ReceptroEnv = "RECEPTRO_ENV"

	// ReceptroServerHTTPPort is the environment variable used to determine the HTTP port
	ReceptroServerHTTPPort = "RECEPTRO_SERVER_HTTP_PORT"

	// OpenAIAPIKey is the environment variable holding the OpenAI API key
	OpenAIAPIKey = "OPENAI_API_KEY"
)
