package koanf

type Postgres struct {
	Host     string `json:"host" koanf:"host"`
	Port     string `json:"port" koanf:"port"`
	Username string `json:"username" koanf:"username"`
	Password string `json:"password" koanf:"password"`
	DB       string `json:"db" koanf:"db"`
	SSLMode  string `json:"sslMode" koanf:"ssl_mode"`
}

type HttpServer struct {
	Address string `json:"address" koanf:"address"`
}

type OpenAI struct {
	Token   string `json:"token" koanf:"token"`
	BaseURL string `json:"baseUrl" koanf:"base_url"`
	Model   string `json:"model" koanf:"model"`
}
