package smsprovider

type Message struct {
	To     string
	Body   string
	Source string
}

type Credentials struct {
	Username string `mapstructure:"username"`
	APIKey   string `mapstructure:"api_key"`
}

type sendRequest struct {
	Messages []messageRequest `json:"messages"`
}

type messageRequest struct {
	To     string `json:"to"`
	Body   string `json:"body"`
	Source string `json:"source"`
}
