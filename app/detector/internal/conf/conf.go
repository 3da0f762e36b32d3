package conf

type Bootstrap struct {
	Server   *Server   `json:"server"`
	Data     *Data     `json:"data"`
	Detector *Detector `json:"detector"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

type Data struct {
	Database *Database `json:"database"`
}

type Database struct {
	Driver string `json:"driver"`
	Source string `json:"source"`
}

type Detector struct {
	Classifier  *Classifier  `json:"classifier"`
	Sentiment   *Endpoint    `json:"sentiment"`
	Log         *Log         `json:"log"`
	Concurrency *Concurrency `json:"concurrency"`
	Fetch       *Fetch       `json:"fetch"`
}

type Endpoint struct {
	Provider string  `json:"provider"`
	BaseUrl  string  `json:"base_url"`
	ApiKey   string  `json:"api_key"`
	Model    string  `json:"model"`
	Timeout  int32   `json:"timeout"`
	Label    string  `json:"label"`
	Score    float64 `json:"score"`
}

type Classifier struct {
	Endpoint
	Fallback *Endpoint `json:"fallback"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}

type Fetch struct {
	Timeout      int32 `json:"timeout"`
	AllowPrivate bool  `json:"allow_private"`
}
