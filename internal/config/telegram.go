package config

type TelegramConfig struct {
	ApiToken     string `yaml:"token"`
	NotifyChatID int64  `yaml:"notify-chat-id"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

func (t *TelegramConfig) ChatID() int64 {
	return t.NotifyChatID
}
