package yagptclient

import (
	"context"
	"time"

	"github.com/pkg/errors"
	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
)

const (
	generateTimeout = time.Minute

	// температура низкая: рекомендации должны быть воспроизводимыми
	generateTemperature = 0.3
	generateMaxTokens   = 2000
)

type Provider interface {
	GenerateByPromtAndText(promt, text string) (generatedText string, err error)
}

type impl struct {
	client    *yandexgptclient.YandexGPTClient
	catalogID string
}

func NewClient(token, catalog string) Provider {
	return impl{
		client:    yandexgptclient.NewYandexGPTClientWithIAMToken(token),
		catalogID: catalog,
	}
}

// GenerateByPromtAndText отправляет пару системный промпт + текст
// пользователя и возвращает первый вариант ответа модели.
func (i impl) GenerateByPromtAndText(promt, text string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	request := yandexgptclient.YandexGPTRequest{
		ModelURI: yandexgptclient.MakeModelURI(i.catalogID, yandexgptclient.YandexGPTModelLite),
		CompletionOptions: yandexgptclient.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: generateTemperature,
			MaxTokens:   generateMaxTokens,
		},
		Messages: []yandexgptclient.YandexGPTMessage{
			{
				Role: yandexgptclient.YandexGPTMessageRoleSystem,
				Text: promt,
			},
			{
				Role: yandexgptclient.YandexGPTMessageRoleUser,
				Text: text,
			},
		},
	}

	response, err := i.client.CreateRequest(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "ошибка запроса генерации к API YandexGPT")
	}
	if len(response.Result.Alternatives) == 0 {
		return "", errors.New("API YandexGPT вернул пустой ответ")
	}
	return response.Result.Alternatives[0].Message.Text, nil
}
