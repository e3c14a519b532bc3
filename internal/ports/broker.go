package ports

//go:generate mockgen -source=broker.go -destination=../mocks/broker_mock.go -package=mocks

import "context"

// Producer — контракт отправки сообщений в брокер (например Kafka). Топик задаётся
// при создании реализации (конфиг). Диспетчер после ответа пользователю публикует
// событие через Send; консьюмер живёт в инфраструктуре.
type Producer interface {
	Send(ctx context.Context, key, value []byte) error
}
