package usecase

import "context"

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// Transactor выполняет функцию внутри транзакции хранилища:
// запись продукта и её outbox-событие фиксируются атомарно.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
