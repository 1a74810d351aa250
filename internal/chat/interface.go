package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Stateless
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)

	// Sessions
	StartSession(ctx context.Context, input StartSessionInput) (StartSessionOutput, error)
	SendMessage(ctx context.Context, input SendMessageInput) (SendMessageOutput, error)
	GetSession(ctx context.Context, id string) (GetSessionOutput, error)
	EndSession(ctx context.Context, id string) error
}
