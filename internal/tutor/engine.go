// Package tutor implements the conversation engine of the Spanish tutor:
// level and topic vocabularies, the rule-based and generative response
// strategies, and the Service that runs one exchange against the
// conversation store.
package tutor

import (
	"context"

	"github.com/chriscow/charla/internal/conversation"
)

// Request is everything an engine needs to produce the next reply.
// Level and Topic are already normalized.
type Request struct {
	Message string
	Level   Level
	Topic   Topic
	History []conversation.Turn
}

// Engine produces the tutor's next reply. Implementations degrade to
// fixed replies instead of failing; an error means no text at all could
// be determined.
type Engine interface {
	Name() string
	Respond(ctx context.Context, req Request) (string, error)
}

// HistoryUser is implemented by engines that read prior turns. The
// service passes at most HistoryTurns() turns in Request.History.
type HistoryUser interface {
	HistoryTurns() int
}
