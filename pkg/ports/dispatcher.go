package ports

import "github.com/JRed1989/ambari/pkg/domain"

// ActionDispatcher defines where write requests go.
// Services emit actions, and the host implements this interface to process them.
type ActionDispatcher interface {
	Dispatch(action domain.Action) error
}
