package message

import (
	"context"
	"math/rand"

	"github.com/block-domino/block-domino/log"
)

// sendDebugID pairs the log lines of a message that is being sent.
var sendDebugID = rand.Int

// Send is a utility function for sending messages out on the channel.
// False is returned if the context is done before the message is sent.
// When debugging, it prints a message before and after the message is sent to help identify deadlocks.
func Send(ctx context.Context, m Message, out chan<- Message, debug bool, log log.Logger) bool {
	if debug {
		id := sendDebugID()
		log.Printf("[id: %v] sending %v message: %v", id, m.Type, m.Info)
		defer log.Printf("[id: %v] message sent", id)
	}
	select {
	case <-ctx.Done():
		return false
	case out <- m:
		return true
	}
}
