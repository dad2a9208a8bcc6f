package events

import "github.com/towaplating/cms/internal/entities"

var ApplicationReceivedTopic = "ApplicationReceivedEvent"

type ApplicationReceived struct {
	Application entities.Application
}
