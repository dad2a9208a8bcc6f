package events

import "github.com/towaplating/cms/internal/entities"

var InquiryReceivedTopic = "InquiryReceivedEvent"

type InquiryReceived struct {
	Inquiry entities.Inquiry
}
