package mq

// Exchange Names
const (
	ExchangeAppTopic = "app_topic"
	ExchangeLog      = "logs"
)

// Exchange Types
const (
	ExchangeTypeTopic  = "topic"
	ExchangeTypeFanout = "fanout"
)

// Queue Names
const (
	QueueMatch = "match_queue"
	QueueLog   = "log_queue"
)

// Routing Keys
const (
	RoutingKeyMatchGenerate = "match.generate"
	RoutingKeyMatchCreated  = "match.created"
	RoutingKeyMatchInterest = "match.interest"
	RoutingKeyMatchMutual   = "match.mutual"
)
