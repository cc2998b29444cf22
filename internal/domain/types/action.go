package types

const (
	ActionRabbitMQConnected       = "rabbitmq_connected"
	ActionRabbitConnectionClosed  = "rabbitmq_connection_closed"
	ActionRabbitConnectionClosing = "rabbitmq_connection_closing"
	ActionRabbitReconnected       = "rabbitmq_reconnection_success"

	ActionLearnProfile     = "learn_profile"
	ActionOptimizeSchedule = "optimize_schedule"
	ActionIngestActivity   = "ingest_activity"
)
