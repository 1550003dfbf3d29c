package config

// Default values for configuration
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = false

	DefaultDBPath        = "deliverybot.db"
	DefaultRetentionDays = 90
	DefaultHistoryLimit  = 10

	DefaultTimezone = "UTC"

	// Six-field cron expressions, seconds first.
	DefaultMaintenanceSchedule = "0 0 3 * * 0"
	DefaultRetentionSchedule   = "0 30 2 * * *"
)

// Task names known to the scheduler.
const (
	TaskSQLMaintenance    = "sql_maintenance"
	TaskExchangeRetention = "exchange_retention"
)

// DefaultMessages are the bot texts used when the config file does not override them.
var DefaultMessages = MessagesConfig{
	Welcome: "👋 Welcome to our food delivery service! Ask me about your order status, " +
		"delivery time, the menu, payment methods or cancelling an order.",
	Help: "You can ask me things like:\n" +
		"• What's my order status?\n" +
		"• What's the delivery time?\n" +
		"• Show me the menu\n" +
		"• Which payment methods do you accept?\n" +
		"• How do I cancel order?\n" +
		"• I need customer service",
	Unauthorized: "🚫 You are not authorized to use this command.",
	GeneralError: "❌ An error occurred. Please try again later.",
	ResetDone:    "🔄 Conversation log has been cleared.",
	NoStats:      "No conversations recorded yet.",
	StatsHeader:  "Intent hits:\n\n",
	NoHistory:    "No conversations recorded in this chat yet.",
}

func defaults() map[string]any {
	return map[string]any{
		"logger.level": DefaultLogLevel,
		"logger.json":  DefaultLogJSON,

		"telegram.token":         "",
		"telegram.admin_user_id": 0,

		"database.path":           DefaultDBPath,
		"database.retention_days": DefaultRetentionDays,
		"database.history_limit":  DefaultHistoryLimit,

		"responder.timezone": DefaultTimezone,

		"scheduler.tasks": map[string]any{
			TaskSQLMaintenance: map[string]any{
				"enabled":  true,
				"schedule": DefaultMaintenanceSchedule,
			},
			TaskExchangeRetention: map[string]any{
				"enabled":  true,
				"schedule": DefaultRetentionSchedule,
			},
		},

		"messages.welcome":       DefaultMessages.Welcome,
		"messages.help":          DefaultMessages.Help,
		"messages.unauthorized":  DefaultMessages.Unauthorized,
		"messages.general_error": DefaultMessages.GeneralError,
		"messages.reset_done":    DefaultMessages.ResetDone,
		"messages.no_stats":      DefaultMessages.NoStats,
		"messages.stats_header":  DefaultMessages.StatsHeader,
		"messages.no_history":    DefaultMessages.NoHistory,
	}
}
