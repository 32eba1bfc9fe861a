package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldAccountID  = "account_id"
	FieldEntryID    = "entry_id"
	FieldStatus     = "status"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentAccount  = "account"
	ComponentLedger   = "ledger"
	ComponentStorage  = "storage"
	ComponentAudit    = "audit"
	ComponentReport   = "report"
)

// Operations defines standard operation names
const (
	OpCreate       = "create"
	OpUpdate       = "update"
	OpDelete       = "delete"
	OpFilter       = "filter"
	OpSetStatus    = "set_status"
	OpBalance      = "balance"
	OpRegister     = "register"
	OpAuthenticate = "authenticate"
	OpStartup      = "startup"
	OpShutdown     = "shutdown"
)
