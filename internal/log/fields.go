package log

// Common field names for structured logging.
const (
	FieldComponent     = "component"
	FieldRequestID     = "request_id"
	FieldClientIP      = "client_ip"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldStatusCode    = "status_code"
	FieldDuration      = "duration_ms"
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldCollection    = "collection"
	FieldTransactionID = "transaction_id"
	FieldAccountID     = "account_id"
	FieldPaymentMethod = "payment_method"
	FieldAmountCents   = "amount_cents"
	FieldCategory      = "category"
	FieldDate          = "date"
	FieldYear          = "year"
	FieldMonth         = "month"
)

// Components defines standard component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentStore   = "store"
	ComponentStorage = "storage"
	ComponentTrace   = "trace"
)

// Operations defines standard operation names.
const (
	OpLoad     = "load"
	OpUpsert   = "upsert"
	OpDelete   = "delete"
	OpFlush    = "flush"
	OpList     = "list"
	OpSummary  = "summary"
	OpResolve  = "resolve"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
