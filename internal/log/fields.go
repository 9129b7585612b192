package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldBackend    = "backend"
	FieldRows       = "rows"
	FieldOrderID    = "order_id"
	FieldMonth      = "month"
	FieldTab        = "tab"
	FieldMetric     = "metric"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentReport  = "report"
	ComponentStorage = "storage"
	ComponentSource  = "source"
	ComponentImport  = "import"
	ComponentSheets  = "sheets"
)

// Operations defines standard operation names
const (
	OpFetch     = "fetch"
	OpNormalize = "normalize"
	OpAggregate = "aggregate"
	OpMigrate   = "migrate"
	OpImport    = "import"
	OpRender    = "render"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)
