package logx

const (
	FieldAppName      = "app-name"
	FieldAppVersion   = "app-version"
	FieldDurationMs   = "duration-ms"
	FieldError        = "error"
	FieldEventType    = "event-type"
	FieldHTTPRequest  = "http-request"
	FieldHTTPResponse = "http-response"
	FieldNotifierID   = "notifier-id"
	FieldPlayer       = "player"
	FieldRemoterID    = "remoter-id"
	FieldRequestBody  = "request-body"
	FieldRequestID    = "request-id"
	FieldResponseBody = "response-body"
	FieldTradeID      = "trade-id"
	FieldTraceID      = "trace-id"
	FieldURL          = "url"
)
