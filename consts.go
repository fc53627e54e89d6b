package logsetup

import "time"

const (
	emptyString = ""

	// EnvFilter names the environment variable whose filter expression, when set
	// and well-formed, overrides Config.FilterLevel at Init time.
	EnvFilter = "LOG_FILTER"

	// TimestampLayout is the layout of the time field of every record.
	TimestampLayout = "2006-01-02 15:04:05.000"

	TargetFieldName     = "target"
	ThreadIDFieldName   = "thread_id"
	ThreadNameFieldName = "thread_name"
)

const (
	defaultFilterLevel = "info"
	defaultDirectory   = "./logs"
	defaultFileName    = "my-service.log"
	defaultTarget      = "app"
	defaultBufferSize  = 1000
	diodePollInterval  = 10 * time.Millisecond
)

const (
	errMsgConfigInvalid = "Logging configuration is invalid."
	errMsgLocalOffset   = "Cannot resolve the local UTC offset."
	errMsgOpenAppender  = "Cannot open the rolling log file."
	errMsgFlushFailed   = "Flushing the log writer failed."
	errMsgUnknownExt    = "Unsupported logging config file extension."
	errMsgReadConfig    = "Cannot read logging config file."
)
