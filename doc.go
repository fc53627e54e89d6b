// Package logsetup configures and installs the process-wide rs/zerolog
// logger in one call, with time-rotated log files and a fixed local zone for
// timestamps.
//
// Key features
//   - Builder or plain Config, validated up front: unknown rotation, format or
//     filter values are reported as a *ConfigError before anything is installed
//   - Rotating file via lumberjack, named per period (minutely, hourly, daily
//     or never), optionally mirrored to standard output
//   - Non-blocking file writes through zerolog's diode writer; the returned
//     Guard flushes them on Close
//   - pretty, compact, full and json styles, with level, target, thread id,
//     thread name and source location each switchable
//   - Filter expressions such as "warn,db=debug" with LOG_FILTER taking
//     precedence when it is set and well-formed
//   - Config from flags (RegisterFlags) or TOML/YAML/JSON files (LoadConfig)
//
// Typical usage
//
//	guard, err := logsetup.Build().
//		FilterLevel("info").
//		Directory("./logs").
//		FileName("my-service.log").
//		Rolling("daily").
//		Init()
//	if err != nil { panic(err) }
//	defer guard.Close()
//
//	log.Info().Str("user_id", id).Msg("processed")
//	db := logsetup.Target("db")
//	db.Debug().Msg("connected")
package logsetup
