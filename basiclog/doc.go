// Package basiclog provides a minimal leveled logger with stream-style
// message construction and automatic timestamp and call-site tagging.
//
// # Output
//
// Each active statement produces exactly one line on standard error:
//
//	[LEVEL][YYYY-MM-DD HH:MM:SS][file:line]: value1 value2 ...
//
// # Features
//
//   - Five ordered severities: DEBUG, INFO, WARN, ERROR, FATAL
//   - Process-wide atomic threshold; records below it cost near zero
//   - Call-site file:line captured automatically by Log
//   - Fluent chaining: Log(INFO).Append("x", 11).Flush()
//   - One-shot separator suppression via NoSpace
//   - Typed renderings for containers, pairs, optionals and durations
//
// # Usage
//
// Set the threshold once at startup, then log:
//
//	basiclog.BasicConfig(basiclog.INFO)
//	basiclog.Log(basiclog.INFO).Append("server started on port", 8080).Flush()
//	basiclog.Log(basiclog.DEBUG).Append("not shown").Flush()
//
// Container values render with their elements comma-joined:
//
//	basiclog.Log(basiclog.WARN).
//		Append("retries:", basiclog.Seq[int]{1, 2, 3}).
//		Flush()
//
// Defer the Flush when the surrounding code can return early or panic; the
// line is still written on the way out:
//
//	defer basiclog.Log(basiclog.ERROR).Append("rolling back", txID).Flush()
//
// FATAL is only the highest severity. Logging at FATAL never terminates the
// process.
package basiclog
