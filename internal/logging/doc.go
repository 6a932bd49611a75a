// Package logging builds the zerolog loggers used across ecodash.
//
// Loggers are configured from Config, tagged per component with
// ComponentLogger, and carried on a context.Context together with a ULID
// trace ID. Code that has a context should log through FromContext.
package logging
